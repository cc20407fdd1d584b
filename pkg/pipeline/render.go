package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/orgchart/pkg/cache"
	"github.com/matzehuels/orgchart/pkg/observability"
	"github.com/matzehuels/orgchart/pkg/render"
)

func renderFormat(ctx context.Context, dot, format string) ([]byte, error) {
	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, format)
	start := time.Now()
	data, err := render.Render(ctx, dot, format)
	hooks.OnRenderComplete(ctx, format, len(data), time.Since(start), err)
	return data, err
}

// renderCached returns the artifact for format, from cache when possible.
// Cache failures are logged and otherwise ignored: a broken cache must not
// stop a chart from being produced.
func (r *Runner) renderCached(ctx context.Context, logger *log.Logger, dot, format string, opts Options) ([]byte, bool, error) {
	key := cache.ArtifactKey(dot, format)
	hooks := observability.Cache()

	if !opts.Refresh {
		data, hit, err := r.Cache.Get(ctx, key)
		switch {
		case err != nil:
			logger.Warn("cache read failed", "format", format, "error", err)
		case hit:
			hooks.OnCacheHit(ctx, format)
			logger.Debug("artifact from cache", "format", format, "bytes", len(data))
			return data, true, nil
		default:
			hooks.OnCacheMiss(ctx, format)
		}
	}

	data, err := renderFormat(ctx, dot, format)
	if err != nil {
		return nil, false, err
	}

	if err := r.Cache.Set(ctx, key, data, opts.CacheTTL); err != nil {
		logger.Warn("cache write failed", "format", format, "error", err)
	} else {
		hooks.OnCacheSet(ctx, format, len(data))
	}
	return data, false, nil
}
