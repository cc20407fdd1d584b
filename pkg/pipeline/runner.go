package pipeline

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/orgchart/pkg/cache"
	errs "github.com/matzehuels/orgchart/pkg/errors"
	"github.com/matzehuels/orgchart/pkg/observability"
	"github.com/matzehuels/orgchart/pkg/orgchart"
	"github.com/matzehuels/orgchart/pkg/render"
	"github.com/matzehuels/orgchart/pkg/roster"
	"github.com/matzehuels/orgchart/pkg/webpage"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger; it doesn't store
// pipeline results. Runs with different options may share one Runner.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
}

// NewRunner creates a runner. If c is nil, a NullCache is used (caching
// disabled). If logger is nil, the charmbracelet default logger is used.
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Logger: logger,
	}
}

// Execute runs load → build → render → write.
//
// Omissions are not failures: they are returned on the result and logged at
// debug level. Files already written stay on disk when a later stage fails.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
	opts.SetDefaults()
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{
		RunID:     uuid.NewString(),
		Artifacts: make(map[string][]byte),
	}
	logger := opts.Logger.With("run", result.RunID)

	// Stage 1: Load
	loadStart := time.Now()
	records, err := r.Load(ctx, opts.RosterPath)
	result.Stats.LoadTime = time.Since(loadStart)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.Roster = records
	result.DefaultRoster = !roster.Exists(opts.RosterPath)
	result.Stats.Records = len(records)
	result.Stats.Filled = records.Filled()

	if result.DefaultRoster {
		logger.Info("using built-in roster", "path", opts.RosterPath)
	}
	logger.Info("loaded roster",
		"records", result.Stats.Records,
		"filled", result.Stats.Filled,
		"duration", result.Stats.LoadTime)

	// Stage 2: Build
	buildStart := time.Now()
	chart, err := orgchart.Build(records, opts.BuildOptions())
	result.Stats.BuildTime = time.Since(buildStart)
	if chart != nil {
		observability.Pipeline().OnBuildComplete(ctx, chart.NodeCount(), chart.EdgeCount(), len(chart.Omissions), result.Stats.BuildTime, err)
	} else {
		observability.Pipeline().OnBuildComplete(ctx, 0, 0, 0, result.Stats.BuildTime, err)
	}
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}
	result.Chart = chart
	result.DOT = chart.DOT()
	result.Stats.NodeCount = chart.NodeCount()
	result.Stats.EdgeCount = chart.EdgeCount()

	for _, o := range chart.Omissions {
		logger.Debug("omitted", "record", o.RecordID, "reports_to", o.ReportsTo, "reason", string(o.Reason))
	}
	logger.Info("built chart",
		"nodes", result.Stats.NodeCount,
		"edges", result.Stats.EdgeCount,
		"omitted", len(chart.Omissions),
		"duration", result.Stats.BuildTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 3: Render
	renderStart := time.Now()
	formats := opts.Formats()
	for _, format := range formats {
		data, hit, err := r.renderCached(ctx, logger, result.DOT, format, opts)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		result.Artifacts[format] = data
		if hit {
			result.CacheInfo.Hits = append(result.CacheInfo.Hits, format)
		}
	}
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = len(result.CacheInfo.Hits) == len(formats)

	logger.Info("rendered outputs",
		"formats", formats,
		"cached", result.CacheInfo.Hits,
		"duration", result.Stats.RenderTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 4: Write
	writeStart := time.Now()
	paths, err := r.Write(ctx, result.Artifacts, opts)
	if err != nil {
		return nil, err
	}
	result.Paths = paths
	result.Stats.WriteTime = time.Since(writeStart)

	logger.Debug("wrote outputs",
		"primary", paths.Primary,
		"svg", paths.SVG,
		"html", paths.HTML,
		"duration", result.Stats.WriteTime)

	return result, nil
}

// Load reads the roster at path, reporting the stage to the observability hooks.
func (r *Runner) Load(ctx context.Context, path string) (roster.Roster, error) {
	hooks := observability.Pipeline()
	hooks.OnLoadStart(ctx, path)
	start := time.Now()
	records, err := roster.Load(path)
	hooks.OnLoadComplete(ctx, path, len(records), time.Since(start), err)
	return records, err
}

// Write stores every artifact under opts.OutputDir and then writes the HTML
// page referencing the SVG. Existing files are truncated.
func (r *Runner) Write(ctx context.Context, artifacts map[string][]byte, opts Options) (Paths, error) {
	opts.SetDefaults()
	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return Paths{}, errs.Wrap(errs.ErrCodeWriteFailed, err, "create %s", opts.OutputDir)
	}

	var paths Paths
	for _, format := range opts.Formats() {
		data, ok := artifacts[format]
		if !ok {
			return Paths{}, errs.New(errs.ErrCodeInternal, "no %s artifact to write", format)
		}
		path := opts.ArtifactPath(format)
		if err := writeArtifact(ctx, path, data); err != nil {
			return Paths{}, err
		}
		if format == opts.Format {
			paths.Primary = path
		}
		if format == render.FormatSVG {
			paths.SVG = path
		}
	}

	paths.HTML = opts.HTMLPath()
	err := webpage.WriteFile(paths.HTML, webpage.Page{
		Title:       opts.Title,
		SVGFile:     opts.BaseName + ".svg",
		EmailDomain: opts.EmailDomain,
		Incident:    opts.Incident,
	})
	size := 0
	if info, statErr := os.Stat(paths.HTML); statErr == nil {
		size = int(info.Size())
	}
	observability.Pipeline().OnArtifactWritten(ctx, paths.HTML, size, err)
	if err != nil {
		return Paths{}, err
	}

	return paths, nil
}

func writeArtifact(ctx context.Context, path string, data []byte) error {
	err := os.WriteFile(path, data, 0o644)
	observability.Pipeline().OnArtifactWritten(ctx, path, len(data), err)
	if err != nil {
		return errs.Wrap(errs.ErrCodeWriteFailed, err, "write %s", path)
	}
	return nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
