package cli

import (
	"context"
	"io"
	"net/url"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/orgchart/pkg/buildinfo"
	"github.com/matzehuels/orgchart/pkg/cache"
	"github.com/matzehuels/orgchart/pkg/config"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "orgchart"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string // --config, shared by every command
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// Running the root command without a subcommand generates the chart.
func (c *CLI) RootCommand() *cobra.Command {
	var opts generateOpts

	root := &cobra.Command{
		Use:   appName,
		Short: "Generate an incident organization chart from a roster",
		Long: `Generate an incident organization chart from a roster.

Reads roster.json (or the file given with --roster), falls back to a built-in
sample roster when the file does not exist, and writes three files:

  org_chart.pdf   primary format, for printing (see --format)
  org_chart.svg   for the web
  org_chart.html  interactive page with clickable phone numbers and emails

Settings are read from orgchart.toml and ORGCHART_* environment variables
(a .env file is honoured); flags override both.`,
		Version:      buildinfo.Version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			return c.runGenerate(cmd.Context(), cfg)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "config file (default "+config.DefaultPath+")")
	root.Flags().StringVarP(&opts.roster, "roster", "r", "", "roster file: .json, .yaml or .toml (default "+config.Default().Roster+")")
	root.Flags().StringVarP(&opts.format, "format", "f", "", "primary format: pdf (default), png, jpg, svg, dot")
	root.Flags().StringVarP(&opts.outputDir, "output", "o", "", "output directory (default .)")
	root.Flags().StringVar(&opts.name, "name", "", "base filename for all outputs (default "+config.DefaultBaseName+")")
	root.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")

	root.AddCommand(c.sampleCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Cache Factory
// =============================================================================

// newCache picks the artifact cache for cfg. Redis is used when a URL is
// configured and reachable; otherwise the file cache, and if even the cache
// directory cannot be determined, no cache at all.
func newCache(ctx context.Context, cfg config.CacheConfig, logger *log.Logger) cache.Cache {
	if cfg.Disabled {
		return cache.NewNullCache()
	}
	if cfg.RedisURL != "" {
		rc, err := cache.NewRedisCache(ctx, cfg.RedisURL)
		if err == nil {
			logger.Debug("using redis cache")
			return rc
		}
		logger.Warn("redis cache unavailable, falling back to file cache", "error", err)
	}

	fc, err := newFileCache(cfg)
	if err != nil {
		logger.Warn("file cache unavailable, caching disabled", "error", err)
		return cache.NewNullCache()
	}
	logger.Debug("using file cache", "dir", fc.Dir())
	return fc
}

func newFileCache(cfg config.CacheConfig) (*cache.FileCache, error) {
	dir := cfg.Dir
	if dir == "" {
		var err error
		if dir, err = cacheDir(); err != nil {
			return nil, err
		}
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/orgchart/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// redactURL hides the password of a connection URL for display.
func redactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "(invalid url)"
	}
	return u.Redacted()
}
