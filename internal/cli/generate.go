package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/orgchart/pkg/config"
	"github.com/matzehuels/orgchart/pkg/pipeline"
)

// generateOpts holds the root command flags. Only flags the user actually set
// override the loaded configuration.
type generateOpts struct {
	roster    string // roster file path
	format    string // primary output format
	outputDir string // directory for all outputs
	name      string // base filename shared by all outputs
	noCache   bool   // skip the artifact cache
}

// loadConfig resolves the configuration and applies explicitly set flags.
func (c *CLI) loadConfig(cmd *cobra.Command, opts generateOpts) (config.Config, error) {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return config.Config{}, err
	}
	applyFlags(&cfg, opts, cmd.Flags().Changed)
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// applyFlags copies each flag whose name changed reports true into cfg.
func applyFlags(cfg *config.Config, opts generateOpts, changed func(name string) bool) {
	if changed("roster") {
		cfg.Roster = opts.roster
	}
	if changed("format") {
		cfg.Output.Format = opts.format
	}
	if changed("output") {
		cfg.Output.Dir = opts.outputDir
	}
	if changed("name") {
		cfg.Output.Name = opts.name
	}
	if changed("no-cache") {
		cfg.Cache.Disabled = opts.noCache
	}
}

// pipelineOptions maps the resolved configuration onto a pipeline run.
func pipelineOptions(cfg config.Config) pipeline.Options {
	ttl, _ := cfg.Cache.TTLDuration() // validated by config.Load
	return pipeline.Options{
		RosterPath:  cfg.Roster,
		EmailDomain: cfg.EmailDomain,
		Incident:    cfg.Incident,
		Format:      cfg.Output.Format,
		CacheTTL:    ttl,
		OutputDir:   cfg.Output.Dir,
		BaseName:    cfg.Output.Name,
		Title:       cfg.Output.Title,
	}
}

// runGenerate runs the full pipeline and reports the files written.
func (c *CLI) runGenerate(ctx context.Context, cfg config.Config) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	runner := pipeline.NewRunner(newCache(ctx, cfg.Cache, logger), logger)
	defer runner.Close()

	opts := pipelineOptions(cfg)
	opts.Logger = logger

	printTitle("Org Chart Generator")

	spinner := newSpinnerWithContext(ctx, "Generating org chart...")
	if logger.GetLevel() > LogDebug {
		spinner.Start()
	}
	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Org chart generation failed")
		return err
	}
	spinner.Stop()

	if result.DefaultRoster {
		printWarning("%s not found, using the built-in sample roster", cfg.Roster)
	}
	printInfo("Loaded %d positions", result.Stats.Records)
	printInfo("%d positions filled", result.Stats.Filled)

	printSuccess("Org chart generated")
	if result.Paths.Primary != result.Paths.SVG {
		printFile(result.Paths.Primary, "for printing")
	}
	printFile(result.Paths.SVG, "for web")
	printFile(result.Paths.HTML, "interactive, with clickable contacts")
	printStats(result.Stats.NodeCount, result.Stats.EdgeCount, len(result.Omissions()), result.CacheInfo.RenderHit)

	prog.done(fmt.Sprintf("Generated %s", result.Paths.HTML))
	return nil
}
