// Package pipeline runs the roster → chart → artifacts → page sequence.
//
// Every entry point (today only the CLI) goes through [Runner.Execute] so
// caching, logging and observability hooks behave the same everywhere.
//
// # Stages
//
//  1. Load: read the roster file, or fall back to the built-in roster
//  2. Build: turn records into a chart and its Graphviz description
//  3. Render: produce the primary format and the SVG (cached by DOT hash)
//  4. Write: store artifacts next to each other and emit the HTML wrapper
//
// # Usage
//
//	runner := pipeline.NewRunner(cache.NewNullCache(), logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    RosterPath: "roster.json",
//	    Format:     "pdf",
//	})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(result.Paths.Primary, result.Paths.SVG, result.Paths.HTML)
package pipeline

import (
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	errs "github.com/matzehuels/orgchart/pkg/errors"
	"github.com/matzehuels/orgchart/pkg/orgchart"
	"github.com/matzehuels/orgchart/pkg/render"
	"github.com/matzehuels/orgchart/pkg/roster"
	"github.com/matzehuels/orgchart/pkg/webpage"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultFormat is the primary artifact format.
	DefaultFormat = render.FormatPDF

	// DefaultBaseName is the file name shared by every artifact, without extension.
	DefaultBaseName = "org_chart"

	// DefaultOutputDir is where artifacts are written.
	DefaultOutputDir = "."
)

// =============================================================================
// Options
// =============================================================================

// Options configures one pipeline run.
type Options struct {
	// Load
	RosterPath string // empty or missing file means the built-in roster

	// Build
	EmailDomain string
	Incident    orgchart.Incident

	// Render
	Format   string        // primary format; SVG is always rendered as well
	CacheTTL time.Duration // 0 keeps cached artifacts forever
	Refresh  bool          // ignore cached artifacts but still store new ones

	// Write
	OutputDir string
	BaseName  string
	Title     string // HTML page title

	// Runtime (not part of the cache key)
	Logger *log.Logger
}

// SetDefaults fills zero fields with their defaults. The email domain is left
// alone: empty disables stripping it from labels.
func (o *Options) SetDefaults() {
	if o.Format == "" {
		o.Format = DefaultFormat
	}
	if o.OutputDir == "" {
		o.OutputDir = DefaultOutputDir
	}
	if o.BaseName == "" {
		o.BaseName = DefaultBaseName
	}
	if o.Title == "" {
		o.Title = webpage.DefaultTitle
	}
	if o.Incident == (orgchart.Incident{}) {
		o.Incident = orgchart.DefaultIncident()
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Validate checks the primary format and the base name.
func (o *Options) Validate() error {
	if err := render.ValidateFormat(o.Format); err != nil {
		return err
	}
	if strings.TrimSpace(o.BaseName) == "" {
		return errs.New(errs.ErrCodeInvalidInput, "base name must not be empty")
	}
	if strings.ContainsAny(o.BaseName, `/\`) {
		return errs.New(errs.ErrCodeInvalidInput, "base name %q must not contain a path separator", o.BaseName)
	}
	return nil
}

// Formats lists the formats to render, primary first. SVG is appended
// unless it already is the primary format.
func (o *Options) Formats() []string {
	if o.Format == render.FormatSVG {
		return []string{render.FormatSVG}
	}
	return []string{o.Format, render.FormatSVG}
}

// ArtifactPath returns where the artifact for format is written.
func (o *Options) ArtifactPath(format string) string {
	return filepath.Join(o.OutputDir, o.BaseName+"."+format)
}

// HTMLPath returns where the wrapper page is written.
func (o *Options) HTMLPath() string {
	return o.ArtifactPath("html")
}

// BuildOptions returns the chart builder options.
func (o *Options) BuildOptions() orgchart.Options {
	return orgchart.Options{
		Incident:    o.Incident,
		EmailDomain: o.EmailDomain,
	}
}

// =============================================================================
// Result
// =============================================================================

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID tags every log line of the run.
	RunID string

	// Roster is what was loaded; DefaultRoster is set when no file existed.
	Roster        roster.Roster
	DefaultRoster bool

	// Chart is the built chart, including its omissions.
	Chart *orgchart.Chart

	// DOT is the Graphviz description every artifact was rendered from.
	DOT string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Paths lists the files written.
	Paths Paths

	Stats     Stats
	CacheInfo CacheInfo
}

// Omissions returns what the chart builder left out.
func (r *Result) Omissions() []orgchart.Omission {
	if r.Chart == nil {
		return nil
	}
	return r.Chart.Omissions
}

// Paths are the files written by a run. Primary equals SVG when the primary
// format is SVG.
type Paths struct {
	Primary string
	SVG     string
	HTML    string
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Records    int
	Filled     int
	NodeCount  int
	EdgeCount  int
	LoadTime   time.Duration
	BuildTime  time.Duration
	RenderTime time.Duration
	WriteTime  time.Duration
}

// CacheInfo tracks which artifacts came from the cache.
type CacheInfo struct {
	Hits      []string // formats served from cache
	RenderHit bool     // every artifact came from cache
}
