// Package pkg provides the core libraries for org chart generation.
//
// # Overview
//
// Orgchart turns a roster of positions into a hierarchical chart. Every
// position is a box colored by its function; filled positions show the
// person's name and a clickable email link, vacancies show only the title.
// The chart is rendered with Graphviz into a printable format and SVG, and
// wrapped in a small HTML page that keeps the links live.
//
// # Data Flow
//
// The typical data flow through orgchart:
//
//  1. Load a roster from JSON, YAML or TOML ([roster])
//  2. Build the chart: resolve parents, assign colors, drop orphans ([orgchart])
//  3. Serialize the chart to DOT ([orgchart])
//  4. Render DOT to PDF, PNG, JPG or SVG ([render])
//  5. Write the artifacts and the HTML wrapper ([webpage])
//
// [pipeline] runs all five stages with caching ([cache]) and lifecycle hooks
// ([observability]).
//
// # Quick Start
//
//	import (
//	    "context"
//
//	    "github.com/matzehuels/orgchart/pkg/pipeline"
//	)
//
//	func main() {
//	    runner := pipeline.NewRunner(nil, nil)
//	    defer runner.Close()
//
//	    result, err := runner.Execute(context.Background(), pipeline.Options{
//	        RosterPath: "roster.json",
//	        Format:     "pdf",
//	    })
//	    if err != nil {
//	        panic(err)
//	    }
//	    _ = result.Paths.HTML
//	}
//
// # Package Organization
//
// Domain:
//
//   - [roster] - Roster records, the built-in sample, and file codecs
//   - [orgchart] - Chart construction, function colors, DOT output
//
// Output:
//
//   - [render] - Graphviz rendering and SVG conversion
//   - [webpage] - Interactive HTML wrapper around the SVG
//
// Infrastructure:
//
//   - [pipeline] - End-to-end execution
//   - [cache] - Rendered artifact caching (file, Redis, null)
//   - [config] - TOML, .env and environment configuration
//   - [observability] - Pipeline and cache hooks
//   - [errors] - Coded errors
//   - [buildinfo] - Version information
//
// [roster]: https://pkg.go.dev/github.com/matzehuels/orgchart/pkg/roster
// [orgchart]: https://pkg.go.dev/github.com/matzehuels/orgchart/pkg/orgchart
// [render]: https://pkg.go.dev/github.com/matzehuels/orgchart/pkg/render
// [webpage]: https://pkg.go.dev/github.com/matzehuels/orgchart/pkg/webpage
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/orgchart/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/orgchart/pkg/cache
// [config]: https://pkg.go.dev/github.com/matzehuels/orgchart/pkg/config
// [observability]: https://pkg.go.dev/github.com/matzehuels/orgchart/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/orgchart/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/orgchart/pkg/buildinfo
package pkg
