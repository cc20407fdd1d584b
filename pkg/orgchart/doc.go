// Package orgchart converts roster records into a Graphviz org chart.
//
// # Architecture
//
// Layout is delegated to Graphviz. This package only decides what goes into
// the graph:
//
//	roster.Roster → Build() → Chart → DOT() → render.RenderSVG() → SVG
//
// [Build] registers one node per filled position and one "supervises" edge
// per resolvable reporting line. Node fill colors come from a fixed category
// table ([ColorFor]); labels are Graphviz HTML-like labels holding the title,
// name, and the phone and email lines when present.
//
// # Omissions
//
// Records without a name, duplicate IDs, and reporting lines pointing at
// unknown or vacant positions are skipped rather than rejected. Each skip is
// listed in [Chart.Omissions] so callers can surface them if they want to.
//
// # Usage
//
//	chart, err := orgchart.Build(roster.Default(), orgchart.DefaultOptions())
//	if err != nil {
//	    return err
//	}
//	svg, err := render.RenderSVG(ctx, chart.DOT())
package orgchart
