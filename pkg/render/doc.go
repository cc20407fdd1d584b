// Package render turns Graphviz descriptions into chart artifacts.
//
// # Overview
//
// Layout and rasterization are delegated entirely to Graphviz through
// github.com/goccy/go-graphviz, which embeds the engine as WebAssembly so no
// system Graphviz install is needed:
//
//	svg, err := render.RenderSVG(ctx, dot)
//
// # Format Conversion
//
// Paged and bitmap output go through the external rsvg-convert tool (from
// librsvg), fed with the SVG produced above:
//
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0) // 2x scale
//
// [Render] dispatches on a format name and is what the pipeline calls.
//
// # Errors
//
// Every failure (unparsable DOT, invalid label markup, missing rsvg-convert)
// is returned as a RENDER_FAILED error. There are no retries.
package render
