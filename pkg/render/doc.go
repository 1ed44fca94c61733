// Package render turns abstract visualization graphs into viewable
// artifacts.
//
// # Overview
//
// This package produces directed type-relationship diagrams using
// Graphviz. Each type appears as a table-shaped node: a colored header
// with the type name over one row per displayed field, connected by
// arrows labeled with the field name and its multiplicity.
//
// # Usage
//
// Convert a graph to DOT format, then render to SVG:
//
//	dot := render.ToDOT(g, render.Options{})
//	svg, err := render.RenderSVG(ctx, dot)
//
// For a standalone page with a category legend, wrap the SVG:
//
//	page, err := render.RenderHTML(svg, render.Options{})
//
// For PDF or PNG output, use the conversion functions:
//
//	pdf, err := render.RenderPDF(ctx, dot)
//	png, err := render.RenderPNG(ctx, dot, 2.0)  // 2x scale
//
// # Options
//
// The [Options] struct controls diagram generation:
//
//   - Rankdir: layout direction (TB, LR, BT, RL)
//   - Palette: per-category fill color overrides
//   - Title: heading for HTML output
//
// # DOT Format
//
// The [ToDOT] function produces Graphviz DOT source that can be:
//
//   - Rendered directly via [RenderSVG]
//   - Saved and processed with external Graphviz tools
//   - Customized before rendering
//
// Node labels use Graphviz HTML-like tables so field rows align and
// headers carry the category color. Fill colors follow the category of
// each node; the defaults are lightblue for objects, lightgreen for
// input objects, and gold for enums.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
package render
