package render

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/AmirF00/GraphQL-Converter/pkg/viz"
)

// DefaultRankdir is the layout direction used when Options leaves
// Rankdir unset.
const DefaultRankdir = "TB"

// Rankdirs lists the layout directions Graphviz accepts.
var Rankdirs = []string{"TB", "LR", "BT", "RL"}

// Options configures diagram rendering.
type Options struct {
	// Rankdir sets the Graphviz layout direction: TB, LR, BT, or RL.
	// Empty means DefaultRankdir.
	Rankdir string

	// Palette overrides fill colors per category. Categories absent
	// from the map keep their defaults.
	Palette map[viz.Category]string

	// Title is the heading for HTML output. Empty means DefaultTitle.
	Title string
}

// defaultColors binds categories to header fill colors.
var defaultColors = map[viz.Category]string{
	viz.CategoryObject: "lightblue",
	viz.CategoryInput:  "lightgreen",
	viz.CategoryEnum:   "gold",
	viz.CategoryScalar: "lightgrey",
}

func (o Options) rankdir() string {
	if o.Rankdir == "" {
		return DefaultRankdir
	}
	return o.Rankdir
}

func (o Options) color(c viz.Category) string {
	if col, ok := o.Palette[c]; ok {
		return col
	}
	if col, ok := defaultColors[c]; ok {
		return col
	}
	return "white"
}

// ToDOT converts a visualization graph to Graphviz DOT format.
// The resulting DOT string can be rendered using [RenderSVG],
// [RenderPDF], or [RenderPNG].
//
// Each node becomes an HTML-like table: a header cell filled with the
// category color over one left-aligned row per displayed field, plus a
// trailing "... (N more)" row when the builder truncated the field
// list. Edges carry the field name and multiplicity as their label.
func ToDOT(g *viz.Graph, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph schema {\n")
	fmt.Fprintf(&buf, "  rankdir=%s;\n", opts.rankdir())
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=plain, fontname=\"Helvetica\", fontsize=12];\n")
	buf.WriteString("  edge [fontname=\"Helvetica\", fontsize=10, color=gray40, arrowsize=0.7];\n")
	buf.WriteString("  ranksep=0.6;\n")
	buf.WriteString("  nodesep=0.4;\n")
	buf.WriteString("\n")

	for _, n := range g.Nodes() {
		fmt.Fprintf(&buf, "  %q [label=<%s>];\n", n.TypeName, nodeLabel(n, opts.color(n.Category)))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n", e.From, e.To, edgeLabel(e))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeLabel(n *viz.Node, color string) string {
	var b strings.Builder
	b.WriteString(`<table border="0" cellborder="1" cellspacing="0" cellpadding="4">`)
	fmt.Fprintf(&b, `<tr><td bgcolor=%q align="center"><b>%s</b></td></tr>`,
		color, html.EscapeString(n.TypeName))

	for _, f := range n.DisplayedFields {
		fmt.Fprintf(&b, `<tr><td align="left">%s</td></tr>`, html.EscapeString(fieldRow(f)))
	}
	if n.HiddenFieldCount > 0 {
		fmt.Fprintf(&b, `<tr><td align="left"><i>... (%d more)</i></td></tr>`, n.HiddenFieldCount)
	}

	b.WriteString(`</table>`)
	return b.String()
}

// fieldRow formats one display row. Enum values and union members have
// no type signature and render as bare names.
func fieldRow(f viz.FieldView) string {
	if f.Type == "" {
		return f.Name
	}
	return f.Name + ": " + f.Type
}

func edgeLabel(e viz.Edge) string {
	return fmt.Sprintf("%s [%s]", e.Label, e.Multiplicity)
}
