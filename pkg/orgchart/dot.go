package orgchart

import (
	"bytes"
	"fmt"
)

// DOT converts the chart to a Graphviz description.
//
// The layout is ranked top to bottom with rounded, filled boxes and gray
// edges. Output depends only on the chart contents, so the same roster
// always yields byte-identical DOT.
func (c *Chart) DOT() string {
	var buf bytes.Buffer
	buf.WriteString("digraph orgchart {\n")
	buf.WriteString("  rankdir=TB;\n")
	fmt.Fprintf(&buf, "  label=%q;\n", c.Caption)
	buf.WriteString("  fontsize=12;\n")
	buf.WriteString("  labelloc=t;\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fontname=\"Arial\", fontsize=10];\n")
	buf.WriteString("  edge [color=gray, arrowsize=0.8];\n")
	buf.WriteString("\n")

	for _, n := range c.nodes {
		fmt.Fprintf(&buf, "  %q [label=<%s>, fillcolor=%q];\n", n.ID, n.Label, n.FillColor)
	}

	buf.WriteString("\n")
	for _, e := range c.edges {
		fmt.Fprintf(&buf, "  %q -> %q;\n", e.From, e.To)
	}

	buf.WriteString("}\n")
	return buf.String()
}
