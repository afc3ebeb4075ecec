package machinedef

import (
	"bytes"
	"fmt"
)

// DOT generates Graphviz DOT source for the definition. If active names a
// state, that state is highlighted. The initial state gets an inbound arrow
// from an invisible point node, the usual automata notation.
func (d *Definition) DOT(active string) string {
	var buf bytes.Buffer
	buf.WriteString("digraph ")
	fmt.Fprintf(&buf, "%q", d.Name)
	buf.WriteString(` {
  rankdir=LR;
  node [shape=box, fontsize=10, style=rounded];
  edge [fontsize=9];
`)

	buf.WriteString("  __initial [shape=point];\n")
	for _, s := range d.States {
		if s == active {
			fmt.Fprintf(&buf, "  %q [style=\"rounded,filled\", fillcolor=lightblue];\n", s)
		} else {
			fmt.Fprintf(&buf, "  %q;\n", s)
		}
	}
	if len(d.States) > 0 {
		fmt.Fprintf(&buf, "  __initial -> %q;\n", d.States[0])
	}

	for _, t := range d.Transitions {
		fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n", t.From, t.To, t.On)
	}

	buf.WriteString("}\n")
	return buf.String()
}
