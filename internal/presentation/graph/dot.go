package graph

import (
	"fmt"
	"strings"

	"github.com/automatalab/automata/pkg/domain"
)

// GenerateDOT produces a Graphviz DOT digraph for def: left-to-right,
// circles for states, doublecircles for accept states, an invisible
// arrow into the start state, and the active state filled light green
// when an overlay is given.
func GenerateDOT(def *domain.Definition, overlay *Overlay) string {
	var sb strings.Builder

	sb.WriteString("digraph automaton {\n")
	sb.WriteString("  rankdir=LR;\n")
	sb.WriteString("  node [shape=circle];\n")
	sb.WriteString("\n")

	sb.WriteString("  __start [shape=none, label=\"\"];\n")
	sb.WriteString(fmt.Sprintf("  __start -> %q;\n", def.Start))
	sb.WriteString("\n")

	for _, state := range def.States {
		attrs := []string{}
		if def.IsAccept(state) {
			attrs = append(attrs, "shape=doublecircle")
		}
		if overlay != nil && state == overlay.Current {
			attrs = append(attrs, "style=filled", "color=lightgreen")
		}
		if len(attrs) > 0 {
			sb.WriteString(fmt.Sprintf("  %q [%s];\n", state, strings.Join(attrs, ", ")))
		} else {
			sb.WriteString(fmt.Sprintf("  %q;\n", state))
		}
	}
	sb.WriteString("\n")

	for _, edge := range groupEdges(def) {
		sb.WriteString(fmt.Sprintf("  %q -> %q [label=%q];\n",
			edge.from, edge.to, strings.Join(edge.symbols, ", ")))
	}

	sb.WriteString("}\n")
	return sb.String()
}
