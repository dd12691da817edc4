// Package graph renders machine definitions as diagram text (Mermaid
// and Graphviz DOT). It only reads definitions and traces; it never
// drives a simulation.
package graph

import (
	"fmt"
	"sort"
	"strings"

	"github.com/automatalab/automata/pkg/domain"
)

// Overlay contains dynamic run data to visualize on top of the static
// diagram: the states a trace has walked and the currently active one.
type Overlay struct {
	Visited []string
	Current string
}

// TraceOverlay builds an overlay from a trace prefix: steps[0:n] are
// marked visited and the n-th state is current. Passing the full trace
// length highlights the final state.
func TraceOverlay(trace domain.Trace, step int) *Overlay {
	if len(trace) == 0 {
		return &Overlay{}
	}
	if step >= len(trace) {
		step = len(trace) - 1
	}
	o := &Overlay{Current: trace[step].State}
	for i := 0; i <= step; i++ {
		o.Visited = append(o.Visited, trace[i].State)
	}
	return o
}

// GenerateMermaid produces a Mermaid flowchart for def.
// Shapes: start ((circle)), accept ([stadium]), others [rectangle].
// Parallel transitions between the same pair of states are folded into
// one edge labeled with the sorted symbols.
func GenerateMermaid(def *domain.Definition, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	for _, state := range def.States {
		safeID := sanitizeID(state)

		opener, closer := "[", "]"
		switch {
		case state == def.Start:
			opener, closer = "((", "))"
		case def.IsAccept(state):
			opener, closer = "([", "])"
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", safeID, opener, state, closer))
	}

	for _, edge := range groupEdges(def) {
		sb.WriteString(fmt.Sprintf("    %s -- \"%s\" --> %s\n",
			sanitizeID(edge.from), strings.Join(edge.symbols, ", "), sanitizeID(edge.to)))
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#b9f6ca,stroke:#1b5e20,stroke-width:4px,color:#000;\n")

		seen := make(map[string]bool)
		for _, state := range overlay.Visited {
			safeID := sanitizeID(state)
			if safeID == "" || seen[safeID] {
				continue
			}
			seen[safeID] = true
			sb.WriteString(fmt.Sprintf("    class %s visited;\n", safeID))
		}
		if overlay.Current != "" {
			sb.WriteString(fmt.Sprintf("    class %s current;\n", sanitizeID(overlay.Current)))
		}
	}

	return sb.String()
}

type edge struct {
	from, to string
	symbols  []string
}

// groupEdges folds rules sharing (from, to) into a single labeled edge,
// in first-appearance order with sorted symbol labels. Duplicate rules
// resolve last-write-wins, so the live transition table (not the raw
// rule list) decides which edges exist.
func groupEdges(def *domain.Definition) []edge {
	type pair struct{ from, to string }
	index := make(map[pair]int)
	var edges []edge

	for _, state := range def.States {
		for _, sym := range def.Alphabet {
			r := []rune(sym)[0]
			to, ok := def.Next(state, r)
			if !ok {
				continue
			}
			key := pair{from: state, to: to}
			i, seen := index[key]
			if !seen {
				index[key] = len(edges)
				edges = append(edges, edge{from: state, to: to})
				i = len(edges) - 1
			}
			edges[i].symbols = append(edges[i].symbols, sym)
		}
	}
	for i := range edges {
		sort.Strings(edges[i].symbols)
	}
	return edges
}

func sanitizeID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}
