package fsafile

import (
	"fmt"
	"strings"

	"github.com/ha1tch/fsa2re/pkg/fsa"
)

// GenerateDOT converts an automaton to Graphviz DOT format.
func GenerateDOT(a *fsa.Automaton, title string) string {
	var sb strings.Builder

	sb.WriteString("digraph FSA {\n")
	sb.WriteString("    rankdir=LR;\n")
	sb.WriteString("    node [fontname=\"Helvetica\", fontsize=11];\n")
	sb.WriteString("    edge [fontname=\"Helvetica\", fontsize=10];\n")
	sb.WriteString("\n")

	if title != "" {
		sb.WriteString("    labelloc=\"t\";\n")
		sb.WriteString(fmt.Sprintf("    label=\"%s\";\n", escapeDOT(title)))
		sb.WriteString("\n")
	}

	// Invisible start node
	if a.Initial != "" {
		sb.WriteString("    __start [shape=none, label=\"\", width=0, height=0];\n")
		sb.WriteString(fmt.Sprintf("    __start -> \"%s\";\n", escapeDOT(a.Initial)))
		sb.WriteString("\n")
	}

	// State nodes
	for _, state := range a.States {
		shape := "circle"
		if a.IsAccepting(state) {
			shape = "doublecircle"
		}
		sb.WriteString(fmt.Sprintf("    \"%s\" [shape=%s];\n", escapeDOT(state), shape))
	}
	sb.WriteString("\n")

	// Group transitions by (from, to), keeping first-appearance order so
	// output is stable for a given input.
	type edge struct{ from, to string }
	labels := make(map[edge][]string)
	var order []edge

	for _, t := range a.Transitions {
		key := edge{t.From, t.To}
		if _, seen := labels[key]; !seen {
			order = append(order, key)
		}
		labels[key] = append(labels[key], t.Symbol)
	}

	for _, key := range order {
		combined := strings.Join(labels[key], ", ")
		sb.WriteString(fmt.Sprintf("    \"%s\" -> \"%s\" [label=\"%s\"];\n",
			escapeDOT(key.from), escapeDOT(key.to), escapeDOT(combined)))
	}

	sb.WriteString("}\n")

	return sb.String()
}

func escapeDOT(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	s = strings.ReplaceAll(s, "<", "\\<")
	s = strings.ReplaceAll(s, ">", "\\>")
	return s
}
