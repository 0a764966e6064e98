package fa

import (
	"fmt"
	"strconv"
	"strings"
)

// Dot renders a as a Graphviz digraph, grounded on
// other_examples/99dc30a3_wolever-nfa2regex__nfa2regex.go.go's ToDot: a
// dummy point node feeds an arrow into every start state, accept states are
// colored red and non-accept states blue (also double-circled vs. circled,
// so the distinction survives a black-and-white render), and ε edges
// render as "ε". Traversal order follows the same sorted* helpers as
// everywhere else in this package, so two calls over the same automaton
// produce byte-identical output (spec P8).
func Dot(a *FA) string {
	var b strings.Builder
	b.WriteString("digraph g {\n")
	b.WriteString("\trankdir = LR;\n")

	for i, s := range a.StartStates() {
		dummy := fmt.Sprintf("__start%d__", i)
		fmt.Fprintf(&b, "\t%q [shape=point];\n", dummy)
		fmt.Fprintf(&b, "\t%q -> %q;\n", dummy, stateName(s))
	}

	for _, s := range a.States() {
		shape, color := "circle", "blue"
		if a.IsAccept(s) {
			shape, color = "doublecircle", "red"
		}
		fmt.Fprintf(&b, "\t%q [shape=%s, color=%s];\n", stateName(s), shape, color)
	}

	for _, u := range a.States() {
		for _, l := range a.Labels(u) {
			label := l.String()
			for _, v := range a.SortedTargets(u, l) {
				fmt.Fprintf(&b, "\t%q -> %q [label=%q];\n", stateName(u), stateName(v), label)
			}
		}
	}

	b.WriteString("}\n")
	return b.String()
}

func stateName(s StateID) string {
	return "q" + strconv.Itoa(int(s))
}
