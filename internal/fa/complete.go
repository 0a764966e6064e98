package fa

// MakeTotal completes a DFA into a total DFA by adding one trap state with
// self-loops on every alphabet symbol, and routing every missing
// (state, symbol) transition to it (spec §4.5). The alphabet is computed
// once, from the automaton's edges as they stand before completion, and is
// never extended afterwards (invariant I6). An automaton with an empty
// alphabet is already total and gets no trap state. a is mutated in place.
func MakeTotal(a *FA) {
	invariant(len(a.start) == 1, "MakeTotal: automaton is not a DFA (start states = %d)", len(a.start))
	invariant(a.IsEpsilonFree(), "MakeTotal: automaton is not a DFA (has ε-edges)")

	alphabet := a.Alphabet()
	if len(alphabet) == 0 {
		return
	}

	trap := a.NewState()

	for _, s := range a.States() {
		if s == trap {
			continue
		}
		for _, c := range alphabet {
			if len(a.SortedTargets(s, SymbolLabel(c))) == 0 {
				a.AddSymbol(s, c, trap)
			}
		}
	}

	for _, c := range alphabet {
		a.AddSymbol(trap, c, trap)
	}
	// trap is deliberately left out of accept_states.
}
