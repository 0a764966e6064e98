package fa

// Complement flips the accept set of a total DFA to its complement within
// the automaton's full state set (spec §4.7). Complement of a non-total DFA
// is unsound (missing transitions implicitly go to a trap that was never
// materialized), so this panics unless a is already total.
func Complement(a *FA) {
	invariant(len(a.start) == 1, "Complement: automaton is not a DFA (start states = %d)", len(a.start))
	invariant(a.IsEpsilonFree(), "Complement: automaton is not a DFA (has ε-edges)")
	states := a.States()
	alphabet := a.Alphabet()
	invariant(isTotal(a, states, alphabet), "Complement: automaton is not total")

	newAccept := map[StateID]struct{}{}
	for _, s := range states {
		if !a.IsAccept(s) {
			newAccept[s] = struct{}{}
		}
	}
	a.accept = newAccept
}
