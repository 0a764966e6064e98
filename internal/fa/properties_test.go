package fa

import "testing"

// TestPropertyP2EpsilonEliminationIsIdempotentInEffect: ε-elimination must
// not change the language the automaton accepts, and applying it to an
// already ε-free automaton must be a safe no-op.
func TestPropertyP2EpsilonEliminationIsIdempotentInEffect(t *testing.T) {
	a := compile(t, "(a|b)*ab") // already ran EliminateEpsilon once via compile()
	before := map[string]bool{}
	words := []string{"", "ab", "aab", "bab", "aba"}
	for _, w := range words {
		before[w] = Accepts(a, w)
	}

	EliminateEpsilon(a) // second application

	for _, w := range words {
		if got := Accepts(a, w); got != before[w] {
			t.Errorf("second EliminateEpsilon changed Accepts(%q): got %v, want %v", w, got, before[w])
		}
	}
}

// TestPropertyP3SubsetConstructionIsDeterministicAndLanguagePreserving
func TestPropertyP3SubsetConstructionIsDeterministicAndLanguagePreserving(t *testing.T) {
	nfa := compile(t, "(a|b)*ab")
	dfa := ToDFA(nfa)

	if len(dfa.StartStates()) != 1 {
		t.Fatal("DFA must have exactly one start state (I5)")
	}
	for _, s := range dfa.States() {
		for _, l := range dfa.Labels(s) {
			if len(dfa.SortedTargets(s, l)) > 1 {
				t.Fatalf("state %d has multiple targets for %s, violates I5", s, l)
			}
		}
	}

	words := []string{"", "ab", "aab", "bab", "aba", "abab"}
	for _, w := range words {
		if got, want := Accepts(dfa, w), Accepts(nfa, w); got != want {
			t.Errorf("Accepts(dfa, %q) = %v, want %v (same as NFA)", w, got, want)
		}
	}
}

// TestPropertyP4MakeTotalIsTotalAndLanguagePreserving
func TestPropertyP4MakeTotalIsTotalAndLanguagePreserving(t *testing.T) {
	d := toDFAFromPattern(t, "(a|b)*ab")
	words := []string{"", "ab", "aab", "bab", "xyz"}
	before := map[string]bool{}
	for _, w := range words {
		before[w] = Accepts(d, w)
	}

	MakeTotal(d)

	alphabet := d.Alphabet()
	for _, s := range d.States() {
		for _, c := range alphabet {
			if len(d.SortedTargets(s, SymbolLabel(c))) != 1 {
				t.Fatalf("state %d missing total transition on %q, violates I6", s, c)
			}
		}
	}
	for _, w := range words {
		if got := Accepts(d, w); got != before[w] {
			t.Errorf("MakeTotal changed Accepts(%q): got %v, want %v", w, got, before[w])
		}
	}
}

// TestPropertyP5MinimizeIsMinimalLanguagePreservingAndIdempotent
func TestPropertyP5MinimizeIsMinimalLanguagePreservingAndIdempotent(t *testing.T) {
	d := totalDFA(t, "(a|b)*ab")
	words := []string{"", "ab", "aab", "bab", "aba", "abab"}
	before := map[string]bool{}
	for _, w := range words {
		before[w] = Accepts(d, w)
	}

	Minimize(d)
	for _, w := range words {
		if got := Accepts(d, w); got != before[w] {
			t.Errorf("Minimize changed Accepts(%q): got %v, want %v", w, got, before[w])
		}
	}

	n := len(d.States())
	Minimize(d)
	if len(d.States()) != n {
		t.Errorf("applying Minimize twice changed the state count: %d -> %d", n, len(d.States()))
	}
}

// TestPropertyP6ComplementIsSetComplementAndInvolutive
func TestPropertyP6ComplementIsSetComplementAndInvolutive(t *testing.T) {
	d := totalDFA(t, "ab")
	words := []string{"", "a", "ab", "ba", "abb", "aab"}
	before := map[string]bool{}
	for _, w := range words {
		before[w] = Accepts(d, w)
	}

	Complement(d)
	for _, w := range words {
		if got := Accepts(d, w); got == before[w] {
			t.Errorf("Complement(%q): got %v, want %v", w, got, !before[w])
		}
	}

	Complement(d)
	for _, w := range words {
		if got := Accepts(d, w); got != before[w] {
			t.Errorf("double Complement changed Accepts(%q): got %v, want %v", w, got, before[w])
		}
	}
}
