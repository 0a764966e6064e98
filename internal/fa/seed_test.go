package fa

import "testing"

// TestSeedS1BaEqAlt: input regex a((ba)*a(ab)*|a)*. After EliminateEpsilon,
// the NFA accepts "a", "abaaa"; rejects "abaabaab", "ababab", "abb". The DFA
// produced by subset->total->minimal reports the same verdicts.
func TestSeedS1BaEqAlt(t *testing.T) {
	pattern := "a((ba)*a(ab)*|a)*"
	nfa := compile(t, pattern)

	accept := []string{"a", "abaaa"}
	reject := []string{"abaabaab", "ababab", "abb"}

	for _, w := range accept {
		if !Accepts(nfa, w) {
			t.Errorf("NFA: expected accept %q", w)
		}
	}
	for _, w := range reject {
		if Accepts(nfa, w) {
			t.Errorf("NFA: expected reject %q", w)
		}
	}

	dfa := ToDFA(nfa)
	MakeTotal(dfa)
	Minimize(dfa)

	for _, w := range accept {
		if !Accepts(dfa, w) {
			t.Errorf("minimal DFA: expected accept %q", w)
		}
	}
	for _, w := range reject {
		if Accepts(dfa, w) {
			t.Errorf("minimal DFA: expected reject %q", w)
		}
	}
}

// TestSeedS3SubsetWitness: three-state NFA 0,1,2 with accept {2} and edges
// 0-a->0, 0-b->1, 1-a->{1,2}, 1-b->1, 2-a->2, 2-b->{1,2}; the DFA built by
// subset construction has three states, one per NFA state, identifying with
// {0}, {1} and {1,2}.
func TestSeedS3SubsetWitness(t *testing.T) {
	nfa := New()
	s0 := nfa.NewState()
	s1 := nfa.NewState()
	s2 := nfa.NewState()
	nfa.AddStart(s0)
	nfa.AddAccept(s2)

	nfa.AddSymbol(s0, 'a', s0)
	nfa.AddSymbol(s0, 'b', s1)
	nfa.AddSymbol(s1, 'a', s1)
	nfa.AddSymbol(s1, 'a', s2)
	nfa.AddSymbol(s1, 'b', s1)
	nfa.AddSymbol(s2, 'a', s2)
	nfa.AddSymbol(s2, 'b', s1)
	nfa.AddSymbol(s2, 'b', s2)

	dfa := ToDFA(nfa)

	if len(dfa.States()) != 3 {
		t.Fatalf("got %d DFA states, want 3 (isomorphic to the NFA)", len(dfa.States()))
	}
	if len(dfa.StartStates()) != 1 {
		t.Fatal("DFA must have exactly one start state")
	}

	// every DFA state must have exactly one target per symbol (determinism),
	// and the shape must be {0}-a->{0}, {0}-b->{1}, {1}-b->{1},
	// {1}-a->{1,2}, {1,2}-a->{1,2}, {1,2}-b->{1,2}, with only {1,2} accepting.
	step := func(s StateID, c rune) StateID {
		targets := dfa.SortedTargets(s, SymbolLabel(c))
		if len(targets) != 1 {
			t.Fatalf("state %d: expected exactly one target on %q, got %v", s, c, targets)
		}
		return targets[0]
	}
	q0 := dfa.StartStates()[0]
	q1 := step(q0, 'b')
	q12 := step(q1, 'a')
	if q0 == q1 || q1 == q12 || q0 == q12 {
		t.Fatalf("expected three distinct states, got %d %d %d", q0, q1, q12)
	}
	if step(q0, 'a') != q0 || step(q1, 'b') != q1 || step(q12, 'a') != q12 || step(q12, 'b') != q12 {
		t.Error("DFA transitions do not match the {0}, {1}, {1,2} subset structure")
	}
	if dfa.IsAccept(q0) || dfa.IsAccept(q1) || !dfa.IsAccept(q12) {
		t.Error("only the {1,2} state should be accepting")
	}
}

// TestSeedS4SubsetSplit: NFA 0,1,2 with edges 0-a->0, 0-b->{0,1}, 1-a->2;
// the initial DFA state identifies with {0}, the next states with {0,1} and
// {0,2}, and 'b' from the state identifying with {0,2} routes back to the
// {0,1} state -- this checks the split produces exactly two further
// reachable subsets.
func TestSeedS4SubsetSplit(t *testing.T) {
	nfa := New()
	s0 := nfa.NewState()
	s1 := nfa.NewState()
	s2 := nfa.NewState()
	nfa.AddStart(s0)
	nfa.AddAccept(s2)

	nfa.AddSymbol(s0, 'a', s0)
	nfa.AddSymbol(s0, 'b', s0)
	nfa.AddSymbol(s0, 'b', s1)
	nfa.AddSymbol(s1, 'a', s2)

	dfa := ToDFA(nfa)

	// Exactly three reachable subsets: {0}, {0,1}, {0,2}.
	if len(dfa.States()) != 3 {
		t.Fatalf("got %d DFA states, want 3 ({0}, {0,1}, {0,2})", len(dfa.States()))
	}

	start := dfa.StartStates()[0]
	onB := dfa.SortedTargets(start, SymbolLabel('b'))
	if len(onB) != 1 {
		t.Fatalf("expected a single DFA target for 'b' from the start state, got %v", onB)
	}
	stateZeroOne := onB[0]

	onA := dfa.SortedTargets(stateZeroOne, SymbolLabel('a'))
	if len(onA) != 1 {
		t.Fatalf("expected a single DFA target for 'a' from {0,1}, got %v", onA)
	}
	stateTwo := onA[0]
	if !dfa.IsAccept(stateTwo) {
		t.Fatal("the subset reachable via b then a must be accepting (contains original state 2)")
	}

	// In {0,2}, state 0 goes to {0,1} on 'b' and state 2 has no 'b' edge, so
	// the DFA must route 'b' back to the {0,1} state.
	if got := dfa.SortedTargets(stateTwo, SymbolLabel('b')); len(got) != 1 || got[0] != stateZeroOne {
		t.Errorf("expected 'b' from the {0,2}-subset state to reach the {0,1} state %d, got %v", stateZeroOne, got)
	}
}
