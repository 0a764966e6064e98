package fa

import "testing"

func TestNewStateIdsAreMonotone(t *testing.T) {
	a := New()
	s0 := a.NewState()
	s1 := a.NewState()
	s2 := a.NewState()
	if !(s0 < s1 && s1 < s2) {
		t.Fatalf("ids not strictly increasing: %d %d %d", s0, s1, s2)
	}
}

func TestAddEdgeIsIdempotent(t *testing.T) {
	a := New()
	s0 := a.NewState()
	s1 := a.NewState()
	a.AddSymbol(s0, 'a', s1)
	a.AddSymbol(s0, 'a', s1)
	if got := a.SortedTargets(s0, SymbolLabel('a')); len(got) != 1 {
		t.Fatalf("got %d targets, want 1 (dedup)", len(got))
	}
}

func TestRemoveStateSweepsDanglingEdges(t *testing.T) {
	a := New()
	s0 := a.NewState()
	s1 := a.NewState()
	a.AddSymbol(s0, 'a', s1)
	a.RemoveState(s1)
	if a.HasState(s1) {
		t.Fatal("s1 still present after RemoveState")
	}
	if got := a.SortedTargets(s0, SymbolLabel('a')); len(got) != 0 {
		t.Fatalf("dangling edge to removed state: %v", got)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	a := New()
	s0 := a.NewState()
	s1 := a.NewState()
	a.AddStart(s0)
	a.AddAccept(s1)
	a.AddSymbol(s0, 'a', s1)

	b := a.Clone()
	b.AddSymbol(s0, 'b', s1)

	if len(a.SortedTargets(s0, SymbolLabel('b'))) != 0 {
		t.Fatal("mutating clone affected original")
	}
	if len(b.SortedTargets(s0, SymbolLabel('a'))) != 1 {
		t.Fatal("clone lost original edge")
	}
}

func TestAlphabetExcludesEpsilon(t *testing.T) {
	a := New()
	s0, s1, s2 := a.NewState(), a.NewState(), a.NewState()
	a.AddSymbol(s0, 'a', s1)
	a.AddEpsilon(s1, s2)
	got := a.Alphabet()
	if len(got) != 1 || got[0] != 'a' {
		t.Fatalf("Alphabet() = %v, want [a]", got)
	}
}

func TestIsEpsilonFree(t *testing.T) {
	a := New()
	s0, s1 := a.NewState(), a.NewState()
	if !a.IsEpsilonFree() {
		t.Fatal("fresh automaton should be ε-free")
	}
	a.AddEpsilon(s0, s1)
	if a.IsEpsilonFree() {
		t.Fatal("automaton with ε-edge reported as ε-free")
	}
}

func TestLabelsSortedEpsilonFirst(t *testing.T) {
	a := New()
	s0, s1 := a.NewState(), a.NewState()
	a.AddSymbol(s0, 'b', s1)
	a.AddEpsilon(s0, s1)
	a.AddSymbol(s0, 'a', s1)

	labels := a.Labels(s0)
	if len(labels) != 3 || !labels[0].Epsilon || labels[1].Sym != 'a' || labels[2].Sym != 'b' {
		t.Fatalf("Labels() = %v, want [ε a b]", labels)
	}
}
