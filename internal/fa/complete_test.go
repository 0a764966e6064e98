package fa

import "testing"

func TestMakeTotalAddsTrapState(t *testing.T) {
	d := toDFAFromPattern(t, "ab")
	before := len(d.States())
	MakeTotal(d)
	if len(d.States()) != before+1 {
		t.Fatalf("MakeTotal should add exactly one trap state, went from %d to %d", before, len(d.States()))
	}
	alphabet := d.Alphabet()
	for _, s := range d.States() {
		for _, c := range alphabet {
			if got := d.SortedTargets(s, SymbolLabel(c)); len(got) != 1 {
				t.Errorf("state %d missing total transition on %q", s, c)
			}
		}
	}
}

func TestMakeTotalTrapIsNotAccepting(t *testing.T) {
	d := toDFAFromPattern(t, "ab")
	MakeTotal(d)
	if !Accepts(d, "ab") {
		t.Fatal("ab should still be accepted after completion")
	}
	if Accepts(d, "ba") {
		t.Fatal("ba should be rejected: must route through the trap, not an accept state")
	}
}

func TestMakeTotalPreservesLanguage(t *testing.T) {
	d := toDFAFromPattern(t, "(a|b)*ab")
	accept := []string{"ab", "aab", "bab"}
	reject := []string{"", "a", "ba", "abc"}
	MakeTotal(d)
	for _, w := range accept {
		if !Accepts(d, w) {
			t.Errorf("expected accept %q after MakeTotal", w)
		}
	}
	for _, w := range reject {
		if Accepts(d, w) {
			t.Errorf("expected reject %q after MakeTotal", w)
		}
	}
}

func TestMakeTotalIsIdempotentOnAlphabet(t *testing.T) {
	d := toDFAFromPattern(t, "ab")
	MakeTotal(d)
	alphabetBefore := d.Alphabet()
	statesBefore := len(d.States())
	MakeTotal(d)
	if len(d.States()) != statesBefore+1 {
		t.Fatal("calling MakeTotal again on an already-total DFA should add a fresh no-op trap, not grow the alphabet")
	}
	if len(d.Alphabet()) != len(alphabetBefore) {
		t.Fatal("MakeTotal must not extend the alphabet on a later call")
	}
}
