package fa

import "testing"

func TestComplementInvertsAcceptance(t *testing.T) {
	d := totalDFA(t, "ab")
	words := []string{"ab", "", "a", "ba", "abc", "aab"}
	before := make(map[string]bool, len(words))
	for _, w := range words {
		before[w] = Accepts(d, w)
	}

	Complement(d)

	for _, w := range words {
		if got := Accepts(d, w); got == before[w] {
			t.Errorf("Accepts(complement, %q) = %v, want %v", w, got, !before[w])
		}
	}
}

func TestComplementTwiceIsIdentity(t *testing.T) {
	d := totalDFA(t, "(a|b)*ab")
	words := []string{"ab", "", "a", "aba", "bab"}
	before := make(map[string]bool, len(words))
	for _, w := range words {
		before[w] = Accepts(d, w)
	}

	Complement(d)
	Complement(d)

	for _, w := range words {
		if got := Accepts(d, w); got != before[w] {
			t.Errorf("double complement changed Accepts(%q): got %v, want %v", w, got, before[w])
		}
	}
}

func TestComplementRejectsNonTotalDFA(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Complement on a non-total DFA should panic")
		}
	}()
	d := toDFAFromPattern(t, "ab")
	Complement(d)
}
