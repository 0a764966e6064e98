package refsm

import "github.com/mjstrand/refsm/internal/fa"

// FiniteAutomaton is a finite automaton over a single-code-point alphabet.
// Every transformation in the toolkit (ε-elimination, subset construction,
// completion, minimization, complement, state elimination, membership, and
// the shortest-word query) is a method on this type, mutating it in place
// except where a new automaton or regex is the natural result.
//
// Most operations require the automaton to already be in a particular
// shape (ε-free, deterministic, total); calling one out of order panics
// with a descriptive message rather than silently producing a wrong
// result — see DESIGN.md's error-handling note. Compile builds straight
// from a pattern to a minimal total DFA and never hits these panics.
type FiniteAutomaton struct {
	inner *fa.FA
}

// FromRegex builds an ε-NFA from r via Thompson construction.
func FromRegex(r Regex) *FiniteAutomaton {
	return &FiniteAutomaton{inner: fa.FromRegex(r.inner)}
}

// Compile parses pattern with ParseInfix and runs the full pipeline —
// Thompson construction, ε-elimination, subset construction, completion,
// and minimization — returning a minimal total DFA in one call.
//
// Example:
//
//	d, err := refsm.Compile("(a|b)*ab")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(d.Accepts("aab"))
func Compile(pattern string) (*FiniteAutomaton, error) {
	r, err := ParseInfix(pattern)
	if err != nil {
		return nil, err
	}
	d := FromRegex(r)
	d.EliminateEpsilon()
	d = d.ToDFA()
	d.MakeTotal()
	d.Minimize()
	return d, nil
}

// EliminateEpsilon removes every ε-edge from the automaton while
// preserving its language, in place.
func (a *FiniteAutomaton) EliminateEpsilon() {
	fa.EliminateEpsilon(a.inner)
}

// ToDFA builds a deterministic automaton via subset construction. The
// receiver's NFA must already be ε-free.
func (a *FiniteAutomaton) ToDFA() *FiniteAutomaton {
	return &FiniteAutomaton{inner: fa.ToDFA(a.inner)}
}

// MakeTotal completes the DFA with a single trap state, in place. Panics
// if the automaton is not already a DFA.
func (a *FiniteAutomaton) MakeTotal() {
	fa.MakeTotal(a.inner)
}

// Minimize refines a total DFA to its minimal total DFA, in place. Panics
// if the automaton is not already a total DFA.
func (a *FiniteAutomaton) Minimize() {
	fa.Minimize(a.inner)
}

// Complement flips the accept set of a total DFA to its complement within
// Σ*, in place. Panics if the automaton is not already a total DFA.
func (a *FiniteAutomaton) Complement() {
	fa.Complement(a.inner)
}

// ToRegex synthesizes a regex whose language equals the automaton's, via
// state elimination. The result is correct but not minimized or
// canonicalized.
func (a *FiniteAutomaton) ToRegex() Regex {
	return Regex{inner: fa.ToRegex(a.inner)}
}

// Accepts tests membership: whether word is in the automaton's language.
// The automaton must be ε-free.
func (a *FiniteAutomaton) Accepts(word string) bool {
	return fa.Accepts(a.inner, word)
}

// MinWordLenWithExactCount finds the length of the shortest word accepted
// by the automaton that contains symbol exactly k times. found is false if
// no such word exists.
func (a *FiniteAutomaton) MinWordLenWithExactCount(symbol rune, k int) (found bool, length int) {
	return fa.MinWordLenWithExactCount(a.inner, symbol, k)
}

// StateCount returns the number of states in the automaton.
func (a *FiniteAutomaton) StateCount() int {
	return len(a.inner.States())
}

// Alphabet returns the set of symbols appearing on any non-ε edge,
// sorted ascending.
func (a *FiniteAutomaton) Alphabet() []rune {
	return a.inner.Alphabet()
}

// Dot renders the automaton as a Graphviz digraph.
func (a *FiniteAutomaton) Dot() string {
	return fa.Dot(a.inner)
}

// RenderPNG shells out to the Graphviz dot binary to rasterize the
// automaton's digraph as a PNG. Returns an error if dot is not on PATH.
func (a *FiniteAutomaton) RenderPNG() ([]byte, error) {
	return fa.RenderPNG(a.inner)
}

// RenderPNGWith is RenderPNG with an explicit dot binary path or name, for
// callers that load it from configuration instead of relying on PATH.
func (a *FiniteAutomaton) RenderPNGWith(dotBinary string) ([]byte, error) {
	return fa.RenderPNGWith(a.inner, dotBinary)
}
