// Package fa implements the finite-automaton side of the toolkit: the
// automaton model and every transformation between regexes and automata
// (Thompson construction, ε-elimination, subset construction, completion,
// minimization, complement, state elimination) plus membership testing and
// the shortest-word-with-exact-count query.
package fa

import (
	"fmt"
	"sort"
)

// StateID identifies a state within a single FA instance. Ids are local to
// the automaton that allocated them and are never reused across instances.
type StateID int

// Label is an automaton edge label: either Epsilon or a single code point.
type Label struct {
	Epsilon bool
	Sym     rune // valid iff !Epsilon
}

// EpsilonLabel is the shared ε label value.
var EpsilonLabel = Label{Epsilon: true}

// SymbolLabel builds a Label for a literal code point.
func SymbolLabel(r rune) Label { return Label{Sym: r} }

func (l Label) String() string {
	if l.Epsilon {
		return "ε"
	}
	return string(l.Sym)
}

func (l Label) less(o Label) bool {
	if l.Epsilon != o.Epsilon {
		return l.Epsilon // epsilon sorts first
	}
	return l.Sym < o.Sym
}

// FA is a finite automaton: a monotone id counter, a start-state set, an
// accept-state set, and a transition table. All three container families
// are conceptually sets/maps but every traversal whose order can affect
// the result goes through the sorted helpers below (States, Labels,
// SortedTargets); raw Go map ranges are used only where order does not
// matter (set unions, deletions, copies), so that two runs over identical
// input produce byte-identical results (spec's
// determinism contract; minimization, state elimination and dump all rely
// on it).
//
// Invariants (see ast and fa doc comments for how each stage preserves
// them):
//
//	I1  every id in start/accept/transition targets is a key of trans.
//	I2  removing a state removes all of its edges, transitively (no
//	    dangling references left behind).
//	I3  lastState is a strict upper bound on issued ids; never lowered.
//	I4  an ε-free automaton has no Label{Epsilon: true} key anywhere.
//	I5  a DFA has exactly one start state, no ε-edges, at most one target
//	    per (state, symbol).
//	I6  a total DFA additionally has a target for every (state, symbol)
//	    pair over its alphabet.
type FA struct {
	lastState int
	start     map[StateID]struct{}
	accept    map[StateID]struct{}
	trans     map[StateID]map[Label]map[StateID]struct{}
}

// New returns an empty automaton.
func New() *FA {
	return &FA{
		start:  map[StateID]struct{}{},
		accept: map[StateID]struct{}{},
		trans:  map[StateID]map[Label]map[StateID]struct{}{},
	}
}

// NewState allocates a fresh state id, strictly greater than every id ever
// issued by this automaton (I3), and registers it in the transition table.
func (a *FA) NewState() StateID {
	id := StateID(a.lastState)
	a.lastState++
	a.trans[id] = map[Label]map[StateID]struct{}{}
	return id
}

// AddStart marks s as a start state.
func (a *FA) AddStart(s StateID) { a.start[s] = struct{}{} }

// AddAccept marks s as an accept state.
func (a *FA) AddAccept(s StateID) { a.accept[s] = struct{}{} }

// IsAccept reports whether s is an accept state.
func (a *FA) IsAccept(s StateID) bool { _, ok := a.accept[s]; return ok }

// IsStart reports whether s is a start state.
func (a *FA) IsStart(s StateID) bool { _, ok := a.start[s]; return ok }

// AddEdge adds a from-label->to transition, allocating intermediate maps as
// needed. Adding the same edge twice is a no-op (transitions target sets,
// not lists).
func (a *FA) AddEdge(from StateID, l Label, to StateID) {
	byLabel, ok := a.trans[from]
	if !ok {
		byLabel = map[Label]map[StateID]struct{}{}
		a.trans[from] = byLabel
	}
	targets, ok := byLabel[l]
	if !ok {
		targets = map[StateID]struct{}{}
		byLabel[l] = targets
	}
	targets[to] = struct{}{}
}

// AddEpsilon adds an ε-edge from->to.
func (a *FA) AddEpsilon(from, to StateID) { a.AddEdge(from, EpsilonLabel, to) }

// AddSymbol adds a Symbol(r) edge from->to.
func (a *FA) AddSymbol(from StateID, r rune, to StateID) { a.AddEdge(from, SymbolLabel(r), to) }

// Targets returns the (unordered) target set for (s, l), or nil.
func (a *FA) Targets(s StateID, l Label) map[StateID]struct{} {
	byLabel, ok := a.trans[s]
	if !ok {
		return nil
	}
	return byLabel[l]
}

// HasState reports whether s is a known state of this automaton.
func (a *FA) HasState(s StateID) bool {
	_, ok := a.trans[s]
	return ok
}

// States returns every state id, sorted ascending.
func (a *FA) States() []StateID {
	out := make([]StateID, 0, len(a.trans))
	for s := range a.trans {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// StartStates returns the start-state set, sorted ascending.
func (a *FA) StartStates() []StateID { return sortedIDs(a.start) }

// AcceptStates returns the accept-state set, sorted ascending.
func (a *FA) AcceptStates() []StateID { return sortedIDs(a.accept) }

func sortedIDs(set map[StateID]struct{}) []StateID {
	out := make([]StateID, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Labels returns the set of distinct labels leaving s, sorted (ε first,
// then symbols ascending).
func (a *FA) Labels(s StateID) []Label {
	byLabel, ok := a.trans[s]
	if !ok {
		return nil
	}
	out := make([]Label, 0, len(byLabel))
	for l := range byLabel {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].less(out[j]) })
	return out
}

// SortedTargets returns the target ids for (s, l), sorted ascending.
func (a *FA) SortedTargets(s StateID, l Label) []StateID {
	return sortedIDs(a.Targets(s, l))
}

// Alphabet returns the set of symbols appearing on any non-ε edge of a,
// sorted ascending. The alphabet is fixed at the point of completion and is
// never extended afterwards (spec I6).
func (a *FA) Alphabet() []rune {
	seen := map[rune]struct{}{}
	for _, s := range a.States() {
		for _, l := range a.Labels(s) {
			if !l.Epsilon {
				seen[l.Sym] = struct{}{}
			}
		}
	}
	out := make([]rune, 0, len(seen))
	for r := range seen {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// IsEpsilonFree reports whether a contains no ε-edges (invariant I4).
func (a *FA) IsEpsilonFree() bool {
	for _, s := range a.States() {
		if targets := a.trans[s][EpsilonLabel]; len(targets) > 0 {
			return false
		}
	}
	return true
}

// RemoveState deletes s and every edge that mentions it, from either end
// (invariant I2's transitive sweep). Removing a state that is also a start
// state still removes it — callers of the dead-state sweep (§4.3) must not
// pass start states to this.
func (a *FA) RemoveState(s StateID) {
	delete(a.trans, s)
	delete(a.start, s)
	delete(a.accept, s)
	for _, byLabel := range a.trans {
		for l, targets := range byLabel {
			delete(targets, s)
			if len(targets) == 0 {
				delete(byLabel, l)
			}
		}
	}
}

// Clone returns a deep, independent copy of a.
func (a *FA) Clone() *FA {
	out := New()
	out.lastState = a.lastState
	for s := range a.start {
		out.start[s] = struct{}{}
	}
	for s := range a.accept {
		out.accept[s] = struct{}{}
	}
	for s, byLabel := range a.trans {
		nl := map[Label]map[StateID]struct{}{}
		for l, targets := range byLabel {
			nt := map[StateID]struct{}{}
			for t := range targets {
				nt[t] = struct{}{}
			}
			nl[l] = nt
		}
		out.trans[s] = nl
	}
	return out
}

func invariant(cond bool, format string, args ...interface{}) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
