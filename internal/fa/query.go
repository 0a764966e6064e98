package fa

// Accepts tests membership: starting from the start-state set, each input
// rune replaces the current set with the union of δ(s, c) over symbol-only
// transitions (spec §4.9). The automaton is expected to be ε-free; if the
// state set becomes empty before the end of input, the word is rejected
// early.
func Accepts(a *FA, word string) bool {
	invariant(a.IsEpsilonFree(), "Accepts: automaton must be ε-free")

	current := map[StateID]struct{}{}
	for _, s := range a.StartStates() {
		current[s] = struct{}{}
	}

	for _, c := range word {
		if len(current) == 0 {
			return false
		}
		next := map[StateID]struct{}{}
		for s := range current {
			for _, t := range a.SortedTargets(s, SymbolLabel(c)) {
				next[t] = struct{}{}
			}
		}
		current = next
	}

	for s := range current {
		if a.IsAccept(s) {
			return true
		}
	}
	return false
}

// searchNode is the BFS search state for MinWordLenWithExactCount: the
// automaton state, the most recent transition's label, the running count of
// symbol occurrences, and the number of hops since the last occurrence.
type searchNode struct {
	state StateID
	label Label
	count int
	hops  int
}

// MinWordLenWithExactCount finds the length of the shortest word accepted
// by a that contains symbol exactly k times, via level-by-level BFS over
// (state, last label, count, hops-since-last-occurrence) (spec §4.9).
// Pruning: count > k is dead, and hops exceeding the automaton's state
// count is dead (any longer gap without producing symbol would revisit a
// state without adding an occurrence — no shorter word is lost by cutting
// it off there).
func MinWordLenWithExactCount(a *FA, symbol rune, k int) (found bool, length int) {
	states := a.States()
	maxHops := len(states)

	type key struct {
		state StateID
		count int
		hops  int
	}
	seen := map[key]struct{}{}

	var level []searchNode
	for _, s := range a.StartStates() {
		level = append(level, searchNode{state: s, label: EpsilonLabel, count: 0, hops: 0})
	}

	depth := 0
	for len(level) > 0 {
		var next []searchNode
		for _, n := range level {
			if n.label == SymbolLabel(symbol) {
				n.count++
				n.hops = 0
			} else if !n.label.Epsilon || depth > 0 {
				n.hops++
			}

			if n.count > k {
				continue
			}
			if n.hops > maxHops {
				continue
			}

			if a.IsAccept(n.state) && n.count == k {
				return true, depth
			}

			kk := key{n.state, n.count, n.hops}
			if _, ok := seen[kk]; ok {
				continue
			}
			seen[kk] = struct{}{}

			for _, l := range a.Labels(n.state) {
				if l.Epsilon {
					continue
				}
				for _, t := range a.SortedTargets(n.state, l) {
					next = append(next, searchNode{state: t, label: l, count: n.count, hops: n.hops})
				}
			}
		}
		level = next
		depth++
	}

	return false, 0
}
