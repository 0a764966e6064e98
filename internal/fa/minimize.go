package fa

import "sort"

// Minimize refines a total DFA to its minimal total DFA via Hopcroft-style
// partition refinement (spec §4.6). a is mutated in place; minimization of
// an automaton that is not total is unsound (the implicit trap is a real
// equivalence class), so this panics if a is not already total.
func Minimize(a *FA) {
	invariant(len(a.start) == 1, "Minimize: automaton is not a DFA (start states = %d)", len(a.start))
	invariant(a.IsEpsilonFree(), "Minimize: automaton is not a DFA (has ε-edges)")
	alphabet := a.Alphabet()
	states := a.States()
	invariant(isTotal(a, states, alphabet), "Minimize: automaton is not total")

	partition := initialPartition(a, states)
	partition = refine(a, partition, alphabet)
	rebuild(a, partition, states)
}

func isTotal(a *FA, states []StateID, alphabet []rune) bool {
	for _, s := range states {
		for _, c := range alphabet {
			if len(a.SortedTargets(s, SymbolLabel(c))) != 1 {
				return false
			}
		}
	}
	return true
}

// block is a set of state ids, represented as a sorted slice so that two
// blocks with identical membership compare equal by content and sort
// canonically against each other (the tie-break §4.6 requires).
type block []StateID

func blockKey(b block) string {
	s := make([]byte, 0, 4*len(b))
	for i, id := range b {
		if i > 0 {
			s = append(s, ',')
		}
		s = appendInt(s, int(id))
	}
	return string(s)
}

func initialPartition(a *FA, states []StateID) []block {
	var acc, rest block
	for _, s := range states {
		if a.IsAccept(s) {
			acc = append(acc, s)
		} else {
			rest = append(rest, s)
		}
	}
	var partition []block
	if len(acc) > 0 {
		partition = append(partition, acc)
	}
	if len(rest) > 0 {
		partition = append(partition, rest)
	}
	return partition
}

type workItem struct {
	b block
	c rune
}

func refine(a *FA, partition []block, alphabet []rune) []block {
	// worklist covers every (initial-block, symbol) pair.
	var worklist []workItem
	for _, b := range partition {
		for _, c := range alphabet {
			worklist = append(worklist, workItem{b, c})
		}
	}

	for len(worklist) > 0 {
		item := worklist[0]
		worklist = worklist[1:]

		inA := map[StateID]struct{}{}
		for _, s := range item.b {
			inA[s] = struct{}{}
		}

		var next []block
		changed := false
		for _, b := range partition {
			var b1, b2 block
			for _, q := range b {
				targets := a.SortedTargets(q, SymbolLabel(item.c))
				inSet := len(targets) == 1
				if inSet {
					_, inSet = inA[targets[0]]
				}
				if inSet {
					b1 = append(b1, q)
				} else {
					b2 = append(b2, q)
				}
			}
			if len(b1) > 0 && len(b2) > 0 {
				changed = true
				next = append(next, b1, b2)
				for _, c2 := range alphabet {
					worklist = append(worklist, workItem{b1, c2}, workItem{b2, c2})
				}
			} else {
				next = append(next, b)
			}
		}
		if changed {
			partition = next
		}
	}

	return partition
}

func rebuild(a *FA, partition []block, oldStates []StateID) {
	// Canonical numbering: sort blocks by their sorted member sequence, then
	// allocate fresh ids in that order.
	sort.Slice(partition, func(i, j int) bool { return blockKey(partition[i]) < blockKey(partition[j]) })

	stateToBlock := map[StateID]int{}
	for i, b := range partition {
		for _, s := range b {
			stateToBlock[s] = i
		}
	}

	out := New()
	newIDs := make([]StateID, len(partition))
	for i := range partition {
		newIDs[i] = out.NewState()
	}

	for _, s := range oldStates {
		if a.IsStart(s) {
			out.AddStart(newIDs[stateToBlock[s]])
		}
		if a.IsAccept(s) {
			out.AddAccept(newIDs[stateToBlock[s]])
		}
	}

	alphabet := a.Alphabet()
	for i, b := range partition {
		rep := b[0]
		for _, c := range alphabet {
			targets := a.SortedTargets(rep, SymbolLabel(c))
			if len(targets) == 0 {
				continue
			}
			out.AddSymbol(newIDs[i], c, newIDs[stateToBlock[targets[0]]])
		}
	}

	*a = *out
}
