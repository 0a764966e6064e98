package fa

// ToDFA builds a deterministic automaton from an ε-free NFA via subset
// construction (spec §4.4), grounded on original_source's to_dfa BFS
// (queue + mapping/reverse_mapping over sorted subsets). The initial DFA
// state corresponds to the NFA's full start-state set, not a singleton.
func ToDFA(nfa *FA) *FA {
	invariant(nfa.IsEpsilonFree(), "ToDFA: input NFA must be ε-free")

	dfa := New()

	type subsetKey string
	keyOf := func(subset []StateID) subsetKey {
		// subset is already sorted by callers; build a stable string key.
		b := make([]byte, 0, 4*len(subset))
		for i, s := range subset {
			if i > 0 {
				b = append(b, ',')
			}
			b = appendInt(b, int(s))
		}
		return subsetKey(b)
	}

	mapping := map[StateID][]StateID{}      // dfa state -> sorted nfa subset
	reverseMapping := map[subsetKey]StateID{} // sorted nfa subset -> dfa state
	queue := []StateID{}
	used := map[StateID]struct{}{}

	startSubset := nfa.StartStates()
	dfaStart := dfa.NewState()
	dfa.AddStart(dfaStart)
	mapping[dfaStart] = startSubset
	reverseMapping[keyOf(startSubset)] = dfaStart
	queue = append(queue, dfaStart)

	for len(queue) > 0 {
		d := queue[0]
		queue = queue[1:]
		if _, ok := used[d]; ok {
			continue
		}
		used[d] = struct{}{}

		subset := mapping[d]
		for _, s := range subset {
			if nfa.IsAccept(s) {
				dfa.AddAccept(d)
			}
		}

		// symbols leaving any state in subset, sorted, union of targets.
		symTargets := map[rune]map[StateID]struct{}{}
		for _, s := range subset {
			for _, l := range nfa.Labels(s) {
				set, ok := symTargets[l.Sym]
				if !ok {
					set = map[StateID]struct{}{}
					symTargets[l.Sym] = set
				}
				for _, t := range nfa.SortedTargets(s, l) {
					set[t] = struct{}{}
				}
			}
		}

		for _, c := range sortedRunes(symTargets) {
			targetSet := symTargets[c]
			if len(targetSet) == 0 {
				continue
			}
			targetSubset := sortedIDs(targetSet)
			k := keyOf(targetSubset)
			dTarget, ok := reverseMapping[k]
			if !ok {
				dTarget = dfa.NewState()
				mapping[dTarget] = targetSubset
				reverseMapping[k] = dTarget
				queue = append(queue, dTarget)
			}
			dfa.AddSymbol(d, c, dTarget)
		}
	}

	return dfa
}

func sortedRunes(m map[rune]map[StateID]struct{}) []rune {
	out := make([]rune, 0, len(m))
	for r := range m {
		out = append(out, r)
	}
	// simple insertion sort; alphabets are small.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}

func appendInt(b []byte, n int) []byte {
	if n == 0 {
		return append(b, '0')
	}
	neg := n < 0
	if neg {
		n = -n
	}
	start := len(b)
	for n > 0 {
		b = append(b, byte('0'+n%10))
		n /= 10
	}
	if neg {
		b = append(b, '-')
	}
	// reverse the digits just appended
	for i, j := start, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return b
}
