package fa

// EliminateEpsilon removes every ε-edge from a while preserving its
// language, per spec §4.3's five-phase algorithm. a is mutated in place;
// its only consumer after this call is the result itself (spec §9).
func EliminateEpsilon(a *FA) {
	states := a.States()
	closure := epsilonClosure(a, states)
	materializeClosure(a, closure)
	liftAccepts(a, closure)
	bypassEpsilon(a, states)
	stripEpsilonEdges(a)
	sweepDead(a)
}

// epsilonClosure computes, for every pair (u, v) in states, whether v is
// reachable from u via one or more ε-edges, using Floyd–Warshall transitive
// closure over the boolean adjacency matrix of direct ε-edges. O(n^3) is
// acceptable for the automaton sizes this toolkit targets (spec §9); the
// closure is the positive (non-reflexive) one — M[u][u] is true only if u
// has an actual ε-cycle back to itself.
func epsilonClosure(a *FA, states []StateID) map[StateID]map[StateID]bool {
	n := len(states)
	idx := make(map[StateID]int, n)
	for i, s := range states {
		idx[s] = i
	}

	m := make([][]bool, n)
	for i := range m {
		m[i] = make([]bool, n)
	}

	for _, u := range states {
		for _, v := range a.SortedTargets(u, EpsilonLabel) {
			m[idx[u]][idx[v]] = true
		}
	}

	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			if !m[i][k] {
				continue
			}
			for j := 0; j < n; j++ {
				if m[k][j] {
					m[i][j] = true
				}
			}
		}
	}

	closure := make(map[StateID]map[StateID]bool, n)
	for i, u := range states {
		row := make(map[StateID]bool)
		for j, v := range states {
			if m[i][j] {
				row[v] = true
			}
		}
		closure[u] = row
	}
	return closure
}

// materializeClosure adds a direct ε-edge u->v for every true entry of the
// closure, producing the ε-saturated graph.
func materializeClosure(a *FA, closure map[StateID]map[StateID]bool) {
	for u, row := range closure {
		for v := range row {
			a.AddEpsilon(u, v)
		}
	}
}

// liftAccepts marks u accept whenever it has an ε-edge to some accept
// state.
func liftAccepts(a *FA, closure map[StateID]map[StateID]bool) {
	for u, row := range closure {
		for v := range row {
			if a.IsAccept(v) {
				a.AddAccept(u)
				break
			}
		}
	}
}

// bypassEpsilon adds a direct edge u-c->w for every ε-edge u->v and every
// non-ε edge v-c->w found in the pre-bypass snapshot, so later phases never
// see a stale view while they're still adding edges.
func bypassEpsilon(a *FA, states []StateID) {
	snapshot := a.Clone()

	for _, u := range states {
		for _, v := range snapshot.SortedTargets(u, EpsilonLabel) {
			for _, l := range snapshot.Labels(v) {
				if l.Epsilon {
					continue
				}
				for _, w := range snapshot.SortedTargets(v, l) {
					a.AddEdge(u, l, w)
				}
			}
		}
	}
}

// stripEpsilonEdges removes every Epsilon-keyed entry from every state's
// label map.
func stripEpsilonEdges(a *FA) {
	for _, byLabel := range a.trans {
		delete(byLabel, EpsilonLabel)
	}
}

// sweepDead removes every state with zero incoming references over symbol
// edges, except start states (start states are entry points, not graph
// nodes counted by in-degree — spec §9). A single sweep suffices for a
// well-formed Thompson-built NFA.
func sweepDead(a *FA) {
	indegree := map[StateID]int{}
	for _, s := range a.States() {
		indegree[s] = 0
	}
	for _, s := range a.States() {
		for _, l := range a.Labels(s) {
			for _, t := range a.SortedTargets(s, l) {
				indegree[t]++
			}
		}
	}

	for _, s := range a.States() {
		if a.IsStart(s) {
			continue
		}
		if indegree[s] == 0 {
			a.RemoveState(s)
		}
	}
}
