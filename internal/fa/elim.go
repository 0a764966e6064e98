package fa

import "github.com/mjstrand/refsm/internal/ast"

// ToRegex produces a regex whose language equals a's, via state elimination
// (spec §4.8, grounded on the classic Kleene/Brzozowski state-removal
// construction as shaped by
// other_examples/99dc30a3_wolever-nfa2regex__nfa2regex.go.go's ToRegex:
// normalize endpoints, build forward/reverse regex-edge indices, eliminate
// states one at a time folding self-loops into a Kleene star). The result
// is correct but not minimized or canonicalized (spec's final note on
// §4.8).
func ToRegex(a *FA) ast.Regex {
	states := a.States()
	if len(states) == 0 {
		return ast.Regex{}
	}

	g := newRegexGraph(a, states)
	newStart, newAccept := g.normalizeEndpoints(a)

	order := g.bfsEliminationOrder(newStart, newAccept)
	for _, x := range order {
		g.eliminate(x)
	}

	// After eliminating every intermediate state, the remaining graph has
	// only newStart and newAccept; the answer is the edge label between
	// them, if any.
	label := g.edge(newStart, newAccept)
	if label == nil {
		return ast.Regex{}
	}
	return ast.Regex{Root: label}
}

// regexGraph holds forward and reverse indices of regex-labeled edges
// between states, keyed by (from, to).
type regexGraph struct {
	forward map[StateID]map[StateID]*ast.Node
	reverse map[StateID]map[StateID]*ast.Node
	order   []StateID // all states, in deterministic (sorted) order, for BFS seeding
}

func newRegexGraph(a *FA, states []StateID) *regexGraph {
	g := &regexGraph{
		forward: map[StateID]map[StateID]*ast.Node{},
		reverse: map[StateID]map[StateID]*ast.Node{},
		order:   states,
	}
	for _, u := range states {
		for _, l := range a.Labels(u) {
			var labelNode *ast.Node
			if l.Epsilon {
				labelNode = ast.Epsilon()
			} else {
				labelNode = ast.Symbol(l.Sym)
			}
			for _, v := range a.SortedTargets(u, l) {
				g.addEdge(u, v, labelNode.Clone())
			}
		}
	}
	return g
}

func (g *regexGraph) addEdge(u, v StateID, label *ast.Node) {
	if existing := g.edge(u, v); existing != nil {
		label = ast.Either(existing, label)
	}
	g.setEdge(u, v, label)
}

func (g *regexGraph) edge(u, v StateID) *ast.Node {
	row, ok := g.forward[u]
	if !ok {
		return nil
	}
	return row[v]
}

func (g *regexGraph) setEdge(u, v StateID, label *ast.Node) {
	fwd, ok := g.forward[u]
	if !ok {
		fwd = map[StateID]*ast.Node{}
		g.forward[u] = fwd
	}
	fwd[v] = label

	rev, ok := g.reverse[v]
	if !ok {
		rev = map[StateID]*ast.Node{}
		g.reverse[v] = rev
	}
	rev[u] = label
}

func (g *regexGraph) removeEdge(u, v StateID) {
	if fwd, ok := g.forward[u]; ok {
		delete(fwd, v)
	}
	if rev, ok := g.reverse[v]; ok {
		delete(rev, u)
	}
}

func (g *regexGraph) incoming(x StateID) []StateID {
	return g.sortedKeys(g.reverse[x])
}

func (g *regexGraph) outgoing(x StateID) []StateID {
	return g.sortedKeys(g.forward[x])
}

func (g *regexGraph) sortedKeys(m map[StateID]*ast.Node) []StateID {
	out := make([]StateID, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}

// normalizeEndpoints allocates a fresh new_start/new_accept pair with
// ε-edges to/from every original start/accept state, per spec §4.8 step 1.
func (g *regexGraph) normalizeEndpoints(a *FA) (newStart, newAccept StateID) {
	newStart = StateID(a.lastState)
	a.lastState++
	newAccept = StateID(a.lastState)
	a.lastState++

	for _, s := range a.StartStates() {
		g.addEdge(newStart, s, ast.Epsilon())
	}
	for _, s := range a.AcceptStates() {
		g.addEdge(s, newAccept, ast.Epsilon())
	}

	return newStart, newAccept
}

// bfsEliminationOrder walks the original (pre-elimination) graph breadth
// first from newStart, recording every state other than the two endpoints
// in discovery order; any state the BFS never reaches (disconnected from
// newStart) is appended afterwards in ascending id order, so every
// non-endpoint state is eliminated exactly once regardless of connectivity.
func (g *regexGraph) bfsEliminationOrder(newStart, newAccept StateID) []StateID {
	visited := map[StateID]struct{}{newStart: {}}
	queue := []StateID{newStart}
	var order []StateID

	for len(queue) > 0 {
		x := queue[0]
		queue = queue[1:]
		for _, y := range g.outgoing(x) {
			if y == x {
				continue
			}
			if _, ok := visited[y]; ok {
				continue
			}
			visited[y] = struct{}{}
			queue = append(queue, y)
			if y != newAccept {
				order = append(order, y)
			}
		}
	}

	for _, s := range g.order {
		if _, ok := visited[s]; !ok {
			order = append(order, s)
		}
	}

	return order
}

// eliminate removes x from the graph, per spec §4.8 step 3: fold its
// self-loop (if any) into a Kleene star placed between every incoming and
// every outgoing edge, then delete x's row from both indices.
func (g *regexGraph) eliminate(x StateID) {
	selfLoop := g.edge(x, x)
	if selfLoop != nil {
		g.removeEdge(x, x)
	}

	incoming := g.incoming(x)
	outgoing := g.outgoing(x)

	for _, u := range incoming {
		if u == x {
			continue
		}
		rIn := g.edge(u, x)
		for _, v := range outgoing {
			if v == x {
				continue
			}
			rOut := g.edge(x, v)

			var combined *ast.Node
			if selfLoop != nil {
				combined = ast.Consecutive(
					ast.Consecutive(rIn.Clone(), ast.NoneOrMore(selfLoop.Clone())),
					rOut.Clone(),
				)
			} else {
				combined = ast.Consecutive(rIn.Clone(), rOut.Clone())
			}
			g.addEdge(u, v, combined)
		}
	}

	// remove x's row from both indices.
	for _, v := range outgoing {
		g.removeEdge(x, v)
	}
	for _, u := range incoming {
		g.removeEdge(u, x)
	}
	delete(g.forward, x)
	delete(g.reverse, x)
}
