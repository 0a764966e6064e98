package fa

import "github.com/mjstrand/refsm/internal/ast"

// FromRegex builds an ε-NFA from a regex AST via Thompson construction
// (spec §4.2). One overall start state and one overall accept state are
// allocated up front; build wires transitions between endpoints it is
// handed, never returning new ids to its caller.
//
// An empty regex (nil Root) yields an automaton with a start and accept
// state but no path between them — it accepts nothing, matching the AST's
// "empty regex = no match" semantics.
func FromRegex(r ast.Regex) *FA {
	a := New()
	start := a.NewState()
	accept := a.NewState()
	a.AddStart(start)
	a.AddAccept(accept)

	if r.Root != nil {
		build(a, r.Root, start, accept)
	}

	return a
}

func build(a *FA, n *ast.Node, start, accept StateID) {
	switch n.Kind {
	case ast.KindEither:
		lS, lA := a.NewState(), a.NewState()
		rS, rA := a.NewState(), a.NewState()
		a.AddEpsilon(start, lS)
		a.AddEpsilon(lA, accept)
		a.AddEpsilon(start, rS)
		a.AddEpsilon(rA, accept)
		build(a, n.Left, lS, lA)
		build(a, n.Right, rS, rA)

	case ast.KindConsecutive:
		mid := a.NewState()
		build(a, n.Left, start, mid)
		build(a, n.Right, mid, accept)

	case ast.KindNoneOrMore:
		xS, xA := a.NewState(), a.NewState()
		a.AddEpsilon(start, xS)
		a.AddEpsilon(start, accept)
		a.AddEpsilon(xA, accept)
		a.AddEpsilon(xA, xS)
		build(a, n.Child, xS, xA)

	case ast.KindNoneOrOnce:
		xS, xA := a.NewState(), a.NewState()
		a.AddEpsilon(start, xS)
		a.AddEpsilon(start, accept)
		a.AddEpsilon(xA, accept)
		build(a, n.Child, xS, xA)

	case ast.KindOnceOrMore:
		xS, xA := a.NewState(), a.NewState()
		a.AddEpsilon(start, xS)
		a.AddEpsilon(xA, accept)
		a.AddEpsilon(xA, xS)
		build(a, n.Child, xS, xA)

	case ast.KindSymbol:
		a.AddSymbol(start, n.Sym, accept)

	case ast.KindEpsilon:
		a.AddEpsilon(start, accept)

	default:
		invariant(false, "thompson: unknown node kind %v", n.Kind)
	}
}
