// Package ast defines the regular-expression abstract syntax tree and the
// recursive-descent parser that builds it.
package ast

import "fmt"

// Kind tags the variant a Node holds.
type Kind int

const (
	KindEpsilon Kind = iota
	KindSymbol
	KindEither
	KindConsecutive
	KindNoneOrMore
	KindNoneOrOnce
	KindOnceOrMore
)

func (k Kind) String() string {
	switch k {
	case KindEpsilon:
		return "Epsilon"
	case KindSymbol:
		return "Symbol"
	case KindEither:
		return "Either"
	case KindConsecutive:
		return "Consecutive"
	case KindNoneOrMore:
		return "NoneOrMore"
	case KindNoneOrOnce:
		return "NoneOrOnce"
	case KindOnceOrMore:
		return "OnceOrMore"
	default:
		return "Unknown"
	}
}

// Node is a single tagged-union cell of the regex tree. Leaves are
// KindSymbol or KindEpsilon only; every other kind owns its children
// exclusively (no DAG sharing) and never has a nil child.
type Node struct {
	Kind  Kind
	Sym   rune  // valid iff Kind == KindSymbol
	Left  *Node // Either, Consecutive
	Right *Node // Either, Consecutive
	Child *Node // NoneOrMore, NoneOrOnce, OnceOrMore
}

// Regex is a regular expression: an optional root. A nil Root is the empty
// regex, which matches nothing — distinct from Epsilon, which matches the
// empty word.
type Regex struct {
	Root *Node
}

func Symbol(r rune) *Node { return &Node{Kind: KindSymbol, Sym: r} }
func Epsilon() *Node      { return &Node{Kind: KindEpsilon} }

func Either(l, r *Node) *Node      { return &Node{Kind: KindEither, Left: l, Right: r} }
func Consecutive(l, r *Node) *Node { return &Node{Kind: KindConsecutive, Left: l, Right: r} }
func NoneOrMore(c *Node) *Node     { return &Node{Kind: KindNoneOrMore, Child: c} }
func NoneOrOnce(c *Node) *Node     { return &Node{Kind: KindNoneOrOnce, Child: c} }
func OnceOrMore(c *Node) *Node     { return &Node{Kind: KindOnceOrMore, Child: c} }

// Clone makes an explicit, independent copy of the subtree rooted at n.
// Needed wherever an operator (state elimination's Either-combining of two
// existing regex edges) demands a second owner of equivalent structure.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	return &Node{
		Kind:  n.Kind,
		Sym:   n.Sym,
		Left:  n.Left.Clone(),
		Right: n.Right.Clone(),
		Child: n.Child.Clone(),
	}
}

// Equal reports structural equality, not pointer identity.
func (n *Node) Equal(o *Node) bool {
	if n == nil || o == nil {
		return n == o
	}
	if n.Kind != o.Kind {
		return false
	}
	switch n.Kind {
	case KindSymbol:
		return n.Sym == o.Sym
	case KindEpsilon:
		return true
	case KindEither, KindConsecutive:
		return n.Left.Equal(o.Left) && n.Right.Equal(o.Right)
	case KindNoneOrMore, KindNoneOrOnce, KindOnceOrMore:
		return n.Child.Equal(o.Child)
	default:
		return false
	}
}

// Equal reports structural equality between two regexes, including the
// empty-regex case (nil Root).
func (r Regex) Equal(o Regex) bool {
	if r.Root == nil || o.Root == nil {
		return r.Root == nil && o.Root == nil
	}
	return r.Root.Equal(o.Root)
}

func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	switch n.Kind {
	case KindSymbol:
		return fmt.Sprintf("Symbol(%c)", n.Sym)
	case KindEpsilon:
		return "Epsilon"
	case KindEither:
		return fmt.Sprintf("Either(%s, %s)", n.Left, n.Right)
	case KindConsecutive:
		return fmt.Sprintf("Consecutive(%s, %s)", n.Left, n.Right)
	case KindNoneOrMore:
		return fmt.Sprintf("NoneOrMore(%s)", n.Child)
	case KindNoneOrOnce:
		return fmt.Sprintf("NoneOrOnce(%s)", n.Child)
	case KindOnceOrMore:
		return fmt.Sprintf("OnceOrMore(%s)", n.Child)
	default:
		return "<invalid>"
	}
}
