package ast

import "strings"

// Dump renders r using the same textual syntax ParseInfix accepts,
// parenthesizing on every operator application so the result re-parses to
// a structurally identical tree regardless of operator precedence.
func Dump(r Regex) string {
	if r.Root == nil {
		return ""
	}
	var b strings.Builder
	dumpNode(&b, r.Root)
	return b.String()
}

func dumpNode(b *strings.Builder, n *Node) {
	switch n.Kind {
	case KindEpsilon:
		b.WriteRune('1')
	case KindSymbol:
		if isMeta(n.Sym) {
			// The grammar has no escape mechanism; a literal metacharacter
			// cannot be dumped losslessly. This can only arise from a Node
			// built directly (not via ParseInfix), so it is a programming
			// error rather than a user-facing one.
			panic("ast: cannot dump literal metacharacter " + string(n.Sym))
		}
		b.WriteRune(n.Sym)
	case KindEither:
		b.WriteByte('(')
		dumpNode(b, n.Left)
		b.WriteByte('|')
		dumpNode(b, n.Right)
		b.WriteByte(')')
	case KindConsecutive:
		b.WriteByte('(')
		dumpNode(b, n.Left)
		dumpNode(b, n.Right)
		b.WriteByte(')')
	case KindNoneOrMore:
		b.WriteByte('(')
		dumpNode(b, n.Child)
		b.WriteString(")*")
	case KindNoneOrOnce:
		b.WriteByte('(')
		dumpNode(b, n.Child)
		b.WriteString(")?")
	case KindOnceOrMore:
		b.WriteByte('(')
		dumpNode(b, n.Child)
		b.WriteString(")+")
	}
}
