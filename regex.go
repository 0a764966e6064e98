package refsm

import "github.com/mjstrand/refsm/internal/ast"

// Regex is a parsed regular expression over a single-code-point alphabet:
// literals, ε, concatenation, alternation, and the *, ?, + quantifiers. A
// zero-value Regex is the empty regex, which matches nothing.
//
// Example:
//
//	r, err := refsm.ParseInfix("(a|b)*ab")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(r.Dump())
type Regex struct {
	inner ast.Regex
}

// ParseInfix parses pattern using the infix grammar (| lowest, then
// concatenation, then the postfix *, ?, + quantifiers, with ( ) for
// grouping and the literal 1 for ε). Whitespace is insignificant.
//
// Example:
//
//	r, err := refsm.ParseInfix("a((ba)*a(ab)*|a)*")
func ParseInfix(pattern string) (Regex, error) {
	r, err := ast.ParseInfix(pattern)
	if err != nil {
		return Regex{}, err
	}
	return Regex{inner: r}, nil
}

// ParseRPN parses text as a postfix expression: '.' for binary
// concatenation, '+' for binary alternation, '*' for unary Kleene star.
// This is a distinct grammar from ParseInfix's infix '+' (one-or-more) —
// the two parsers are never unified.
//
// Example:
//
//	r, err := refsm.ParseRPN("ab.c+") // (ab)|c
func ParseRPN(text string) (Regex, error) {
	r, err := ast.ParseRPN(text)
	if err != nil {
		return Regex{}, err
	}
	return Regex{inner: r}, nil
}

// Dump renders r back to infix text such that parsing the result yields a
// structurally equal regex (spec property P1). Every operator application
// is fully parenthesized.
func (r Regex) Dump() string {
	return ast.Dump(r.inner)
}

// Equal reports whether r and o are structurally identical regex trees.
func (r Regex) Equal(o Regex) bool {
	return r.inner.Equal(o.inner)
}

// IsEmpty reports whether r is the empty regex (matches nothing), as
// distinct from the regex matching only the empty word.
func (r Regex) IsEmpty() bool {
	return r.inner.Root == nil
}
