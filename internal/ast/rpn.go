package ast

import (
	"strings"
)

// ParseRPN parses reversed-Polish notation over '.' (concatenation, binary),
// '+' (alternation, binary), '*' (star, unary) — operands are single
// non-metacharacters — by converting to infix text and feeding it back into
// ParseInfix.
//
// This is the ONLY place '+' means alternation; the infix grammar (and
// ParseInfix) always reads '+' as once-or-more. The two parsers are kept
// textually distinct on purpose (spec's open question on RPN/infix '+'
// collision).
func ParseRPN(text string) (Regex, error) {
	infix, err := RPNToInfix(text)
	if err != nil {
		return Regex{}, err
	}
	return ParseInfix(infix)
}

// RPNToInfix converts postfix text to parenthesized infix text using a
// string stack: each popped operand is parenthesized before being combined,
// so the result is unambiguous input to ParseInfix regardless of what the
// enclosing context does with it.
func RPNToInfix(text string) (string, error) {
	stripped := stripWhitespace(text)
	var stack []string

	pop := func() (string, error) {
		if len(stack) == 0 {
			return "", &ParseError{Err: ErrDanglingOperator, Source: stripped, Pos: len(stripped)}
		}
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return top, nil
	}

	for i, r := range []rune(stripped) {
		switch r {
		case '.':
			right, err := pop()
			if err != nil {
				return "", err
			}
			left, err := pop()
			if err != nil {
				return "", err
			}
			stack = append(stack, parenthesize(left)+parenthesize(right))
		case '+':
			right, err := pop()
			if err != nil {
				return "", err
			}
			left, err := pop()
			if err != nil {
				return "", err
			}
			stack = append(stack, parenthesize(left)+"|"+parenthesize(right))
		case '*':
			operand, err := pop()
			if err != nil {
				return "", err
			}
			stack = append(stack, parenthesize(operand)+"*")
		default:
			if strings.ContainsRune("|()?", r) {
				return "", &ParseError{Err: ErrDanglingOperator, Source: stripped, Pos: i}
			}
			stack = append(stack, string(r))
		}
	}

	if len(stack) != 1 {
		return "", &ParseError{Err: ErrDanglingOperator, Source: stripped, Pos: len(stripped)}
	}
	return stack[0], nil
}

// parenthesize wraps a popped operand in parens unless it is already a
// single code point, mirroring the "parenthesizing each popped operand
// before combining" rule from the spec.
func parenthesize(s string) string {
	if len([]rune(s)) <= 1 {
		return s
	}
	return "(" + s + ")"
}
