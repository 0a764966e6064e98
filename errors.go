package refsm

import "github.com/mjstrand/refsm/internal/ast"

// Parse error sentinels, re-exported from internal/ast so callers can use
// errors.Is against them without importing an internal package. Operations
// that require a deterministic, total, or ε-free automaton (Minimize,
// MakeTotal, Complement, Accepts) instead panic on a violated precondition
// — reaching them with a malformed automaton is a caller bug, not a
// reportable error (see DESIGN.md's error-handling note).
var (
	// ErrUnbalancedParen indicates a regex has an unmatched '(' or ')'.
	ErrUnbalancedParen = ast.ErrUnbalancedParen

	// ErrDanglingOperator indicates a regex has an operator with a missing operand.
	ErrDanglingOperator = ast.ErrDanglingOperator

	// ErrUnexpectedEOF indicates a regex ended mid-expression.
	ErrUnexpectedEOF = ast.ErrUnexpectedEOF
)
