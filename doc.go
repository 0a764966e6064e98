/*
Package refsm implements a regex-to-automaton toolkit over a single
code-point alphabet: parsing, Thompson construction, ε-elimination, subset
construction, completion, minimization, complement, state-elimination
regex synthesis, membership testing, and a shortest-word query.

# Overview

refsm treats a regular expression and a finite automaton as two
representations of the same language, and provides every standard
construction for moving between them:

	Regex --Thompson--> NFA --eliminate ε--> ε-free NFA --subset--> DFA
	  --complete--> total DFA --minimize--> minimal total DFA
	  --state elimination--> Regex (round trip)

# Quick Start

	import "github.com/mjstrand/refsm"

	d, err := refsm.Compile("(a|b)*ab")
	if err != nil {
	    return err
	}
	fmt.Println(d.Accepts("aab")) // true

# Grammar

The supported regex grammar is: literal code points, ε (written "1"),
concatenation (juxtaposition), alternation ('|'), and the postfix
quantifiers '*' (none or more), '?' (none or once), '+' (once or more),
with '(' ')' for grouping. There is no escaping, no character classes, no
anchors, and no capture groups — every code point other than the seven
metacharacters (| ( ) * ? + 1) is a literal symbol.

A second grammar, reverse Polish notation, is available via ParseRPN for
callers that already have a postfix-form expression (e.g. from an external
tool): '.' for binary concatenation, '+' for binary alternation, '*' for
unary star. It is a distinct entry point from ParseInfix — RPN's '+' means
something different from infix '+', so the two are never unified under one
parser.

# Building and Transforming Automata

	r, _ := refsm.ParseInfix("a*b")
	n := refsm.FromRegex(r)   // ε-NFA
	n.EliminateEpsilon()      // ε-free NFA, same language
	d := n.ToDFA()            // deterministic
	d.MakeTotal()             // every (state, symbol) has a target
	d.Minimize()              // coarsest congruence
	d.Complement()            // Σ* minus the original language

Compile runs this entire pipeline (minus Complement) in one call.

# Queries

	d.Accepts("aab")
	found, length := d.MinWordLenWithExactCount('a', 3)

# Round-Tripping to a Regex

	r2 := d.ToRegex()       // not minimized or canonicalized
	fmt.Println(r2.Dump())  // infix text; re-parsing it yields the same language

# Diagrams

	fmt.Println(d.Dot())          // Graphviz DOT source
	png, err := d.RenderPNG()     // shells out to the `dot` binary

# Error Handling

Parse errors implement errors.Is/As against ErrUnbalancedParen,
ErrDanglingOperator and ErrUnexpectedEOF, and carry a code-point position
for caret-style rendering. Operations that require an automaton to
already be in a particular shape (ε-free, deterministic, total) panic on
a violated precondition instead of returning an error — reaching one out
of order is a caller bug, not a reportable condition.

# More Information

See the cmd/refsm CLI for a complete driver built on this package.
*/
package refsm
