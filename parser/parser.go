// Package parser reads propositional formulas written in infix notation.
//
// The accepted alphabet is:
//
//	~ ¬          negation
//	^ & ∧        conjunction
//	v ∨          disjunction
//	→ -> -->     implication
//	⊥            contradiction
//	( )          grouping
//
// Any other single letter or digit is an atom. Spaces are ignored. Negation
// binds tightest, followed by conjunction, disjunction and implication. Binary
// connectives associate to the left, so 'p → q → r' reads as '(p → q) → r'.
//
// Parsing happens in two phases: the infix text is first linearized into prefix
// notation with an operator and an operand stack, and the prefix string is then
// folded into a logic.Expr tree.
package parser

import (
	"github.com/brunokim/nd-checker/errors"
	"github.com/brunokim/nd-checker/logic"
)

// ParseExpr parses a formula from its infix text.
//
// Errors contain a *ParseError describing the failure.
func ParseExpr(text string) (logic.Expr, error) {
	prefix, err := toPrefix(text)
	if err != nil {
		return nil, errors.New("parse %q: %w", text, err)
	}
	x, err := fromPrefix(prefix)
	if err != nil {
		return nil, errors.New("parse %q: %w", text, err)
	}
	return x, nil
}

// MustParse is like ParseExpr, but panics if text is not a valid formula.
func MustParse(text string) logic.Expr {
	x, err := ParseExpr(text)
	if err != nil {
		panic(err)
	}
	return x
}

// Prefix returns the prefix notation of the formula in text, using the canonical
// connective symbols. For example, '~p ^ q' becomes '^~pq'.
func Prefix(text string) (string, error) {
	prefix, err := toPrefix(text)
	if err != nil {
		return "", errors.New("parse %q: %w", text, err)
	}
	return string(prefix), nil
}

// ---- Symbols

// Connectives are represented by a single rune in prefix notation.
const (
	notOp     = '~'
	andOp     = '^'
	orOp      = 'v'
	impliesOp = '→'
	bottom    = '⊥'
)

func isOperator(r rune) bool {
	switch r {
	case notOp, andOp, orOp, impliesOp:
		return true
	}
	return false
}

func isUnary(r rune) bool {
	return r == notOp
}

func arity(r rune) int {
	if isUnary(r) {
		return 1
	}
	return 2
}

func priority(r rune) int {
	switch r {
	case notOp:
		return 4
	case andOp:
		return 3
	case orOp:
		return 2
	case impliesOp:
		return 1
	default:
		panic("parser.priority: not an operator: " + string(r))
	}
}
