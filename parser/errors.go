package parser

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrorKind classifies malformed formulas.
type ErrorKind int

const (
	_ ErrorKind = iota
	// EmptyInput is a text without any token.
	EmptyInput
	// UnbalancedParens is a ')' without a matching '(', or vice versa.
	UnbalancedParens
	// MissingOperand is a connective without enough operands, or empty parentheses.
	MissingOperand
	// MissingOperator is two operands side by side, like a multi-character atom.
	MissingOperator
	// UnexpectedChar is a character outside of the formula alphabet.
	UnexpectedChar
)

func (k ErrorKind) String() string {
	switch k {
	case EmptyInput:
		return "empty input"
	case UnbalancedParens:
		return "unbalanced parentheses"
	case MissingOperand:
		return "missing operand"
	case MissingOperator:
		return "missing operator"
	case UnexpectedChar:
		return "unexpected character"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// ParseError contains data about a malformed formula.
type ParseError struct {
	Kind ErrorKind
	// Pos is the byte offset in the text where the problem was detected.
	Pos int
	// Char is the offending character, if any.
	Char rune
}

func (err *ParseError) Error() string {
	if err.Char != 0 {
		return fmt.Sprintf("%v %q at offset %d", err.Kind, err.Char, err.Pos)
	}
	return fmt.Sprintf("%v at offset %d", err.Kind, err.Pos)
}

// Highlight returns text followed by a line with a caret under the offending
// position.
func (err *ParseError) Highlight(text string) string {
	pos := err.Pos
	if pos > len(text) {
		pos = len(text)
	}
	col := utf8.RuneCountInString(text[:pos])
	return text + "\n" + strings.Repeat(" ", col) + "^"
}
