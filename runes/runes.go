// Package runes contains rune classification shared by formula readers.
package runes

import (
	"unicode"
	"unicode/utf8"
)

// First returns the first rune of s. If the string is empty or not proper UTF-8, returns false.
func First(s string) (rune, bool) {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size < 2 {
		return 0, false
	}
	return r, true
}

// IsAtom returns whether r may name a propositional atom.
//
// Atoms are single letters or digits. 'v' is excluded because it denotes disjunction.
func IsAtom(r rune) bool {
	if r == 'v' {
		return false
	}
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// IsSpace reports whether r is ignored between tokens.
func IsSpace(r rune) bool {
	return unicode.IsSpace(r)
}
