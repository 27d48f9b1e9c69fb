package test_helpers

import (
	"fmt"
	"strings"
)

func indentation(s string) int {
	n := 0
	for _, ch := range s {
		if ch != ' ' && ch != '\t' {
			break
		}
		n++
	}
	return n
}

// Dedent removes common leading whitespace of each line. Useful to remove indentation
// that is present only because of a `backtick` string indentation level.
func Dedent(s string) string {
	lines := strings.Split(s, "\n")
	minIndent := len(s)
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if n := indentation(line); n < minIndent {
			minIndent = n
		}
	}
	for i, line := range lines {
		n := indentation(line)
		if n > minIndent {
			n = minIndent
		}
		lines[i] = line[n:]
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// Lines joins the string form of each value, one per line.
func Lines[T fmt.Stringer](xs []T) string {
	strs := make([]string, len(xs))
	for i, x := range xs {
		strs[i] = x.String()
	}
	return strings.Join(strs, "\n")
}
