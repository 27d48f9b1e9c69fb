// Package fuzz is the go-fuzz entry point for the formula parser.
package fuzz

import (
	"github.com/brunokim/nd-checker/logic"
	"github.com/brunokim/nd-checker/parser"
)

func Fuzz(data []byte) int {
	x, err := parser.ParseExpr(string(data))
	if err != nil {
		return 0
	}
	again, err := parser.ParseExpr(x.String())
	if err != nil || !logic.Eq(x, again) {
		panic("rendering of " + x.String() + " doesn't parse back to the same formula")
	}
	return 1
}
