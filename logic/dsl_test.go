package logic_test

import (
	"github.com/brunokim/nd-checker/dsl"
)

var (
	and     = dsl.And
	atom    = dsl.Atom
	atoms   = dsl.Atoms
	bottom  = dsl.Bottom
	implies = dsl.Implies
	not     = dsl.Not
	or      = dsl.Or
)
