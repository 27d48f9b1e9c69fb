package dsl

import (
	"github.com/brunokim/nd-checker/logic"
)

func Exprs(xs ...logic.Expr) []logic.Expr {
	return xs
}

func Atom(name string) logic.Atom {
	return logic.Atom{Name: name}
}

// Atoms returns one atom per name.
func Atoms(names ...string) []logic.Atom {
	atoms := make([]logic.Atom, len(names))
	for i, name := range names {
		atoms[i] = Atom(name)
	}
	return atoms
}

func Bottom() logic.Bottom {
	return logic.Contradiction
}

func Not(x logic.Expr) *logic.Not {
	return logic.NewNot(x)
}

func And(left, right logic.Expr) *logic.And {
	return logic.NewAnd(left, right)
}

func Or(left, right logic.Expr) *logic.Or {
	return logic.NewOr(left, right)
}

func Implies(left, right logic.Expr) *logic.Implies {
	return logic.NewImplies(left, right)
}
