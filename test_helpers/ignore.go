package test_helpers

import (
	"github.com/brunokim/nd-checker/logic"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var (
	// EquateExprs compares formulas with logic.Eq.
	EquateExprs = cmp.Comparer(func(x, y logic.Expr) bool { return logic.Eq(x, y) })

	// ProofOptions compare proof lines and goals, where nil and empty index
	// sets or reference lists are the same.
	ProofOptions = cmp.Options{
		EquateExprs,
		cmpopts.EquateEmpty(),
	}
)
