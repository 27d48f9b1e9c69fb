package dsl

import (
	"github.com/brunokim/nd-checker/logic"
	"github.com/brunokim/nd-checker/proof"
)

func Set(indices ...int) proof.IndexSet {
	return proof.NewIndexSet(indices...)
}

// Ref cites a line without discharging anything.
func Ref(line int) proof.Reference {
	return proof.Reference{Line: line, Discharge: proof.NoDischarge}
}

// VRef cites a line discharging an assumption vacuously.
func VRef(line int) proof.Reference {
	return proof.Reference{Line: line, Discharge: proof.Vacuous()}
}

// DRef cites a line discharging the assumption with index idx.
func DRef(line, idx int) proof.Reference {
	return proof.Reference{Line: line, Discharge: proof.Index(idx)}
}

func Line(assumptions proof.IndexSet, content logic.Expr, rule proof.Rule, refs ...proof.Reference) proof.Line {
	return proof.Line{
		Assumptions: assumptions,
		Content:     content,
		References:  refs,
		Rule:        rule,
	}
}
