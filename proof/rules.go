package proof

import (
	"github.com/brunokim/nd-checker/logic"
)

// check returns whether line may follow the current lines.
//
// Every rule first checks the number of references and their discharges, then
// the assumption set of the candidate, and finally its content. The candidate's
// assumptions are compared as a set, regardless of order or repetition.
func (p *Proof) check(line Line) bool {
	if line.Content == nil || line.Assumptions.hasNegative() || !p.validReferences(line) {
		return false
	}
	line.Assumptions = NewIndexSet(line.Assumptions...)
	switch line.Rule {
	case Assumption:
		return p.checkAssumption(line)
	case AndElim:
		return p.checkAndElim(line)
	case AndIntro:
		return p.checkAndIntro(line)
	case DoubleNotElim:
		return p.checkDoubleNotElim(line)
	case NotElim:
		return p.checkNotElim(line)
	case NotIntro:
		return p.checkNotIntro(line)
	case OrIntro:
		return p.checkOrIntro(line)
	case OrElim:
		return p.checkOrElim(line)
	case ImpliesIntro:
		return p.checkImpliesIntro(line)
	case ImpliesElim:
		return p.checkImpliesElim(line)
	case RAA:
		return p.checkRAA(line)
	default:
		return false
	}
}

// validReferences returns whether every reference points strictly before the
// candidate, and every discharged index exists in the assumption map.
func (p *Proof) validReferences(line Line) bool {
	for _, ref := range line.References {
		if ref.Line < 0 || ref.Line >= len(p.lines) {
			return false
		}
		if idx, ok := ref.Discharge.Index(); ok && idx >= len(p.assumptions) {
			return false
		}
	}
	return true
}

// cited returns the line cited by the i-th reference of line.
func (p *Proof) cited(line Line, i int) Line {
	return p.lines[line.References[i].Line]
}

func noDischarges(refs []Reference) bool {
	for _, ref := range refs {
		if !ref.Discharge.IsNone() {
			return false
		}
	}
	return true
}

// dischargedFrom returns the index discharged by ref, if it is a non-vacuous
// discharge of an assumption that cited depends on.
func dischargedFrom(ref Reference, cited Line) (int, bool) {
	idx, ok := ref.Discharge.Index()
	if !ok || !cited.Assumptions.Contains(idx) {
		return 0, false
	}
	return idx, true
}

// isNegationOf returns whether x is '~y'.
func isNegationOf(x, y logic.Expr) bool {
	not, ok := x.(*logic.Not)
	return ok && logic.Eq(not.Expr, y)
}

// ---- Rules

func (p *Proof) checkAssumption(line Line) bool {
	if len(line.References) != 0 {
		return false
	}
	return line.Assumptions.Equal(NewIndexSet(len(p.assumptions)))
}

// p ^ q ⊢ p, p ^ q ⊢ q
func (p *Proof) checkAndElim(line Line) bool {
	if len(line.References) != 1 || !noDischarges(line.References) {
		return false
	}
	ref := p.cited(line, 0)
	if !line.Assumptions.Equal(ref.Assumptions) {
		return false
	}
	and, ok := ref.Content.(*logic.And)
	if !ok {
		return false
	}
	return logic.Eq(line.Content, and.Left) || logic.Eq(line.Content, and.Right)
}

// p, q ⊢ p ^ q
func (p *Proof) checkAndIntro(line Line) bool {
	if len(line.References) != 2 || !noDischarges(line.References) {
		return false
	}
	ref1, ref2 := p.cited(line, 0), p.cited(line, 1)
	if !line.Assumptions.Equal(ref1.Assumptions.Union(ref2.Assumptions)) {
		return false
	}
	and, ok := line.Content.(*logic.And)
	if !ok {
		return false
	}
	return logic.Eq(and.Left, ref1.Content) && logic.Eq(and.Right, ref2.Content)
}

// ~~p ⊢ p
func (p *Proof) checkDoubleNotElim(line Line) bool {
	if len(line.References) != 1 || !noDischarges(line.References) {
		return false
	}
	ref := p.cited(line, 0)
	if !line.Assumptions.Equal(ref.Assumptions) {
		return false
	}
	not, ok := ref.Content.(*logic.Not)
	if !ok {
		return false
	}
	return isNegationOf(not.Expr, line.Content)
}

// p, ~p ⊢ ⊥
func (p *Proof) checkNotElim(line Line) bool {
	if len(line.References) != 2 || !noDischarges(line.References) {
		return false
	}
	ref1, ref2 := p.cited(line, 0), p.cited(line, 1)
	if !line.Assumptions.Equal(ref1.Assumptions.Union(ref2.Assumptions)) {
		return false
	}
	if !isNegationOf(ref1.Content, ref2.Content) && !isNegationOf(ref2.Content, ref1.Content) {
		return false
	}
	return logic.Eq(line.Content, logic.Contradiction)
}

// [p] ... ⊥ ⊢ ~p
func (p *Proof) checkNotIntro(line Line) bool {
	if len(line.References) != 1 {
		return false
	}
	discharge := line.References[0].Discharge
	if discharge.IsNone() {
		return false
	}
	ref := p.cited(line, 0)
	if !logic.Eq(ref.Content, logic.Contradiction) {
		return false
	}
	not, ok := line.Content.(*logic.Not)
	if !ok {
		return false
	}
	if discharge.IsVacuous() {
		return line.Assumptions.Equal(ref.Assumptions)
	}
	idx, _ := discharge.Index()
	if !line.Assumptions.Union(NewIndexSet(idx)).Equal(ref.Assumptions) ||
		line.Assumptions.Len() >= ref.Assumptions.Len() {
		return false
	}
	return logic.Eq(not.Expr, p.assumptions[idx])
}

// p ⊢ p v q, q ⊢ p v q
func (p *Proof) checkOrIntro(line Line) bool {
	if len(line.References) != 1 || !noDischarges(line.References) {
		return false
	}
	ref := p.cited(line, 0)
	if !line.Assumptions.Equal(ref.Assumptions) {
		return false
	}
	or, ok := line.Content.(*logic.Or)
	if !ok {
		return false
	}
	return logic.Eq(ref.Content, or.Left) || logic.Eq(ref.Content, or.Right)
}

// p v q, [p] ... r, [q] ... r ⊢ r
func (p *Proof) checkOrElim(line Line) bool {
	if len(line.References) != 3 || !line.References[0].Discharge.IsNone() {
		return false
	}
	ref1, ref2, ref3 := p.cited(line, 0), p.cited(line, 1), p.cited(line, 2)
	idx2, ok2 := dischargedFrom(line.References[1], ref2)
	idx3, ok3 := dischargedFrom(line.References[2], ref3)
	if !ok2 || !ok3 {
		return false
	}
	want := ref1.Assumptions.Union(ref2.Assumptions, ref3.Assumptions).Minus(idx2, idx3)
	if !line.Assumptions.Equal(want) {
		return false
	}
	or, ok := ref1.Content.(*logic.Or)
	if !ok {
		return false
	}
	case2, case3 := p.assumptions[idx2], p.assumptions[idx3]
	inOrder := logic.Eq(case2, or.Left) && logic.Eq(case3, or.Right)
	swapped := logic.Eq(case2, or.Right) && logic.Eq(case3, or.Left)
	if !inOrder && !swapped {
		return false
	}
	return logic.Eq(ref2.Content, line.Content) && logic.Eq(ref3.Content, line.Content)
}

// [p] ... q ⊢ p → q
func (p *Proof) checkImpliesIntro(line Line) bool {
	if len(line.References) != 1 {
		return false
	}
	discharge := line.References[0].Discharge
	if discharge.IsNone() {
		return false
	}
	ref := p.cited(line, 0)
	implies, ok := line.Content.(*logic.Implies)
	if !ok {
		return false
	}
	if discharge.IsVacuous() {
		return line.Assumptions.Equal(ref.Assumptions) && logic.Eq(implies.Right, ref.Content)
	}
	idx, ok := dischargedFrom(line.References[0], ref)
	if !ok || !line.Assumptions.Equal(ref.Assumptions.Minus(idx)) {
		return false
	}
	return logic.Eq(implies.Right, ref.Content) && logic.Eq(implies.Left, p.assumptions[idx])
}

// p → q, p ⊢ q
func (p *Proof) checkImpliesElim(line Line) bool {
	if len(line.References) != 2 || !noDischarges(line.References) {
		return false
	}
	ref1, ref2 := p.cited(line, 0), p.cited(line, 1)
	if !line.Assumptions.Equal(ref1.Assumptions.Union(ref2.Assumptions)) {
		return false
	}
	return isModusPonens(ref1.Content, ref2.Content, line.Content) ||
		isModusPonens(ref2.Content, ref1.Content, line.Content)
}

func isModusPonens(implication, antecedent, consequent logic.Expr) bool {
	implies, ok := implication.(*logic.Implies)
	if !ok {
		return false
	}
	return logic.Eq(implies.Left, antecedent) && logic.Eq(implies.Right, consequent)
}

// q, [p] ... ⊢ ~p
func (p *Proof) checkRAA(line Line) bool {
	if len(line.References) != 2 || !line.References[0].Discharge.IsNone() {
		return false
	}
	discharge := line.References[1].Discharge
	if discharge.IsNone() {
		return false
	}
	ref1, ref2 := p.cited(line, 0), p.cited(line, 1)
	not, ok := line.Content.(*logic.Not)
	if !ok {
		return false
	}
	union := ref1.Assumptions.Union(ref2.Assumptions)
	if discharge.IsVacuous() {
		return line.Assumptions.Equal(union)
	}
	idx, ok := dischargedFrom(line.References[1], ref2)
	if !ok || !line.Assumptions.Equal(union.Minus(idx)) {
		return false
	}
	return logic.Eq(not.Expr, p.assumptions[idx])
}
