package proof

import (
	"github.com/brunokim/nd-checker/logic"
)

// Proof is a growing sequence of checked lines towards a goal.
//
// A Proof is not safe for concurrent use, but distinct proofs share no mutable
// state.
type Proof struct {
	lines []Line
	// assumptions holds the formula of every assumption ever introduced; an
	// assumption's index is its position. It only grows.
	assumptions []logic.Expr
	goal        Goal
}

// New creates a proof of goal from premises.
//
// Each premise becomes an assumption line, and the goal depends on all of them.
func New(premises []logic.Expr, goal logic.Expr) *Proof {
	p := &Proof{
		lines:       make([]Line, len(premises)),
		assumptions: make([]logic.Expr, len(premises)),
		goal:        Goal{Assumptions: Range(len(premises)), Content: goal},
	}
	for i, premise := range premises {
		p.lines[i] = Line{
			Assumptions: NewIndexSet(i),
			Content:     premise,
			Rule:        Assumption,
		}
		p.assumptions[i] = premise
	}
	return p
}

// CanAdd returns whether line is justified by its rule given the current lines.
//
// It doesn't modify the proof.
func (p *Proof) CanAdd(line Line) bool {
	return p.check(line)
}

// TryAdd appends line to the proof if it is justified, and returns whether it
// was appended. Accepted assumption lines also introduce a new assumption index.
func (p *Proof) TryAdd(line Line) bool {
	if !p.check(line) {
		return false
	}
	line.Assumptions = NewIndexSet(line.Assumptions...)
	line.References = append([]Reference(nil), line.References...)
	if line.Rule == Assumption {
		p.assumptions = append(p.assumptions, line.Content)
	}
	p.lines = append(p.lines, line)
	return true
}

// IsComplete returns whether the last line establishes the goal.
func (p *Proof) IsComplete() bool {
	if len(p.lines) == 0 {
		return false
	}
	last := p.lines[len(p.lines)-1]
	return last.Assumptions.Equal(p.goal.Assumptions) && logic.Eq(last.Content, p.goal.Content)
}

// Len returns the number of lines, including premises.
func (p *Proof) Len() int {
	return len(p.lines)
}

// Lines returns a copy of the accepted lines.
func (p *Proof) Lines() []Line {
	lines := make([]Line, len(p.lines))
	for i, line := range p.lines {
		line.Assumptions = NewIndexSet(line.Assumptions...)
		line.References = append([]Reference(nil), line.References...)
		lines[i] = line
	}
	return lines
}

// Assumptions returns a copy of the assumption map: the formula of each
// assumption, indexed by its assumption index.
func (p *Proof) Assumptions() []logic.Expr {
	xs := make([]logic.Expr, len(p.assumptions))
	copy(xs, p.assumptions)
	return xs
}

// Goal returns a copy of the goal of the proof.
func (p *Proof) Goal() Goal {
	return Goal{Assumptions: NewIndexSet(p.goal.Assumptions...), Content: p.goal.Content}
}
