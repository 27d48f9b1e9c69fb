// Package logic implements propositional formulas used by the proof checker.
//
// A formula falls in one of two categories:
//
// * atomic: an immutable symbol, either a propositional variable (Atom) or the
// contradiction constant (Bottom).
//
// * composite: a connective applied to other formulas, recursively. The connectives
// are negation (Not), conjunction (And), disjunction (Or) and implication (Implies).
//
// Formulas are immutable once built and may be shared between trees. They are
// compared by structure with Eq, never by identity.
package logic

import (
	"fmt"
)

// ---- Basic types

// Expr is a representation of a propositional formula.
type Expr interface {
	fmt.Stringer
	precedence() int
	atoms(seen map[Atom]struct{}, xs []Atom) []Atom
}

// Atom is an atomic formula representing a propositional variable.
type Atom struct {
	// Name is the identifier for an atom.
	Name string
}

// Bottom is the contradiction constant.
type Bottom struct{}

// Not is the negation of a formula.
type Not struct {
	// Expr is the negated formula.
	Expr Expr
}

// And is the conjunction of two formulas.
type And struct {
	Left, Right Expr
}

// Or is the disjunction of two formulas.
type Or struct {
	Left, Right Expr
}

// Implies is the implication from Left to Right.
type Implies struct {
	// Left is the antecedent.
	Left Expr
	// Right is the consequent.
	Right Expr
}

// ---- Public vars

var (
	// Contradiction is the only value of Bottom.
	Contradiction = Bottom{}
)

// ---- Constructors

// NewNot returns the negation of x.
func NewNot(x Expr) *Not {
	return &Not{Expr: x}
}

// NewAnd returns the conjunction of left and right.
func NewAnd(left, right Expr) *And {
	return &And{Left: left, Right: right}
}

// NewOr returns the disjunction of left and right.
func NewOr(left, right Expr) *Or {
	return &Or{Left: left, Right: right}
}

// NewImplies returns the implication from left to right.
func NewImplies(left, right Expr) *Implies {
	return &Implies{Left: left, Right: right}
}

// ---- precedence()

const (
	implicationPrecedence = iota + 1
	disjunctionPrecedence
	conjunctionPrecedence
	negationPrecedence
	atomicPrecedence
)

func (Atom) precedence() int     { return atomicPrecedence }
func (Bottom) precedence() int   { return atomicPrecedence }
func (*Not) precedence() int     { return negationPrecedence }
func (*And) precedence() int     { return conjunctionPrecedence }
func (*Or) precedence() int      { return disjunctionPrecedence }
func (*Implies) precedence() int { return implicationPrecedence }

// Precedence returns how tightly the top connective of x binds.
//
// Implication binds loosest and negation tightest. Atoms and Bottom have a precedence
// above every connective, as they never need parentheses.
func Precedence(x Expr) int {
	return x.precedence()
}

// IsComposite returns whether x is built from a connective.
func IsComposite(x Expr) bool {
	return x.precedence() < atomicPrecedence
}

// ---- Eq()

// Eq returns whether x and y are structurally identical formulas.
//
// Operands of And, Or and Implies are compared in order, so 'p ^ q' is not equal to
// 'q ^ p'.
func Eq(x, y Expr) bool {
	switch u := x.(type) {
	case Atom:
		v, ok := y.(Atom)
		return ok && u.Eq(v)
	case Bottom:
		_, ok := y.(Bottom)
		return ok
	case *Not:
		v, ok := y.(*Not)
		return ok && u.Eq(v)
	case *And:
		v, ok := y.(*And)
		return ok && u.Eq(v)
	case *Or:
		v, ok := y.(*Or)
		return ok && u.Eq(v)
	case *Implies:
		v, ok := y.(*Implies)
		return ok && u.Eq(v)
	case nil:
		return y == nil
	default:
		panic(fmt.Sprintf("logic.Eq: unhandled type %T", x))
	}
}

// Eq returns whether this atom is equal to another.
func (x Atom) Eq(other Atom) bool { return x == other }

// Eq returns whether this negation is equal to another.
func (x *Not) Eq(other *Not) bool { return Eq(x.Expr, other.Expr) }

// Eq returns whether this conjunction is equal to another.
func (x *And) Eq(other *And) bool {
	return Eq(x.Left, other.Left) && Eq(x.Right, other.Right)
}

// Eq returns whether this disjunction is equal to another.
func (x *Or) Eq(other *Or) bool {
	return Eq(x.Left, other.Left) && Eq(x.Right, other.Right)
}

// Eq returns whether this implication is equal to another.
func (x *Implies) Eq(other *Implies) bool {
	return Eq(x.Left, other.Left) && Eq(x.Right, other.Right)
}

// ---- atoms()

// Atoms returns the distinct atoms of x, in order of first occurrence.
func Atoms(x Expr) []Atom {
	return x.atoms(make(map[Atom]struct{}), nil)
}

func (x Atom) atoms(seen map[Atom]struct{}, xs []Atom) []Atom {
	if _, ok := seen[x]; ok {
		return xs
	}
	seen[x] = struct{}{}
	return append(xs, x)
}

func (Bottom) atoms(seen map[Atom]struct{}, xs []Atom) []Atom { return xs }

func (x *Not) atoms(seen map[Atom]struct{}, xs []Atom) []Atom {
	return x.Expr.atoms(seen, xs)
}

func (x *And) atoms(seen map[Atom]struct{}, xs []Atom) []Atom {
	return x.Right.atoms(seen, x.Left.atoms(seen, xs))
}

func (x *Or) atoms(seen map[Atom]struct{}, xs []Atom) []Atom {
	return x.Right.atoms(seen, x.Left.atoms(seen, xs))
}

func (x *Implies) atoms(seen map[Atom]struct{}, xs []Atom) []Atom {
	return x.Right.atoms(seen, x.Left.atoms(seen, xs))
}
