// Package proof checks natural-deduction proofs of propositional formulas.
//
// A proof is a sequence of lines. Each line asserts a formula, the set of
// assumptions it depends on, the earlier lines it cites and the inference rule
// that justifies it. Assumptions are identified by their index in the proof's
// assumption map, so the scope of a hypothesis is tracked by the index sets
// carried on every line rather than by nested boxes. Closing a hypothesis
// ("discharging" it) is checked with set algebra over those indices.
package proof

import (
	"fmt"
	"sort"
	"strings"

	"github.com/brunokim/nd-checker/errors"
	"github.com/brunokim/nd-checker/logic"
)

// ---- Index sets

// IndexSet is an immutable set of assumption indices, implemented as a sorted
// array without duplicates.
//
// Build it with NewIndexSet; the zero value is the empty set. Proofs accept
// literal sets in any order and store them normalized.
type IndexSet []int

// NewIndexSet returns the set of the provided indices.
func NewIndexSet(indices ...int) IndexSet {
	if len(indices) == 0 {
		return nil
	}
	tmp := make([]int, len(indices))
	copy(tmp, indices)
	sort.Ints(tmp)
	set := tmp[:1]
	for _, idx := range tmp[1:] {
		if idx != set[len(set)-1] {
			set = append(set, idx)
		}
	}
	return IndexSet(set)
}

// Range returns the set {0, 1, ..., n-1}.
func Range(n int) IndexSet {
	if n <= 0 {
		return nil
	}
	set := make(IndexSet, n)
	for i := range set {
		set[i] = i
	}
	return set
}

// Len returns the number of indices in the set.
func (s IndexSet) Len() int { return len(s) }

// Contains returns whether idx belongs to the set.
func (s IndexSet) Contains(idx int) bool {
	i := sort.SearchInts(s, idx)
	return i < len(s) && s[i] == idx
}

// Equal returns whether both sets have the same indices.
func (s IndexSet) Equal(other IndexSet) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Union returns the indices present in any of the sets.
func (s IndexSet) Union(others ...IndexSet) IndexSet {
	var all []int
	all = append(all, s...)
	for _, other := range others {
		all = append(all, other...)
	}
	return NewIndexSet(all...)
}

// Minus returns the set without the provided indices.
func (s IndexSet) Minus(indices ...int) IndexSet {
	exclude := NewIndexSet(indices...)
	var set IndexSet
	for _, idx := range s {
		if !exclude.Contains(idx) {
			set = append(set, idx)
		}
	}
	return set
}

// Max returns the largest index, or false for the empty set.
func (s IndexSet) Max() (int, bool) {
	if len(s) == 0 {
		return 0, false
	}
	return s[len(s)-1], true
}

func (s IndexSet) hasNegative() bool {
	for _, idx := range s {
		if idx < 0 {
			return true
		}
	}
	return false
}

func (s IndexSet) String() string {
	xs := make([]string, len(s))
	for i, idx := range s {
		xs[i] = fmt.Sprintf("%d", idx)
	}
	return fmt.Sprintf("{%s}", strings.Join(xs, ", "))
}

// ---- Discharges

type dischargeKind int

const (
	noDischarge dischargeKind = iota
	vacuousDischarge
	indexDischarge
)

// Discharge describes whether a reference closes an assumption, and which.
//
// It is one of NoDischarge, Vacuous() or Index(n).
type Discharge struct {
	kind  dischargeKind
	index int
}

// NoDischarge is a reference that closes no assumption.
var NoDischarge = Discharge{}

// Vacuous returns a discharge that closes an assumption not used by the cited line.
func Vacuous() Discharge {
	return Discharge{kind: vacuousDischarge}
}

// Index returns a discharge that closes the assumption at idx.
//
// It panics if idx is negative.
func Index(idx int) Discharge {
	if idx < 0 {
		panic(fmt.Sprintf("proof.Index: negative assumption index %d", idx))
	}
	return Discharge{kind: indexDischarge, index: idx}
}

// IsNone returns whether no assumption is discharged.
func (d Discharge) IsNone() bool { return d.kind == noDischarge }

// IsVacuous returns whether the discharge is vacuous.
func (d Discharge) IsVacuous() bool { return d.kind == vacuousDischarge }

// Index returns the discharged assumption index, if any.
func (d Discharge) Index() (int, bool) {
	return d.index, d.kind == indexDischarge
}

// Equal returns whether both discharges are the same.
func (d Discharge) Equal(other Discharge) bool { return d == other }

func (d Discharge) String() string {
	switch d.kind {
	case vacuousDischarge:
		return "[]"
	case indexDischarge:
		return fmt.Sprintf("[%d]", d.index)
	default:
		return ""
	}
}

// ---- References

// Reference cites an earlier line of the proof.
type Reference struct {
	// Line is the index of the cited line.
	Line int
	// Discharge is the assumption closed by this citation.
	Discharge Discharge
}

func (r Reference) String() string {
	return fmt.Sprintf("%d%v", r.Line, r.Discharge)
}

// ---- Rules

// Rule is an inference rule of natural deduction.
type Rule int

const (
	_ Rule = iota
	Assumption
	AndElim
	AndIntro
	DoubleNotElim
	NotElim
	NotIntro
	OrIntro
	OrElim
	ImpliesIntro
	ImpliesElim
	RAA
)

var ruleSymbols = map[Rule]string{
	Assumption:    "A",
	AndElim:       "&E",
	AndIntro:      "&I",
	DoubleNotElim: "~~E",
	NotElim:       "~E",
	NotIntro:      "~I",
	OrIntro:       "vI",
	OrElim:        "vE",
	ImpliesIntro:  "-->I",
	ImpliesElim:   "-->E",
	RAA:           "RAA",
}

// Rules returns all inference rules, in declaration order.
func Rules() []Rule {
	return []Rule{
		Assumption, AndElim, AndIntro, DoubleNotElim, NotElim, NotIntro,
		OrIntro, OrElim, ImpliesIntro, ImpliesElim, RAA,
	}
}

func (r Rule) String() string {
	if s, ok := ruleSymbols[r]; ok {
		return s
	}
	return fmt.Sprintf("Rule(%d)", int(r))
}

// ParseRule returns the rule with the provided symbol, as printed by String.
func ParseRule(symbol string) (Rule, error) {
	for r, s := range ruleSymbols {
		if s == symbol {
			return r, nil
		}
	}
	return 0, errors.New("unknown rule symbol %q", symbol)
}

func (r Rule) MarshalText() ([]byte, error) {
	if _, ok := ruleSymbols[r]; !ok {
		return nil, errors.New("marshal invalid rule %d", int(r))
	}
	return []byte(r.String()), nil
}

func (r *Rule) UnmarshalText(text []byte) error {
	rule, err := ParseRule(string(text))
	if err != nil {
		return err
	}
	*r = rule
	return nil
}

// ---- Lines

// Line is a step of a proof.
type Line struct {
	// Assumptions are the indices of the assumptions this line depends on.
	Assumptions IndexSet
	// Content is the formula asserted by this line.
	Content logic.Expr
	// References are the cited lines. Their position encodes the role each one
	// plays in the rule.
	References []Reference
	// Rule is the inference rule justifying this line.
	Rule Rule
}

func (l Line) String() string {
	refs := make([]string, len(l.References))
	for i, ref := range l.References {
		refs[i] = ref.String()
	}
	justification := l.Rule.String()
	if len(refs) > 0 {
		justification += " " + strings.Join(refs, ", ")
	}
	return fmt.Sprintf("%v ⊢ %v (%s)", l.Assumptions, l.Content, justification)
}

// Goal is the pair of assumptions and formula a proof must end with.
type Goal struct {
	Assumptions IndexSet
	Content     logic.Expr
}

func (g Goal) String() string {
	return fmt.Sprintf("%v ⊢ %v", g.Assumptions, g.Content)
}
