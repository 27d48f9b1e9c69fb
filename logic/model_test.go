package logic_test

import (
	"encoding/json"
	"testing"

	"github.com/brunokim/nd-checker/logic"

	"github.com/google/go-cmp/cmp"
)

var (
	p = atom("p")
	q = atom("q")
	r = atom("r")
	s = atom("s")
)

func TestEq(t *testing.T) {
	tests := []struct {
		x, y logic.Expr
	}{
		{p, atom("p")},
		{bottom(), logic.Contradiction},
		{logic.Bottom{}, bottom()},
		{not(p), not(atom("p"))},
		{not(not(p)), not(not(p))},
		{and(p, q), and(p, q)},
		{or(p, not(q)), or(p, not(q))},
		{implies(and(p, q), or(r, bottom())), implies(and(p, q), or(r, bottom()))},
	}
	for _, test := range tests {
		if !logic.Eq(test.x, test.y) {
			t.Errorf("%v != %v", test.x, test.y)
		}
		if !logic.Eq(test.y, test.x) {
			t.Errorf("%v != %v (reversed)", test.y, test.x)
		}
	}
}

func TestEq_Different(t *testing.T) {
	tests := []struct {
		x, y logic.Expr
	}{
		{p, q},
		{p, bottom()},
		{atom("⊥"), bottom()},
		{p, not(p)},
		{not(p), not(q)},
		{and(p, q), and(q, p)},
		{or(p, q), or(q, p)},
		{implies(p, q), implies(q, p)},
		{and(p, q), or(p, q)},
		{or(p, q), implies(p, q)},
		{not(not(p)), not(p)},
		{implies(p, and(q, r)), implies(p, and(q, s))},
	}
	for _, test := range tests {
		if logic.Eq(test.x, test.y) {
			t.Errorf("%v == %v", test.x, test.y)
		}
		if logic.Eq(test.y, test.x) {
			t.Errorf("%v == %v (reversed)", test.y, test.x)
		}
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		x    logic.Expr
		want string
	}{
		{p, "p"},
		{bottom(), "⊥"},
		{not(p), "~p"},
		{not(not(p)), "~~p"},
		{not(bottom()), "~⊥"},
		{and(p, q), "p ^ q"},
		{or(p, q), "p v q"},
		{implies(p, q), "p → q"},
		{not(and(p, q)), "~(p ^ q)"},
		{and(not(p), not(q)), "~p ^ ~q"},
		{or(and(p, q), r), "p ^ q v r"},
		{and(or(p, q), r), "(p v q) ^ r"},
		{implies(or(p, q), and(r, s)), "p v q → r ^ s"},
		{and(implies(p, q), r), "(p → q) ^ r"},
		{and(and(p, q), r), "p ^ q ^ r"},
		{and(p, and(q, r)), "p ^ (q ^ r)"},
		{implies(implies(p, q), r), "p → q → r"},
		{implies(p, implies(q, r)), "p → (q → r)"},
		{and(not(or(p, q)), implies(r, s)), "~(p v q) ^ (r → s)"},
		{not(implies(p, not(q))), "~(p → ~q)"},
	}
	for _, test := range tests {
		if got := test.x.String(); got != test.want {
			t.Errorf("got %q, want %q", got, test.want)
		}
	}
}

func TestPrecedence(t *testing.T) {
	order := []logic.Expr{
		implies(p, q),
		or(p, q),
		and(p, q),
		not(p),
		p,
	}
	for i := 0; i < len(order)-1; i++ {
		if logic.Precedence(order[i]) >= logic.Precedence(order[i+1]) {
			t.Errorf("precedence of %v >= %v", order[i], order[i+1])
		}
	}
	if logic.Precedence(p) != logic.Precedence(bottom()) {
		t.Errorf("atoms and ⊥ have different precedences")
	}
	if logic.IsComposite(p) || logic.IsComposite(bottom()) {
		t.Errorf("atomic formulas reported as composite")
	}
	if !logic.IsComposite(not(p)) {
		t.Errorf("~p reported as atomic")
	}
}

func TestAtoms(t *testing.T) {
	tests := []struct {
		x    logic.Expr
		want []logic.Atom
	}{
		{p, atoms("p")},
		{bottom(), nil},
		{not(bottom()), nil},
		{and(q, p), atoms("q", "p")},
		{implies(or(p, q), and(q, not(r))), atoms("p", "q", "r")},
		{or(p, or(p, p)), atoms("p")},
	}
	for _, test := range tests {
		got := logic.Atoms(test.x)
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("%v: (-want, +got)\n%s", test.x, diff)
		}
	}
}

func TestMarshalText(t *testing.T) {
	xs := []logic.Expr{p, bottom(), not(p), and(p, or(q, r)), implies(p, q)}
	got, err := json.Marshal(xs)
	if err != nil {
		t.Fatalf("got err: %v", err)
	}
	want := `["p","⊥","~p","p ^ (q v r)","p → q"]`
	if string(got) != want {
		t.Errorf("got %s, want %s", got, want)
	}
}
