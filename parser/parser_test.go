package parser_test

import (
	"testing"

	"github.com/brunokim/nd-checker/dsl"
	"github.com/brunokim/nd-checker/errors"
	"github.com/brunokim/nd-checker/logic"
	"github.com/brunokim/nd-checker/parser"

	"github.com/google/go-cmp/cmp"
)

var (
	and     = dsl.And
	atom    = dsl.Atom
	bottom  = dsl.Bottom
	implies = dsl.Implies
	not     = dsl.Not
	or      = dsl.Or
)

var (
	p = atom("p")
	q = atom("q")
	r = atom("r")
	s = atom("s")
)

func TestParseExpr(t *testing.T) {
	tests := []struct {
		text string
		want logic.Expr
	}{
		{`p`, p},
		{`  p `, p},
		{`(p)`, p},
		{`((p))`, p},
		{`⊥`, bottom()},
		{`A`, atom("A")},
		{`1`, atom("1")},
		{`~p`, not(p)},
		{`¬p`, not(p)},
		{`~~p`, not(not(p))},
		{`~ ~ p`, not(not(p))},
		{`~⊥`, not(bottom())},
		{`p^q`, and(p, q)},
		{`p & q`, and(p, q)},
		{`p ∧ q`, and(p, q)},
		{`pvq`, or(p, q)},
		{`p ∨ q`, or(p, q)},
		{`p→q`, implies(p, q)},
		{`p->q`, implies(p, q)},
		{`p-->q`, implies(p, q)},
		{`p --> q`, implies(p, q)},
		{`~p^q`, and(not(p), q)},
		{`p^~q`, and(p, not(q))},
		{`~(p^q)`, not(and(p, q))},
		{`p^qvr`, or(and(p, q), r)},
		{`pvq^r`, or(p, and(q, r))},
		{`(pvq)^r`, and(or(p, q), r)},
		{`pvq→r^s`, implies(or(p, q), and(r, s))},
		{`p→qvr`, implies(p, or(q, r))},
		{`p^q^r`, and(and(p, q), r)},
		{`pvqvr`, or(or(p, q), r)},
		{`p→q→r`, implies(implies(p, q), r)},
		{`p→(q→r)`, implies(p, implies(q, r))},
		{`~(pvq)^(r→s)`, and(not(or(p, q)), implies(r, s))},
		{`~(p v q) ^ (r → s)`, and(not(or(p, q)), implies(r, s))},
		{`(~p→q)v⊥`, or(implies(not(p), q), bottom())},
		{`~~p → p`, implies(not(not(p)), p)},
	}
	for _, test := range tests {
		got, err := parser.ParseExpr(test.text)
		if err != nil {
			t.Fatalf("%q: got err: %v", test.text, err)
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("%q: (-want, +got)\n%s", test.text, diff)
		}
	}
}

func TestParseExpr_Errors(t *testing.T) {
	tests := []struct {
		text string
		kind parser.ErrorKind
		pos  int
	}{
		{``, parser.EmptyInput, 0},
		{`   `, parser.EmptyInput, 3},
		{`(p`, parser.UnbalancedParens, 0},
		{`p)`, parser.UnbalancedParens, 1},
		{`(p^q))`, parser.UnbalancedParens, 5},
		{`((p)`, parser.UnbalancedParens, 0},
		{`)p`, parser.UnbalancedParens, 0},
		{`)`, parser.UnbalancedParens, 0},
		{`p^)`, parser.UnbalancedParens, 2},
		{`~)p`, parser.UnbalancedParens, 1},
		{`(p)^)`, parser.UnbalancedParens, 4},
		{`()`, parser.MissingOperand, 1},
		{`~`, parser.MissingOperand, 0},
		{`p^`, parser.MissingOperand, 1},
		{`^p`, parser.MissingOperand, 0},
		{`p^^q`, parser.MissingOperand, 2},
		{`(p→)`, parser.MissingOperand, 5},
		{`pq`, parser.MissingOperator, 1},
		{`p q`, parser.MissingOperator, 2},
		{`p~q`, parser.MissingOperator, 1},
		{`p(q)`, parser.MissingOperator, 1},
		{`(p)q`, parser.MissingOperator, 3},
		{`p + q`, parser.UnexpectedChar, 2},
		{`p - q`, parser.UnexpectedChar, 2},
		{`p => q`, parser.UnexpectedChar, 2},
		{"p\xffq", parser.UnexpectedChar, 1},
	}
	for _, test := range tests {
		got, err := parser.ParseExpr(test.text)
		if err == nil {
			t.Errorf("%q: want err, got %v", test.text, got)
			continue
		}
		var perr *parser.ParseError
		if !errors.As(err, &perr) {
			t.Errorf("%q: got err %v, want *ParseError", test.text, err)
			continue
		}
		if perr.Kind != test.kind || perr.Pos != test.pos {
			t.Errorf("%q: got (%v, %d), want (%v, %d)", test.text, perr.Kind, perr.Pos, test.kind, test.pos)
		}
	}
}

func TestParseError_Highlight(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"p)", "p)\n ^"},
		{"p → → q", "p → → q\n    ^"},
		{"p ^", "p ^\n  ^"},
		{"", "\n^"},
	}
	for _, test := range tests {
		_, err := parser.ParseExpr(test.text)
		var perr *parser.ParseError
		if !errors.As(err, &perr) {
			t.Errorf("%q: got err %v, want *ParseError", test.text, err)
			continue
		}
		if got := perr.Highlight(test.text); got != test.want {
			t.Errorf("%q: got %q, want %q", test.text, got, test.want)
		}
	}
}

func TestPrefix(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{`p`, "p"},
		{`~p^q`, "^~pq"},
		{`p^~q`, "^p~q"},
		{`p → q`, "→pq"},
		{`p->q->r`, "→→pqr"},
		{`p^qvr`, "v^pqr"},
		{`~(pvq)^(r→s)`, "^~vpq→rs"},
	}
	for _, test := range tests {
		got, err := parser.Prefix(test.text)
		if err != nil {
			t.Fatalf("%q: got err: %v", test.text, err)
		}
		if got != test.want {
			t.Errorf("%q: got %q, want %q", test.text, got, test.want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	exprs := []logic.Expr{
		p,
		bottom(),
		not(not(p)),
		and(not(or(p, q)), implies(r, s)),
		implies(p, implies(q, r)),
		implies(implies(p, q), r),
		and(p, and(q, r)),
		or(p, or(q, and(r, s))),
		not(implies(p, not(bottom()))),
		or(and(p, q), and(not(r), s)),
		and(or(p, q), or(r, s)),
		implies(not(and(p, q)), or(not(p), not(q))),
	}
	for _, x := range exprs {
		text := x.String()
		got, err := parser.ParseExpr(text)
		if err != nil {
			t.Fatalf("%q: got err: %v", text, err)
		}
		if !logic.Eq(x, got) {
			t.Errorf("%q: parsed to %v", text, got)
		}
	}
}

func TestMustParse(t *testing.T) {
	if got := parser.MustParse("p^q"); !logic.Eq(got, and(p, q)) {
		t.Errorf("got %v, want p ^ q", got)
	}
	defer func() {
		if recover() == nil {
			t.Errorf("MustParse(\"p^\") didn't panic")
		}
	}()
	parser.MustParse("p^")
}
