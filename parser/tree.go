package parser

import (
	"github.com/brunokim/nd-checker/logic"
)

// frame is a connective still waiting for some of its operands.
type frame struct {
	op   rune
	args []logic.Expr
}

func (f *frame) saturated() bool {
	return len(f.args) == arity(f.op)
}

func (f *frame) build() logic.Expr {
	switch f.op {
	case notOp:
		return logic.NewNot(f.args[0])
	case andOp:
		return logic.NewAnd(f.args[0], f.args[1])
	case orOp:
		return logic.NewOr(f.args[0], f.args[1])
	case impliesOp:
		return logic.NewImplies(f.args[0], f.args[1])
	default:
		panic("parser.build: not an operator: " + string(f.op))
	}
}

func leaf(r rune) logic.Expr {
	if r == bottom {
		return logic.Contradiction
	}
	return logic.Atom{Name: string(r)}
}

// fromPrefix folds a prefix string into a tree. Error positions are rune
// offsets within prefix.
func fromPrefix(prefix []rune) (logic.Expr, error) {
	var stack []*frame
	for i, r := range prefix {
		if isOperator(r) {
			stack = append(stack, &frame{op: r})
			continue
		}
		x := leaf(r)
		done := true
		for len(stack) > 0 {
			top := stack[len(stack)-1]
			top.args = append(top.args, x)
			if !top.saturated() {
				done = false
				break
			}
			stack = stack[:len(stack)-1]
			x = top.build()
		}
		if done {
			if i != len(prefix)-1 {
				return nil, &ParseError{Kind: MissingOperator, Pos: i + 1, Char: prefix[i+1]}
			}
			return x, nil
		}
	}
	if len(prefix) == 0 {
		return nil, &ParseError{Kind: EmptyInput}
	}
	return nil, &ParseError{Kind: MissingOperand, Pos: len(prefix)}
}
