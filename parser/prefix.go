package parser

import (
	"strings"
	"unicode/utf8"

	"github.com/brunokim/nd-checker/runes"
)

// token is a symbol of the formula text, with connectives already replaced by
// their canonical rune.
type token struct {
	sym rune
	pos int
}

func tokenize(text string) ([]token, error) {
	var tokens []token
	for pos := 0; pos < len(text); {
		r, ok := runes.First(text[pos:])
		if !ok {
			return nil, &ParseError{Kind: UnexpectedChar, Pos: pos, Char: utf8.RuneError}
		}
		size := utf8.RuneLen(r)
		sym := r
		switch {
		case runes.IsSpace(r):
			pos += size
			continue
		case r == '~' || r == '¬':
			sym = notOp
		case r == '^' || r == '&' || r == '∧':
			sym = andOp
		case r == 'v' || r == '∨':
			sym = orOp
		case r == '→':
			sym = impliesOp
		case strings.HasPrefix(text[pos:], "-->"):
			sym, size = impliesOp, 3
		case strings.HasPrefix(text[pos:], "->"):
			sym, size = impliesOp, 2
		case r == '(' || r == ')' || r == bottom || runes.IsAtom(r):
		default:
			return nil, &ParseError{Kind: UnexpectedChar, Pos: pos, Char: r}
		}
		tokens = append(tokens, token{sym, pos})
		pos += size
	}
	return tokens, nil
}

// linearizer converts infix tokens to prefix notation with a pair of stacks.
//
// Operands are kept as already-linearized prefix strings. Reducing an operator
// pops its operands and pushes the operator followed by them, left operand
// first, which is the order fromPrefix rebuilds them.
type linearizer struct {
	ops      []token
	operands [][]rune
	// expectOperand is false right after an operand or a ')'.
	expectOperand bool
}

func toPrefix(text string) ([]rune, error) {
	tokens, err := tokenize(text)
	if err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		return nil, &ParseError{Kind: EmptyInput, Pos: len(text)}
	}
	l := &linearizer{expectOperand: true}
	for _, tok := range tokens {
		if err := l.push(tok); err != nil {
			return nil, err
		}
	}
	return l.finish(len(text))
}

func (l *linearizer) push(tok token) error {
	switch {
	case tok.sym == '(':
		if !l.expectOperand {
			return &ParseError{Kind: MissingOperator, Pos: tok.pos, Char: tok.sym}
		}
		l.ops = append(l.ops, tok)
	case tok.sym == ')':
		if !l.hasOpenParen() {
			return &ParseError{Kind: UnbalancedParens, Pos: tok.pos, Char: tok.sym}
		}
		if l.expectOperand {
			return &ParseError{Kind: MissingOperand, Pos: tok.pos, Char: tok.sym}
		}
		for {
			op, ok := l.popOp()
			if !ok {
				return &ParseError{Kind: UnbalancedParens, Pos: tok.pos, Char: tok.sym}
			}
			if op.sym == '(' {
				break
			}
			if err := l.reduce(op); err != nil {
				return err
			}
		}
	case isUnary(tok.sym):
		// Prefix operators wait for their operand, so they never reduce the stack.
		if !l.expectOperand {
			return &ParseError{Kind: MissingOperator, Pos: tok.pos, Char: tok.sym}
		}
		l.ops = append(l.ops, tok)
	case isOperator(tok.sym):
		if l.expectOperand {
			return &ParseError{Kind: MissingOperand, Pos: tok.pos, Char: tok.sym}
		}
		for len(l.ops) > 0 {
			top := l.ops[len(l.ops)-1]
			if top.sym == '(' || priority(top.sym) < priority(tok.sym) {
				break
			}
			l.ops = l.ops[:len(l.ops)-1]
			if err := l.reduce(top); err != nil {
				return err
			}
		}
		l.ops = append(l.ops, tok)
		l.expectOperand = true
	default:
		if !l.expectOperand {
			return &ParseError{Kind: MissingOperator, Pos: tok.pos, Char: tok.sym}
		}
		l.operands = append(l.operands, []rune{tok.sym})
		l.expectOperand = false
	}
	return nil
}

func (l *linearizer) hasOpenParen() bool {
	for _, op := range l.ops {
		if op.sym == '(' {
			return true
		}
	}
	return false
}

func (l *linearizer) popOp() (token, bool) {
	if len(l.ops) == 0 {
		return token{}, false
	}
	op := l.ops[len(l.ops)-1]
	l.ops = l.ops[:len(l.ops)-1]
	return op, true
}

func (l *linearizer) popOperand() []rune {
	x := l.operands[len(l.operands)-1]
	l.operands = l.operands[:len(l.operands)-1]
	return x
}

func (l *linearizer) reduce(op token) error {
	n := arity(op.sym)
	if len(l.operands) < n {
		return &ParseError{Kind: MissingOperand, Pos: op.pos, Char: op.sym}
	}
	first := l.popOperand()
	x := []rune{op.sym}
	if n == 2 {
		second := l.popOperand()
		x = append(x, second...)
	}
	x = append(x, first...)
	l.operands = append(l.operands, x)
	return nil
}

func (l *linearizer) finish(end int) ([]rune, error) {
	for {
		op, ok := l.popOp()
		if !ok {
			break
		}
		if op.sym == '(' {
			return nil, &ParseError{Kind: UnbalancedParens, Pos: op.pos, Char: op.sym}
		}
		if err := l.reduce(op); err != nil {
			return nil, err
		}
	}
	switch len(l.operands) {
	case 0:
		return nil, &ParseError{Kind: MissingOperand, Pos: end}
	case 1:
		return l.operands[0], nil
	default:
		return nil, &ParseError{Kind: MissingOperator, Pos: end}
	}
}
