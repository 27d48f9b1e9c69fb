package logic

import (
	"strings"
)

// Canonical connective symbols, as produced by String.
const (
	NotSymbol     = "~"
	AndSymbol     = "^"
	OrSymbol      = "v"
	ImpliesSymbol = "→"
	BottomSymbol  = "⊥"
)

// ---- String()

func (x Atom) String() string {
	return x.Name
}

func (Bottom) String() string {
	return BottomSymbol
}

func (x *Not) String() string {
	var b strings.Builder
	b.WriteString(NotSymbol)
	writeOperand(&b, x.Expr, negationPrecedence, false)
	return b.String()
}

func (x *And) String() string {
	return formatBinary(x.Left, AndSymbol, x.Right, conjunctionPrecedence)
}

func (x *Or) String() string {
	return formatBinary(x.Left, OrSymbol, x.Right, disjunctionPrecedence)
}

func (x *Implies) String() string {
	return formatBinary(x.Left, ImpliesSymbol, x.Right, implicationPrecedence)
}

func formatBinary(left Expr, symbol string, right Expr, prec int) string {
	var b strings.Builder
	writeOperand(&b, left, prec, false)
	b.WriteString(" ")
	b.WriteString(symbol)
	b.WriteString(" ")
	writeOperand(&b, right, prec, true)
	return b.String()
}

// writeOperand writes x, parenthesized if it binds looser than its parent.
// Binary connectives associate to the left, so a right operand with the
// parent's own precedence is also parenthesized.
func writeOperand(b *strings.Builder, x Expr, parent int, isRight bool) {
	prec := x.precedence()
	wrap := IsComposite(x) && (prec < parent || (isRight && prec == parent))
	if wrap {
		b.WriteString("(")
	}
	b.WriteString(x.String())
	if wrap {
		b.WriteString(")")
	}
}

// ---- MarshalText()

func (x Atom) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

func (x Bottom) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

func (x *Not) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

func (x *And) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

func (x *Or) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

func (x *Implies) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}
