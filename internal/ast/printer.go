package ast

import (
	"bytes"
	"math"
	"strconv"
)

// Printer renders expression trees in the parenthesized prefix form,
// e.g. (* (- 123) (group 45.67)).
type Printer struct {
	buf bytes.Buffer
}

// Print renders expr.
func Print(expr Expr) string {
	p := &Printer{}
	p.print(expr)
	return p.buf.String()
}

func (p *Printer) print(expr Expr) {
	switch n := expr.(type) {
	case nil:
		p.buf.WriteString("<nil>")
	case *Literal:
		if n == nil {
			p.buf.WriteString("<nil>")
			return
		}
		p.literal(n.Value)
	case *Grouping:
		if n == nil {
			p.buf.WriteString("<nil>")
			return
		}
		p.parenthesize("group", n.Inner)
	case *Unary:
		if n == nil {
			p.buf.WriteString("<nil>")
			return
		}
		p.parenthesize(n.Operator.Lexeme, n.Operand)
	case *Binary:
		if n == nil {
			p.buf.WriteString("<nil>")
			return
		}
		p.parenthesize(n.Operator.Lexeme, n.Left, n.Right)
	case *Ternary:
		if n == nil {
			p.buf.WriteString("<nil>")
			return
		}
		p.parenthesize("?:", n.Condition, n.Then, n.Else)
	default:
		p.buf.WriteString("<invalid>")
	}
}

func (p *Printer) parenthesize(name string, exprs ...Expr) {
	p.buf.WriteByte('(')
	p.buf.WriteString(name)
	for _, e := range exprs {
		p.buf.WriteByte(' ')
		p.print(e)
	}
	p.buf.WriteByte(')')
}

func (p *Printer) literal(v interface{}) {
	switch v := v.(type) {
	case nil:
		p.buf.WriteString("nil")
	case bool:
		p.buf.WriteString(strconv.FormatBool(v))
	case float64:
		p.buf.WriteString(FormatNumber(v))
	case string:
		p.buf.WriteString(strconv.Quote(v))
	default:
		p.buf.WriteString("<invalid>")
	}
}

// FormatNumber renders a number the way the language prints it:
// integral values without a fraction, infinities as Infinity.
func FormatNumber(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case math.IsNaN(v):
		return "NaN"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
