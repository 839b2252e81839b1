package evaluator

import (
	"strconv"

	"github.com/funvibe/loxexpr/internal/ast"
)

// Nil
type Nil struct{}

func (n *Nil) Type() ValueType { return NIL_VALUE }
func (n *Nil) Inspect() string { return "nil" }
func (n *Nil) value()          {}

// Boolean
type Boolean struct {
	Value bool
}

func (b *Boolean) Type() ValueType { return BOOLEAN_VALUE }
func (b *Boolean) Inspect() string { return strconv.FormatBool(b.Value) }
func (b *Boolean) value()          {}

// Number is an IEEE-754 double.
type Number struct {
	Value float64
}

func (n *Number) Type() ValueType { return NUMBER_VALUE }
func (n *Number) Inspect() string { return ast.FormatNumber(n.Value) }
func (n *Number) value()          {}

// String
type String struct {
	Value string
}

func (s *String) Type() ValueType { return STRING_VALUE }
func (s *String) Inspect() string { return s.Value }
func (s *String) value()          {}
