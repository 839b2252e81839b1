package evaluator

import (
	"github.com/funvibe/loxexpr/internal/config"
)

type ValueType string

const (
	NIL_VALUE     ValueType = config.NilTypeName
	BOOLEAN_VALUE ValueType = config.BooleanTypeName
	NUMBER_VALUE  ValueType = config.NumberTypeName
	STRING_VALUE  ValueType = config.StringTypeName
)

// Value is a runtime value. Exactly four variants exist: *Nil, *Boolean,
// *Number and *String. Values are immutable once produced.
type Value interface {
	Type() ValueType
	Inspect() string
	value()
}

var (
	NIL   = &Nil{}
	TRUE  = &Boolean{Value: true}
	FALSE = &Boolean{Value: false}
)

func nativeBoolToBooleanObject(input bool) *Boolean {
	if input {
		return TRUE
	}
	return FALSE
}

// FromNative converts a literal payload produced by the parser into a Value.
// ok is false for payload types the language does not have.
func FromNative(v interface{}) (Value, bool) {
	switch v := v.(type) {
	case nil:
		return NIL, true
	case bool:
		return nativeBoolToBooleanObject(v), true
	case float64:
		return &Number{Value: v}, true
	case string:
		return &String{Value: v}, true
	default:
		return nil, false
	}
}
