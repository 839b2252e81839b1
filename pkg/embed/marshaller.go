package loxexpr

import (
	"fmt"
	"reflect"

	"github.com/funvibe/loxexpr/internal/evaluator"
)

// Marshaller handles conversion between Go and runtime values.
type Marshaller struct{}

func NewMarshaller() *Marshaller {
	return &Marshaller{}
}

// ToValue converts a Go value to a runtime Value. Integers and floats of any
// width become numbers; types the language cannot represent are an error.
func (m *Marshaller) ToValue(val interface{}) (evaluator.Value, error) {
	if val == nil {
		return evaluator.NIL, nil
	}

	// Check if already a Value
	if v, ok := val.(evaluator.Value); ok {
		return v, nil
	}

	v := reflect.ValueOf(val)
	for v.Kind() == reflect.Interface || v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return evaluator.NIL, nil
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return &evaluator.Number{Value: float64(v.Int())}, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return &evaluator.Number{Value: float64(v.Uint())}, nil
	case reflect.Float32, reflect.Float64:
		return &evaluator.Number{Value: v.Float()}, nil
	case reflect.Bool:
		if v.Bool() {
			return evaluator.TRUE, nil
		}
		return evaluator.FALSE, nil
	case reflect.String:
		return &evaluator.String{Value: v.String()}, nil
	default:
		return nil, fmt.Errorf("unsupported Go type for conversion: %T", val)
	}
}

// FromValue converts a runtime Value to a Go value: nil, bool, float64 or string.
func (m *Marshaller) FromValue(obj evaluator.Value) (interface{}, error) {
	switch o := obj.(type) {
	case nil, *evaluator.Nil:
		return nil, nil
	case *evaluator.Boolean:
		return o.Value, nil
	case *evaluator.Number:
		return o.Value, nil
	case *evaluator.String:
		return o.Value, nil
	default:
		return nil, fmt.Errorf("unsupported value for conversion: %s", o.Type())
	}
}
