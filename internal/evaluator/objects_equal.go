package evaluator

// IsTruthy reports whether v counts as true in a condition.
// Only nil and false are falsy.
func IsTruthy(v Value) bool {
	switch v := v.(type) {
	case nil, *Nil:
		return false
	case *Boolean:
		return v.Value
	default:
		return true
	}
}

// Equal is the language's equality. Nil equals only Nil, values of different
// variants are never equal, and numbers compare with IEEE semantics, so
// NaN != NaN and 0 == -0.
func Equal(a, b Value) bool {
	aNil := a == nil || a.Type() == NIL_VALUE
	bNil := b == nil || b.Type() == NIL_VALUE
	if aNil || bNil {
		return aNil && bNil
	}

	switch aVal := a.(type) {
	case *Boolean:
		if bVal, ok := b.(*Boolean); ok {
			return aVal.Value == bVal.Value
		}
	case *Number:
		if bVal, ok := b.(*Number); ok {
			return aVal.Value == bVal.Value
		}
	case *String:
		if bVal, ok := b.(*String); ok {
			return aVal.Value == bVal.Value
		}
	}
	return false
}
