package evaluator

import (
	"github.com/funvibe/loxexpr/internal/token"
)

func evalPrefixExpression(op token.Token, right Value) (Value, *Error) {
	switch op.Type {
	case token.BANG:
		return nativeBoolToBooleanObject(!IsTruthy(right)), nil
	case token.MINUS:
		n, ok := right.(*Number)
		if !ok {
			return nil, typeError(op, "operand of '%s' must be a %s, got %s", op.Lexeme, NUMBER_VALUE, right.Type())
		}
		return &Number{Value: -n.Value}, nil
	default:
		return nil, unknownOperator(op, "prefix")
	}
}

func evalInfixExpression(op token.Token, left, right Value) (Value, *Error) {
	switch op.Type {
	case token.EQ:
		return nativeBoolToBooleanObject(Equal(left, right)), nil
	case token.NOT_EQ:
		return nativeBoolToBooleanObject(!Equal(left, right)), nil
	case token.PLUS:
		return evalPlusExpression(op, left, right)
	case token.MINUS, token.ASTERISK, token.SLASH, token.GT, token.GTE, token.LT, token.LTE:
		l, lok := left.(*Number)
		r, rok := right.(*Number)
		if !lok || !rok {
			return nil, typeError(op, "operands of '%s' must be %ss, got %s and %s",
				op.Lexeme, NUMBER_VALUE, left.Type(), right.Type())
		}
		return evalNumberInfixExpression(op.Type, l.Value, r.Value), nil
	default:
		return nil, unknownOperator(op, "infix")
	}
}

// evalPlusExpression handles the one overloaded operator: numeric sum or
// string concatenation, nothing mixed.
func evalPlusExpression(op token.Token, left, right Value) (Value, *Error) {
	switch l := left.(type) {
	case *Number:
		if r, ok := right.(*Number); ok {
			return &Number{Value: l.Value + r.Value}, nil
		}
	case *String:
		if r, ok := right.(*String); ok {
			return &String{Value: l.Value + r.Value}, nil
		}
	}
	return nil, typeError(op, "operands of '%s' must be two %ss or two %ss, got %s and %s",
		op.Lexeme, NUMBER_VALUE, STRING_VALUE, left.Type(), right.Type())
}

// evalNumberInfixExpression applies IEEE-754 semantics; division by zero
// yields an infinity or NaN.
func evalNumberInfixExpression(op token.TokenType, l, r float64) Value {
	switch op {
	case token.MINUS:
		return &Number{Value: l - r}
	case token.ASTERISK:
		return &Number{Value: l * r}
	case token.SLASH:
		return &Number{Value: l / r}
	case token.GT:
		return nativeBoolToBooleanObject(l > r)
	case token.GTE:
		return nativeBoolToBooleanObject(l >= r)
	case token.LT:
		return nativeBoolToBooleanObject(l < r)
	default: // token.LTE
		return nativeBoolToBooleanObject(l <= r)
	}
}

func unknownOperator(op token.Token, position string) *Error {
	e := newError(InvalidExpression, "unknown %s operator %q", position, op.Lexeme).at(op)
	e.Operator = op.Lexeme
	return e
}
