package evaluator

import (
	"errors"
	"fmt"

	"github.com/funvibe/loxexpr/internal/token"
)

// ErrorKind classifies evaluation failures.
type ErrorKind int

const (
	// TypeError: an operand does not have the runtime type its operator requires.
	TypeError ErrorKind = iota + 1
	// RecursionLimitExceeded: the tree is nested deeper than the configured limit.
	RecursionLimitExceeded
	// InvalidExpression: the tree itself is malformed (nil node, foreign node
	// type, operator that does not belong to the node, unsupported literal).
	InvalidExpression
)

func (k ErrorKind) String() string {
	switch k {
	case TypeError:
		return "TypeError"
	case RecursionLimitExceeded:
		return "RecursionLimitExceeded"
	case InvalidExpression:
		return "InvalidExpression"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Error is the structured failure of an evaluation.
type Error struct {
	Kind     ErrorKind
	Operator string // lexeme of the offending operator, if any
	Message  string
	Line     int
	Column   int
}

// Sentinels for errors.Is; they match any *Error of the same kind.
var (
	ErrType              = &Error{Kind: TypeError}
	ErrRecursionLimit    = &Error{Kind: RecursionLimitExceeded}
	ErrInvalidExpression = &Error{Kind: InvalidExpression}
)

func (e *Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s at %d:%d: %s", e.Kind, e.Line, e.Column, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func newError(kind ErrorKind, format string, a ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, a...)}
}

// at records the position of tok on e.
func (e *Error) at(tok token.Token) *Error {
	e.Line = tok.Line
	e.Column = tok.Column
	return e
}

// typeError reports an operand type mismatch at the operator token.
func typeError(op token.Token, format string, a ...interface{}) *Error {
	e := newError(TypeError, format, a...).at(op)
	e.Operator = op.Lexeme
	return e
}

// AsError extracts an *Error from err.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
