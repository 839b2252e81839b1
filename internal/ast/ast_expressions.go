package ast

import (
	"github.com/funvibe/loxexpr/internal/token"
)

// Unary represents a prefix operation, e.g., -5 or !true.
type Unary struct {
	Operator token.Token // '-' or '!'
	Operand  Expr
}

func (u *Unary) exprNode()            {}
func (u *Unary) TokenLiteral() string { return u.Operator.Lexeme }
func (u *Unary) GetToken() token.Token {
	if u == nil {
		return token.Token{}
	}
	return u.Operator
}

// Binary represents an infix operation, e.g., 5 + 5.
type Binary struct {
	Operator token.Token
	Left     Expr
	Right    Expr
}

func (b *Binary) exprNode()            {}
func (b *Binary) TokenLiteral() string { return b.Operator.Lexeme }
func (b *Binary) GetToken() token.Token {
	if b == nil {
		return token.Token{}
	}
	return b.Operator
}

// Ternary represents cond ? then : else.
type Ternary struct {
	Token     token.Token // The '?' token
	Condition Expr
	Then      Expr
	Else      Expr
}

func (t *Ternary) exprNode()            {}
func (t *Ternary) TokenLiteral() string { return t.Token.Lexeme }
func (t *Ternary) GetToken() token.Token {
	if t == nil {
		return token.Token{}
	}
	return t.Token
}

func NewUnary(op token.TokenType, operand Expr) *Unary {
	return &Unary{Operator: token.New(op, 0, 0), Operand: operand}
}

func NewBinary(op token.TokenType, left, right Expr) *Binary {
	return &Binary{Operator: token.New(op, 0, 0), Left: left, Right: right}
}

func NewTernary(cond, then, els Expr) *Ternary {
	return &Ternary{Token: token.New(token.QUESTION, 0, 0), Condition: cond, Then: then, Else: els}
}
