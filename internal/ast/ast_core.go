package ast

import (
	"github.com/funvibe/loxexpr/internal/token"
)

// TokenProvider is an interface for any AST node that can provide its primary token.
// This is useful for error reporting.
type TokenProvider interface {
	GetToken() token.Token
}

// Expr is an expression tree node. The set of implementations is closed:
// Literal, Grouping, Unary, Binary and Ternary.
type Expr interface {
	TokenProvider
	TokenLiteral() string
	exprNode()
}

// Literal carries a value resolved by the parser: nil, bool, float64 or string.
type Literal struct {
	Token token.Token
	Value interface{}
}

func (l *Literal) exprNode()            {}
func (l *Literal) TokenLiteral() string { return l.Token.Lexeme }
func (l *Literal) GetToken() token.Token {
	if l == nil {
		return token.Token{}
	}
	return l.Token
}

// Grouping is a parenthesized expression.
type Grouping struct {
	Token token.Token // The '(' token
	Inner Expr
}

func (g *Grouping) exprNode()            {}
func (g *Grouping) TokenLiteral() string { return g.Token.Lexeme }
func (g *Grouping) GetToken() token.Token {
	if g == nil {
		return token.Token{}
	}
	return g.Token
}

// NewLiteral builds a literal node with no source position.
func NewLiteral(value interface{}) *Literal {
	return &Literal{Token: literalToken(value), Value: value}
}

// NewGrouping wraps inner in a grouping node.
func NewGrouping(inner Expr) *Grouping {
	return &Grouping{Token: token.Token{Type: token.LPAREN, Lexeme: "("}, Inner: inner}
}

func literalToken(value interface{}) token.Token {
	switch v := value.(type) {
	case nil:
		return token.Token{Type: token.NIL, Lexeme: "nil"}
	case bool:
		if v {
			return token.Token{Type: token.TRUE, Lexeme: "true", Literal: v}
		}
		return token.Token{Type: token.FALSE, Lexeme: "false", Literal: v}
	case float64:
		return token.Token{Type: token.NUMBER, Lexeme: FormatNumber(v), Literal: v}
	case string:
		return token.Token{Type: token.STRING, Lexeme: v, Literal: v}
	default:
		return token.Token{Type: token.ILLEGAL, Literal: v}
	}
}
