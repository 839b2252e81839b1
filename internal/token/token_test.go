package token

import "testing"

func TestLookupOperator(t *testing.T) {
	tests := []struct {
		lexeme string
		want   TokenType
	}{
		{"+", PLUS},
		{"-", MINUS},
		{"*", ASTERISK},
		{"/", SLASH},
		{"!", BANG},
		{"==", EQ},
		{"!=", NOT_EQ},
		{"<", LT},
		{"<=", LTE},
		{">", GT},
		{">=", GTE},
		{"%", ILLEGAL},
		{"", ILLEGAL},
	}

	for _, tt := range tests {
		if got := LookupOperator(tt.lexeme); got != tt.want {
			t.Errorf("LookupOperator(%q) = %q, want %q", tt.lexeme, got, tt.want)
		}
	}
}

func TestOperatorClasses(t *testing.T) {
	for _, tt := range []TokenType{BANG, MINUS} {
		if !tt.IsPrefix() {
			t.Errorf("%q should be a prefix operator", tt)
		}
	}
	if PLUS.IsPrefix() {
		t.Errorf("+ should not be a prefix operator")
	}

	for _, tt := range []TokenType{PLUS, MINUS, ASTERISK, SLASH, EQ, NOT_EQ, LT, LTE, GT, GTE} {
		if !tt.IsInfix() {
			t.Errorf("%q should be an infix operator", tt)
		}
	}
	if BANG.IsInfix() || QUESTION.IsInfix() {
		t.Errorf("! and ? should not be infix operators")
	}
}

func TestNew(t *testing.T) {
	tok := New(GTE, 3, 7)
	if tok.Type != GTE || tok.Lexeme != ">=" || tok.Line != 3 || tok.Column != 7 {
		t.Errorf("unexpected token: %+v", tok)
	}
}
