package token

type TokenType string

type Token struct {
	Type    TokenType
	Lexeme  string
	Literal interface{}
	Line    int
	Column  int
}

const (
	ILLEGAL TokenType = "ILLEGAL"

	// Literals
	NIL    TokenType = "NIL"
	TRUE   TokenType = "TRUE"
	FALSE  TokenType = "FALSE"
	NUMBER TokenType = "NUMBER"
	STRING TokenType = "STRING"

	// Operators
	BANG     TokenType = "!"
	MINUS    TokenType = "-"
	PLUS     TokenType = "+"
	ASTERISK TokenType = "*"
	SLASH    TokenType = "/"

	EQ     TokenType = "=="
	NOT_EQ TokenType = "!="
	LT     TokenType = "<"
	LTE    TokenType = "<="
	GT     TokenType = ">"
	GTE    TokenType = ">="

	// Delimiters
	LPAREN   TokenType = "("
	QUESTION TokenType = "?"
	COLON    TokenType = ":"
)

var operators = map[string]TokenType{
	"!":  BANG,
	"-":  MINUS,
	"+":  PLUS,
	"*":  ASTERISK,
	"/":  SLASH,
	"==": EQ,
	"!=": NOT_EQ,
	"<":  LT,
	"<=": LTE,
	">":  GT,
	">=": GTE,
}

// LookupOperator returns the operator TokenType for a lexeme, or ILLEGAL.
func LookupOperator(lexeme string) TokenType {
	if tt, ok := operators[lexeme]; ok {
		return tt
	}
	return ILLEGAL
}

// New builds an operator token at the given position.
func New(tt TokenType, line, column int) Token {
	return Token{Type: tt, Lexeme: string(tt), Line: line, Column: column}
}

// IsPrefix reports whether tt may appear as a unary operator.
func (tt TokenType) IsPrefix() bool {
	return tt == BANG || tt == MINUS
}

// IsInfix reports whether tt is one of the binary operators.
func (tt TokenType) IsInfix() bool {
	switch tt {
	case PLUS, MINUS, ASTERISK, SLASH, EQ, NOT_EQ, LT, LTE, GT, GTE:
		return true
	}
	return false
}
