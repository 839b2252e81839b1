package diagnostics

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/funvibe/loxexpr/internal/ast"
	"github.com/funvibe/loxexpr/internal/evaluator"
	"github.com/funvibe/loxexpr/internal/token"
)

func evalError(t *testing.T, expr ast.Expr) error {
	t.Helper()
	_, err := evaluator.New().Eval(expr)
	if err == nil {
		t.Fatalf("expected %s to fail", ast.Print(expr))
	}
	return err
}

func TestFormat(t *testing.T) {
	positioned := &ast.Unary{Operator: token.New(token.MINUS, 2, 7), Operand: ast.NewLiteral("x")}
	unpositioned := ast.NewBinary(token.PLUS, ast.NewLiteral(1.0), ast.NewLiteral(nil))
	_, decodeErr := ast.DecodeYAML([]byte("grouping:\n  inner:\n    bogus: 1\n"))

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"positioned", evalError(t, positioned), "[line 2:7] TypeError: operand of '-' must be a NUMBER, got STRING"},
		{"unpositioned", evalError(t, unpositioned), "TypeError: operands of '+' must be two NUMBERs or two STRINGs, got NUMBER and NIL"},
		{"wrapped", fmt.Errorf("case 3: %w", evalError(t, positioned)), "[line 2:7] TypeError: operand of '-' must be a NUMBER, got STRING"},
		{"decode", decodeErr, `[line 3:5] DecodeError: unknown node kind "bogus"`},
		{"plain", errors.New("boom"), "error: boom"},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.err, false); got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormat_Color(t *testing.T) {
	err := evalError(t, ast.NewUnary(token.MINUS, ast.NewLiteral(true)))
	got := Format(err, true)
	if !strings.Contains(got, colorRed+"TypeError"+colorReset) {
		t.Errorf("expected coloured kind, got %q", got)
	}
}

func TestPrinter(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)
	if p.Color() {
		t.Fatalf("a bytes.Buffer is not a terminal")
	}

	expr := ast.NewBinary(token.LT, ast.NewLiteral("a"), ast.NewLiteral(1.0))
	if err := p.Report(evalError(t, expr), expr); err != nil {
		t.Fatal(err)
	}
	want := "TypeError: operands of '<' must be NUMBERs, got STRING and NUMBER\n    in (< \"a\" 1)\n"
	if buf.String() != want {
		t.Errorf("Report wrote %q, want %q", buf.String(), want)
	}

	buf.Reset()
	p.SetColor(true)
	if err := p.Print(errors.New("x")); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(buf.String(), colorBold) || !strings.HasSuffix(buf.String(), "\n") {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestPrinter_RegularFileIsNotTerminal(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out.log"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if NewPrinter(f).Color() {
		t.Errorf("colour enabled for a regular file")
	}
}
