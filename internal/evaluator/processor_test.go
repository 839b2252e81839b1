package evaluator

import (
	"errors"
	"strings"
	"testing"

	"github.com/funvibe/loxexpr/internal/ast"
	"github.com/funvibe/loxexpr/internal/pipeline"
	"github.com/funvibe/loxexpr/internal/token"
)

func TestEvaluatorProcessor(t *testing.T) {
	p := pipeline.New(&pipeline.DecodeProcessor{}, &EvaluatorProcessor{})
	ctx := p.Run(&pipeline.Context{Source: []byte(`binary: {op: "<=", left: {literal: 1}, right: {literal: 2}}`)})
	if err := ctx.Err(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ctx.Result != TRUE {
		t.Errorf("result = %v, want true", ctx.Result)
	}
}

func TestEvaluatorProcessor_Error(t *testing.T) {
	ctx := (&EvaluatorProcessor{Evaluator: New()}).Process(&pipeline.Context{
		FilePath: "calc.yaml",
		Expr:     ast.NewUnary(token.MINUS, ast.NewLiteral("x")),
	})
	if !errors.Is(ctx.Err(), ErrType) {
		t.Fatalf("expected type error, got %v", ctx.Err())
	}
	if !strings.HasPrefix(ctx.Err().Error(), "calc.yaml: ") {
		t.Errorf("error %q should name the file", ctx.Err())
	}
	if ctx.Result != nil {
		t.Errorf("result should stay unset, got %v", ctx.Result)
	}
}

func TestEvaluatorProcessor_SkipsAfterError(t *testing.T) {
	prior := errors.New("earlier stage failed")
	ctx := (&EvaluatorProcessor{}).Process(&pipeline.Context{
		Expr:   ast.NewLiteral(1.0),
		Errors: []error{prior},
	})
	if ctx.Result != nil || len(ctx.Errors) != 1 {
		t.Errorf("processor should not run after an error: %+v", ctx)
	}
}
