package evaluator

import (
	"fmt"

	"github.com/funvibe/loxexpr/internal/pipeline"
)

// EvaluatorProcessor is the evaluation stage of a pipeline. It stores a
// Value in ctx.Result.
type EvaluatorProcessor struct {
	// Evaluator to use; nil means New().
	Evaluator *Evaluator
}

func (ep *EvaluatorProcessor) Process(ctx *pipeline.Context) *pipeline.Context {
	if ctx.Expr == nil || len(ctx.Errors) > 0 {
		return ctx
	}

	eval := ep.Evaluator
	if eval == nil {
		eval = New()
	}

	result, err := eval.Eval(ctx.Expr)
	if err != nil {
		if ctx.FilePath != "" {
			err = fmt.Errorf("%s: %w", ctx.FilePath, err)
		}
		ctx.Errors = append(ctx.Errors, err)
		return ctx
	}
	ctx.Result = result
	return ctx
}
