// Package loxexpr is the embedding API of the expression evaluator. Trees
// are built with the ast constructors or decoded from their YAML form, and
// results come back as plain Go values.
package loxexpr

import (
	"context"
	"fmt"

	"github.com/funvibe/loxexpr/internal/ast"
	"github.com/funvibe/loxexpr/internal/config"
	"github.com/funvibe/loxexpr/internal/evaluator"
	"github.com/funvibe/loxexpr/internal/pipeline"
)

// Error is the structured evaluation failure.
type Error = evaluator.Error

// Runtime wraps an Evaluator with Go value conversion.
type Runtime struct {
	eval       *evaluator.Evaluator
	marshaller *Marshaller
}

// New creates a Runtime with default limits.
func New(opts ...evaluator.Option) *Runtime {
	return &Runtime{eval: evaluator.New(opts...), marshaller: NewMarshaller()}
}

// NewFromConfigFile creates a Runtime configured by an evaluator.yaml file.
func NewFromConfigFile(path string, opts ...evaluator.Option) (*Runtime, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	return &Runtime{eval: evaluator.FromConfig(cfg, opts...), marshaller: NewMarshaller()}, nil
}

// Eval evaluates a tree and converts the result to nil, bool, float64 or string.
func (r *Runtime) Eval(expr ast.Expr) (interface{}, error) {
	v, err := r.eval.Eval(expr)
	if err != nil {
		return nil, err
	}
	return r.marshaller.FromValue(v)
}

// EvalYAML decodes a YAML tree document and evaluates it.
func (r *Runtime) EvalYAML(src []byte) (interface{}, error) {
	return r.run(&pipeline.Context{Source: src})
}

// EvalFile evaluates the YAML tree stored in path. Errors are prefixed with path.
func (r *Runtime) EvalFile(path string) (interface{}, error) {
	return r.run(&pipeline.Context{FilePath: path})
}

func (r *Runtime) run(ctx *pipeline.Context) (interface{}, error) {
	ctx = pipeline.New(
		&pipeline.SourceProcessor{},
		&pipeline.DecodeProcessor{},
		&evaluator.EvaluatorProcessor{Evaluator: r.eval},
	).Run(ctx)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	v, ok := ctx.Result.(evaluator.Value)
	if !ok {
		return nil, fmt.Errorf("evaluation produced no value")
	}
	return r.marshaller.FromValue(v)
}

// EvalAll evaluates independent trees concurrently. Per-tree failures are
// returned in errs at the same index; the error result reports cancellation.
func (r *Runtime) EvalAll(ctx context.Context, exprs []ast.Expr) (values []interface{}, errs []error, err error) {
	results, err := r.eval.EvalBatch(ctx, exprs)
	values = make([]interface{}, len(results))
	errs = make([]error, len(results))
	for i, res := range results {
		if res.Err != nil {
			errs[i] = res.Err
			continue
		}
		values[i], errs[i] = r.marshaller.FromValue(res.Value)
	}
	return values, errs, err
}

// Literal builds a literal node from a Go value, converting integers and
// other numeric kinds to float64.
func (r *Runtime) Literal(val interface{}) (*ast.Literal, error) {
	v, err := r.marshaller.ToValue(val)
	if err != nil {
		return nil, err
	}
	native, err := r.marshaller.FromValue(v)
	if err != nil {
		return nil, err
	}
	return ast.NewLiteral(native), nil
}
