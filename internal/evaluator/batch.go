package evaluator

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/funvibe/loxexpr/internal/ast"
)

// Result is the outcome of one tree in a batch.
type Result struct {
	Value Value
	Err   error
}

// EvalBatch evaluates independent trees concurrently. Results keep the order
// of exprs, and a failing tree does not stop the others. Trees that never ran
// because ctx ended carry ctx's error in their Result, and the first such
// error is also returned. A ctx that ends after every tree was evaluated is
// not an error.
func (e *Evaluator) EvalBatch(ctx context.Context, exprs []ast.Expr) ([]Result, error) {
	results := make([]Result, len(exprs))

	limit := e.concurrency
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, expr := range exprs {
		if err := gctx.Err(); err != nil {
			for j := i; j < len(exprs); j++ {
				results[j].Err = err
			}
			break
		}
		i, expr := i, expr
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				results[i].Err = err
				return err
			}
			v, err := e.Eval(expr)
			results[i] = Result{Value: v, Err: err}
			return nil
		})
	}

	// Workers only fail on cancellation, which the skipped results record.
	_ = g.Wait()

	for _, r := range results {
		if r.Err == nil {
			continue
		}
		if _, evalErr := r.Err.(*Error); !evalErr {
			return results, r.Err
		}
	}

	if e.logger != nil {
		failed := 0
		for _, r := range results {
			if r.Err != nil {
				failed++
			}
		}
		e.logger.Info().Int("trees", len(exprs)).Int("failed", failed).Msg("batch evaluated")
	}
	return results, nil
}
