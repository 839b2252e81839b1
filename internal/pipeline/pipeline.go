package pipeline

import (
	"errors"
	"fmt"
	"os"

	"github.com/funvibe/loxexpr/internal/ast"
)

// Context is the state handed from stage to stage.
type Context struct {
	FilePath string
	Source   []byte
	Expr     ast.Expr
	// Result is set by the evaluation stage.
	Result interface{}
	Errors []error
}

// Err returns the collected errors, or nil.
func (c *Context) Err() error {
	switch len(c.Errors) {
	case 0:
		return nil
	case 1:
		return c.Errors[0]
	default:
		return errors.Join(c.Errors...)
	}
}

// Processor is one stage of a pipeline.
type Processor interface {
	Process(ctx *Context) *Context
}

// Pipeline represents a sequence of processing stages.
type Pipeline struct {
	processors []Processor
}

func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run executes the pipeline. Stages are expected to skip their work once an
// earlier stage recorded an error.
func (p *Pipeline) Run(initialCtx *Context) *Context {
	ctx := initialCtx
	for _, processor := range p.processors {
		ctx = processor.Process(ctx)
	}
	return ctx
}

// SourceProcessor reads FilePath into Source when no source was supplied.
type SourceProcessor struct{}

func (sp *SourceProcessor) Process(ctx *Context) *Context {
	if ctx.Source != nil || ctx.FilePath == "" || len(ctx.Errors) > 0 {
		return ctx
	}
	src, err := os.ReadFile(ctx.FilePath)
	if err != nil {
		ctx.Errors = append(ctx.Errors, fmt.Errorf("reading %s: %w", ctx.FilePath, err))
		return ctx
	}
	ctx.Source = src
	return ctx
}

// DecodeProcessor turns the YAML source into an expression tree.
type DecodeProcessor struct{}

func (dp *DecodeProcessor) Process(ctx *Context) *Context {
	if ctx.Expr != nil || len(ctx.Errors) > 0 {
		return ctx
	}
	expr, err := ast.DecodeYAML(ctx.Source)
	if err != nil {
		if ctx.FilePath != "" {
			err = fmt.Errorf("%s: %w", ctx.FilePath, err)
		}
		ctx.Errors = append(ctx.Errors, err)
		return ctx
	}
	ctx.Expr = expr
	return ctx
}
