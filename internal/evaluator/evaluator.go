package evaluator

import (
	"unicode/utf8"

	"github.com/oarkflow/log"

	"github.com/funvibe/loxexpr/internal/ast"
	"github.com/funvibe/loxexpr/internal/config"
	"github.com/funvibe/loxexpr/internal/token"
)

// Evaluator turns expression trees into values. It holds only configuration,
// so a single Evaluator may be shared by concurrent callers.
type Evaluator struct {
	// maxDepth is the maximum nesting depth of a single evaluation.
	maxDepth int
	// concurrency bounds EvalBatch; <= 0 means GOMAXPROCS.
	concurrency int
	// logger is optional; nil keeps evaluation silent.
	logger *log.Logger
	// visit, when set, is called before each node is evaluated.
	visit VisitFunc
}

// VisitFunc observes evaluation order. depth is 1 for the root.
type VisitFunc func(node ast.Expr, depth int)

type Option func(*Evaluator)

// WithMaxDepth overrides config.DefaultMaxDepth. Non-positive values are ignored.
func WithMaxDepth(depth int) Option {
	return func(e *Evaluator) {
		if depth > 0 {
			e.maxDepth = depth
		}
	}
}

// WithConcurrency bounds the number of trees EvalBatch evaluates at once.
func WithConcurrency(n int) Option {
	return func(e *Evaluator) { e.concurrency = n }
}

func WithLogger(logger *log.Logger) Option {
	return func(e *Evaluator) { e.logger = logger }
}

// WithVisitHook installs fn to be called for every node the evaluator
// enters. Nodes skipped by the ternary are never reported.
func WithVisitHook(fn VisitFunc) Option {
	return func(e *Evaluator) { e.visit = fn }
}

func New(opts ...Option) *Evaluator {
	e := &Evaluator{
		maxDepth:    config.DefaultMaxDepth,
		concurrency: config.DefaultConcurrency,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// FromConfig builds an Evaluator from loaded options. Extra options are
// applied after the config values.
func FromConfig(cfg *config.Options, opts ...Option) *Evaluator {
	base := []Option{WithMaxDepth(cfg.MaxDepth), WithConcurrency(cfg.Concurrency)}
	if cfg.Trace {
		base = append(base, WithLogger(&log.DefaultLogger))
	}
	return New(append(base, opts...)...)
}

// MaxDepth reports the configured nesting limit.
func (e *Evaluator) MaxDepth() int { return e.maxDepth }

// Eval evaluates expr. On failure the error is an *Error.
func (e *Evaluator) Eval(expr ast.Expr) (Value, error) {
	w := &walker{maxDepth: e.maxDepth, visit: e.visit}
	v, err := w.eval(expr)
	if err != nil {
		e.logFailure(w.failed, err)
		return nil, err
	}
	return v, nil
}

// maxLoggedExpr caps the rendered node in failure logs.
const maxLoggedExpr = 200

// failureContext renders the failing node for a log line, truncated to
// maxLoggedExpr bytes.
func failureContext(node ast.Expr) string {
	s := ast.Print(node)
	if len(s) <= maxLoggedExpr {
		return s
	}
	cut := maxLoggedExpr
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}

func (e *Evaluator) logFailure(node ast.Expr, err *Error) {
	if e.logger == nil {
		return
	}
	entry := e.logger.Warn().
		Str("kind", err.Kind.String()).
		Str("expr", failureContext(node)).
		Int("line", err.Line).
		Int("column", err.Column)
	if err.Operator != "" {
		entry = entry.Str("operator", err.Operator)
	}
	entry.Msg(err.Message)
}

// walker carries the state of one Eval call.
type walker struct {
	maxDepth int
	depth    int
	visit    VisitFunc
	// failed is the innermost node whose evaluation failed.
	failed ast.Expr
}

func (w *walker) eval(node ast.Expr) (Value, *Error) {
	v, err := w.evalNode(node)
	if err != nil && w.failed == nil && node != nil {
		w.failed = node
	}
	return v, err
}

func (w *walker) evalNode(node ast.Expr) (Value, *Error) {
	w.depth++
	defer func() { w.depth-- }()
	if w.depth > w.maxDepth {
		return nil, newError(RecursionLimitExceeded, "maximum expression depth %d exceeded", w.maxDepth).
			at(tokenOf(node))
	}
	if w.visit != nil {
		w.visit(node, w.depth)
	}

	switch node := node.(type) {
	case nil:
		return nil, newError(InvalidExpression, "missing expression")
	case *ast.Literal:
		if node == nil {
			return nil, invalidNode(node)
		}
		v, ok := FromNative(node.Value)
		if !ok {
			return nil, newError(InvalidExpression, "unsupported literal of type %T", node.Value).at(node.Token)
		}
		return v, nil
	case *ast.Grouping:
		if node == nil {
			return nil, invalidNode(node)
		}
		return w.eval(node.Inner)
	case *ast.Unary:
		if node == nil {
			return nil, invalidNode(node)
		}
		right, err := w.eval(node.Operand)
		if err != nil {
			return nil, err
		}
		return evalPrefixExpression(node.Operator, right)
	case *ast.Binary:
		if node == nil {
			return nil, invalidNode(node)
		}
		left, err := w.eval(node.Left)
		if err != nil {
			return nil, err
		}
		right, err := w.eval(node.Right)
		if err != nil {
			return nil, err
		}
		return evalInfixExpression(node.Operator, left, right)
	case *ast.Ternary:
		if node == nil {
			return nil, invalidNode(node)
		}
		cond, err := w.eval(node.Condition)
		if err != nil {
			return nil, err
		}
		if IsTruthy(cond) {
			return w.eval(node.Then)
		}
		return w.eval(node.Else)
	default:
		return nil, newError(InvalidExpression, "unknown expression node %T", node).at(tokenOf(node))
	}
}

func invalidNode(node ast.Expr) *Error {
	return newError(InvalidExpression, "nil %T node", node)
}

func tokenOf(node ast.Expr) token.Token {
	if node == nil {
		return token.Token{}
	}
	return node.GetToken()
}
