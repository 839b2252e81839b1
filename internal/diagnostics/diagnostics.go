// Package diagnostics renders evaluation and tree-decoding failures for
// people reading a terminal or a log file.
package diagnostics

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/funvibe/loxexpr/internal/ast"
	"github.com/funvibe/loxexpr/internal/evaluator"
)

const (
	colorRed   = "\x1b[31m"
	colorBold  = "\x1b[1m"
	colorReset = "\x1b[0m"
)

// Printer writes formatted errors to an output. Colour is enabled when the
// output is a terminal.
type Printer struct {
	w     io.Writer
	color bool
}

func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w, color: isTerminal(w)}
}

// SetColor forces colour on or off.
func (p *Printer) SetColor(on bool) { p.color = on }

// Color reports whether escape sequences are written.
func (p *Printer) Color() bool { return p.color }

// Print writes err on its own line.
func (p *Printer) Print(err error) error {
	_, werr := fmt.Fprintln(p.w, Format(err, p.color))
	return werr
}

// Report writes err followed by the tree it came from.
func (p *Printer) Report(err error, expr ast.Expr) error {
	var b strings.Builder
	b.WriteString(Format(err, p.color))
	b.WriteString("\n    in ")
	b.WriteString(ast.Print(expr))
	_, werr := fmt.Fprintln(p.w, b.String())
	return werr
}

// Format renders err as "[line L:C] Kind: message". The position prefix is
// omitted when unknown.
func Format(err error, color bool) string {
	if err == nil {
		return ""
	}

	var (
		kind      string
		message   string
		line, col int
	)

	var evalErr *evaluator.Error
	var decodeErr *ast.DecodeError
	switch {
	case errors.As(err, &evalErr):
		kind, message, line, col = evalErr.Kind.String(), evalErr.Message, evalErr.Line, evalErr.Column
	case errors.As(err, &decodeErr):
		kind, message, line, col = "DecodeError", decodeErr.Message, decodeErr.Line, decodeErr.Column
	default:
		kind, message = "error", err.Error()
	}

	if color {
		kind = colorBold + colorRed + kind + colorReset
	}
	if line > 0 {
		return fmt.Sprintf("[line %d:%d] %s: %s", line, col, kind, message)
	}
	return fmt.Sprintf("%s: %s", kind, message)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return false
	}
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	return true
}
