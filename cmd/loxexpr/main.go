package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/funvibe/loxexpr/internal/ast"
	"github.com/funvibe/loxexpr/internal/config"
	"github.com/funvibe/loxexpr/internal/diagnostics"
	"github.com/funvibe/loxexpr/internal/evaluator"
	"github.com/funvibe/loxexpr/internal/pipeline"
)

const usage = `Usage: %s [-print] [-trace] <file.yaml>...

Evaluates expression trees stored as YAML. With no files the tree is read
from stdin. Settings come from the nearest evaluator.yaml.

  -print   print each tree in prefix form before its value
  -trace   log failures to stderr
`

func main() {
	os.Exit(run(os.Args, os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var (
		files     []string
		printTree bool
		trace     bool
	)
	for _, arg := range args[1:] {
		switch arg {
		case "-h", "-help", "--help":
			fmt.Fprintf(stdout, usage, filepath.Base(args[0]))
			return 0
		case "-print", "--print":
			printTree = true
		case "-trace", "--trace":
			trace = true
		default:
			if strings.HasPrefix(arg, "-") && arg != "-" {
				fmt.Fprintf(stderr, "unknown flag %s\n", arg)
				fmt.Fprintf(stderr, usage, filepath.Base(args[0]))
				return 2
			}
			files = append(files, arg)
		}
	}

	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", err)
		return 1
	}
	cfg, err := config.LoadOrDefault(cwd)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", err)
		return 1
	}
	cfg.Trace = cfg.Trace || trace
	eval := evaluator.FromConfig(cfg)

	var contexts []*pipeline.Context
	if len(files) == 0 || (len(files) == 1 && files[0] == "-") {
		src, err := io.ReadAll(stdin)
		if err != nil {
			fmt.Fprintf(stderr, "Error reading input: %s\n", err)
			return 1
		}
		contexts = append(contexts, &pipeline.Context{Source: src})
	} else {
		for _, f := range files {
			if !isSourceFile(f) {
				fmt.Fprintf(stderr, "%s: not a YAML tree file\n", f)
				return 2
			}
			contexts = append(contexts, &pipeline.Context{FilePath: f})
		}
	}

	p := pipeline.New(
		&pipeline.SourceProcessor{},
		&pipeline.DecodeProcessor{},
		&evaluator.EvaluatorProcessor{Evaluator: eval},
	)
	printer := diagnostics.NewPrinter(stderr)

	status := 0
	for _, ctx := range contexts {
		ctx = p.Run(ctx)
		if printTree && ctx.Expr != nil {
			fmt.Fprintln(stdout, ast.Print(ctx.Expr))
		}
		if len(ctx.Errors) > 0 {
			for _, e := range ctx.Errors {
				if ctx.Expr != nil {
					printer.Report(e, ctx.Expr)
				} else {
					printer.Print(e)
				}
			}
			status = 1
			continue
		}
		if v, ok := ctx.Result.(evaluator.Value); ok {
			fmt.Fprintln(stdout, v.Inspect())
		}
	}
	return status
}

// isSourceFile checks if a file has a recognized tree extension
func isSourceFile(path string) bool {
	for _, ext := range config.SourceFileExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}
