package pipeline

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/funvibe/loxexpr/internal/ast"
)

type recordingProcessor struct {
	name  string
	calls *[]string
}

func (r *recordingProcessor) Process(ctx *Context) *Context {
	*r.calls = append(*r.calls, r.name)
	return ctx
}

func TestPipeline_RunsInOrder(t *testing.T) {
	var calls []string
	p := New(
		&recordingProcessor{"a", &calls},
		&recordingProcessor{"b", &calls},
		&recordingProcessor{"c", &calls},
	)
	p.Run(&Context{})
	if got := strings.Join(calls, ","); got != "a,b,c" {
		t.Errorf("order = %s", got)
	}
}

func TestDecodeProcessor(t *testing.T) {
	ctx := New(&SourceProcessor{}, &DecodeProcessor{}).Run(&Context{
		Source: []byte(`grouping: {inner: {literal: true}}`),
	})
	if err := ctx.Err(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := ast.Print(ctx.Expr); got != "(group true)" {
		t.Errorf("decoded %s", got)
	}
}

func TestSourceProcessor_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tree.yaml")
	if err := os.WriteFile(path, []byte(`literal: "hi"`), 0o644); err != nil {
		t.Fatal(err)
	}
	ctx := New(&SourceProcessor{}, &DecodeProcessor{}).Run(&Context{FilePath: path})
	if err := ctx.Err(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := ast.Print(ctx.Expr); got != `"hi"` {
		t.Errorf("decoded %s", got)
	}
}

func TestSourceProcessor_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yaml")
	ctx := New(&SourceProcessor{}, &DecodeProcessor{}).Run(&Context{FilePath: path})
	if len(ctx.Errors) != 1 {
		t.Fatalf("errors = %v, want exactly one", ctx.Errors)
	}
	if !errors.Is(ctx.Err(), os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", ctx.Err())
	}
	if ctx.Expr != nil {
		t.Error("decode should have been skipped")
	}
}

func TestDecodeProcessor_ErrorNamesFile(t *testing.T) {
	ctx := New(&DecodeProcessor{}).Run(&Context{FilePath: "t.yaml", Source: []byte("nope: 1")})
	var decodeErr *ast.DecodeError
	if !errors.As(ctx.Err(), &decodeErr) {
		t.Fatalf("expected DecodeError, got %v", ctx.Err())
	}
	if !strings.HasPrefix(ctx.Err().Error(), "t.yaml: ") {
		t.Errorf("error %q should start with the file name", ctx.Err())
	}
}

func TestContext_Err(t *testing.T) {
	ctx := &Context{}
	if ctx.Err() != nil {
		t.Error("empty context should have no error")
	}
	first, second := errors.New("first"), errors.New("second")
	ctx.Errors = []error{first}
	if ctx.Err() != first {
		t.Errorf("single error should be returned as is")
	}
	ctx.Errors = append(ctx.Errors, second)
	if !errors.Is(ctx.Err(), first) || !errors.Is(ctx.Err(), second) {
		t.Errorf("joined error lost a cause: %v", ctx.Err())
	}
}
