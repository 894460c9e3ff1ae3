package interpreter

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"lox/interpreter-go/pkg/parser"
	"lox/interpreter-go/pkg/runtime"
)

// runSource parses and runs source, returning everything printed.
func runSource(t testing.TB, source string) string {
	t.Helper()
	out, err := runSourceErr(t, source, Options{})
	if err != nil {
		t.Fatalf("run failed: %v\noutput so far:\n%s", err, out)
	}
	return out
}

func runSourceErr(t testing.TB, source string, opts Options) (string, error) {
	t.Helper()
	program, err := parser.ParseSource(source)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	var buf bytes.Buffer
	opts.Output = &buf
	interp := NewWithOptions(opts)
	err = interp.Run(context.Background(), program)
	return buf.String(), err
}

func expectRuntimeError(t testing.TB, err error, line int, message string) *RuntimeError {
	t.Helper()
	if err == nil {
		t.Fatalf("expected runtime error %q", message)
	}
	if !errors.Is(err, ErrRuntime) {
		t.Fatalf("expected ErrRuntime, got %v", err)
	}
	var rerr *RuntimeError
	if !errors.As(err, &rerr) {
		t.Fatalf("expected *RuntimeError, got %T", err)
	}
	if rerr.Message != message {
		t.Fatalf("message: got %q, want %q", rerr.Message, message)
	}
	if line > 0 && rerr.Line != line {
		t.Fatalf("line: got %d, want %d", rerr.Line, line)
	}
	return rerr
}

func globalValue(t testing.TB, interp *Interpreter, name string) runtime.Value {
	t.Helper()
	val, err := interp.GlobalEnvironment().Get(name)
	if err != nil {
		t.Fatalf("lookup %s: %v", name, err)
	}
	return val
}
