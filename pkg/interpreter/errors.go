package interpreter

import (
	"errors"
	"fmt"

	"lox/interpreter-go/pkg/ast"
)

// ErrRuntime is wrapped by every error raised while a program runs.
var ErrRuntime = errors.New("runtime error")

// RuntimeError aborts execution. Cause, when set, is the underlying error
// (an undefined-variable lookup or a cancelled context).
type RuntimeError struct {
	Line    int
	Message string
	Cause   error
}

func (e *RuntimeError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return e.Message
}

func (e *RuntimeError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrRuntime, e.Cause}
	}
	return []error{ErrRuntime}
}

func runtimeErrorf(node ast.Node, format string, args ...any) *RuntimeError {
	return &RuntimeError{Line: lineOf(node), Message: fmt.Sprintf(format, args...)}
}

// wrapRuntimeError attaches a location to err unless it already is a RuntimeError.
func wrapRuntimeError(node ast.Node, err error) error {
	if err == nil {
		return nil
	}
	var rerr *RuntimeError
	if errors.As(err, &rerr) {
		return err
	}
	return &RuntimeError{Line: lineOf(node), Message: err.Error(), Cause: err}
}

func lineOf(node ast.Node) int {
	if node == nil {
		return 0
	}
	return node.Line()
}
