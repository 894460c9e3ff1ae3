package interpreter

import (
	"context"
	"io"
	"os"

	"lox/interpreter-go/pkg/ast"
	"lox/interpreter-go/pkg/runtime"
)

const (
	// DefaultMaxCallDepth bounds nested calls when Options leaves it unset.
	DefaultMaxCallDepth = 1000
	// MaxCallDepthLimit is the largest depth accepted; deeper limits risk
	// exhausting the Go stack before the guard fires.
	MaxCallDepthLimit = 100000
)

// Options configures a new Interpreter.
type Options struct {
	Output       io.Writer
	MaxCallDepth int
}

// Interpreter drives evaluation of Lox AST nodes. It is not safe for
// concurrent use.
type Interpreter struct {
	global   *runtime.Environment
	out      io.Writer
	maxDepth int
	depth    int
	ctx      context.Context
}

// New returns an interpreter printing to os.Stdout with the default depth limit.
func New() *Interpreter {
	return NewWithOptions(Options{})
}

// NewWithOptions returns an interpreter with natives registered in its
// global environment.
func NewWithOptions(opts Options) *Interpreter {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	depth := opts.MaxCallDepth
	switch {
	case depth <= 0:
		depth = DefaultMaxCallDepth
	case depth > MaxCallDepthLimit:
		depth = MaxCallDepthLimit
	}
	i := &Interpreter{
		global:   runtime.NewEnvironment(nil),
		out:      out,
		maxDepth: depth,
		ctx:      context.Background(),
	}
	i.registerNatives()
	return i
}

// GlobalEnvironment returns the interpreter's global environment.
func (i *Interpreter) GlobalEnvironment() *runtime.Environment {
	return i.global
}

// MaxCallDepth reports the effective call depth limit.
func (i *Interpreter) MaxCallDepth() int {
	return i.maxDepth
}

// Interpret runs program against the global environment.
func (i *Interpreter) Interpret(program *ast.Program) error {
	return i.Run(context.Background(), program)
}

// Run executes program, stopping with a RuntimeError at the first failure or
// when ctx is cancelled. Output written before a failure is kept.
func (i *Interpreter) Run(ctx context.Context, program *ast.Program) error {
	if program == nil {
		return nil
	}
	restore := i.withContext(ctx)
	defer restore()
	for _, stmt := range program.Body {
		if _, err := i.executeStatement(stmt, i.global); err != nil {
			return err
		}
	}
	return nil
}

// Evaluate computes a single expression in the global environment.
func (i *Interpreter) Evaluate(ctx context.Context, expr ast.Expression) (runtime.Value, error) {
	restore := i.withContext(ctx)
	defer restore()
	return i.evaluateExpression(expr, i.global)
}

func (i *Interpreter) withContext(ctx context.Context) func() {
	if ctx == nil {
		ctx = context.Background()
	}
	prev := i.ctx
	i.ctx = ctx
	i.depth = 0
	return func() { i.ctx = prev }
}

func (i *Interpreter) checkContext(node ast.Node) error {
	if err := i.ctx.Err(); err != nil {
		return &RuntimeError{Line: lineOf(node), Message: "execution cancelled: " + err.Error(), Cause: err}
	}
	return nil
}
