package interpreter

import (
	"fmt"

	"lox/interpreter-go/pkg/ast"
	"lox/interpreter-go/pkg/runtime"
)

type signalKind int

const (
	signalNormal signalKind = iota
	signalReturn
	signalBreak
	signalContinue
)

// controlSignal is the outcome of executing a statement. value is only set
// for signalReturn.
type controlSignal struct {
	kind  signalKind
	value runtime.Value
}

var normalSignal = controlSignal{kind: signalNormal}

func (i *Interpreter) executeStatement(node ast.Statement, env *runtime.Environment) (controlSignal, error) {
	switch n := node.(type) {
	case *ast.ExpressionStmt:
		_, err := i.evaluateExpression(n.Expression, env)
		return normalSignal, err
	case *ast.Print:
		return normalSignal, i.executePrint(n, env)
	case *ast.LetDecl:
		return normalSignal, i.executeLetDecl(n, env)
	case *ast.Block:
		return i.executeBlock(n.Body, env.Extend())
	case *ast.If:
		return i.executeIf(n, env)
	case *ast.While:
		return i.executeWhile(n, env)
	case *ast.FunctionDecl:
		env.Define(n.Name, &runtime.FunctionValue{Declaration: n, Closure: env})
		return normalSignal, nil
	case *ast.ClassDecl:
		return normalSignal, i.executeClassDecl(n, env)
	case *ast.Return:
		var value runtime.Value = runtime.NilValue{}
		if n.Value != nil {
			val, err := i.evaluateExpression(n.Value, env)
			if err != nil {
				return normalSignal, err
			}
			value = val
		}
		return controlSignal{kind: signalReturn, value: value}, nil
	case *ast.Break:
		return controlSignal{kind: signalBreak}, nil
	case *ast.Continue:
		return controlSignal{kind: signalContinue}, nil
	default:
		return normalSignal, runtimeErrorf(node, "unsupported statement %T", node)
	}
}

// executeBlock runs body in env and forwards the first non-normal signal.
func (i *Interpreter) executeBlock(body []ast.Statement, env *runtime.Environment) (controlSignal, error) {
	for _, stmt := range body {
		sig, err := i.executeStatement(stmt, env)
		if err != nil {
			return normalSignal, err
		}
		if sig.kind != signalNormal {
			return sig, nil
		}
	}
	return normalSignal, nil
}

func (i *Interpreter) executePrint(n *ast.Print, env *runtime.Environment) error {
	val, err := i.evaluateExpression(n.Expression, env)
	if err != nil {
		return err
	}
	text, err := i.stringifyValue(val)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(i.out, text); err != nil {
		return wrapRuntimeError(n, fmt.Errorf("write output: %w", err))
	}
	return nil
}

// executeLetDecl evaluates every initializer before binding any name, so
// `let a, b = b, a;` reads the outer bindings.
func (i *Interpreter) executeLetDecl(n *ast.LetDecl, env *runtime.Environment) error {
	values := make([]runtime.Value, len(n.Names))
	for idx := range values {
		values[idx] = runtime.NilValue{}
	}
	if len(n.Initializers) > 0 {
		if len(n.Initializers) != len(n.Names) {
			return runtimeErrorf(n, "declaration binds %d names but has %d initializers", len(n.Names), len(n.Initializers))
		}
		for idx, expr := range n.Initializers {
			val, err := i.evaluateExpression(expr, env)
			if err != nil {
				return err
			}
			values[idx] = val
		}
	}
	for idx, name := range n.Names {
		env.Define(name, values[idx])
	}
	return nil
}

func (i *Interpreter) executeIf(n *ast.If, env *runtime.Environment) (controlSignal, error) {
	cond, err := i.evaluateExpression(n.Condition, env)
	if err != nil {
		return normalSignal, err
	}
	if isTruthy(cond) {
		return i.executeStatement(n.Then, env)
	}
	if n.Else != nil {
		return i.executeStatement(n.Else, env)
	}
	return normalSignal, nil
}

// executeWhile consumes break and continue; the increment of a desugared for
// loop runs after the body and after continue.
func (i *Interpreter) executeWhile(n *ast.While, env *runtime.Environment) (controlSignal, error) {
	for {
		if err := i.checkContext(n); err != nil {
			return normalSignal, err
		}
		cond, err := i.evaluateExpression(n.Condition, env)
		if err != nil {
			return normalSignal, err
		}
		if !isTruthy(cond) {
			return normalSignal, nil
		}
		sig, err := i.executeStatement(n.Body, env)
		if err != nil {
			return normalSignal, err
		}
		switch sig.kind {
		case signalBreak:
			return normalSignal, nil
		case signalReturn:
			return sig, nil
		}
		if n.Increment != nil {
			if _, err := i.evaluateExpression(n.Increment, env); err != nil {
				return normalSignal, err
			}
		}
	}
}
