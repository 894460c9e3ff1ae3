package interpreter

import (
	"lox/interpreter-go/pkg/ast"
	"lox/interpreter-go/pkg/runtime"
)

func (i *Interpreter) evaluateCall(n *ast.Call, env *runtime.Environment) (runtime.Value, error) {
	callee, err := i.evaluateExpression(n.Callee, env)
	if err != nil {
		return nil, err
	}
	args, err := i.evaluateArguments(n.Arguments, env, 0)
	if err != nil {
		return nil, err
	}
	return i.callValue(n, callee, args)
}

// evaluatePipe evaluates the piped value first, then the callee, then the
// remaining arguments, and calls with the piped value in front.
func (i *Interpreter) evaluatePipe(n *ast.Pipe, env *runtime.Environment) (runtime.Value, error) {
	piped, err := i.evaluateExpression(n.Value, env)
	if err != nil {
		return nil, err
	}
	callee, err := i.evaluateExpression(n.Call.Callee, env)
	if err != nil {
		return nil, err
	}
	args, err := i.evaluateArguments(n.Call.Arguments, env, 1)
	if err != nil {
		return nil, err
	}
	args[0] = piped
	return i.callValue(n.Call, callee, args)
}

// evaluateArguments evaluates exprs left to right into a slice with reserve
// leading slots left empty.
func (i *Interpreter) evaluateArguments(exprs []ast.Expression, env *runtime.Environment, reserve int) ([]runtime.Value, error) {
	args := make([]runtime.Value, reserve, reserve+len(exprs))
	for _, expr := range exprs {
		val, err := i.evaluateExpression(expr, env)
		if err != nil {
			return nil, err
		}
		args = append(args, val)
	}
	return args, nil
}

func (i *Interpreter) callValue(node ast.Node, callee runtime.Value, args []runtime.Value) (runtime.Value, error) {
	switch fn := callee.(type) {
	case *runtime.FunctionValue:
		return i.callFunction(node, fn, args)
	case runtime.NativeFunctionValue:
		if fn.Arity >= 0 && len(args) != fn.Arity {
			return nil, arityError(node, fn.Arity, len(args))
		}
		result, err := fn.Impl(&runtime.NativeCallContext{Env: i.global, Line: lineOf(node)}, args)
		if err != nil {
			return nil, wrapRuntimeError(node, err)
		}
		return result, nil
	case *runtime.ClassValue:
		return i.instantiate(node, fn, args)
	default:
		return nil, runtimeErrorf(node, "can only call functions and classes, got %s", typeName(callee))
	}
}

// callFunction runs fn in a fresh scope under its closure. The depth guard
// turns runaway recursion into a RuntimeError.
func (i *Interpreter) callFunction(node ast.Node, fn *runtime.FunctionValue, args []runtime.Value) (runtime.Value, error) {
	if len(args) != fn.Arity() {
		return nil, arityError(node, fn.Arity(), len(args))
	}
	if err := i.checkContext(node); err != nil {
		return nil, err
	}
	if i.depth >= i.maxDepth {
		return nil, runtimeErrorf(node, "stack overflow (call depth exceeded %d)", i.maxDepth)
	}
	i.depth++
	defer func() { i.depth-- }()

	env := fn.Closure.Extend()
	for idx, param := range fn.Declaration.Params {
		env.Define(param, args[idx])
	}
	sig, err := i.executeBlock(fn.Declaration.Body, env)
	if err != nil {
		return nil, err
	}
	if fn.IsInitializer {
		return fn.Closure.Get("this")
	}
	if sig.kind == signalReturn {
		return sig.value, nil
	}
	return runtime.NilValue{}, nil
}

func arityError(node ast.Node, want, got int) error {
	return runtimeErrorf(node, "expected %d arguments but got %d", want, got)
}
