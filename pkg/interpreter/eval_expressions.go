package interpreter

import (
	"math"

	"lox/interpreter-go/pkg/ast"
	"lox/interpreter-go/pkg/runtime"
)

func (i *Interpreter) evaluateExpression(node ast.Expression, env *runtime.Environment) (runtime.Value, error) {
	switch n := node.(type) {
	case *ast.NumberLiteral:
		return runtime.NumberValue{Val: n.Value}, nil
	case *ast.StringLiteral:
		return runtime.StringValue{Val: n.Value}, nil
	case *ast.BooleanLiteral:
		return runtime.BoolValue{Val: n.Value}, nil
	case *ast.NilLiteral:
		return runtime.NilValue{}, nil
	case *ast.ArrayLiteral:
		return i.evaluateArrayLiteral(n, env)
	case *ast.Grouping:
		return i.evaluateExpression(n.Inner, env)
	case *ast.Variable:
		val, err := env.Get(n.Name)
		if err != nil {
			return nil, wrapRuntimeError(n, err)
		}
		return val, nil
	case *ast.Assign:
		return i.evaluateAssign(n, env)
	case *ast.Unary:
		return i.evaluateUnary(n, env)
	case *ast.Binary:
		left, err := i.evaluateExpression(n.Left, env)
		if err != nil {
			return nil, err
		}
		right, err := i.evaluateExpression(n.Right, env)
		if err != nil {
			return nil, err
		}
		return i.applyBinaryOperator(n, n.Operator, left, right)
	case *ast.Logical:
		return i.evaluateLogical(n, env)
	case *ast.Call:
		return i.evaluateCall(n, env)
	case *ast.Pipe:
		return i.evaluatePipe(n, env)
	case *ast.Index:
		return i.evaluateIndex(n, env)
	case *ast.IndexAssign:
		return i.evaluateIndexAssign(n, env)
	case *ast.Get:
		return i.evaluateGet(n, env)
	case *ast.Set:
		return i.evaluateSet(n, env)
	case *ast.This:
		val, err := env.Get("this")
		if err != nil {
			return nil, wrapRuntimeError(n, err)
		}
		return val, nil
	case *ast.Super:
		return i.evaluateSuper(n, env)
	default:
		return nil, runtimeErrorf(node, "unsupported expression %T", node)
	}
}

func (i *Interpreter) evaluateArrayLiteral(n *ast.ArrayLiteral, env *runtime.Environment) (runtime.Value, error) {
	elements := make([]runtime.Value, 0, len(n.Elements))
	for _, el := range n.Elements {
		val, err := i.evaluateExpression(el, env)
		if err != nil {
			return nil, err
		}
		elements = append(elements, val)
	}
	return &runtime.ArrayValue{Elements: elements}, nil
}

func (i *Interpreter) evaluateAssign(n *ast.Assign, env *runtime.Environment) (runtime.Value, error) {
	var current runtime.Value
	if op := n.Operator.BinaryOperator(); op != "" {
		val, err := env.Get(n.Name)
		if err != nil {
			return nil, wrapRuntimeError(n, err)
		}
		current = val
	}
	value, err := i.evaluateExpression(n.Value, env)
	if err != nil {
		return nil, err
	}
	if current != nil {
		if value, err = i.applyBinaryOperator(n, n.Operator.BinaryOperator(), current, value); err != nil {
			return nil, err
		}
	}
	if err := env.Assign(n.Name, value); err != nil {
		return nil, wrapRuntimeError(n, err)
	}
	return value, nil
}

func (i *Interpreter) evaluateUnary(n *ast.Unary, env *runtime.Environment) (runtime.Value, error) {
	operand, err := i.evaluateExpression(n.Operand, env)
	if err != nil {
		return nil, err
	}
	switch n.Operator {
	case ast.UnaryOperatorNegate:
		num, ok := operand.(runtime.NumberValue)
		if !ok {
			return nil, runtimeErrorf(n, "operand of '-' must be a number, got %s", typeName(operand))
		}
		return runtime.NumberValue{Val: -num.Val}, nil
	case ast.UnaryOperatorNot:
		return runtime.BoolValue{Val: !isTruthy(operand)}, nil
	default:
		return nil, runtimeErrorf(n, "unknown unary operator %s", n.Operator)
	}
}

// evaluateLogical yields the operand that decided the result.
func (i *Interpreter) evaluateLogical(n *ast.Logical, env *runtime.Environment) (runtime.Value, error) {
	left, err := i.evaluateExpression(n.Left, env)
	if err != nil {
		return nil, err
	}
	switch n.Operator {
	case "or":
		if isTruthy(left) {
			return left, nil
		}
	case "and":
		if !isTruthy(left) {
			return left, nil
		}
	default:
		return nil, runtimeErrorf(n, "unknown logical operator %s", n.Operator)
	}
	return i.evaluateExpression(n.Right, env)
}

func (i *Interpreter) evaluateIndex(n *ast.Index, env *runtime.Environment) (runtime.Value, error) {
	arr, idx, err := i.indexTarget(n, n.Object, n.Index, env)
	if err != nil {
		return nil, err
	}
	return arr.Elements[idx], nil
}

func (i *Interpreter) evaluateIndexAssign(n *ast.IndexAssign, env *runtime.Environment) (runtime.Value, error) {
	arr, idx, err := i.indexTarget(n, n.Object, n.Index, env)
	if err != nil {
		return nil, err
	}
	current := arr.Elements[idx]
	value, err := i.evaluateExpression(n.Value, env)
	if err != nil {
		return nil, err
	}
	if op := n.Operator.BinaryOperator(); op != "" {
		if value, err = i.applyBinaryOperator(n, op, current, value); err != nil {
			return nil, err
		}
	}
	// The value expression may have shrunk the array.
	if idx >= len(arr.Elements) {
		return nil, runtimeErrorf(n, "array index %d out of bounds for length %d", idx, len(arr.Elements))
	}
	arr.Elements[idx] = value
	return value, nil
}

// indexTarget evaluates an array and an in-range integral index into it.
func (i *Interpreter) indexTarget(node ast.Node, objectExpr, indexExpr ast.Expression, env *runtime.Environment) (*runtime.ArrayValue, int, error) {
	object, err := i.evaluateExpression(objectExpr, env)
	if err != nil {
		return nil, 0, err
	}
	indexVal, err := i.evaluateExpression(indexExpr, env)
	if err != nil {
		return nil, 0, err
	}
	arr, ok := object.(*runtime.ArrayValue)
	if !ok {
		return nil, 0, runtimeErrorf(node, "can only index arrays, got %s", typeName(object))
	}
	num, ok := indexVal.(runtime.NumberValue)
	if !ok || num.Val != math.Trunc(num.Val) || math.IsInf(num.Val, 0) {
		return nil, 0, runtimeErrorf(node, "array index must be an integer, got %s", typeName(indexVal))
	}
	if num.Val < 0 || num.Val >= float64(len(arr.Elements)) {
		return nil, 0, runtimeErrorf(node, "array index %s out of bounds for length %d", formatNumber(num.Val), len(arr.Elements))
	}
	return arr, int(num.Val), nil
}
