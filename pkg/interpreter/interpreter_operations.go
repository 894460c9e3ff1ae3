package interpreter

import (
	"lox/interpreter-go/pkg/ast"
	"lox/interpreter-go/pkg/runtime"
)

func (i *Interpreter) applyBinaryOperator(node ast.Node, op string, left, right runtime.Value) (runtime.Value, error) {
	switch op {
	case "==":
		return runtime.BoolValue{Val: valuesEqual(left, right)}, nil
	case "!=":
		return runtime.BoolValue{Val: !valuesEqual(left, right)}, nil
	case "+":
		_, ls := left.(runtime.StringValue)
		_, rs := right.(runtime.StringValue)
		if ls || rs {
			l, err := i.stringifyValue(left)
			if err != nil {
				return nil, err
			}
			r, err := i.stringifyValue(right)
			if err != nil {
				return nil, err
			}
			return runtime.StringValue{Val: l + r}, nil
		}
	}

	l, lok := left.(runtime.NumberValue)
	r, rok := right.(runtime.NumberValue)
	if !lok || !rok {
		if op == "+" {
			return nil, runtimeErrorf(node, "operands of '+' must be two numbers or include a string, got %s and %s", typeName(left), typeName(right))
		}
		return nil, runtimeErrorf(node, "operands of '%s' must be numbers, got %s and %s", op, typeName(left), typeName(right))
	}

	switch op {
	case "+":
		return runtime.NumberValue{Val: l.Val + r.Val}, nil
	case "-":
		return runtime.NumberValue{Val: l.Val - r.Val}, nil
	case "*":
		return runtime.NumberValue{Val: l.Val * r.Val}, nil
	case "/":
		if r.Val == 0 {
			return nil, runtimeErrorf(node, "attempt to divide by zero")
		}
		return runtime.NumberValue{Val: l.Val / r.Val}, nil
	case "<":
		return runtime.BoolValue{Val: l.Val < r.Val}, nil
	case "<=":
		return runtime.BoolValue{Val: l.Val <= r.Val}, nil
	case ">":
		return runtime.BoolValue{Val: l.Val > r.Val}, nil
	case ">=":
		return runtime.BoolValue{Val: l.Val >= r.Val}, nil
	default:
		return nil, runtimeErrorf(node, "unknown binary operator %s", op)
	}
}

// isTruthy treats only false and nil as false.
func isTruthy(val runtime.Value) bool {
	switch v := val.(type) {
	case nil, runtime.NilValue:
		return false
	case runtime.BoolValue:
		return v.Val
	default:
		return true
	}
}

// valuesEqual compares scalars by value and reference values by identity.
func valuesEqual(left, right runtime.Value) bool {
	switch l := left.(type) {
	case runtime.NumberValue:
		r, ok := right.(runtime.NumberValue)
		return ok && l.Val == r.Val
	case runtime.StringValue:
		r, ok := right.(runtime.StringValue)
		return ok && l.Val == r.Val
	case runtime.BoolValue:
		r, ok := right.(runtime.BoolValue)
		return ok && l.Val == r.Val
	case runtime.NilValue:
		_, ok := right.(runtime.NilValue)
		return ok
	case *runtime.ArrayValue:
		r, ok := right.(*runtime.ArrayValue)
		return ok && l == r
	case *runtime.InstanceValue:
		r, ok := right.(*runtime.InstanceValue)
		return ok && l == r
	case *runtime.ClassValue:
		r, ok := right.(*runtime.ClassValue)
		return ok && l == r
	case *runtime.FunctionValue:
		r, ok := right.(*runtime.FunctionValue)
		return ok && l == r
	case runtime.NativeFunctionValue:
		r, ok := right.(runtime.NativeFunctionValue)
		return ok && l.Name == r.Name
	default:
		return false
	}
}

// typeName names a value's type for error messages.
func typeName(val runtime.Value) string {
	switch v := val.(type) {
	case nil:
		return "nil"
	case *runtime.InstanceValue:
		return v.Class.Name + " instance"
	default:
		return val.Kind().String()
	}
}
