package interpreter

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"lox/interpreter-go/pkg/runtime"
)

// Stringify renders val the way print does, invoking a user toString method
// on instances.
func (i *Interpreter) Stringify(val runtime.Value) (string, error) {
	return i.stringifyValue(val)
}

func (i *Interpreter) stringifyValue(val runtime.Value) (string, error) {
	return i.stringifyNested(val, nil)
}

// stringifyNested tracks the arrays being rendered so self-containing arrays
// terminate.
func (i *Interpreter) stringifyNested(val runtime.Value, seen map[*runtime.ArrayValue]bool) (string, error) {
	switch v := val.(type) {
	case *runtime.InstanceValue:
		if str, ok, err := i.invokeToString(v); err != nil || ok {
			return str, err
		}
		return valueToString(v), nil
	case *runtime.ArrayValue:
		if seen[v] {
			return "[...]", nil
		}
		if seen == nil {
			seen = make(map[*runtime.ArrayValue]bool)
		}
		seen[v] = true
		defer delete(seen, v)
		parts := make([]string, len(v.Elements))
		for idx, el := range v.Elements {
			str, err := i.stringifyNested(el, seen)
			if err != nil {
				return "", err
			}
			parts[idx] = str
		}
		return "[" + strings.Join(parts, ", ") + "]", nil
	default:
		return valueToString(val), nil
	}
}

// invokeToString calls a zero-argument toString method when the class or an
// ancestor defines one. ok is false when there is none or it does not
// return a string.
func (i *Interpreter) invokeToString(inst *runtime.InstanceValue) (string, bool, error) {
	method, found := inst.Class.FindMethod("toString")
	if !found || method.Arity() != 0 {
		return "", false, nil
	}
	result, err := i.callFunction(nil, method.Bind(inst), nil)
	if err != nil {
		return "", false, err
	}
	if str, ok := result.(runtime.StringValue); ok {
		return str.Val, true, nil
	}
	return "", false, nil
}

// valueToString renders values without running user code.
func valueToString(val runtime.Value) string {
	switch v := val.(type) {
	case nil:
		return "nil"
	case runtime.NumberValue:
		return formatNumber(v.Val)
	case runtime.StringValue:
		return v.Val
	case runtime.BoolValue:
		if v.Val {
			return "true"
		}
		return "false"
	case runtime.NilValue:
		return "nil"
	case *runtime.ArrayValue:
		return arrayToString(v, make(map[*runtime.ArrayValue]bool))
	case *runtime.FunctionValue:
		return fmt.Sprintf("<fn %s>", v.Declaration.Name)
	case runtime.NativeFunctionValue:
		return fmt.Sprintf("<native fn %s>", v.Name)
	case *runtime.ClassValue:
		return fmt.Sprintf("<class %s>", v.Name)
	case *runtime.InstanceValue:
		return v.Class.Name + " instance"
	default:
		return fmt.Sprintf("<%s>", val.Kind())
	}
}

func arrayToString(arr *runtime.ArrayValue, seen map[*runtime.ArrayValue]bool) string {
	if seen[arr] {
		return "[...]"
	}
	seen[arr] = true
	defer delete(seen, arr)
	parts := make([]string, len(arr.Elements))
	for idx, el := range arr.Elements {
		if inner, ok := el.(*runtime.ArrayValue); ok {
			parts[idx] = arrayToString(inner, seen)
			continue
		}
		parts[idx] = valueToString(el)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// formatNumber prints integral values without a fraction and everything
// else as the shortest decimal that round-trips.
func formatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case math.Abs(f) >= 1e21:
		return strconv.FormatFloat(f, 'g', -1, 64)
	default:
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
}
