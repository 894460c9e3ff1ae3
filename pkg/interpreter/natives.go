package interpreter

import (
	"fmt"
	"time"

	"lox/interpreter-go/pkg/runtime"
)

func (i *Interpreter) registerNatives() {
	natives := []runtime.NativeFunctionValue{
		{
			Name:  "clock",
			Arity: 0,
			Impl: func(_ *runtime.NativeCallContext, _ []runtime.Value) (runtime.Value, error) {
				return runtime.NumberValue{Val: float64(time.Now().UnixNano()) / float64(time.Second)}, nil
			},
		},
		{
			Name:  "len",
			Arity: 1,
			Impl: func(_ *runtime.NativeCallContext, args []runtime.Value) (runtime.Value, error) {
				switch v := args[0].(type) {
				case *runtime.ArrayValue:
					return runtime.NumberValue{Val: float64(len(v.Elements))}, nil
				case runtime.StringValue:
					return runtime.NumberValue{Val: float64(len(v.Val))}, nil
				default:
					return nil, fmt.Errorf("len expects an array or string, got %s", typeName(args[0]))
				}
			},
		},
	}
	for _, native := range natives {
		i.global.Define(native.Name, native)
	}
}
