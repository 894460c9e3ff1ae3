// Package runtime holds the values and scopes the Lox evaluator operates on.
package runtime

import (
	"fmt"

	"lox/interpreter-go/pkg/ast"
)

// Kind identifies the runtime value category.
type Kind int

const (
	KindNumber Kind = iota
	KindString
	KindBool
	KindNil
	KindArray
	KindFunction
	KindNativeFunction
	KindClass
	KindInstance
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindNil:
		return "nil"
	case KindArray:
		return "array"
	case KindFunction:
		return "function"
	case KindNativeFunction:
		return "native_function"
	case KindClass:
		return "class"
	case KindInstance:
		return "instance"
	default:
		return fmt.Sprintf("unknown_kind_%d", int(k))
	}
}

// Value is the shared behaviour for all runtime values.
type Value interface {
	Kind() Kind
}

//-----------------------------------------------------------------------------
// Scalars
//-----------------------------------------------------------------------------

type NumberValue struct {
	Val float64
}

func (v NumberValue) Kind() Kind { return KindNumber }

type StringValue struct {
	Val string
}

func (v StringValue) Kind() Kind { return KindString }

type BoolValue struct {
	Val bool
}

func (v BoolValue) Kind() Kind { return KindBool }

type NilValue struct{}

func (NilValue) Kind() Kind { return KindNil }

//-----------------------------------------------------------------------------
// Arrays
//-----------------------------------------------------------------------------

// ArrayValue is shared by reference: every binding sees element writes.
type ArrayValue struct {
	Elements []Value
}

func (v *ArrayValue) Kind() Kind { return KindArray }

//-----------------------------------------------------------------------------
// Functions & closures
//-----------------------------------------------------------------------------

// FunctionValue is a user function closed over its defining scope. Methods
// also record the class that declared them.
type FunctionValue struct {
	Declaration   *ast.FunctionDecl
	Closure       *Environment
	Owner         *ClassValue
	IsInitializer bool
}

func (v *FunctionValue) Kind() Kind { return KindFunction }

func (v *FunctionValue) Arity() int { return len(v.Declaration.Params) }

// Bind returns a copy of the method whose scope has `this` bound to
// receiver and, when the declaring class has a parent, `super` bound to it.
func (v *FunctionValue) Bind(receiver *InstanceValue) *FunctionValue {
	env := v.Closure.Extend()
	env.Define("this", receiver)
	if v.Owner != nil && v.Owner.Superclass != nil {
		env.Define("super", v.Owner.Superclass)
	}
	return &FunctionValue{
		Declaration:   v.Declaration,
		Closure:       env,
		Owner:         v.Owner,
		IsInitializer: v.IsInitializer,
	}
}

// NativeCallContext gives native functions access to the calling interpreter state.
type NativeCallContext struct {
	Env  *Environment
	Line int
}

type NativeFunc func(*NativeCallContext, []Value) (Value, error)

type NativeFunctionValue struct {
	Name  string
	Arity int
	Impl  NativeFunc
}

func (v NativeFunctionValue) Kind() Kind { return KindNativeFunction }
