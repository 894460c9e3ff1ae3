package runtime

import (
	"testing"

	"lox/interpreter-go/pkg/ast"
)

func TestArrayValueSharedByReference(t *testing.T) {
	arr := &ArrayValue{Elements: []Value{StringValue{Val: "a"}}}
	if arr.Kind() != KindArray {
		t.Fatalf("expected KindArray, got %v", arr.Kind())
	}
	env := NewEnvironment(nil)
	env.Define("x", arr)
	env.Define("y", arr)
	got, _ := env.Get("y")
	got.(*ArrayValue).Elements[0] = NumberValue{Val: 9}
	if nv, ok := arr.Elements[0].(NumberValue); !ok || nv.Val != 9 {
		t.Fatalf("expected shared element update, got %#v", arr.Elements[0])
	}
}

func TestKindNames(t *testing.T) {
	cases := map[Kind]string{
		KindNumber:         "number",
		KindNativeFunction: "native_function",
		KindInstance:       "instance",
		Kind(99):           "unknown_kind_99",
	}
	for kind, want := range cases {
		if got := kind.String(); got != want {
			t.Fatalf("Kind(%d).String() = %q, want %q", int(kind), got, want)
		}
	}
}

func newMethod(name string, owner *ClassValue, params ...string) *FunctionValue {
	return &FunctionValue{
		Declaration: ast.NewFunctionDecl(name, params, nil, false),
		Closure:     NewEnvironment(nil),
		Owner:       owner,
	}
}

func TestClassMethodResolutionWalksSuperclasses(t *testing.T) {
	base := &ClassValue{Name: "Base", Methods: map[string]*FunctionValue{}, StaticMethods: map[string]*FunctionValue{}}
	base.Methods["greet"] = newMethod("greet", base)
	base.Methods["init"] = newMethod("init", base, "a", "b")
	base.StaticMethods["make"] = newMethod("make", base)

	derived := &ClassValue{Name: "Derived", Superclass: base, Methods: map[string]*FunctionValue{}, StaticMethods: map[string]*FunctionValue{}}
	derived.Methods["greet"] = newMethod("greet", derived)

	if m, ok := derived.FindMethod("greet"); !ok || m.Owner != derived {
		t.Fatalf("expected override from Derived")
	}
	if _, ok := derived.FindStatic("make"); !ok {
		t.Fatalf("expected inherited static method")
	}
	if _, ok := derived.FindStatic("greet"); ok {
		t.Fatalf("instance methods must not resolve as statics")
	}
	if derived.Arity() != 2 {
		t.Fatalf("expected inherited initializer arity 2, got %d", derived.Arity())
	}
}

func TestInstanceGetBindsThisAndSuper(t *testing.T) {
	base := &ClassValue{Name: "Base", Methods: map[string]*FunctionValue{}}
	derived := &ClassValue{Name: "Derived", Superclass: base, Methods: map[string]*FunctionValue{}}
	derived.Methods["who"] = newMethod("who", derived)

	inst := NewInstance(derived)
	inst.Set("field", NumberValue{Val: 1})

	if v, ok := inst.Get("field"); !ok || v.(NumberValue).Val != 1 {
		t.Fatalf("expected field lookup, got %#v", v)
	}
	v, ok := inst.Get("who")
	if !ok {
		t.Fatalf("expected bound method")
	}
	bound := v.(*FunctionValue)
	this, err := bound.Closure.Get("this")
	if err != nil || this != inst {
		t.Fatalf("expected this bound to instance, got %#v (%v)", this, err)
	}
	super, err := bound.Closure.Get("super")
	if err != nil || super != base {
		t.Fatalf("expected super bound to Base, got %#v (%v)", super, err)
	}
	if _, ok := inst.Get("missing"); ok {
		t.Fatalf("expected missing property")
	}
}
