package interpreter

import (
	"lox/interpreter-go/pkg/ast"
	"lox/interpreter-go/pkg/runtime"
)

// evaluateGet reads a field or bound method from an instance, or a static
// method from a class.
func (i *Interpreter) evaluateGet(n *ast.Get, env *runtime.Environment) (runtime.Value, error) {
	object, err := i.evaluateExpression(n.Object, env)
	if err != nil {
		return nil, err
	}
	return i.memberAccess(n, object, n.Name)
}

func (i *Interpreter) memberAccess(node ast.Node, object runtime.Value, name string) (runtime.Value, error) {
	switch obj := object.(type) {
	case *runtime.InstanceValue:
		if val, ok := obj.Get(name); ok {
			return val, nil
		}
		return nil, runtimeErrorf(node, "undefined property '%s' on %s instance", name, obj.Class.Name)
	case *runtime.ClassValue:
		if method, ok := obj.FindStatic(name); ok {
			return method, nil
		}
		return nil, runtimeErrorf(node, "undefined static method '%s' on class %s", name, obj.Name)
	default:
		return nil, runtimeErrorf(node, "only instances have properties, got %s", typeName(object))
	}
}

func (i *Interpreter) evaluateSet(n *ast.Set, env *runtime.Environment) (runtime.Value, error) {
	object, err := i.evaluateExpression(n.Object, env)
	if err != nil {
		return nil, err
	}
	instance, ok := object.(*runtime.InstanceValue)
	if !ok {
		return nil, runtimeErrorf(n, "only instances have fields, got %s", typeName(object))
	}

	var current runtime.Value
	op := n.Operator.BinaryOperator()
	if op != "" {
		if current, err = i.memberAccess(n, instance, n.Name); err != nil {
			return nil, err
		}
	}
	value, err := i.evaluateExpression(n.Value, env)
	if err != nil {
		return nil, err
	}
	if op != "" {
		if value, err = i.applyBinaryOperator(n, op, current, value); err != nil {
			return nil, err
		}
	}
	instance.Set(n.Name, value)
	return value, nil
}

// evaluateSuper resolves the method on the superclass of the class that
// declared the running method, bound to the current receiver.
func (i *Interpreter) evaluateSuper(n *ast.Super, env *runtime.Environment) (runtime.Value, error) {
	superVal, err := env.Get("super")
	if err != nil {
		return nil, wrapRuntimeError(n, err)
	}
	superclass, ok := superVal.(*runtime.ClassValue)
	if !ok {
		return nil, runtimeErrorf(n, "'super' is not a class")
	}
	thisVal, err := env.Get("this")
	if err != nil {
		return nil, wrapRuntimeError(n, err)
	}
	receiver, ok := thisVal.(*runtime.InstanceValue)
	if !ok {
		return nil, runtimeErrorf(n, "'this' is not an instance")
	}
	method, ok := superclass.FindMethod(n.Method)
	if !ok {
		return nil, runtimeErrorf(n, "undefined property '%s' on superclass %s", n.Method, superclass.Name)
	}
	return method.Bind(receiver), nil
}
