package interpreter

import (
	"lox/interpreter-go/pkg/ast"
	"lox/interpreter-go/pkg/runtime"
)

func (i *Interpreter) executeClassDecl(n *ast.ClassDecl, env *runtime.Environment) error {
	var superclass *runtime.ClassValue
	if n.Superclass != nil {
		val, err := i.evaluateExpression(n.Superclass, env)
		if err != nil {
			return err
		}
		class, ok := val.(*runtime.ClassValue)
		if !ok {
			return runtimeErrorf(n.Superclass, "superclass of %s must be a class, got %s", n.Name, typeName(val))
		}
		superclass = class
	}

	class := &runtime.ClassValue{
		Name:          n.Name,
		Superclass:    superclass,
		Methods:       make(map[string]*runtime.FunctionValue, len(n.Methods)),
		StaticMethods: make(map[string]*runtime.FunctionValue, len(n.StaticMethods)),
	}
	for _, decl := range n.Methods {
		class.Methods[decl.Name] = &runtime.FunctionValue{
			Declaration:   decl,
			Closure:       env,
			Owner:         class,
			IsInitializer: decl.Name == runtime.InitializerName,
		}
	}
	for _, decl := range n.StaticMethods {
		class.StaticMethods[decl.Name] = &runtime.FunctionValue{Declaration: decl, Closure: env, Owner: class}
	}
	env.Define(n.Name, class)
	return nil
}

// instantiate creates an instance and runs the nearest init, if any. The
// call always yields the instance.
func (i *Interpreter) instantiate(node ast.Node, class *runtime.ClassValue, args []runtime.Value) (runtime.Value, error) {
	instance := runtime.NewInstance(class)
	initializer, ok := class.FindMethod(runtime.InitializerName)
	if !ok {
		if len(args) != 0 {
			return nil, arityError(node, 0, len(args))
		}
		return instance, nil
	}
	if _, err := i.callFunction(node, initializer.Bind(instance), args); err != nil {
		return nil, err
	}
	return instance, nil
}
