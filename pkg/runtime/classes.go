package runtime

// InitializerName is the method run when a class is called.
const InitializerName = "init"

// ClassValue is a class object. Static methods live beside instance methods
// and are looked up on the class itself.
type ClassValue struct {
	Name          string
	Superclass    *ClassValue
	Methods       map[string]*FunctionValue
	StaticMethods map[string]*FunctionValue
}

func (v *ClassValue) Kind() Kind { return KindClass }

// FindMethod resolves an instance method, walking up the superclass chain.
func (v *ClassValue) FindMethod(name string) (*FunctionValue, bool) {
	for class := v; class != nil; class = class.Superclass {
		if method, ok := class.Methods[name]; ok {
			return method, true
		}
	}
	return nil, false
}

// FindStatic resolves a static method, walking up the superclass chain.
func (v *ClassValue) FindStatic(name string) (*FunctionValue, bool) {
	for class := v; class != nil; class = class.Superclass {
		if method, ok := class.StaticMethods[name]; ok {
			return method, true
		}
	}
	return nil, false
}

// Arity is the number of arguments a call to the class expects.
func (v *ClassValue) Arity() int {
	if initializer, ok := v.FindMethod(InitializerName); ok {
		return initializer.Arity()
	}
	return 0
}

// InstanceValue is an object created by calling a class.
type InstanceValue struct {
	Class  *ClassValue
	Fields map[string]Value
}

func NewInstance(class *ClassValue) *InstanceValue {
	return &InstanceValue{Class: class, Fields: make(map[string]Value)}
}

func (v *InstanceValue) Kind() Kind { return KindInstance }

// Get reads a field, falling back to a method bound to the instance.
func (v *InstanceValue) Get(name string) (Value, bool) {
	if field, ok := v.Fields[name]; ok {
		return field, true
	}
	if method, ok := v.Class.FindMethod(name); ok {
		return method.Bind(v), true
	}
	return nil, false
}

func (v *InstanceValue) Set(name string, value Value) {
	v.Fields[name] = value
}
