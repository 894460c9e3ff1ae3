package runtime

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUndefinedVariable is wrapped by lookups and assignments of unbound names.
var ErrUndefinedVariable = errors.New("Undefined variable")

// Environment provides lexical scoping for Lox runtime values.
type Environment struct {
	values map[string]Value
	parent *Environment
}

// NewEnvironment creates a new environment, optionally nested under a parent.
func NewEnvironment(parent *Environment) *Environment {
	return &Environment{
		values: make(map[string]Value),
		parent: parent,
	}
}

// Parent exposes the lexical parent (nil when global).
func (e *Environment) Parent() *Environment {
	return e.parent
}

// Define inserts or overwrites a binding in the current scope.
func (e *Environment) Define(name string, value Value) {
	e.values[name] = value
}

// Has reports whether name is bound in this scope, ignoring parents.
func (e *Environment) Has(name string) bool {
	_, ok := e.values[name]
	return ok
}

// Assign updates an existing binding in the nearest scope where it appears.
func (e *Environment) Assign(name string, value Value) error {
	for env := e; env != nil; env = env.parent {
		if _, ok := env.values[name]; ok {
			env.values[name] = value
			return nil
		}
	}
	return fmt.Errorf("%w '%s'", ErrUndefinedVariable, name)
}

// Get retrieves a binding, searching outward through the scope chain.
func (e *Environment) Get(name string) (Value, error) {
	for env := e; env != nil; env = env.parent {
		if v, ok := env.values[name]; ok {
			return v, nil
		}
	}
	return nil, fmt.Errorf("%w '%s'", ErrUndefinedVariable, name)
}

// Keys returns the bindings of this scope in sorted order.
func (e *Environment) Keys() []string {
	keys := make([]string, 0, len(e.values))
	for k := range e.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Extend creates a child scope.
func (e *Environment) Extend() *Environment {
	return NewEnvironment(e)
}
