// Package interpreter executes Lox programs by walking the AST produced by
// pkg/parser. Statements evaluate to an explicit control signal (normal,
// return, break, continue); failures surface as *RuntimeError values that
// carry the source line of the offending node.
package interpreter
