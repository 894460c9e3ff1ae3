package driver

import (
	"errors"
	"fmt"

	"lox/interpreter-go/pkg/interpreter"
	"lox/interpreter-go/pkg/lexer"
	"lox/interpreter-go/pkg/parser"
)

// DiagnosticKind classifies a failure by the stage that produced it.
type DiagnosticKind string

const (
	KindLex     DiagnosticKind = "Lex"
	KindParse   DiagnosticKind = "Parse"
	KindRuntime DiagnosticKind = "Runtime"
	KindLoad    DiagnosticKind = "Load"
)

// Diagnostic is the (kind, line, message) triple reported to users. Line is
// zero when the failure has no source position.
type Diagnostic struct {
	Kind    DiagnosticKind
	Line    int
	Message string
}

// Diagnose maps an error from any stage onto a Diagnostic. Errors that did
// not come from the lexer, parser or interpreter are reported as load errors.
func Diagnose(err error) Diagnostic {
	var (
		lexErr     *lexer.Error
		parseErr   *parser.Error
		runtimeErr *interpreter.RuntimeError
	)
	switch {
	case errors.As(err, &lexErr):
		return Diagnostic{Kind: KindLex, Line: lexErr.Line, Message: lexErr.Message}
	case errors.As(err, &parseErr):
		msg := parseErr.Message
		if parseErr.Where != "" {
			msg = parseErr.Where + ": " + msg
		}
		return Diagnostic{Kind: KindParse, Line: parseErr.Line, Message: msg}
	case errors.As(err, &runtimeErr):
		return Diagnostic{Kind: KindRuntime, Line: runtimeErr.Line, Message: runtimeErr.Message}
	case err == nil:
		return Diagnostic{}
	default:
		return Diagnostic{Kind: KindLoad, Message: err.Error()}
	}
}

// Describe renders a diagnostic as `[line N] KindError: message`.
func Describe(diag Diagnostic) string {
	if diag.Line > 0 {
		return fmt.Sprintf("[line %d] %sError: %s", diag.Line, diag.Kind, diag.Message)
	}
	return fmt.Sprintf("%sError: %s", diag.Kind, diag.Message)
}
