package parser

import (
	"encoding/json"
	"reflect"
	"testing"

	"lox/interpreter-go/pkg/ast"
)

func mustParse(t testing.TB, source string) *ast.Program {
	t.Helper()
	program, err := ParseSource(source)
	if err != nil {
		t.Fatalf("ParseSource error: %v", err)
	}
	return program
}

// assertProgramsEqual compares programs structurally, ignoring line numbers so
// expectations can be written with the ast DSL.
func assertProgramsEqual(t testing.TB, expected, actual *ast.Program) {
	t.Helper()
	want := normalizedJSON(t, expected)
	got := normalizedJSON(t, actual)
	if reflect.DeepEqual(want, got) {
		return
	}
	wantPretty, _ := json.MarshalIndent(want, "", "  ")
	gotPretty, _ := json.MarshalIndent(got, "", "  ")
	t.Fatalf("program mismatch\nexpected: %s\n   actual: %s", wantPretty, gotPretty)
}

func normalizedJSON(t testing.TB, program *ast.Program) interface{} {
	t.Helper()
	raw, err := json.Marshal(program)
	if err != nil {
		t.Fatalf("marshal program: %v", err)
	}
	var decoded interface{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal program: %v", err)
	}
	stripLines(decoded)
	return decoded
}

func stripLines(node interface{}) {
	switch v := node.(type) {
	case map[string]interface{}:
		delete(v, "line")
		for _, child := range v {
			stripLines(child)
		}
	case []interface{}:
		for _, child := range v {
			stripLines(child)
		}
	}
}
