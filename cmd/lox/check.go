package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"lox/interpreter-go/pkg/driver"
	"lox/interpreter-go/pkg/parser"
)

// runCheck lexes and parses a script without running it. With --ast the
// parsed program is written to stdout as JSON.
func runCheck(args []string, _ cliOptions) int {
	dumpAST := false
	var files []string
	for _, arg := range args {
		switch {
		case arg == "--ast":
			dumpAST = true
		case strings.HasPrefix(arg, "--"):
			fmt.Fprintf(os.Stderr, "unknown flag %s\n", arg)
			return exitUsage
		default:
			files = append(files, arg)
		}
	}
	if len(files) != 1 {
		fmt.Fprintln(os.Stderr, "lox check expects exactly one script")
		return exitUsage
	}

	src, err := driver.FileLoader{}.Load(files[0])
	if err != nil {
		reportError(err)
		return exitUsage
	}
	program, err := parser.ParseSource(src.Text)
	if err != nil {
		reportError(err)
		return exitCodeFor(err)
	}
	if !dumpAST {
		return exitOK
	}
	encoded, err := json.MarshalIndent(program, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "encode ast: %v\n", err)
		return exitUsage
	}
	fmt.Fprintln(os.Stdout, string(encoded))
	return exitOK
}
