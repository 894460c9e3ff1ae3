package main

import (
	"fmt"
	"os"
)

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  lox [--config=lox.yml] [--max-depth=N] run [<file.lox>]")
	fmt.Fprintln(os.Stderr, "  lox [--config=lox.yml] [--max-depth=N] run --rev <rev> [--repo <dir>] <path>")
	fmt.Fprintln(os.Stderr, "  lox [--max-depth=N] <file.lox>")
	fmt.Fprintln(os.Stderr, "  lox check [--ast] <file.lox>")
	fmt.Fprintln(os.Stderr, "  lox [--max-depth=N] repl")
	fmt.Fprintln(os.Stderr, "  lox version")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "With no command, lox starts the REPL.")
}
