package main

import (
	"errors"
	"fmt"
	"os"
)

const cliToolVersion = "lox-cli 0.1.0-dev"

var errConfigNotFound = errors.New("lox.yml not found")

// Exit codes follow sysexits: 65 for malformed scripts, 70 for runtime failures.
const (
	exitOK      = 0
	exitUsage   = 1
	exitDataErr = 65
	exitRuntime = 70
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	opts, remaining, err := parseGlobalFlags(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitUsage
	}
	if len(remaining) == 0 {
		return runRepl(nil, opts)
	}

	switch remaining[0] {
	case "--help", "-h", "help":
		printUsage()
		return exitOK
	case "--version", "-V", "version":
		fmt.Fprintln(os.Stdout, cliToolVersion)
		return exitOK
	case "run":
		return runEntry(remaining[1:], opts)
	case "check":
		return runCheck(remaining[1:], opts)
	case "repl":
		return runRepl(remaining[1:], opts)
	default:
		return runEntry(remaining, opts)
	}
}
