package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"lox/interpreter-go/pkg/ast"
	"lox/interpreter-go/pkg/interpreter"
	"lox/interpreter-go/pkg/lexer"
	"lox/interpreter-go/pkg/parser"
)

const (
	replPrompt     = "> "
	replContPrompt = "... "
	historyFile    = ".lox_history"
)

// prompter reads one line of input after showing a prompt. *liner.State
// satisfies it.
type prompter interface {
	Prompt(prompt string) (string, error)
}

// runRepl reads input into a single interpreter so definitions persist.
// Failures are reported and the session carries on.
func runRepl(args []string, opts cliOptions) int {
	if len(args) > 0 {
		fmt.Fprintf(os.Stderr, "lox repl does not take arguments (received %s)\n", strings.Join(args, " "))
		return exitUsage
	}

	interp := interpreter.NewWithOptions(interpreter.Options{Output: os.Stdout, MaxCallDepth: opts.maxDepth})
	if !stdinIsTerminal() {
		return replLoop(interp, newScannerPrompter(os.Stdin, io.Discard), os.Stdout, os.Stderr)
	}

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := ""
	if home, err := os.UserHomeDir(); err == nil {
		histPath = filepath.Join(home, historyFile)
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
	}
	defer func() {
		if histPath == "" {
			return
		}
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	return replLoop(interp, &historyPrompter{State: ln}, os.Stdout, os.Stderr)
}

func replLoop(interp *interpreter.Interpreter, in prompter, out, errOut io.Writer) int {
	for {
		code, err := readInput(in)
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(out)
			return exitOK
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			fmt.Fprintf(errOut, "read input: %v\n", err)
			return exitUsage
		}
		if strings.TrimSpace(code) == "" {
			continue
		}
		if err := evalReplInput(interp, code, out); err != nil {
			reportErrorTo(errOut, err)
		}
	}
}

// readInput keeps prompting while the text so far is an unfinished program,
// such as an open block or string.
func readInput(in prompter) (string, error) {
	var b strings.Builder
	for {
		prompt := replPrompt
		if b.Len() > 0 {
			prompt = replContPrompt
		}
		line, err := in.Prompt(prompt)
		if err != nil {
			if errors.Is(err, io.EOF) && b.Len() > 0 {
				return b.String(), nil
			}
			return "", err
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
		if _, perr := parseReplInput(b.String()); perr == nil || !isIncomplete(perr) {
			return b.String(), nil
		}
	}
}

func evalReplInput(interp *interpreter.Interpreter, code string, out io.Writer) error {
	program, err := parseReplInput(code)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if len(program.Body) == 1 {
		if stmt, ok := program.Body[0].(*ast.ExpressionStmt); ok {
			val, err := interp.Evaluate(ctx, stmt.Expression)
			if err != nil {
				return err
			}
			text, err := interp.Stringify(val)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, text)
			return nil
		}
	}
	return interp.Run(ctx, program)
}

// parseReplInput accepts a bare expression without its trailing semicolon.
func parseReplInput(code string) (*ast.Program, error) {
	program, err := parser.ParseSource(code)
	if err == nil {
		return program, nil
	}
	trimmed := strings.TrimSpace(code)
	if !strings.HasSuffix(trimmed, ";") && !strings.HasSuffix(trimmed, "}") {
		if retry, retryErr := parser.ParseSource(trimmed + ";"); retryErr == nil {
			return retry, nil
		}
	}
	return nil, err
}

// isIncomplete reports whether more input could still complete the program.
func isIncomplete(err error) bool {
	var parseErr *parser.Error
	if errors.As(err, &parseErr) {
		return parseErr.Where == "at end"
	}
	var lexErr *lexer.Error
	if errors.As(err, &lexErr) {
		return lexErr.Message == "unterminated string" || lexErr.Message == "unterminated block comment"
	}
	return false
}

// historyPrompter records every non-empty line it reads.
type historyPrompter struct {
	*liner.State
}

func (h *historyPrompter) Prompt(prompt string) (string, error) {
	line, err := h.State.Prompt(prompt)
	if err == nil && strings.TrimSpace(line) != "" {
		h.State.AppendHistory(line)
	}
	return line, err
}

func stdinIsTerminal() bool {
	info, err := os.Stdin.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}

// scannerPrompter reads piped input, echoing prompts to out.
type scannerPrompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func newScannerPrompter(in io.Reader, out io.Writer) *scannerPrompter {
	return &scannerPrompter{scanner: bufio.NewScanner(in), out: out}
}

func (s *scannerPrompter) Prompt(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return s.scanner.Text(), nil
}
