// Package driver loads run configuration and scripts and reports failures
// from every stage in one diagnostic format.
package driver

import (
	"context"

	"lox/interpreter-go/pkg/interpreter"
	"lox/interpreter-go/pkg/parser"
)

// Execute lexes, parses and runs src in a fresh interpreter.
func Execute(ctx context.Context, src *Source, opts interpreter.Options) error {
	program, err := parser.ParseSource(src.Text)
	if err != nil {
		return err
	}
	return interpreter.NewWithOptions(opts).Run(ctx, program)
}

// Options converts the configuration into interpreter options; output is
// chosen by the caller.
func (c *Config) Options() interpreter.Options {
	return interpreter.Options{MaxCallDepth: c.MaxCallDepth}
}
