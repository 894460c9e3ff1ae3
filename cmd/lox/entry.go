package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"lox/interpreter-go/pkg/driver"
	"lox/interpreter-go/pkg/interpreter"
)

func runEntry(args []string, opts cliOptions) int {
	flags, err := parseRunFlags(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitUsage
	}
	if len(flags.args) > 1 {
		fmt.Fprintf(os.Stderr, "unexpected arguments: %s\n", strings.Join(flags.args[1:], " "))
		return exitUsage
	}

	var cfg *driver.Config
	if opts.configPath != "" || len(flags.args) == 0 {
		cfg, err = loadConfigFrom(opts.configPath)
		switch {
		case err == nil:
		case errors.Is(err, errConfigNotFound) && len(flags.args) == 0 && flags.rev == "":
			fmt.Fprintf(os.Stderr, "no script given and %s not found\n", driver.DefaultConfigName)
			printUsage()
			return exitUsage
		case errors.Is(err, errConfigNotFound):
			cfg = nil
		default:
			fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
			return exitUsage
		}
	}

	loader, entryPath, err := selectEntry(cfg, flags)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitUsage
	}

	src, err := loader.Load(entryPath)
	if err != nil {
		reportError(err)
		return exitUsage
	}
	return executeSource(src, interpreterOptions(cfg, opts))
}

// selectEntry picks the loader and path: --rev reads from git, an explicit
// file reads from disk, otherwise the configuration decides.
func selectEntry(cfg *driver.Config, flags runFlags) (driver.Loader, string, error) {
	switch {
	case flags.rev != "":
		if len(flags.args) != 1 {
			return nil, "", fmt.Errorf("--rev requires a script path inside the repository")
		}
		repo := flags.repo
		if repo == "" {
			repo = "."
		}
		return &driver.GitSource{Spec: driver.GitSourceSpec{Git: repo, Rev: flags.rev}}, flags.args[0], nil
	case len(flags.args) == 1:
		return driver.FileLoader{}, flags.args[0], nil
	case cfg != nil:
		return cfg.Loader(), cfg.Entry, nil
	default:
		return nil, "", fmt.Errorf("no script given")
	}
}

func interpreterOptions(cfg *driver.Config, opts cliOptions) interpreter.Options {
	options := interpreter.Options{Output: os.Stdout}
	if cfg != nil {
		options = cfg.Options()
		options.Output = os.Stdout
		if cfg.Output == driver.OutputStderr {
			options.Output = os.Stderr
		}
	}
	if opts.maxDepth > 0 {
		options.MaxCallDepth = opts.maxDepth
	}
	return options
}

func executeSource(src *driver.Source, options interpreter.Options) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := driver.Execute(ctx, src, options); err != nil {
		reportError(err)
		return exitCodeFor(err)
	}
	return exitOK
}

func loadConfigFrom(path string) (*driver.Config, error) {
	if path == "" {
		if _, err := os.Stat(driver.DefaultConfigName); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil, errConfigNotFound
			}
			return nil, err
		}
		path = driver.DefaultConfigName
	}
	return driver.LoadConfig(path)
}

func reportError(err error) {
	reportErrorTo(os.Stderr, err)
}

func reportErrorTo(w io.Writer, err error) {
	fmt.Fprintln(w, driver.Describe(driver.Diagnose(err)))
}

func exitCodeFor(err error) int {
	switch driver.Diagnose(err).Kind {
	case driver.KindLex, driver.KindParse:
		return exitDataErr
	case driver.KindRuntime:
		return exitRuntime
	default:
		return exitUsage
	}
}
