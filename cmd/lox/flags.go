package main

import (
	"fmt"
	"strconv"
	"strings"

	"lox/interpreter-go/pkg/interpreter"
)

// cliOptions holds flags accepted before the command. maxDepth is zero when
// unset so the configuration or interpreter default applies.
type cliOptions struct {
	configPath string
	maxDepth   int
}

func parseGlobalFlags(args []string) (cliOptions, []string, error) {
	var opts cliOptions
	remaining := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			remaining = append(remaining, args[i+1:]...)
			break
		}
		name, value, hasValue := splitFlag(arg)
		switch name {
		case "--config", "--max-depth":
			if !hasValue {
				if i+1 >= len(args) {
					return opts, nil, fmt.Errorf("%s expects a value", name)
				}
				value = args[i+1]
				i++
			}
			if err := opts.set(name, value); err != nil {
				return opts, nil, err
			}
		default:
			remaining = append(remaining, arg)
		}
	}
	return opts, remaining, nil
}

func (o *cliOptions) set(name, value string) error {
	value = strings.TrimSpace(value)
	switch name {
	case "--config":
		if value == "" {
			return fmt.Errorf("--config expects a value")
		}
		o.configPath = value
	case "--max-depth":
		depth, err := parseMaxDepth(value)
		if err != nil {
			return err
		}
		o.maxDepth = depth
	}
	return nil
}

func parseMaxDepth(value string) (int, error) {
	depth, err := strconv.Atoi(value)
	if err != nil || depth <= 0 || depth > interpreter.MaxCallDepthLimit {
		return 0, fmt.Errorf("invalid --max-depth value '%s' (expected 1..%d)", value, interpreter.MaxCallDepthLimit)
	}
	return depth, nil
}

// runFlags are the options of `lox run`.
type runFlags struct {
	rev  string
	repo string
	args []string
}

func parseRunFlags(args []string) (runFlags, error) {
	flags := runFlags{}
	for i := 0; i < len(args); i++ {
		arg := args[i]
		name, value, hasValue := splitFlag(arg)
		switch name {
		case "--rev", "--repo":
			if !hasValue {
				if i+1 >= len(args) {
					return flags, fmt.Errorf("%s expects a value", name)
				}
				value = args[i+1]
				i++
			}
			if strings.TrimSpace(value) == "" {
				return flags, fmt.Errorf("%s expects a value", name)
			}
			if name == "--rev" {
				flags.rev = value
			} else {
				flags.repo = value
			}
		default:
			if strings.HasPrefix(arg, "--") {
				return flags, fmt.Errorf("unknown flag %s", arg)
			}
			flags.args = append(flags.args, arg)
		}
	}
	if flags.repo != "" && flags.rev == "" {
		return flags, fmt.Errorf("--repo requires --rev")
	}
	return flags, nil
}

func splitFlag(arg string) (name, value string, hasValue bool) {
	if !strings.HasPrefix(arg, "--") {
		return arg, "", false
	}
	if idx := strings.IndexByte(arg, '='); idx >= 0 {
		return arg[:idx], arg[idx+1:], true
	}
	return arg, "", false
}
