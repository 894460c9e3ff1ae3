package driver

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"lox/interpreter-go/pkg/interpreter"
)

// DefaultConfigName is the run configuration picked up from the working
// directory when no --config flag is given.
const DefaultConfigName = "lox.yml"

// OutputStream selects where print writes.
type OutputStream string

const (
	OutputStdout OutputStream = "stdout"
	OutputStderr OutputStream = "stderr"
)

// Config represents the parsed contents of lox.yml.
type Config struct {
	Path         string
	Entry        string
	MaxCallDepth int
	Output       OutputStream
	Source       *GitSourceSpec
}

// GitSourceSpec pins the entry script to a revision of a git repository.
// Exactly one of Rev, Tag or Branch selects the revision.
type GitSourceSpec struct {
	Git    string
	Rev    string
	Tag    string
	Branch string
}

type configFile struct {
	Entry        string          `yaml:"entry"`
	MaxCallDepth int             `yaml:"max_call_depth"`
	Output       string          `yaml:"output"`
	Source       *sourceFileSpec `yaml:"source"`
}

type sourceFileSpec struct {
	Git    string `yaml:"git"`
	Rev    string `yaml:"rev"`
	Tag    string `yaml:"tag"`
	Branch string `yaml:"branch"`
}

// ValidationError aggregates configuration validation failures.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "config: invalid configuration"
	}
	var b strings.Builder
	b.WriteString("config validation failed:")
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

// LoadConfig parses lox.yml from disk, returning a validated configuration.
// Relative paths are resolved against the directory holding the file.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config: empty path")
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: resolve %s: %w", path, err)
	}
	file, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", absPath, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)

	var raw configFile
	if err := decoder.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("config: %s is empty", absPath)
		}
		return nil, fmt.Errorf("config: parse %s: %w", absPath, err)
	}

	cfg := raw.toConfig(absPath)
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (raw configFile) toConfig(path string) *Config {
	cfg := &Config{
		Path:         path,
		Entry:        strings.TrimSpace(raw.Entry),
		MaxCallDepth: raw.MaxCallDepth,
		Output:       OutputStream(strings.TrimSpace(raw.Output)),
	}
	if cfg.Output == "" {
		cfg.Output = OutputStdout
	}
	if raw.Source != nil {
		cfg.Source = &GitSourceSpec{
			Git:    strings.TrimSpace(raw.Source.Git),
			Rev:    strings.TrimSpace(raw.Source.Rev),
			Tag:    strings.TrimSpace(raw.Source.Tag),
			Branch: strings.TrimSpace(raw.Source.Branch),
		}
		if cfg.Source.Git != "" && !isRemoteURL(cfg.Source.Git) && !filepath.IsAbs(cfg.Source.Git) {
			cfg.Source.Git = filepath.Join(filepath.Dir(path), cfg.Source.Git)
		}
	}
	// A git entry is a path inside the repository, not on disk.
	if cfg.Source == nil && cfg.Entry != "" && !filepath.IsAbs(cfg.Entry) {
		cfg.Entry = filepath.Join(filepath.Dir(path), cfg.Entry)
	}
	return cfg
}

func (c *Config) validate() error {
	var errs ValidationError
	if c.Entry == "" {
		errs.Issues = append(errs.Issues, "entry must be provided")
	}
	if c.MaxCallDepth < 0 || c.MaxCallDepth > interpreter.MaxCallDepthLimit {
		errs.Issues = append(errs.Issues, fmt.Sprintf("max_call_depth must be between 0 and %d", interpreter.MaxCallDepthLimit))
	}
	switch c.Output {
	case OutputStdout, OutputStderr:
	default:
		errs.Issues = append(errs.Issues, fmt.Sprintf("output %q must be %q or %q", c.Output, OutputStdout, OutputStderr))
	}
	if c.Source != nil {
		for _, issue := range c.Source.validate() {
			errs.Issues = append(errs.Issues, "source: "+issue)
		}
	}
	if len(errs.Issues) > 0 {
		return &errs
	}
	return nil
}

func (s *GitSourceSpec) validate() []string {
	var issues []string
	if s.Git == "" {
		issues = append(issues, "git must be provided")
	}
	selectors := 0
	for _, v := range []string{s.Rev, s.Tag, s.Branch} {
		if v != "" {
			selectors++
		}
	}
	if selectors != 1 {
		issues = append(issues, "exactly one of rev, tag, or branch must be provided")
	}
	return issues
}

// Loader returns the loader the configuration selects.
func (c *Config) Loader() Loader {
	if c.Source != nil {
		return &GitSource{Spec: *c.Source}
	}
	return FileLoader{}
}
