package driver

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestLoadConfigResolvesRelativeEntry(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultConfigName)
	writeFile(t, path, "entry: scripts/main.lox\nmax_call_depth: 64\n")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Entry != filepath.Join(dir, "scripts", "main.lox") {
		t.Fatalf("entry: got %q", cfg.Entry)
	}
	if cfg.MaxCallDepth != 64 || cfg.Output != OutputStdout || cfg.Source != nil {
		t.Fatalf("unexpected config %#v", cfg)
	}
	if _, ok := cfg.Loader().(FileLoader); !ok {
		t.Fatalf("expected file loader, got %T", cfg.Loader())
	}
	if cfg.Options().MaxCallDepth != 64 {
		t.Fatalf("options did not carry depth")
	}
}

func TestLoadConfigGitSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultConfigName)
	writeFile(t, path, `
entry: main.lox
output: stderr
source:
  git: repo
  branch: main
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Entry != "main.lox" {
		t.Fatalf("git entries stay repository-relative, got %q", cfg.Entry)
	}
	if cfg.Output != OutputStderr {
		t.Fatalf("output: got %q", cfg.Output)
	}
	want := GitSourceSpec{Git: filepath.Join(dir, "repo"), Branch: "main"}
	if cfg.Source == nil || *cfg.Source != want {
		t.Fatalf("source: got %#v, want %#v", cfg.Source, want)
	}
	if _, ok := cfg.Loader().(*GitSource); !ok {
		t.Fatalf("expected git loader, got %T", cfg.Loader())
	}
}

func TestLoadConfigKeepsRemoteURLs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultConfigName)
	writeFile(t, path, "entry: main.lox\nsource:\n  git: https://example.com/scripts.git\n  tag: v1\n")
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Source.Git != "https://example.com/scripts.git" {
		t.Fatalf("remote url rewritten: %q", cfg.Source.Git)
	}
}

func TestLoadConfigValidation(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultConfigName)
	writeFile(t, path, `
max_call_depth: -1
output: file
source:
  rev: abc
  tag: v1
`)
	_, err := LoadConfig(path)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	want := []string{
		"entry must be provided",
		"max_call_depth must be between 0 and 100000",
		`output "file" must be "stdout" or "stderr"`,
		"source: git must be provided",
		"source: exactly one of rev, tag, or branch must be provided",
	}
	if len(verr.Issues) != len(want) {
		t.Fatalf("issues: got %v, want %v", verr.Issues, want)
	}
	for i := range want {
		if verr.Issues[i] != want[i] {
			t.Fatalf("issue %d: got %q, want %q", i, verr.Issues[i], want[i])
		}
	}
	if !strings.HasPrefix(err.Error(), "config validation failed:\n- entry must be provided") {
		t.Fatalf("unexpected error text %q", err.Error())
	}
}

func TestLoadConfigRejectsUnknownFieldsAndEmptyFiles(t *testing.T) {
	dir := t.TempDir()
	unknown := filepath.Join(dir, "unknown.yml")
	writeFile(t, unknown, "entry: main.lox\nentrypoint: other.lox\n")
	if _, err := LoadConfig(unknown); err == nil || !strings.Contains(err.Error(), "entrypoint") {
		t.Fatalf("expected unknown field error, got %v", err)
	}

	empty := filepath.Join(dir, "empty.yml")
	writeFile(t, empty, "")
	if _, err := LoadConfig(empty); err == nil || !strings.Contains(err.Error(), "is empty") {
		t.Fatalf("expected empty config error, got %v", err)
	}

	if _, err := LoadConfig(filepath.Join(dir, "missing.yml")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
	if _, err := LoadConfig(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}
