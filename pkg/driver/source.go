package driver

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/storage/memory"
)

// Source is a script ready to be lexed. Origin names where it came from
// for diagnostics.
type Source struct {
	Origin string
	Text   string
}

// Loader reads a script by path.
type Loader interface {
	Load(path string) (*Source, error)
}

// FileLoader reads scripts from the local filesystem.
type FileLoader struct{}

func (FileLoader) Load(p string) (*Source, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", p, err)
	}
	return &Source{Origin: p, Text: string(data)}, nil
}

// GitSource reads scripts as they were committed at a revision of a git
// repository. Local repositories are opened in place; remote URLs are cloned
// into memory.
type GitSource struct {
	Spec GitSourceSpec
}

func (g *GitSource) Load(p string) (*Source, error) {
	repo, err := g.open()
	if err != nil {
		return nil, err
	}
	revision, label, err := gitRevisionFromSpec(g.Spec)
	if err != nil {
		return nil, err
	}
	hash, err := repo.ResolveRevision(revision)
	if err != nil {
		return nil, fmt.Errorf("resolve revision %s: %w", label, err)
	}
	commit, err := repo.CommitObject(*hash)
	if err != nil {
		return nil, fmt.Errorf("read commit %s: %w", hash, err)
	}
	inRepo := repoPath(p)
	file, err := commit.File(inRepo)
	if err != nil {
		return nil, fmt.Errorf("%s at %s: %w", inRepo, label, err)
	}
	contents, err := file.Contents()
	if err != nil {
		return nil, fmt.Errorf("read %s at %s: %w", inRepo, label, err)
	}
	return &Source{
		Origin: fmt.Sprintf("%s@%s:%s", g.Spec.Git, shortHash(hash.String()), inRepo),
		Text:   contents,
	}, nil
}

func (g *GitSource) open() (*git.Repository, error) {
	if isRemoteURL(g.Spec.Git) {
		repo, err := git.Clone(memory.NewStorage(), nil, &git.CloneOptions{URL: g.Spec.Git})
		if err != nil {
			return nil, fmt.Errorf("git clone %s: %w", g.Spec.Git, err)
		}
		return repo, nil
	}
	repo, err := git.PlainOpenWithOptions(g.Spec.Git, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("git open %s: %w", g.Spec.Git, err)
	}
	return repo, nil
}

func gitRevisionFromSpec(spec GitSourceSpec) (plumbing.Revision, string, error) {
	if rev := strings.TrimSpace(spec.Rev); rev != "" {
		return plumbing.Revision(rev), rev, nil
	}
	if tag := strings.TrimSpace(spec.Tag); tag != "" {
		return plumbing.Revision("refs/tags/" + tag), tag, nil
	}
	if branch := strings.TrimSpace(spec.Branch); branch != "" {
		return plumbing.Revision("refs/heads/" + branch), branch, nil
	}
	return "", "", fmt.Errorf("git sources require rev, tag, or branch")
}

// repoPath converts a script path to the slash-separated form git trees use.
func repoPath(p string) string {
	cleaned := path.Clean(filepath.ToSlash(p))
	return strings.TrimPrefix(cleaned, "./")
}

func isRemoteURL(s string) bool {
	return strings.Contains(s, "://") || strings.HasPrefix(s, "git@")
}

func shortHash(h string) string {
	if len(h) > 7 {
		return h[:7]
	}
	return h
}
