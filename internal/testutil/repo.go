// Package testutil provides helpers for creating temporary git repositories
// for end-to-end testing.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// TestRepo is a builder for creating temporary git repositories with
// controlled commit history, config files and pending commit messages.
type TestRepo struct {
	t    testing.TB
	path string
	repo *gogit.Repository
	time time.Time
}

// NewTestRepo creates and initializes a new git repository in a temporary directory.
func NewTestRepo(t testing.TB) *TestRepo {
	t.Helper()
	dir := t.TempDir()

	repo, err := gogit.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("failed to init repo: %v", err)
	}

	return &TestRepo{
		t:    t,
		path: dir,
		repo: repo,
		time: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

// Path returns the repository root directory.
func (r *TestRepo) Path() string {
	return r.path
}

// GitDir returns the .git directory.
func (r *TestRepo) GitDir() string {
	return filepath.Join(r.path, ".git")
}

// AddCommit creates a new commit with the given message. A file named after
// the commit time is created to ensure each commit has changes.
// Returns the commit SHA.
func (r *TestRepo) AddCommit(message string) string {
	r.t.Helper()
	return r.commit(message, "file", nil)
}

// MergeCommit creates a merge commit with two parents: the current HEAD and
// the given SHA. Returns the merge commit SHA.
func (r *TestRepo) MergeCommit(message, otherSha string) string {
	r.t.Helper()

	head, err := r.repo.Head()
	if err != nil {
		r.t.Fatalf("getting HEAD: %v", err)
	}
	return r.commit(message, "merge", []plumbing.Hash{head.Hash(), plumbing.NewHash(otherSha)})
}

func (r *TestRepo) commit(message, prefix string, parents []plumbing.Hash) string {
	r.t.Helper()
	r.time = r.time.Add(time.Minute)

	wt, err := r.repo.Worktree()
	if err != nil {
		r.t.Fatalf("getting worktree: %v", err)
	}

	filename := fmt.Sprintf("%s-%d.txt", prefix, r.time.Unix())
	r.WriteFile(filename, message)

	if _, err := wt.Add(filename); err != nil {
		r.t.Fatalf("staging file: %v", err)
	}

	hash, err := wt.Commit(message, &gogit.CommitOptions{
		Author: &object.Signature{
			Name:  "Test",
			Email: "test@example.com",
			When:  r.time,
		},
		Parents: parents,
	})
	if err != nil {
		r.t.Fatalf("committing: %v", err)
	}

	return hash.String()
}

// WriteFile writes a file relative to the repository root, creating parent
// directories as needed.
func (r *TestRepo) WriteFile(name, content string) string {
	r.t.Helper()
	path := filepath.Join(r.path, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		r.t.Fatalf("creating directory for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		r.t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

// WriteConfig writes a .commitlintrc.yml file in the repo root.
func (r *TestRepo) WriteConfig(content string) string {
	r.t.Helper()
	return r.WriteFile(".commitlintrc.yml", content)
}

// WriteEditMessage writes the pending commit message git hooks read.
func (r *TestRepo) WriteEditMessage(message string) string {
	r.t.Helper()
	return r.WriteFile(filepath.Join(".git", "COMMIT_EDITMSG"), message)
}

// HeadSha returns the current HEAD commit SHA.
func (r *TestRepo) HeadSha() string {
	r.t.Helper()
	head, err := r.repo.Head()
	if err != nil {
		r.t.Fatalf("getting HEAD: %v", err)
	}
	return head.Hash().String()
}
