package git

import (
	"fmt"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/storage/filesystem"
)

// Compile-time check that GoGitRepository implements Repository.
var _ Repository = (*GoGitRepository)(nil)

// GoGitRepository implements Repository using go-git.
type GoGitRepository struct {
	repo    *gogit.Repository
	gitDir  string
	workDir string
}

// Open opens the git repository containing path, searching parent
// directories for the .git directory. A .git file holding a "gitdir:"
// pointer, as in linked worktrees and submodules, is followed.
func Open(path string) (*GoGitRepository, error) {
	r, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening git repository at %s: %w", path, err)
	}

	wt, err := r.Worktree()
	if err != nil {
		return nil, fmt.Errorf("getting worktree: %w", err)
	}

	root := wt.Filesystem.Root()
	gitDir := filepath.Join(root, ".git")
	if fs, ok := r.Storer.(*filesystem.Storage); ok {
		gitDir = fs.Filesystem().Root()
	}

	return &GoGitRepository{
		repo:    r,
		gitDir:  gitDir,
		workDir: root,
	}, nil
}

func (r *GoGitRepository) WorkingDirectory() string {
	return r.workDir
}

func (r *GoGitRepository) EditMessagePath() string {
	return filepath.Join(r.gitDir, EditMessageFile)
}

func (r *GoGitRepository) HeadCommit() (Commit, error) {
	ref, err := r.repo.Head()
	if err != nil {
		return Commit{}, fmt.Errorf("getting HEAD: %w", err)
	}
	return r.commitFromHash(ref.Hash())
}

func (r *GoGitRepository) CommitFromRevision(rev string) (Commit, error) {
	hash, err := r.repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return Commit{}, fmt.Errorf("resolving revision %q: %w", rev, err)
	}
	return r.commitFromHash(*hash)
}

func (r *GoGitRepository) commitFromHash(hash plumbing.Hash) (Commit, error) {
	c, err := r.repo.CommitObject(hash)
	if err != nil {
		return Commit{}, fmt.Errorf("loading commit %s: %w", hash.String(), err)
	}
	return convertCommit(c), nil
}

// convertCommit converts a go-git commit to our Commit type.
func convertCommit(c *object.Commit) Commit {
	return Commit{
		Sha:     c.Hash.String(),
		Message: c.Message,
	}
}
