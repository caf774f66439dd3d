package git

// Repository provides the git operations used to find commit messages.
// This is the key abstraction point for testing.
type Repository interface {
	// WorkingDirectory returns the path to the working directory.
	WorkingDirectory() string

	// HeadCommit returns the commit HEAD points at.
	HeadCommit() (Commit, error)

	// CommitFromRevision resolves a revision such as "HEAD~1", a branch
	// name or a SHA to a commit.
	CommitFromRevision(rev string) (Commit, error)

	// EditMessagePath returns the path of the pending commit message file.
	EditMessagePath() string
}
