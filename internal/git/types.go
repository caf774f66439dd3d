// Package git provides the repository access the commit linter needs:
// locating the repository, its pending commit message and committed
// messages.
package git

// EditMessageFile is the file git writes the message being committed to.
const EditMessageFile = "COMMIT_EDITMSG"

// Commit represents a git commit.
type Commit struct {
	Sha     string
	Message string
}

// ShortSha returns the first 7 characters of the SHA.
func (c Commit) ShortSha() string {
	if len(c.Sha) >= 7 {
		return c.Sha[:7]
	}
	return c.Sha
}
