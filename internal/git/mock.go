package git

// Compile-time check that MockRepository implements Repository.
var _ Repository = (*MockRepository)(nil)

// MockRepository is a configurable mock implementation of Repository for testing.
// Each method is backed by a function field. If the function field is nil,
// the method returns sensible zero values.
type MockRepository struct {
	WorkingDirectoryFunc   func() string
	HeadCommitFunc         func() (Commit, error)
	CommitFromRevisionFunc func(string) (Commit, error)
	EditMessagePathFunc    func() string
}

func (m *MockRepository) WorkingDirectory() string {
	if m.WorkingDirectoryFunc != nil {
		return m.WorkingDirectoryFunc()
	}
	return ""
}

func (m *MockRepository) HeadCommit() (Commit, error) {
	if m.HeadCommitFunc != nil {
		return m.HeadCommitFunc()
	}
	return Commit{}, nil
}

func (m *MockRepository) CommitFromRevision(rev string) (Commit, error) {
	if m.CommitFromRevisionFunc != nil {
		return m.CommitFromRevisionFunc(rev)
	}
	return Commit{}, nil
}

func (m *MockRepository) EditMessagePath() string {
	if m.EditMessagePathFunc != nil {
		return m.EditMessagePathFunc()
	}
	return ""
}
