package commitpolicy_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/MyCarrier-DevOps/go-commitlint/internal/testutil"
	"github.com/MyCarrier-DevOps/go-commitlint/pkg/commitpolicy"

	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	p, err := commitpolicy.Default()
	require.NoError(t, err)

	require.Equal(t, "build", p.Types()[0])
	require.Contains(t, p.Types(), "deps")
	require.Contains(t, p.Scopes(), "crypto")
	require.NotEmpty(t, p.HelpURL())
}

func TestDefault_Lint(t *testing.T) {
	p, err := commitpolicy.Default()
	require.NoError(t, err)

	require.True(t, p.Lint("feat(crypto): add price model").Valid)

	report := p.Lint("Feature: Add Model.")
	require.False(t, report.Valid)
	require.NotEmpty(t, report.Errors)
}

func TestChangelogTitle(t *testing.T) {
	p, err := commitpolicy.Default()
	require.NoError(t, err)

	title, ok := p.ChangelogTitle("feat")
	require.True(t, ok)
	require.Equal(t, "Features", title)

	_, ok = p.ChangelogTitle("nope")
	require.False(t, ok)
}

func TestTypes_ReturnsCopy(t *testing.T) {
	p, err := commitpolicy.Default()
	require.NoError(t, err)

	types := p.Types()
	types[0] = "mutated"
	require.Equal(t, "build", p.Types()[0])
}

func TestLoad_RepositoryConfig(t *testing.T) {
	repo := testutil.NewTestRepo(t)
	repo.AddCommit("chore: init")
	repo.WriteConfig("rules:\n  scope-enum: [2, always, [api, web]]\n")

	p, err := commitpolicy.Load(commitpolicy.Options{Path: repo.Path()})
	require.NoError(t, err)
	require.Equal(t, []string{"api", "web"}, p.Scopes())
	require.True(t, p.Lint("feat(api): add endpoint").Valid)
	require.False(t, p.Lint("feat(crypto): add model").Valid)
}

func TestLoad_NotARepository(t *testing.T) {
	p, err := commitpolicy.Load(commitpolicy.Options{Path: t.TempDir()})
	require.NoError(t, err)
	require.Contains(t, p.Types(), "feat")
}

func TestLoad_ExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.toml")
	require.NoError(t, os.WriteFile(path, []byte("helpUrl = \"https://example.com/help\"\n"), 0o644))

	p, err := commitpolicy.Load(commitpolicy.Options{Path: t.TempDir(), ConfigFile: path})
	require.NoError(t, err)
	require.Equal(t, "https://example.com/help", p.HelpURL())
}

func TestLoad_NoDefaultsIncomplete(t *testing.T) {
	_, err := commitpolicy.Load(commitpolicy.Options{Path: t.TempDir(), NoDefaults: true})
	require.Error(t, err)
	require.Contains(t, err.Error(), "loading configuration")
}

func TestLoad_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.yml")
	require.NoError(t, os.WriteFile(path, []byte("rules: [not, a, map]\n"), 0o644))

	_, err := commitpolicy.Load(commitpolicy.Options{ConfigFile: path, Path: t.TempDir()})
	require.Error(t, err)
}

func TestPrompt(t *testing.T) {
	p, err := commitpolicy.Default()
	require.NoError(t, err)

	schema := p.Prompt()
	require.Equal(t, "type", schema.Questions[0].Name)
	require.Len(t, schema.Questions[0].Options, len(p.Types()))
}

func TestDescriptor(t *testing.T) {
	p, err := commitpolicy.Default()
	require.NoError(t, err)

	data, err := p.Descriptor()
	require.NoError(t, err)
	require.Contains(t, string(data), "type-enum:")
	require.Contains(t, string(data), "extends:")
}
