package e2e

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/MyCarrier-DevOps/go-commitlint/internal/testutil"
	"github.com/MyCarrier-DevOps/go-commitlint/pkg/commitpolicy"

	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Library: Load
// ---------------------------------------------------------------------------

func TestLibrary_Load_DefaultPolicy(t *testing.T) {
	repo := testutil.NewTestRepo(t)
	repo.AddCommit("chore: init")

	p, err := commitpolicy.Load(commitpolicy.Options{Path: repo.Path()})
	require.NoError(t, err)
	require.Len(t, p.Types(), 12)
	require.Len(t, p.Scopes(), 9)
	require.True(t, p.Lint("feat(crypto): add price model").Valid)
}

func TestLibrary_Load_FromSubdirectory(t *testing.T) {
	repo := testutil.NewTestRepo(t)
	repo.WriteConfig("rules:\n  scope-enum: [2, always, [api]]\n")
	repo.WriteFile("services/api/main.go", "package main\n")
	repo.AddCommit("chore: init")

	p, err := commitpolicy.Load(commitpolicy.Options{Path: filepath.Join(repo.Path(), "services", "api")})
	require.NoError(t, err)
	require.Equal(t, []string{"api"}, p.Scopes())
}

func TestLibrary_Load_ConfigFileOverride(t *testing.T) {
	repo := testutil.NewTestRepo(t)
	repo.WriteConfig("rules:\n  scope-enum: [2, always, [api]]\n")
	repo.AddCommit("chore: init")

	override := filepath.Join(t.TempDir(), "policy.yml")
	require.NoError(t, os.WriteFile(override, []byte("rules:\n  scope-enum: [2, always, [web]]\n"), 0o644))

	p, err := commitpolicy.Load(commitpolicy.Options{Path: repo.Path(), ConfigFile: override})
	require.NoError(t, err)
	require.Equal(t, []string{"web"}, p.Scopes())
}

func TestLibrary_Load_NoDefaultsCompleteDescriptor(t *testing.T) {
	repo := testutil.NewTestRepo(t)
	repo.WriteConfig(`
extends: [conventional]
helpUrl: https://example.com/commits
rules:
  type-enum: [2, always, [feat, fix]]
prompt:
  questions:
    type:
      description: Pick a type
      enum:
        feat:
          title: Features
        fix:
          title: Bug Fixes
`)
	repo.AddCommit("chore: init")

	p, err := commitpolicy.Load(commitpolicy.Options{Path: repo.Path(), NoDefaults: true})
	require.NoError(t, err)
	require.Equal(t, []string{"feat", "fix"}, p.Types())
	require.Equal(t, "https://example.com/commits", p.HelpURL())

	title, ok := p.ChangelogTitle("fix")
	require.True(t, ok)
	require.Equal(t, "Bug Fixes", title)

	report := p.Lint("chore: tidy")
	require.False(t, report.Valid)
	require.Equal(t, "type-enum", report.Errors[0].Name)
}

func TestLibrary_Load_NarrowedTypeEnum(t *testing.T) {
	repo := testutil.NewTestRepo(t)
	repo.WriteConfig("rules:\n  type-enum: [2, always, [feat, fix]]\n")
	repo.AddCommit("chore: init")

	p, err := commitpolicy.Load(commitpolicy.Options{Path: repo.Path()})
	require.NoError(t, err)
	require.Equal(t, []string{"feat", "fix"}, p.Types())

	_, ok := p.ChangelogTitle("docs")
	require.False(t, ok)
	require.Len(t, p.Prompt().Questions[0].Options, 2)
	require.False(t, p.Lint("docs: update readme").Valid)
}

func TestLibrary_Load_PromptTypeNotDeclared(t *testing.T) {
	repo := testutil.NewTestRepo(t)
	repo.WriteConfig(`
rules:
  type-enum: [2, always, [feat, fix]]
prompt:
  questions:
    type:
      enum:
        feat: {title: Features}
        docs: {title: Documentation}
`)
	repo.AddCommit("chore: init")

	_, err := commitpolicy.Load(commitpolicy.Options{Path: repo.Path()})
	require.Error(t, err)
	require.Contains(t, err.Error(), `prompt type "docs" is not declared in type-enum`)
}

// ---------------------------------------------------------------------------
// Library: Policy
// ---------------------------------------------------------------------------

func TestLibrary_Policy_Descriptor(t *testing.T) {
	p, err := commitpolicy.Default()
	require.NoError(t, err)

	data, err := p.Descriptor()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), ".commitlintrc.yml")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	reloaded, err := commitpolicy.Load(commitpolicy.Options{Path: t.TempDir(), ConfigFile: path, NoDefaults: true})
	require.NoError(t, err)
	require.Equal(t, p.Types(), reloaded.Types())
	require.Equal(t, p.Scopes(), reloaded.Scopes())
	require.Equal(t, p.HelpURL(), reloaded.HelpURL())
}

func TestLibrary_Policy_LintReport(t *testing.T) {
	p, err := commitpolicy.Default()
	require.NoError(t, err)

	report := p.Lint("feat(crypto): Add Price Model\nmissing blank line")
	require.False(t, report.Valid)

	names := make([]string, 0, len(report.Errors))
	for _, prob := range report.Errors {
		names = append(names, prob.Name)
	}
	require.Equal(t, []string{"subject-case", "body-leading-blank"}, names)
}

func TestLibrary_Policy_PromptOrder(t *testing.T) {
	p, err := commitpolicy.Default()
	require.NoError(t, err)

	schema := p.Prompt()
	var values []string
	for _, opt := range schema.Questions[0].Options {
		values = append(values, opt.Value)
	}
	require.Equal(t, p.Types(), values)
}
