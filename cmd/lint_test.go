package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MyCarrier-DevOps/go-commitlint/internal/config"
	"github.com/MyCarrier-DevOps/go-commitlint/internal/git"
	"github.com/MyCarrier-DevOps/go-commitlint/internal/lint"
	"github.com/MyCarrier-DevOps/go-commitlint/internal/testutil"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

// resetFlags puts every flag back to its default and points --path at an
// empty directory outside any repository.
func resetFlags(t *testing.T) {
	t.Helper()
	set := func(path string) {
		flagPath, flagConfig, flagOutput, flagVerbosity = path, "", "text", "info"
		flagNoDefaults = false
		flagMessage, flagEdit, flagRev = "", "", ""
		flagLast, flagStrict, flagVerbose, flagShowConfig = false, false, false, false
	}
	set(t.TempDir())
	t.Cleanup(func() { set(".") })
}

func newTestCmd(stdin string) (*cobra.Command, *bytes.Buffer) {
	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	cmd.SetIn(strings.NewReader(stdin))
	return cmd, &out
}

func TestLoadConfig_NoFile(t *testing.T) {
	resetFlags(t)
	cfg, err := loadConfig(flagPath)
	require.NoError(t, err)
	require.Equal(t, config.CreateDefaultConfiguration().TypeEnum(), cfg.TypeEnum())
}

func TestLoadConfig_FoundFile(t *testing.T) {
	resetFlags(t)
	repo := testutil.NewTestRepo(t)
	repo.WriteConfig("rules:\n  scope-enum: [2, always, [api, web]]\n")

	cfg, err := loadConfig(repo.Path())
	require.NoError(t, err)
	require.Equal(t, []string{"api", "web"}, cfg.ScopeEnum())
	require.Contains(t, cfg.TypeEnum(), "feat")
}

func TestLoadConfig_ExplicitFile(t *testing.T) {
	resetFlags(t)
	path := filepath.Join(t.TempDir(), "policy.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"helpUrl": "https://example.com/help"}`), 0o644))
	flagConfig = path

	cfg, err := loadConfig(flagPath)
	require.NoError(t, err)
	require.Equal(t, "https://example.com/help", cfg.HelpURLOrEmpty())
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	resetFlags(t)
	flagConfig = filepath.Join(t.TempDir(), "missing.yml")
	_, err := loadConfig(flagPath)
	require.Error(t, err)
	require.Contains(t, err.Error(), "reading config file")
}

func TestLoadConfig_NoDefaultsIncomplete(t *testing.T) {
	resetFlags(t)
	flagNoDefaults = true
	_, err := loadConfig(flagPath)
	require.Error(t, err)
}

func TestLoadConfig_InvalidPolicy(t *testing.T) {
	resetFlags(t)
	repo := testutil.NewTestRepo(t)
	repo.WriteConfig("rules:\n  no-such-rule: [2, always]\n")
	_, err := loadConfig(repo.Path())
	require.Error(t, err)
	require.Contains(t, err.Error(), "no-such-rule")
}

func TestReadMessage_FlagWins(t *testing.T) {
	resetFlags(t)
	flagMessage = "feat: from flag"
	flagLast = true
	raw, err := readMessage(strings.NewReader("feat: from stdin"), nil)
	require.NoError(t, err)
	require.Equal(t, "feat: from flag", raw)
}

func TestReadMessage_EditPath(t *testing.T) {
	resetFlags(t)
	path := filepath.Join(t.TempDir(), "MSG")
	require.NoError(t, os.WriteFile(path, []byte("fix: from file\n"), 0o644))
	flagEdit = path

	raw, err := readMessage(strings.NewReader(""), nil)
	require.NoError(t, err)
	require.Equal(t, "fix: from file\n", raw)
}

func TestReadMessage_EditDefaultUsesRepository(t *testing.T) {
	resetFlags(t)
	tr := testutil.NewTestRepo(t)
	tr.AddCommit("chore: init")
	tr.WriteEditMessage("feat: pending\n# Please enter the commit message\n")

	repo, err := git.Open(tr.Path())
	require.NoError(t, err)

	flagEdit = git.EditMessageFile
	raw, err := readMessage(strings.NewReader(""), repo)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(raw, "feat: pending"))
}

func TestReadMessage_EditDefaultWithoutRepository(t *testing.T) {
	resetFlags(t)
	flagEdit = git.EditMessageFile
	_, err := readMessage(strings.NewReader(""), nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "no git repository")
}

func TestReadMessage_Last(t *testing.T) {
	resetFlags(t)
	repo := &git.MockRepository{
		HeadCommitFunc: func() (git.Commit, error) {
			return git.Commit{Sha: "abc1234def", Message: "docs: last commit"}, nil
		},
	}
	flagLast = true
	raw, err := readMessage(strings.NewReader(""), repo)
	require.NoError(t, err)
	require.Equal(t, "docs: last commit", raw)
}

func TestReadMessage_Rev(t *testing.T) {
	resetFlags(t)
	tr := testutil.NewTestRepo(t)
	first := tr.AddCommit("feat(ocr): detect tables")
	tr.AddCommit("Bad commit")

	repo, err := git.Open(tr.Path())
	require.NoError(t, err)

	flagRev = "HEAD~1"
	flagLast = true
	raw, err := readMessage(strings.NewReader(""), repo)
	require.NoError(t, err)
	require.Equal(t, "feat(ocr): detect tables", raw)

	flagRev = first[:7]
	raw, err = readMessage(strings.NewReader(""), repo)
	require.NoError(t, err)
	require.Equal(t, "feat(ocr): detect tables", raw)
}

func TestReadMessage_RevUnknown(t *testing.T) {
	resetFlags(t)
	repo := &git.MockRepository{
		CommitFromRevisionFunc: func(rev string) (git.Commit, error) {
			return git.Commit{}, errors.New("reference not found")
		},
	}
	flagRev = "nope"
	_, err := readMessage(strings.NewReader(""), repo)
	require.Error(t, err)
	require.Contains(t, err.Error(), "reading commit")
}

func TestReadMessage_RevWithoutRepository(t *testing.T) {
	resetFlags(t)
	flagRev = "HEAD"
	_, err := readMessage(strings.NewReader(""), nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "--rev")
}

func TestReadMessage_LastWithoutRepository(t *testing.T) {
	resetFlags(t)
	flagLast = true
	_, err := readMessage(strings.NewReader(""), nil)
	require.Error(t, err)
}

func TestReadMessage_Stdin(t *testing.T) {
	resetFlags(t)
	raw, err := readMessage(strings.NewReader("feat: piped\n"), nil)
	require.NoError(t, err)
	require.Equal(t, "feat: piped\n", raw)
}

func TestReadMessage_Empty(t *testing.T) {
	resetFlags(t)
	_, err := readMessage(strings.NewReader("# only a comment\n\n"), nil)
	require.ErrorIs(t, err, errNoInput)
}

func TestCheckOutputFormat(t *testing.T) {
	resetFlags(t)
	require.NoError(t, checkOutputFormat())
	flagOutput = "json"
	require.NoError(t, checkOutputFormat())
	flagOutput = "xml"
	require.Error(t, checkOutputFormat())
}

func TestLintRunE_Valid(t *testing.T) {
	resetFlags(t)
	flagMessage = "feat(crypto): add price model"
	cmd, out := newTestCmd("")

	require.NoError(t, lintRunE(cmd, nil))
	require.Empty(t, out.String())
}

func TestLintRunE_ValidVerbose(t *testing.T) {
	resetFlags(t)
	flagMessage = "feat(crypto): add price model"
	flagVerbose = true
	cmd, out := newTestCmd("")

	require.NoError(t, lintRunE(cmd, nil))
	require.Contains(t, out.String(), "found 0 problems, 0 warnings")
}

func TestLintRunE_Problems(t *testing.T) {
	resetFlags(t)
	cmd, out := newTestCmd("Feature: Add Model.")

	err := lintRunE(cmd, nil)
	require.ErrorIs(t, err, ErrProblemsFound)
	require.Contains(t, out.String(), "⧗   input: Feature: Add Model.")
	require.Contains(t, out.String(), "[type-enum]")
	require.Contains(t, out.String(), "Get help: "+config.DefaultHelpURL)
}

func TestLintRunE_JSON(t *testing.T) {
	resetFlags(t)
	flagOutput = "json"
	flagMessage = "feat(Crypto): add price model"
	cmd, out := newTestCmd("")

	require.ErrorIs(t, lintRunE(cmd, nil), ErrProblemsFound)

	var report lint.Report
	require.NoError(t, json.Unmarshal(out.Bytes(), &report))
	require.False(t, report.Valid)
	names := make([]string, len(report.Errors))
	for i, p := range report.Errors {
		names[i] = p.Name
	}
	require.Equal(t, []string{"scope-enum", "scope-case"}, names)
}

func TestLintRunE_StrictWarnings(t *testing.T) {
	resetFlags(t)
	path := filepath.Join(t.TempDir(), "policy.yml")
	require.NoError(t, os.WriteFile(path, []byte("rules:\n  header-max-length: [1, always, 10]\n"), 0o644))
	flagConfig = path
	flagMessage = "feat(crypto): add price model"

	cmd, _ := newTestCmd("")
	require.NoError(t, lintRunE(cmd, nil))

	flagStrict = true
	cmd, out := newTestCmd("")
	require.ErrorIs(t, lintRunE(cmd, nil), ErrProblemsFound)
	require.Contains(t, out.String(), "[header-max-length]")
}

func TestLintRunE_EditPositionalPath(t *testing.T) {
	resetFlags(t)
	path := filepath.Join(t.TempDir(), "MSG")
	require.NoError(t, os.WriteFile(path, []byte("fix(backend): handle nil\n"), 0o644))
	flagEdit = git.EditMessageFile

	cmd, _ := newTestCmd("")
	require.NoError(t, lintRunE(cmd, []string{path}))
	require.Equal(t, path, flagEdit)
}

func TestLintRunE_UnexpectedArgument(t *testing.T) {
	resetFlags(t)
	cmd, _ := newTestCmd("")
	err := lintRunE(cmd, []string{"stray"})
	require.Error(t, err)
	require.Contains(t, err.Error(), `unexpected argument "stray"`)
}

func TestLintRunE_Ignored(t *testing.T) {
	resetFlags(t)
	flagMessage = "Merge branch 'main' into feature/x"
	flagVerbose = true
	cmd, out := newTestCmd("")

	require.NoError(t, lintRunE(cmd, nil))
	require.Contains(t, out.String(), "ignored (matched MergeBranch)")
}

func TestLintRunE_ShowConfig(t *testing.T) {
	resetFlags(t)
	flagShowConfig = true
	cmd, out := newTestCmd("")

	require.NoError(t, lintRunE(cmd, nil))
	require.Contains(t, out.String(), "type-enum:")
	require.Contains(t, out.String(), "helpUrl:")
}

func TestLintRunE_ShowConfigJSON(t *testing.T) {
	resetFlags(t)
	flagShowConfig = true
	flagOutput = "json"
	cmd, out := newTestCmd("")

	require.NoError(t, lintRunE(cmd, nil))
	var doc map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
	require.Contains(t, doc, "rules")
}

func TestLintRunE_Rev(t *testing.T) {
	resetFlags(t)
	tr := testutil.NewTestRepo(t)
	tr.AddCommit("Feature: Add Model.")
	tr.AddCommit("feat(crypto): add price model")
	flagPath = tr.Path()

	flagRev = "HEAD"
	cmd, _ := newTestCmd("")
	require.NoError(t, lintRunE(cmd, nil))

	flagRev = "HEAD^"
	cmd, out := newTestCmd("")
	require.ErrorIs(t, lintRunE(cmd, nil), ErrProblemsFound)
	require.Contains(t, out.String(), "⧗   input: Feature: Add Model.")
}
