package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MyCarrier-DevOps/go-commitlint/internal/config"
	"github.com/MyCarrier-DevOps/go-commitlint/internal/git"
	"github.com/MyCarrier-DevOps/go-commitlint/internal/lint"
	"github.com/MyCarrier-DevOps/go-commitlint/internal/message"
	"github.com/MyCarrier-DevOps/go-commitlint/internal/output"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// ErrProblemsFound is returned when the linted message fails the policy.
// The report has already been written when it is returned.
var ErrProblemsFound = errors.New("commit message does not satisfy the commit policy")

var errNoInput = errors.New("no commit message to lint: use --message, --edit, --rev, --last or pipe a message on stdin")

func lintRunE(cmd *cobra.Command, args []string) error {
	if err := checkOutputFormat(); err != nil {
		return err
	}

	// --edit takes an optional value, so "--edit path" leaves the path as
	// a positional argument.
	if len(args) > 0 {
		if flagEdit == "" {
			return fmt.Errorf("unexpected argument %q", args[0])
		}
		flagEdit = args[0]
	}

	// 1. Locate the repository, if any.
	repo := openRepository()

	// 2. Load the commit policy.
	cfg, err := loadConfig(workDir(repo))
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	// 3. Show config mode: print and exit.
	if flagShowConfig {
		return showConfig(cmd.OutOrStdout(), cfg)
	}

	// 4. Read the message.
	raw, err := readMessage(cmd.InOrStdin(), repo)
	if err != nil {
		return err
	}

	// 5. Lint.
	linter, err := lint.New(cfg)
	if err != nil {
		return err
	}
	report := linter.Lint(raw)

	// 6. Report.
	if err := writeReport(cmd.OutOrStdout(), report, cfg); err != nil {
		return err
	}
	if report.Failed(flagStrict) {
		return ErrProblemsFound
	}
	return nil
}

// openRepository opens the repository containing --path. It returns nil
// when there is none; only --edit and --last need one.
func openRepository() git.Repository {
	repo, err := git.Open(flagPath)
	if err != nil {
		log.WithError(err).Debug("no git repository found")
		return nil
	}
	return repo
}

func workDir(repo git.Repository) string {
	if repo != nil {
		return repo.WorkingDirectory()
	}
	return flagPath
}

// loadConfig loads the descriptor named by --config, or the one found in
// dir, honoring --no-defaults.
func loadConfig(dir string) (*config.Config, error) {
	return config.Load(dir, flagConfig, flagNoDefaults)
}

// readMessage picks the message source: --message, --edit, --rev, --last,
// then stdin.
func readMessage(stdin io.Reader, repo git.Repository) (string, error) {
	var raw string
	switch {
	case flagMessage != "":
		raw = flagMessage
	case flagEdit != "":
		path := flagEdit
		if path == git.EditMessageFile {
			if repo == nil {
				return "", fmt.Errorf("--edit: no git repository found at %s", flagPath)
			}
			path = repo.EditMessagePath()
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("reading commit message: %w", err)
		}
		raw = string(data)
	case flagRev != "":
		if repo == nil {
			return "", fmt.Errorf("--rev: no git repository found at %s", flagPath)
		}
		commit, err := repo.CommitFromRevision(flagRev)
		if err != nil {
			return "", fmt.Errorf("reading commit: %w", err)
		}
		log.WithField("commit", commit.ShortSha()).Debug("linting commit")
		raw = commit.Message
	case flagLast:
		if repo == nil {
			return "", fmt.Errorf("--last: no git repository found at %s", flagPath)
		}
		commit, err := repo.HeadCommit()
		if err != nil {
			return "", fmt.Errorf("reading last commit: %w", err)
		}
		log.WithField("commit", commit.ShortSha()).Debug("linting last commit")
		raw = commit.Message
	default:
		if isTerminal(stdin) {
			return "", errNoInput
		}
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		raw = string(data)
	}

	if strings.TrimSpace(message.Normalize(raw)) == "" {
		return "", errNoInput
	}
	return raw, nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

func checkOutputFormat() error {
	switch flagOutput {
	case "text", "json", "":
		return nil
	default:
		return fmt.Errorf("unknown output format %q", flagOutput)
	}
}

// showConfig prints the effective configuration as YAML, or JSON with
// --output json.
func showConfig(w io.Writer, cfg *config.Config) error {
	if flagOutput == "json" {
		return output.WriteJSON(w, cfg)
	}
	return output.WriteYAML(w, cfg)
}

// writeReport writes the lint report in the requested format.
func writeReport(w io.Writer, report lint.Report, cfg *config.Config) error {
	if flagOutput == "json" {
		return output.WriteJSON(w, report)
	}
	return output.WriteReport(w, report, output.ReportOptions{
		HelpURL: cfg.HelpURLOrEmpty(),
		Verbose: flagVerbose,
	})
}
