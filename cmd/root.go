package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/MyCarrier-DevOps/go-commitlint/internal/git"

	"github.com/spf13/cobra"
)

// Global flags shared across commands.
var (
	flagPath       string
	flagConfig     string
	flagNoDefaults bool
	flagOutput     string
	flagVerbosity  string
)

// Lint flags.
var (
	flagMessage    string
	flagEdit       string
	flagRev        string
	flagLast       bool
	flagStrict     bool
	flagVerbose    bool
	flagShowConfig bool
)

// rootCmd is the top-level command for commitlint.
var rootCmd = &cobra.Command{
	Use:   "commitlint",
	Short: "Lint commit messages against a commit policy",
	Long:  "commitlint checks a commit message against the repository's commit policy: allowed types and scopes, case, length and layout rules.",
	Args:  cobra.MaximumNArgs(1),
	// Default action is lint. Lint problems are reported by the command
	// itself, so cobra stays silent.
	RunE:              lintRunE,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error { return configureLogging(cmd.ErrOrStderr()) },
	SilenceErrors:     true,
	SilenceUsage:      true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagPath, "path", "p", ".", "path inside the git repository")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file (default: auto-detect)")
	rootCmd.PersistentFlags().BoolVar(&flagNoDefaults, "no-defaults", false, "do not layer the config file over the built-in policy")
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", "text", "output format: text or json")
	rootCmd.PersistentFlags().StringVar(&flagVerbosity, "verbosity", "info", "log verbosity: quiet, info, debug")

	rootCmd.Flags().StringVarP(&flagMessage, "message", "m", "", "commit message to lint")
	rootCmd.Flags().StringVarP(&flagEdit, "edit", "e", "", "read the message from a file (default: the repository's "+git.EditMessageFile+")")
	rootCmd.Flags().Lookup("edit").NoOptDefVal = git.EditMessageFile
	rootCmd.Flags().StringVar(&flagRev, "rev", "", "lint the message of one commit: a SHA, branch, tag or expression like HEAD~2")
	rootCmd.Flags().BoolVar(&flagLast, "last", false, "lint the message of the HEAD commit")
	rootCmd.Flags().BoolVar(&flagStrict, "strict", false, "treat warnings as failures")
	rootCmd.Flags().BoolVar(&flagVerbose, "verbose", false, "print a report for valid messages too")
	rootCmd.Flags().BoolVar(&flagShowConfig, "show-config", false, "display the effective commit policy and exit")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, ErrProblemsFound) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
