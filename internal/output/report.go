package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/MyCarrier-DevOps/go-commitlint/internal/lint"
)

const (
	inputPrefix   = "⧗"
	errorPrefix   = "✖"
	warningPrefix = "⚠"
	successPrefix = "✔"
	helpPrefix    = "ⓘ"
)

// ReportOptions controls text report rendering.
type ReportOptions struct {
	HelpURL string
	Verbose bool
}

// WriteReport writes a human-readable lint report. A clean report prints
// nothing unless Verbose is set.
func WriteReport(w io.Writer, report lint.Report, opts ReportOptions) error {
	hasProblems := len(report.Errors) > 0 || len(report.Warnings) > 0
	if !hasProblems && !opts.Verbose {
		return nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s   input: %s\n", inputPrefix, firstLine(report.Input))

	if report.Ignored {
		fmt.Fprintf(&sb, "%s   ignored (matched %s)\n", successPrefix, report.IgnoredBy)
		_, err := io.WriteString(w, sb.String())
		return err
	}

	for _, p := range report.Errors {
		fmt.Fprintf(&sb, "%s   %s [%s]\n", errorPrefix, p.Message, p.Name)
	}
	for _, p := range report.Warnings {
		fmt.Fprintf(&sb, "%s   %s [%s]\n", warningPrefix, p.Message, p.Name)
	}
	if hasProblems {
		sb.WriteString("\n")
	}

	summary := successPrefix
	switch {
	case len(report.Errors) > 0:
		summary = errorPrefix
	case len(report.Warnings) > 0:
		summary = warningPrefix
	}
	fmt.Fprintf(&sb, "%s   found %d problems, %d warnings\n", summary, len(report.Errors), len(report.Warnings))

	if hasProblems && opts.HelpURL != "" {
		fmt.Fprintf(&sb, "%s   Get help: %s\n", helpPrefix, opts.HelpURL)
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// FormatReport returns the text report as a string.
func FormatReport(report lint.Report, opts ReportOptions) string {
	var sb strings.Builder
	_ = WriteReport(&sb, report, opts)
	return sb.String()
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
