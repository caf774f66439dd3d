// Package lint evaluates commit messages against a commit policy.
package lint

import (
	"regexp"

	"github.com/MyCarrier-DevOps/go-commitlint/internal/config"
	"github.com/MyCarrier-DevOps/go-commitlint/internal/message"
	"github.com/MyCarrier-DevOps/go-commitlint/internal/policy"

	log "github.com/sirupsen/logrus"
)

// Problem is a single rule violation.
type Problem struct {
	Level   policy.Severity `json:"level"`
	Valid   bool            `json:"valid"`
	Name    string          `json:"name"`
	Message string          `json:"message"`
}

// Report is the outcome of linting one message.
type Report struct {
	Valid     bool      `json:"valid"`
	Errors    []Problem `json:"errors"`
	Warnings  []Problem `json:"warnings"`
	Input     string    `json:"input"`
	Ignored   bool      `json:"ignored,omitempty"`
	IgnoredBy string    `json:"ignoredBy,omitempty"`
}

// Failed reports whether the report should fail a check. With strict set,
// warnings fail as well.
func (r Report) Failed(strict bool) bool {
	if len(r.Errors) > 0 {
		return true
	}
	return strict && len(r.Warnings) > 0
}

// Linter applies the enabled rules of a descriptor.
type Linter struct {
	cfg     *config.Config
	enabled []string
	ignores []*regexp.Regexp
}

// New creates a Linter for a built descriptor.
func New(cfg *config.Config) (*Linter, error) {
	ignores, err := cfg.IgnorePatterns()
	if err != nil {
		return nil, err
	}
	return &Linter{
		cfg:     cfg,
		enabled: cfg.EnabledRules(),
		ignores: ignores,
	}, nil
}

// Lint evaluates raw against every enabled rule in catalogue order.
func (l *Linter) Lint(raw string) Report {
	report := Report{
		Valid:    true,
		Errors:   []Problem{},
		Warnings: []Problem{},
		Input:    message.Normalize(raw),
	}

	if name, ok := message.IsIgnored(raw, l.ignores, l.cfg.UseDefaultIgnores()); ok {
		log.WithField("pattern", name).Info("commit message ignored")
		report.Ignored = true
		report.IgnoredBy = name
		return report
	}

	commit := message.Parse(raw)
	for _, name := range l.enabled {
		eval, ok := rules[name]
		if !ok {
			continue
		}
		rule := l.cfg.Rules[name]
		valid, msg := eval(commit, rule)
		log.WithFields(log.Fields{
			"rule":  name,
			"valid": valid,
		}).Debug("rule evaluated")
		if valid {
			continue
		}

		p := Problem{Level: rule.Level, Valid: false, Name: name, Message: msg}
		switch rule.Level {
		case policy.SeverityError:
			report.Errors = append(report.Errors, p)
		case policy.SeverityWarning:
			report.Warnings = append(report.Warnings, p)
		}
	}

	report.Valid = len(report.Errors) == 0
	return report
}
