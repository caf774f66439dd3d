// Package policy provides the rule vocabulary shared by the commit policy
// descriptor and the rule evaluator: severities, applicability, case styles,
// rule tuples and the catalogue of known rules.
package policy

import (
	"fmt"
	"strings"
)

// Severity is the level a rule violation is reported at.
type Severity int

const (
	SeverityDisabled Severity = iota
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityDisabled:
		return "disabled"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// ParseSeverity parses a severity from its numeric or named form,
// case-insensitively.
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "0", "off", "disabled":
		return SeverityDisabled, nil
	case "1", "warn", "warning":
		return SeverityWarning, nil
	case "2", "error":
		return SeverityError, nil
	default:
		return 0, fmt.Errorf("unknown severity %q", s)
	}
}

// Applicability selects whether a rule condition must hold or must not hold.
type Applicability int

const (
	Always Applicability = iota
	Never
)

func (a Applicability) String() string {
	switch a {
	case Always:
		return "always"
	case Never:
		return "never"
	default:
		return "unknown"
	}
}

// Must returns the modal phrase used in violation messages.
func (a Applicability) Must() string {
	if a == Never {
		return "must not"
	}
	return "must"
}

// Negated reports whether the rule condition is inverted.
func (a Applicability) Negated() bool {
	return a == Never
}

// ParseApplicability parses "always" or "never", case-insensitively.
func ParseApplicability(s string) (Applicability, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "always":
		return Always, nil
	case "never":
		return Never, nil
	default:
		return 0, fmt.Errorf("unknown applicability %q", s)
	}
}

// Case is a text case style a subject, type or scope can be checked against.
type Case int

const (
	CaseLower Case = iota
	CaseUpper
	CaseCamel
	CaseKebab
	CasePascal
	CaseSentence
	CaseSnake
	CaseStart
)

func (c Case) String() string {
	switch c {
	case CaseLower:
		return "lower-case"
	case CaseUpper:
		return "upper-case"
	case CaseCamel:
		return "camel-case"
	case CaseKebab:
		return "kebab-case"
	case CasePascal:
		return "pascal-case"
	case CaseSentence:
		return "sentence-case"
	case CaseSnake:
		return "snake-case"
	case CaseStart:
		return "start-case"
	default:
		return "unknown"
	}
}

// ParseCase parses a case style name. The unhyphenated aliases accepted by
// commitlint ("lowercase", "uppercase", "sentencecase") are recognized too.
func ParseCase(s string) (Case, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "lower-case", "lowercase":
		return CaseLower, nil
	case "upper-case", "uppercase":
		return CaseUpper, nil
	case "camel-case":
		return CaseCamel, nil
	case "kebab-case":
		return CaseKebab, nil
	case "pascal-case":
		return CasePascal, nil
	case "sentence-case", "sentencecase":
		return CaseSentence, nil
	case "snake-case":
		return CaseSnake, nil
	case "start-case":
		return CaseStart, nil
	default:
		return 0, fmt.Errorf("unknown case %q", s)
	}
}
