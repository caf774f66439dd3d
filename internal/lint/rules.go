package lint

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/MyCarrier-DevOps/go-commitlint/internal/message"
	"github.com/MyCarrier-DevOps/go-commitlint/internal/policy"
)

// ruleFunc evaluates one rule against a parsed commit. It returns whether
// the commit satisfies the rule and, when it does not, the problem message.
type ruleFunc func(c message.Commit, r policy.Rule) (bool, string)

// rules maps every catalogue rule to its evaluator.
var rules = map[string]ruleFunc{
	policy.TypeEnum:            enumRule("type", typeValues),
	policy.TypeCase:            caseRule("type", typeValues),
	policy.TypeEmpty:           emptyRule("type", func(c message.Commit) string { return c.Type }),
	policy.TypeMaxLength:       maxLengthRule("type", func(c message.Commit) string { return c.Type }),
	policy.ScopeEnum:           enumRule("scope", message.Commit.Scopes),
	policy.ScopeCase:           caseRule("scope", message.Commit.Scopes),
	policy.ScopeEmpty:          emptyRule("scope", func(c message.Commit) string { return c.Scope }),
	policy.ScopeMaxLength:      maxLengthRule("scope", func(c message.Commit) string { return c.Scope }),
	policy.SubjectCase:         caseRule("subject", subjectValues),
	policy.SubjectEmpty:        emptyRule("subject", func(c message.Commit) string { return c.Subject }),
	policy.SubjectFullStop:     subjectFullStop,
	policy.SubjectMaxLength:    maxLengthRule("subject", func(c message.Commit) string { return c.Subject }),
	policy.SubjectMinLength:    minLengthRule("subject", func(c message.Commit) string { return c.Subject }),
	policy.HeaderMaxLength:     headerMaxLength,
	policy.HeaderMinLength:     minLengthRule("header", func(c message.Commit) string { return c.Header }),
	policy.HeaderTrim:          headerTrim,
	policy.BodyLeadingBlank:    leadingBlankRule("body", message.Commit.BodyLeadingBlank, func(c message.Commit) string { return c.Body }),
	policy.BodyEmpty:           emptyRule("body", func(c message.Commit) string { return c.Body }),
	policy.BodyMaxLineLength:   maxLineLengthRule("body", message.Commit.BodyLines),
	policy.FooterLeadingBlank:  leadingBlankRule("footer", message.Commit.FooterLeadingBlank, func(c message.Commit) string { return c.Footer }),
	policy.FooterEmpty:         emptyRule("footer", func(c message.Commit) string { return c.Footer }),
	policy.FooterMaxLineLength: maxLineLengthRule("footer", message.Commit.FooterLines),
	policy.ReferencesEmpty:     referencesEmpty,
}

func typeValues(c message.Commit) []string {
	if c.Type == "" {
		return nil
	}
	return []string{c.Type}
}

var letterStartRe = regexp.MustCompile(`^[A-Za-z]`)

// subjectValues skips subjects that do not start with a letter; their case
// is not meaningful.
func subjectValues(c message.Commit) []string {
	if !letterStartRe.MatchString(c.Subject) {
		return nil
	}
	return []string{c.Subject}
}

// mayOrMust renders the verb for presence rules: "must" or "may not".
func mayOrMust(when policy.Applicability) string {
	if when.Negated() {
		return "may not"
	}
	return "must"
}

func applies(when policy.Applicability, matched bool) bool {
	if when.Negated() {
		return !matched
	}
	return matched
}

func enumRule(field string, values func(message.Commit) []string) ruleFunc {
	return func(c message.Commit, r policy.Rule) (bool, string) {
		vals := values(c)
		if len(vals) == 0 {
			return true, ""
		}
		allowed, _ := r.Strings()
		set := make(map[string]bool, len(allowed))
		for _, a := range allowed {
			set[a] = true
		}

		ok := true
		for _, v := range vals {
			if !applies(r.When, set[v]) {
				ok = false
				break
			}
		}
		return ok, fmt.Sprintf("%s %s be one of [%s]", field, r.When.Must(), strings.Join(allowed, ", "))
	}
}

func caseRule(field string, values func(message.Commit) []string) ruleFunc {
	return func(c message.Commit, r policy.Rule) (bool, string) {
		vals := values(c)
		if len(vals) == 0 {
			return true, ""
		}
		targets, _ := r.Cases()

		matched := true
		for _, v := range vals {
			if !matchesAny(v, targets) {
				matched = false
				break
			}
		}

		names := make([]string, len(targets))
		for i, t := range targets {
			names[i] = t.String()
		}
		return applies(r.When, matched), fmt.Sprintf("%s %s be %s", field, r.When.Must(), strings.Join(names, ", "))
	}
}

func emptyRule(field string, value func(message.Commit) string) ruleFunc {
	return func(c message.Commit, r policy.Rule) (bool, string) {
		empty := strings.TrimSpace(value(c)) == ""
		return applies(r.When, empty), fmt.Sprintf("%s %s be empty", field, mayOrMust(r.When))
	}
}

func maxLengthRule(field string, value func(message.Commit) string) ruleFunc {
	return func(c message.Commit, r policy.Rule) (bool, string) {
		limit, _ := r.Int()
		v := value(c)
		if v == "" {
			return true, ""
		}
		return utf8.RuneCountInString(v) <= limit, fmt.Sprintf("%s must not be longer than %d characters", field, limit)
	}
}

func minLengthRule(field string, value func(message.Commit) string) ruleFunc {
	return func(c message.Commit, r policy.Rule) (bool, string) {
		limit, _ := r.Int()
		v := value(c)
		if v == "" {
			return true, ""
		}
		return utf8.RuneCountInString(v) >= limit, fmt.Sprintf("%s must not be shorter than %d characters", field, limit)
	}
}

func maxLineLengthRule(field string, lines func(message.Commit) []string) ruleFunc {
	return func(c message.Commit, r policy.Rule) (bool, string) {
		limit, _ := r.Int()
		for _, line := range lines(c) {
			if utf8.RuneCountInString(line) > limit {
				return false, fmt.Sprintf("%s's lines must not be longer than %d characters", field, limit)
			}
		}
		return true, ""
	}
}

func leadingBlankRule(field string, leading func(message.Commit) bool, section func(message.Commit) string) ruleFunc {
	return func(c message.Commit, r policy.Rule) (bool, string) {
		if section(c) == "" {
			return true, ""
		}
		return applies(r.When, leading(c)), fmt.Sprintf("%s %s have leading blank line", field, mayOrMust(r.When))
	}
}

func headerMaxLength(c message.Commit, r policy.Rule) (bool, string) {
	limit, _ := r.Int()
	n := utf8.RuneCountInString(c.Header)
	return n <= limit, fmt.Sprintf("header must not be longer than %d characters, current length is %d", limit, n)
}

func headerTrim(c message.Commit, _ policy.Rule) (bool, string) {
	if c.Header == "" {
		return true, ""
	}
	leading := strings.TrimLeft(c.Header, " \t") != c.Header
	trailing := strings.TrimRight(c.Header, " \t") != c.Header
	switch {
	case leading && trailing:
		return false, "header must not be surrounded by whitespace"
	case leading:
		return false, "header must not start with whitespace"
	case trailing:
		return false, "header must not end with whitespace"
	}
	return true, ""
}

func subjectFullStop(c message.Commit, r policy.Rule) (bool, string) {
	if c.Subject == "" {
		return true, ""
	}
	stop, ok := r.Text()
	if !ok || stop == "" {
		stop = "."
	}
	has := strings.HasSuffix(c.Subject, stop)
	return applies(r.When, has), fmt.Sprintf("subject %s end with full stop", mayOrMust(r.When))
}

func referencesEmpty(c message.Commit, r policy.Rule) (bool, string) {
	return applies(r.When, len(c.References) == 0), fmt.Sprintf("references %s be empty", mayOrMust(r.When))
}
