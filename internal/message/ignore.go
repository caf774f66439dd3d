package message

import "regexp"

// IgnoreRule is a named pattern for messages that are exempt from linting.
type IgnoreRule struct {
	Name    string
	Pattern *regexp.Regexp
}

// defaultIgnores are the built-in patterns for messages produced by git
// tooling rather than written by hand.
var defaultIgnores = []IgnoreRule{
	{
		Name:    "MergePullRequest",
		Pattern: regexp.MustCompile(`^Merge pull request`),
	},
	{
		Name:    "RemoteTracking",
		Pattern: regexp.MustCompile(`^Merge remote-tracking branch`),
	},
	{
		Name:    "MergeBranch",
		Pattern: regexp.MustCompile(`^Merge (?:branch |.*? into )`),
	},
	{
		Name:    "MergeTag",
		Pattern: regexp.MustCompile(`^Merge tag `),
	},
	{
		Name:    "Merged",
		Pattern: regexp.MustCompile(`^Merged (?:.*?(?:in|into) .*|PR .*: .*)`),
	},
	{
		Name:    "AutomaticMerge",
		Pattern: regexp.MustCompile(`^(?:Automatic merge|Auto-merged .*? into .*)`),
	},
	{
		Name:    "Revert",
		Pattern: regexp.MustCompile(`^[Rr]evert `),
	},
	{
		Name:    "Fixup",
		Pattern: regexp.MustCompile(`^(?:amend|fixup|squash)!`),
	},
}

// DefaultIgnores returns the built-in ignore patterns.
func DefaultIgnores() []IgnoreRule {
	out := make([]IgnoreRule, len(defaultIgnores))
	copy(out, defaultIgnores)
	return out
}

// IsIgnored reports whether raw matches an ignore pattern and returns the
// name of the matching rule. Custom patterns are tried first, then the
// built-in ones when useDefaults is set.
func IsIgnored(raw string, custom []*regexp.Regexp, useDefaults bool) (string, bool) {
	msg := Normalize(raw)

	for _, re := range custom {
		if re.MatchString(msg) {
			return re.String(), true
		}
	}

	if !useDefaults {
		return "", false
	}
	for _, rule := range defaultIgnores {
		if rule.Pattern.MatchString(msg) {
			return rule.Name, true
		}
	}
	return "", false
}
