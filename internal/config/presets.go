package config

import (
	"sort"

	"github.com/MyCarrier-DevOps/go-commitlint/internal/policy"
)

// presets maps base rule set names to constructors. Constructors return fresh
// maps so callers can merge into them.
var presets = map[string]func() map[string]policy.Rule{
	ConventionalPreset: conventionalRules,
	"conventional":     conventionalRules,
}

// PresetNames returns the names of the known base rule sets, sorted.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// conventionalRules is the conventional-commits base rule set.
func conventionalRules() map[string]policy.Rule {
	return map[string]policy.Rule{
		policy.BodyLeadingBlank:    warningRule(policy.Always, nil),
		policy.BodyMaxLineLength:   errorRule(policy.Always, 100),
		policy.FooterLeadingBlank:  warningRule(policy.Always, nil),
		policy.FooterMaxLineLength: errorRule(policy.Always, 100),
		policy.HeaderMaxLength:     errorRule(policy.Always, 100),
		policy.HeaderTrim:          errorRule(policy.Always, nil),
		policy.SubjectCase:         errorRule(policy.Never, []string{"sentence-case", "start-case", "pascal-case", "upper-case"}),
		policy.SubjectEmpty:        errorRule(policy.Never, nil),
		policy.SubjectFullStop:     errorRule(policy.Never, "."),
		policy.TypeCase:            errorRule(policy.Always, "lower-case"),
		policy.TypeEmpty:           errorRule(policy.Never, nil),
		policy.TypeEnum: errorRule(policy.Always, []string{
			"build", "chore", "ci", "docs", "feat", "fix",
			"perf", "refactor", "revert", "style", "test",
		}),
	}
}
