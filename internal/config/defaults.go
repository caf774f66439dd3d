package config

import "github.com/MyCarrier-DevOps/go-commitlint/internal/policy"

// ConventionalPreset is the base rule set the built-in policy extends.
const ConventionalPreset = "@commitlint/config-conventional"

// DefaultHelpURL is printed after a failing report.
const DefaultHelpURL = "https://github.com/conventional-changelog/commitlint/#what-is-commitlint"

// CreateDefaultConfiguration returns the built-in project commit policy.
// Each call returns fresh values that callers may modify freely.
func CreateDefaultConfiguration() *Config {
	return &Config{
		Extends: StringList{ConventionalPreset},
		Rules:   defaultRules(),
		HelpURL: stringPtr(DefaultHelpURL),
		Prompt:  defaultPrompt(),
	}
}

func defaultRules() map[string]policy.Rule {
	return map[string]policy.Rule{
		policy.TypeEnum: errorRule(policy.Always, []string{
			"build",    // build system or external dependencies
			"chore",    // maintenance, no production code change
			"ci",       // CI configuration files and scripts
			"docs",     // documentation only
			"feat",     // new feature
			"fix",      // bug fix
			"perf",     // performance improvement
			"refactor", // neither fixes a bug nor adds a feature
			"revert",   // reverts a previous commit
			"style",    // formatting, no change in meaning
			"test",     // missing or corrected tests
			"deps",     // dependency updates
		}),
		policy.ScopeEnum: errorRule(policy.Always, []string{
			"crypto",    // AI crypto price predictor
			"ocr",       // document digitization OCR system
			"analytics", // marketing analytics tool
			"backend",   // NocoBase backend
			"global",    // cross-project changes
			"deps",
			"ci",
			"docs",
			"security",
		}),
		policy.ScopeCase:          errorRule(policy.Always, "lower-case"),
		policy.SubjectCase:        errorRule(policy.Never, []string{"sentence-case", "start-case", "pascal-case", "upper-case"}),
		policy.SubjectEmpty:       errorRule(policy.Never, nil),
		policy.SubjectFullStop:    errorRule(policy.Never, "."),
		policy.TypeCase:           errorRule(policy.Always, "lower-case"),
		policy.TypeEmpty:          errorRule(policy.Never, nil),
		policy.HeaderMaxLength:    errorRule(policy.Always, 72),
		policy.BodyLeadingBlank:   errorRule(policy.Always, nil),
		policy.FooterLeadingBlank: errorRule(policy.Always, nil),
	}
}

func defaultPrompt() *PromptConfig {
	return &PromptConfig{
		Questions: map[string]*Question{
			FieldType: {
				Description: "Select the type of change you are committing",
				Enum: map[string]*TypeOption{
					"feat":     {Description: "A new feature", Title: "Features", Emoji: "✨"},
					"fix":      {Description: "A bug fix", Title: "Bug Fixes", Emoji: "🐛"},
					"docs":     {Description: "Documentation only changes", Title: "Documentation", Emoji: "📚"},
					"style":    {Description: "Changes that do not affect the meaning of the code", Title: "Styles", Emoji: "💎"},
					"refactor": {Description: "A code change that neither fixes a bug nor adds a feature", Title: "Code Refactoring", Emoji: "📦"},
					"perf":     {Description: "A code change that improves performance", Title: "Performance Improvements", Emoji: "🚀"},
					"test":     {Description: "Adding missing tests or correcting existing tests", Title: "Tests", Emoji: "🚨"},
					"build":    {Description: "Changes that affect the build system or external dependencies", Title: "Builds", Emoji: "🛠"},
					"ci":       {Description: "Changes to CI configuration files and scripts", Title: "Continuous Integration", Emoji: "⚙️"},
					"chore":    {Description: "Other changes that do not modify src or test files", Title: "Chores", Emoji: "♻️"},
					"revert":   {Description: "Reverts a previous commit", Title: "Reverts", Emoji: "🗑"},
					"deps":     {Description: "Dependencies updates", Title: "Dependencies", Emoji: "📦"},
				},
			},
			FieldScope:           {Description: "What is the scope of this change (e.g. crypto, ocr, analytics)"},
			FieldSubject:         {Description: "Write a short, imperative tense description of the change"},
			FieldBody:            {Description: "Provide a longer description of the change"},
			FieldIsBreaking:      {Description: "Are there any breaking changes?"},
			FieldBreakingBody:    {Description: "A BREAKING CHANGE commit requires a body. Please enter a longer description of the commit itself"},
			FieldBreaking:        {Description: "Describe the breaking changes"},
			FieldIsIssueAffected: {Description: "Does this change affect any open issues?"},
			FieldIssuesBody:      {Description: "If issues are closed, the commit requires a body. Please enter a longer description of the commit itself"},
			FieldIssues:          {Description: `Add issue references (e.g. "fix #123", "re #123".)`},
		},
	}
}
