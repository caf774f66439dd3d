package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/MyCarrier-DevOps/go-commitlint/internal/policy"

	"github.com/hashicorp/go-multierror"
)

// ErrInvalidConfig is wrapped by every load-time validation failure.
var ErrInvalidConfig = errors.New("invalid commit policy")

// Validate checks a built descriptor and reports every problem found.
// The returned error wraps ErrInvalidConfig and is a *multierror.Error.
func Validate(cfg *Config) error {
	var errs *multierror.Error
	errs = multierror.Append(errs, requiredKeys(cfg)...)
	errs = multierror.Append(errs, validateRules(cfg)...)
	errs = multierror.Append(errs, validateEnum(cfg, policy.TypeEnum)...)
	errs = multierror.Append(errs, validateEnum(cfg, policy.ScopeEnum)...)
	errs = multierror.Append(errs, validatePrompt(cfg)...)
	if _, err := cfg.IgnorePatterns(); err != nil {
		errs = multierror.Append(errs, err)
	}
	return wrapInvalid(errs)
}

// validateDeclared checks the keys a descriptor must declare itself.
func validateDeclared(cfg *Config) error {
	var errs *multierror.Error
	errs = multierror.Append(errs, requiredKeys(cfg)...)
	return wrapInvalid(errs)
}

func wrapInvalid(errs *multierror.Error) error {
	if errs.ErrorOrNil() == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errs)
}

func requiredKeys(cfg *Config) []error {
	var errs []error
	if len(cfg.Extends) == 0 {
		errs = append(errs, errors.New("missing required key \"extends\""))
	}
	if len(cfg.Rules) == 0 {
		errs = append(errs, errors.New("missing required key \"rules\""))
	}
	if cfg.HelpURL == nil || *cfg.HelpURL == "" {
		errs = append(errs, errors.New("missing required key \"helpUrl\""))
	}
	if cfg.Prompt == nil || len(cfg.Prompt.Questions) == 0 {
		errs = append(errs, errors.New("missing required key \"prompt.questions\""))
	}
	return errs
}

func validateRules(cfg *Config) []error {
	var errs []error
	for _, name := range sortedRuleNames(cfg) {
		r := cfg.Rules[name]
		spec, ok := policy.Lookup(name)
		if !ok {
			errs = append(errs, fmt.Errorf("unknown rule %q", name))
			continue
		}
		if r.Level < policy.SeverityDisabled || r.Level > policy.SeverityError {
			errs = append(errs, fmt.Errorf("rule %q has invalid severity %d", name, int(r.Level)))
		}
		if r.When != policy.Always && r.When != policy.Never {
			errs = append(errs, fmt.Errorf("rule %q has invalid applicability %d", name, int(r.When)))
		}
		if err := spec.CheckValue(r); err != nil {
			errs = append(errs, err)
		}
		if spec.Value == policy.ValueInt && r.When == policy.Never {
			errs = append(errs, fmt.Errorf("rule %q is a length limit and only supports %q", name, policy.Always))
		}
	}
	return errs
}

// validateEnum checks that an enum rule lists unique, lower-case,
// non-empty tokens.
func validateEnum(cfg *Config, name string) []error {
	r, ok := cfg.Rules[name]
	if !ok {
		return nil
	}
	tokens, ok := r.Value.([]string)
	if !ok {
		return nil
	}

	var errs []error
	seen := make(map[string]bool, len(tokens))
	for _, tok := range tokens {
		switch {
		case tok == "":
			errs = append(errs, fmt.Errorf("%s contains an empty token", name))
		case tok != strings.ToLower(tok):
			errs = append(errs, fmt.Errorf("%s token %q is not lower-case", name, tok))
		}
		if seen[tok] {
			errs = append(errs, fmt.Errorf("%s contains duplicate token %q", name, tok))
		}
		seen[tok] = true
	}
	return errs
}

// validatePrompt checks question names and that every prompt type option
// refers to a declared commit type.
func validatePrompt(cfg *Config) []error {
	if cfg.Prompt == nil {
		return nil
	}

	var errs []error
	names := make([]string, 0, len(cfg.Prompt.Questions))
	for name := range cfg.Prompt.Questions {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if !isPromptField(name) {
			errs = append(errs, fmt.Errorf("unknown prompt question %q", name))
		}
	}

	typeRule, ok := cfg.Rules[policy.TypeEnum]
	if !ok || typeRule.When != policy.Always {
		return errs
	}
	declared := make(map[string]bool)
	for _, t := range cfg.TypeEnum() {
		declared[t] = true
	}
	for _, t := range cfg.Prompt.OrderedTypes(nil) {
		if !declared[t] {
			errs = append(errs, fmt.Errorf("prompt type %q is not declared in %s", t, policy.TypeEnum))
		}
	}
	return errs
}

func sortedRuleNames(cfg *Config) []string {
	names := make([]string, 0, len(cfg.Rules))
	for name := range cfg.Rules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
