// Package config provides the commit policy descriptor: its types, the
// built-in project policy, base rule sets, multi-format loading, layered
// building and load-time validation.
package config

import "github.com/MyCarrier-DevOps/go-commitlint/internal/policy"

// Config is the commit policy descriptor. Optional scalar fields are
// pointers to support merge semantics during configuration building.
type Config struct {
	Extends        StringList             `yaml:"extends,omitempty" json:"extends,omitempty"`
	Rules          map[string]policy.Rule `yaml:"rules,omitempty" json:"rules,omitempty"`
	HelpURL        *string                `yaml:"helpUrl,omitempty" json:"helpUrl,omitempty"`
	DefaultIgnores *bool                  `yaml:"defaultIgnores,omitempty" json:"defaultIgnores,omitempty"`
	Ignores        StringList             `yaml:"ignores,omitempty" json:"ignores,omitempty"`
	Prompt         *PromptConfig          `yaml:"prompt,omitempty" json:"prompt,omitempty"`
}

// Rule returns the named rule and whether it is configured.
func (cfg *Config) Rule(name string) (policy.Rule, bool) {
	r, ok := cfg.Rules[name]
	return r, ok
}

// TypeEnum returns the allowed commit types in declaration order.
func (cfg *Config) TypeEnum() []string {
	return cfg.enum(policy.TypeEnum)
}

// ScopeEnum returns the allowed scopes in declaration order.
func (cfg *Config) ScopeEnum() []string {
	return cfg.enum(policy.ScopeEnum)
}

func (cfg *Config) enum(name string) []string {
	r, ok := cfg.Rules[name]
	if !ok {
		return nil
	}
	values, _ := r.Value.([]string)
	return values
}

// HelpURLOrEmpty returns the help URL or an empty string when unset.
func (cfg *Config) HelpURLOrEmpty() string {
	if cfg.HelpURL == nil {
		return ""
	}
	return *cfg.HelpURL
}

// UseDefaultIgnores reports whether the built-in ignore patterns apply.
// Defaults to true when unset.
func (cfg *Config) UseDefaultIgnores() bool {
	if cfg.DefaultIgnores == nil {
		return true
	}
	return *cfg.DefaultIgnores
}

// Clone returns a deep copy of the configuration.
func (cfg *Config) Clone() *Config {
	if cfg == nil {
		return nil
	}
	out := &Config{
		Extends: cloneStrings(cfg.Extends),
		Ignores: cloneStrings(cfg.Ignores),
	}
	if cfg.HelpURL != nil {
		out.HelpURL = stringPtr(*cfg.HelpURL)
	}
	if cfg.DefaultIgnores != nil {
		out.DefaultIgnores = boolPtr(*cfg.DefaultIgnores)
	}
	if cfg.Rules != nil {
		out.Rules = make(map[string]policy.Rule, len(cfg.Rules))
		for name, r := range cfg.Rules {
			out.Rules[name] = r.Clone()
		}
	}
	out.Prompt = cfg.Prompt.Clone()
	return out
}
