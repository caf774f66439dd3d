package config

import (
	"encoding/json"
	"fmt"
	"regexp"

	"gopkg.in/yaml.v3"
)

// StringList is a list of strings that also accepts a single scalar in
// configuration files ("extends: conventional" or "extends: [a, b]").
type StringList []string

// UnmarshalYAML implements flexible scalar-or-sequence parsing.
func (l *StringList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var s string
		if err := value.Decode(&s); err != nil {
			return err
		}
		*l = StringList{s}
		return nil
	case yaml.SequenceNode:
		var ss []string
		if err := value.Decode(&ss); err != nil {
			return err
		}
		*l = ss
		return nil
	default:
		return fmt.Errorf("line %d: expected a string or a list of strings", value.Line)
	}
}

// UnmarshalJSON implements flexible scalar-or-array parsing.
func (l *StringList) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*l = StringList{s}
		return nil
	}
	var ss []string
	if err := json.Unmarshal(data, &ss); err != nil {
		return fmt.Errorf("expected a string or a list of strings: %w", err)
	}
	*l = ss
	return nil
}

// IgnorePatterns compiles the descriptor's custom ignore patterns.
func (cfg *Config) IgnorePatterns() ([]*regexp.Regexp, error) {
	patterns := make([]*regexp.Regexp, 0, len(cfg.Ignores))
	for _, p := range cfg.Ignores {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid ignore pattern %q: %w", p, err)
		}
		patterns = append(patterns, re)
	}
	return patterns, nil
}
