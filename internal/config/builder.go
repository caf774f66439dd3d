package config

import (
	"github.com/MyCarrier-DevOps/go-commitlint/internal/policy"

	log "github.com/sirupsen/logrus"
)

// Builder constructs a Config by layering overrides on top of a base
// descriptor.
type Builder struct {
	base      func() *Config
	overrides []*Config
}

// NewBuilder creates a builder whose base is the built-in project policy.
func NewBuilder() *Builder {
	return &Builder{base: CreateDefaultConfiguration}
}

// NewEmptyBuilder creates a builder with an empty base. The overrides must
// together supply a complete descriptor.
func NewEmptyBuilder() *Builder {
	return &Builder{base: func() *Config { return &Config{} }}
}

// Add adds a configuration override. Overrides are applied in order:
// later overrides take precedence over earlier ones.
func (b *Builder) Add(override *Config) *Builder {
	if override != nil {
		b.overrides = append(b.overrides, override)
	}
	return b
}

// Build constructs the final configuration by starting with the base,
// applying all overrides, resolving extends into effective rules, and
// validating. The returned Config shares no memory with the base or the
// overrides.
func (b *Builder) Build() (*Config, error) {
	cfg := b.base()

	userTypes := false
	for _, override := range b.overrides {
		mergeConfig(cfg, override.Clone())
		if override.Prompt.TypeOptions() != nil {
			userTypes = true
		}
	}

	// Required keys and the declared rule set are checked before extends
	// are folded in, so base rules cannot mask a missing rules section.
	if err := validateDeclared(cfg); err != nil {
		return nil, err
	}

	rules, err := ResolveRules(cfg)
	if err != nil {
		return nil, err
	}
	cfg.Rules = rules

	// Base type options follow a narrowed type-enum. Options supplied by an
	// override are validated as written.
	if !userTypes {
		if r, ok := cfg.Rules[policy.TypeEnum]; ok && r.When == policy.Always {
			cfg.Prompt.pruneTypes(cfg.TypeEnum())
		}
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"extends": []string(cfg.Extends),
		"rules":   len(cfg.Rules),
	}).Debug("commit policy built")

	return cfg, nil
}

// mergeConfig applies set fields from src to dst.
func mergeConfig(dst, src *Config) {
	if src.Extends != nil {
		dst.Extends = src.Extends
	}
	if src.HelpURL != nil {
		dst.HelpURL = src.HelpURL
	}
	if src.DefaultIgnores != nil {
		dst.DefaultIgnores = src.DefaultIgnores
	}
	if src.Ignores != nil {
		dst.Ignores = src.Ignores
	}

	// Rules: merge per name
	if src.Rules != nil {
		if dst.Rules == nil {
			dst.Rules = make(map[string]policy.Rule, len(src.Rules))
		}
		for name, r := range src.Rules {
			dst.Rules[name] = r
		}
	}

	dst.Prompt = mergePrompt(dst.Prompt, src.Prompt)
}
