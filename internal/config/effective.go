package config

import (
	"fmt"

	"github.com/MyCarrier-DevOps/go-commitlint/internal/policy"
)

// ResolveRules returns the effective rule set for cfg: the rules of every
// base rule set named in extends, applied in order, with the descriptor's own
// rules applied last. Rules merge per name; a later definition replaces an
// earlier one entirely.
func ResolveRules(cfg *Config) (map[string]policy.Rule, error) {
	effective := make(map[string]policy.Rule)

	for _, name := range cfg.Extends {
		preset, ok := presets[name]
		if !ok {
			return nil, fmt.Errorf("unknown base rule set %q (known: %v)", name, PresetNames())
		}
		for ruleName, r := range preset() {
			effective[ruleName] = r
		}
	}

	for ruleName, r := range cfg.Rules {
		effective[ruleName] = r.Clone()
	}

	return effective, nil
}

// EnabledRules returns the names of enabled rules in catalogue order.
// Rule names not in the catalogue are omitted.
func (cfg *Config) EnabledRules() []string {
	var names []string
	for _, spec := range policy.Catalogue() {
		if r, ok := cfg.Rules[spec.Name]; ok && r.Enabled() {
			names = append(names, spec.Name)
		}
	}
	return names
}
