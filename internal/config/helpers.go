package config

import "github.com/MyCarrier-DevOps/go-commitlint/internal/policy"

func stringPtr(s string) *string { return &s }
func boolPtr(b bool) *bool       { return &b }

func cloneStrings(ss []string) []string {
	if ss == nil {
		return nil
	}
	out := make([]string, len(ss))
	copy(out, ss)
	return out
}

func errorRule(when policy.Applicability, value any) policy.Rule {
	return policy.NewRule(policy.SeverityError, when, value)
}

func warningRule(when policy.Applicability, value any) policy.Rule {
	return policy.NewRule(policy.SeverityWarning, when, value)
}
