package policy

import "fmt"

// ValueError reports a rule configured with a value of the wrong shape.
type ValueError struct {
	Rule string
	Want ValueKind
	Got  any
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("rule %q expects a value of kind %s, got %T", e.Rule, e.Want, e.Got)
}

func valueKindError(spec RuleSpec, rule Rule) error {
	return &ValueError{Rule: spec.Name, Want: spec.Value, Got: rule.Value}
}
