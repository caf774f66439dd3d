package policy

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML implements yaml.Unmarshaler for Severity.
func (s *Severity) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := ParseSeverity(value.Value)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Applicability.
func (a *Applicability) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseApplicability(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Case.
func (c *Case) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseCase(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Rule. The node must be a
// sequence: [severity] or [severity, applicability] or
// [severity, applicability, value].
func (r *Rule) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.SequenceNode {
		return fmt.Errorf("line %d: rule must be a sequence", value.Line)
	}
	elems := make([]any, 0, len(value.Content))
	for i, n := range value.Content {
		// Severity is read from the literal so "2" and 2 behave alike.
		if i == 0 && n.Kind == yaml.ScalarNode {
			elems = append(elems, n.Value)
			continue
		}
		var v any
		if err := n.Decode(&v); err != nil {
			return err
		}
		elems = append(elems, v)
	}
	if err := r.fromTuple(elems); err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler for Rule.
func (r Rule) MarshalYAML() (any, error) {
	node := &yaml.Node{}
	if err := node.Encode(r.tuple()); err != nil {
		return nil, err
	}
	node.Style = yaml.FlowStyle
	return node, nil
}
