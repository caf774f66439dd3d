package policy

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
)

// Rule is a configured rule tuple: [severity, applicability, value].
// Value is normalized to nil, int, string or []string.
type Rule struct {
	Level Severity
	When  Applicability
	Value any
}

// NewRule creates a Rule, normalizing value. It panics on a value that cannot
// be normalized and is intended for statically known rule sets.
func NewRule(level Severity, when Applicability, value any) Rule {
	v, err := normalizeValue(value)
	if err != nil {
		panic(err)
	}
	return Rule{Level: level, When: when, Value: v}
}

// Enabled returns true unless the rule is disabled.
func (r Rule) Enabled() bool {
	return r.Level != SeverityDisabled
}

// Int returns the value as an integer.
func (r Rule) Int() (int, bool) {
	n, ok := r.Value.(int)
	return n, ok
}

// Text returns the value as a string.
func (r Rule) Text() (string, bool) {
	s, ok := r.Value.(string)
	return s, ok
}

// Strings returns the value as a list of strings. A single string value is
// returned as a one-element list.
func (r Rule) Strings() ([]string, bool) {
	switch v := r.Value.(type) {
	case []string:
		return v, true
	case string:
		return []string{v}, true
	default:
		return nil, false
	}
}

// Cases returns the value parsed as a list of case styles.
func (r Rule) Cases() ([]Case, error) {
	names, ok := r.Strings()
	if !ok {
		return nil, fmt.Errorf("expected a case name or a list of case names, got %T", r.Value)
	}
	cases := make([]Case, 0, len(names))
	for _, name := range names {
		c, err := ParseCase(name)
		if err != nil {
			return nil, err
		}
		cases = append(cases, c)
	}
	return cases, nil
}

// Clone returns a deep copy of the rule.
func (r Rule) Clone() Rule {
	if ss, ok := r.Value.([]string); ok {
		cp := make([]string, len(ss))
		copy(cp, ss)
		r.Value = cp
	}
	return r
}

// tuple returns the serialized form of the rule.
func (r Rule) tuple() []any {
	t := []any{int(r.Level), r.When.String()}
	if r.Value != nil {
		t = append(t, r.Value)
	}
	return t
}

// MarshalJSON encodes the rule as a JSON array.
func (r Rule) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.tuple())
}

// UnmarshalJSON decodes a rule from a JSON array of one to three elements.
func (r *Rule) UnmarshalJSON(data []byte) error {
	var elems []json.RawMessage
	if err := json.Unmarshal(data, &elems); err != nil {
		return fmt.Errorf("rule must be an array: %w", err)
	}
	raw := make([]any, 0, len(elems))
	for _, e := range elems {
		var v any
		if err := json.Unmarshal(e, &v); err != nil {
			return err
		}
		raw = append(raw, v)
	}
	return r.fromTuple(raw)
}

// fromTuple fills the rule from decoded tuple elements.
func (r *Rule) fromTuple(elems []any) error {
	if len(elems) == 0 || len(elems) > 3 {
		return fmt.Errorf("rule must have 1 to 3 elements, got %d", len(elems))
	}

	level, err := ParseSeverity(scalarString(elems[0]))
	if err != nil {
		return err
	}

	when := Always
	if len(elems) > 1 {
		s, ok := elems[1].(string)
		if !ok {
			return fmt.Errorf("rule applicability must be a string, got %T", elems[1])
		}
		if when, err = ParseApplicability(s); err != nil {
			return err
		}
	}

	var value any
	if len(elems) > 2 {
		if value, err = normalizeValue(elems[2]); err != nil {
			return err
		}
	}

	*r = Rule{Level: level, When: when, Value: value}
	return nil
}

func scalarString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	default:
		return fmt.Sprint(v)
	}
}

var errUnsupportedValue = errors.New("unsupported rule value")

// normalizeValue converts decoded values from any supported format to
// nil, int, string or []string.
func normalizeValue(v any) (any, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case int:
		return t, nil
	case int64:
		return int(t), nil
	case uint64:
		return int(t), nil
	case float64:
		if t != math.Trunc(t) {
			return nil, fmt.Errorf("%w: non-integer number %v", errUnsupportedValue, t)
		}
		return int(t), nil
	case string:
		return t, nil
	case []string:
		cp := make([]string, len(t))
		copy(cp, t)
		return cp, nil
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%w: list items must be strings, got %T", errUnsupportedValue, item)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %T", errUnsupportedValue, v)
	}
}
