package policy

import "fmt"

// ValueKind describes the shape of the value a rule expects.
type ValueKind int

const (
	ValueNone ValueKind = iota
	ValueInt
	ValueString
	ValueStrings
	ValueCases
)

func (k ValueKind) String() string {
	switch k {
	case ValueNone:
		return "none"
	case ValueInt:
		return "integer"
	case ValueString:
		return "string"
	case ValueStrings:
		return "list of strings"
	case ValueCases:
		return "case name or list of case names"
	default:
		return "unknown"
	}
}

// Rule names.
const (
	TypeEnum            = "type-enum"
	TypeCase            = "type-case"
	TypeEmpty           = "type-empty"
	TypeMaxLength       = "type-max-length"
	ScopeEnum           = "scope-enum"
	ScopeCase           = "scope-case"
	ScopeEmpty          = "scope-empty"
	ScopeMaxLength      = "scope-max-length"
	SubjectCase         = "subject-case"
	SubjectEmpty        = "subject-empty"
	SubjectFullStop     = "subject-full-stop"
	SubjectMaxLength    = "subject-max-length"
	SubjectMinLength    = "subject-min-length"
	HeaderMaxLength     = "header-max-length"
	HeaderMinLength     = "header-min-length"
	HeaderTrim          = "header-trim"
	BodyLeadingBlank    = "body-leading-blank"
	BodyEmpty           = "body-empty"
	BodyMaxLineLength   = "body-max-line-length"
	FooterLeadingBlank  = "footer-leading-blank"
	FooterEmpty         = "footer-empty"
	FooterMaxLineLength = "footer-max-line-length"
	ReferencesEmpty     = "references-empty"
)

// RuleSpec names a known rule and the value shape it takes.
type RuleSpec struct {
	Name  string
	Value ValueKind
}

// catalogue is ordered; reports list problems in this order.
var catalogue = []RuleSpec{
	{TypeEnum, ValueStrings},
	{TypeCase, ValueCases},
	{TypeEmpty, ValueNone},
	{TypeMaxLength, ValueInt},
	{ScopeEnum, ValueStrings},
	{ScopeCase, ValueCases},
	{ScopeEmpty, ValueNone},
	{ScopeMaxLength, ValueInt},
	{SubjectCase, ValueCases},
	{SubjectEmpty, ValueNone},
	{SubjectFullStop, ValueString},
	{SubjectMaxLength, ValueInt},
	{SubjectMinLength, ValueInt},
	{HeaderMaxLength, ValueInt},
	{HeaderMinLength, ValueInt},
	{HeaderTrim, ValueNone},
	{BodyLeadingBlank, ValueNone},
	{BodyEmpty, ValueNone},
	{BodyMaxLineLength, ValueInt},
	{FooterLeadingBlank, ValueNone},
	{FooterEmpty, ValueNone},
	{FooterMaxLineLength, ValueInt},
	{ReferencesEmpty, ValueNone},
}

// Catalogue returns every known rule in report order.
func Catalogue() []RuleSpec {
	out := make([]RuleSpec, len(catalogue))
	copy(out, catalogue)
	return out
}

// Lookup returns the RuleSpec for a rule name.
func Lookup(name string) (RuleSpec, bool) {
	for _, spec := range catalogue {
		if spec.Name == name {
			return spec, true
		}
	}
	return RuleSpec{}, false
}

// CheckValue reports whether rule carries a value of the expected kind.
// Rules of kind ValueNone accept and ignore any value.
func (s RuleSpec) CheckValue(rule Rule) error {
	switch s.Value {
	case ValueInt:
		if _, ok := rule.Int(); !ok {
			return valueKindError(s, rule)
		}
	case ValueString:
		if _, ok := rule.Text(); !ok {
			return valueKindError(s, rule)
		}
	case ValueStrings:
		if _, ok := rule.Value.([]string); !ok {
			return valueKindError(s, rule)
		}
	case ValueCases:
		if _, err := rule.Cases(); err != nil {
			return fmt.Errorf("rule %q: %w", s.Name, err)
		}
	}
	return nil
}
