package config

import "sort"

// Prompt field names, in the order an authoring assistant asks them.
const (
	FieldType            = "type"
	FieldScope           = "scope"
	FieldSubject         = "subject"
	FieldBody            = "body"
	FieldIsBreaking      = "isBreaking"
	FieldBreakingBody    = "breakingBody"
	FieldBreaking        = "breaking"
	FieldIsIssueAffected = "isIssueAffected"
	FieldIssuesBody      = "issuesBody"
	FieldIssues          = "issues"
)

var promptFields = []string{
	FieldType,
	FieldScope,
	FieldSubject,
	FieldBody,
	FieldIsBreaking,
	FieldBreakingBody,
	FieldBreaking,
	FieldIsIssueAffected,
	FieldIssuesBody,
	FieldIssues,
}

// PromptFields returns the known prompt field names in canonical order.
func PromptFields() []string {
	out := make([]string, len(promptFields))
	copy(out, promptFields)
	return out
}

func isPromptField(name string) bool {
	for _, f := range promptFields {
		if f == name {
			return true
		}
	}
	return false
}

// PromptConfig is the interactive prompt schema.
type PromptConfig struct {
	Questions map[string]*Question `yaml:"questions,omitempty" json:"questions,omitempty"`
}

// Question describes one prompt input field.
type Question struct {
	Description string                 `yaml:"description,omitempty" json:"description,omitempty"`
	Enum        map[string]*TypeOption `yaml:"enum,omitempty" json:"enum,omitempty"`
}

// TypeOption is the presentation metadata for one commit type. Title groups
// entries in generated changelogs; Emoji is cosmetic.
type TypeOption struct {
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Title       string `yaml:"title,omitempty" json:"title,omitempty"`
	Emoji       string `yaml:"emoji,omitempty" json:"emoji,omitempty"`
}

// Question returns the named question, or nil.
func (p *PromptConfig) Question(name string) *Question {
	if p == nil {
		return nil
	}
	return p.Questions[name]
}

// TypeOptions returns the type options keyed by commit type.
func (p *PromptConfig) TypeOptions() map[string]*TypeOption {
	q := p.Question(FieldType)
	if q == nil {
		return nil
	}
	return q.Enum
}

// OrderedTypes returns the commit types that have prompt options, ordered by
// their position in order, followed by any remaining types sorted by name.
func (p *PromptConfig) OrderedTypes(order []string) []string {
	opts := p.TypeOptions()
	out := make([]string, 0, len(opts))
	seen := make(map[string]bool, len(opts))
	for _, t := range order {
		if _, ok := opts[t]; ok && !seen[t] {
			out = append(out, t)
			seen[t] = true
		}
	}
	var rest []string
	for t := range opts {
		if !seen[t] {
			rest = append(rest, t)
		}
	}
	sort.Strings(rest)
	return append(out, rest...)
}

// Clone returns a deep copy of the prompt schema.
func (p *PromptConfig) Clone() *PromptConfig {
	if p == nil {
		return nil
	}
	out := &PromptConfig{}
	if p.Questions != nil {
		out.Questions = make(map[string]*Question, len(p.Questions))
		for name, q := range p.Questions {
			out.Questions[name] = q.clone()
		}
	}
	return out
}

func (q *Question) clone() *Question {
	if q == nil {
		return nil
	}
	out := &Question{Description: q.Description}
	if q.Enum != nil {
		out.Enum = make(map[string]*TypeOption, len(q.Enum))
		for k, v := range q.Enum {
			if v == nil {
				out.Enum[k] = nil
				continue
			}
			opt := *v
			out.Enum[k] = &opt
		}
	}
	return out
}

// mergePrompt applies src on top of dst: descriptions replace when set and
// a question's type options replace the previous set.
func mergePrompt(dst, src *PromptConfig) *PromptConfig {
	if src == nil {
		return dst
	}
	if dst == nil {
		return src.Clone()
	}
	if dst.Questions == nil && src.Questions != nil {
		dst.Questions = make(map[string]*Question, len(src.Questions))
	}
	for name, sq := range src.Questions {
		if sq == nil {
			continue
		}
		dq, ok := dst.Questions[name]
		if !ok || dq == nil {
			dst.Questions[name] = sq.clone()
			continue
		}
		if sq.Description != "" {
			dq.Description = sq.Description
		}
		// A supplied option set replaces the previous one whole.
		if sq.Enum != nil {
			dq.Enum = sq.clone().Enum
		}
	}
	return dst
}

// pruneTypes drops type options whose commit type is not declared.
func (p *PromptConfig) pruneTypes(declared []string) {
	opts := p.TypeOptions()
	if opts == nil {
		return
	}
	keep := make(map[string]bool, len(declared))
	for _, t := range declared {
		keep[t] = true
	}
	for t := range opts {
		if !keep[t] {
			delete(opts, t)
		}
	}
}
