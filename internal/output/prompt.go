package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/MyCarrier-DevOps/go-commitlint/internal/config"
)

// PromptSchema is the authoring prompt in presentation order.
type PromptSchema struct {
	Questions []PromptQuestion `json:"questions"`
}

// PromptQuestion is one prompt field.
type PromptQuestion struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Options     []PromptOption `json:"options,omitempty"`
}

// PromptOption is one selectable commit type.
type PromptOption struct {
	Value       string `json:"value"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Emoji       string `json:"emoji,omitempty"`
}

// BuildPromptSchema orders the descriptor's prompt questions by field and
// its type options by the declared type-enum.
func BuildPromptSchema(cfg *config.Config) PromptSchema {
	schema := PromptSchema{Questions: []PromptQuestion{}}
	for _, field := range config.PromptFields() {
		q := cfg.Prompt.Question(field)
		if q == nil {
			continue
		}
		pq := PromptQuestion{Name: field, Description: q.Description}
		if field == config.FieldType {
			opts := cfg.Prompt.TypeOptions()
			for _, t := range cfg.Prompt.OrderedTypes(cfg.TypeEnum()) {
				opt := opts[t]
				if opt == nil {
					continue
				}
				pq.Options = append(pq.Options, PromptOption{
					Value:       t,
					Title:       opt.Title,
					Description: opt.Description,
					Emoji:       opt.Emoji,
				})
			}
		}
		schema.Questions = append(schema.Questions, pq)
	}
	return schema
}

// WritePrompt writes the prompt schema as aligned text.
func WritePrompt(w io.Writer, schema PromptSchema) error {
	width := 0
	for _, q := range schema.Questions {
		for _, o := range q.Options {
			if len(o.Value) > width {
				width = len(o.Value)
			}
		}
	}

	var sb strings.Builder
	for _, q := range schema.Questions {
		fmt.Fprintf(&sb, "%s: %s\n", q.Name, q.Description)
		for _, o := range q.Options {
			line := fmt.Sprintf("  %-*s  %s %s", width, o.Value, o.Emoji, o.Title)
			if o.Description != "" {
				line += ": " + o.Description
			}
			sb.WriteString(strings.TrimRight(line, " ") + "\n")
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
