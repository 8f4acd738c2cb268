package llmtool

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	llmclient "neurotype/internal/llm/client"
)

// PromptField is one key the model must return.
type PromptField struct {
	Name        string
	Type        string // "string" or "[]string"
	Required    bool
	Description string
}

// StructuredPromptSpec is rendered as a persona line followed by tagged
// sections. Empty sections are left out.
type StructuredPromptSpec struct {
	Persona      string
	Purpose      string
	Background   string
	OutputFields []PromptField
	Constraints  []string
	Rules        []string
	OutputFormat string
	Language     string
}

var (
	errNoPurpose = errors.New("llmtool: purpose is empty")
	errNoFields  = errors.New("llmtool: output fields are empty")
)

type promptSection struct {
	tag  string
	body string
}

// Render builds the prompt text for spec. input is embedded as indented JSON
// in the INPUT section; nil renders as null.
func Render(spec StructuredPromptSpec, input any) (string, error) {
	if strings.TrimSpace(spec.Purpose) == "" {
		return "", errNoPurpose
	}
	if len(spec.OutputFields) == 0 {
		return "", errNoFields
	}
	in := "null"
	if input != nil {
		b, err := json.MarshalIndent(input, "", "  ")
		if err != nil {
			return "", fmt.Errorf("llmtool: encode input: %w", err)
		}
		in = string(b)
	}

	sections := []promptSection{
		{"PURPOSE", spec.Purpose},
		{"BACKGROUND", spec.Background},
		{"INPUT", in},
		{"OUTPUT", fieldLines(spec.OutputFields)},
		{"CONSTRAINTS", bullets(spec.Constraints)},
		{"RULES", bullets(spec.Rules)},
		{"OUTPUT_FORMAT", spec.OutputFormat},
		{"LANGUAGE", spec.Language},
	}
	parts := make([]string, 0, len(sections)+1)
	if p := strings.TrimSpace(spec.Persona); p != "" {
		parts = append(parts, p)
	}
	for _, s := range sections {
		if body := strings.TrimSpace(s.body); body != "" {
			parts = append(parts, "["+s.tag+"]\n"+body)
		}
	}
	return strings.Join(parts, "\n\n") + "\n", nil
}

// ResponseSchema derives an object schema from the output fields, in field
// order. Unknown field types are treated as strings.
func ResponseSchema(fields []PromptField) *llmclient.Schema {
	s := &llmclient.Schema{
		Type:       llmclient.SchemaObject,
		Properties: make(map[string]*llmclient.Schema, len(fields)),
	}
	for _, f := range fields {
		name := strings.TrimSpace(f.Name)
		if name == "" {
			continue
		}
		prop := &llmclient.Schema{Type: llmclient.SchemaString, Description: f.Description}
		if strings.TrimSpace(f.Type) == "[]string" {
			prop.Type = llmclient.SchemaArray
			prop.Items = &llmclient.Schema{Type: llmclient.SchemaString}
		}
		s.Properties[name] = prop
		s.PropertyOrder = append(s.PropertyOrder, name)
		if f.Required {
			s.Required = append(s.Required, name)
		}
	}
	return s
}

func fieldLines(fields []PromptField) string {
	lines := make([]string, 0, len(fields))
	for _, f := range fields {
		name := strings.TrimSpace(f.Name)
		if name == "" {
			continue
		}
		need := "optional"
		if f.Required {
			need = "required"
		}
		line := fmt.Sprintf("- %s (%s, %s)", name, f.Type, need)
		if d := strings.TrimSpace(f.Description); d != "" {
			line += ": " + d
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func bullets(items []string) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			lines = append(lines, "- "+item)
		}
	}
	return strings.Join(lines, "\n")
}
