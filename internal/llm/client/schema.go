package llmclient

import genai "google.golang.org/genai"

type SchemaType string

const (
	SchemaObject SchemaType = "object"
	SchemaArray  SchemaType = "array"
	SchemaString SchemaType = "string"
)

// Schema is a provider-neutral subset of JSON schema for structured output.
type Schema struct {
	Type        SchemaType
	Description string
	Properties  map[string]*Schema
	// PropertyOrder keeps the generated field order stable.
	PropertyOrder []string
	Required      []string
	Items         *Schema
}

func (s *Schema) toGenai() *genai.Schema {
	if s == nil {
		return nil
	}
	out := &genai.Schema{
		Description:      s.Description,
		Required:         s.Required,
		PropertyOrdering: s.PropertyOrder,
	}
	switch s.Type {
	case SchemaObject:
		out.Type = genai.TypeObject
	case SchemaArray:
		out.Type = genai.TypeArray
	default:
		out.Type = genai.TypeString
	}
	if len(s.Properties) > 0 {
		out.Properties = make(map[string]*genai.Schema, len(s.Properties))
		for name, p := range s.Properties {
			out.Properties[name] = p.toGenai()
		}
	}
	if s.Items != nil {
		out.Items = s.Items.toGenai()
	}
	return out
}
