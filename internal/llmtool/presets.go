package llmtool

// Preset is a reusable block of constraints and rules.
type Preset struct {
	Constraints []string
	Rules       []string
}

var (
	// StrictJSON keeps the reply parseable as a single JSON object.
	StrictJSON = Preset{
		Constraints: []string{
			"Respond with exactly one JSON object and nothing else.",
			"Use only the keys listed under OUTPUT.",
			"Do not wrap the JSON in markdown fences.",
		},
	}

	// SupportiveTone keeps parent-facing text warm and non-clinical.
	SupportiveTone = Preset{
		Rules: []string{
			"Use a warm, empathetic, and easy-to-understand tone.",
			"Do not diagnose; describe tendencies, not disorders.",
		},
	}
)

// With returns a copy of s with the presets' constraints and rules placed
// ahead of its own, in preset order.
func (s StructuredPromptSpec) With(presets ...Preset) StructuredPromptSpec {
	var constraints, rules []string
	for _, p := range presets {
		constraints = append(constraints, p.Constraints...)
		rules = append(rules, p.Rules...)
	}
	s.Constraints = append(constraints, s.Constraints...)
	s.Rules = append(rules, s.Rules...)
	return s
}
