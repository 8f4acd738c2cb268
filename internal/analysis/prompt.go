package analysis

import (
	llmclient "neurotype/internal/llm/client"
	"neurotype/internal/llmtool"
)

const (
	fieldCharacterAnalysis = "characterAnalysis"
	fieldParentingTips     = "parentingTips"
)

var analysisOutputFields = []llmtool.PromptField{
	{Name: fieldCharacterAnalysis, Type: "string", Required: true, Description: "Analysis of the child's character based on the dominant nervous system types."},
	{Name: fieldParentingTips, Type: "[]string", Required: true, Description: "Actionable parenting tips."},
}

var analysisPromptSpec = llmtool.StructuredPromptSpec{
	Persona: "You are an expert in child psychology and neurodiversity, specializing in providing supportive and constructive advice to parents.",
	Purpose: "Describe a child's likely character and give parents practical tips, based on the child's dominant nervous system profile listed in INPUT.dominantTypes.",
	Background: "Parents answered a yes/no questionnaire about their child. Answers were tallied per nervous system type, " +
		"and the types with the highest score are the dominant profile. Several types may tie.",
	OutputFields: analysisOutputFields,
	Constraints: []string{
		"characterAnalysis: a concise analysis, typically 2-3 paragraphs (about 150-250 words), of the child's likely character traits, temperament, potential strengths and common challenges.",
		"If multiple types are listed, briefly describe how they might interact or manifest together.",
		"parentingTips: 3-5 practical, actionable tips focused on positive parenting strategies to support, nurture and interact with the child.",
		"Frame tips constructively (e.g. \"Encourage...\" rather than \"Don't...\").",
	},
	Rules: []string{
		"Keep a balanced perspective.",
	},
	OutputFormat: "JSON only.",
	Language:     "English",
}.With(llmtool.StrictJSON, llmtool.SupportiveTone)

type dominantType struct {
	Name string `json:"name"`
}

type promptInput struct {
	DominantTypes []dominantType `json:"dominantTypes"`
}

func buildPrompt(titles []string) (string, error) {
	in := promptInput{DominantTypes: make([]dominantType, 0, len(titles))}
	for _, t := range titles {
		in.DominantTypes = append(in.DominantTypes, dominantType{Name: t})
	}
	return llmtool.Render(analysisPromptSpec, in)
}

func responseSchema() *llmclient.Schema {
	return llmtool.ResponseSchema(analysisOutputFields)
}
