package llmclient

import (
	"context"
	"encoding/json"
	"strings"

	genai "google.golang.org/genai"
)

const DefaultGeminiModel = "gemini-2.0-flash"

// GeminiClient is a thin wrapper around the official genai client.
// It only focuses on the API call itself. Cross-cutting concerns
// (logging, timeouts) are applied via middleware.
type GeminiClient struct {
	models generator
	model  string
}

// generator is the slice of genai.Models used here.
type generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrMissingAPIKey
	}
	if strings.TrimSpace(model) == "" {
		model = DefaultGeminiModel
	}
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return &GeminiClient{models: cli.Models, model: model}, nil
}

func (g *GeminiClient) Name() string { return "Gemini:" + g.model }
func (g *GeminiClient) Close() error { return nil }

// GenerateJSON concatenates prompt and input, asks for application/json,
// and returns the model's JSON as json.RawMessage. A response schema found in
// ctx is forwarded to the API.
func (g *GeminiClient) GenerateJSON(ctx context.Context, prompt string, input any) (json.RawMessage, error) {
	full := prompt
	if input != nil {
		in, err := json.MarshalIndent(input, "", "  ")
		if err != nil {
			return nil, err
		}
		full = prompt + "\n\n[INPUT JSON]\n" + string(in)
	}

	cfg := &genai.GenerateContentConfig{ResponseMIMEType: "application/json"}
	if s := ResponseSchemaFrom(ctx); s != nil {
		cfg.ResponseSchema = s.toGenai()
	}
	resp, err := g.models.GenerateContent(ctx, g.model, genai.Text(full), cfg)
	if err != nil {
		return nil, err
	}
	return responseJSON(resp)
}

// responseJSON extracts the first candidate's text. Anything other than a
// normally finished candidate with text is an *EmptyOutputError.
func responseJSON(resp *genai.GenerateContentResponse) (json.RawMessage, error) {
	if resp == nil {
		return nil, &EmptyOutputError{}
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		diag := &EmptyOutputError{}
		if fb := resp.PromptFeedback; fb != nil {
			diag.BlockReason = string(fb.BlockReason)
			diag.BlockReasonMessage = fb.BlockReasonMessage
			diag.BlockedCategories = blockedCategories(fb.SafetyRatings)
		}
		return nil, diag
	}

	cand := resp.Candidates[0]
	var text strings.Builder
	if cand.Content != nil {
		for _, p := range cand.Content.Parts {
			if p == nil || p.Thought {
				continue
			}
			text.WriteString(p.Text)
		}
	}
	finished := cand.FinishReason == "" ||
		cand.FinishReason == genai.FinishReasonStop ||
		cand.FinishReason == genai.FinishReasonUnspecified
	if !finished || strings.TrimSpace(text.String()) == "" {
		return nil, &EmptyOutputError{
			FinishReason:      string(cand.FinishReason),
			FinishMessage:     cand.FinishMessage,
			BlockedCategories: blockedCategories(cand.SafetyRatings),
		}
	}
	return json.RawMessage(text.String()), nil
}

func blockedCategories(ratings []*genai.SafetyRating) []string {
	var out []string
	for _, r := range ratings {
		if r != nil && r.Blocked {
			out = append(out, string(r.Category))
		}
	}
	return out
}
