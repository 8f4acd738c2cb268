package llmclient

import (
	"context"
	"encoding/json"
)

// OperationNeurotypeAnalysis is the operation name used for profile analysis calls.
const OperationNeurotypeAnalysis = "neurotype_analysis"

// FakeClient returns deterministic, minimal JSON payloads per operation for
// offline development.
type FakeClient struct{}

func NewFakeClient() *FakeClient { return &FakeClient{} }

func (f *FakeClient) Name() string { return "FakeLLM" }
func (f *FakeClient) Close() error { return nil }

func (f *FakeClient) GenerateJSON(ctx context.Context, prompt string, input any) (json.RawMessage, error) {
	var obj any
	switch OperationFrom(ctx) {
	case OperationNeurotypeAnalysis:
		obj = map[string]any{
			"characterAnalysis": "This is an offline placeholder analysis. Your child shows a recognizable pattern in the " +
				"answers you gave; the score chart above shows which traits stood out most.\n\n" +
				"Connect a Gemini API key to receive a personalised character analysis.",
			"parentingTips": []string{
				"Notice and name the moments when your child is at their best.",
				"Keep daily routines predictable so transitions feel safe.",
				"Offer calm, connected time together every day.",
			},
		}
	default:
		obj = map[string]any{}
	}
	b, _ := json.Marshal(obj)
	return json.RawMessage(b), nil
}
