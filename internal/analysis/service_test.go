package analysis

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	llmclient "neurotype/internal/llm/client"
	"neurotype/internal/metrics"
)

type scriptedClient struct {
	raw json.RawMessage
	err error

	calls  int
	prompt string
	input  any
	op     string
	schema *llmclient.Schema
}

func (c *scriptedClient) Name() string { return "scripted" }
func (c *scriptedClient) Close() error { return nil }
func (c *scriptedClient) GenerateJSON(ctx context.Context, prompt string, input any) (json.RawMessage, error) {
	c.calls++
	c.prompt = prompt
	c.input = input
	c.op = llmclient.OperationFrom(ctx)
	c.schema = llmclient.ResponseSchemaFrom(ctx)
	return c.raw, c.err
}

const wellFormed = `{
  "characterAnalysis": "Your child feels things deeply and notices the emotions of others.",
  "parentingTips": ["Validate their feelings.", "Give them quiet time to recharge."]
}`

func TestAnalyze_EmptyTitlesIsInvalidInputWithoutCall(t *testing.T) {
	for name, titles := range map[string][]string{
		"nil":   nil,
		"empty": {},
		"blank": {"  ", ""},
	} {
		t.Run(name, func(t *testing.T) {
			client := &scriptedClient{raw: json.RawMessage(wellFormed)}
			_, err := New(client, Options{}).Analyze(context.Background(), titles)

			var ae *Error
			require.ErrorAs(t, err, &ae)
			assert.Equal(t, KindInvalidInput, ae.Kind)
			assert.Zero(t, client.calls)
		})
	}
}

func TestAnalyze_WellFormedPayload(t *testing.T) {
	client := &scriptedClient{raw: json.RawMessage(wellFormed)}
	res, err := New(client, Options{}).Analyze(context.Background(), []string{"Deeply Feeling / Sensitive Child"})
	require.NoError(t, err)

	assert.NotEmpty(t, res.CharacterAnalysis)
	assert.GreaterOrEqual(t, len(res.ParentingTips), 1)
	assert.Equal(t, 1, client.calls)
}

func TestAnalyze_RequestCarriesTitlesOperationAndSchema(t *testing.T) {
	client := &scriptedClient{raw: json.RawMessage(wellFormed)}
	titles := []string{"Type 1: Deeply Feeling / Sensitive", "Type 4: High Energy / Sensory Seeking"}
	_, err := New(client, Options{}).Analyze(context.Background(), titles)
	require.NoError(t, err)

	assert.Equal(t, llmclient.OperationNeurotypeAnalysis, client.op)
	assert.Nil(t, client.input)
	assert.Contains(t, client.prompt, `"name": "Type 1: Deeply Feeling / Sensitive"`)
	assert.Contains(t, client.prompt, `"name": "Type 4: High Energy / Sensory Seeking"`)
	assert.Less(t,
		strings.Index(client.prompt, "Type 1: Deeply"),
		strings.Index(client.prompt, "Type 4: High"),
		"titles keep their order")

	require.NotNil(t, client.schema)
	assert.Equal(t, llmclient.SchemaObject, client.schema.Type)
	assert.ElementsMatch(t, []string{"characterAnalysis", "parentingTips"}, client.schema.Required)
	assert.Equal(t, llmclient.SchemaArray, client.schema.Properties["parentingTips"].Type)
}

func TestAnalyze_SafetyFinishIsEmptyOutputWithDiagnostics(t *testing.T) {
	client := &scriptedClient{err: &llmclient.EmptyOutputError{
		FinishReason:      "SAFETY",
		BlockedCategories: []string{"HARM_CATEGORY_HARASSMENT"},
	}}
	_, err := New(client, Options{}).Analyze(context.Background(), []string{"Highly Reactive / Intense Child"})

	var ae *Error
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, KindEmptyOutput, ae.Kind)
	assert.Equal(t, "SAFETY", ae.Diagnostics["finishReason"])
	assert.Equal(t, "HARM_CATEGORY_HARASSMENT", ae.Diagnostics["blockedCategories"])
	assert.Contains(t, ae.Error(), "AI analysis failed to generate an output. Finish Reason: SAFETY.")
}

func TestAnalyze_ResponseWithoutFieldsIsEmptyOutput(t *testing.T) {
	client := &scriptedClient{raw: json.RawMessage(`{}`)}
	_, err := New(client, Options{}).Analyze(context.Background(), []string{"x"})
	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, KindEmptyOutput, kind)
}

func TestAnalyze_TransportFailures(t *testing.T) {
	boom := errors.New("connection reset")
	cases := map[string]error{
		"network": boom,
		"timeout": context.DeadlineExceeded,
		"no key":  llmclient.ErrMissingAPIKey,
	}
	for name, cause := range cases {
		t.Run(name, func(t *testing.T) {
			client := &scriptedClient{err: cause}
			_, err := New(client, Options{}).Analyze(context.Background(), []string{"x"})

			var ae *Error
			require.ErrorAs(t, err, &ae)
			assert.Equal(t, KindTransportFailure, ae.Kind)
			assert.ErrorIs(t, err, cause)
			assert.NotEmpty(t, ae.Message)
		})
	}
}

func TestAnalyze_NilClientIsTransportFailure(t *testing.T) {
	_, err := New(nil, Options{}).Analyze(context.Background(), []string{"x"})
	kind, _ := KindOf(err)
	assert.Equal(t, KindTransportFailure, kind)
}

func TestAnalyze_FakeClientRoundTrip(t *testing.T) {
	res, err := New(llmclient.NewFakeClient(), Options{}).Analyze(context.Background(), []string{"Low Energy / Observant Child"})
	require.NoError(t, err)
	assert.NotEmpty(t, res.CharacterAnalysis)
	assert.Len(t, res.ParentingTips, 3)
}

func TestAnalyze_RecordsOutcomeMetrics(t *testing.T) {
	m := metrics.New()
	svc := New(&scriptedClient{raw: json.RawMessage(wellFormed)}, Options{Metrics: m})
	_, _ = svc.Analyze(context.Background(), []string{"x"})
	_, _ = svc.Analyze(context.Background(), nil)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	assert.Contains(t, rec.Body.String(), `neurotype_analysis_results_total{kind="ok"} 1`)
	assert.Contains(t, rec.Body.String(), `neurotype_analysis_results_total{kind="InvalidInput"} 1`)
}
