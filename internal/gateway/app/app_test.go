package app

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"neurotype/internal/gateway/config"
	"neurotype/internal/gateway/handler/rpc"
)

func newTestApp(t *testing.T, provider string) *httptest.Server {
	t.Helper()
	cfg := &config.Config{
		Port: ":0",
		Env:  "test",
		LLM: config.LLMConfig{
			Provider: provider,
			Model:    "gemini-2.0-flash",
			Timeout:  5 * time.Second,
		},
		Session: config.SessionConfig{Capacity: 8, TTL: time.Hour},
	}
	a, err := New(context.Background(), cfg, nil)
	require.NoError(t, err)

	srv := httptest.NewServer(a.Handler())
	t.Cleanup(func() {
		srv.Close()
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = a.Shutdown(ctx)
	})
	return srv
}

func postJSON(t *testing.T, srv *httptest.Server, procedure, body string) *http.Response {
	t.Helper()
	resp, err := srv.Client().Post(srv.URL+procedure, "application/json", bytes.NewReader([]byte(body)))
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func TestNew_RejectsNilConfig(t *testing.T) {
	_, err := New(context.Background(), nil, nil)
	assert.Error(t, err)
}

func TestApp_OpsEndpoints(t *testing.T) {
	srv := newTestApp(t, config.ProviderFake)

	resp, err := srv.Client().Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))

	resp2, err := srv.Client().Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusOK, resp2.StatusCode)
}

func TestApp_AnalysisWithFakeProvider(t *testing.T) {
	srv := newTestApp(t, config.ProviderFake)

	resp := postJSON(t, srv, rpc.RequestAnalysisProcedure, `{"dominantTypes":["Type 5: Low Energy / Sensory Avoidant"]}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out rpc.RequestAnalysisResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.NotEmpty(t, out.CharacterAnalysis)
	assert.Len(t, out.ParentingTips, 3)

	m, err := srv.Client().Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer m.Body.Close()
	body, err := io.ReadAll(m.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `neurotype_analysis_results_total{kind="ok"} 1`)
}

func TestApp_MissingAPIKeyFailsAnalysisOnly(t *testing.T) {
	srv := newTestApp(t, config.ProviderGemini)

	resp := postJSON(t, srv, rpc.RequestAnalysisProcedure, `{"dominantTypes":["Type 1: Deeply Feeling / Sensitive"]}`)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, "TransportFailure", resp.Header.Get("Neurotype-Error-Kind"))

	score := postJSON(t, srv, rpc.ScoreProcedure, `{"answers":{"t1_q1":true}}`)
	assert.Equal(t, http.StatusOK, score.StatusCode)
}
