package metrics

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsCountersAndHandler(t *testing.T) {
	m := New()
	m.ObserveLLMCall("Gemini:x", "neurotype_analysis", "ok", 300*time.Millisecond)
	m.ObserveAnalysis("EmptyOutput")
	m.ObserveAnalysis("EmptyOutput")
	m.ObserveSubmission("toddler", true)
	m.ObserveStaleDiscard()
	m.SetSessions(3)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.llmCalls.WithLabelValues("Gemini:x", "neurotype_analysis", "ok")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.analyses.WithLabelValues("EmptyOutput")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.staleDiscards))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.sessions))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	require.Equal(t, 200, rec.Code)
	body, _ := io.ReadAll(rec.Body)
	assert.Contains(t, string(body), "neurotype_analysis_results_total")
	assert.Contains(t, string(body), `age_band="toddler"`)
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	m.ObserveAnalysis("ok")
	m.ObserveLLMCall("a", "b", "c", time.Second)
	m.SetSessions(1)
	assert.NotNil(t, m.Handler())
}

func TestNewRegistriesAreIndependent(t *testing.T) {
	assert.NotPanics(t, func() {
		_ = New()
		_ = New()
	})
}
