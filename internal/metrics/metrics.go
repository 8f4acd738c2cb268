package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics exposes Prometheus collectors for questionnaire and analysis activity.
type Metrics struct {
	reg prometheus.Gatherer

	llmCalls      *prometheus.CounterVec
	llmLatency    *prometheus.HistogramVec
	submissions   *prometheus.CounterVec
	analyses      *prometheus.CounterVec
	staleDiscards prometheus.Counter
	sessions      prometheus.Gauge
}

// New registers the collectors on a fresh registry, so several instances can
// coexist in tests.
func New() *Metrics {
	return MustNew(prometheus.NewRegistry())
}

// MustNew registers the collectors on reg and panics on duplicate registration.
func MustNew(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		llmCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "neurotype",
			Subsystem: "llm",
			Name:      "calls_total",
			Help:      "LLM calls by model, operation and outcome.",
		}, []string{"model", "operation", "outcome"}),
		llmLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "neurotype",
			Subsystem: "llm",
			Name:      "call_duration_seconds",
			Help:      "LLM call latency.",
			Buckets:   []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32, 64},
		}, []string{"model", "operation"}),
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "neurotype",
			Subsystem: "questionnaire",
			Name:      "submissions_total",
			Help:      "Scored submissions by age band and whether a dominant type was found.",
		}, []string{"age_band", "dominant"}),
		analyses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "neurotype",
			Subsystem: "analysis",
			Name:      "results_total",
			Help:      "Analysis outcomes by kind (ok, InvalidInput, TransportFailure, EmptyOutput, MalformedOutput).",
		}, []string{"kind"}),
		staleDiscards: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "neurotype",
			Subsystem: "analysis",
			Name:      "stale_results_discarded_total",
			Help:      "Analysis results dropped because a newer request superseded them.",
		}),
		sessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "neurotype",
			Subsystem: "session",
			Name:      "active",
			Help:      "Sessions currently held in memory.",
		}),
	}
	reg.MustRegister(m.llmCalls, m.llmLatency, m.submissions, m.analyses, m.staleDiscards, m.sessions)
	if g, ok := reg.(prometheus.Gatherer); ok {
		m.reg = g
	}
	return m
}

func (m *Metrics) ObserveLLMCall(model, operation, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.llmCalls.WithLabelValues(model, operation, outcome).Inc()
	m.llmLatency.WithLabelValues(model, operation).Observe(elapsed.Seconds())
}

func (m *Metrics) ObserveSubmission(ageBand string, dominant bool) {
	if m == nil {
		return
	}
	label := "false"
	if dominant {
		label = "true"
	}
	m.submissions.WithLabelValues(ageBand, label).Inc()
}

func (m *Metrics) ObserveAnalysis(kind string) {
	if m == nil {
		return
	}
	m.analyses.WithLabelValues(kind).Inc()
}

func (m *Metrics) ObserveStaleDiscard() {
	if m == nil {
		return
	}
	m.staleDiscards.Inc()
}

func (m *Metrics) SetSessions(n int) {
	if m == nil {
		return
	}
	m.sessions.Set(float64(n))
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	if m == nil || m.reg == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{})
}
