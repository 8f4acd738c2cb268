package llm

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	llmclient "neurotype/internal/llm/client"
	"neurotype/internal/metrics"
)

// WithMetrics records call counts and latency per model, operation and outcome.
func WithMetrics(m *metrics.Metrics) Middleware {
	return func(next llmclient.LLMClient) llmclient.LLMClient {
		if m == nil {
			return next
		}
		return &metered{next: next, m: m}
	}
}

type metered struct {
	next llmclient.LLMClient
	m    *metrics.Metrics
}

func (c *metered) Name() string { return c.next.Name() }
func (c *metered) Close() error { return c.next.Close() }

func (c *metered) GenerateJSON(ctx context.Context, prompt string, input any) (json.RawMessage, error) {
	start := time.Now()
	raw, err := c.next.GenerateJSON(ctx, prompt, input)
	c.m.ObserveLLMCall(c.next.Name(), llmclient.OperationFrom(ctx), callOutcome(err), time.Since(start))
	return raw, err
}

func callOutcome(err error) string {
	var empty *llmclient.EmptyOutputError
	switch {
	case err == nil:
		return "ok"
	case errors.As(err, &empty):
		return "empty_output"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	default:
		return "error"
	}
}
