package llm

import (
	"context"
	"encoding/json"
	"time"

	llmclient "neurotype/internal/llm/client"
)

// WithTimeout bounds each call. d <= 0 leaves calls bounded only by the caller's context.
func WithTimeout(d time.Duration) Middleware {
	return func(next llmclient.LLMClient) llmclient.LLMClient {
		if d <= 0 {
			return next
		}
		return &timeoutClient{next: next, d: d}
	}
}

type timeoutClient struct {
	next llmclient.LLMClient
	d    time.Duration
}

func (t *timeoutClient) Name() string { return t.next.Name() }
func (t *timeoutClient) Close() error { return t.next.Close() }

func (t *timeoutClient) GenerateJSON(ctx context.Context, prompt string, input any) (json.RawMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, t.d)
	defer cancel()
	return t.next.GenerateJSON(ctx, prompt, input)
}
