package llm

import (
	"context"
	"encoding/json"
	"time"

	llmclient "neurotype/internal/llm/client"
	"neurotype/internal/logger"
)

// WithLogging logs request size, latency and errors. A nil logger disables output.
func WithLogging(log *logger.Logger) Middleware {
	log = logger.OrNop(log)
	return func(next llmclient.LLMClient) llmclient.LLMClient {
		return &logging{next: next, log: log}
	}
}

type logging struct {
	next llmclient.LLMClient
	log  *logger.Logger
}

func (l *logging) Name() string { return l.next.Name() }
func (l *logging) Close() error { return l.next.Close() }

func (l *logging) GenerateJSON(ctx context.Context, prompt string, input any) (json.RawMessage, error) {
	size := len(prompt)
	if input != nil {
		in, _ := json.Marshal(input)
		size += len(in)
	}
	op := llmclient.OperationFrom(ctx)
	l.log.Debug("LLM request", "operation", op, "model", l.next.Name(), "bytes", size)

	start := time.Now()
	raw, err := l.next.GenerateJSON(ctx, prompt, input)
	elapsed := time.Since(start)
	if err != nil {
		l.log.Warn("LLM error", "operation", op, "model", l.next.Name(), "elapsed", elapsed, "error", err)
		return raw, err
	}
	l.log.Info("LLM response", "operation", op, "model", l.next.Name(), "elapsed", elapsed, "bytes", len(raw))
	return raw, nil
}
