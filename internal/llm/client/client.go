package llmclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// LLMClient defines the interface for LLM providers.
type LLMClient interface {
	Name() string
	Close() error
	// GenerateJSON sends prompt (plus input, when non-nil) and returns the
	// model's JSON text. A response without usable text is reported as
	// *EmptyOutputError.
	GenerateJSON(ctx context.Context, prompt string, input any) (json.RawMessage, error)
}

var ErrMissingAPIKey = errors.New("llm: api key is not configured")

// EmptyOutputError reports a response that arrived but carried no usable
// output, with whatever diagnostics the provider attached.
type EmptyOutputError struct {
	FinishReason       string
	FinishMessage      string
	BlockReason        string
	BlockReasonMessage string
	BlockedCategories  []string
}

func (e *EmptyOutputError) Error() string {
	var b strings.Builder
	b.WriteString("AI analysis failed to generate an output.")
	if e.FinishReason != "" {
		fmt.Fprintf(&b, " Finish Reason: %s.", e.FinishReason)
	}
	if e.FinishMessage != "" {
		fmt.Fprintf(&b, " Finish Message: %s.", e.FinishMessage)
	}
	if e.BlockReason != "" {
		fmt.Fprintf(&b, " Prompt blocked: %s.", e.BlockReason)
	}
	if e.BlockReasonMessage != "" {
		fmt.Fprintf(&b, " Block Message: %s.", e.BlockReasonMessage)
	}
	if len(e.BlockedCategories) > 0 {
		fmt.Fprintf(&b, " Blocked due to safety categories: %s.", strings.Join(e.BlockedCategories, ", "))
	}
	return b.String()
}

// Diagnostics flattens the non-empty fields into key/value pairs.
func (e *EmptyOutputError) Diagnostics() map[string]string {
	out := map[string]string{}
	if e.FinishReason != "" {
		out["finishReason"] = e.FinishReason
	}
	if e.FinishMessage != "" {
		out["finishMessage"] = e.FinishMessage
	}
	if e.BlockReason != "" {
		out["blockReason"] = e.BlockReason
	}
	if e.BlockReasonMessage != "" {
		out["blockReasonMessage"] = e.BlockReasonMessage
	}
	if len(e.BlockedCategories) > 0 {
		out["blockedCategories"] = strings.Join(e.BlockedCategories, ",")
	}
	return out
}

// Unavailable returns a client whose every call fails with err. It stands in
// for a provider that could not be configured at startup.
func Unavailable(name string, err error) LLMClient {
	return &unavailable{name: name, err: err}
}

type unavailable struct {
	name string
	err  error
}

func (u *unavailable) Name() string { return u.name }
func (u *unavailable) Close() error { return nil }
func (u *unavailable) GenerateJSON(context.Context, string, any) (json.RawMessage, error) {
	return nil, u.err
}
