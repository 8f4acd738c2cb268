// Package analysis asks the language model for a character analysis and
// parenting tips for a set of dominant nervous system types.
package analysis

import (
	"context"
	"errors"
	"strings"
	"time"

	llmclient "neurotype/internal/llm/client"
	"neurotype/internal/logger"
	"neurotype/internal/metrics"
)

// Result is the structured output of one analysis call.
type Result struct {
	CharacterAnalysis string   `json:"characterAnalysis"`
	ParentingTips     []string `json:"parentingTips"`
}

type Options struct {
	Logger  *logger.Logger
	Metrics *metrics.Metrics
}

// Service issues analysis requests. It keeps no per-request state and is safe
// for concurrent use.
type Service struct {
	llm     llmclient.LLMClient
	log     *logger.Logger
	metrics *metrics.Metrics
}

func New(client llmclient.LLMClient, opts Options) *Service {
	return &Service{
		llm:     client,
		log:     logger.OrNop(opts.Logger),
		metrics: opts.Metrics,
	}
}

// Analyze sends one request for the given dominant type titles. Every failure
// is an *Error. An empty title list fails with KindInvalidInput before any
// call is made. There is no retry and no caching.
func (s *Service) Analyze(ctx context.Context, titles []string) (Result, error) {
	start := time.Now()
	res, err := s.analyze(ctx, titles)

	outcome := "ok"
	if kind, ok := KindOf(err); ok {
		outcome = string(kind)
	}
	s.metrics.ObserveAnalysis(outcome)
	if err != nil {
		s.log.Warn("analysis failed", "outcome", outcome, "types", len(titles), "elapsed", time.Since(start), "error", err)
	} else {
		s.log.Info("analysis completed", "types", len(titles), "tips", len(res.ParentingTips), "elapsed", time.Since(start))
	}
	return res, err
}

func (s *Service) analyze(ctx context.Context, titles []string) (Result, error) {
	clean := cleanTitles(titles)
	if len(clean) == 0 {
		return Result{}, newError(KindInvalidInput, "At least one dominant type is required.", nil)
	}
	if s.llm == nil {
		return Result{}, newError(KindTransportFailure, "AI analysis is not configured.", nil)
	}

	prompt, err := buildPrompt(clean)
	if err != nil {
		return Result{}, newError(KindInvalidInput, "Could not build the analysis request.", err)
	}

	ctx = llmclient.WithOperation(ctx, llmclient.OperationNeurotypeAnalysis)
	ctx = llmclient.WithResponseSchema(ctx, responseSchema())
	raw, err := s.llm.GenerateJSON(ctx, prompt, nil)
	if err != nil {
		return Result{}, classify(err)
	}
	return parseResult(raw)
}

func classify(err error) *Error {
	var empty *llmclient.EmptyOutputError
	if errors.As(err, &empty) {
		e := newError(KindEmptyOutput, empty.Error(), err)
		e.Diagnostics = empty.Diagnostics()
		return e
	}
	msg := "AI analysis request failed: " + err.Error()
	if errors.Is(err, context.DeadlineExceeded) {
		msg = "AI analysis request timed out."
	}
	return newError(KindTransportFailure, msg, err)
}

func cleanTitles(titles []string) []string {
	out := make([]string, 0, len(titles))
	for _, t := range titles {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}
