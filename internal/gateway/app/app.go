package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"neurotype/internal/analysis"
	"neurotype/internal/gateway/config"
	"neurotype/internal/gateway/handler"
	"neurotype/internal/gateway/handler/rpc"
	"neurotype/internal/gateway/server"
	llmclient "neurotype/internal/llm/client"
	llmmiddleware "neurotype/internal/llm/middleware"
	"neurotype/internal/logger"
	"neurotype/internal/metrics"
	"neurotype/internal/session"
)

type App struct {
	server   *server.Server
	handler  http.Handler
	sessions *session.Manager
	llm      llmclient.LLMClient
	log      *logger.Logger
}

func New(ctx context.Context, cfg *config.Config, log *logger.Logger) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}
	log = logger.OrNop(log)
	for _, w := range cfg.Warnings {
		log.Warn("config", "warning", w)
	}

	// Dependencies
	m := metrics.New()
	llm := llmmiddleware.Wrap(newLLMClient(ctx, cfg.LLM, log),
		llmmiddleware.WithLogging(log),
		llmmiddleware.WithMetrics(m),
		llmmiddleware.WithTimeout(cfg.LLM.Timeout),
	)
	analyzer := analysis.New(llm, analysis.Options{Logger: log, Metrics: m})
	sessions := session.NewManager(analyzer, session.Options{
		Capacity: cfg.Session.Capacity,
		TTL:      cfg.Session.TTL,
		Logger:   log,
		Metrics:  m,
	})

	questionnaireHandler := rpc.NewQuestionnaireHandler(analyzer, sessions)
	watchHandler := handler.NewAnalysisWatchHandler(sessions, log)

	// Routing & Server
	mux := server.NewMux(questionnaireHandler, watchHandler, m.Handler())
	srv := server.New(cfg.Port, mux, log)

	return &App{
		server:   srv,
		handler:  mux,
		sessions: sessions,
		llm:      llm,
		log:      log,
	}, nil
}

// newLLMClient never fails: a provider that cannot be built is replaced by
// one whose calls fail, so the questionnaire keeps working without analysis.
func newLLMClient(ctx context.Context, cfg config.LLMConfig, log *logger.Logger) llmclient.LLMClient {
	switch cfg.Provider {
	case config.ProviderFake:
		log.Info("using fake LLM provider")
		return llmclient.NewFakeClient()
	default:
		cli, err := llmclient.NewGeminiClient(ctx, cfg.APIKey, cfg.Model)
		if err != nil {
			if errors.Is(err, llmclient.ErrMissingAPIKey) {
				log.Warn("Gemini API key is missing; analysis requests will fail until it is configured")
			} else {
				log.Error("Gemini client init failed", "error", err)
			}
			return llmclient.Unavailable("Gemini:"+cfg.Model, err)
		}
		log.Info("using Gemini provider", "model", cfg.Model)
		return cli
	}
}

// Handler exposes the routed handler, for tests and embedding.
func (a *App) Handler() http.Handler { return a.handler }

func (a *App) Start() error {
	return a.server.Start()
}

func (a *App) Shutdown(ctx context.Context) error {
	err := a.server.Shutdown(ctx)
	a.sessions.Close()
	if cerr := a.llm.Close(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}
