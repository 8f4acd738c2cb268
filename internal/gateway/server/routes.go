package server

import (
	"net/http"

	"neurotype/internal/gateway/handler"
	"neurotype/internal/gateway/handler/rpc"
	"neurotype/internal/gateway/middleware"
)

func NewMux(
	questionnaireHandler *rpc.QuestionnaireHandler,
	watchHandler *handler.AnalysisWatchHandler,
	metricsHandler http.Handler,
) http.Handler {
	mux := http.NewServeMux()

	// RPC Handlers
	for path, h := range questionnaireHandler.Routes() {
		mux.Handle(path, h)
	}

	// Streaming
	mux.Handle("GET /ws/analysis", watchHandler)

	// Ops
	mux.Handle("GET /metrics", metricsHandler)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Middleware
	return middleware.CORS(mux)
}
