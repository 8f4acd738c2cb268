package middleware

import (
	"net/http"
	"strings"
)

var (
	corsAllowHeaders = strings.Join([]string{
		"Accept", "Content-Type", "Content-Length", "Accept-Encoding", "Authorization",
		"Connect-Protocol-Version", "Connect-Timeout-Ms", "Connect-Content-Encoding", "Connect-Accept-Encoding",
		"Grpc-Timeout", "X-Grpc-Web", "X-User-Agent",
	}, ", ")
	// Analysis failures carry their kind and diagnostics in these headers.
	corsExposeHeaders = strings.Join([]string{
		"Grpc-Status", "Grpc-Message", "Grpc-Encoding", "Grpc-Accept-Encoding",
		"Connect-Content-Encoding", "Connect-Accept-Encoding",
		"Neurotype-Error-Kind",
		"Neurotype-Diag-FinishReason", "Neurotype-Diag-FinishMessage",
		"Neurotype-Diag-BlockReason", "Neurotype-Diag-BlockReasonMessage",
		"Neurotype-Diag-BlockedCategories",
	}, ", ")
)

func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := strings.TrimSpace(r.Header.Get("Origin"))
		if origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Vary", "Origin")
		} else {
			w.Header().Set("Access-Control-Allow-Origin", "*")
		}
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", corsAllowHeaders)
		w.Header().Set("Access-Control-Expose-Headers", corsExposeHeaders)
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
