package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"neurotype/internal/analysis"
	"neurotype/internal/logger"
	"neurotype/internal/session"
)

const (
	watchWSWriteWait = 10 * time.Second
	watchWSPongWait  = 60 * time.Second
	watchWSPingEvery = (watchWSPongWait * 9) / 10
)

var watchWSUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(_ *http.Request) bool {
		return true
	},
}

type watchWSInbound struct {
	Type string `json:"type"`
}

type watchWSOutbound struct {
	Type      string             `json:"type"`
	SessionID string             `json:"sessionId,omitempty"`
	Analysis  *analysis.Snapshot `json:"analysis,omitempty"`
	Code      string             `json:"code,omitempty"`
	Message   string             `json:"message,omitempty"`
}

// AnalysisWatchHandler streams a session's analysis state over a websocket.
type AnalysisWatchHandler struct {
	sessions *session.Manager
	log      *logger.Logger
}

func NewAnalysisWatchHandler(sessions *session.Manager, log *logger.Logger) *AnalysisWatchHandler {
	return &AnalysisWatchHandler{sessions: sessions, log: logger.OrNop(log)}
}

func (h *AnalysisWatchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sessionID := strings.TrimSpace(r.URL.Query().Get("session_id"))
	if sessionID == "" {
		http.Error(w, "session_id is required", http.StatusBadRequest)
		return
	}

	conn, err := watchWSUpgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	if err := conn.SetReadDeadline(time.Now().Add(watchWSPongWait)); err != nil {
		h.log.Warn("analysis ws set read deadline failed", "error", err)
		return
	}
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(watchWSPongWait))
	})

	subCh, subErr := h.sessions.Subscribe(ctx, sessionID)
	if subErr != nil {
		code := "internal"
		if errors.Is(subErr, session.ErrNotFound) {
			code = "not_found"
		}
		_ = conn.SetWriteDeadline(time.Now().Add(watchWSWriteWait))
		_ = conn.WriteJSON(watchWSOutbound{
			Type:    "error",
			Code:    code,
			Message: subErr.Error(),
		})
		return
	}

	writeCh := make(chan watchWSOutbound, 32)
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		ticker := time.NewTicker(watchWSPingEvery)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case out := <-writeCh:
				if err := conn.SetWriteDeadline(time.Now().Add(watchWSWriteWait)); err != nil {
					return
				}
				if err := conn.WriteJSON(out); err != nil {
					return
				}
			case <-ticker.C:
				if err := conn.SetWriteDeadline(time.Now().Add(watchWSWriteWait)); err != nil {
					return
				}
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					return
				}
			}
		}
	}()

	pushWatchWS(writeCh, watchWSOutbound{
		Type:      "subscribed",
		SessionID: sessionID,
	})

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case snap, ok := <-subCh:
				if !ok {
					pushWatchWS(writeCh, watchWSOutbound{
						Type:      "error",
						SessionID: sessionID,
						Code:      "not_found",
						Message:   "session closed",
					})
					return
				}
				pushWatchWS(writeCh, watchWSOutbound{
					Type:      "analysis_state",
					SessionID: sessionID,
					Analysis:  &snap,
				})
			}
		}
	}()

	for {
		var in watchWSInbound
		if err := conn.ReadJSON(&in); err != nil {
			cancel()
			<-writerDone
			return
		}
		switch strings.ToLower(strings.TrimSpace(in.Type)) {
		case "ping":
			pushWatchWS(writeCh, watchWSOutbound{Type: "pong"})
		case "get":
			snap, err := h.sessions.Analysis(sessionID)
			if err != nil {
				pushWatchWS(writeCh, watchWSOutbound{Type: "error", Code: "not_found", Message: err.Error()})
				continue
			}
			pushWatchWS(writeCh, watchWSOutbound{Type: "analysis_state", SessionID: sessionID, Analysis: &snap})
		case "":
			pushWatchWS(writeCh, watchWSOutbound{
				Type:    "error",
				Code:    "invalid_argument",
				Message: "type is required",
			})
		default:
			pushWatchWS(writeCh, watchWSOutbound{
				Type:    "error",
				Code:    "invalid_argument",
				Message: "unsupported type: " + in.Type,
			})
		}
	}
}

func pushWatchWS(writeCh chan watchWSOutbound, out watchWSOutbound) {
	if writeCh == nil {
		return
	}
	select {
	case writeCh <- out:
		return
	default:
	}
	select {
	case <-writeCh:
	default:
	}
	select {
	case writeCh <- out:
	default:
	}
}
