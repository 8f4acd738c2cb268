package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"neurotype/internal/analysis"
	"neurotype/internal/questionnaire"
	"neurotype/internal/session"
)

type instantAnalyzer struct{}

func (instantAnalyzer) Analyze(_ context.Context, titles []string) (analysis.Result, error) {
	return analysis.Result{
		CharacterAnalysis: "Profile for " + strings.Join(titles, ", "),
		ParentingTips:     []string{"Keep routines predictable."},
	}, nil
}

func newWatchServer(t *testing.T) (*httptest.Server, *session.Manager) {
	t.Helper()
	sessions := session.NewManager(instantAnalyzer{}, session.Options{})
	mux := http.NewServeMux()
	mux.Handle("GET /ws/analysis", NewAnalysisWatchHandler(sessions, nil))
	srv := httptest.NewServer(mux)
	t.Cleanup(func() {
		srv.Close()
		sessions.Close()
	})
	return srv, sessions
}

func dialWatch(t *testing.T, srv *httptest.Server, sessionID string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/analysis?session_id=" + sessionID
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func readUntil(t *testing.T, conn *websocket.Conn, match func(watchWSOutbound) bool) watchWSOutbound {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	for {
		var msg watchWSOutbound
		require.NoError(t, conn.ReadJSON(&msg))
		if match(msg) {
			return msg
		}
	}
}

func TestAnalysisWatch_StreamsStates(t *testing.T) {
	srv, sessions := newWatchServer(t)
	v, err := sessions.Start(questionnaire.AgeBandGeneral)
	require.NoError(t, err)

	conn := dialWatch(t, srv, v.ID)

	var first watchWSOutbound
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	require.NoError(t, conn.ReadJSON(&first))
	assert.Equal(t, "subscribed", first.Type)
	assert.Equal(t, v.ID, first.SessionID)

	idle := readUntil(t, conn, func(m watchWSOutbound) bool { return m.Type == "analysis_state" })
	require.NotNil(t, idle.Analysis)
	assert.Equal(t, analysis.StateIdle, idle.Analysis.State)

	yes := true
	require.NoError(t, sessions.SetAnswer(v.ID, "t2_q1", &yes))
	_, _, err = sessions.Submit(v.ID)
	require.NoError(t, err)

	done := readUntil(t, conn, func(m watchWSOutbound) bool {
		return m.Type == "analysis_state" && m.Analysis != nil && m.Analysis.State == analysis.StateSucceeded
	})
	require.NotNil(t, done.Analysis.Result)
	assert.Equal(t, "Profile for Type 2: Highly Reactive / Big Reactor", done.Analysis.Result.CharacterAnalysis)
	assert.Equal(t, []string{"Type 2: Highly Reactive / Big Reactor"}, done.Analysis.DominantTypes)
}

func TestAnalysisWatch_ClientMessages(t *testing.T) {
	srv, sessions := newWatchServer(t)
	v, err := sessions.Start(questionnaire.AgeBandToddler)
	require.NoError(t, err)

	conn := dialWatch(t, srv, v.ID)

	require.NoError(t, conn.WriteJSON(map[string]string{"type": "ping"}))
	readUntil(t, conn, func(m watchWSOutbound) bool { return m.Type == "pong" })

	require.NoError(t, conn.WriteJSON(map[string]string{"type": "bogus"}))
	bad := readUntil(t, conn, func(m watchWSOutbound) bool { return m.Type == "error" })
	assert.Equal(t, "invalid_argument", bad.Code)
	assert.Contains(t, bad.Message, "bogus")

	require.NoError(t, conn.WriteJSON(map[string]string{"type": "get"}))
	got := readUntil(t, conn, func(m watchWSOutbound) bool { return m.Type == "analysis_state" })
	require.NotNil(t, got.Analysis)
	assert.Equal(t, analysis.StateIdle, got.Analysis.State)
}

func TestAnalysisWatch_UnknownSession(t *testing.T) {
	srv, _ := newWatchServer(t)
	conn := dialWatch(t, srv, "missing")

	var msg watchWSOutbound
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, "error", msg.Type)
	assert.Equal(t, "not_found", msg.Code)
}

func TestAnalysisWatch_RequiresSessionID(t *testing.T) {
	srv, _ := newWatchServer(t)

	resp, err := srv.Client().Get(srv.URL + "/ws/analysis")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
