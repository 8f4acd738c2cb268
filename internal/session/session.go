package session

import (
	"sync"
	"time"

	"neurotype/internal/analysis"
	"neurotype/internal/questionnaire"
	"neurotype/internal/scoring"
)

// Session holds one parent's walk through the questionnaire. The catalog is
// fixed when the session starts.
type Session struct {
	id        string
	createdAt time.Time
	catalog   questionnaire.Catalog
	tracker   *analysis.Tracker

	mu      sync.Mutex
	answers scoring.Answers
	last    *scoring.Result
	changed chan struct{}
	done    chan struct{}
	closed  bool
}

func newSession(id string, catalog questionnaire.Catalog) *Session {
	return &Session{
		id:        id,
		createdAt: time.Now(),
		catalog:   catalog,
		tracker:   analysis.NewTracker(),
		answers:   make(scoring.Answers),
		changed:   make(chan struct{}),
		done:      make(chan struct{}),
	}
}

// View is a read-only copy of a session's answers.
type View struct {
	ID        string                `json:"sessionId"`
	AgeBand   questionnaire.AgeBand `json:"ageBand"`
	Answers   map[string]bool       `json:"answers"`
	Answered  int                   `json:"answered"`
	Questions int                   `json:"questions"`
	Scores    *scoring.Result       `json:"scores,omitempty"`
	Analysis  analysis.Snapshot     `json:"analysis"`
	CreatedAt time.Time             `json:"createdAt"`
}

func (s *Session) viewLocked() View {
	answers := make(map[string]bool, len(s.answers))
	for k, v := range s.answers {
		answers[k] = v
	}
	return View{
		ID:        s.id,
		AgeBand:   s.catalog.AgeBand(),
		Answers:   answers,
		Answered:  len(answers),
		Questions: s.catalog.QuestionCount(),
		Scores:    s.last,
		Analysis:  s.tracker.Snapshot(),
		CreatedAt: s.createdAt,
	}
}

// notifyLocked wakes every subscriber waiting on the current change channel.
func (s *Session) notifyLocked() {
	if s.closed {
		return
	}
	close(s.changed)
	s.changed = make(chan struct{})
}

func (s *Session) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	close(s.done)
}
