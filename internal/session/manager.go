// Package session keeps in-memory questionnaire sessions and runs the
// analysis call for each new dominant set in the background.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"neurotype/internal/analysis"
	"neurotype/internal/logger"
	"neurotype/internal/metrics"
	"neurotype/internal/questionnaire"
	"neurotype/internal/scoring"
)

var (
	ErrNotFound        = errors.New("session: not found")
	ErrUnknownQuestion = errors.New("session: unknown question")
	ErrClosed          = errors.New("session: manager is closed")
)

const (
	DefaultCapacity = 1024
	DefaultTTL      = 2 * time.Hour
)

// Analyzer produces an analysis for an ordered list of dominant type titles.
type Analyzer interface {
	Analyze(ctx context.Context, titles []string) (analysis.Result, error)
}

type Options struct {
	Capacity int
	TTL      time.Duration
	Logger   *logger.Logger
	Metrics  *metrics.Metrics
}

// Manager owns every live session. The oldest sessions beyond Capacity, and
// any session started more than TTL ago, are evicted.
type Manager struct {
	analyzer Analyzer
	log      *logger.Logger
	metrics  *metrics.Metrics
	store    *expirable.LRU[string, *Session]

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewManager(analyzer Analyzer, opts Options) *Manager {
	capacity := opts.Capacity
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	ctx, cancel := context.WithCancel(context.Background())
	m := &Manager{
		analyzer: analyzer,
		log:      logger.OrNop(opts.Logger),
		metrics:  opts.Metrics,
		ctx:      ctx,
		cancel:   cancel,
	}
	// Runs under the store lock: must not call back into the store.
	m.store = expirable.NewLRU[string, *Session](capacity, func(_ string, s *Session) {
		s.close()
	}, ttl)
	return m
}

// Start opens a session on the catalog for band.
func (m *Manager) Start(band questionnaire.AgeBand) (View, error) {
	if m.ctx.Err() != nil {
		return View{}, ErrClosed
	}
	s := newSession(uuid.NewString(), questionnaire.ForAgeBand(band))
	m.store.Add(s.id, s)
	m.metrics.SetSessions(m.store.Len())
	m.log.Debug("session started", "session_id", s.id, "age_band", band)

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked(), nil
}

func (m *Manager) get(id string) (*Session, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("%w: session id is required", ErrNotFound)
	}
	s, ok := m.store.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return s, nil
}

// Get returns the current view of a session.
func (m *Manager) Get(id string) (View, error) {
	s, err := m.get(id)
	if err != nil {
		return View{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked(), nil
}

// Catalog returns the catalog a session was started with.
func (m *Manager) Catalog(id string) (questionnaire.Catalog, error) {
	s, err := m.get(id)
	if err != nil {
		return questionnaire.Catalog{}, err
	}
	return s.catalog, nil
}

// SetAnswer records answer for questionID; a nil answer clears it. Scores are
// not recomputed until Submit.
func (m *Manager) SetAnswer(id, questionID string, answer *bool) error {
	s, err := m.get(id)
	if err != nil {
		return err
	}
	if !s.catalog.HasQuestion(questionID) {
		return fmt.Errorf("%w: %q is not in the %s catalog", ErrUnknownQuestion, questionID, s.catalog.AgeBand())
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if answer == nil {
		delete(s.answers, questionID)
	} else {
		s.answers[questionID] = *answer
	}
	return nil
}

// Submit scores the current answers. When the dominant set differs from the
// previous submit, a new analysis request is started in the background and
// any outstanding one is disregarded; an empty dominant set returns the
// analysis to idle without a call.
func (m *Manager) Submit(id string) (scoring.Result, analysis.Snapshot, error) {
	s, err := m.get(id)
	if err != nil {
		return scoring.Result{}, analysis.Snapshot{}, err
	}

	s.mu.Lock()
	res := scoring.Score(s.catalog, s.answers)
	s.last = &res
	titles := res.DominantTitles()
	before := s.tracker.Snapshot()
	tk, issue := s.tracker.Begin(titles)
	snap := s.tracker.Snapshot()
	if snap.Generation != before.Generation || snap.State != before.State {
		s.notifyLocked()
	}
	s.mu.Unlock()

	m.metrics.ObserveSubmission(string(s.catalog.AgeBand()), res.HasDominant())
	m.log.Info("questionnaire submitted",
		"session_id", s.id,
		"age_band", s.catalog.AgeBand(),
		"total", res.Total,
		"dominant", len(res.Dominant),
		"analysis_requested", issue,
	)

	if issue {
		m.runAnalysis(s, tk, titles)
	}
	return res, snap, nil
}

func (m *Manager) runAnalysis(s *Session, tk analysis.Ticket, titles []string) {
	if m.analyzer == nil {
		return
	}
	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		res, err := m.analyzer.Analyze(m.ctx, titles)

		s.mu.Lock()
		applied := s.tracker.Resolve(tk, res, err)
		if applied {
			s.notifyLocked()
		}
		s.mu.Unlock()

		if !applied {
			m.metrics.ObserveStaleDiscard()
			m.log.Debug("stale analysis discarded", "session_id", s.id, "generation", tk.Generation)
		}
	}()
}

// Analysis returns the analysis state of a session.
func (m *Manager) Analysis(id string) (analysis.Snapshot, error) {
	s, err := m.get(id)
	if err != nil {
		return analysis.Snapshot{}, err
	}
	return s.tracker.Snapshot(), nil
}

// Restart clears answers, scores and analysis but keeps the age band.
func (m *Manager) Restart(id string) (View, error) {
	s, err := m.get(id)
	if err != nil {
		return View{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.answers = make(scoring.Answers)
	s.last = nil
	s.tracker.Reset()
	s.notifyLocked()
	return s.viewLocked(), nil
}

// Subscribe emits the analysis state of a session now and after every change,
// until ctx is canceled or the session is evicted. Slow readers only see the
// latest state.
func (m *Manager) Subscribe(ctx context.Context, id string) (<-chan analysis.Snapshot, error) {
	s, err := m.get(id)
	if err != nil {
		return nil, err
	}
	out := make(chan analysis.Snapshot, 4)
	go func() {
		defer close(out)
		for {
			s.mu.Lock()
			snap := s.tracker.Snapshot()
			ch := s.changed
			s.mu.Unlock()

			pushSnapshot(out, snap)

			select {
			case <-ctx.Done():
				return
			case <-m.ctx.Done():
				return
			case <-s.done:
				return
			case <-ch:
			}
		}
	}()
	return out, nil
}

func pushSnapshot(out chan analysis.Snapshot, snap analysis.Snapshot) {
	select {
	case out <- snap:
		return
	default:
	}
	select {
	case <-out:
	default:
	}
	select {
	case out <- snap:
	default:
	}
}

// Len reports the number of live sessions.
func (m *Manager) Len() int {
	n := m.store.Len()
	m.metrics.SetSessions(n)
	return n
}

// Wait blocks until every background analysis has returned.
func (m *Manager) Wait() { m.wg.Wait() }

// Close cancels outstanding analyses, waits for them and drops all sessions.
func (m *Manager) Close() {
	m.cancel()
	m.wg.Wait()
	m.store.Purge()
	m.metrics.SetSessions(0)
}
