package analysis

import (
	"errors"
	"strings"
	"sync"
)

// State is the analysis step of one session.
type State string

const (
	StateIdle       State = "idle"
	StateRequesting State = "requesting"
	StateSucceeded  State = "succeeded"
	StateFailed     State = "failed"
)

// Snapshot is a copy of a tracker's current state.
type Snapshot struct {
	State         State    `json:"state"`
	Generation    uint64   `json:"generation"`
	DominantTypes []string `json:"dominantTypes,omitempty"`
	Result        *Result  `json:"result,omitempty"`
	Error         *Error   `json:"error,omitempty"`
}

// Ticket identifies the request a resolution belongs to.
type Ticket struct {
	Generation uint64
	Key        string
}

// Tracker follows Idle -> Requesting -> Succeeded|Failed for the latest
// dominant set. Each new dominant set gets a new generation; a resolution
// for an older generation is dropped, so the last issued request wins no
// matter in which order the calls return.
type Tracker struct {
	mu   sync.Mutex
	key  string
	snap Snapshot
}

func NewTracker() *Tracker {
	return &Tracker{snap: Snapshot{State: StateIdle}}
}

// DominantKey identifies a dominant set by its ordered titles.
func DominantKey(titles []string) string {
	return strings.Join(titles, "\x1f")
}

// Begin records titles as the current dominant set. It returns a ticket and
// true when a new request must be issued. An empty set resets to Idle. An
// unchanged set that is requesting or succeeded returns false and keeps its
// state; after a failure the same set is requested again.
func (t *Tracker) Begin(titles []string) (Ticket, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	key := DominantKey(titles)
	if len(titles) == 0 {
		if t.snap.State != StateIdle || t.key != "" {
			t.resetLocked()
		}
		return Ticket{}, false
	}
	if key == t.key && (t.snap.State == StateRequesting || t.snap.State == StateSucceeded) {
		return Ticket{Generation: t.snap.Generation, Key: key}, false
	}

	t.key = key
	t.snap = Snapshot{
		State:         StateRequesting,
		Generation:    t.snap.Generation + 1,
		DominantTypes: append([]string(nil), titles...),
	}
	return Ticket{Generation: t.snap.Generation, Key: key}, true
}

// Resolve stores the outcome of the request identified by tk. It returns false
// and changes nothing when tk is stale.
func (t *Tracker) Resolve(tk Ticket, res Result, err error) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if tk.Generation != t.snap.Generation || tk.Key != t.key || t.snap.State != StateRequesting {
		return false
	}
	if err != nil {
		var ae *Error
		if !errors.As(err, &ae) {
			ae = newError(KindTransportFailure, err.Error(), err)
		}
		t.snap.State = StateFailed
		t.snap.Error = ae
		return true
	}
	r := res
	r.ParentingTips = append([]string(nil), res.ParentingTips...)
	t.snap.State = StateSucceeded
	t.snap.Result = &r
	return true
}

// Reset returns to Idle and invalidates any outstanding request.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.resetLocked()
}

func (t *Tracker) resetLocked() {
	t.key = ""
	t.snap = Snapshot{State: StateIdle, Generation: t.snap.Generation + 1}
}

func (t *Tracker) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	s := t.snap
	s.DominantTypes = append([]string(nil), t.snap.DominantTypes...)
	return s
}
