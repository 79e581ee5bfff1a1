// Package render holds the page view state produced by the poll cycle.
//
// The poller writes through the Renderer interface; the HTTP adapter reads
// the resulting View. Render targets are injected rather than mutated as
// ambient global state, so the cycle can be exercised in tests without a
// browser or a live page.
package render

import (
	"sync"
	"time"

	"github.com/couchcryptid/uv-advisory-service/internal/domain"
)

// Renderer receives the outcome of each poll cycle.
type Renderer interface {
	// Render replaces the displayed value and advisory with a fresh observation.
	Render(obs domain.Observation, tier domain.Tier)
	// MarkUnavailable records a failed cycle. The previously displayed value
	// and advisory are retained; only staleness metadata changes.
	MarkUnavailable(err error)
}

// View is the renderable page state: the two page regions plus staleness
// metadata for the status line.
type View struct {
	IndexValue string      `json:"indexValue"`
	Message    string      `json:"message"`
	Tier       domain.Tier `json:"tier,omitempty"`
	Location   string      `json:"location,omitempty"`
	UpdatedAt  time.Time   `json:"updated_at,omitzero"`

	// Stale is true when the most recent cycle failed. IndexValue and
	// Message still carry the last successful observation, if any.
	Stale       bool      `json:"stale"`
	LastError   string    `json:"last_error,omitempty"`
	LastErrorAt time.Time `json:"last_error_at,omitzero"`
}

// Snapshot is a thread-safe Renderer holding the latest View.
type Snapshot struct {
	mu   sync.RWMutex
	view View
}

// NewSnapshot creates an empty snapshot. Until the first successful cycle the
// view's regions are empty, matching a page that has not rendered yet.
func NewSnapshot() *Snapshot {
	return &Snapshot{}
}

// Render stores a successful observation, clearing any staleness.
func (s *Snapshot) Render(obs domain.Observation, tier domain.Tier) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.view = View{
		IndexValue: obs.RawIndex,
		Message:    tier.Advisory(),
		Tier:       tier,
		Location:   obs.Location,
		UpdatedAt:  obs.ObservedAt,
	}
}

// MarkUnavailable flags the view as stale without touching the displayed
// value or advisory.
func (s *Snapshot) MarkUnavailable(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.view.Stale = true
	s.view.LastError = err.Error()
	s.view.LastErrorAt = domain.Now()
}

// View returns a copy of the current view.
func (s *Snapshot) View() View {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.view
}
