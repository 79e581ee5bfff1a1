package render

import (
	"errors"
	"testing"
	"time"

	"github.com/couchcryptid/uv-advisory-service/internal/domain"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testObservation(t *testing.T, raw string) domain.Observation {
	t.Helper()
	obs, err := domain.NewObservation("Canberra", raw)
	require.NoError(t, err)
	return obs
}

func TestSnapshot_Render(t *testing.T) {
	fixedTime := time.Date(2026, 1, 15, 12, 30, 0, 0, time.UTC)
	domain.SetClock(clockwork.NewFakeClockAt(fixedTime))
	defer domain.SetClock(nil)

	s := NewSnapshot()
	obs := testObservation(t, "7")
	s.Render(obs, domain.ClassifyIndex(obs.Index))

	view := s.View()
	assert.Equal(t, "7", view.IndexValue)
	assert.Equal(t, "Stay inside.", view.Message)
	assert.Equal(t, domain.TierHigh, view.Tier)
	assert.Equal(t, "Canberra", view.Location)
	assert.Equal(t, fixedTime, view.UpdatedAt)
	assert.False(t, view.Stale)
}

func TestSnapshot_EmptyBeforeFirstRender(t *testing.T) {
	view := NewSnapshot().View()
	assert.Empty(t, view.IndexValue)
	assert.Empty(t, view.Message)
	assert.False(t, view.Stale)
}

func TestSnapshot_MarkUnavailableRetainsRegions(t *testing.T) {
	s := NewSnapshot()
	obs := testObservation(t, "4")
	s.Render(obs, domain.ClassifyIndex(obs.Index))

	s.MarkUnavailable(errors.New("feed returned status 500"))

	view := s.View()
	assert.Equal(t, "4", view.IndexValue)
	assert.Equal(t, "Hat, sunscreen, long sleeves.", view.Message)
	assert.True(t, view.Stale)
	assert.Equal(t, "feed returned status 500", view.LastError)
	assert.False(t, view.LastErrorAt.IsZero())
}

func TestSnapshot_RenderClearsStaleness(t *testing.T) {
	s := NewSnapshot()
	s.MarkUnavailable(errors.New("boom"))

	obs := testObservation(t, "2")
	s.Render(obs, domain.ClassifyIndex(obs.Index))

	view := s.View()
	assert.False(t, view.Stale)
	assert.Empty(t, view.LastError)
	assert.Equal(t, "Get some sun.", view.Message)
}

func TestSnapshot_RenderIsIdempotent(t *testing.T) {
	fixedTime := time.Date(2026, 1, 15, 12, 30, 0, 0, time.UTC)
	domain.SetClock(clockwork.NewFakeClockAt(fixedTime))
	defer domain.SetClock(nil)

	s := NewSnapshot()
	obs := testObservation(t, "7")
	tier := domain.ClassifyIndex(obs.Index)

	s.Render(obs, tier)
	first := s.View()
	s.Render(obs, tier)
	second := s.View()

	assert.Equal(t, first, second)
}
