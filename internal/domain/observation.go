package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Observation is one UV index reading for a single monitoring station.
type Observation struct {
	ID         string    `json:"id"`
	Location   string    `json:"location"`
	Index      float64   `json:"index"`
	RawIndex   string    `json:"raw_index"`
	ObservedAt time.Time `json:"observed_at"`
}

// NewObservation builds an Observation from the raw index text extracted from
// the feed. The text is parsed to float64 so tier thresholds compare
// numerically; the original text is kept verbatim for display.
func NewObservation(location, rawIndex string) (Observation, error) {
	rawIndex = strings.TrimSpace(rawIndex)
	index, err := strconv.ParseFloat(rawIndex, 64)
	if err != nil {
		return Observation{}, NewDataError(fmt.Errorf("parse index %q for %s: %w", rawIndex, location, err))
	}

	observedAt := Now()
	return Observation{
		ID:         generateID(location, rawIndex, observedAt),
		Location:   location,
		Index:      index,
		RawIndex:   rawIndex,
		ObservedAt: observedAt,
	}, nil
}

// generateID produces a deterministic ID from the observation's key fields.
// Deterministic IDs let downstream consumers deduplicate replays — republishing
// the same reading produces the same ID.
func generateID(location, rawIndex string, observedAt time.Time) string {
	input := fmt.Sprintf("%s|%s|%s", location, rawIndex, observedAt.Format(time.RFC3339))
	hash := sha256.Sum256([]byte(input))
	short := hex.EncodeToString(hash[:8])
	return "uv-" + short
}
