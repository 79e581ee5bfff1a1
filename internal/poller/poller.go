// Package poller runs the periodic fetch-parse-classify-render cycle.
package poller

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/couchcryptid/uv-advisory-service/internal/domain"
	"github.com/couchcryptid/uv-advisory-service/internal/observability"
	"github.com/couchcryptid/uv-advisory-service/internal/render"
)

// Fetcher retrieves the current UV observation for a location.
type Fetcher interface {
	FetchIndex(ctx context.Context, location string) (domain.Observation, error)
}

// Publisher forwards a classified observation to downstream consumers.
type Publisher interface {
	Publish(ctx context.Context, obs domain.Observation, tier domain.Tier) error
}

// Poller drives the fetch-classify-render loop for one location.
type Poller struct {
	fetcher   Fetcher
	renderer  render.Renderer
	publisher Publisher // nil when Kafka publishing is disabled
	logger    *slog.Logger
	metrics   *observability.Metrics
	clock     clockwork.Clock
	location  string
	interval  time.Duration
	ready     atomic.Bool
}

// New creates a Poller. publisher may be nil.
func New(fetcher Fetcher, renderer render.Renderer, publisher Publisher, logger *slog.Logger, metrics *observability.Metrics, location string, interval time.Duration) *Poller {
	return &Poller{
		fetcher:   fetcher,
		renderer:  renderer,
		publisher: publisher,
		logger:    logger,
		metrics:   metrics,
		clock:     clockwork.NewRealClock(),
		location:  location,
		interval:  interval,
	}
}

// SetClock swaps the ticker time source. Pass nil to reset to real time.
func (p *Poller) SetClock(c clockwork.Clock) {
	if c == nil {
		p.clock = clockwork.NewRealClock()
		return
	}
	p.clock = c
}

// CheckReadiness returns nil once at least one cycle has completed
// successfully, or an error describing why the service is not yet ready.
func (p *Poller) CheckReadiness(_ context.Context) error {
	if !p.ready.Load() {
		return errors.New("no successful fetch cycle yet")
	}
	return nil
}

// Run executes one cycle immediately, then one per interval until the
// context is cancelled. Cycles run sequentially on this goroutine, so a slow
// fetch can never overlap the next tick.
func (p *Poller) Run(ctx context.Context) error {
	p.logger.Info("poller started", "location", p.location, "interval", p.interval)
	p.metrics.PollerRunning.Set(1)
	defer p.metrics.PollerRunning.Set(0)

	p.runCycle(ctx)

	ticker := p.clock.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("poller stopping", "reason", ctx.Err())
			return nil
		case <-ticker.Chan():
			p.runCycle(ctx)
		}
	}
}

// runCycle performs one fetch-parse-classify-render pass. Failures never
// touch the rendered value and advisory; they only mark the view stale.
func (p *Poller) runCycle(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	logger := p.logger.With("cycle_id", uuid.NewString())
	p.metrics.CyclesTotal.Inc()

	obs, err := p.fetcher.FetchIndex(ctx, p.location)
	if err != nil {
		kind := domain.KindOf(err)
		logger.Error("fetch cycle failed", "error", err, "kind", kind)
		p.metrics.CycleFailures.WithLabelValues(string(kind)).Inc()
		p.renderer.MarkUnavailable(err)
		return
	}

	tier := domain.ClassifyIndex(obs.Index)
	p.renderer.Render(obs, tier)

	p.metrics.UVIndex.Set(obs.Index)
	p.metrics.AdvisoryTier.Set(float64(tier.Level()))
	p.metrics.LastSuccessAt.Set(float64(obs.ObservedAt.Unix()))
	p.ready.Store(true)

	if p.publisher != nil {
		if err := p.publisher.Publish(ctx, obs, tier); err != nil {
			logger.Warn("publish observation failed", "error", err)
			p.metrics.PublishErrors.Inc()
		} else {
			p.metrics.ObservationsPublished.Inc()
		}
	}

	logger.Info("cycle complete", "index", obs.RawIndex, "tier", tier)
}
