package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// UV poll-and-render cycle.
type Metrics struct {
	CyclesTotal   prometheus.Counter
	CycleFailures *prometheus.CounterVec // label: kind={network,data}
	FetchDuration prometheus.Histogram
	PollerRunning prometheus.Gauge

	// Latest observation metrics.
	UVIndex       prometheus.Gauge
	AdvisoryTier  prometheus.Gauge // 0=low, 1=moderate, 2=high
	LastSuccessAt prometheus.Gauge // unix seconds of the last successful cycle

	// Kafka publishing metrics.
	ObservationsPublished prometheus.Counter
	PublishErrors         prometheus.Counter
}

// NewMetrics creates and registers all poller metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		CyclesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "uv_advisory",
			Name:      "cycles_total",
			Help:      "Total fetch-parse-classify-render cycles attempted.",
		}),
		CycleFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "uv_advisory",
			Name:      "cycle_failures_total",
			Help:      "Failed cycles by failure kind.",
		}, []string{"kind"}),
		FetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "uv_advisory",
			Name:      "fetch_duration_seconds",
			Help:      "Duration of the feed HTTP request and XML decode.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		PollerRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "uv_advisory",
			Name:      "poller_running",
			Help:      "1 when the poll loop is active, 0 when shut down.",
		}),
		UVIndex: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "uv_advisory",
			Name:      "uv_index",
			Help:      "Most recently observed UV index value.",
		}),
		AdvisoryTier: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "uv_advisory",
			Name:      "advisory_tier",
			Help:      "Current advisory tier: 0 low, 1 moderate, 2 high.",
		}),
		LastSuccessAt: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "uv_advisory",
			Name:      "last_success_timestamp_seconds",
			Help:      "Unix time of the last successful cycle.",
		}),
		ObservationsPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "uv_advisory",
			Name:      "observations_published_total",
			Help:      "Total observations published to the Kafka sink topic.",
		}),
		PublishErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "uv_advisory",
			Name:      "publish_errors_total",
			Help:      "Total failed Kafka publish attempts.",
		}),
	}

	prometheus.MustRegister(
		m.CyclesTotal,
		m.CycleFailures,
		m.FetchDuration,
		m.PollerRunning,
		m.UVIndex,
		m.AdvisoryTier,
		m.LastSuccessAt,
		m.ObservationsPublished,
		m.PublishErrors,
	)

	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		CyclesTotal:           prometheus.NewCounter(prometheus.CounterOpts{Namespace: "uv_advisory", Name: "cycles_total"}),
		CycleFailures:         prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "uv_advisory", Name: "cycle_failures_total"}, []string{"kind"}),
		FetchDuration:         prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "uv_advisory", Name: "fetch_duration_seconds"}),
		PollerRunning:         prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "uv_advisory", Name: "poller_running"}),
		UVIndex:               prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "uv_advisory", Name: "uv_index"}),
		AdvisoryTier:          prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "uv_advisory", Name: "advisory_tier"}),
		LastSuccessAt:         prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "uv_advisory", Name: "last_success_timestamp_seconds"}),
		ObservationsPublished: prometheus.NewCounter(prometheus.CounterOpts{Namespace: "uv_advisory", Name: "observations_published_total"}),
		PublishErrors:         prometheus.NewCounter(prometheus.CounterOpts{Namespace: "uv_advisory", Name: "publish_errors_total"}),
	}
}
