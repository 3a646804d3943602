package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"mercator-hq/solarsystem/pkg/config"
)

// CatalogMetrics tracks catalog lookups.
type CatalogMetrics struct {
	lookupsTotal   *prometheus.CounterVec
	lookupDuration prometheus.Histogram
}

// NewCatalogMetrics creates and registers catalog metrics with the provided registry.
func NewCatalogMetrics(cfg *config.MetricsConfig, registry *prometheus.Registry) *CatalogMetrics {
	cm := &CatalogMetrics{
		lookupsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: "catalog",
				Name:      "lookups_total",
				Help:      "Total number of catalog lookups by outcome",
			},
			[]string{"outcome"},
		),

		lookupDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Subsystem: "catalog",
				Name:      "lookup_duration_seconds",
				Help:      "Duration of catalog store lookups in seconds",
				// Point lookups: 100µs to 2.5s
				Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5},
			},
		),
	}

	registry.MustRegister(cm.lookupsTotal, cm.lookupDuration)

	return cm
}

// RecordLookup records one lookup.
func (cm *CatalogMetrics) RecordLookup(outcome string, duration time.Duration) {
	cm.lookupsTotal.WithLabelValues(outcome).Inc()
	cm.lookupDuration.Observe(duration.Seconds())
}
