package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"mercator-hq/solarsystem/pkg/config"
)

// DocsMetrics tracks the API description document.
type DocsMetrics struct {
	available prometheus.Gauge
	checks    *prometheus.CounterVec
}

// NewDocsMetrics creates and registers document metrics with the provided registry.
func NewDocsMetrics(cfg *config.MetricsConfig, registry *prometheus.Registry) *DocsMetrics {
	dm := &DocsMetrics{
		available: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: cfg.Namespace,
				Subsystem: "docs",
				Name:      "available",
				Help:      "Whether the API document was servable at the last check (1) or not (0)",
			},
		),

		checks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: "docs",
				Name:      "checks_total",
				Help:      "Total number of API document checks by result",
			},
			[]string{"result"},
		),
	}

	registry.MustRegister(dm.available, dm.checks)

	return dm
}

// RecordCheck records the outcome of one document check.
func (dm *DocsMetrics) RecordCheck(available bool) {
	if available {
		dm.available.Set(1)
		dm.checks.WithLabelValues("ok").Inc()
		return
	}
	dm.available.Set(0)
	dm.checks.WithLabelValues("error").Inc()
}
