package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"mercator-hq/solarsystem/pkg/config"
)

// StoreMetrics tracks the catalog store connection.
type StoreMetrics struct {
	connected   prometheus.Gauge
	transitions *prometheus.CounterVec
}

// NewStoreMetrics creates and registers store metrics with the provided registry.
func NewStoreMetrics(cfg *config.MetricsConfig, registry *prometheus.Registry) *StoreMetrics {
	sm := &StoreMetrics{
		connected: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: cfg.Namespace,
				Subsystem: "store",
				Name:      "connected",
				Help:      "Whether the catalog store is connected (1) or not (0)",
			},
		),

		transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: "store",
				Name:      "state_transitions_total",
				Help:      "Total number of store connection state changes by new state",
			},
			[]string{"state"},
		),
	}

	registry.MustRegister(sm.connected, sm.transitions)

	return sm
}

// RecordTransition records a move to state and updates the connected gauge.
func (sm *StoreMetrics) RecordTransition(state string, connected bool) {
	sm.transitions.WithLabelValues(state).Inc()
	if connected {
		sm.connected.Set(1)
	} else {
		sm.connected.Set(0)
	}
}
