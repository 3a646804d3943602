package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"mercator-hq/solarsystem/pkg/config"
)

// OtherRoute is the route label used once the route cardinality limit is hit.
const OtherRoute = "other"

// Collector owns the Prometheus registry and every service metric.
// All methods are safe on a nil receiver and on a disabled collector.
type Collector struct {
	config   *config.MetricsConfig
	registry *prometheus.Registry

	requestMetrics *RequestMetrics
	catalogMetrics *CatalogMetrics
	storeMetrics   *StoreMetrics
	docsMetrics    *DocsMetrics

	// Route labels come from matched mux patterns, but a cap keeps a
	// misconfigured caller from growing the series set without bound.
	cardinalityLimiter *CardinalityLimiter
}

// NewCollector creates a collector registering on registry. If registry is
// nil a new one is created, so the process-wide default registry is never
// touched.
func NewCollector(cfg *config.MetricsConfig, registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	if cfg.Namespace == "" {
		cfg.Namespace = config.DefaultMetricsNamespace
	}

	c := &Collector{
		config:             cfg,
		registry:           registry,
		cardinalityLimiter: NewCardinalityLimiter(100),
	}

	c.requestMetrics = NewRequestMetrics(cfg, registry)
	c.catalogMetrics = NewCatalogMetrics(cfg, registry)
	c.storeMetrics = NewStoreMetrics(cfg, registry)
	c.docsMetrics = NewDocsMetrics(cfg, registry)

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return c
}

func (c *Collector) enabled() bool {
	return c != nil && c.config.Enabled
}

// RecordRequest records a served HTTP request. route is the matched mux
// pattern, not the raw URL path.
func (c *Collector) RecordRequest(method, route string, status int, duration time.Duration) {
	if !c.enabled() {
		return
	}

	if !c.cardinalityLimiter.Allow(method + " " + route) {
		route = OtherRoute
	}

	c.requestMetrics.RecordRequest(method, route, status, duration)
}

// ObserveLookup records a catalog lookup outcome. It satisfies
// catalog.LookupObserver.
func (c *Collector) ObserveLookup(outcome string, duration time.Duration) {
	if !c.enabled() {
		return
	}

	c.catalogMetrics.RecordLookup(outcome, duration)
}

// RecordStoreTransition records a store connection state change.
func (c *Collector) RecordStoreTransition(state string, connected bool) {
	if !c.enabled() {
		return
	}

	c.storeMetrics.RecordTransition(state, connected)
}

// RecordDocsCheck records whether the API document was servable. It has the
// signature of docs.Watcher.OnChange.
func (c *Collector) RecordDocsCheck(available bool) {
	if !c.enabled() {
		return
	}

	c.docsMetrics.RecordCheck(available)
}

// Registry returns the Prometheus registry used by this collector.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// CardinalityLimiter prevents metric cardinality explosion by limiting
// the number of unique label combinations per metric.
type CardinalityLimiter struct {
	maxCardinality int
	current        map[string]struct{}
	mu             sync.RWMutex
}

// NewCardinalityLimiter creates a new cardinality limiter with the specified
// maximum cardinality.
func NewCardinalityLimiter(maxCardinality int) *CardinalityLimiter {
	return &CardinalityLimiter{
		maxCardinality: maxCardinality,
		current:        make(map[string]struct{}),
	}
}

// Allow reports whether labelSet is already known or still fits under the limit.
func (cl *CardinalityLimiter) Allow(labelSet string) bool {
	cl.mu.RLock()
	if _, exists := cl.current[labelSet]; exists {
		cl.mu.RUnlock()
		return true
	}
	cl.mu.RUnlock()

	cl.mu.Lock()
	defer cl.mu.Unlock()

	if _, exists := cl.current[labelSet]; exists {
		return true
	}

	if len(cl.current) >= cl.maxCardinality {
		return false
	}

	cl.current[labelSet] = struct{}{}
	return true
}
