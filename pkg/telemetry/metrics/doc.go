// Package metrics provides Prometheus metrics for the planet catalog service.
//
// # Metrics
//
//   - <ns>_http_requests_total{method,route,status}: requests served
//   - <ns>_http_request_duration_seconds{method,route}: request latency
//   - <ns>_catalog_lookups_total{outcome}: lookups by outcome
//     (hit, not_found, duplicate, error)
//   - <ns>_catalog_lookup_duration_seconds: store lookup latency
//   - <ns>_store_connected: 1 while the store is connected, else 0
//   - <ns>_store_state_transitions_total{state}: connection state changes
//
// Go runtime and process collectors are registered on the same registry.
//
// # Usage
//
//	collector := metrics.NewCollector(&cfg.Telemetry.Metrics, nil)
//	repo := catalog.NewRepository(store, catalog.Options{Observer: collector})
//	mux.Handle("GET /metrics", collector.Handler())
//
// A nil *Collector, or one built from a disabled config, records nothing, so
// callers never need to check whether metrics are enabled.
package metrics
