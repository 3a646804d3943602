package middleware

import (
	"net/http"
	"time"

	"mercator-hq/solarsystem/pkg/telemetry/metrics"
)

// unmatchedRoute labels requests the mux did not route.
const unmatchedRoute = "unmatched"

// MetricsMiddleware records request count and latency labelled with the
// matched mux pattern. It must sit directly outside the mux and pass the
// request through unchanged so the pattern set by the mux is visible here.
//
// Example usage:
//
//	handler = MetricsMiddleware(collector)(mux)
func MetricsMiddleware(collector *metrics.Collector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := newResponseWriter(w)

			next.ServeHTTP(rw, r)

			route := r.Pattern
			if route == "" {
				route = unmatchedRoute
			}
			collector.RecordRequest(r.Method, route, rw.statusCode, time.Since(start))
		})
	}
}
