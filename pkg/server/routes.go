package server

import (
	"net/http"
	"strings"

	"go.opentelemetry.io/otel/trace/noop"

	"mercator-hq/solarsystem/pkg/api/handlers"
	"mercator-hq/solarsystem/pkg/api/middleware"
	"mercator-hq/solarsystem/pkg/api/types"
	"mercator-hq/solarsystem/pkg/telemetry/tracing"
)

// Handler returns the routed handler wrapped in the middleware chain.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	routes := make(map[string][]string)

	handle := func(method, path string, h http.Handler) {
		mux.Handle(method+" "+path, h)
		routes[path] = append(routes[path], method)
		if method == http.MethodGet {
			routes[path] = append(routes[path], http.MethodHead)
		}
	}

	handle(http.MethodPost, "/planets", handlers.NewPlanetHandler(s.deps.Planets, s.config.NotFoundStatus))
	handle(http.MethodGet, "/api-docs", s.deps.Docs.Handler())
	handle(http.MethodGet, "/os", handlers.NewSystemHandler(s.config.Environment))
	handle(http.MethodGet, "/live", s.deps.Prober.LiveHandler())
	handle(http.MethodGet, "/ready", s.deps.Prober.ReadyHandler())
	if s.deps.Metrics != nil && s.metricsConfig.Enabled {
		handle(http.MethodGet, s.metricsConfig.Path, s.deps.Metrics.Handler())
	}

	mux.Handle("/", methodNotAllowed(routes, handlers.NewStaticHandler(s.config.StaticDir)))

	tracer := s.deps.Tracer
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("server")
	}

	// Request and trace ids are in the context before anything logs; metrics
	// and CORS hand the request to the mux unchanged so the matched pattern is
	// visible to the metrics labels.
	return middleware.Chain(mux,
		middleware.RequestIDMiddleware,
		tracing.HTTPMiddleware(tracer),
		middleware.RecoveryMiddleware,
		middleware.LoggingMiddleware,
		middleware.MetricsMiddleware(s.deps.Metrics),
		middleware.CORSMiddleware(s.config.CORS),
	)
}

// methodNotAllowed answers 405 for a known path requested with a method it
// does not serve and hands every other request to next.
func methodNotAllowed(routes map[string][]string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if methods, ok := routes[r.URL.Path]; ok {
			w.Header().Set("Allow", strings.Join(methods, ", "))
			types.WriteMessage(w, http.StatusMethodNotAllowed, types.MessageMethodNotAllowed)
			return
		}
		next.ServeHTTP(w, r)
	})
}
