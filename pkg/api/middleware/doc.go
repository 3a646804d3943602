// Package middleware provides HTTP middleware for cross-cutting concerns.
//
// The server assembles the chain with Chain, outermost first:
//
//	Chain(mux,
//		RequestIDMiddleware,
//		tracing.HTTPMiddleware(tracer),
//		RecoveryMiddleware,
//		LoggingMiddleware,
//		MetricsMiddleware(collector),
//		CORSMiddleware(cfg.Server.CORS),
//	)
//
// The request id and the span are placed in the context first, so access
// and panic logs carry request_id and trace_id. MetricsMiddleware and
// CORSMiddleware pass the request through unchanged, which keeps the
// pattern recorded by http.ServeMux visible to the metrics labels.
package middleware
