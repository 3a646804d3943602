// Package tracing provides OpenTelemetry tracing for the planet catalog
// service.
//
// When telemetry.tracing.enabled is false, New returns a noop tracer and no
// exporter is created. Otherwise spans are batched to an OTLP gRPC collector
// and W3C Trace Context is installed as the global propagator.
//
// # Spans
//
//   - "HTTP <method> <path>": one server span per request, created by
//     HTTPMiddleware with the incoming traceparent as parent
//   - "catalog.lookup": one span per catalog lookup, created by the
//     repository with planet.id and store.backend attributes
//
// # Sampling Strategies
//
//   - always: sample all traces (development/debugging)
//   - never: sample no traces
//   - ratio: sample a fraction of traces (production)
//
// Every sampler is wrapped in ParentBased so a sampled upstream request keeps
// its whole trace.
//
// # Usage
//
//	tracer, err := tracing.New(&cfg.Telemetry.Tracing, version)
//	if err != nil {
//	    return err
//	}
//	defer tracer.Shutdown(context.Background())
//
//	repo := catalog.NewRepository(store, catalog.Options{Tracer: tracer.Tracer()})
//	handler = tracing.HTTPMiddleware(tracer.Tracer())(handler)
package tracing
