// Package telemetry groups the observability packages of the catalog
// service.
//
// # Components
//
//   - logging: slog construction, request and trace ids on every record,
//     redaction of credentials
//   - metrics: Prometheus collectors on a dedicated registry
//   - tracing: OpenTelemetry tracer, noop unless enabled
//   - health: store connection state, liveness and readiness endpoints,
//     and the cron-driven connection monitor
//
// # Usage
//
//	logger, err := logging.New(logging.FromConfig(cfg.Telemetry.Logging))
//	slog.SetDefault(logger)
//
//	collector := metrics.NewCollector(&cfg.Telemetry.Metrics, nil)
//
//	tracer, err := tracing.New(&cfg.Telemetry.Tracing, version)
//	defer tracer.Shutdown(ctx)
//
//	state := health.NewConnectionState()
//	monitor := health.NewMonitor(store, state, cfg.Store.ProbeSchedule, cfg.Store.ProbeTimeout)
package telemetry
