// Package logging builds the service's log/slog logger.
//
// Output is JSON or text at a configurable level. Every record logged with a
// context picks up request_id (set by the request id middleware) and
// trace_id (from the active span). Values under keys such as "password" or
// "token" are replaced with "***", and connection strings have their
// password masked.
//
// # Usage
//
//	logger, err := logging.New(logging.FromConfig(cfg.Telemetry.Logging))
//	if err != nil {
//	    return err
//	}
//	slog.SetDefault(logger)
//
//	ctx = logging.WithRequestID(ctx, "9b1f...")
//	slog.InfoContext(ctx, "planet served", "id", 3) // includes request_id
package logging
