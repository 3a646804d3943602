// Package health provides liveness and readiness probes for the planet
// catalog service.
//
// # Endpoints
//
//   - /live: always 200 {"status":"live"} while the process serves requests
//   - /ready: 200 {"status":"ready"} while the store is connected, otherwise
//     the configured not-ready status (503 by default) with
//     {"status":"not ready"}
//
// # Connection state
//
// Readiness depends only on ConnectionState, which moves through
//
//	disconnected -> connecting -> connected
//
// during startup. Afterwards the Monitor pings the store on a cron schedule
// and flips the state to disconnected when a ping fails and back to
// connected when one succeeds. Listeners registered with OnTransition run
// once per change; the metrics collector uses this to export the
// store_connected gauge.
//
// # Usage
//
//	state := health.NewConnectionState()
//	state.Set(health.StateConnecting)
//	// open and ping the store ...
//	state.Set(health.StateConnected)
//
//	monitor := health.NewMonitor(store, state, "@every 5s", 2*time.Second)
//	monitor.Start(ctx)
//
//	prober := health.NewProber(state, http.StatusServiceUnavailable)
//	mux.HandleFunc("GET /live", prober.LiveHandler())
//	mux.HandleFunc("GET /ready", prober.ReadyHandler())
package health
