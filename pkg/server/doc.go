// Package server ties the catalog handlers, health endpoints and
// documentation server together behind one http.ServeMux and manages the
// listener lifecycle.
//
// # Routes
//
//	POST /planets    catalog lookup by id
//	GET  /api-docs   API description document
//	GET  /os         host name and environment
//	GET  /live       liveness
//	GET  /ready      readiness, mirrors the store connection state
//	GET  /metrics    Prometheus exposition, when enabled
//	     /           static files, JSON 404 for anything else
//
// A known path requested with the wrong method yields 405 with an Allow
// header.
//
// # Lifecycle
//
//	srv := server.NewServer(cfg, server.Dependencies{...})
//	if err := srv.Listen(); err != nil {
//	    return err
//	}
//	err := srv.Start(ctx) // returns after ctx is canceled and requests drain
package server
