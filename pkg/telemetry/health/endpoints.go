package health

import (
	"encoding/json"
	"net/http"
)

// LiveHandler returns an HTTP handler for the liveness probe endpoint.
//
// Example response:
//
//	{"status": "live"}
func (p *Prober) LiveHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeStatus(w, r, http.StatusOK, p.CheckLiveness())
	}
}

// ReadyHandler returns an HTTP handler for the readiness probe endpoint.
//
// Returns:
//   - 200 OK: the store is connected
//   - the configured not-ready status (503 by default) otherwise
//
// Example response (not ready):
//
//	{"status": "not ready"}
func (p *Prober) ReadyHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status, ready := p.CheckReadiness()
		code := http.StatusOK
		if !ready {
			code = p.notReadyStatus
		}
		writeStatus(w, r, code, status)
	}
}

func writeStatus(w http.ResponseWriter, r *http.Request, code int, status Status) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(code)

	if r.Method != http.MethodHead {
		_ = json.NewEncoder(w).Encode(status)
	}
}
