package health

import (
	"net/http"
)

// Status is the body of the liveness and readiness endpoints.
type Status struct {
	// Status is "live", "ready" or "not ready".
	Status string `json:"status"`
}

// Probe status values.
const (
	StatusLive     = "live"
	StatusReady    = "ready"
	StatusNotReady = "not ready"
)

// Prober answers liveness and readiness questions from the connection state.
type Prober struct {
	state          *ConnectionState
	notReadyStatus int
}

// NewProber creates a prober reading state. notReadyStatus is the HTTP status
// reported while not ready; zero means 503 Service Unavailable.
func NewProber(state *ConnectionState, notReadyStatus int) *Prober {
	if notReadyStatus == 0 {
		notReadyStatus = http.StatusServiceUnavailable
	}
	return &Prober{state: state, notReadyStatus: notReadyStatus}
}

// CheckLiveness always reports live; a running process is alive.
func (p *Prober) CheckLiveness() Status {
	return Status{Status: StatusLive}
}

// CheckReadiness reports ready only while the store is connected.
func (p *Prober) CheckReadiness() (Status, bool) {
	if p.state.Ready() {
		return Status{Status: StatusReady}, true
	}
	return Status{Status: StatusNotReady}, false
}
