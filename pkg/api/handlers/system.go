package handlers

import (
	"net/http"
	"os"

	"mercator-hq/solarsystem/pkg/api/types"
)

// unknownHost is reported when the hostname cannot be determined.
const unknownHost = "unknown"

// SystemHandler handles GET /os.
type SystemHandler struct {
	env      string
	hostname func() (string, error)
}

// NewSystemHandler creates a handler reporting the host name and env.
func NewSystemHandler(env string) *SystemHandler {
	return &SystemHandler{env: env, hostname: os.Hostname}
}

// ServeHTTP implements http.Handler.
func (h *SystemHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	host, err := h.hostname()
	if err != nil || host == "" {
		host = unknownHost
	}
	types.WriteJSON(w, http.StatusOK, types.SystemResponse{OS: host, Env: h.env})
}
