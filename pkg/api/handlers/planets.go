package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"mercator-hq/solarsystem/pkg/api/types"
	"mercator-hq/solarsystem/pkg/catalog"
)

// maxLookupBodyBytes bounds the POST /planets request body.
const maxLookupBodyBytes = 1 << 16

var (
	// errIDRequired marks a lookup request without an id.
	errIDRequired = errors.New("id is required")

	errTrailingData = errors.New("unexpected data after request body")
)

// PlanetLookup finds a catalog record by id.
type PlanetLookup interface {
	Lookup(ctx context.Context, id int64) (*catalog.Record, error)
}

// PlanetHandler handles POST /planets.
type PlanetHandler struct {
	lookup         PlanetLookup
	notFoundStatus int
	logger         *slog.Logger
}

// NewPlanetHandler creates a lookup handler. notFoundStatus is the status
// written when no record matches; zero means 404.
func NewPlanetHandler(lookup PlanetLookup, notFoundStatus int) *PlanetHandler {
	if notFoundStatus == 0 {
		notFoundStatus = http.StatusNotFound
	}
	return &PlanetHandler{
		lookup:         lookup,
		notFoundStatus: notFoundStatus,
		logger:         slog.Default().With("component", "handlers.planets"),
	}
}

// ServeHTTP implements http.Handler.
func (h *PlanetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := decodeLookup(w, r)
	if err != nil {
		msg := types.MessageIDNotInteger
		if errors.Is(err, errIDRequired) {
			msg = types.MessageIDRequired
		}
		h.logger.DebugContext(r.Context(), "rejected lookup request", "error", err)
		types.WriteMessage(w, http.StatusBadRequest, msg)
		return
	}

	record, err := h.lookup.Lookup(r.Context(), id)
	switch {
	case err == nil:
		types.WriteJSON(w, http.StatusOK, record)
	case errors.Is(err, catalog.ErrNotFound):
		types.WriteMessage(w, h.notFoundStatus, types.MessagePlanetNotFound)
	default:
		h.logger.ErrorContext(r.Context(), "planet lookup failed",
			"planet_id", id,
			"error", err,
		)
		types.WriteMessage(w, http.StatusInternalServerError, types.MessageFetchFailed)
	}
}

// decodeLookup reads the request body and returns the requested id.
// An empty body is treated as {}. Only the exact key "id" is honored, and
// the body must hold a single JSON value.
func decodeLookup(w http.ResponseWriter, r *http.Request) (int64, error) {
	var fields map[string]json.RawMessage

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxLookupBodyBytes))
	if err := dec.Decode(&fields); err != nil {
		if errors.Is(err, io.EOF) {
			return 0, errIDRequired
		}
		return 0, err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return 0, errTrailingData
	}

	raw, ok := fields["id"]
	if !ok {
		return 0, errIDRequired
	}

	var req types.LookupRequest
	if err := json.Unmarshal(raw, &req.ID); err != nil {
		return 0, err
	}
	if req.ID == nil {
		return 0, errIDRequired
	}
	return *req.ID, nil
}
