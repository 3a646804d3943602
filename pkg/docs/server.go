package docs

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"mercator-hq/solarsystem/pkg/api/types"
)

var (
	// ErrUnreadable is returned when the document cannot be read.
	ErrUnreadable = errors.New("api document unreadable")

	// ErrMalformed is returned when the document is not valid JSON.
	ErrMalformed = errors.New("api document malformed")
)

// Server reads and serves the API description document.
type Server struct {
	path   string
	logger *slog.Logger
}

// NewServer creates a server for the document at path.
func NewServer(path string) *Server {
	return &Server{
		path:   path,
		logger: slog.Default().With("component", "docs.server"),
	}
}

// Path returns the document path.
func (s *Server) Path() string {
	return s.path
}

// Read loads the document and checks that it is valid JSON.
func (s *Server) Read() ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnreadable, err)
	}
	if !json.Valid(data) {
		return nil, fmt.Errorf("%w: %s is not valid JSON", ErrMalformed, s.path)
	}
	return data, nil
}

// Handler returns the /api-docs handler. The document bytes are written
// verbatim.
func (s *Server) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := s.Read()
		if err != nil {
			s.logger.ErrorContext(r.Context(), "failed to serve api document",
				"path", s.path,
				"error", err,
			)
			types.WriteMessage(w, http.StatusInternalServerError, types.MessageDocsUnreadable)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if r.Method != http.MethodHead {
			_, _ = w.Write(data)
		}
	}
}
