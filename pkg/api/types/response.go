package types

import (
	"encoding/json"
	"net/http"
)

// MessageResponse is the body of every error response.
type MessageResponse struct {
	Message string `json:"message"`
}

// SystemResponse is the body of GET /os.
type SystemResponse struct {
	OS  string `json:"os"`
	Env string `json:"env"`
}

// Client-facing messages.
const (
	MessageIDRequired       = "ID is required"
	MessageIDNotInteger     = "ID must be an integer"
	MessagePlanetNotFound   = "Planet not found"
	MessageFetchFailed      = "Error fetching planet data"
	MessageNotFound         = "Not Found"
	MessageInternalError    = "Internal Server Error"
	MessageMethodNotAllowed = "Method Not Allowed"
	MessageDocsUnreadable   = "Error reading file"
)

// WriteJSON writes v as a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteMessage writes {"message": msg} with the given status code.
func WriteMessage(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, MessageResponse{Message: msg})
}
