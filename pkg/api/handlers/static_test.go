package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"
)

func TestStaticHandler(t *testing.T) {
	h := NewStaticHandlerFS(fstest.MapFS{
		"index.html":      {Data: []byte("<h1>Solar System</h1>")},
		"css/style.css":   {Data: []byte("body{}")},
		"images/.keep":    {Data: nil},
		"docs/index.html": {Data: []byte("docs")},
	})

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantBody   string
	}{
		{"landing page", http.MethodGet, "/", http.StatusOK, "Solar System"},
		{"asset", http.MethodGet, "/css/style.css", http.StatusOK, "body{}"},
		{"nested index", http.MethodGet, "/docs/", http.StatusOK, "docs"},
		{"head landing page", http.MethodHead, "/", http.StatusOK, ""},
		{"missing file", http.MethodGet, "/nope", http.StatusNotFound, `{"message":"Not Found"}`},
		{"directory without index", http.MethodGet, "/images/", http.StatusNotFound, `{"message":"Not Found"}`},
		{"traversal", http.MethodGet, "/../etc/passwd", http.StatusNotFound, `{"message":"Not Found"}`},
		{"post", http.MethodPost, "/", http.StatusNotFound, `{"message":"Not Found"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if tt.wantBody != "" && !strings.Contains(w.Body.String(), tt.wantBody) {
				t.Errorf("body = %q, want it to contain %q", w.Body.String(), tt.wantBody)
			}
		})
	}
}
