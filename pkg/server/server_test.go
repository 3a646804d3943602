package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"mercator-hq/solarsystem/pkg/catalog"
	"mercator-hq/solarsystem/pkg/catalog/storage"
	"mercator-hq/solarsystem/pkg/config"
	"mercator-hq/solarsystem/pkg/docs"
	"mercator-hq/solarsystem/pkg/telemetry/health"
	"mercator-hq/solarsystem/pkg/telemetry/logging"
	"mercator-hq/solarsystem/pkg/telemetry/metrics"
)

const testDocument = `{"swagger":"2.0","info":{"title":"Solar System","version":"1.0.0"}}`

type testEnv struct {
	cfg     *config.Config
	store   *storage.MemoryStore
	state   *health.ConnectionState
	monitor *health.Monitor
	docPath string
	server  *Server
	handler http.Handler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dir := t.TempDir()
	staticDir := filepath.Join(dir, "public")
	if err := os.MkdirAll(staticDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(staticDir, "index.html"), []byte("<h1>Solar System</h1>"), 0o644); err != nil {
		t.Fatal(err)
	}
	docPath := filepath.Join(dir, "oas.json")
	if err := os.WriteFile(docPath, []byte(testDocument), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := config.NewDefaultConfig()
	cfg.Server.ListenAddress = "127.0.0.1:0"
	cfg.Server.StaticDir = staticDir
	cfg.Server.Environment = "test"
	cfg.Server.ShutdownTimeout = 2 * time.Second
	cfg.Docs.Path = docPath
	cfg.Telemetry.Metrics.Namespace = "test"

	records, err := catalog.DefaultRecords()
	if err != nil {
		t.Fatal(err)
	}
	store := storage.NewMemoryStore(records...)

	state := health.NewConnectionState()
	state.Set(health.StateConnecting)
	state.Set(health.StateConnected)

	collector := metrics.NewCollector(&cfg.Telemetry.Metrics, nil)
	repo := catalog.NewRepository(store, catalog.Options{Observer: collector})

	srv := NewServer(cfg, Dependencies{
		Planets: repo,
		Prober:  health.NewProber(state, cfg.Server.NotReadyStatus),
		Docs:    docs.NewServer(docPath),
		Metrics: collector,
	})

	return &testEnv{
		cfg:     cfg,
		store:   store,
		state:   state,
		monitor: health.NewMonitor(store, state, "", time.Second),
		docPath: docPath,
		server:  srv,
		handler: srv.Handler(),
	}
}

func (e *testEnv) do(method, path, body string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	w := httptest.NewRecorder()
	e.handler.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("body %q is not JSON: %v", w.Body.String(), err)
	}
	return body
}

func TestRoutes(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
		wantField  string
		wantValue  any
	}{
		{"mercury", http.MethodPost, "/planets", `{"id":1}`, http.StatusOK, "name", "Mercury"},
		{"venus", http.MethodPost, "/planets", `{"id":2}`, http.StatusOK, "name", "Venus"},
		{"unknown planet", http.MethodPost, "/planets", `{"id":99}`, http.StatusNotFound, "message", "Planet not found"},
		{"missing id", http.MethodPost, "/planets", `{}`, http.StatusBadRequest, "message", "ID is required"},
		{"live", http.MethodGet, "/live", "", http.StatusOK, "status", "live"},
		{"ready", http.MethodGet, "/ready", "", http.StatusOK, "status", "ready"},
		{"os", http.MethodGet, "/os", "", http.StatusOK, "env", "test"},
		{"api docs", http.MethodGet, "/api-docs", "", http.StatusOK, "swagger", "2.0"},
		{"unknown route", http.MethodGet, "/nope", "", http.StatusNotFound, "message", "Not Found"},
		{"unknown route post", http.MethodPost, "/nope", `{}`, http.StatusNotFound, "message", "Not Found"},
		{"wrong method", http.MethodGet, "/planets", "", http.StatusMethodNotAllowed, "message", "Method Not Allowed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do(tt.method, tt.path, tt.body)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", w.Code, tt.wantStatus, w.Body.String())
			}
			body := decodeBody(t, w)
			if body[tt.wantField] != tt.wantValue {
				t.Errorf("%s = %v, want %v", tt.wantField, body[tt.wantField], tt.wantValue)
			}
			if w.Header().Get("X-Request-ID") == "" {
				t.Error("X-Request-ID header missing")
			}
		})
	}
}

func TestRoutes_LandingPage(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Solar System") {
		t.Errorf("body = %q, want landing page", w.Body.String())
	}
}

func TestRoutes_WrongMethodAllowHeader(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPost, "/live", "")
	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", w.Code)
	}
	if got := w.Header().Get("Allow"); got != "GET, HEAD" {
		t.Errorf("Allow = %q, want GET, HEAD", got)
	}
}

func TestRoutes_AccessLogCarriesRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Config{Level: "info", Format: "json", Writer: &buf})
	if err != nil {
		t.Fatal(err)
	}
	prev := slog.Default()
	slog.SetDefault(logger)
	t.Cleanup(func() { slog.SetDefault(prev) })

	env := newTestEnv(t)
	w := env.do(http.MethodPost, "/planets", `{"id":99}`)

	requestID := w.Header().Get("X-Request-ID")
	if requestID == "" {
		t.Fatal("X-Request-ID header missing")
	}

	var access map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var record map[string]any
		if err := json.Unmarshal([]byte(line), &record); err != nil {
			t.Fatalf("log line %q is not JSON: %v", line, err)
		}
		if record["msg"] == "request completed" {
			access = record
		}
	}
	if access == nil {
		t.Fatalf("no access log line in %q", buf.String())
	}
	if access["request_id"] != requestID {
		t.Errorf("access log request_id = %v, want %s", access["request_id"], requestID)
	}
	if access["status"] != float64(http.StatusNotFound) {
		t.Errorf("access log status = %v, want 404", access["status"])
	}
}

func TestRoutes_CORS(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodPost, "/planets", strings.NewReader(`{"id":1}`))
	req.Header.Set("Origin", "https://example.com")
	w := httptest.NewRecorder()
	env.handler.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
	}

	req = httptest.NewRequest(http.MethodOptions, "/planets", nil)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w = httptest.NewRecorder()
	env.handler.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("preflight status = %d, want 204", w.Code)
	}
}

func TestRoutes_ReadinessFollowsStore(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.store.SetUnavailable(true)
	if err := env.monitor.Probe(ctx); err == nil {
		t.Fatal("Probe() succeeded against an unavailable store")
	}

	w := env.do(http.MethodGet, "/ready", "")
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", w.Code)
	}
	if got := decodeBody(t, w)["status"]; got != "not ready" {
		t.Errorf("status = %v, want not ready", got)
	}

	if w := env.do(http.MethodPost, "/planets", `{"id":1}`); w.Code != http.StatusInternalServerError {
		t.Errorf("lookup status while down = %d, want 500", w.Code)
	}
	if w := env.do(http.MethodGet, "/live", ""); w.Code != http.StatusOK {
		t.Errorf("live status while down = %d, want 200", w.Code)
	}

	env.store.SetUnavailable(false)
	if err := env.monitor.Probe(ctx); err != nil {
		t.Fatalf("Probe() error = %v", err)
	}

	w = env.do(http.MethodGet, "/ready", "")
	if w.Code != http.StatusOK {
		t.Errorf("status after reconnect = %d, want 200", w.Code)
	}
}

func TestRoutes_APIDocsMissing(t *testing.T) {
	env := newTestEnv(t)

	if err := os.Remove(env.docPath); err != nil {
		t.Fatal(err)
	}

	w := env.do(http.MethodGet, "/api-docs", "")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	if got := decodeBody(t, w)["message"]; got != "Error reading file" {
		t.Errorf("message = %v, want Error reading file", got)
	}
}

func TestRoutes_Metrics(t *testing.T) {
	env := newTestEnv(t)

	env.do(http.MethodPost, "/planets", `{"id":1}`)
	env.do(http.MethodPost, "/planets", `{"id":99}`)

	w := env.do(http.MethodGet, "/metrics", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	out := w.Body.String()
	for _, want := range []string{
		`test_http_requests_total{method="POST",route="POST /planets",status="200"} 1`,
		`test_http_requests_total{method="POST",route="POST /planets",status="404"} 1`,
		`test_catalog_lookups_total{outcome="hit"} 1`,
		`test_catalog_lookups_total{outcome="not_found"} 1`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("metrics output missing %s", want)
		}
	}
}

func TestRoutes_MetricsDisabled(t *testing.T) {
	env := newTestEnv(t)
	env.cfg.Telemetry.Metrics.Enabled = false
	handler := env.server.Handler()

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestServer_StartAndShutdown(t *testing.T) {
	env := newTestEnv(t)

	if err := env.server.Listen(); err != nil {
		t.Fatalf("Listen() error = %v", err)
	}
	addr := env.server.Addr()
	if addr == nil {
		t.Fatal("Addr() = nil after Listen")
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- env.server.Start(ctx) }()

	url := "http://" + addr.String() + "/live"
	var resp *http.Response
	var err error
	for i := 0; i < 50; i++ {
		resp, err = http.Get(url)
		if err == nil {
			break
		}
		time.Sleep(20 * time.Millisecond)
	}
	if err != nil {
		t.Fatalf("GET /live: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Start() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Start() did not return after cancel")
	}

	if env.server.IsRunning() {
		t.Error("server still running after shutdown")
	}
}

func TestServer_ListenError(t *testing.T) {
	env := newTestEnv(t)
	env.cfg.Server.ListenAddress = "256.0.0.1:bad"

	if err := env.server.Listen(); err == nil {
		t.Error("Listen() succeeded on an invalid address")
	}
}
