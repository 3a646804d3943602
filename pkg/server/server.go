package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"

	"go.opentelemetry.io/otel/trace"

	"mercator-hq/solarsystem/pkg/api/handlers"
	"mercator-hq/solarsystem/pkg/config"
	"mercator-hq/solarsystem/pkg/docs"
	"mercator-hq/solarsystem/pkg/telemetry/health"
	"mercator-hq/solarsystem/pkg/telemetry/metrics"
)

// Dependencies are the components the routes delegate to.
type Dependencies struct {
	// Planets answers POST /planets.
	Planets handlers.PlanetLookup

	// Prober answers /live and /ready.
	Prober *health.Prober

	// Docs answers /api-docs.
	Docs *docs.Server

	// Metrics records request metrics and serves the metrics endpoint.
	// Nil disables both.
	Metrics *metrics.Collector

	// Tracer creates one server span per request. Nil disables tracing.
	Tracer trace.Tracer
}

// Server is the HTTP server of the planet catalog.
type Server struct {
	config        *config.ServerConfig
	metricsConfig *config.MetricsConfig
	deps          Dependencies
	httpServer    *http.Server
	listener      net.Listener
	shutdownOnce  sync.Once
	mu            sync.RWMutex
	isRunning     bool
}

// NewServer creates a new server.
func NewServer(cfg *config.Config, deps Dependencies) *Server {
	return &Server{
		config:        &cfg.Server,
		metricsConfig: &cfg.Telemetry.Metrics,
		deps:          deps,
	}
}

// Listen binds the listen address. Start calls it when it has not been
// called yet; calling it first lets the caller learn the bound address.
func (s *Server) Listen() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener != nil {
		return nil
	}

	ln, err := net.Listen("tcp", s.config.ListenAddress)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.config.ListenAddress, err)
	}
	s.listener = ln
	return nil
}

// Addr returns the bound address, or nil before Listen.
func (s *Server) Addr() net.Addr {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Start serves HTTP until ctx is canceled or the server fails, then shuts
// down gracefully.
func (s *Server) Start(ctx context.Context) error {
	if err := s.Listen(); err != nil {
		return err
	}

	s.mu.Lock()
	if s.isRunning {
		s.mu.Unlock()
		return fmt.Errorf("server is already running")
	}
	s.isRunning = true

	s.httpServer = &http.Server{
		Handler:        s.Handler(),
		ReadTimeout:    s.config.ReadTimeout,
		WriteTimeout:   s.config.WriteTimeout,
		IdleTimeout:    s.config.IdleTimeout,
		MaxHeaderBytes: s.config.MaxHeaderBytes,
		ErrorLog:       slog.NewLogLogger(slog.Default().Handler(), slog.LevelWarn),
	}
	httpServer, listener := s.httpServer, s.listener
	s.mu.Unlock()

	errChan := make(chan error, 1)
	go func() {
		slog.Info("starting catalog server", "address", listener.Addr().String())

		if err := httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("context cancelled, initiating shutdown")
		return s.Shutdown(context.Background())
	case err := <-errChan:
		s.mu.Lock()
		s.isRunning = false
		s.mu.Unlock()
		return err
	}
}

// Shutdown gracefully shuts down the server, waiting up to the configured
// shutdown timeout for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error

	s.shutdownOnce.Do(func() {
		s.mu.Lock()
		if !s.isRunning {
			s.mu.Unlock()
			return
		}
		httpServer := s.httpServer
		s.mu.Unlock()

		slog.Info("initiating graceful shutdown", "timeout", s.config.ShutdownTimeout.String())

		shutdownCtx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			slog.Error("error during server shutdown", "error", err)
			shutdownErr = fmt.Errorf("server shutdown error: %w", err)
		}

		s.mu.Lock()
		s.isRunning = false
		s.mu.Unlock()

		slog.Info("catalog server stopped")
	})

	return shutdownErr
}

// IsRunning returns true if the server is running.
func (s *Server) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}
