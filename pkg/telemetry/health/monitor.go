package health

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// Pinger is the connection check the Monitor runs.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Monitor pings the store on a cron schedule and moves the connection state
// between connected and disconnected as pings fail and recover.
type Monitor struct {
	pinger   Pinger
	state    *ConnectionState
	schedule string
	timeout  time.Duration

	cron    *cron.Cron
	mu      sync.Mutex
	logger  *slog.Logger
	running bool
}

// NewMonitor creates a monitor. schedule uses standard cron syntax plus the
// "@every <duration>" descriptor; each ping is bounded by timeout.
func NewMonitor(pinger Pinger, state *ConnectionState, schedule string, timeout time.Duration) *Monitor {
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	return &Monitor{
		pinger:   pinger,
		state:    state,
		schedule: schedule,
		timeout:  timeout,
		cron:     cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:   slog.Default().With("component", "health.monitor"),
	}
}

// Start schedules the probe and returns immediately. The monitor stops when
// ctx is cancelled or Stop is called. An empty schedule disables probing.
func (m *Monitor) Start(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.schedule == "" {
		m.logger.Info("probe schedule not configured, connection monitor disabled")
		return nil
	}

	if _, err := cron.ParseStandard(m.schedule); err != nil {
		return fmt.Errorf("invalid probe schedule %q: %w", m.schedule, err)
	}

	id, err := m.cron.AddFunc(m.schedule, func() { m.Probe(ctx) })
	if err != nil {
		return fmt.Errorf("failed to schedule connection probe: %w", err)
	}

	m.cron.Start()
	m.running = true

	m.logger.Info("connection monitor started",
		"schedule", m.schedule,
		"timeout", m.timeout,
		"next_probe", m.cron.Entry(id).Next,
	)

	go func() {
		<-ctx.Done()
		m.Stop()
	}()

	return nil
}

// Probe pings the store once and applies the resulting transition. It
// returns the ping error, if any.
func (m *Monitor) Probe(ctx context.Context) error {
	pingCtx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	err := m.pinger.Ping(pingCtx)
	if err != nil {
		if m.state.Set(StateDisconnected) {
			m.logger.Error("store connection lost", "error", err)
		} else {
			m.logger.Debug("store still unreachable", "error", err)
		}
		return err
	}

	if m.state.Set(StateConnected) {
		m.logger.Info("store connection restored")
	}
	return nil
}

// Stop stops the scheduler and waits for a running probe to finish.
func (m *Monitor) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.running {
		<-m.cron.Stop().Done()
		m.running = false
		m.logger.Info("connection monitor stopped")
	}
}

// IsRunning reports whether probes are scheduled.
func (m *Monitor) IsRunning() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.running
}
