package health

import (
	"sync"
	"sync/atomic"
)

// State is the lifecycle state of the catalog store connection.
type State int32

const (
	// StateDisconnected is the initial state and the state after a lost connection.
	StateDisconnected State = iota

	// StateConnecting is held while the startup handshake is in progress.
	StateConnecting

	// StateConnected means the store answered the most recent handshake or probe.
	StateConnected
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	default:
		return "unknown"
	}
}

// TransitionFunc is called after every state change.
type TransitionFunc func(from, to State)

// ConnectionState tracks the store connection. Reads are lock-free and safe
// from any goroutine; writes come from the startup sequence and the Monitor.
type ConnectionState struct {
	v atomic.Int32

	mu        sync.Mutex
	listeners []TransitionFunc
}

// NewConnectionState returns a state starting at StateDisconnected.
func NewConnectionState() *ConnectionState {
	return &ConnectionState{}
}

// Load returns the current state.
func (c *ConnectionState) Load() State {
	return State(c.v.Load())
}

// Ready reports whether the store is connected.
func (c *ConnectionState) Ready() bool {
	return c.Load() == StateConnected
}

// OnTransition registers fn to be called after every state change.
func (c *ConnectionState) OnTransition(fn TransitionFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, fn)
}

// Set moves to state to and reports whether the state changed. Listeners run
// only on a change; setting the current state again is a no-op.
func (c *ConnectionState) Set(to State) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	from := State(c.v.Swap(int32(to)))
	if from == to {
		return false
	}

	for _, fn := range c.listeners {
		fn(from, to)
	}
	return true
}
