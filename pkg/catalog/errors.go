package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when no record matches the requested id.
	ErrNotFound = errors.New("planet not found")

	// ErrStoreUnavailable is matched by every store communication failure.
	ErrStoreUnavailable = errors.New("catalog store unavailable")
)

// StoreError represents a failure talking to the catalog store.
type StoreError struct {
	Backend   string // Store backend ("sqlite", "postgres", "redis", "memory")
	Operation string // Operation that failed ("find", "ping", "seed", ...)
	Cause     error  // Underlying driver error
}

// Error implements the error interface.
func (e *StoreError) Error() string {
	return fmt.Sprintf("store error [backend=%s, operation=%s]: %v", e.Backend, e.Operation, e.Cause)
}

// Unwrap returns the underlying cause error.
func (e *StoreError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is ErrStoreUnavailable.
func (e *StoreError) Is(target error) bool {
	return target == ErrStoreUnavailable
}

// NewStoreError creates a new StoreError.
func NewStoreError(backend, operation string, cause error) *StoreError {
	return &StoreError{
		Backend:   backend,
		Operation: operation,
		Cause:     cause,
	}
}
