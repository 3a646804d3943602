package catalog

import (
	"context"
	"time"
)

// Record is one celestial body in the catalog.
type Record struct {
	ID          int64  `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Image       string `json:"image" yaml:"image"`
	Velocity    string `json:"velocity" yaml:"velocity"`
	Distance    string `json:"distance" yaml:"distance"`
}

// Store is the read-only contract of a catalog store backend.
type Store interface {
	// Name returns the backend name used in logs, metrics and errors.
	Name() string

	// FindByID returns the records whose id equals id. A healthy catalog
	// yields zero or one record; implementations return at most two so that
	// duplicates stay observable without scanning the whole table.
	FindByID(ctx context.Context, id int64) ([]Record, error)

	// Ping verifies that the store connection is usable.
	Ping(ctx context.Context) error

	// Close releases the underlying connection.
	Close() error
}

// Seeder provisions records out-of-band. It is never used while serving.
type Seeder interface {
	// Seed upserts records keyed by id.
	Seed(ctx context.Context, records []Record) error
}

// Lookup outcomes reported to a LookupObserver.
const (
	OutcomeHit       = "hit"
	OutcomeNotFound  = "not_found"
	OutcomeError     = "error"
	OutcomeDuplicate = "duplicate"
)

// LookupObserver receives the outcome and latency of every lookup.
type LookupObserver interface {
	ObserveLookup(outcome string, duration time.Duration)
}
