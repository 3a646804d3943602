package storage

import (
	"context"
	"errors"
	"slices"
	"sync"

	"mercator-hq/solarsystem/pkg/catalog"
)

// BackendMemory is the name of the in-memory backend.
const BackendMemory = "memory"

// errMemoryUnavailable is the cause reported while the store is marked down.
var errMemoryUnavailable = errors.New("memory store marked unavailable")

// MemoryStore implements catalog.Store using an in-memory slice.
// Records are kept in insertion order and duplicates are allowed so that
// duplicate handling can be exercised. Intended for tests and development.
type MemoryStore struct {
	mu          sync.RWMutex
	records     []catalog.Record
	unavailable bool
	closed      bool
}

// NewMemoryStore creates a memory store holding a copy of records.
func NewMemoryStore(records ...catalog.Record) *MemoryStore {
	s := &MemoryStore{}
	s.records = append(s.records, records...)
	return s
}

// Name returns "memory".
func (s *MemoryStore) Name() string { return BackendMemory }

// FindByID returns up to two records whose id equals id.
func (s *MemoryStore) FindByID(ctx context.Context, id int64) ([]catalog.Record, error) {
	if err := s.check(ctx, "find"); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []catalog.Record
	for _, rec := range s.records {
		if rec.ID == id {
			out = append(out, rec)
			if len(out) == 2 {
				break
			}
		}
	}
	return out, nil
}

// Ping fails while the store is marked unavailable or closed.
func (s *MemoryStore) Ping(ctx context.Context) error {
	return s.check(ctx, "ping")
}

// Seed removes every record sharing an id with the given ones, duplicates
// included, and appends the new records.
func (s *MemoryStore) Seed(ctx context.Context, records []catalog.Record) error {
	if err := s.check(ctx, "seed"); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, rec := range records {
		s.records = slices.DeleteFunc(s.records, func(r catalog.Record) bool {
			return r.ID == rec.ID
		})
		s.records = append(s.records, rec)
	}
	return nil
}

// Add appends records without replacing existing ids.
func (s *MemoryStore) Add(records ...catalog.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, records...)
}

// SetUnavailable toggles simulated connection loss.
func (s *MemoryStore) SetUnavailable(down bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unavailable = down
}

// Close marks the store closed. Subsequent calls fail.
func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

func (s *MemoryStore) check(ctx context.Context, op string) error {
	if err := ctx.Err(); err != nil {
		return catalog.NewStoreError(BackendMemory, op, err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return catalog.NewStoreError(BackendMemory, op, errors.New("store closed"))
	}
	if s.unavailable {
		return catalog.NewStoreError(BackendMemory, op, errMemoryUnavailable)
	}
	return nil
}
