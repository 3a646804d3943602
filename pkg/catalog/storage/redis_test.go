package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"

	"mercator-hq/solarsystem/pkg/catalog"
)

func newTestRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	store, err := NewRedisStore(context.Background(), RedisConfig{
		URI:       "redis://" + mr.Addr(),
		KeyPrefix: "planets:",
	})
	if err != nil {
		t.Fatalf("NewRedisStore() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store, mr
}

func TestRedisStore_SeedAndFind(t *testing.T) {
	store, mr := newTestRedisStore(t)
	ctx := context.Background()

	err := store.Seed(ctx, []catalog.Record{
		{ID: 1, Name: "Mercury", Velocity: "47.9 km/s"},
		{ID: 2, Name: "Venus"},
	})
	if err != nil {
		t.Fatalf("Seed() error = %v", err)
	}

	if !mr.Exists("planets:1") {
		t.Error("expected key planets:1 to exist")
	}

	got, err := store.FindByID(ctx, 1)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if len(got) != 1 || got[0].Name != "Mercury" || got[0].Velocity != "47.9 km/s" {
		t.Errorf("FindByID(1) = %+v", got)
	}
}

func TestRedisStore_MissingKey(t *testing.T) {
	store, _ := newTestRedisStore(t)

	got, err := store.FindByID(context.Background(), 42)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("FindByID(42) returned %d records, want 0", len(got))
	}
}

func TestRedisStore_ArrayDocument(t *testing.T) {
	store, mr := newTestRedisStore(t)

	mr.Set("planets:5", `[{"id":5,"name":"Jupiter"},{"id":5,"name":"Jupiter again"},{"id":5,"name":"third"}]`)

	got, err := store.FindByID(context.Background(), 5)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("FindByID(5) returned %d records, want 2", len(got))
	}
	if got[0].Name != "Jupiter" {
		t.Errorf("first record = %q, want Jupiter", got[0].Name)
	}
}

func TestRedisStore_MalformedDocument(t *testing.T) {
	store, mr := newTestRedisStore(t)
	mr.Set("planets:6", "not json")

	_, err := store.FindByID(context.Background(), 6)
	if !errors.Is(err, catalog.ErrStoreUnavailable) {
		t.Errorf("FindByID() error = %v, want ErrStoreUnavailable", err)
	}
}

func TestRedisStore_ConnectionLoss(t *testing.T) {
	store, mr := newTestRedisStore(t)
	ctx := context.Background()

	mr.Close()

	if err := store.Ping(ctx); !errors.Is(err, catalog.ErrStoreUnavailable) {
		t.Errorf("Ping() after close error = %v, want ErrStoreUnavailable", err)
	}
	if _, err := store.FindByID(ctx, 1); !errors.Is(err, catalog.ErrStoreUnavailable) {
		t.Errorf("FindByID() after close error = %v, want ErrStoreUnavailable", err)
	}

	if err := mr.Restart(); err != nil {
		t.Fatalf("Restart() error = %v", err)
	}
	if err := store.Ping(ctx); err != nil {
		t.Errorf("Ping() after restart error = %v", err)
	}
}

func TestNewRedisStore_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := NewRedisStore(context.Background(), RedisConfig{URI: "redis://" + addr})
	if !errors.Is(err, catalog.ErrStoreUnavailable) {
		t.Errorf("NewRedisStore() error = %v, want ErrStoreUnavailable", err)
	}
}
