package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"mercator-hq/solarsystem/pkg/catalog"
)

// createTempDB creates a temporary SQLite catalog for testing.
func createTempDB(t *testing.T) (*SQLiteStore, string) {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "nested", "catalog.db")

	store, err := NewSQLiteStore(context.Background(), SQLiteConfig{
		Path:        dbPath,
		Driver:      "sqlite",
		BusyTimeout: time.Second,
	})
	if err != nil {
		t.Fatalf("Failed to create SQLite store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store, dbPath
}

func TestSQLiteStore_Initialize(t *testing.T) {
	store, dbPath := createTempDB(t)

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
	if store.Name() != BackendSQLite {
		t.Errorf("Name() = %q, want %q", store.Name(), BackendSQLite)
	}
	if err := store.Ping(context.Background()); err != nil {
		t.Errorf("Ping() error = %v", err)
	}
}

func TestSQLiteStore_SeedAndFind(t *testing.T) {
	store, _ := createTempDB(t)
	ctx := context.Background()

	records, err := catalog.DefaultRecords()
	if err != nil {
		t.Fatalf("DefaultRecords() error = %v", err)
	}
	if err := store.Seed(ctx, records); err != nil {
		t.Fatalf("Seed() error = %v", err)
	}

	got, err := store.FindByID(ctx, 1)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("FindByID(1) returned %d records, want 1", len(got))
	}
	if got[0].Name != "Mercury" || got[0].ID != 1 {
		t.Errorf("FindByID(1) = %+v, want Mercury", got[0])
	}

	got, err = store.FindByID(ctx, 99)
	if err != nil {
		t.Fatalf("FindByID(99) error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("FindByID(99) returned %d records, want 0", len(got))
	}
}

func TestSQLiteStore_SeedIsIdempotent(t *testing.T) {
	store, _ := createTempDB(t)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if err := store.Seed(ctx, []catalog.Record{{ID: 2, Name: "Venus"}}); err != nil {
			t.Fatalf("Seed() run %d error = %v", i, err)
		}
	}

	got, err := store.FindByID(ctx, 2)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if len(got) != 1 {
		t.Errorf("FindByID(2) returned %d records after reseed, want 1", len(got))
	}
}

func TestSQLiteStore_DuplicatesCappedAtTwo(t *testing.T) {
	store, _ := createTempDB(t)
	ctx := context.Background()

	for _, name := range []string{"Earth", "Earth II", "Earth III"} {
		_, err := store.db.ExecContext(ctx, sqliteInsert, 3, name, "", "", "", "")
		if err != nil {
			t.Fatalf("insert %s: %v", name, err)
		}
	}

	got, err := store.FindByID(ctx, 3)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("FindByID(3) returned %d records, want 2", len(got))
	}
	if got[0].Name != "Earth" {
		t.Errorf("first record = %q, want insertion order", got[0].Name)
	}
}

func TestSQLiteStore_ClosedReturnsStoreError(t *testing.T) {
	store, _ := createTempDB(t)
	store.Close()

	_, err := store.FindByID(context.Background(), 1)
	if !errors.Is(err, catalog.ErrStoreUnavailable) {
		t.Errorf("FindByID() on closed store error = %v, want ErrStoreUnavailable", err)
	}
}
