package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	_ "modernc.org/sqlite"

	"mercator-hq/solarsystem/pkg/catalog"
)

// BackendSQLite is the name of the SQLite backend.
const BackendSQLite = "sqlite"

// SQLiteConfig contains configuration for the SQLite backend.
type SQLiteConfig struct {
	// Path is the database file path.
	Path string

	// Driver is the database/sql driver name: "sqlite" or "sqlite3".
	Driver string

	// BusyTimeout is the duration to wait when the database is locked.
	BusyTimeout time.Duration
}

// SQLiteStore implements catalog.Store on a SQLite database.
type SQLiteStore struct {
	db     *sql.DB
	config SQLiteConfig
	logger *slog.Logger
}

// NewSQLiteStore opens the database file, creating its directory and the
// schema when missing, and verifies the connection.
func NewSQLiteStore(ctx context.Context, config SQLiteConfig) (*SQLiteStore, error) {
	if config.Driver == "" {
		config.Driver = "sqlite"
	}
	if config.BusyTimeout <= 0 {
		config.BusyTimeout = 5 * time.Second
	}

	logger := slog.Default().With("component", "catalog.storage.sqlite")

	if dir := filepath.Dir(config.Path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, catalog.NewStoreError(BackendSQLite, "mkdir", err)
		}
	}

	db, err := sql.Open(config.Driver, config.Path)
	if err != nil {
		return nil, catalog.NewStoreError(BackendSQLite, "open", err)
	}

	// SQLite serializes writers; a single connection keeps pragmas consistent.
	db.SetMaxOpenConns(1)

	s := &SQLiteStore{db: db, config: config, logger: logger}

	if err := s.initialize(ctx); err != nil {
		db.Close()
		return nil, err
	}

	logger.Info("SQLite store initialized",
		"path", config.Path,
		"driver", config.Driver,
	)

	return s, nil
}

func (s *SQLiteStore) initialize(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return catalog.NewStoreError(BackendSQLite, "connect", err)
	}

	busyTimeoutMs := s.config.BusyTimeout.Milliseconds()
	if _, err := s.db.ExecContext(ctx, fmt.Sprintf("PRAGMA busy_timeout=%d;", busyTimeoutMs)); err != nil {
		return catalog.NewStoreError(BackendSQLite, "set_busy_timeout", err)
	}

	if _, err := s.db.ExecContext(ctx, Schema); err != nil {
		return catalog.NewStoreError(BackendSQLite, "create_schema", err)
	}

	if _, err := s.db.ExecContext(ctx, InsertSchemaVersion, SchemaVersion); err != nil {
		return catalog.NewStoreError(BackendSQLite, "insert_schema_version", err)
	}

	var version int
	if err := s.db.QueryRowContext(ctx, GetSchemaVersion).Scan(&version); err != nil {
		return catalog.NewStoreError(BackendSQLite, "get_schema_version", err)
	}
	if version != SchemaVersion {
		return catalog.NewStoreError(BackendSQLite, "schema_version_mismatch",
			fmt.Errorf("expected schema version %d, got %d", SchemaVersion, version))
	}

	return nil
}

// Name returns "sqlite".
func (s *SQLiteStore) Name() string { return BackendSQLite }

// FindByID returns up to two records whose id equals id, oldest first.
func (s *SQLiteStore) FindByID(ctx context.Context, id int64) ([]catalog.Record, error) {
	rows, err := s.db.QueryContext(ctx, sqliteFindByID, id)
	if err != nil {
		return nil, catalog.NewStoreError(BackendSQLite, "find", err)
	}
	defer rows.Close()

	var out []catalog.Record
	for rows.Next() {
		var rec catalog.Record
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.Description, &rec.Image, &rec.Velocity, &rec.Distance); err != nil {
			return nil, catalog.NewStoreError(BackendSQLite, "scan", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, catalog.NewStoreError(BackendSQLite, "find", err)
	}

	return out, nil
}

// Ping verifies the database connection.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return catalog.NewStoreError(BackendSQLite, "ping", err)
	}
	return nil
}

// Seed replaces every record sharing an id with the given ones inside a
// single transaction.
func (s *SQLiteStore) Seed(ctx context.Context, records []catalog.Record) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return catalog.NewStoreError(BackendSQLite, "begin", err)
	}
	defer tx.Rollback() //nolint:errcheck

	for _, rec := range records {
		if _, err := tx.ExecContext(ctx, sqliteDeleteByID, rec.ID); err != nil {
			return catalog.NewStoreError(BackendSQLite, "seed", err)
		}
		if _, err := tx.ExecContext(ctx, sqliteInsert,
			rec.ID, rec.Name, rec.Description, rec.Image, rec.Velocity, rec.Distance); err != nil {
			return catalog.NewStoreError(BackendSQLite, "seed", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return catalog.NewStoreError(BackendSQLite, "commit", err)
	}

	s.logger.Info("catalog seeded", "records", len(records))
	return nil
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	if err := s.db.Close(); err != nil {
		return catalog.NewStoreError(BackendSQLite, "close", err)
	}
	return nil
}
