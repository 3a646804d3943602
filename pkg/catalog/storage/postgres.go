package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"mercator-hq/solarsystem/pkg/catalog"
)

// BackendPostgres is the name of the PostgreSQL backend.
const BackendPostgres = "postgres"

const (
	postgresSchema = `
CREATE TABLE IF NOT EXISTS planets (
    pk BIGSERIAL PRIMARY KEY,
    id BIGINT NOT NULL,
    name TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    image TEXT NOT NULL DEFAULT '',
    velocity TEXT NOT NULL DEFAULT '',
    distance TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_planets_id ON planets(id);
`

	postgresFindByID = `SELECT id, name, description, image, velocity, distance
FROM planets WHERE id = $1 ORDER BY pk LIMIT 2`

	postgresDeleteByID = `DELETE FROM planets WHERE id = $1`

	postgresInsert = `INSERT INTO planets (id, name, description, image, velocity, distance)
VALUES ($1, $2, $3, $4, $5, $6)`
)

// PostgresConfig contains configuration for the PostgreSQL backend.
type PostgresConfig struct {
	// URI is a postgres:// connection string.
	URI string

	// Username and Password override the credentials embedded in URI.
	Username string
	Password string

	// MaxConns and MinConns size the connection pool. Zero keeps the pgx default.
	MaxConns int32
	MinConns int32
}

// PostgresStore implements catalog.Store on a pgx connection pool.
type PostgresStore struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// NewPostgresStore creates the pool and pings the server. The caller bounds
// the handshake through ctx.
func NewPostgresStore(ctx context.Context, config PostgresConfig) (*PostgresStore, error) {
	poolConfig, err := pgxpool.ParseConfig(config.URI)
	if err != nil {
		return nil, catalog.NewStoreError(BackendPostgres, "parse_config", err)
	}

	if config.Username != "" {
		poolConfig.ConnConfig.User = config.Username
	}
	if config.Password != "" {
		poolConfig.ConnConfig.Password = config.Password
	}
	if config.MaxConns > 0 {
		poolConfig.MaxConns = config.MaxConns
	}
	if config.MinConns > 0 {
		poolConfig.MinConns = config.MinConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, catalog.NewStoreError(BackendPostgres, "connect", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, catalog.NewStoreError(BackendPostgres, "connect", err)
	}

	logger := slog.Default().With("component", "catalog.storage.postgres")
	logger.Info("PostgreSQL store initialized",
		"host", poolConfig.ConnConfig.Host,
		"database", poolConfig.ConnConfig.Database,
		"max_conns", poolConfig.MaxConns,
	)

	return &PostgresStore{pool: pool, logger: logger}, nil
}

// Name returns "postgres".
func (s *PostgresStore) Name() string { return BackendPostgres }

// FindByID returns up to two records whose id equals id, oldest first.
func (s *PostgresStore) FindByID(ctx context.Context, id int64) ([]catalog.Record, error) {
	rows, err := s.pool.Query(ctx, postgresFindByID, id)
	if err != nil {
		return nil, catalog.NewStoreError(BackendPostgres, "find", err)
	}

	out, err := pgx.CollectRows(rows, scanPostgresRecord)
	if err != nil {
		return nil, catalog.NewStoreError(BackendPostgres, "find", err)
	}
	return out, nil
}

func scanPostgresRecord(row pgx.CollectableRow) (catalog.Record, error) {
	var rec catalog.Record
	err := row.Scan(&rec.ID, &rec.Name, &rec.Description, &rec.Image, &rec.Velocity, &rec.Distance)
	return rec, err
}

// Ping verifies that a pooled connection is usable.
func (s *PostgresStore) Ping(ctx context.Context) error {
	if err := s.pool.Ping(ctx); err != nil {
		return catalog.NewStoreError(BackendPostgres, "ping", err)
	}
	return nil
}

// Seed creates the schema when missing and replaces every record sharing an
// id with the given ones inside a single transaction.
func (s *PostgresStore) Seed(ctx context.Context, records []catalog.Record) error {
	err := pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, postgresSchema); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
		for _, rec := range records {
			if _, err := tx.Exec(ctx, postgresDeleteByID, rec.ID); err != nil {
				return fmt.Errorf("delete id %d: %w", rec.ID, err)
			}
			if _, err := tx.Exec(ctx, postgresInsert,
				rec.ID, rec.Name, rec.Description, rec.Image, rec.Velocity, rec.Distance); err != nil {
				return fmt.Errorf("insert id %d: %w", rec.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return catalog.NewStoreError(BackendPostgres, "seed", err)
	}

	s.logger.Info("catalog seeded", "records", len(records))
	return nil
}

// Close closes the pool.
func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}
