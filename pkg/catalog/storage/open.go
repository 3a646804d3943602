package storage

import (
	"context"
	"fmt"

	"mercator-hq/solarsystem/pkg/catalog"
	"mercator-hq/solarsystem/pkg/config"
)

// Opened is the union of what every backend offers.
type Opened interface {
	catalog.Store
	catalog.Seeder
}

// Open creates the store selected by cfg.Backend and completes its startup
// handshake within cfg.ConnectTimeout.
func Open(ctx context.Context, cfg config.StoreConfig) (Opened, error) {
	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}

	switch cfg.Backend {
	case BackendSQLite, "":
		return opened(NewSQLiteStore(ctx, SQLiteConfig{
			Path:        cfg.SQLite.Path,
			Driver:      cfg.SQLite.Driver,
			BusyTimeout: cfg.SQLite.BusyTimeout,
		}))

	case BackendPostgres:
		return opened(NewPostgresStore(ctx, PostgresConfig{
			URI:      cfg.URI,
			Username: cfg.Username,
			Password: cfg.Password,
			MaxConns: cfg.Postgres.MaxConns,
			MinConns: cfg.Postgres.MinConns,
		}))

	case BackendRedis:
		return opened(NewRedisStore(ctx, RedisConfig{
			URI:       cfg.URI,
			Username:  cfg.Username,
			Password:  cfg.Password,
			DB:        cfg.Redis.DB,
			KeyPrefix: cfg.Redis.KeyPrefix,
			PoolSize:  cfg.Redis.PoolSize,
		}))

	case BackendMemory:
		records, err := catalog.DefaultRecords()
		if err != nil {
			return nil, err
		}
		return NewMemoryStore(records...), nil

	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}

// opened keeps a typed nil store out of the returned interface.
func opened(store Opened, err error) (Opened, error) {
	if err != nil {
		return nil, err
	}
	return store, nil
}
