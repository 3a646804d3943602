package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/redis/go-redis/v9"

	"mercator-hq/solarsystem/pkg/catalog"
)

// BackendRedis is the name of the Redis backend.
const BackendRedis = "redis"

// RedisConfig contains configuration for the Redis backend.
type RedisConfig struct {
	// URI is a redis:// or rediss:// connection string.
	URI string

	// Username and Password override the credentials embedded in URI.
	Username string
	Password string

	// DB selects the logical database when URI does not name one.
	DB int

	// KeyPrefix is prepended to the decimal id to form each record key.
	KeyPrefix string

	// PoolSize is the maximum number of socket connections.
	PoolSize int
}

// RedisStore implements catalog.Store with one JSON document per record.
// A key holds either a single record object or an array of records.
type RedisStore struct {
	client *redis.Client
	prefix string
	logger *slog.Logger
}

// NewRedisStore parses the URI, creates the client and pings the server.
func NewRedisStore(ctx context.Context, config RedisConfig) (*RedisStore, error) {
	opts, err := redis.ParseURL(config.URI)
	if err != nil {
		return nil, catalog.NewStoreError(BackendRedis, "parse_config", err)
	}

	if config.Username != "" {
		opts.Username = config.Username
	}
	if config.Password != "" {
		opts.Password = config.Password
	}
	if opts.DB == 0 && config.DB != 0 {
		opts.DB = config.DB
	}
	if config.PoolSize > 0 {
		opts.PoolSize = config.PoolSize
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, catalog.NewStoreError(BackendRedis, "connect", err)
	}

	logger := slog.Default().With("component", "catalog.storage.redis")
	logger.Info("Redis store initialized",
		"addr", opts.Addr,
		"db", opts.DB,
		"key_prefix", config.KeyPrefix,
	)

	return &RedisStore{client: client, prefix: config.KeyPrefix, logger: logger}, nil
}

// Name returns "redis".
func (s *RedisStore) Name() string { return BackendRedis }

func (s *RedisStore) key(id int64) string {
	return s.prefix + strconv.FormatInt(id, 10)
}

// FindByID reads the document stored under the record key. A missing key
// yields no records.
func (s *RedisStore) FindByID(ctx context.Context, id int64) ([]catalog.Record, error) {
	data, err := s.client.Get(ctx, s.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, catalog.NewStoreError(BackendRedis, "find", err)
	}

	records, err := decodeRedisRecords(data)
	if err != nil {
		return nil, catalog.NewStoreError(BackendRedis, "decode", fmt.Errorf("key %s: %w", s.key(id), err))
	}

	var out []catalog.Record
	for _, rec := range records {
		if rec.ID == id {
			out = append(out, rec)
			if len(out) == 2 {
				break
			}
		}
	}
	return out, nil
}

func decodeRedisRecords(data []byte) ([]catalog.Record, error) {
	var many []catalog.Record
	if err := json.Unmarshal(data, &many); err == nil {
		return many, nil
	}

	var one catalog.Record
	if err := json.Unmarshal(data, &one); err != nil {
		return nil, err
	}
	return []catalog.Record{one}, nil
}

// Ping verifies the connection.
func (s *RedisStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return catalog.NewStoreError(BackendRedis, "ping", err)
	}
	return nil
}

// Seed writes every record as a single JSON object in one pipeline,
// replacing whatever the key held.
func (s *RedisStore) Seed(ctx context.Context, records []catalog.Record) error {
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, rec := range records {
			data, err := json.Marshal(rec)
			if err != nil {
				return fmt.Errorf("encode id %d: %w", rec.ID, err)
			}
			pipe.Set(ctx, s.key(rec.ID), data, 0)
		}
		return nil
	})
	if err != nil {
		return catalog.NewStoreError(BackendRedis, "seed", err)
	}

	s.logger.Info("catalog seeded", "records", len(records))
	return nil
}

// Close closes the client.
func (s *RedisStore) Close() error {
	if err := s.client.Close(); err != nil {
		return catalog.NewStoreError(BackendRedis, "close", err)
	}
	return nil
}
