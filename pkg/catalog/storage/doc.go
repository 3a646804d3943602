// Package storage provides catalog store backends.
//
// Four backends implement catalog.Store:
//
//   - sqlite: database/sql over a local file, using either the pure-Go
//     modernc.org/sqlite driver ("sqlite") or the cgo mattn/go-sqlite3
//     driver ("sqlite3")
//   - postgres: a pgx connection pool
//   - redis: one JSON document per record under a key prefix
//   - memory: a map guarded by a mutex, for tests and local development
//
// Open selects a backend from configuration and performs the startup
// handshake. Every backend also implements catalog.Seeder so that the seed
// command can provision records out-of-band.
//
// All store failures are returned as *catalog.StoreError, which matches
// catalog.ErrStoreUnavailable under errors.Is.
package storage
