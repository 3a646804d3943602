package storage

// SchemaVersion is the current catalog schema version.
const SchemaVersion = 1

// Schema creates the catalog tables. The id index is deliberately not
// unique: the catalog is provisioned out-of-band and lookups must tolerate
// duplicates.
const Schema = `
CREATE TABLE IF NOT EXISTS planets (
    rowid_pk INTEGER PRIMARY KEY AUTOINCREMENT,
    id INTEGER NOT NULL,
    name TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    image TEXT NOT NULL DEFAULT '',
    velocity TEXT NOT NULL DEFAULT '',
    distance TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_planets_id ON planets(id);

CREATE TABLE IF NOT EXISTS schema_version (
    version INTEGER PRIMARY KEY,
    applied_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// InsertSchemaVersion records the schema version.
const InsertSchemaVersion = `INSERT OR IGNORE INTO schema_version (version) VALUES (?)`

// GetSchemaVersion reads the newest schema version.
const GetSchemaVersion = `SELECT version FROM schema_version ORDER BY version DESC LIMIT 1`

// Queries shared by the SQL backends. Placeholders differ per dialect, so
// the SQLite forms live here and the PostgreSQL forms in postgres.go.
const (
	sqliteFindByID = `SELECT id, name, description, image, velocity, distance
FROM planets WHERE id = ? ORDER BY rowid_pk LIMIT 2`

	sqliteDeleteByID = `DELETE FROM planets WHERE id = ?`

	sqliteInsert = `INSERT INTO planets (id, name, description, image, velocity, distance)
VALUES (?, ?, ?, ?, ?, ?)`
)
