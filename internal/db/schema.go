package db

import (
	"database/sql"
	"fmt"
)

// schema is the full database schema. Business records are not
// relational rows: each named collection is stored as a single JSON
// payload, rewritten in full on every mutation. The remaining tables
// carry operator credentials, session revocations, and item photos
// (kept out of the JSON payloads so they stay small).
const schema = `
CREATE TABLE IF NOT EXISTS collections (
    name    TEXT PRIMARY KEY,
    payload BLOB NOT NULL
);

CREATE TABLE IF NOT EXISTS settings (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS revoked_tokens (
    jti        TEXT PRIMARY KEY,
    expires_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS item_images (
    item_id TEXT PRIMARY KEY,
    data    BLOB NOT NULL,
    mime    TEXT NOT NULL
);
`

// migrations is a list of SQL statements applied in order after schema
// creation. Each migration must be idempotent. Append new migrations
// at the end.
var migrations = []string{
	// Migration 1: record the schema version so future changes to the
	// collection payload format have something to key off.
	`INSERT OR IGNORE INTO settings (key, value) VALUES ('schema_version', '1')`,
}

// EnsureSchema creates all tables if they don't already exist and runs
// the migration list.
func EnsureSchema(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}

	for i, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return fmt.Errorf("running migration %d: %w", i+1, err)
		}
	}

	return nil
}
