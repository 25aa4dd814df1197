package db

import (
	"database/sql"
	"fmt"
)

// schema is the full database schema. History is stored as a JSON document
// per item so the row round-trips the same record shape as the other
// backends.
const schema = `
CREATE TABLE IF NOT EXISTS items (
    id           TEXT PRIMARY KEY,
    title        TEXT NOT NULL,
    category     TEXT NOT NULL CHECK (category IN ('electronics', 'clothing', 'accessories', 'books', 'sports', 'other')),
    location     TEXT NOT NULL,
    date_found   TEXT NOT NULL,
    description  TEXT NOT NULL DEFAULT '',
    finder_name  TEXT NOT NULL,
    finder_email TEXT NOT NULL,
    finder_phone TEXT NOT NULL DEFAULT '',
    photo        TEXT NOT NULL DEFAULT '',
    status       TEXT NOT NULL DEFAULT 'pending' CHECK (status IN ('pending', 'approved', 'rejected', 'claimed')),
    history      TEXT NOT NULL DEFAULT '[]',
    created_at   TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS claims (
    id             TEXT PRIMARY KEY,
    item_id        TEXT NOT NULL,
    claimant_name  TEXT NOT NULL,
    claimant_email TEXT NOT NULL,
    claimant_phone TEXT NOT NULL DEFAULT '',
    description    TEXT NOT NULL,
    status         TEXT NOT NULL DEFAULT 'pending' CHECK (status IN ('pending', 'approved', 'rejected')),
    created_at     TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_claims_item_id ON claims(item_id);

CREATE TABLE IF NOT EXISTS lost_reports (
    id              TEXT PRIMARY KEY,
    title           TEXT NOT NULL,
    category        TEXT NOT NULL CHECK (category IN ('electronics', 'clothing', 'accessories', 'books', 'sports', 'other')),
    location_lost   TEXT NOT NULL,
    date_lost       TEXT NOT NULL,
    description     TEXT NOT NULL DEFAULT '',
    owner_name      TEXT NOT NULL,
    owner_email     TEXT NOT NULL,
    owner_phone     TEXT NOT NULL DEFAULT '',
    status          TEXT NOT NULL DEFAULT 'active' CHECK (status IN ('active', 'matched')),
    created_at      TEXT NOT NULL,
    matched_item_id TEXT NOT NULL DEFAULT '',
    matched_at      TEXT,
    matched_by      TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS settings (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`

// EnsureSchema creates all tables and indexes if they don't already exist.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}
