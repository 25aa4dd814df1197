// Package sqlitestore persists each collection as a SQLite table, one row
// per record, with an item's history kept as a JSON document in its row.
package sqlitestore

import (
	"database/sql"
	"time"

	"github.com/founditapp/foundit/internal/db"
	"github.com/founditapp/foundit/internal/store"
)

// Store is the embedded SQLite persistence backend.
type Store struct {
	db *sql.DB
}

// New opens (or creates) the database at path and ensures the schema.
func New(path string) (*Store, error) {
	database, err := db.Open(path)
	if err != nil {
		return nil, err
	}
	if err := db.EnsureSchema(database); err != nil {
		database.Close()
		return nil, err
	}
	return &Store{db: database}, nil
}

// NewWithDB wraps an already-open database. The caller keeps ownership of
// closing it; used by tests with db.NewTestDB.
func NewWithDB(database *sql.DB) *Store {
	return &Store{db: database}
}

// Items returns the item collection.
func (s *Store) Items() store.ItemStore { return &Items{db: s.db} }

// Claims returns the claim collection.
func (s *Store) Claims() store.ClaimStore { return &Claims{db: s.db} }

// LostReports returns the lost-report collection.
func (s *Store) LostReports() store.LostReportStore { return &LostReports{db: s.db} }

// Credentials returns the admin credential document.
func (s *Store) Credentials() store.CredentialStore { return &Credentials{db: s.db} }

// Close closes the underlying database.
func (s *Store) Close() error { return s.db.Close() }

// timeLayout is RFC 3339 with fixed nanosecond width so stored timestamps
// sort lexicographically in ORDER BY clauses.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// formatTime renders a timestamp for storage.
func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// parseTime reads a stored timestamp; zero time on empty.
func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
