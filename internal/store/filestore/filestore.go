// Package filestore persists each collection as one pretty-printed JSON
// array on disk, read-modify-writing the whole file per mutation. Last
// write wins; a single mutex serializes access within the process.
package filestore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/founditapp/foundit/internal/store"
)

// Collection file names inside the data directory.
const (
	itemsFile  = "items.json"
	claimsFile = "claims.json"
	lostFile   = "lost-items.json"
	adminFile  = "admin.json"
	fileMode   = 0644
	dirMode    = 0755
	jsonIndent = "  "
)

// Store is the flat-file persistence backend.
type Store struct {
	dir string
	mu  sync.Mutex
}

// New creates a file store rooted at dir, creating the directory and empty
// collection files if they do not exist.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, dirMode); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	s := &Store{dir: dir}
	for _, name := range []string{itemsFile, claimsFile, lostFile} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			if err := s.writeFile(name, []any{}); err != nil {
				return nil, err
			}
		}
	}
	return s, nil
}

// Items returns the item collection.
func (s *Store) Items() store.ItemStore { return &Items{s: s} }

// Claims returns the claim collection.
func (s *Store) Claims() store.ClaimStore { return &Claims{s: s} }

// LostReports returns the lost-report collection.
func (s *Store) LostReports() store.LostReportStore { return &LostReports{s: s} }

// Credentials returns the admin credential document.
func (s *Store) Credentials() store.CredentialStore { return &Credentials{s: s} }

// Close is a no-op; every mutation is flushed before returning.
func (s *Store) Close() error { return nil }

// readFile decodes the named collection file into target. A missing file
// leaves target untouched (empty collection).
func (s *Store) readFile(name string, target any) error {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("decoding %s: %w", name, err)
	}
	return nil
}

// writeFile encodes data and replaces the named collection file.
func (s *Store) writeFile(name string, data any) error {
	buf, err := json.MarshalIndent(data, "", jsonIndent)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", name, err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, name), buf, fileMode); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}
