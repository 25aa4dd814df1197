package filestore

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/founditapp/foundit/internal/model"
)

// Credentials is the flat-file admin credential document.
type Credentials struct {
	s *Store
}

// Get returns the stored credentials, or nil if none exist yet.
func (c *Credentials) Get(_ context.Context) (*model.Credentials, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()

	if _, err := os.Stat(filepath.Join(c.s.dir, adminFile)); errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	var creds model.Credentials
	if err := c.s.readFile(adminFile, &creds); err != nil {
		return nil, err
	}
	if creds.Username == "" {
		return nil, nil
	}
	return &creds, nil
}

// Set replaces the credential document.
func (c *Credentials) Set(_ context.Context, creds *model.Credentials) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	return c.s.writeFile(adminFile, creds)
}
