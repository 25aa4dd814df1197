// Package photo stores processed item photos on disk under the uploads
// directory and maps them to the relative URLs persisted on item records.
package photo

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/founditapp/foundit/internal/imaging"
)

// URLPrefix is the public path photos are served under.
const URLPrefix = "/uploads/"

// Store saves and removes item photos.
type Store struct {
	dir string
}

// NewStore ensures the upload directory exists.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating upload directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the upload directory for static serving.
func (s *Store) Dir() string { return s.dir }

// Save processes the uploaded image and writes it under a random name,
// returning the relative URL to persist on the item record.
func (s *Store) Save(r io.Reader) (string, error) {
	processed, err := imaging.Process(r)
	if err != nil {
		return "", err
	}

	name := uuid.NewString() + ".jpg"
	if err := os.WriteFile(filepath.Join(s.dir, name), processed.Data, 0644); err != nil {
		return "", fmt.Errorf("writing photo: %w", err)
	}
	return URLPrefix + name, nil
}

// Remove deletes the photo referenced by url. A missing file is not an
// error; the record is already gone either way.
func (s *Store) Remove(url string) error {
	name, ok := strings.CutPrefix(url, URLPrefix)
	if !ok || name == "" || strings.Contains(name, "/") {
		return fmt.Errorf("not an uploaded photo url: %q", url)
	}
	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing photo: %w", err)
	}
	return nil
}
