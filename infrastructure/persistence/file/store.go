// Package file stores the catalog as a single JSON document on the local
// filesystem.
package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"zookeepr/domain/core/entities"
	"zookeepr/infrastructure/persistence/snapshot"
)

// Store reads and rewrites one JSON file. Writes truncate the file in
// place; there is no temp file and rename, so a crash mid-write can leave
// a partial document behind.
type Store struct {
	path string
}

// New returns a store for path, creating its directory if needed
func New(path string) (*Store, error) {
	if path == "" {
		path = "./data/animals.json"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Store{path: path}, nil
}

func (s *Store) Driver() string { return snapshot.DriverFile }

func (s *Store) Load(ctx context.Context) ([]entities.Animal, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []entities.Animal{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	animals, err := snapshot.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.path, err)
	}
	return animals, nil
}

func (s *Store) Save(ctx context.Context, animals []entities.Animal) error {
	data, err := snapshot.Encode(animals)
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}
