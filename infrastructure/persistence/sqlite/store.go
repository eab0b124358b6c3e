// Package sqlite keeps the catalog document in a single SQLite row.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"zookeepr/domain/core/entities"
	"zookeepr/infrastructure/persistence/snapshot"

	_ "modernc.org/sqlite" // pure go sqlite driver
)

const documentName = "animals"

// Store persists the full document as one JSON blob, replacing it on every save.
type Store struct {
	db   *sql.DB
	path string
}

// New opens (or creates) the database at path
func New(path string) (*Store, error) {
	if path == "" {
		path = "zookeepr.db"
	}
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("create dirs: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// a single connection keeps ":memory:" databases alive between calls
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS snapshot (
		name TEXT PRIMARY KEY,
		payload BLOB NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create snapshot table: %w", err)
	}
	return &Store{db: db, path: path}, nil
}

func (s *Store) Driver() string { return snapshot.DriverSQLite }

func (s *Store) Load(ctx context.Context) ([]entities.Animal, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM snapshot WHERE name = ?`, documentName).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return []entities.Animal{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select snapshot: %w", err)
	}
	return snapshot.Decode(payload)
}

func (s *Store) Save(ctx context.Context, animals []entities.Animal) error {
	payload, err := snapshot.Encode(animals)
	if err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO snapshot(name, payload) VALUES(?, ?)
		 ON CONFLICT(name) DO UPDATE SET payload = excluded.payload`,
		documentName, payload,
	); err != nil {
		return fmt.Errorf("upsert snapshot: %w", err)
	}
	return nil
}

// Close releases the database handle
func (s *Store) Close() error {
	return s.db.Close()
}
