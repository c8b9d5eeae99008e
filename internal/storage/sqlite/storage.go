// Package sqlite persists the directory in an embedded SQLite database,
// the durable-local-storage analog of the browser original. The driver
// is pure Go, so the binary stays self-contained.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/chhavipande/museumyatra/internal/model"
	"github.com/chhavipande/museumyatra/internal/storage"
)

// slotKey is the single row holding the serialized directory
const slotKey = "directory"

// Storage is a SQLite-backed implementation of the storage interface
type Storage struct {
	db *sql.DB
}

// New opens (or creates) the database at path and prepares the schema.
// Use ":memory:" for an ephemeral database in tests.
func New(path string) (*Storage, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite database: %w", err)
	}

	const schema = `
		CREATE TABLE IF NOT EXISTS app_state (
			slot TEXT PRIMARY KEY,
			data BLOB NOT NULL
		)`
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create app_state table: %w", err)
	}

	return &Storage{db: db}, nil
}

// Close closes the database
func (s *Storage) Close() error {
	return s.db.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) LoadDirectory(ctx context.Context) (*model.Directory, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM app_state WHERE slot = ?`, slotKey,
	).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrDirectoryNotFound
		}
		return nil, fmt.Errorf("load directory: %w", err)
	}

	var dir model.Directory
	if err := json.Unmarshal(data, &dir); err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrDirectoryCorrupt, err)
	}
	return &dir, nil
}

func (s *Storage) SaveDirectory(ctx context.Context, dir *model.Directory) error {
	data, err := json.Marshal(dir)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO app_state (slot, data) VALUES (?, ?)
		 ON CONFLICT(slot) DO UPDATE SET data = excluded.data`,
		slotKey, data,
	)
	if err != nil {
		return fmt.Errorf("save directory: %w", err)
	}
	return nil
}
