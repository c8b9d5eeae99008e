package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/chhavipande/museumyatra/internal/model"
	"github.com/chhavipande/museumyatra/internal/storage"
)

// slotKey is the single row holding the serialized directory
const slotKey = "directory"

// Storage is a PostgreSQL-backed implementation of the storage interface
type Storage struct {
	pool *pgxpool.Pool
}

// New connects to the database at uri and prepares the schema
func New(ctx context.Context, uri string) (*Storage, error) {
	pool, err := pgxpool.New(ctx, uri)
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	const schema = `
		CREATE TABLE IF NOT EXISTS app_state (
			slot TEXT PRIMARY KEY,
			data JSONB NOT NULL
		)`
	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("create app_state table: %w", err)
	}

	return &Storage{pool: pool}, nil
}

// Close releases the connection pool
func (s *Storage) Close() {
	s.pool.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) LoadDirectory(ctx context.Context) (*model.Directory, error) {
	var data []byte
	err := s.pool.QueryRow(ctx,
		`SELECT data FROM app_state WHERE slot = $1`, slotKey,
	).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
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

	_, err = s.pool.Exec(ctx,
		`INSERT INTO app_state (slot, data) VALUES ($1, $2)
		 ON CONFLICT (slot) DO UPDATE SET data = excluded.data`,
		slotKey, data,
	)
	if err != nil {
		return fmt.Errorf("save directory: %w", err)
	}
	return nil
}
