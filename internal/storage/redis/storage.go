package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/chhavipande/museumyatra/internal/model"
	"github.com/chhavipande/museumyatra/internal/storage"
)

// directoryKey is the single slot holding the serialized directory
const directoryKey = "museumyatra:directory"

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{client: client}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client) *Storage {
	return &Storage{client: client}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) LoadDirectory(ctx context.Context) (*model.Directory, error) {
	data, err := s.client.Get(ctx, directoryKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrDirectoryNotFound
		}
		return nil, err
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
	return s.client.Set(ctx, directoryKey, data, 0).Err()
}
