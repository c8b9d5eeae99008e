package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/chhavipande/museumyatra/internal/model"
	"github.com/chhavipande/museumyatra/internal/storage"
)

// Storage is an in-memory implementation of the storage interface.
// The directory is held as its serialized form so that Load/Save have
// the same copy semantics as the durable backends.
type Storage struct {
	mu   sync.RWMutex
	blob []byte
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) LoadDirectory(ctx context.Context) (*model.Directory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.blob == nil {
		return nil, model.ErrDirectoryNotFound
	}
	var dir model.Directory
	if err := json.Unmarshal(s.blob, &dir); err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrDirectoryCorrupt, err)
	}
	return &dir, nil
}

func (s *Storage) SaveDirectory(ctx context.Context, dir *model.Directory) error {
	data, err := json.Marshal(dir)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blob = data
	return nil
}

// SetRaw overwrites the stored blob directly, for corruption tests
func (s *Storage) SetRaw(data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blob = data
}
