package storage

import (
	"context"

	"github.com/chhavipande/museumyatra/internal/model"
)

// Storage defines the interface for directory persistence. The whole
// account directory is one JSON blob in a single slot: Load returns the
// previously saved directory and Save overwrites it wholesale.
//
// Load returns model.ErrDirectoryNotFound when nothing has been saved
// yet and model.ErrDirectoryCorrupt when the stored blob fails to
// decode. Callers decide how to recover; the adapters never invent an
// empty directory themselves.
type Storage interface {
	LoadDirectory(ctx context.Context) (*model.Directory, error)
	SaveDirectory(ctx context.Context, dir *model.Directory) error
}
