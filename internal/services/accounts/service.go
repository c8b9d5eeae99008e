package accounts

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/chhavipande/museumyatra/internal/model"
	"github.com/chhavipande/museumyatra/internal/storage"
)

// Service owns the account directory: registration, authentication,
// the current-user pointer and the anonymous slot. The directory is
// loaded once at construction and held in memory behind a mutex; every
// mutation is written back to storage best-effort. A failed save is
// logged and the in-memory directory stays authoritative for the
// session, matching the last-write-wins durability of the original.
type Service struct {
	storage storage.Storage
	hasher  PasswordHasher
	logger  *slog.Logger

	mu  sync.Mutex
	dir *model.Directory
}

// New creates an accounts service, loading any previously saved
// directory. Missing data yields a fresh empty directory; corrupt data
// is logged and likewise treated as empty, never surfaced. Any other
// load failure (the backend being unreachable) is returned.
func New(ctx context.Context, store storage.Storage, hasher PasswordHasher, logger *slog.Logger) (*Service, error) {
	dir, err := store.LoadDirectory(ctx)
	switch {
	case err == nil:
		dir.Normalize()
	case errors.Is(err, model.ErrDirectoryNotFound):
		dir = model.NewDirectory()
	case errors.Is(err, model.ErrDirectoryCorrupt):
		logger.Warn("saved directory is corrupt, starting fresh",
			slog.String("error", err.Error()),
		)
		dir = model.NewDirectory()
	default:
		return nil, err
	}

	return &Service{
		storage: store,
		hasher:  hasher,
		logger:  logger,
		dir:     dir,
	}, nil
}

// Register creates a new account. The username must not already exist
// (case-sensitive exact match). Registration does not sign the user in.
func (s *Service) Register(ctx context.Context, username, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.dir.Accounts[username]; exists {
		return model.ErrDuplicateUsername
	}

	s.dir.Accounts[username] = &model.Account{
		PasswordHash: s.hasher.Hash(password),
		Data:         model.NewProgressRecord(),
	}
	s.persist(ctx)

	s.logger.Info("account registered", slog.String("username", username))
	return nil
}

// Login authenticates a user and makes them the current user.
// On failure the directory is left untouched.
func (s *Service) Login(ctx context.Context, username, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.dir.Accounts[username]
	if !ok {
		return model.ErrUnknownUser
	}
	if acc.PasswordHash != s.hasher.Hash(password) {
		return model.ErrWrongPassword
	}

	s.dir.CurrentUser = username
	s.persist(ctx)

	s.logger.Info("user signed in", slog.String("username", username))
	return nil
}

// Logout clears the current-user pointer. The anonymous slot is a
// separate persistent record and is not touched by login transitions.
func (s *Service) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.dir.CurrentUser = ""
	s.persist(ctx)
}

// DeleteCurrent removes the signed-in user's account entirely and
// reverts to anonymous mode. Irreversible.
func (s *Service) DeleteCurrent(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.dir.CurrentUser == "" {
		return model.ErrNoCurrentUser
	}

	username := s.dir.CurrentUser
	delete(s.dir.Accounts, username)
	s.dir.CurrentUser = ""
	s.persist(ctx)

	s.logger.Info("account deleted", slog.String("username", username))
	return nil
}

// ResetJourney replaces the current identity's progress record with an
// empty one. Unlocked badges survive the reset.
func (s *Service) ResetJourney(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	old := s.dir.CurrentProgress()
	fresh := model.NewProgressRecord()
	fresh.Badges = append(fresh.Badges, old.Badges...)

	if s.dir.CurrentUser != "" {
		s.dir.Accounts[s.dir.CurrentUser].Data = fresh
	} else {
		s.dir.Anonymous = fresh
	}
	s.persist(ctx)
}

// CurrentUser returns the signed-in username, or false in anonymous mode
func (s *Service) CurrentUser() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dir.CurrentUser, s.dir.CurrentUser != ""
}

// CurrentProgress returns a snapshot copy of the current identity's
// progress record. It is a point-in-time view: re-fetch after any
// mutation rather than caching across operations.
func (s *Service) CurrentProgress() *model.ProgressRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dir.CurrentProgress().Clone()
}

// Update applies fn to the current identity's live progress record and
// persists the directory. The whole mutation runs under the directory
// lock, so callers observe it atomically; fn must validate its inputs
// before being passed in, as there is no rollback.
func (s *Service) Update(ctx context.Context, fn func(p *model.ProgressRecord)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fn(s.dir.CurrentProgress())
	s.persist(ctx)
}

// persist writes the directory to storage. Write failures are logged
// and otherwise ignored: the in-memory state remains authoritative.
// Callers must hold s.mu.
func (s *Service) persist(ctx context.Context) {
	if err := s.storage.SaveDirectory(ctx, s.dir); err != nil {
		s.logger.Error("failed to save directory", slog.String("error", err.Error()))
	}
}
