package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/chhavipande/museumyatra/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func (s *StorageSuite) TestLoadEmptyStorage() {
	_, err := s.storage.LoadDirectory(s.ctx)
	s.ErrorIs(err, model.ErrDirectoryNotFound)
}

func (s *StorageSuite) TestSaveAndLoad() {
	dir := model.NewDirectory()
	dir.Accounts["alice"] = &model.Account{
		PasswordHash: "abc123",
		Data:         model.NewProgressRecord(),
	}
	dir.Accounts["alice"].Data.Points = 30
	dir.CurrentUser = "alice"

	err := s.storage.SaveDirectory(s.ctx, dir)
	s.Require().NoError(err)

	loaded, err := s.storage.LoadDirectory(s.ctx)
	s.Require().NoError(err)
	s.Equal("alice", loaded.CurrentUser)
	s.Equal(30, loaded.Accounts["alice"].Data.Points)
}

func (s *StorageSuite) TestLoadReturnsIndependentCopy() {
	dir := model.NewDirectory()
	s.Require().NoError(s.storage.SaveDirectory(s.ctx, dir))

	first, err := s.storage.LoadDirectory(s.ctx)
	s.Require().NoError(err)
	first.CurrentUser = "mutated"

	second, err := s.storage.LoadDirectory(s.ctx)
	s.Require().NoError(err)
	s.Empty(second.CurrentUser)
}

func (s *StorageSuite) TestSaveOverwrites() {
	first := model.NewDirectory()
	first.CurrentUser = ""
	s.Require().NoError(s.storage.SaveDirectory(s.ctx, first))

	second := model.NewDirectory()
	second.Accounts["bob"] = &model.Account{Data: model.NewProgressRecord()}
	second.CurrentUser = "bob"
	s.Require().NoError(s.storage.SaveDirectory(s.ctx, second))

	loaded, err := s.storage.LoadDirectory(s.ctx)
	s.Require().NoError(err)
	s.Equal("bob", loaded.CurrentUser)
}

func (s *StorageSuite) TestCorruptBlob() {
	s.storage.SetRaw([]byte("{broken"))

	_, err := s.storage.LoadDirectory(s.ctx)
	s.ErrorIs(err, model.ErrDirectoryCorrupt)
}
