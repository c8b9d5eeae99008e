package accounts

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/chhavipande/museumyatra/internal/model"
	"github.com/chhavipande/museumyatra/internal/storage/memory"
	"github.com/chhavipande/museumyatra/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.ctx = context.Background()

	service, err := New(s.ctx, s.storage, NewHasher(), testutil.NopLogger())
	s.Require().NoError(err)
	s.service = service
}

// Register tests

func (s *ServiceSuite) TestRegisterSucceeds() {
	err := s.service.Register(s.ctx, "alice", "pw123")
	s.Require().NoError(err)

	// Registration does not sign the user in
	_, signedIn := s.service.CurrentUser()
	s.False(signedIn)
}

func (s *ServiceSuite) TestRegisterDuplicateUsername() {
	s.Require().NoError(s.service.Register(s.ctx, "alice", "pw123"))

	err := s.service.Register(s.ctx, "alice", "other")
	s.ErrorIs(err, model.ErrDuplicateUsername)
}

func (s *ServiceSuite) TestRegisterUsernamesAreCaseSensitive() {
	s.Require().NoError(s.service.Register(s.ctx, "alice", "pw123"))

	err := s.service.Register(s.ctx, "Alice", "pw123")
	s.NoError(err)
}

func (s *ServiceSuite) TestRegisterPersistsHashedPassword() {
	s.Require().NoError(s.service.Register(s.ctx, "alice", "pw123"))

	dir, err := s.storage.LoadDirectory(s.ctx)
	s.Require().NoError(err)

	acc := dir.Accounts["alice"]
	s.Require().NotNil(acc)
	s.NotEmpty(acc.PasswordHash)
	s.NotEqual("pw123", acc.PasswordHash)
}

// Login tests

func (s *ServiceSuite) TestLoginSucceeds() {
	s.Require().NoError(s.service.Register(s.ctx, "alice", "pw123"))

	err := s.service.Login(s.ctx, "alice", "pw123")
	s.Require().NoError(err)

	username, signedIn := s.service.CurrentUser()
	s.True(signedIn)
	s.Equal("alice", username)
}

func (s *ServiceSuite) TestLoginUnknownUser() {
	err := s.service.Login(s.ctx, "nobody", "pw123")
	s.ErrorIs(err, model.ErrUnknownUser)
}

func (s *ServiceSuite) TestLoginWrongPassword() {
	s.Require().NoError(s.service.Register(s.ctx, "alice", "pw123"))

	err := s.service.Login(s.ctx, "alice", "wrong")
	s.ErrorIs(err, model.ErrWrongPassword)

	// Failed login leaves the directory untouched
	_, signedIn := s.service.CurrentUser()
	s.False(signedIn)
}

func (s *ServiceSuite) TestLoginSwitchesUser() {
	s.Require().NoError(s.service.Register(s.ctx, "alice", "pw123"))
	s.Require().NoError(s.service.Register(s.ctx, "bob", "pw456"))

	s.Require().NoError(s.service.Login(s.ctx, "alice", "pw123"))
	s.Require().NoError(s.service.Login(s.ctx, "bob", "pw456"))

	username, _ := s.service.CurrentUser()
	s.Equal("bob", username)
}

// Logout tests

func (s *ServiceSuite) TestLogoutRevertsToAnonymous() {
	s.Require().NoError(s.service.Register(s.ctx, "alice", "pw123"))
	s.Require().NoError(s.service.Login(s.ctx, "alice", "pw123"))

	s.service.Logout(s.ctx)

	_, signedIn := s.service.CurrentUser()
	s.False(signedIn)
}

func (s *ServiceSuite) TestLogoutPreservesAccountData() {
	s.Require().NoError(s.service.Register(s.ctx, "alice", "pw123"))
	s.Require().NoError(s.service.Login(s.ctx, "alice", "pw123"))

	s.service.Update(s.ctx, func(p *model.ProgressRecord) {
		p.Points = 50
	})
	s.service.Logout(s.ctx)

	// Anonymous slot is separate
	s.Equal(0, s.service.CurrentProgress().Points)

	s.Require().NoError(s.service.Login(s.ctx, "alice", "pw123"))
	s.Equal(50, s.service.CurrentProgress().Points)
}

// DeleteCurrent tests

func (s *ServiceSuite) TestDeleteCurrentRemovesAccount() {
	s.Require().NoError(s.service.Register(s.ctx, "alice", "pw123"))
	s.Require().NoError(s.service.Login(s.ctx, "alice", "pw123"))

	err := s.service.DeleteCurrent(s.ctx)
	s.Require().NoError(err)

	_, signedIn := s.service.CurrentUser()
	s.False(signedIn)

	err = s.service.Login(s.ctx, "alice", "pw123")
	s.ErrorIs(err, model.ErrUnknownUser)
}

func (s *ServiceSuite) TestDeleteCurrentRequiresSignIn() {
	err := s.service.DeleteCurrent(s.ctx)
	s.ErrorIs(err, model.ErrNoCurrentUser)
}

// ResetJourney tests

func (s *ServiceSuite) TestResetJourneyClearsProgressKeepsBadges() {
	s.Require().NoError(s.service.Register(s.ctx, "alice", "pw123"))
	s.Require().NoError(s.service.Login(s.ctx, "alice", "pw123"))

	s.service.Update(s.ctx, func(p *model.ProgressRecord) {
		p.Points = 30
		p.AddToWishlist("indian-museum-kolkata")
		p.GrantBadge("novice traveller")
	})

	s.service.ResetJourney(s.ctx)

	p := s.service.CurrentProgress()
	s.Equal(0, p.Points)
	s.Empty(p.Wishlist)
	s.Equal([]model.BadgeID{"novice traveller"}, p.Badges)
}

func (s *ServiceSuite) TestResetJourneyAnonymous() {
	s.service.Update(s.ctx, func(p *model.ProgressRecord) {
		p.Points = 10
		p.GrantBadge("novice traveller")
	})

	s.service.ResetJourney(s.ctx)

	p := s.service.CurrentProgress()
	s.Equal(0, p.Points)
	s.Equal([]model.BadgeID{"novice traveller"}, p.Badges)
}

// Persistence tests

func (s *ServiceSuite) TestStateSurvivesRestart() {
	s.Require().NoError(s.service.Register(s.ctx, "alice", "pw123"))
	s.Require().NoError(s.service.Login(s.ctx, "alice", "pw123"))
	s.service.Update(s.ctx, func(p *model.ProgressRecord) {
		p.Points = 40
	})

	// A second service over the same storage sees the saved directory
	restarted, err := New(s.ctx, s.storage, NewHasher(), testutil.NopLogger())
	s.Require().NoError(err)

	username, signedIn := restarted.CurrentUser()
	s.True(signedIn)
	s.Equal("alice", username)
	s.Equal(40, restarted.CurrentProgress().Points)
}

func (s *ServiceSuite) TestCorruptDirectoryStartsFresh() {
	s.storage.SetRaw([]byte("{not json"))

	service, err := New(s.ctx, s.storage, NewHasher(), testutil.NopLogger())
	s.Require().NoError(err)

	_, signedIn := service.CurrentUser()
	s.False(signedIn)
	s.Equal(0, service.CurrentProgress().Points)
}

func (s *ServiceSuite) TestCurrentProgressReturnsSnapshot() {
	snapshot := s.service.CurrentProgress()
	snapshot.Points = 999

	s.Equal(0, s.service.CurrentProgress().Points)
}
