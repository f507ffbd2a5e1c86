package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/clubtools/spieltag/internal/dependencies/mocks"
	"github.com/clubtools/spieltag/internal/model"
	"github.com/clubtools/spieltag/internal/storage/memory"
)

type AuthSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	service *Service
	ctx     context.Context
}

func TestAuthSuite(t *testing.T) {
	suite.Run(t, new(AuthSuite))
}

func (s *AuthSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC))
	s.service = New(s.storage, s.clock, Config{SessionDuration: time.Hour})
	s.ctx = context.Background()
}

func (s *AuthSuite) TestCreateUserAndLogin() {
	user, err := s.service.CreateUser(s.ctx, "trainer", "secret", model.RoleCoach)
	s.Require().NoError(err)
	s.Equal(model.RoleCoach, user.Role)
	s.NotEqual("secret", user.PasswordHash)

	session, err := s.service.Login(s.ctx, "trainer", "secret")
	s.Require().NoError(err)
	s.Equal(user.ID, session.UserID)
	s.NotEmpty(session.Token)
}

func (s *AuthSuite) TestCreateUserRejectsUnknownRole() {
	_, err := s.service.CreateUser(s.ctx, "trainer", "secret", "manager")
	s.ErrorIs(err, model.ErrInvalidRole)
}

func (s *AuthSuite) TestCreateUserRejectsDuplicateUsername() {
	_, err := s.service.CreateUser(s.ctx, "trainer", "secret", model.RoleCoach)
	s.Require().NoError(err)

	_, err = s.service.CreateUser(s.ctx, "trainer", "other", model.RoleViewer)
	s.ErrorIs(err, ErrUsernameExists)
}

func (s *AuthSuite) TestLoginWrongPassword() {
	_, err := s.service.CreateUser(s.ctx, "trainer", "secret", model.RoleCoach)
	s.Require().NoError(err)

	_, err = s.service.Login(s.ctx, "trainer", "wrong")
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *AuthSuite) TestLoginUnknownUser() {
	_, err := s.service.Login(s.ctx, "nobody", "secret")
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *AuthSuite) TestValidateSession() {
	_, err := s.service.CreateUser(s.ctx, "trainer", "secret", model.RoleCoach)
	s.Require().NoError(err)
	session, err := s.service.Login(s.ctx, "trainer", "secret")
	s.Require().NoError(err)

	validated, err := s.service.ValidateSession(session.Token)
	s.Require().NoError(err)
	s.Equal(session.UserID, validated.UserID)
	s.Equal("trainer", validated.User.Username)
}

func (s *AuthSuite) TestValidateUnknownToken() {
	_, err := s.service.ValidateSession("sess_bogus")
	s.ErrorIs(err, ErrInvalidSession)
}

func (s *AuthSuite) TestSessionExpires() {
	_, err := s.service.CreateUser(s.ctx, "trainer", "secret", model.RoleCoach)
	s.Require().NoError(err)
	session, err := s.service.Login(s.ctx, "trainer", "secret")
	s.Require().NoError(err)

	s.clock.Advance(2 * time.Hour)

	_, err = s.service.ValidateSession(session.Token)
	s.ErrorIs(err, ErrInvalidSession)
}

func (s *AuthSuite) TestInvalidateSession() {
	_, err := s.service.CreateUser(s.ctx, "trainer", "secret", model.RoleCoach)
	s.Require().NoError(err)
	session, err := s.service.Login(s.ctx, "trainer", "secret")
	s.Require().NoError(err)

	s.service.InvalidateSession(session.Token)

	_, err = s.service.ValidateSession(session.Token)
	s.ErrorIs(err, ErrInvalidSession)
}

func (s *AuthSuite) TestCleanExpiredSessions() {
	_, err := s.service.CreateUser(s.ctx, "trainer", "secret", model.RoleCoach)
	s.Require().NoError(err)
	old, err := s.service.Login(s.ctx, "trainer", "secret")
	s.Require().NoError(err)

	s.clock.Advance(2 * time.Hour)
	fresh, err := s.service.Login(s.ctx, "trainer", "secret")
	s.Require().NoError(err)

	s.service.CleanExpiredSessions()

	_, err = s.service.ValidateSession(old.Token)
	s.ErrorIs(err, ErrInvalidSession)
	_, err = s.service.ValidateSession(fresh.Token)
	s.NoError(err)
}

func (s *AuthSuite) TestEnsureAdminBootstrapsOnce() {
	s.Require().NoError(s.service.EnsureAdmin(s.ctx, "admin", "initial"))

	user, err := s.storage.GetUserByUsername(s.ctx, "admin")
	s.Require().NoError(err)
	s.Equal(model.RoleAdmin, user.Role)

	// A second call must not reset the password
	s.Require().NoError(s.service.EnsureAdmin(s.ctx, "admin", "changed"))
	_, err = s.service.Login(s.ctx, "admin", "initial")
	s.NoError(err)
}
