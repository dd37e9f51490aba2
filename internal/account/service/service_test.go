package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"rentora/internal/account/models"
	"rentora/internal/account/revocation"
	"rentora/internal/account/store"
	"rentora/internal/account/token"
	dErrors "rentora/pkg/domain-errors"
)

type AccountServiceSuite struct {
	suite.Suite
	service    *Service
	accounts   *store.InMemory
	revocation *revocation.InMemory
	ctx        context.Context
}

func (s *AccountServiceSuite) SetupTest() {
	s.accounts = store.NewInMemory()
	s.revocation = revocation.NewInMemory()
	tokens := token.NewService("test-signing-key", "rentora-test")
	s.service = New(s.accounts, tokens, s.revocation, time.Hour)
	s.ctx = context.Background()
}

func TestAccountServiceSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceSuite))
}

func (s *AccountServiceSuite) createClient(username, password string) *models.Account {
	account, err := s.service.CreateClient(s.ctx, CreateClientInput{
		Username: username,
		Password: password,
		Name:     "Test Client",
	})
	s.Require().NoError(err)
	return account
}

func (s *AccountServiceSuite) TestLogin() {
	s.Run("issues a token for valid credentials", func() {
		s.createClient("ramesh", "secret-pass")

		result, err := s.service.Login(s.ctx, "ramesh", "secret-pass")
		s.Require().NoError(err)
		s.NotEmpty(result.Token)
		s.Equal("ramesh", result.Account.Username)
	})

	s.Run("rejects a wrong password", func() {
		s.createClient("suresh", "secret-pass")

		_, err := s.service.Login(s.ctx, "suresh", "wrong-pass")
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})

	s.Run("rejects an unknown username with the same error", func() {
		_, err := s.service.Login(s.ctx, "nobody", "whatever")
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})

	s.Run("rejects a deactivated account", func() {
		account := s.createClient("gone", "secret-pass")
		_, err := s.service.DeactivateClient(s.ctx, account.ID)
		s.Require().NoError(err)

		_, err = s.service.Login(s.ctx, "gone", "secret-pass")
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})
}

func (s *AccountServiceSuite) TestLogoutRevokesToken() {
	s.createClient("ramesh", "secret-pass")
	result, err := s.service.Login(s.ctx, "ramesh", "secret-pass")
	s.Require().NoError(err)

	claims, err := s.service.tokens.ValidateToken(result.Token)
	s.Require().NoError(err)

	s.Require().NoError(s.service.Logout(s.ctx, claims.AccountID, claims.JTI, result.Token))

	revoked, err := s.revocation.IsTokenRevoked(s.ctx, claims.JTI)
	s.Require().NoError(err)
	s.True(revoked)
}

func (s *AccountServiceSuite) TestChangePassword() {
	account := s.createClient("ramesh", "old-password")

	s.Run("rejects a wrong current password", func() {
		err := s.service.ChangePassword(s.ctx, account.ID, "not-it", "new-password")
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})

	s.Run("rejects a short new password", func() {
		err := s.service.ChangePassword(s.ctx, account.ID, "old-password", "short")
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("rotates the hash and accepts the new password", func() {
		s.Require().NoError(s.service.ChangePassword(s.ctx, account.ID, "old-password", "new-password"))

		_, err := s.service.Login(s.ctx, "ramesh", "old-password")
		s.Require().Error(err)

		result, err := s.service.Login(s.ctx, "ramesh", "new-password")
		s.Require().NoError(err)
		s.NotEmpty(result.Token)
	})
}

func (s *AccountServiceSuite) TestClientAdministration() {
	s.Run("rejects duplicate usernames", func() {
		s.createClient("dup", "secret-pass")

		_, err := s.service.CreateClient(s.ctx, CreateClientInput{
			Username: "dup", Password: "secret-pass", Name: "Other",
		})
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeConflict))
	})

	s.Run("lists only client accounts", func() {
		clients, err := s.service.ListClients(s.ctx)
		s.Require().NoError(err)
		for _, c := range clients {
			s.Equal(models.RoleClient, c.Role)
		}
	})

	s.Run("updates profile fields", func() {
		account := s.createClient("mutable", "secret-pass")

		updated, err := s.service.UpdateClient(s.ctx, account.ID, UpdateClientInput{
			Name: "New Name", Email: "new@example.com", Phone: "9876543210",
		})
		s.Require().NoError(err)
		s.Equal("New Name", updated.Name)
		s.Equal("new@example.com", updated.Email)
	})

	s.Run("returns not found for an unknown ID", func() {
		_, err := s.service.Get(s.ctx, uuid.New())
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	s.Run("deactivate then reactivate round trip", func() {
		account := s.createClient("cycle", "secret-pass")

		deactivated, err := s.service.DeactivateClient(s.ctx, account.ID)
		s.Require().NoError(err)
		s.False(deactivated.Active)

		_, err = s.service.DeactivateClient(s.ctx, account.ID)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeInvariantViolation))

		reactivated, err := s.service.ReactivateClient(s.ctx, account.ID)
		s.Require().NoError(err)
		s.True(reactivated.Active)
	})
}
