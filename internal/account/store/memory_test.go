package store

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"rentora/internal/account/models"
	"rentora/pkg/platform/sentinel"
)

type AccountStoreSuite struct {
	suite.Suite
	store *InMemory
	ctx   context.Context
}

func (s *AccountStoreSuite) SetupTest() {
	s.store = NewInMemory()
	s.ctx = context.Background()
}

func TestAccountStoreSuite(t *testing.T) {
	suite.Run(t, new(AccountStoreSuite))
}

func (s *AccountStoreSuite) newAccount(username string) *models.Account {
	account, err := models.NewAccount(uuid.New(), username, "hash", "Test User", models.RoleClient)
	s.Require().NoError(err)
	return account
}

func (s *AccountStoreSuite) TestCreationAndLookups() {
	s.Run("creates and finds account by ID", func() {
		account := s.newAccount("ramesh")
		s.Require().NoError(s.store.Create(s.ctx, account))

		found, err := s.store.FindByID(s.ctx, account.ID)
		s.Require().NoError(err)
		s.Equal(account.Username, found.Username)
	})

	s.Run("finds account by username case-insensitively", func() {
		account := s.newAccount("suresh")
		s.Require().NoError(s.store.Create(s.ctx, account))

		found, err := s.store.FindByUsername(s.ctx, "SURESH")
		s.Require().NoError(err)
		s.Equal(account.ID, found.ID)
	})

	s.Run("returns ErrNotFound for unknown ID", func() {
		_, err := s.store.FindByID(s.ctx, uuid.New())
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})
}

func (s *AccountStoreSuite) TestUsernameUniqueness() {
	s.Run("rejects duplicate username", func() {
		s.Require().NoError(s.store.Create(s.ctx, s.newAccount("dup")))

		err := s.store.Create(s.ctx, s.newAccount("dup"))
		s.Require().ErrorIs(err, sentinel.ErrConflict)
	})

	s.Run("rejects rename onto an existing username", func() {
		s.Require().NoError(s.store.Create(s.ctx, s.newAccount("first")))
		second := s.newAccount("second")
		s.Require().NoError(s.store.Create(s.ctx, second))

		second.Username = "first"
		s.Require().ErrorIs(s.store.Update(s.ctx, second), sentinel.ErrConflict)
	})
}

func (s *AccountStoreSuite) TestUpdateAndDelete() {
	s.Run("updates an existing account", func() {
		account := s.newAccount("mutable")
		s.Require().NoError(s.store.Create(s.ctx, account))

		account.Name = "Renamed"
		s.Require().NoError(s.store.Update(s.ctx, account))

		found, err := s.store.FindByID(s.ctx, account.ID)
		s.Require().NoError(err)
		s.Equal("Renamed", found.Name)
	})

	s.Run("update of a missing account fails", func() {
		err := s.store.Update(s.ctx, s.newAccount("ghost"))
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("delete removes the account", func() {
		account := s.newAccount("doomed")
		s.Require().NoError(s.store.Create(s.ctx, account))
		s.Require().NoError(s.store.Delete(s.ctx, account.ID))

		_, err := s.store.FindByID(s.ctx, account.ID)
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})
}

func (s *AccountStoreSuite) TestListOrdering() {
	for _, name := range []string{"charlie", "alpha", "bravo"} {
		s.Require().NoError(s.store.Create(s.ctx, s.newAccount(name)))
	}
	accounts, err := s.store.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(accounts, 3)
	s.Equal("alpha", accounts[0].Username)
	s.Equal("bravo", accounts[1].Username)
	s.Equal("charlie", accounts[2].Username)
}
