//go:build integration

package store_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"rentora/internal/account/models"
	"rentora/internal/account/store"
	"rentora/pkg/platform/sentinel"
	"rentora/pkg/testutil/containers"
)

type PostgresAccountSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *store.Postgres
}

func TestPostgresAccountSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresAccountSuite))
}

func (s *PostgresAccountSuite) SetupSuite() {
	mgr := containers.GetManager()
	s.postgres = mgr.GetPostgres(s.T())
	s.store = store.NewPostgres(s.postgres.DB)
}

func (s *PostgresAccountSuite) SetupTest() {
	s.Require().NoError(s.postgres.TruncateTables(context.Background(), "accounts"))
}

func newTestAccount(t *testing.T, username string) *models.Account {
	t.Helper()
	account, err := models.NewAccount(uuid.New(), username, "hash", "Test User", models.RoleClient)
	if err != nil {
		t.Fatal(err)
	}
	return account
}

func (s *PostgresAccountSuite) TestRoundTrip() {
	ctx := context.Background()
	account := newTestAccount(s.T(), "ramesh")
	s.Require().NoError(s.store.Create(ctx, account))

	found, err := s.store.FindByUsername(ctx, "RAMESH")
	s.Require().NoError(err)
	s.Equal(account.ID, found.ID)
	s.Equal(models.RoleClient, found.Role)
	s.True(found.Active)
}

func (s *PostgresAccountSuite) TestUniqueUsername() {
	ctx := context.Background()
	s.Require().NoError(s.store.Create(ctx, newTestAccount(s.T(), "dup")))

	err := s.store.Create(ctx, newTestAccount(s.T(), "dup"))
	s.Require().ErrorIs(err, sentinel.ErrConflict)
}

func (s *PostgresAccountSuite) TestUpdateMissing() {
	err := s.store.Update(context.Background(), newTestAccount(s.T(), "ghost"))
	s.Require().ErrorIs(err, sentinel.ErrNotFound)
}

func (s *PostgresAccountSuite) TestDelete() {
	ctx := context.Background()
	account := newTestAccount(s.T(), "doomed")
	s.Require().NoError(s.store.Create(ctx, account))
	s.Require().NoError(s.store.Delete(ctx, account.ID))

	_, err := s.store.FindByID(ctx, account.ID)
	s.Require().ErrorIs(err, sentinel.ErrNotFound)
}
