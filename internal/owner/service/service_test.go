package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"rentora/internal/owner/store"
	"rentora/internal/platform/scope"
	dErrors "rentora/pkg/domain-errors"
)

type OwnerServiceSuite struct {
	suite.Suite
	service *Service
	ctx     context.Context
	client  scope.Scope
	admin   scope.Scope
	other   scope.Scope
}

func (s *OwnerServiceSuite) SetupTest() {
	s.service = New(store.NewInMemory())
	s.ctx = context.Background()
	s.client = scope.Scope{AccountID: uuid.New()}
	s.admin = scope.Scope{AccountID: uuid.New(), Admin: true}
	s.other = scope.Scope{AccountID: uuid.New()}
}

func TestOwnerServiceSuite(t *testing.T) {
	suite.Run(t, new(OwnerServiceSuite))
}

func (s *OwnerServiceSuite) TestCreate() {
	s.Run("creates an owner scoped to the caller", func() {
		owner, err := s.service.Create(s.ctx, s.client, uuid.Nil, Input{Name: "Lakshmi Devi"})
		s.Require().NoError(err)
		s.Equal(s.client.AccountID, owner.AccountID)
	})

	s.Run("rejects an invalid aadhaar number", func() {
		_, err := s.service.Create(s.ctx, s.client, uuid.Nil, Input{
			Name: "Bad Aadhaar", Aadhaar: "12345",
		})
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("accepts a 12-digit aadhaar number", func() {
		owner, err := s.service.Create(s.ctx, s.client, uuid.Nil, Input{
			Name: "Good Aadhaar", Aadhaar: "123456789012",
		})
		s.Require().NoError(err)
		s.Equal("123456789012", owner.Aadhaar)
	})

	s.Run("client cannot create owners for another account", func() {
		_, err := s.service.Create(s.ctx, s.client, s.other.AccountID, Input{Name: "Sneaky"})
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeForbidden))
	})

	s.Run("admin can create owners for any account", func() {
		owner, err := s.service.Create(s.ctx, s.admin, s.client.AccountID, Input{Name: "Via Admin"})
		s.Require().NoError(err)
		s.Equal(s.client.AccountID, owner.AccountID)
	})
}

func (s *OwnerServiceSuite) TestScoping() {
	mine, err := s.service.Create(s.ctx, s.client, uuid.Nil, Input{Name: "Mine"})
	s.Require().NoError(err)
	_, err = s.service.Create(s.ctx, s.other, uuid.Nil, Input{Name: "Theirs"})
	s.Require().NoError(err)

	s.Run("client list sees only own owners", func() {
		page, err := s.service.List(s.ctx, s.client, "", 0, 0)
		s.Require().NoError(err)
		s.Equal(1, page.Total)
		s.Equal("Mine", page.Owners[0].Name)
	})

	s.Run("admin list sees everything", func() {
		page, err := s.service.List(s.ctx, s.admin, "", 0, 0)
		s.Require().NoError(err)
		s.Equal(2, page.Total)
	})

	s.Run("cross-account get reads as not found", func() {
		_, err := s.service.Get(s.ctx, s.other, mine.ID)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	s.Run("search filters by name substring", func() {
		page, err := s.service.List(s.ctx, s.admin, "the", 0, 0)
		s.Require().NoError(err)
		s.Require().Equal(1, page.Total)
		s.Equal("Theirs", page.Owners[0].Name)
	})
}

func (s *OwnerServiceSuite) TestUpdateAndDelete() {
	owner, err := s.service.Create(s.ctx, s.client, uuid.Nil, Input{Name: "Original"})
	s.Require().NoError(err)

	s.Run("updates fields", func() {
		updated, err := s.service.Update(s.ctx, s.client, owner.ID, Input{
			Name: "Renamed", Address: "12 MG Road, Bengaluru", Phone: "9876543210",
		})
		s.Require().NoError(err)
		s.Equal("Renamed", updated.Name)
		s.Equal("12 MG Road, Bengaluru", updated.Address)
	})

	s.Run("delete blocked while buildings reference the owner", func() {
		svc := New(store.NewInMemory(), WithBuildingCounter(staticCounter(2)))
		blocked, err := svc.Create(s.ctx, s.client, uuid.Nil, Input{Name: "Blocked"})
		s.Require().NoError(err)

		err = svc.Delete(s.ctx, s.client, blocked.ID)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeConflict))
	})

	s.Run("delete removes an unreferenced owner", func() {
		s.Require().NoError(s.service.Delete(s.ctx, s.client, owner.ID))
		_, err := s.service.Get(s.ctx, s.client, owner.ID)
		s.Require().Error(err)
	})
}

type staticCounter int

func (c staticCounter) CountByOwner(context.Context, uuid.UUID) (int, error) {
	return int(c), nil
}
