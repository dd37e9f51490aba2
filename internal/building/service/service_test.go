package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"rentora/internal/building/models"
	"rentora/internal/building/store"
	ownerservice "rentora/internal/owner/service"
	ownerstore "rentora/internal/owner/store"
	"rentora/internal/platform/scope"
	dErrors "rentora/pkg/domain-errors"
)

type BuildingServiceSuite struct {
	suite.Suite
	service *Service
	owners  *ownerservice.Service
	ctx     context.Context
	client  scope.Scope
	other   scope.Scope
	admin   scope.Scope
	ownerID uuid.UUID
}

func (s *BuildingServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.client = scope.Scope{AccountID: uuid.New()}
	s.other = scope.Scope{AccountID: uuid.New()}
	s.admin = scope.Scope{AccountID: uuid.New(), Admin: true}

	s.owners = ownerservice.New(ownerstore.NewInMemory())
	s.service = New(store.NewInMemory(), s.owners)

	owner, err := s.owners.Create(s.ctx, s.client, uuid.Nil, ownerservice.Input{Name: "Lakshmi Devi"})
	s.Require().NoError(err)
	s.ownerID = owner.ID
}

func TestBuildingServiceSuite(t *testing.T) {
	suite.Run(t, new(BuildingServiceSuite))
}

func (s *BuildingServiceSuite) create(name string) *models.Building {
	building, err := s.service.Create(s.ctx, s.client, s.ownerID, Input{
		Name: name, Category: models.CategoryResidence, Portions: 4,
	})
	s.Require().NoError(err)
	return building
}

func (s *BuildingServiceSuite) TestCreate() {
	s.Run("inherits the owner's account", func() {
		building := s.create("Shanti Nivas")
		s.Equal(s.client.AccountID, building.AccountID)
		s.Equal(s.ownerID, building.OwnerID)
	})

	s.Run("rejects an owner the caller cannot see", func() {
		_, err := s.service.Create(s.ctx, s.other, s.ownerID, Input{
			Name: "Sneaky", Category: models.CategoryResidence, Portions: 1,
		})
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	s.Run("rejects an invalid category", func() {
		_, err := s.service.Create(s.ctx, s.client, s.ownerID, Input{
			Name: "Bad", Category: "warehouse", Portions: 1,
		})
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeInvariantViolation))
	})

	s.Run("rejects zero portions", func() {
		_, err := s.service.Create(s.ctx, s.client, s.ownerID, Input{
			Name: "Bad", Category: models.CategoryCommercial, Portions: 0,
		})
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeInvariantViolation))
	})
}

func (s *BuildingServiceSuite) TestListFilters() {
	s.create("Shanti Nivas")
	commercial, err := s.service.Create(s.ctx, s.client, s.ownerID, Input{
		Name: "Market Complex", Category: models.CategoryCommercial, Portions: 10,
	})
	s.Require().NoError(err)

	s.Run("filters by category", func() {
		page, err := s.service.List(s.ctx, s.client, ListQuery{Category: models.CategoryCommercial})
		s.Require().NoError(err)
		s.Require().Equal(1, page.Total)
		s.Equal(commercial.ID, page.Buildings[0].ID)
	})

	s.Run("filters by owner", func() {
		page, err := s.service.List(s.ctx, s.client, ListQuery{OwnerID: &s.ownerID})
		s.Require().NoError(err)
		s.Equal(2, page.Total)
	})

	s.Run("other client sees nothing", func() {
		page, err := s.service.List(s.ctx, s.other, ListQuery{})
		s.Require().NoError(err)
		s.Equal(0, page.Total)
	})

	s.Run("rejects an unknown category filter", func() {
		_, err := s.service.List(s.ctx, s.client, ListQuery{Category: "warehouse"})
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeBadRequest))
	})
}

func (s *BuildingServiceSuite) TestUpdateAndDelete() {
	building := s.create("Original")

	s.Run("updates fields", func() {
		updated, err := s.service.Update(s.ctx, s.client, building.ID, Input{
			Name: "Renamed", Category: models.CategoryCommercial, Portions: 6,
		})
		s.Require().NoError(err)
		s.Equal("Renamed", updated.Name)
		s.Equal(models.CategoryCommercial, updated.Category)
	})

	s.Run("delete blocked while tenants occupy the building", func() {
		svc := New(store.NewInMemory(), s.owners, WithTenantCounter(staticCounter(3)))
		blocked, err := svc.Create(s.ctx, s.client, s.ownerID, Input{
			Name: "Occupied", Category: models.CategoryResidence, Portions: 2,
		})
		s.Require().NoError(err)

		err = svc.Delete(s.ctx, s.client, blocked.ID)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeConflict))
	})

	s.Run("delete removes an empty building", func() {
		s.Require().NoError(s.service.Delete(s.ctx, s.client, building.ID))
		_, err := s.service.Get(s.ctx, s.client, building.ID)
		s.Require().Error(err)
	})
}

type staticCounter int

func (c staticCounter) CountByBuilding(context.Context, uuid.UUID) (int, error) {
	return int(c), nil
}
