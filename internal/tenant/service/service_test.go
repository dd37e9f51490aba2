package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	buildingmodels "rentora/internal/building/models"
	buildingservice "rentora/internal/building/service"
	buildingstore "rentora/internal/building/store"
	ownerservice "rentora/internal/owner/service"
	ownerstore "rentora/internal/owner/store"
	"rentora/internal/platform/scope"
	"rentora/internal/tenant/store"
	dErrors "rentora/pkg/domain-errors"
)

type TenantServiceSuite struct {
	suite.Suite
	service    *Service
	ctx        context.Context
	client     scope.Scope
	other      scope.Scope
	buildingID uuid.UUID
	start      time.Time
	end        time.Time
}

func (s *TenantServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.client = scope.Scope{AccountID: uuid.New()}
	s.other = scope.Scope{AccountID: uuid.New()}

	owners := ownerservice.New(ownerstore.NewInMemory())
	buildings := buildingservice.New(buildingstore.NewInMemory(), owners)
	s.service = New(store.NewInMemory(), buildings)

	owner, err := owners.Create(s.ctx, s.client, uuid.Nil, ownerservice.Input{Name: "Lakshmi Devi"})
	s.Require().NoError(err)
	building, err := buildings.Create(s.ctx, s.client, owner.ID, buildingservice.Input{
		Name: "Shanti Nivas", Category: buildingmodels.CategoryResidence, Portions: 4,
	})
	s.Require().NoError(err)
	s.buildingID = building.ID

	s.start = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	s.end = s.start.AddDate(1, 0, 0)
}

func TestTenantServiceSuite(t *testing.T) {
	suite.Run(t, new(TenantServiceSuite))
}

func (s *TenantServiceSuite) input(name string) Input {
	return Input{
		Name:              name,
		PortionNumber:     1,
		BaseRent:          15000,
		WaterCharge:       500,
		MaintenanceCharge: 300,
		AdvanceAmount:     50000,
		RentDueDay:        5,
		AgreementStart:    s.start,
		AgreementEnd:      s.end,
	}
}

func (s *TenantServiceSuite) TestCreate() {
	s.Run("creates a tenant inheriting building scope", func() {
		tenant, err := s.service.Create(s.ctx, s.client, s.buildingID, s.input("Asha"))
		s.Require().NoError(err)
		s.Equal(s.client.AccountID, tenant.AccountID)
		s.InDelta(15800, tenant.TotalRent(), 0.001)
	})

	s.Run("rejects end date not after start date", func() {
		in := s.input("Backwards")
		in.AgreementEnd = in.AgreementStart
		_, err := s.service.Create(s.ctx, s.client, s.buildingID, in)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("rejects a rent due day outside 1-28", func() {
		in := s.input("Late")
		in.RentDueDay = 31
		_, err := s.service.Create(s.ctx, s.client, s.buildingID, in)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("rejects a portion beyond the building's count", func() {
		in := s.input("Crowded")
		in.PortionNumber = 9
		_, err := s.service.Create(s.ctx, s.client, s.buildingID, in)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("rejects a malformed aadhaar", func() {
		in := s.input("BadID")
		in.Aadhaar = "12 34"
		_, err := s.service.Create(s.ctx, s.client, s.buildingID, in)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("other client cannot place tenants in the building", func() {
		_, err := s.service.Create(s.ctx, s.other, s.buildingID, s.input("Sneaky"))
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})
}

func (s *TenantServiceSuite) TestListAndExpiring() {
	_, err := s.service.Create(s.ctx, s.client, s.buildingID, s.input("Asha"))
	s.Require().NoError(err)

	soon := s.input("Binod")
	soon.PortionNumber = 2
	soon.AgreementStart = time.Now().AddDate(-1, 0, 0)
	soon.AgreementEnd = time.Now().AddDate(0, 0, 10)
	_, err = s.service.Create(s.ctx, s.client, s.buildingID, soon)
	s.Require().NoError(err)

	s.Run("filters by building", func() {
		page, err := s.service.List(s.ctx, s.client, ListQuery{BuildingID: &s.buildingID})
		s.Require().NoError(err)
		s.Equal(2, page.Total)
	})

	s.Run("search matches name substring", func() {
		page, err := s.service.List(s.ctx, s.client, ListQuery{Search: "ash"})
		s.Require().NoError(err)
		s.Require().Equal(1, page.Total)
		s.Equal("Asha", page.Tenants[0].Name)
	})

	s.Run("expiring window picks the near-term agreement only", func() {
		expiring, err := s.service.ListExpiring(s.ctx, s.client, 30)
		s.Require().NoError(err)
		s.Require().Len(expiring, 1)
		s.Equal("Binod", expiring[0].Name)
	})

	s.Run("other client sees no tenants", func() {
		page, err := s.service.List(s.ctx, s.other, ListQuery{})
		s.Require().NoError(err)
		s.Equal(0, page.Total)
	})
}

func (s *TenantServiceSuite) TestUpdateDeleteAttach() {
	tenant, err := s.service.Create(s.ctx, s.client, s.buildingID, s.input("Asha"))
	s.Require().NoError(err)

	s.Run("updates rent components", func() {
		in := s.input("Asha")
		in.BaseRent = 18000
		updated, err := s.service.Update(s.ctx, s.client, tenant.ID, in)
		s.Require().NoError(err)
		s.InDelta(18800, updated.TotalRent(), 0.001)
	})

	s.Run("attaches an uploaded file path", func() {
		updated, err := s.service.AttachFile(s.ctx, s.client, tenant.ID, "aadhar", "uploads/tenant_x_aadhar.pdf")
		s.Require().NoError(err)
		s.Equal("uploads/tenant_x_aadhar.pdf", updated.AadhaarPDF)
	})

	s.Run("rejects an unknown file kind", func() {
		_, err := s.service.AttachFile(s.ctx, s.client, tenant.ID, "passport", "x.pdf")
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeBadRequest))
	})

	s.Run("delete removes the tenant", func() {
		s.Require().NoError(s.service.Delete(s.ctx, s.client, tenant.ID))
		_, err := s.service.Get(s.ctx, s.client, tenant.ID)
		s.Require().Error(err)
	})
}
