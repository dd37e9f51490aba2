package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"rentora/internal/audit"
	buildingmodels "rentora/internal/building/models"
	"rentora/internal/platform/metrics"
	"rentora/internal/platform/scope"
	"rentora/internal/tenant/models"
	"rentora/internal/tenant/store"
	dErrors "rentora/pkg/domain-errors"
	"rentora/pkg/platform/sentinel"
)

// BuildingResolver looks up buildings so tenants can be attached and scoped.
type BuildingResolver interface {
	Get(ctx context.Context, caller scope.Scope, id uuid.UUID) (*buildingmodels.Building, error)
}

// Service owns the tenant lifecycle.
type Service struct {
	tenants   store.Store
	buildings BuildingResolver
	logger    *slog.Logger
	metrics   *metrics.Metrics
	audit     *audit.Publisher
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func WithAuditPublisher(p *audit.Publisher) Option {
	return func(s *Service) { s.audit = p }
}

func New(tenants store.Store, buildings BuildingResolver, opts ...Option) *Service {
	s := &Service{tenants: tenants, buildings: buildings, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Input carries the tenant fields accepted from callers.
type Input struct {
	Name          string
	Phone         string
	Email         string
	Aadhaar       string
	Address       string
	PortionNumber int

	BaseRent          float64
	WaterCharge       float64
	MaintenanceCharge float64
	AdvanceAmount     float64
	RentDueDay        int

	AgreementStart time.Time
	AgreementEnd   time.Time
}

// Create places a tenant in a building the caller can access.
func (s *Service) Create(ctx context.Context, caller scope.Scope, buildingID uuid.UUID, in Input) (*models.Tenant, error) {
	building, err := s.buildings.Get(ctx, caller, buildingID)
	if err != nil {
		return nil, err
	}

	tenant, err := models.NewTenant(uuid.New(), building.ID, building.OwnerID, building.AccountID,
		in.Name, in.AgreementStart, in.AgreementEnd)
	if err != nil {
		return nil, err
	}
	if err := applyInput(tenant, building, in); err != nil {
		return nil, err
	}

	if err := s.tenants.Create(ctx, tenant); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create tenant")
	}
	if s.metrics != nil {
		s.metrics.TenantsCreated.Inc()
	}
	s.emit(ctx, caller, tenant.ID, audit.ActionCreated)
	s.logger.InfoContext(ctx, "tenant created",
		"tenant_id", tenant.ID, "building_id", building.ID, "end_date", tenant.AgreementEnd)
	return tenant, nil
}

func (s *Service) Get(ctx context.Context, caller scope.Scope, id uuid.UUID) (*models.Tenant, error) {
	tenant, err := s.tenants.FindByID(ctx, id)
	if err != nil {
		return nil, wrapTenantErr(err)
	}
	if !caller.CanAccess(tenant.AccountID) {
		return nil, dErrors.New(dErrors.CodeNotFound, "tenant not found")
	}
	return tenant, nil
}

// ListQuery narrows List beyond the caller's scope.
type ListQuery struct {
	OwnerID    *uuid.UUID
	BuildingID *uuid.UUID
	Search     string
	Limit      int
	Offset     int
}

// Page is a paginated result.
type Page struct {
	Tenants []*models.Tenant
	Total   int
}

func (s *Service) List(ctx context.Context, caller scope.Scope, q ListQuery) (*Page, error) {
	tenants, total, err := s.tenants.List(ctx, store.Filter{
		AccountID:  caller.AccountFilter(),
		OwnerID:    q.OwnerID,
		BuildingID: q.BuildingID,
		Search:     strings.TrimSpace(q.Search),
		Limit:      q.Limit,
		Offset:     q.Offset,
	})
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list tenants")
	}
	return &Page{Tenants: tenants, Total: total}, nil
}

// ListExpiring returns tenants whose agreement ends within the given number
// of days, soonest first.
func (s *Service) ListExpiring(ctx context.Context, caller scope.Scope, days int) ([]*models.Tenant, error) {
	if days <= 0 {
		days = 30
	}
	now := time.Now()
	tenants, err := s.tenants.ListExpiring(ctx, caller.AccountFilter(), now, now.AddDate(0, 0, days))
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list expiring tenants")
	}
	return tenants, nil
}

func (s *Service) Update(ctx context.Context, caller scope.Scope, id uuid.UUID, in Input) (*models.Tenant, error) {
	tenant, err := s.Get(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	building, err := s.buildings.Get(ctx, caller, tenant.BuildingID)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "tenant name cannot be empty")
	}
	if err := models.ValidateAgreementDates(in.AgreementStart, in.AgreementEnd); err != nil {
		return nil, err
	}
	tenant.Name = name
	tenant.AgreementStart = in.AgreementStart
	tenant.AgreementEnd = in.AgreementEnd
	if err := applyInput(tenant, building, in); err != nil {
		return nil, err
	}
	tenant.UpdatedAt = time.Now()

	if err := s.tenants.Update(ctx, tenant); err != nil {
		return nil, wrapTenantErr(err)
	}
	s.emit(ctx, caller, id, audit.ActionUpdated)
	return tenant, nil
}

func (s *Service) Delete(ctx context.Context, caller scope.Scope, id uuid.UUID) error {
	if _, err := s.Get(ctx, caller, id); err != nil {
		return err
	}
	if err := s.tenants.Delete(ctx, id); err != nil {
		return wrapTenantErr(err)
	}
	s.emit(ctx, caller, id, audit.ActionDeleted)
	return nil
}

// AttachFile records an uploaded document path on the tenant.
func (s *Service) AttachFile(ctx context.Context, caller scope.Scope, id uuid.UUID, kind, path string) (*models.Tenant, error) {
	tenant, err := s.Get(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	switch kind {
	case "agreement":
		tenant.AgreementPDF = path
	case "aadhar":
		tenant.AadhaarPDF = path
	default:
		return nil, dErrors.New(dErrors.CodeBadRequest, "file kind must be agreement or aadhar")
	}
	tenant.UpdatedAt = time.Now()
	if err := s.tenants.Update(ctx, tenant); err != nil {
		return nil, wrapTenantErr(err)
	}
	return tenant, nil
}

// CountByBuilding satisfies the building service's referential check.
func (s *Service) CountByBuilding(ctx context.Context, buildingID uuid.UUID) (int, error) {
	return s.tenants.CountByBuilding(ctx, buildingID)
}

func applyInput(tenant *models.Tenant, building *buildingmodels.Building, in Input) error {
	if in.PortionNumber < 1 || in.PortionNumber > building.Portions {
		return dErrors.New(dErrors.CodeValidation, "portion number is out of range for the building")
	}
	if err := tenant.SetRent(in.BaseRent, in.WaterCharge, in.MaintenanceCharge, in.AdvanceAmount, in.RentDueDay); err != nil {
		return err
	}
	if err := tenant.SetAadhaar(in.Aadhaar); err != nil {
		return err
	}
	tenant.PortionNumber = in.PortionNumber
	tenant.Phone = strings.TrimSpace(in.Phone)
	tenant.Email = strings.TrimSpace(in.Email)
	tenant.Address = strings.TrimSpace(in.Address)
	return nil
}

func (s *Service) emit(ctx context.Context, caller scope.Scope, tenantID uuid.UUID, action string) {
	if s.audit == nil {
		return
	}
	err := s.audit.Emit(ctx, audit.Event{
		AccountID: caller.AccountID.String(),
		Entity:    audit.EntityTenant,
		EntityID:  tenantID.String(),
		Action:    action,
	})
	if err != nil {
		s.logger.WarnContext(ctx, "audit emit failed", "action", action, "error", err)
	}
}

func wrapTenantErr(err error) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, "tenant not found")
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, "tenant storage failure")
}
