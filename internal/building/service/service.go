package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"rentora/internal/audit"
	"rentora/internal/building/models"
	"rentora/internal/building/store"
	ownermodels "rentora/internal/owner/models"
	"rentora/internal/platform/scope"
	dErrors "rentora/pkg/domain-errors"
	"rentora/pkg/platform/sentinel"
)

// OwnerResolver looks up owners so buildings can be attached and scoped.
type OwnerResolver interface {
	Get(ctx context.Context, caller scope.Scope, id uuid.UUID) (*ownermodels.Owner, error)
}

// TenantCounter reports how many tenants occupy a building. Deletion is
// blocked while tenants remain.
type TenantCounter interface {
	CountByBuilding(ctx context.Context, buildingID uuid.UUID) (int, error)
}

// Service owns the building lifecycle.
type Service struct {
	buildings store.Store
	owners    OwnerResolver
	tenants   TenantCounter
	logger    *slog.Logger
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

func WithAuditPublisher(p *audit.Publisher) Option {
	return func(s *Service) { s.audit = p }
}

func WithTenantCounter(c TenantCounter) Option {
	return func(s *Service) { s.tenants = c }
}

func New(buildings store.Store, owners OwnerResolver, opts ...Option) *Service {
	s := &Service{buildings: buildings, owners: owners, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Input carries the building fields accepted from callers.
type Input struct {
	Name     string
	Address  string
	Category models.Category
	Portions int
	Notes    string
}

// Create attaches a new building to an owner the caller can access.
func (s *Service) Create(ctx context.Context, caller scope.Scope, ownerID uuid.UUID, in Input) (*models.Building, error) {
	owner, err := s.owners.Get(ctx, caller, ownerID)
	if err != nil {
		return nil, err
	}

	building, err := models.NewBuilding(uuid.New(), owner.ID, owner.AccountID, in.Name, in.Category, in.Portions)
	if err != nil {
		return nil, err
	}
	building.Address = strings.TrimSpace(in.Address)
	building.Notes = strings.TrimSpace(in.Notes)

	if err := s.buildings.Create(ctx, building); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create building")
	}
	s.emit(ctx, caller, building.ID, audit.ActionCreated)
	s.logger.InfoContext(ctx, "building created", "building_id", building.ID, "owner_id", owner.ID)
	return building, nil
}

func (s *Service) Get(ctx context.Context, caller scope.Scope, id uuid.UUID) (*models.Building, error) {
	building, err := s.buildings.FindByID(ctx, id)
	if err != nil {
		return nil, wrapBuildingErr(err)
	}
	if !caller.CanAccess(building.AccountID) {
		return nil, dErrors.New(dErrors.CodeNotFound, "building not found")
	}
	return building, nil
}

// ListQuery narrows List beyond the caller's scope.
type ListQuery struct {
	OwnerID  *uuid.UUID
	Category models.Category
	Search   string
	Limit    int
	Offset   int
}

// Page is a paginated result.
type Page struct {
	Buildings []*models.Building
	Total     int
}

func (s *Service) List(ctx context.Context, caller scope.Scope, q ListQuery) (*Page, error) {
	if q.Category != "" && !q.Category.Valid() {
		return nil, dErrors.New(dErrors.CodeBadRequest, "category must be residence or commercial")
	}
	buildings, total, err := s.buildings.List(ctx, store.Filter{
		AccountID: caller.AccountFilter(),
		OwnerID:   q.OwnerID,
		Category:  q.Category,
		Search:    strings.TrimSpace(q.Search),
		Limit:     q.Limit,
		Offset:    q.Offset,
	})
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list buildings")
	}
	return &Page{Buildings: buildings, Total: total}, nil
}

func (s *Service) Update(ctx context.Context, caller scope.Scope, id uuid.UUID, in Input) (*models.Building, error) {
	building, err := s.Get(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "building name cannot be empty")
	}
	if !in.Category.Valid() {
		return nil, dErrors.New(dErrors.CodeValidation, "category must be residence or commercial")
	}
	if in.Portions < 1 {
		return nil, dErrors.New(dErrors.CodeValidation, "building must have at least one portion")
	}
	building.Name = name
	building.Address = strings.TrimSpace(in.Address)
	building.Category = in.Category
	building.Portions = in.Portions
	building.Notes = strings.TrimSpace(in.Notes)
	building.UpdatedAt = time.Now()

	if err := s.buildings.Update(ctx, building); err != nil {
		return nil, wrapBuildingErr(err)
	}
	s.emit(ctx, caller, id, audit.ActionUpdated)
	return building, nil
}

// Delete removes a building that has no tenants.
func (s *Service) Delete(ctx context.Context, caller scope.Scope, id uuid.UUID) error {
	if _, err := s.Get(ctx, caller, id); err != nil {
		return err
	}
	if s.tenants != nil {
		n, err := s.tenants.CountByBuilding(ctx, id)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to check building tenants")
		}
		if n > 0 {
			return dErrors.New(dErrors.CodeConflict, "building still has tenants")
		}
	}
	if err := s.buildings.Delete(ctx, id); err != nil {
		return wrapBuildingErr(err)
	}
	s.emit(ctx, caller, id, audit.ActionDeleted)
	return nil
}

// CountByOwner satisfies the owner service's referential check.
func (s *Service) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int, error) {
	return s.buildings.CountByOwner(ctx, ownerID)
}

func (s *Service) emit(ctx context.Context, caller scope.Scope, buildingID uuid.UUID, action string) {
	if s.audit == nil {
		return
	}
	err := s.audit.Emit(ctx, audit.Event{
		AccountID: caller.AccountID.String(),
		Entity:    audit.EntityBuilding,
		EntityID:  buildingID.String(),
		Action:    action,
	})
	if err != nil {
		s.logger.WarnContext(ctx, "audit emit failed", "action", action, "error", err)
	}
}

func wrapBuildingErr(err error) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, "building not found")
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, "building storage failure")
}
