package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"rentora/internal/audit"
	"rentora/internal/owner/models"
	"rentora/internal/owner/store"
	"rentora/internal/platform/scope"
	dErrors "rentora/pkg/domain-errors"
	"rentora/pkg/platform/sentinel"
)

// BuildingCounter reports how many buildings reference an owner. Deletion is
// blocked while buildings still point at the owner.
type BuildingCounter interface {
	CountByOwner(ctx context.Context, ownerID uuid.UUID) (int, error)
}

// Service owns the owner lifecycle.
type Service struct {
	owners    store.Store
	buildings BuildingCounter
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

// WithBuildingCounter wires the referential check used by Delete.
func WithBuildingCounter(c BuildingCounter) Option {
	return func(s *Service) { s.buildings = c }
}

func New(owners store.Store, opts ...Option) *Service {
	s := &Service{owners: owners, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Input carries the owner fields accepted from callers.
type Input struct {
	Name    string
	Aadhaar string
	Address string
	Phone   string
	Email   string
}

func (s *Service) Create(ctx context.Context, caller scope.Scope, accountID uuid.UUID, in Input) (*models.Owner, error) {
	if accountID == uuid.Nil {
		accountID = caller.AccountID
	}
	if !caller.CanAccess(accountID) {
		return nil, dErrors.New(dErrors.CodeForbidden, "cannot create owners for another client")
	}

	owner, err := models.NewOwner(uuid.New(), accountID, in.Name)
	if err != nil {
		return nil, err
	}
	if err := applyInput(owner, in); err != nil {
		return nil, err
	}

	if err := s.owners.Create(ctx, owner); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create owner")
	}
	s.emit(ctx, caller, owner.ID, audit.ActionCreated)
	s.logger.InfoContext(ctx, "owner created", "owner_id", owner.ID, "account_id", accountID)
	return owner, nil
}

func (s *Service) Get(ctx context.Context, caller scope.Scope, id uuid.UUID) (*models.Owner, error) {
	owner, err := s.owners.FindByID(ctx, id)
	if err != nil {
		return nil, wrapOwnerErr(err)
	}
	if !caller.CanAccess(owner.AccountID) {
		return nil, dErrors.New(dErrors.CodeNotFound, "owner not found")
	}
	return owner, nil
}

// Page is a paginated result.
type Page struct {
	Owners []*models.Owner
	Total  int
}

func (s *Service) List(ctx context.Context, caller scope.Scope, search string, limit, offset int) (*Page, error) {
	owners, total, err := s.owners.List(ctx, store.Filter{
		AccountID: caller.AccountFilter(),
		Search:    strings.TrimSpace(search),
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list owners")
	}
	return &Page{Owners: owners, Total: total}, nil
}

func (s *Service) Update(ctx context.Context, caller scope.Scope, id uuid.UUID, in Input) (*models.Owner, error) {
	owner, err := s.Get(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "owner name cannot be empty")
	}
	owner.Name = name
	if err := applyInput(owner, in); err != nil {
		return nil, err
	}
	owner.UpdatedAt = time.Now()

	if err := s.owners.Update(ctx, owner); err != nil {
		return nil, wrapOwnerErr(err)
	}
	s.emit(ctx, caller, id, audit.ActionUpdated)
	return owner, nil
}

// Delete removes an owner that has no buildings.
func (s *Service) Delete(ctx context.Context, caller scope.Scope, id uuid.UUID) error {
	if _, err := s.Get(ctx, caller, id); err != nil {
		return err
	}
	if s.buildings != nil {
		n, err := s.buildings.CountByOwner(ctx, id)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to check owner buildings")
		}
		if n > 0 {
			return dErrors.New(dErrors.CodeConflict, "owner still has buildings")
		}
	}
	if err := s.owners.Delete(ctx, id); err != nil {
		return wrapOwnerErr(err)
	}
	s.emit(ctx, caller, id, audit.ActionDeleted)
	return nil
}

func applyInput(owner *models.Owner, in Input) error {
	if err := owner.SetAadhaar(in.Aadhaar); err != nil {
		return err
	}
	owner.Address = strings.TrimSpace(in.Address)
	owner.Phone = strings.TrimSpace(in.Phone)
	owner.Email = strings.TrimSpace(in.Email)
	return nil
}

func (s *Service) emit(ctx context.Context, caller scope.Scope, ownerID uuid.UUID, action string) {
	if s.audit == nil {
		return
	}
	err := s.audit.Emit(ctx, audit.Event{
		AccountID: caller.AccountID.String(),
		Entity:    audit.EntityOwner,
		EntityID:  ownerID.String(),
		Action:    action,
	})
	if err != nil {
		s.logger.WarnContext(ctx, "audit emit failed", "action", action, "error", err)
	}
}

func wrapOwnerErr(err error) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, "owner not found")
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, "owner storage failure")
}
