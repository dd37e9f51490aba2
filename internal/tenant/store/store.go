package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"rentora/internal/tenant/models"
)

// Filter narrows List results.
type Filter struct {
	AccountID  *uuid.UUID
	OwnerID    *uuid.UUID
	BuildingID *uuid.UUID
	Search     string
	Limit      int
	Offset     int
}

// Store persists tenants.
type Store interface {
	Create(ctx context.Context, tenant *models.Tenant) error
	Update(ctx context.Context, tenant *models.Tenant) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Tenant, error)
	List(ctx context.Context, filter Filter) ([]*models.Tenant, int, error)
	// ListExpiring returns tenants whose agreement ends in [from, until],
	// soonest first, optionally scoped to an account.
	ListExpiring(ctx context.Context, accountID *uuid.UUID, from, until time.Time) ([]*models.Tenant, error)
	CountByBuilding(ctx context.Context, buildingID uuid.UUID) (int, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
