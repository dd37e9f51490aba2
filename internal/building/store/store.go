package store

import (
	"context"

	"github.com/google/uuid"

	"rentora/internal/building/models"
)

// Filter narrows List results.
type Filter struct {
	AccountID *uuid.UUID
	OwnerID   *uuid.UUID
	Category  models.Category
	Search    string
	Limit     int
	Offset    int
}

// Store persists buildings.
type Store interface {
	Create(ctx context.Context, building *models.Building) error
	Update(ctx context.Context, building *models.Building) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Building, error)
	List(ctx context.Context, filter Filter) ([]*models.Building, int, error)
	CountByOwner(ctx context.Context, ownerID uuid.UUID) (int, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
