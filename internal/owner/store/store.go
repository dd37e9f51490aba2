package store

import (
	"context"

	"github.com/google/uuid"

	"rentora/internal/owner/models"
)

// Filter narrows List results. A nil AccountID means no account scoping
// (admin view); Search matches name substrings case-insensitively.
type Filter struct {
	AccountID *uuid.UUID
	Search    string
	Limit     int
	Offset    int
}

// Store persists owners.
type Store interface {
	Create(ctx context.Context, owner *models.Owner) error
	Update(ctx context.Context, owner *models.Owner) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Owner, error)
	List(ctx context.Context, filter Filter) ([]*models.Owner, int, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
