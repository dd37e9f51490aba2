package store

import (
	"context"

	"github.com/google/uuid"

	"rentora/internal/account/models"
)

// Store persists accounts. Implementations return sentinel errors so the
// service layer can translate them without knowing the backend.
type Store interface {
	Create(ctx context.Context, account *models.Account) error
	Update(ctx context.Context, account *models.Account) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Account, error)
	FindByUsername(ctx context.Context, username string) (*models.Account, error)
	List(ctx context.Context) ([]*models.Account, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
