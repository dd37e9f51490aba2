package store

import (
	"context"

	"github.com/google/uuid"

	"rentora/internal/alert/models"
)

// Store persists alerts.
type Store interface {
	// Upsert refreshes the unread alert for the tenant, creating it when
	// absent.
	Upsert(ctx context.Context, alert *models.Alert) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Alert, error)
	// List returns alerts newest end date last, optionally scoped to an
	// account and filtered to unread only.
	List(ctx context.Context, accountID *uuid.UUID, unreadOnly bool) ([]*models.Alert, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
	// MarkReadByTenant silences the tenant's alert, used once an agreement
	// has expired or the tenant is removed.
	MarkReadByTenant(ctx context.Context, tenantID uuid.UUID) error
}
