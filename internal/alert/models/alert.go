package models

import (
	"time"

	"github.com/google/uuid"
)

// Alert flags an agreement that ends soon. One unread alert exists per tenant
// at a time; the worker refreshes DaysRemaining on each scan and marks the
// alert read once the agreement has expired.
type Alert struct {
	ID            uuid.UUID `json:"alert_id"`
	TenantID      uuid.UUID `json:"tenant_id"`
	AccountID     uuid.UUID `json:"account_id"`
	TenantName    string    `json:"tenant_name"`
	BuildingName  string    `json:"building_name"`
	EndDate       time.Time `json:"agreement_end_date"`
	DaysRemaining int       `json:"days_remaining"`
	Read          bool      `json:"is_read"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
