package models

import (
	"strings"
	"time"

	"github.com/google/uuid"

	dErrors "rentora/pkg/domain-errors"
)

// Category drives which agreement template a tenant in this building gets.
type Category string

const (
	CategoryResidence  Category = "residence"
	CategoryCommercial Category = "commercial"
)

func (c Category) Valid() bool {
	return c == CategoryResidence || c == CategoryCommercial
}

// Building belongs to an owner and groups rentable portions. AccountID is
// denormalized from the owner so scoping never needs a join.
//
// Invariants:
//   - Name is non-empty and at most 255 characters
//   - Category is residence or commercial
//   - Portions is at least 1
type Building struct {
	ID        uuid.UUID `json:"building_id"`
	OwnerID   uuid.UUID `json:"owner_id"`
	AccountID uuid.UUID `json:"account_id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Category  Category  `json:"category"`
	Portions  int       `json:"total_portions"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewBuilding constructs a building, validating invariants.
func NewBuilding(id, ownerID, accountID uuid.UUID, name string, category Category, portions int) (*Building, error) {
	name = strings.TrimSpace(name)
	if ownerID == uuid.Nil {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "building must belong to an owner")
	}
	if name == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "building name cannot be empty")
	}
	if len(name) > 255 {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "building name must be 255 characters or less")
	}
	if !category.Valid() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "category must be residence or commercial")
	}
	if portions < 1 {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "building must have at least one portion")
	}
	now := time.Now()
	return &Building{
		ID:        id,
		OwnerID:   ownerID,
		AccountID: accountID,
		Name:      name,
		Category:  category,
		Portions:  portions,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}
