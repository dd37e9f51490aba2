package models

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	dErrors "rentora/pkg/domain-errors"
)

var aadhaarPattern = regexp.MustCompile(`^\d{12}$`)

// ValidAadhaar reports whether the value is a 12-digit Aadhaar number.
func ValidAadhaar(value string) bool {
	return aadhaarPattern.MatchString(value)
}

// Owner is a property owner managed on behalf of a client account. Every
// building, and through buildings every tenant, hangs off an owner, so the
// AccountID here is what scopes a client's entire portfolio.
//
// Invariants:
//   - Name is non-empty and at most 255 characters
//   - Aadhaar, when present, is exactly 12 digits
//   - AccountID is never nil
type Owner struct {
	ID        uuid.UUID `json:"owner_id"`
	AccountID uuid.UUID `json:"account_id"`
	Name      string    `json:"name"`
	Aadhaar   string    `json:"aadhar_number,omitempty"`
	Address   string    `json:"address,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewOwner constructs an owner, validating invariants.
func NewOwner(id, accountID uuid.UUID, name string) (*Owner, error) {
	name = strings.TrimSpace(name)
	if accountID == uuid.Nil {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "owner must belong to an account")
	}
	if name == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "owner name cannot be empty")
	}
	if len(name) > 255 {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "owner name must be 255 characters or less")
	}
	now := time.Now()
	return &Owner{
		ID:        id,
		AccountID: accountID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// SetAadhaar validates and stores the Aadhaar number. Empty clears it.
func (o *Owner) SetAadhaar(value string) error {
	value = strings.TrimSpace(value)
	if value != "" && !ValidAadhaar(value) {
		return dErrors.New(dErrors.CodeValidation, "aadhar number must be exactly 12 digits")
	}
	o.Aadhaar = value
	return nil
}
