package models

import (
	"strings"
	"time"

	"github.com/google/uuid"

	dErrors "rentora/pkg/domain-errors"
)

// Role separates the two caller kinds: admins see every client's portfolio,
// clients see only their own owners, buildings, and tenants.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleClient Role = "client"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleClient
}

// Account is a login principal: either an administrator or a property
// management client whose owners scope everything they can see.
//
// Invariants:
//   - Username is non-empty, at most 100 characters, stored lowercase
//   - Name is non-empty and at most 255 characters
//   - Role is admin or client
//   - An inactive account cannot log in; existing tokens are revoked
//     separately on deactivation
type Account struct {
	ID           uuid.UUID `json:"account_id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Email        string    `json:"email,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Role         Role      `json:"role"`
	Active       bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewAccount constructs an account, validating invariants.
func NewAccount(id uuid.UUID, username, passwordHash, name string, role Role) (*Account, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	name = strings.TrimSpace(name)

	if username == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "username cannot be empty")
	}
	if len(username) > 100 {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "username must be 100 characters or less")
	}
	if name == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "name cannot be empty")
	}
	if len(name) > 255 {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "name must be 255 characters or less")
	}
	if !role.Valid() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "role must be admin or client")
	}
	if passwordHash == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "password hash cannot be empty")
	}

	now := time.Now()
	return &Account{
		ID:           id,
		Username:     username,
		PasswordHash: passwordHash,
		Name:         name,
		Role:         role,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

func (a *Account) IsAdmin() bool { return a.Role == RoleAdmin }

// Deactivate marks the account inactive. Logging in while inactive fails at
// the service layer.
func (a *Account) Deactivate(now time.Time) error {
	if !a.Active {
		return dErrors.New(dErrors.CodeInvariantViolation, "account is already inactive")
	}
	a.Active = false
	a.UpdatedAt = now
	return nil
}

// Reactivate marks the account active again.
func (a *Account) Reactivate(now time.Time) error {
	if a.Active {
		return dErrors.New(dErrors.CodeInvariantViolation, "account is already active")
	}
	a.Active = true
	a.UpdatedAt = now
	return nil
}
