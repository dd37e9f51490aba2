package scope

import (
	"context"

	"github.com/google/uuid"

	"rentora/internal/platform/middleware"
)

// Scope carries the caller's visibility: admins see every client's portfolio,
// clients only their own. Derived once from the authenticated request context
// and passed explicitly through service calls.
type Scope struct {
	AccountID uuid.UUID
	Admin     bool
}

// FromContext builds a Scope from the authenticated request context. A zero
// AccountID means the token was malformed; RequireAuth prevents that upstream.
func FromContext(ctx context.Context) Scope {
	id, _ := uuid.Parse(middleware.GetAccountID(ctx))
	return Scope{AccountID: id, Admin: middleware.IsAdmin(ctx)}
}

// AccountFilter returns the account to filter storage queries by, or nil when
// the caller sees everything.
func (s Scope) AccountFilter() *uuid.UUID {
	if s.Admin {
		return nil
	}
	id := s.AccountID
	return &id
}

// CanAccess reports whether the caller may touch a record owned by the given
// account.
func (s Scope) CanAccess(accountID uuid.UUID) bool {
	return s.Admin || s.AccountID == accountID
}
