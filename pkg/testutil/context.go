package testutil

import (
	"context"
	"net/http"

	"rentora/internal/platform/middleware"
)

// WithAccount stamps an authenticated client account onto the request
// context, simulating what RequireAuth does for a valid token.
func WithAccount(req *http.Request, accountID string) *http.Request {
	return withIdentity(req, accountID, "client")
}

// WithAdmin stamps an authenticated admin account onto the request context.
func WithAdmin(req *http.Request, accountID string) *http.Request {
	return withIdentity(req, accountID, "admin")
}

func withIdentity(req *http.Request, accountID, role string) *http.Request {
	ctx := context.WithValue(req.Context(), middleware.ContextKeyAccountID, accountID)
	ctx = context.WithValue(ctx, middleware.ContextKeyRole, role)
	return req.WithContext(ctx)
}
