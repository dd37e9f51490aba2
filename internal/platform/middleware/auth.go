package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
)

// TokenValidator validates a bearer token and returns the caller's claims.
type TokenValidator interface {
	ValidateToken(tokenString string) (*Claims, error)
}

// RevocationChecker reports whether a token has been revoked (logout).
type RevocationChecker interface {
	IsTokenRevoked(ctx context.Context, jti string) (bool, error)
}

// Claims represents the claims the middleware expects from the validator.
type Claims struct {
	AccountID string
	Username  string
	Role      string
	JTI       string
}

type contextKeyAccountID struct{}
type contextKeyUsername struct{}
type contextKeyRole struct{}
type contextKeyClaims struct{}

var (
	ContextKeyAccountID = contextKeyAccountID{}
	ContextKeyUsername  = contextKeyUsername{}
	ContextKeyRole      = contextKeyRole{}
	ContextKeyClaims    = contextKeyClaims{}
)

// GetClaims retrieves the full token claims from the context.
func GetClaims(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(ContextKeyClaims).(*Claims)
	return claims, ok
}

// GetAccountID retrieves the authenticated account ID from the context.
func GetAccountID(ctx context.Context) string {
	v, ok := ctx.Value(ContextKeyAccountID).(string)
	if !ok {
		return ""
	}
	return v
}

// GetUsername retrieves the authenticated username from the context.
func GetUsername(ctx context.Context) string {
	v, ok := ctx.Value(ContextKeyUsername).(string)
	if !ok {
		return ""
	}
	return v
}

// GetRole retrieves the authenticated role from the context.
func GetRole(ctx context.Context) string {
	v, ok := ctx.Value(ContextKeyRole).(string)
	if !ok {
		return ""
	}
	return v
}

// IsAdmin reports whether the authenticated caller has the admin role.
func IsAdmin(ctx context.Context) bool {
	return GetRole(ctx) == "admin"
}

// RequireAuth validates the bearer token, checks revocation, and stores the
// caller identity in the request context.
func RequireAuth(validator TokenValidator, revocation RevocationChecker, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			authHeader := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok || token == "" {
				writeJSONError(w, http.StatusUnauthorized, "unauthorized", "Missing bearer token")
				return
			}

			claims, err := validator.ValidateToken(token)
			if err != nil {
				logger.WarnContext(ctx, "unauthorized access - invalid token",
					"error", err,
					"request_id", GetRequestID(ctx),
				)
				writeJSONError(w, http.StatusUnauthorized, "unauthorized", "Invalid or expired token")
				return
			}

			if revocation != nil && claims.JTI != "" {
				revoked, err := revocation.IsTokenRevoked(ctx, claims.JTI)
				if err != nil {
					logger.ErrorContext(ctx, "failed to check token revocation",
						"error", err,
						"request_id", GetRequestID(ctx),
					)
					writeJSONError(w, http.StatusInternalServerError, "internal_error", "Failed to validate token")
					return
				}
				if revoked {
					writeJSONError(w, http.StatusUnauthorized, "unauthorized", "Token has been revoked")
					return
				}
			}

			ctx = context.WithValue(ctx, ContextKeyAccountID, claims.AccountID)
			ctx = context.WithValue(ctx, ContextKeyUsername, claims.Username)
			ctx = context.WithValue(ctx, ContextKeyRole, claims.Role)
			ctx = context.WithValue(ctx, ContextKeyClaims, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin rejects callers whose authenticated role is not admin. Must
// run after RequireAuth.
func RequireAdmin(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			if !IsAdmin(ctx) {
				logger.WarnContext(ctx, "forbidden - admin role required",
					"account_id", GetAccountID(ctx),
					"request_id", GetRequestID(ctx),
				)
				writeJSONError(w, http.StatusForbidden, "forbidden", "Admin role required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func writeJSONError(w http.ResponseWriter, status int, errCode, errDesc string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(`{"error":"` + errCode + `","error_description":"` + errDesc + `"}`))
}
