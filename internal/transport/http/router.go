// Package http assembles the REST surface: public auth endpoints, the
// authenticated API, and operational endpoints for health and metrics.
package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	accounthandler "rentora/internal/account/handler"
	alerthandler "rentora/internal/alert/handler"
	buildinghandler "rentora/internal/building/handler"
	dashboardhandler "rentora/internal/dashboard/handler"
	docgenhandler "rentora/internal/docgen/handler"
	fileshandler "rentora/internal/files/handler"
	ownerhandler "rentora/internal/owner/handler"
	"rentora/internal/platform/metrics"
	"rentora/internal/platform/middleware"
	tenanthandler "rentora/internal/tenant/handler"
)

// Handlers bundles the feature handlers the router mounts.
type Handlers struct {
	Accounts   *accounthandler.Handler
	Owners     *ownerhandler.Handler
	Buildings  *buildinghandler.Handler
	Tenants    *tenanthandler.Handler
	Alerts     *alerthandler.Handler
	Dashboard  *dashboardhandler.Handler
	Files      *fileshandler.Handler
	Agreements *docgenhandler.Handler
}

// NewRouter wires middleware and mounts every endpoint. Everything under
// /api requires a valid bearer token; client management additionally
// requires the admin role.
func NewRouter(
	h Handlers,
	validator middleware.TokenValidator,
	revocation middleware.RevocationChecker,
	logger *slog.Logger,
	m *metrics.Metrics,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logger(logger))
	if m != nil {
		r.Use(middleware.Latency(m))
	}

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"service":"rentora"}`))
	})
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Group(h.Accounts.PublicRoutes)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth(validator, revocation, logger))

			h.Accounts.AuthRoutes(r)
			h.Owners.Routes(r)
			h.Buildings.Routes(r)
			h.Tenants.Routes(r)
			h.Alerts.Routes(r)
			h.Dashboard.Routes(r)
			h.Files.Routes(r)
			h.Agreements.Routes(r)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin(logger))
				h.Accounts.AdminRoutes(r)
			})
		})
	})

	return r
}
