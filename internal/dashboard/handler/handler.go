package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"rentora/internal/dashboard/service"
	"rentora/internal/platform/scope"
	"rentora/internal/transport/http/shared"
	dErrors "rentora/pkg/domain-errors"
)

// DashboardService is the surface the handler needs.
type DashboardService interface {
	Stats(ctx context.Context, caller scope.Scope, filterAccount *uuid.UUID) (*service.Stats, error)
}

type Handler struct {
	service DashboardService
	logger  *slog.Logger
}

func New(service DashboardService, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/dashboard/stats", h.stats)
}

func (h *Handler) stats(w http.ResponseWriter, r *http.Request) {
	var filter *uuid.UUID
	if raw := r.URL.Query().Get("account_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid account_id"))
			return
		}
		filter = &id
	}
	stats, err := h.service.Stats(r.Context(), scope.FromContext(r.Context()), filter)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, stats)
}
