package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	alertstore "rentora/internal/alert/store"
	"rentora/internal/platform/scope"
	"rentora/internal/transport/http/shared"
	dErrors "rentora/pkg/domain-errors"
	"rentora/pkg/platform/sentinel"
)

type Handler struct {
	alerts alertstore.Store
	logger *slog.Logger
}

func New(alerts alertstore.Store, logger *slog.Logger) *Handler {
	return &Handler{alerts: alerts, logger: logger}
}

func (h *Handler) Routes(r chi.Router) {
	r.Route("/alerts", func(r chi.Router) {
		r.Get("/", h.list)
		r.Put("/{alertID}/read", h.markRead)
	})
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	caller := scope.FromContext(r.Context())
	unreadOnly := r.URL.Query().Get("unread") == "true"

	alerts, err := h.alerts.List(r.Context(), caller.AccountFilter(), unreadOnly)
	if err != nil {
		shared.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list alerts"))
		return
	}
	shared.WriteJSON(w, http.StatusOK, map[string]any{
		"alerts": alerts,
		"total":  len(alerts),
	})
}

func (h *Handler) markRead(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "alertID"))
	if err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid id"))
		return
	}
	caller := scope.FromContext(r.Context())
	alert, err := h.alerts.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			shared.WriteError(w, dErrors.New(dErrors.CodeNotFound, "alert not found"))
			return
		}
		shared.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load alert"))
		return
	}
	if !caller.CanAccess(alert.AccountID) {
		shared.WriteError(w, dErrors.New(dErrors.CodeNotFound, "alert not found"))
		return
	}
	if err := h.alerts.MarkRead(r.Context(), id); err != nil {
		shared.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "failed to mark alert read"))
		return
	}
	shared.WriteJSON(w, http.StatusOK, map[string]string{"status": "read"})
}
