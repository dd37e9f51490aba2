package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"rentora/internal/docgen"
	"rentora/internal/platform/scope"
	"rentora/internal/transport/http/shared"
	dErrors "rentora/pkg/domain-errors"
)

const contentTypeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

type Handler struct {
	service *docgen.Service
	logger  *slog.Logger
}

func New(service *docgen.Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/files/generate-agreement/{tenantID}", h.generate)
	r.Get("/files/agreement-preview/{tenantID}", h.preview)
}

func (h *Handler) generate(w http.ResponseWriter, r *http.Request) {
	tenantID, err := uuid.Parse(chi.URLParam(r, "tenantID"))
	if err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid tenant id"))
		return
	}
	caller := scope.FromContext(r.Context())
	ov := docgen.Overrides{
		OwnerAadhaar:  r.URL.Query().Get("owner_aadhar"),
		TenantAddress: r.URL.Query().Get("tenant_address"),
	}

	result, err := h.service.Generate(r.Context(), caller, tenantID, ov)
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	w.Header().Set("Content-Type", contentTypeDocx)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(result.Data); err != nil {
		h.logger.Warn("failed to stream agreement", "tenant_id", tenantID, "error", err)
	}
}

func (h *Handler) preview(w http.ResponseWriter, r *http.Request) {
	tenantID, err := uuid.Parse(chi.URLParam(r, "tenantID"))
	if err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid tenant id"))
		return
	}
	caller := scope.FromContext(r.Context())

	preview, err := h.service.Preview(r.Context(), caller, tenantID)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, preview)
}
