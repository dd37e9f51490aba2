package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"rentora/internal/owner/models"
	"rentora/internal/owner/service"
	"rentora/internal/platform/scope"
	"rentora/internal/transport/http/shared"
	dErrors "rentora/pkg/domain-errors"
)

// OwnerService is the surface the handler needs.
type OwnerService interface {
	Create(ctx context.Context, caller scope.Scope, accountID uuid.UUID, in service.Input) (*models.Owner, error)
	Get(ctx context.Context, caller scope.Scope, id uuid.UUID) (*models.Owner, error)
	List(ctx context.Context, caller scope.Scope, search string, limit, offset int) (*service.Page, error)
	Update(ctx context.Context, caller scope.Scope, id uuid.UUID, in service.Input) (*models.Owner, error)
	Delete(ctx context.Context, caller scope.Scope, id uuid.UUID) error
}

type Handler struct {
	service OwnerService
	logger  *slog.Logger
}

func New(service OwnerService, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) Routes(r chi.Router) {
	r.Route("/owners", func(r chi.Router) {
		r.Get("/", h.list)
		r.Post("/", h.create)
		r.Route("/{ownerID}", func(r chi.Router) {
			r.Get("/", h.get)
			r.Put("/", h.update)
			r.Delete("/", h.delete)
		})
	})
}

type ownerRequest struct {
	AccountID string `json:"account_id,omitempty"`
	Name      string `json:"name"`
	Aadhaar   string `json:"aadhar_number"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req ownerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	accountID := uuid.Nil
	if req.AccountID != "" {
		parsed, err := uuid.Parse(req.AccountID)
		if err != nil {
			shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid account_id"))
			return
		}
		accountID = parsed
	}
	owner, err := h.service.Create(r.Context(), scope.FromContext(r.Context()), accountID, service.Input{
		Name: req.Name, Aadhaar: req.Aadhaar, Address: req.Address,
		Phone: req.Phone, Email: req.Email,
	})
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusCreated, owner)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit := queryInt(q.Get("limit"), 0)
	offset := queryInt(q.Get("offset"), 0)

	page, err := h.service.List(r.Context(), scope.FromContext(r.Context()), q.Get("search"), limit, offset)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, map[string]any{
		"owners": page.Owners,
		"total":  page.Total,
	})
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "ownerID")
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	owner, err := h.service.Get(r.Context(), scope.FromContext(r.Context()), id)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, owner)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "ownerID")
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	var req ownerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	owner, err := h.service.Update(r.Context(), scope.FromContext(r.Context()), id, service.Input{
		Name: req.Name, Aadhaar: req.Aadhaar, Address: req.Address,
		Phone: req.Phone, Email: req.Email,
	})
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, owner)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "ownerID")
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	if err := h.service.Delete(r.Context(), scope.FromContext(r.Context()), id); err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func pathUUID(r *http.Request, param string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, param))
	if err != nil {
		return uuid.Nil, dErrors.New(dErrors.CodeBadRequest, "invalid id")
	}
	return id, nil
}

func queryInt(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}
