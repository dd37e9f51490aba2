package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"rentora/internal/building/models"
	"rentora/internal/building/service"
	"rentora/internal/platform/scope"
	"rentora/internal/transport/http/shared"
	dErrors "rentora/pkg/domain-errors"
)

// BuildingService is the surface the handler needs.
type BuildingService interface {
	Create(ctx context.Context, caller scope.Scope, ownerID uuid.UUID, in service.Input) (*models.Building, error)
	Get(ctx context.Context, caller scope.Scope, id uuid.UUID) (*models.Building, error)
	List(ctx context.Context, caller scope.Scope, q service.ListQuery) (*service.Page, error)
	Update(ctx context.Context, caller scope.Scope, id uuid.UUID, in service.Input) (*models.Building, error)
	Delete(ctx context.Context, caller scope.Scope, id uuid.UUID) error
}

type Handler struct {
	service BuildingService
	logger  *slog.Logger
}

func New(service BuildingService, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) Routes(r chi.Router) {
	r.Route("/buildings", func(r chi.Router) {
		r.Get("/", h.list)
		r.Post("/", h.create)
		r.Route("/{buildingID}", func(r chi.Router) {
			r.Get("/", h.get)
			r.Put("/", h.update)
			r.Delete("/", h.delete)
		})
	})
}

type buildingRequest struct {
	OwnerID  string `json:"owner_id"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	Category string `json:"category"`
	Portions int    `json:"total_portions"`
	Notes    string `json:"notes"`
}

func (req buildingRequest) input() service.Input {
	return service.Input{
		Name:     req.Name,
		Address:  req.Address,
		Category: models.Category(req.Category),
		Portions: req.Portions,
		Notes:    req.Notes,
	}
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req buildingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	ownerID, err := uuid.Parse(req.OwnerID)
	if err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid owner_id"))
		return
	}
	building, err := h.service.Create(r.Context(), scope.FromContext(r.Context()), ownerID, req.input())
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusCreated, building)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := service.ListQuery{
		Category: models.Category(q.Get("category")),
		Search:   q.Get("search"),
		Limit:    queryInt(q.Get("limit")),
		Offset:   queryInt(q.Get("offset")),
	}
	if raw := q.Get("owner_id"); raw != "" {
		ownerID, err := uuid.Parse(raw)
		if err != nil {
			shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid owner_id"))
			return
		}
		query.OwnerID = &ownerID
	}

	page, err := h.service.List(r.Context(), scope.FromContext(r.Context()), query)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, map[string]any{
		"buildings": page.Buildings,
		"total":     page.Total,
	})
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "buildingID")
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	building, err := h.service.Get(r.Context(), scope.FromContext(r.Context()), id)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, building)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "buildingID")
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	var req buildingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	building, err := h.service.Update(r.Context(), scope.FromContext(r.Context()), id, req.input())
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, building)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "buildingID")
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

func queryInt(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
