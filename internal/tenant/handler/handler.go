package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"rentora/internal/platform/scope"
	"rentora/internal/tenant/models"
	"rentora/internal/tenant/service"
	"rentora/internal/transport/http/shared"
	dErrors "rentora/pkg/domain-errors"
)

// TenantService is the surface the handler needs.
type TenantService interface {
	Create(ctx context.Context, caller scope.Scope, buildingID uuid.UUID, in service.Input) (*models.Tenant, error)
	Get(ctx context.Context, caller scope.Scope, id uuid.UUID) (*models.Tenant, error)
	List(ctx context.Context, caller scope.Scope, q service.ListQuery) (*service.Page, error)
	ListExpiring(ctx context.Context, caller scope.Scope, days int) ([]*models.Tenant, error)
	Update(ctx context.Context, caller scope.Scope, id uuid.UUID, in service.Input) (*models.Tenant, error)
	Delete(ctx context.Context, caller scope.Scope, id uuid.UUID) error
}

type Handler struct {
	service TenantService
	logger  *slog.Logger
}

func New(service TenantService, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) Routes(r chi.Router) {
	r.Route("/tenants", func(r chi.Router) {
		r.Get("/", h.list)
		r.Post("/", h.create)
		r.Get("/expiring", h.expiring)
		r.Route("/{tenantID}", func(r chi.Router) {
			r.Get("/", h.get)
			r.Put("/", h.update)
			r.Delete("/", h.delete)
		})
	})
}

// dateOnly accepts the YYYY-MM-DD wire format used throughout the API.
type dateOnly struct {
	time.Time
}

func (d *dateOnly) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == "" {
		d.Time = time.Time{}
		return nil
	}
	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return err
	}
	d.Time = parsed
	return nil
}

type tenantRequest struct {
	BuildingID    string   `json:"building_id"`
	Name          string   `json:"name"`
	Phone         string   `json:"phone"`
	Email         string   `json:"email"`
	Aadhaar       string   `json:"aadhar_number"`
	Address       string   `json:"permanent_address"`
	PortionNumber int      `json:"portion_number"`
	BaseRent      float64  `json:"base_rent"`
	WaterCharge   float64  `json:"water_charge"`
	Maintenance   float64  `json:"maintenance_charge"`
	Advance       float64  `json:"advance_amount"`
	RentDueDay    int      `json:"rent_due_day"`
	Start         dateOnly `json:"agreement_start_date"`
	End           dateOnly `json:"agreement_end_date"`
}

func (req tenantRequest) input() service.Input {
	return service.Input{
		Name:              req.Name,
		Phone:             req.Phone,
		Email:             req.Email,
		Aadhaar:           req.Aadhaar,
		Address:           req.Address,
		PortionNumber:     req.PortionNumber,
		BaseRent:          req.BaseRent,
		WaterCharge:       req.WaterCharge,
		MaintenanceCharge: req.Maintenance,
		AdvanceAmount:     req.Advance,
		RentDueDay:        req.RentDueDay,
		AgreementStart:    req.Start.Time,
		AgreementEnd:      req.End.Time,
	}
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req tenantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	buildingID, err := uuid.Parse(req.BuildingID)
	if err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid building_id"))
		return
	}
	tenant, err := h.service.Create(r.Context(), scope.FromContext(r.Context()), buildingID, req.input())
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusCreated, tenant)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := service.ListQuery{
		Search: q.Get("search"),
		Limit:  queryInt(q.Get("limit")),
		Offset: queryInt(q.Get("offset")),
	}
	for param, dst := range map[string]**uuid.UUID{
		"owner_id":    &query.OwnerID,
		"building_id": &query.BuildingID,
	} {
		if raw := q.Get(param); raw != "" {
			id, err := uuid.Parse(raw)
			if err != nil {
				shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid "+param))
				return
			}
			*dst = &id
		}
	}

	page, err := h.service.List(r.Context(), scope.FromContext(r.Context()), query)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, map[string]any{
		"tenants": page.Tenants,
		"total":   page.Total,
	})
}

func (h *Handler) expiring(w http.ResponseWriter, r *http.Request) {
	days := queryInt(r.URL.Query().Get("days"))
	tenants, err := h.service.ListExpiring(r.Context(), scope.FromContext(r.Context()), days)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, map[string]any{
		"tenants": tenants,
		"total":   len(tenants),
	})
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "tenantID")
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	tenant, err := h.service.Get(r.Context(), scope.FromContext(r.Context()), id)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, tenant)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "tenantID")
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	var req tenantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	tenant, err := h.service.Update(r.Context(), scope.FromContext(r.Context()), id, req.input())
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, tenant)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "tenantID")
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
