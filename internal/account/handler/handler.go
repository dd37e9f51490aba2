package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"rentora/internal/account/models"
	"rentora/internal/account/service"
	"rentora/internal/platform/middleware"
	"rentora/internal/transport/http/shared"
	dErrors "rentora/pkg/domain-errors"
)

// AccountService is the surface the handler needs from the service layer.
type AccountService interface {
	Login(ctx context.Context, username, password string) (*service.LoginResult, error)
	Logout(ctx context.Context, accountID, jti, rawToken string) error
	ChangePassword(ctx context.Context, accountID uuid.UUID, current, next string) error
	CreateClient(ctx context.Context, in service.CreateClientInput) (*models.Account, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Account, error)
	ListClients(ctx context.Context) ([]*models.Account, error)
	UpdateClient(ctx context.Context, id uuid.UUID, in service.UpdateClientInput) (*models.Account, error)
	DeactivateClient(ctx context.Context, id uuid.UUID) (*models.Account, error)
	ReactivateClient(ctx context.Context, id uuid.UUID) (*models.Account, error)
}

type Handler struct {
	service AccountService
	logger  *slog.Logger
}

func New(service AccountService, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// PublicRoutes mounts endpoints that do not require a token.
func (h *Handler) PublicRoutes(r chi.Router) {
	r.Post("/auth/login", h.login)
}

// AuthRoutes mounts endpoints behind RequireAuth.
func (h *Handler) AuthRoutes(r chi.Router) {
	r.Post("/auth/logout", h.logout)
	r.Get("/auth/me", h.me)
	r.Post("/auth/password", h.changePassword)
}

// AdminRoutes mounts client administration behind RequireAdmin.
func (h *Handler) AdminRoutes(r chi.Router) {
	r.Route("/clients", func(r chi.Router) {
		r.Get("/", h.listClients)
		r.Post("/", h.createClient)
		r.Route("/{clientID}", func(r chi.Router) {
			r.Get("/", h.getClient)
			r.Put("/", h.updateClient)
			r.Post("/deactivate", h.deactivateClient)
			r.Post("/reactivate", h.reactivateClient)
		})
	})
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string          `json:"access_token"`
	TokenType string          `json:"token_type"`
	ExpiresIn int64           `json:"expires_in"`
	Account   *models.Account `json:"account"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	result, err := h.service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, loginResponse{
		Token:     result.Token,
		TokenType: "Bearer",
		ExpiresIn: int64(result.ExpiresIn / time.Second),
		Account:   result.Account,
	})
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		shared.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "missing token"))
		return
	}
	raw := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	if err := h.service.Logout(r.Context(), claims.AccountID, claims.JTI, raw); err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, map[string]string{"status": "logged_out"})
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	accountID, err := requestAccountID(r)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	account, err := h.service.Get(r.Context(), accountID)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, account)
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	accountID, err := requestAccountID(r)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	var req changePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	if err := h.service.ChangePassword(r.Context(), accountID, req.CurrentPassword, req.NewPassword); err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, map[string]string{"status": "password_changed"})
}

type createClientRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

func (h *Handler) createClient(w http.ResponseWriter, r *http.Request) {
	var req createClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	account, err := h.service.CreateClient(r.Context(), service.CreateClientInput{
		Username: req.Username,
		Password: req.Password,
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
	})
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusCreated, account)
}

func (h *Handler) listClients(w http.ResponseWriter, r *http.Request) {
	clients, err := h.service.ListClients(r.Context())
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, map[string]any{"clients": clients, "total": len(clients)})
}

func (h *Handler) getClient(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "clientID")
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	account, err := h.service.Get(r.Context(), id)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, account)
}

type updateClientRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

func (h *Handler) updateClient(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "clientID")
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	var req updateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	account, err := h.service.UpdateClient(r.Context(), id, service.UpdateClientInput{
		Name: req.Name, Email: req.Email, Phone: req.Phone,
	})
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, account)
}

func (h *Handler) deactivateClient(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "clientID")
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	account, err := h.service.DeactivateClient(r.Context(), id)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, account)
}

func (h *Handler) reactivateClient(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "clientID")
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	account, err := h.service.ReactivateClient(r.Context(), id)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, account)
}

func requestAccountID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(middleware.GetAccountID(r.Context()))
	if err != nil {
		return uuid.Nil, dErrors.New(dErrors.CodeUnauthorized, "missing token")
	}
	return id, nil
}

func pathUUID(r *http.Request, param string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, param))
	if err != nil {
		return uuid.Nil, dErrors.New(dErrors.CodeBadRequest, "invalid id")
	}
	return id, nil
}
