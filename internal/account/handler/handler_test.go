package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"rentora/internal/account/models"
	"rentora/internal/account/revocation"
	"rentora/internal/account/secrets"
	"rentora/internal/account/service"
	"rentora/internal/account/store"
	"rentora/internal/account/token"
	"rentora/internal/platform/middleware"
)

type fixture struct {
	router   http.Handler
	service  *service.Service
	accounts *store.InMemory
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tokens := token.NewService("test-signing-key", "rentora-test")
	revoked := revocation.NewInMemory()
	accounts := store.NewInMemory()
	svc := service.New(accounts, tokens, revoked, time.Hour)
	h := New(svc, logger)

	r := chi.NewRouter()
	r.Group(h.PublicRoutes)
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(tokens, revoked, logger))
		h.AuthRoutes(r)
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdmin(logger))
			h.AdminRoutes(r)
		})
	})
	return &fixture{router: r, service: svc, accounts: accounts}
}

func (f *fixture) do(t *testing.T, method, path, bearer string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func (f *fixture) loginAs(t *testing.T, username, password string) string {
	t.Helper()
	rec := f.do(t, http.MethodPost, "/auth/login", "", map[string]string{
		"username": username, "password": password,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp struct {
		Token string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Token
}

func (f *fixture) createClient(t *testing.T, username, password string) {
	t.Helper()
	_, err := f.service.CreateClient(t.Context(), service.CreateClientInput{
		Username: username, Password: password, Name: "Test Client",
	})
	require.NoError(t, err)
}

func TestLoginEndpoint(t *testing.T) {
	f := newFixture(t)
	f.createClient(t, "ramesh", "secret-pass")

	t.Run("returns a bearer token", func(t *testing.T) {
		tok := f.loginAs(t, "ramesh", "secret-pass")
		require.NotEmpty(t, tok)
	})

	t.Run("rejects bad credentials with 401", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/auth/login", "", map[string]string{
			"username": "ramesh", "password": "wrong",
		})
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestMeEndpoint(t *testing.T) {
	f := newFixture(t)
	f.createClient(t, "ramesh", "secret-pass")
	tok := f.loginAs(t, "ramesh", "secret-pass")

	t.Run("requires a token", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/auth/me", "", nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("returns the caller profile without password hash", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/auth/me", tok, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"username":"ramesh"`)
		require.NotContains(t, rec.Body.String(), "password")
	})
}

func TestLogoutRevokesToken(t *testing.T) {
	f := newFixture(t)
	f.createClient(t, "ramesh", "secret-pass")
	tok := f.loginAs(t, "ramesh", "secret-pass")

	rec := f.do(t, http.MethodPost, "/auth/logout", tok, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(t, http.MethodGet, "/auth/me", tok, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestClientAdministrationEndpoints(t *testing.T) {
	f := newFixture(t)
	// Seed an admin directly through the store-backed service.
	adminTok := seedAdmin(t, f)

	t.Run("client role cannot reach admin routes", func(t *testing.T) {
		f.createClient(t, "plain", "secret-pass")
		clientTok := f.loginAs(t, "plain", "secret-pass")

		rec := f.do(t, http.MethodGet, "/clients", clientTok, nil)
		require.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("admin creates and lists clients", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/clients", adminTok, map[string]string{
			"username": "newclient", "password": "secret-pass", "name": "New Client",
		})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		rec = f.do(t, http.MethodGet, "/clients", adminTok, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "newclient")
	})

	t.Run("duplicate username returns 409", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/clients", adminTok, map[string]string{
			"username": "newclient", "password": "secret-pass", "name": "Again",
		})
		require.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("invalid client id returns 400", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/clients/not-a-uuid", adminTok, nil)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func seedAdmin(t *testing.T, f *fixture) string {
	t.Helper()
	hash, err := secrets.Hash("admin-pass")
	require.NoError(t, err)
	admin, err := models.NewAccount(uuid.New(), "boss", hash, "Boss", models.RoleAdmin)
	require.NoError(t, err)
	require.NoError(t, f.accounts.Create(t.Context(), admin))
	return f.loginAs(t, "boss", "admin-pass")
}
