package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"rentora/internal/account/models"
	"rentora/internal/account/secrets"
	"rentora/internal/account/store"
	"rentora/internal/account/token"
	"rentora/internal/audit"
	"rentora/internal/platform/metrics"
	dErrors "rentora/pkg/domain-errors"
	"rentora/pkg/platform/sentinel"
)

// RevocationList invalidates issued tokens by JTI until they expire.
type RevocationList interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
}

// Service owns login, token lifecycle, and client account administration.
type Service struct {
	accounts   store.Store
	tokens     *token.Service
	revocation RevocationList
	tokenTTL   time.Duration
	logger     *slog.Logger
	metrics    *metrics.Metrics
	audit      *audit.Publisher
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func WithAuditPublisher(p *audit.Publisher) Option {
	return func(s *Service) { s.audit = p }
}

func New(accounts store.Store, tokens *token.Service, revocation RevocationList, tokenTTL time.Duration, opts ...Option) *Service {
	s := &Service{
		accounts:   accounts,
		tokens:     tokens,
		revocation: revocation,
		tokenTTL:   tokenTTL,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// LoginResult carries the issued token alongside the authenticated account.
type LoginResult struct {
	Token     string
	ExpiresIn time.Duration
	Account   *models.Account
}

// Login authenticates a username/password pair and issues a signed token.
// Failures are deliberately uniform so callers cannot probe for usernames.
func (s *Service) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "username and password are required")
	}

	account, err := s.accounts.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			s.recordLogin("failure")
			return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid credentials")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to look up account")
	}
	if !account.Active {
		s.recordLogin("inactive")
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid credentials")
	}
	if err := secrets.Verify(password, account.PasswordHash); err != nil {
		s.recordLogin("failure")
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid credentials")
	}

	signed, err := s.tokens.Generate(account.ID, account.Username, string(account.Role), s.tokenTTL)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to issue token")
	}

	s.recordLogin("success")
	s.emit(ctx, account.ID.String(), audit.EntityAccount, account.ID.String(), audit.ActionLogin, "")
	s.logger.InfoContext(ctx, "account logged in", "username", account.Username, "role", account.Role)

	return &LoginResult{Token: signed, ExpiresIn: s.tokenTTL, Account: account}, nil
}

// Logout revokes the presented token for the remainder of its lifetime.
func (s *Service) Logout(ctx context.Context, accountID, jti, rawToken string) error {
	if jti == "" {
		return dErrors.New(dErrors.CodeBadRequest, "token has no revocation id")
	}
	ttl := s.tokenTTL
	if expiry, err := s.tokens.ExpiryOf(rawToken); err == nil {
		if remaining := time.Until(expiry); remaining > 0 {
			ttl = remaining
		}
	}
	if err := s.revocation.Revoke(ctx, jti, ttl); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to revoke token")
	}
	s.emit(ctx, accountID, audit.EntityAccount, accountID, audit.ActionLogout, "")
	return nil
}

// ChangePassword verifies the current password before storing a new hash.
func (s *Service) ChangePassword(ctx context.Context, accountID uuid.UUID, current, next string) error {
	if len(next) < 8 {
		return dErrors.New(dErrors.CodeValidation, "new password must be at least 8 characters")
	}
	account, err := s.accounts.FindByID(ctx, accountID)
	if err != nil {
		return wrapAccountErr(err)
	}
	if err := secrets.Verify(current, account.PasswordHash); err != nil {
		return dErrors.New(dErrors.CodeUnauthorized, "current password is incorrect")
	}
	hash, err := secrets.Hash(next)
	if err != nil {
		return err
	}
	account.PasswordHash = hash
	account.UpdatedAt = time.Now()
	if err := s.accounts.Update(ctx, account); err != nil {
		return wrapAccountErr(err)
	}
	s.emit(ctx, accountID.String(), audit.EntityAccount, accountID.String(), audit.ActionUpdated, "password changed")
	return nil
}

// CreateClientInput is the admin-facing payload for registering a client.
type CreateClientInput struct {
	Username string
	Password string
	Name     string
	Email    string
	Phone    string
}

// CreateClient registers a client account. Only admins reach this through the
// handler layer.
func (s *Service) CreateClient(ctx context.Context, in CreateClientInput) (*models.Account, error) {
	if len(in.Password) < 8 {
		return nil, dErrors.New(dErrors.CodeValidation, "password must be at least 8 characters")
	}
	hash, err := secrets.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	account, err := models.NewAccount(uuid.New(), in.Username, hash, in.Name, models.RoleClient)
	if err != nil {
		return nil, err
	}
	account.Email = strings.TrimSpace(in.Email)
	account.Phone = strings.TrimSpace(in.Phone)

	if err := s.accounts.Create(ctx, account); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return nil, dErrors.New(dErrors.CodeConflict, "username is already taken")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create account")
	}

	s.emit(ctx, account.ID.String(), audit.EntityAccount, account.ID.String(), audit.ActionCreated, "client registered")
	s.logger.InfoContext(ctx, "client account created", "username", account.Username)
	return account, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	account, err := s.accounts.FindByID(ctx, id)
	if err != nil {
		return nil, wrapAccountErr(err)
	}
	return account, nil
}

// ListClients returns every client account, excluding admins.
func (s *Service) ListClients(ctx context.Context) ([]*models.Account, error) {
	accounts, err := s.accounts.List(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list accounts")
	}
	clients := make([]*models.Account, 0, len(accounts))
	for _, account := range accounts {
		if account.Role == models.RoleClient {
			clients = append(clients, account)
		}
	}
	return clients, nil
}

// UpdateClientInput carries the mutable profile fields.
type UpdateClientInput struct {
	Name  string
	Email string
	Phone string
}

func (s *Service) UpdateClient(ctx context.Context, id uuid.UUID, in UpdateClientInput) (*models.Account, error) {
	account, err := s.accounts.FindByID(ctx, id)
	if err != nil {
		return nil, wrapAccountErr(err)
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "name cannot be empty")
	}
	account.Name = name
	account.Email = strings.TrimSpace(in.Email)
	account.Phone = strings.TrimSpace(in.Phone)
	account.UpdatedAt = time.Now()

	if err := s.accounts.Update(ctx, account); err != nil {
		return nil, wrapAccountErr(err)
	}
	s.emit(ctx, id.String(), audit.EntityAccount, id.String(), audit.ActionUpdated, "")
	return account, nil
}

// DeactivateClient blocks future logins for the account.
func (s *Service) DeactivateClient(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	account, err := s.accounts.FindByID(ctx, id)
	if err != nil {
		return nil, wrapAccountErr(err)
	}
	if err := account.Deactivate(time.Now()); err != nil {
		return nil, err
	}
	if err := s.accounts.Update(ctx, account); err != nil {
		return nil, wrapAccountErr(err)
	}
	s.emit(ctx, id.String(), audit.EntityAccount, id.String(), audit.ActionDeactivated, "")
	return account, nil
}

func (s *Service) ReactivateClient(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	account, err := s.accounts.FindByID(ctx, id)
	if err != nil {
		return nil, wrapAccountErr(err)
	}
	if err := account.Reactivate(time.Now()); err != nil {
		return nil, err
	}
	if err := s.accounts.Update(ctx, account); err != nil {
		return nil, wrapAccountErr(err)
	}
	s.emit(ctx, id.String(), audit.EntityAccount, id.String(), audit.ActionUpdated, "reactivated")
	return account, nil
}

func (s *Service) recordLogin(outcome string) {
	if s.metrics != nil {
		s.metrics.LoginAttempts.WithLabelValues(outcome).Inc()
	}
}

func (s *Service) emit(ctx context.Context, accountID, entity, entityID, action, detail string) {
	if s.audit == nil {
		return
	}
	err := s.audit.Emit(ctx, audit.Event{
		AccountID: accountID,
		Entity:    entity,
		EntityID:  entityID,
		Action:    action,
		Detail:    detail,
	})
	if err != nil {
		s.logger.WarnContext(ctx, "audit emit failed", "action", action, "error", err)
	}
}

func wrapAccountErr(err error) error {
	switch {
	case errors.Is(err, sentinel.ErrNotFound):
		return dErrors.New(dErrors.CodeNotFound, "account not found")
	case errors.Is(err, sentinel.ErrConflict):
		return dErrors.New(dErrors.CodeConflict, "username is already taken")
	default:
		return dErrors.Wrap(err, dErrors.CodeInternal, "account storage failure")
	}
}
