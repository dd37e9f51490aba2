package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"rentora/internal/account/models"
	"rentora/pkg/platform/sentinel"
)

// Postgres persists accounts in PostgreSQL via lib/pq.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

const accountColumns = `id, username, password_hash, name, email, phone, role, active, created_at, updated_at`

func (s *Postgres) Create(ctx context.Context, account *models.Account) error {
	query := `
		INSERT INTO accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := s.db.ExecContext(ctx, query,
		account.ID, account.Username, account.PasswordHash, account.Name,
		account.Email, account.Phone, account.Role, account.Active,
		account.CreatedAt, account.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return sentinel.ErrConflict
		}
		return fmt.Errorf("create account: %w", err)
	}
	return nil
}

func (s *Postgres) Update(ctx context.Context, account *models.Account) error {
	query := `
		UPDATE accounts
		SET username = $2, password_hash = $3, name = $4, email = $5,
		    phone = $6, role = $7, active = $8, updated_at = $9
		WHERE id = $1
	`
	res, err := s.db.ExecContext(ctx, query,
		account.ID, account.Username, account.PasswordHash, account.Name,
		account.Email, account.Phone, account.Role, account.Active,
		account.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return sentinel.ErrConflict
		}
		return fmt.Errorf("update account: %w", err)
	}
	return requireRow(res)
}

func (s *Postgres) FindByID(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`
	return scanAccount(s.db.QueryRowContext(ctx, query, id))
}

func (s *Postgres) FindByUsername(ctx context.Context, username string) (*models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE lower(username) = lower($1)`
	return scanAccount(s.db.QueryRowContext(ctx, query, username))
}

func (s *Postgres) List(ctx context.Context) ([]*models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts ORDER BY username`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()

	var out []*models.Account
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, account)
	}
	return out, rows.Err()
}

func (s *Postgres) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	return requireRow(res)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (*models.Account, error) {
	var account models.Account
	err := row.Scan(
		&account.ID, &account.Username, &account.PasswordHash, &account.Name,
		&account.Email, &account.Phone, &account.Role, &account.Active,
		&account.CreatedAt, &account.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("scan account: %w", err)
	}
	return &account, nil
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
