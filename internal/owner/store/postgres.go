package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"rentora/internal/owner/models"
	"rentora/pkg/platform/sentinel"
)

// Postgres persists owners in PostgreSQL.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

const ownerColumns = `id, account_id, name, aadhaar, address, phone, email, created_at, updated_at`

func (s *Postgres) Create(ctx context.Context, owner *models.Owner) error {
	query := `
		INSERT INTO owners (` + ownerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := s.db.ExecContext(ctx, query,
		owner.ID, owner.AccountID, owner.Name, owner.Aadhaar,
		owner.Address, owner.Phone, owner.Email,
		owner.CreatedAt, owner.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create owner: %w", err)
	}
	return nil
}

func (s *Postgres) Update(ctx context.Context, owner *models.Owner) error {
	query := `
		UPDATE owners
		SET name = $2, aadhaar = $3, address = $4, phone = $5, email = $6, updated_at = $7
		WHERE id = $1
	`
	res, err := s.db.ExecContext(ctx, query,
		owner.ID, owner.Name, owner.Aadhaar, owner.Address,
		owner.Phone, owner.Email, owner.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update owner: %w", err)
	}
	return requireRow(res)
}

func (s *Postgres) FindByID(ctx context.Context, id uuid.UUID) (*models.Owner, error) {
	query := `SELECT ` + ownerColumns + ` FROM owners WHERE id = $1`
	return scanOwner(s.db.QueryRowContext(ctx, query, id))
}

func (s *Postgres) List(ctx context.Context, filter Filter) ([]*models.Owner, int, error) {
	where := `WHERE ($1::uuid IS NULL OR account_id = $1)
	  AND ($2 = '' OR name ILIKE '%' || $2 || '%')`

	var accountID any
	if filter.AccountID != nil {
		accountID = *filter.AccountID
	}

	var total int
	countQuery := `SELECT count(*) FROM owners ` + where
	if err := s.db.QueryRowContext(ctx, countQuery, accountID, filter.Search).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count owners: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = total + 1
	}
	query := `SELECT ` + ownerColumns + ` FROM owners ` + where + `
		ORDER BY name LIMIT $3 OFFSET $4`
	rows, err := s.db.QueryContext(ctx, query, accountID, filter.Search, limit, max(filter.Offset, 0))
	if err != nil {
		return nil, 0, fmt.Errorf("list owners: %w", err)
	}
	defer rows.Close()

	var out []*models.Owner
	for rows.Next() {
		owner, err := scanOwner(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, owner)
	}
	return out, total, rows.Err()
}

func (s *Postgres) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM owners WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete owner: %w", err)
	}
	return requireRow(res)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOwner(row rowScanner) (*models.Owner, error) {
	var owner models.Owner
	err := row.Scan(
		&owner.ID, &owner.AccountID, &owner.Name, &owner.Aadhaar,
		&owner.Address, &owner.Phone, &owner.Email,
		&owner.CreatedAt, &owner.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("scan owner: %w", err)
	}
	return &owner, nil
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
