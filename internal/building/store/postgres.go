package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"rentora/internal/building/models"
	"rentora/pkg/platform/sentinel"
)

// Postgres persists buildings in PostgreSQL.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

const buildingColumns = `id, owner_id, account_id, name, address, category, portions, notes, created_at, updated_at`

func (s *Postgres) Create(ctx context.Context, building *models.Building) error {
	query := `
		INSERT INTO buildings (` + buildingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := s.db.ExecContext(ctx, query,
		building.ID, building.OwnerID, building.AccountID, building.Name,
		building.Address, building.Category, building.Portions, building.Notes,
		building.CreatedAt, building.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create building: %w", err)
	}
	return nil
}

func (s *Postgres) Update(ctx context.Context, building *models.Building) error {
	query := `
		UPDATE buildings
		SET name = $2, address = $3, category = $4, portions = $5, notes = $6, updated_at = $7
		WHERE id = $1
	`
	res, err := s.db.ExecContext(ctx, query,
		building.ID, building.Name, building.Address, building.Category,
		building.Portions, building.Notes, building.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update building: %w", err)
	}
	return requireRow(res)
}

func (s *Postgres) FindByID(ctx context.Context, id uuid.UUID) (*models.Building, error) {
	query := `SELECT ` + buildingColumns + ` FROM buildings WHERE id = $1`
	return scanBuilding(s.db.QueryRowContext(ctx, query, id))
}

func (s *Postgres) List(ctx context.Context, filter Filter) ([]*models.Building, int, error) {
	where := `WHERE ($1::uuid IS NULL OR account_id = $1)
	  AND ($2::uuid IS NULL OR owner_id = $2)
	  AND ($3 = '' OR category = $3)
	  AND ($4 = '' OR name ILIKE '%' || $4 || '%')`

	var accountID, ownerID any
	if filter.AccountID != nil {
		accountID = *filter.AccountID
	}
	if filter.OwnerID != nil {
		ownerID = *filter.OwnerID
	}

	var total int
	countQuery := `SELECT count(*) FROM buildings ` + where
	err := s.db.QueryRowContext(ctx, countQuery, accountID, ownerID, string(filter.Category), filter.Search).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count buildings: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = total + 1
	}
	query := `SELECT ` + buildingColumns + ` FROM buildings ` + where + `
		ORDER BY name LIMIT $5 OFFSET $6`
	rows, err := s.db.QueryContext(ctx, query, accountID, ownerID, string(filter.Category), filter.Search, limit, max(filter.Offset, 0))
	if err != nil {
		return nil, 0, fmt.Errorf("list buildings: %w", err)
	}
	defer rows.Close()

	var out []*models.Building
	for rows.Next() {
		building, err := scanBuilding(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, building)
	}
	return out, total, rows.Err()
}

func (s *Postgres) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM buildings WHERE owner_id = $1`, ownerID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count buildings by owner: %w", err)
	}
	return n, nil
}

func (s *Postgres) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM buildings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete building: %w", err)
	}
	return requireRow(res)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBuilding(row rowScanner) (*models.Building, error) {
	var building models.Building
	err := row.Scan(
		&building.ID, &building.OwnerID, &building.AccountID, &building.Name,
		&building.Address, &building.Category, &building.Portions, &building.Notes,
		&building.CreatedAt, &building.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("scan building: %w", err)
	}
	return &building, nil
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
