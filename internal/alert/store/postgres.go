package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"rentora/internal/alert/models"
	"rentora/pkg/platform/sentinel"
)

// Postgres persists alerts in PostgreSQL.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

const alertColumns = `id, tenant_id, account_id, tenant_name, building_name,
	end_date, days_remaining, is_read, created_at, updated_at`

// Upsert relies on the partial unique index over (tenant_id) WHERE NOT
// is_read, so each tenant carries at most one live alert.
func (s *Postgres) Upsert(ctx context.Context, alert *models.Alert) error {
	query := `
		INSERT INTO alerts (` + alertColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, false, $8, $8)
		ON CONFLICT (tenant_id) WHERE NOT is_read DO UPDATE SET
			tenant_name = EXCLUDED.tenant_name,
			building_name = EXCLUDED.building_name,
			end_date = EXCLUDED.end_date,
			days_remaining = EXCLUDED.days_remaining,
			updated_at = EXCLUDED.updated_at
	`
	_, err := s.db.ExecContext(ctx, query,
		alert.ID, alert.TenantID, alert.AccountID, alert.TenantName,
		alert.BuildingName, alert.EndDate, alert.DaysRemaining, alert.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert alert: %w", err)
	}
	return nil
}

func (s *Postgres) FindByID(ctx context.Context, id uuid.UUID) (*models.Alert, error) {
	query := `SELECT ` + alertColumns + ` FROM alerts WHERE id = $1`
	return scanAlert(s.db.QueryRowContext(ctx, query, id))
}

func (s *Postgres) List(ctx context.Context, accountID *uuid.UUID, unreadOnly bool) ([]*models.Alert, error) {
	var account any
	if accountID != nil {
		account = *accountID
	}
	query := `SELECT ` + alertColumns + ` FROM alerts
		WHERE ($1::uuid IS NULL OR account_id = $1)
		  AND (NOT $2 OR NOT is_read)
		ORDER BY end_date`
	rows, err := s.db.QueryContext(ctx, query, account, unreadOnly)
	if err != nil {
		return nil, fmt.Errorf("list alerts: %w", err)
	}
	defer rows.Close()

	var out []*models.Alert
	for rows.Next() {
		alert, err := scanAlert(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, alert)
	}
	return out, rows.Err()
}

func (s *Postgres) MarkRead(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE alerts SET is_read = true, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("mark alert read: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func (s *Postgres) MarkReadByTenant(ctx context.Context, tenantID uuid.UUID) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE alerts SET is_read = true, updated_at = now() WHERE tenant_id = $1 AND NOT is_read`, tenantID)
	if err != nil {
		return fmt.Errorf("mark tenant alerts read: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAlert(row rowScanner) (*models.Alert, error) {
	var alert models.Alert
	err := row.Scan(
		&alert.ID, &alert.TenantID, &alert.AccountID, &alert.TenantName,
		&alert.BuildingName, &alert.EndDate, &alert.DaysRemaining, &alert.Read,
		&alert.CreatedAt, &alert.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("scan alert: %w", err)
	}
	return &alert, nil
}
