package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"rentora/internal/tenant/models"
	"rentora/pkg/platform/sentinel"
)

// Postgres persists tenants in PostgreSQL.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

const tenantColumns = `id, building_id, owner_id, account_id, name, phone, email, aadhaar,
	address, portion_number, base_rent, water_charge, maintenance_charge,
	advance_amount, rent_due_day, agreement_start, agreement_end,
	agreement_pdf, aadhaar_pdf, created_at, updated_at`

func (s *Postgres) Create(ctx context.Context, tenant *models.Tenant) error {
	query := `
		INSERT INTO tenants (` + tenantColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
		        $15, $16, $17, $18, $19, $20, $21)
	`
	_, err := s.db.ExecContext(ctx, query, tenantArgs(tenant)...)
	if err != nil {
		return fmt.Errorf("create tenant: %w", err)
	}
	return nil
}

func (s *Postgres) Update(ctx context.Context, tenant *models.Tenant) error {
	query := `
		UPDATE tenants
		SET building_id = $2, owner_id = $3, account_id = $4, name = $5,
		    phone = $6, email = $7, aadhaar = $8, address = $9,
		    portion_number = $10, base_rent = $11, water_charge = $12,
		    maintenance_charge = $13, advance_amount = $14, rent_due_day = $15,
		    agreement_start = $16, agreement_end = $17, agreement_pdf = $18,
		    aadhaar_pdf = $19, updated_at = $20
		WHERE id = $1
	`
	res, err := s.db.ExecContext(ctx, query,
		tenant.ID, tenant.BuildingID, tenant.OwnerID, tenant.AccountID,
		tenant.Name, tenant.Phone, tenant.Email, tenant.Aadhaar, tenant.Address,
		tenant.PortionNumber, tenant.BaseRent, tenant.WaterCharge,
		tenant.MaintenanceCharge, tenant.AdvanceAmount, tenant.RentDueDay,
		tenant.AgreementStart, tenant.AgreementEnd, tenant.AgreementPDF,
		tenant.AadhaarPDF, tenant.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update tenant: %w", err)
	}
	return requireRow(res)
}

func tenantArgs(t *models.Tenant) []any {
	return []any{
		t.ID, t.BuildingID, t.OwnerID, t.AccountID, t.Name, t.Phone, t.Email,
		t.Aadhaar, t.Address, t.PortionNumber, t.BaseRent, t.WaterCharge,
		t.MaintenanceCharge, t.AdvanceAmount, t.RentDueDay, t.AgreementStart,
		t.AgreementEnd, t.AgreementPDF, t.AadhaarPDF, t.CreatedAt, t.UpdatedAt,
	}
}

func (s *Postgres) FindByID(ctx context.Context, id uuid.UUID) (*models.Tenant, error) {
	query := `SELECT ` + tenantColumns + ` FROM tenants WHERE id = $1`
	return scanTenant(s.db.QueryRowContext(ctx, query, id))
}

func (s *Postgres) List(ctx context.Context, filter Filter) ([]*models.Tenant, int, error) {
	where := `WHERE ($1::uuid IS NULL OR account_id = $1)
	  AND ($2::uuid IS NULL OR owner_id = $2)
	  AND ($3::uuid IS NULL OR building_id = $3)
	  AND ($4 = '' OR name ILIKE '%' || $4 || '%')`

	var accountID, ownerID, buildingID any
	if filter.AccountID != nil {
		accountID = *filter.AccountID
	}
	if filter.OwnerID != nil {
		ownerID = *filter.OwnerID
	}
	if filter.BuildingID != nil {
		buildingID = *filter.BuildingID
	}

	var total int
	countQuery := `SELECT count(*) FROM tenants ` + where
	err := s.db.QueryRowContext(ctx, countQuery, accountID, ownerID, buildingID, filter.Search).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count tenants: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = total + 1
	}
	query := `SELECT ` + tenantColumns + ` FROM tenants ` + where + `
		ORDER BY name LIMIT $5 OFFSET $6`
	rows, err := s.db.QueryContext(ctx, query, accountID, ownerID, buildingID, filter.Search, limit, max(filter.Offset, 0))
	if err != nil {
		return nil, 0, fmt.Errorf("list tenants: %w", err)
	}
	defer rows.Close()

	var out []*models.Tenant
	for rows.Next() {
		tenant, err := scanTenant(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, tenant)
	}
	return out, total, rows.Err()
}

func (s *Postgres) ListExpiring(ctx context.Context, accountID *uuid.UUID, from, until time.Time) ([]*models.Tenant, error) {
	var account any
	if accountID != nil {
		account = *accountID
	}
	query := `SELECT ` + tenantColumns + ` FROM tenants
		WHERE ($1::uuid IS NULL OR account_id = $1)
		  AND agreement_end BETWEEN $2 AND $3
		ORDER BY agreement_end`
	rows, err := s.db.QueryContext(ctx, query, account, from, until)
	if err != nil {
		return nil, fmt.Errorf("list expiring tenants: %w", err)
	}
	defer rows.Close()

	var out []*models.Tenant
	for rows.Next() {
		tenant, err := scanTenant(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, tenant)
	}
	return out, rows.Err()
}

func (s *Postgres) CountByBuilding(ctx context.Context, buildingID uuid.UUID) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM tenants WHERE building_id = $1`, buildingID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count tenants by building: %w", err)
	}
	return n, nil
}

func (s *Postgres) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM tenants WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete tenant: %w", err)
	}
	return requireRow(res)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTenant(row rowScanner) (*models.Tenant, error) {
	var tenant models.Tenant
	err := row.Scan(
		&tenant.ID, &tenant.BuildingID, &tenant.OwnerID, &tenant.AccountID,
		&tenant.Name, &tenant.Phone, &tenant.Email, &tenant.Aadhaar,
		&tenant.Address, &tenant.PortionNumber, &tenant.BaseRent,
		&tenant.WaterCharge, &tenant.MaintenanceCharge, &tenant.AdvanceAmount,
		&tenant.RentDueDay, &tenant.AgreementStart, &tenant.AgreementEnd,
		&tenant.AgreementPDF, &tenant.AadhaarPDF, &tenant.CreatedAt, &tenant.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("scan tenant: %w", err)
	}
	return &tenant, nil
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
