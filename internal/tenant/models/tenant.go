package models

import (
	"strings"
	"time"

	"github.com/google/uuid"

	ownermodels "rentora/internal/owner/models"
	dErrors "rentora/pkg/domain-errors"
)

// Tenant occupies a portion of a building under a rental agreement. AccountID
// and OwnerID are denormalized from the building so scoping and filtering
// never need joins.
//
// Invariants:
//   - Name is non-empty and at most 255 characters
//   - AgreementEnd is strictly after AgreementStart
//   - RentDueDay is between 1 and 28
//   - Rent components and advance are never negative
//   - Aadhaar, when present, is exactly 12 digits
type Tenant struct {
	ID         uuid.UUID `json:"tenant_id"`
	BuildingID uuid.UUID `json:"building_id"`
	OwnerID    uuid.UUID `json:"owner_id"`
	AccountID  uuid.UUID `json:"account_id"`

	Name          string `json:"name"`
	Phone         string `json:"phone,omitempty"`
	Email         string `json:"email,omitempty"`
	Aadhaar       string `json:"aadhar_number,omitempty"`
	Address       string `json:"permanent_address,omitempty"`
	PortionNumber int    `json:"portion_number"`

	BaseRent          float64 `json:"base_rent"`
	WaterCharge       float64 `json:"water_charge"`
	MaintenanceCharge float64 `json:"maintenance_charge"`
	AdvanceAmount     float64 `json:"advance_amount"`
	RentDueDay        int     `json:"rent_due_day"`

	AgreementStart time.Time `json:"agreement_start_date"`
	AgreementEnd   time.Time `json:"agreement_end_date"`

	AgreementPDF string `json:"agreement_pdf_path,omitempty"`
	AadhaarPDF   string `json:"aadhar_pdf_path,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewTenant constructs a tenant, validating invariants.
func NewTenant(id, buildingID, ownerID, accountID uuid.UUID, name string, start, end time.Time) (*Tenant, error) {
	name = strings.TrimSpace(name)
	if buildingID == uuid.Nil {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "tenant must belong to a building")
	}
	if name == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "tenant name cannot be empty")
	}
	if len(name) > 255 {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "tenant name must be 255 characters or less")
	}
	if err := ValidateAgreementDates(start, end); err != nil {
		return nil, err
	}
	now := time.Now()
	return &Tenant{
		ID:             id,
		BuildingID:     buildingID,
		OwnerID:        ownerID,
		AccountID:      accountID,
		Name:           name,
		PortionNumber:  1,
		RentDueDay:     1,
		AgreementStart: start,
		AgreementEnd:   end,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

// ValidateAgreementDates enforces strict date ordering.
func ValidateAgreementDates(start, end time.Time) error {
	if start.IsZero() || end.IsZero() {
		return dErrors.New(dErrors.CodeValidation, "agreement start and end dates are required")
	}
	if !end.After(start) {
		return dErrors.New(dErrors.CodeValidation, "agreement end date must be after start date")
	}
	return nil
}

// SetRent validates and stores the rent components.
func (t *Tenant) SetRent(base, water, maintenance, advance float64, dueDay int) error {
	if base < 0 || water < 0 || maintenance < 0 || advance < 0 {
		return dErrors.New(dErrors.CodeValidation, "rent amounts cannot be negative")
	}
	if dueDay < 1 || dueDay > 28 {
		return dErrors.New(dErrors.CodeValidation, "rent due day must be between 1 and 28")
	}
	t.BaseRent = base
	t.WaterCharge = water
	t.MaintenanceCharge = maintenance
	t.AdvanceAmount = advance
	t.RentDueDay = dueDay
	return nil
}

// SetAadhaar validates and stores the Aadhaar number. Empty clears it.
func (t *Tenant) SetAadhaar(value string) error {
	value = strings.TrimSpace(value)
	if value != "" && !ownermodels.ValidAadhaar(value) {
		return dErrors.New(dErrors.CodeValidation, "aadhar number must be exactly 12 digits")
	}
	t.Aadhaar = value
	return nil
}

// TotalRent is the monthly amount due: base plus water plus maintenance.
func (t *Tenant) TotalRent() float64 {
	return t.BaseRent + t.WaterCharge + t.MaintenanceCharge
}

// WaterMaintenanceTotal is the combined extra-charges component.
func (t *Tenant) WaterMaintenanceTotal() float64 {
	return t.WaterCharge + t.MaintenanceCharge
}

// DaysUntilExpiry counts whole days from now until the agreement end,
// negative once expired.
func (t *Tenant) DaysUntilExpiry(now time.Time) int {
	return int(t.AgreementEnd.Sub(now).Hours() / 24)
}
