package docgen

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"rentora/internal/audit"
	buildingmodels "rentora/internal/building/models"
	"rentora/internal/docgen/docx"
	ownermodels "rentora/internal/owner/models"
	"rentora/internal/platform/metrics"
	"rentora/internal/platform/scope"
	tenantmodels "rentora/internal/tenant/models"
	dErrors "rentora/pkg/domain-errors"
	"rentora/pkg/platform/sentinel"
)

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks

// TemplateStore provides agreement templates by building category.
type TemplateStore interface {
	Template(category string) ([]byte, error)
}

// OutputStore persists generated documents.
type OutputStore interface {
	Save(name string, data []byte) (string, error)
}

// TenantSource resolves the tenant under the caller's scope.
type TenantSource interface {
	Get(ctx context.Context, caller scope.Scope, id uuid.UUID) (*tenantmodels.Tenant, error)
}

// OwnerSource resolves the owner under the caller's scope.
type OwnerSource interface {
	Get(ctx context.Context, caller scope.Scope, id uuid.UUID) (*ownermodels.Owner, error)
}

// BuildingSource resolves the building under the caller's scope.
type BuildingSource interface {
	Get(ctx context.Context, caller scope.Scope, id uuid.UUID) (*buildingmodels.Building, error)
}

// Service generates rental agreements from category templates.
type Service struct {
	templates TemplateStore
	outputs   OutputStore
	tenants   TenantSource
	owners    OwnerSource
	buildings BuildingSource
	logger    *slog.Logger
	metrics   *metrics.Metrics
	audit     *audit.Publisher
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

func NewService(templates TemplateStore, outputs OutputStore, tenants TenantSource, owners OwnerSource, buildings BuildingSource, opts ...Option) *Service {
	s := &Service{
		templates: templates,
		outputs:   outputs,
		tenants:   tenants,
		owners:    owners,
		buildings: buildings,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Result is a generated agreement ready to stream to the caller.
type Result struct {
	Filename string
	Data     []byte
}

// Generate renders the agreement for a tenant: template by building
// category, placeholder resolution, run-aware substitution, then persistence
// of the finished document. Nothing is persisted when any step fails.
func (s *Service) Generate(ctx context.Context, caller scope.Scope, tenantID uuid.UUID, ov Overrides) (*Result, error) {
	result, err := s.generate(ctx, caller, tenantID, ov)
	if err != nil {
		s.countFailure(err)
		return nil, err
	}
	if s.metrics != nil {
		s.metrics.AgreementsGenerated.Inc()
	}
	s.emit(ctx, caller, tenantID, result.Filename)
	return result, nil
}

func (s *Service) generate(ctx context.Context, caller scope.Scope, tenantID uuid.UUID, ov Overrides) (*Result, error) {
	if err := validateOverrides(ov); err != nil {
		return nil, err
	}

	tenant, err := s.tenants.Get(ctx, caller, tenantID)
	if err != nil {
		return nil, err
	}
	owner, err := s.owners.Get(ctx, caller, tenant.OwnerID)
	if err != nil {
		return nil, err
	}
	building, err := s.buildings.Get(ctx, caller, tenant.BuildingID)
	if err != nil {
		return nil, err
	}

	raw, err := s.templates.Template(string(building.Category))
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound,
				fmt.Sprintf("no agreement template for %s buildings", building.Category))
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load template")
	}

	doc, err := docx.Read(raw)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInvalidState, "template is not a valid document")
	}

	replacements, err := Resolve(tenant, owner, ov)
	if err != nil {
		return nil, err
	}
	Replace(doc, replacements)

	data, err := doc.Bytes()
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to serialize document")
	}

	filename := fmt.Sprintf("agreement_%s_%s.docx", slug(tenant.Name), time.Now().Format("2006-01-02"))
	if _, err := s.outputs.Save("outputs/"+filename, data); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to store generated agreement")
	}

	s.logger.InfoContext(ctx, "agreement generated",
		"tenant_id", tenant.ID, "category", building.Category, "filename", filename)
	return &Result{Filename: filename, Data: data}, nil
}

// Preview summarizes the records feeding generation so the caller can decide
// whether overrides are needed before committing.
type Preview struct {
	Owner struct {
		Name       string `json:"name"`
		Aadhaar    string `json:"aadhar_number"`
		HasAadhaar bool   `json:"has_aadhar"`
		Address    string `json:"address"`
	} `json:"owner"`
	Tenant struct {
		Name       string `json:"name"`
		Aadhaar    string `json:"aadhar_number"`
		Address    string `json:"permanent_address"`
		HasAddress bool   `json:"has_address"`
	} `json:"tenant"`
	Building struct {
		Name     string `json:"name"`
		Category string `json:"category"`
		Portion  int    `json:"portion_number"`
	} `json:"building"`
	Rent struct {
		Base       string `json:"base_rent"`
		Extra      string `json:"water_maintenance_amount"`
		ExtraLabel string `json:"water_maintenance_label"`
		Total      string `json:"total_rent"`
		TotalWords string `json:"total_rent_in_words"`
		DueDay     int    `json:"rent_due_day"`
		Advance    string `json:"advance_amount"`
	} `json:"rent"`
	Agreement struct {
		StartDate string `json:"start_date"`
		EndDate   string `json:"end_date"`
		Duration  string `json:"duration"`
	} `json:"agreement"`
}

func (s *Service) Preview(ctx context.Context, caller scope.Scope, tenantID uuid.UUID) (*Preview, error) {
	tenant, err := s.tenants.Get(ctx, caller, tenantID)
	if err != nil {
		return nil, err
	}
	owner, err := s.owners.Get(ctx, caller, tenant.OwnerID)
	if err != nil {
		return nil, err
	}
	building, err := s.buildings.Get(ctx, caller, tenant.BuildingID)
	if err != nil {
		return nil, err
	}

	replacements, err := Resolve(tenant, owner, Overrides{})
	if err != nil {
		return nil, err
	}

	var p Preview
	p.Owner.Name = owner.Name
	p.Owner.Aadhaar = owner.Aadhaar
	p.Owner.HasAadhaar = owner.Aadhaar != ""
	p.Owner.Address = owner.Address
	p.Tenant.Name = tenant.Name
	p.Tenant.Aadhaar = tenant.Aadhaar
	p.Tenant.Address = tenant.Address
	p.Tenant.HasAddress = tenant.Address != ""
	p.Building.Name = building.Name
	p.Building.Category = string(building.Category)
	p.Building.Portion = tenant.PortionNumber
	p.Rent.Base = replacements[TokenBaseRent]
	p.Rent.Extra = replacements[TokenWaterMaintAmount]
	p.Rent.ExtraLabel = replacements[TokenWaterMaintLabel]
	p.Rent.Total = replacements[TokenTotalRent]
	p.Rent.TotalWords = replacements[TokenTotalRentWords]
	p.Rent.DueDay = tenant.RentDueDay
	p.Rent.Advance = replacements[TokenAdvanceAmount]
	p.Agreement.StartDate = replacements[TokenAgreementStart]
	p.Agreement.EndDate = replacements[TokenAgreementEnd]
	p.Agreement.Duration = replacements[TokenAgreementDuration]
	return &p, nil
}

func validateOverrides(ov Overrides) error {
	if ov.OwnerAadhaar != "" && !ownermodels.ValidAadhaar(ov.OwnerAadhaar) {
		return dErrors.New(dErrors.CodeValidation, "owner aadhar override must be exactly 12 digits")
	}
	if ov.TenantAddress != "" && len(strings.TrimSpace(ov.TenantAddress)) < 10 {
		return dErrors.New(dErrors.CodeValidation, "tenant address override must be at least 10 characters")
	}
	return nil
}

// slug lowercases the name and keeps letters and digits, joining words with
// underscores for a filesystem-safe filename.
func slug(name string) string {
	var b strings.Builder
	lastUnderscore := true
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastUnderscore = false
		default:
			if !lastUnderscore {
				b.WriteByte('_')
				lastUnderscore = true
			}
		}
	}
	out := strings.TrimSuffix(b.String(), "_")
	if out == "" {
		return "tenant"
	}
	return out
}

func (s *Service) countFailure(err error) {
	if s.metrics == nil {
		return
	}
	reason := "internal"
	switch dErrors.CodeOf(err) {
	case dErrors.CodeNotFound:
		reason = "not_found"
	case dErrors.CodeValidation, dErrors.CodeInvalidInput, dErrors.CodeBadRequest:
		reason = "validation"
	case dErrors.CodeInvalidState:
		reason = "bad_template"
	}
	s.metrics.AgreementFailures.WithLabelValues(reason).Inc()
}

func (s *Service) emit(ctx context.Context, caller scope.Scope, tenantID uuid.UUID, filename string) {
	if s.audit == nil {
		return
	}
	err := s.audit.Emit(ctx, audit.Event{
		AccountID: caller.AccountID.String(),
		Entity:    audit.EntityAgreement,
		EntityID:  tenantID.String(),
		Action:    audit.ActionGenerated,
		Detail:    filename,
	})
	if err != nil {
		s.logger.WarnContext(ctx, "audit emit failed", "action", audit.ActionGenerated, "error", err)
	}
}
