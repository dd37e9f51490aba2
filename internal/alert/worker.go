package alert

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"rentora/internal/alert/models"
	alertstore "rentora/internal/alert/store"
	buildingmodels "rentora/internal/building/models"
	"rentora/internal/platform/metrics"
	tenantmodels "rentora/internal/tenant/models"
)

// TenantSource provides the agreement windows the worker scans.
type TenantSource interface {
	ListExpiring(ctx context.Context, accountID *uuid.UUID, from, until time.Time) ([]*tenantmodels.Tenant, error)
}

// BuildingSource resolves building names for alert display.
type BuildingSource interface {
	FindByID(ctx context.Context, id uuid.UUID) (*buildingmodels.Building, error)
}

// Worker scans agreements and maintains expiry alerts. It raises an unread
// alert for every agreement ending within the window and silences alerts for
// agreements that have already expired.
type Worker struct {
	alerts    alertstore.Store
	tenants   TenantSource
	buildings BuildingSource
	interval  time.Duration
	window    time.Duration
	logger    *slog.Logger
	metrics   *metrics.Metrics
}

type WorkerOption func(*Worker)

func WithWorkerLogger(logger *slog.Logger) WorkerOption {
	return func(w *Worker) {
		if logger != nil {
			w.logger = logger
		}
	}
}

func WithWorkerMetrics(m *metrics.Metrics) WorkerOption {
	return func(w *Worker) { w.metrics = m }
}

// NewWorker builds a scanner that runs every interval and alerts on
// agreements ending within windowDays.
func NewWorker(alerts alertstore.Store, tenants TenantSource, buildings BuildingSource, interval time.Duration, windowDays int, opts ...WorkerOption) *Worker {
	if interval <= 0 {
		interval = 24 * time.Hour
	}
	if windowDays <= 0 {
		windowDays = 30
	}
	w := &Worker{
		alerts:    alerts,
		tenants:   tenants,
		buildings: buildings,
		interval:  interval,
		window:    time.Duration(windowDays) * 24 * time.Hour,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run scans once immediately, then on every tick until the context ends.
func (w *Worker) Run(ctx context.Context) error {
	if err := w.Scan(ctx); err != nil {
		w.logger.ErrorContext(ctx, "expiry scan failed", "error", err)
	}
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := w.Scan(ctx); err != nil {
				w.logger.ErrorContext(ctx, "expiry scan failed", "error", err)
			}
		}
	}
}

// Scan performs a single pass. Exposed so startup and tests can trigger it
// directly.
func (w *Worker) Scan(ctx context.Context) error {
	now := time.Now()

	expiring, err := w.tenants.ListExpiring(ctx, nil, now, now.Add(w.window))
	if err != nil {
		return err
	}
	raised := 0
	for _, tenant := range expiring {
		buildingName := ""
		if building, err := w.buildings.FindByID(ctx, tenant.BuildingID); err == nil {
			buildingName = building.Name
		}
		alert := &models.Alert{
			ID:            uuid.New(),
			TenantID:      tenant.ID,
			AccountID:     tenant.AccountID,
			TenantName:    tenant.Name,
			BuildingName:  buildingName,
			EndDate:       tenant.AgreementEnd,
			DaysRemaining: tenant.DaysUntilExpiry(now),
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := w.alerts.Upsert(ctx, alert); err != nil {
			w.logger.WarnContext(ctx, "alert upsert failed", "tenant_id", tenant.ID, "error", err)
			continue
		}
		raised++
	}
	if w.metrics != nil && raised > 0 {
		w.metrics.AlertsRaised.Add(float64(raised))
	}

	// Silence alerts whose agreements have already lapsed.
	expired, err := w.tenants.ListExpiring(ctx, nil, now.AddDate(-5, 0, 0), now)
	if err != nil {
		return err
	}
	for _, tenant := range expired {
		if err := w.alerts.MarkReadByTenant(ctx, tenant.ID); err != nil {
			w.logger.WarnContext(ctx, "alert silence failed", "tenant_id", tenant.ID, "error", err)
		}
	}

	w.logger.InfoContext(ctx, "expiry scan complete", "expiring", len(expiring), "expired", len(expired))
	return nil
}
