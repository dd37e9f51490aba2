package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	buildingmodels "rentora/internal/building/models"
	buildingstore "rentora/internal/building/store"
	ownerstore "rentora/internal/owner/store"
	"rentora/internal/platform/scope"
	tenantmodels "rentora/internal/tenant/models"
	tenantstore "rentora/internal/tenant/store"
	dErrors "rentora/pkg/domain-errors"
)

// Stats is the portfolio summary shown on the dashboard.
type Stats struct {
	Owners         int                 `json:"total_owners"`
	Buildings      int                 `json:"total_buildings"`
	Tenants        int                 `json:"total_tenants"`
	ExpiringSoon   int                 `json:"expiring_in_30_days"`
	TotalPortions  int                 `json:"total_portions"`
	VacantPortions int                 `json:"vacant_portions"`
	Occupancy      []BuildingOccupancy `json:"occupancy"`
	SoonToExpire   []ExpiringTenant    `json:"soon_to_expire"`
}

// BuildingOccupancy summarizes one building's portion usage.
type BuildingOccupancy struct {
	BuildingID   uuid.UUID `json:"building_id"`
	BuildingName string    `json:"building_name"`
	Portions     int       `json:"total_portions"`
	Occupied     int       `json:"occupied_portions"`
	Percent      float64   `json:"occupancy_percent"`
}

// ExpiringTenant is a soon-to-expire entry for the dashboard list.
type ExpiringTenant struct {
	TenantID      uuid.UUID `json:"tenant_id"`
	TenantName    string    `json:"tenant_name"`
	BuildingID    uuid.UUID `json:"building_id"`
	EndDate       time.Time `json:"agreement_end_date"`
	DaysRemaining int       `json:"days_remaining"`
}

// Service aggregates counts across the owner, building, and tenant stores.
type Service struct {
	owners    ownerstore.Store
	buildings buildingstore.Store
	tenants   tenantstore.Store
}

func New(owners ownerstore.Store, buildings buildingstore.Store, tenants tenantstore.Store) *Service {
	return &Service{owners: owners, buildings: buildings, tenants: tenants}
}

// Stats gathers the dashboard summary. Admins may narrow to one account via
// filterAccount; non-admin callers are always forced to their own scope.
func (s *Service) Stats(ctx context.Context, caller scope.Scope, filterAccount *uuid.UUID) (*Stats, error) {
	account := caller.AccountFilter()
	if caller.Admin && filterAccount != nil {
		account = filterAccount
	}

	var (
		ownerTotal int
		buildings  []*buildingmodels.Building
		tenants    []*tenantmodels.Tenant
		expiring   []*tenantmodels.Tenant
	)
	now := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		_, total, err := s.owners.List(gctx, ownerstore.Filter{AccountID: account})
		ownerTotal = total
		return err
	})
	g.Go(func() error {
		var err error
		buildings, _, err = s.buildings.List(gctx, buildingstore.Filter{AccountID: account})
		return err
	})
	g.Go(func() error {
		var err error
		tenants, _, err = s.tenants.List(gctx, tenantstore.Filter{AccountID: account})
		return err
	})
	g.Go(func() error {
		var err error
		expiring, err = s.tenants.ListExpiring(gctx, account, now, now.AddDate(0, 0, 30))
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to gather dashboard stats")
	}

	stats := &Stats{
		Owners:       ownerTotal,
		Buildings:    len(buildings),
		Tenants:      len(tenants),
		ExpiringSoon: len(expiring),
	}

	// Occupancy counts distinct portions per building, capped at 100%.
	occupied := make(map[uuid.UUID]map[int]struct{})
	for _, tenant := range tenants {
		if occupied[tenant.BuildingID] == nil {
			occupied[tenant.BuildingID] = make(map[int]struct{})
		}
		occupied[tenant.BuildingID][tenant.PortionNumber] = struct{}{}
	}
	for _, building := range buildings {
		used := len(occupied[building.ID])
		if used > building.Portions {
			used = building.Portions
		}
		percent := 0.0
		if building.Portions > 0 {
			percent = float64(used) / float64(building.Portions) * 100
		}
		stats.TotalPortions += building.Portions
		stats.VacantPortions += building.Portions - used
		stats.Occupancy = append(stats.Occupancy, BuildingOccupancy{
			BuildingID:   building.ID,
			BuildingName: building.Name,
			Portions:     building.Portions,
			Occupied:     used,
			Percent:      percent,
		})
	}

	for i, tenant := range expiring {
		if i == 10 {
			break
		}
		stats.SoonToExpire = append(stats.SoonToExpire, ExpiringTenant{
			TenantID:      tenant.ID,
			TenantName:    tenant.Name,
			BuildingID:    tenant.BuildingID,
			EndDate:       tenant.AgreementEnd,
			DaysRemaining: tenant.DaysUntilExpiry(now),
		})
	}
	return stats, nil
}
