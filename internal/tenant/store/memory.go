package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"rentora/internal/tenant/models"
	"rentora/pkg/platform/sentinel"
)

// InMemory keeps tenants in a map for tests and database-free runs.
type InMemory struct {
	mu      sync.RWMutex
	tenants map[uuid.UUID]*models.Tenant
}

func NewInMemory() *InMemory {
	return &InMemory{tenants: make(map[uuid.UUID]*models.Tenant)}
}

func (s *InMemory) Create(_ context.Context, tenant *models.Tenant) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tenants[tenant.ID]; ok {
		return sentinel.ErrConflict
	}
	clone := *tenant
	s.tenants[tenant.ID] = &clone
	return nil
}

func (s *InMemory) Update(_ context.Context, tenant *models.Tenant) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tenants[tenant.ID]; !ok {
		return sentinel.ErrNotFound
	}
	clone := *tenant
	s.tenants[tenant.ID] = &clone
	return nil
}

func (s *InMemory) FindByID(_ context.Context, id uuid.UUID) (*models.Tenant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	tenant, ok := s.tenants[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	clone := *tenant
	return &clone, nil
}

func (s *InMemory) List(_ context.Context, filter Filter) ([]*models.Tenant, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []*models.Tenant
	search := strings.ToLower(strings.TrimSpace(filter.Search))
	for _, tenant := range s.tenants {
		if filter.AccountID != nil && tenant.AccountID != *filter.AccountID {
			continue
		}
		if filter.OwnerID != nil && tenant.OwnerID != *filter.OwnerID {
			continue
		}
		if filter.BuildingID != nil && tenant.BuildingID != *filter.BuildingID {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(tenant.Name), search) {
			continue
		}
		clone := *tenant
		matched = append(matched, &clone)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].Name < matched[j].Name })

	total := len(matched)
	matched = paginate(matched, filter.Limit, filter.Offset)
	return matched, total, nil
}

func (s *InMemory) ListExpiring(_ context.Context, accountID *uuid.UUID, from, until time.Time) ([]*models.Tenant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []*models.Tenant
	for _, tenant := range s.tenants {
		if accountID != nil && tenant.AccountID != *accountID {
			continue
		}
		if tenant.AgreementEnd.Before(from) || tenant.AgreementEnd.After(until) {
			continue
		}
		clone := *tenant
		matched = append(matched, &clone)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].AgreementEnd.Before(matched[j].AgreementEnd)
	})
	return matched, nil
}

func (s *InMemory) CountByBuilding(_ context.Context, buildingID uuid.UUID) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, tenant := range s.tenants {
		if tenant.BuildingID == buildingID {
			n++
		}
	}
	return n, nil
}

func (s *InMemory) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tenants[id]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.tenants, id)
	return nil
}

func paginate[T any](items []T, limit, offset int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) {
		return nil
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
