package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"rentora/internal/alert/models"
	"rentora/pkg/platform/sentinel"
)

// InMemory keeps alerts in a map keyed by alert ID.
type InMemory struct {
	mu     sync.RWMutex
	alerts map[uuid.UUID]*models.Alert
}

func NewInMemory() *InMemory {
	return &InMemory{alerts: make(map[uuid.UUID]*models.Alert)}
}

func (s *InMemory) Upsert(_ context.Context, alert *models.Alert) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.alerts {
		if existing.TenantID == alert.TenantID && !existing.Read {
			existing.TenantName = alert.TenantName
			existing.BuildingName = alert.BuildingName
			existing.EndDate = alert.EndDate
			existing.DaysRemaining = alert.DaysRemaining
			existing.UpdatedAt = time.Now()
			return nil
		}
	}
	clone := *alert
	s.alerts[alert.ID] = &clone
	return nil
}

func (s *InMemory) FindByID(_ context.Context, id uuid.UUID) (*models.Alert, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	alert, ok := s.alerts[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	clone := *alert
	return &clone, nil
}

func (s *InMemory) List(_ context.Context, accountID *uuid.UUID, unreadOnly bool) ([]*models.Alert, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.Alert
	for _, alert := range s.alerts {
		if accountID != nil && alert.AccountID != *accountID {
			continue
		}
		if unreadOnly && alert.Read {
			continue
		}
		clone := *alert
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EndDate.Before(out[j].EndDate) })
	return out, nil
}

func (s *InMemory) MarkRead(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	alert, ok := s.alerts[id]
	if !ok {
		return sentinel.ErrNotFound
	}
	alert.Read = true
	alert.UpdatedAt = time.Now()
	return nil
}

func (s *InMemory) MarkReadByTenant(_ context.Context, tenantID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, alert := range s.alerts {
		if alert.TenantID == tenantID && !alert.Read {
			alert.Read = true
			alert.UpdatedAt = time.Now()
		}
	}
	return nil
}
