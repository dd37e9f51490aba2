package store

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"rentora/internal/building/models"
	"rentora/pkg/platform/sentinel"
)

// InMemory keeps buildings in a map for tests and database-free runs.
type InMemory struct {
	mu        sync.RWMutex
	buildings map[uuid.UUID]*models.Building
}

func NewInMemory() *InMemory {
	return &InMemory{buildings: make(map[uuid.UUID]*models.Building)}
}

func (s *InMemory) Create(_ context.Context, building *models.Building) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.buildings[building.ID]; ok {
		return sentinel.ErrConflict
	}
	clone := *building
	s.buildings[building.ID] = &clone
	return nil
}

func (s *InMemory) Update(_ context.Context, building *models.Building) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.buildings[building.ID]; !ok {
		return sentinel.ErrNotFound
	}
	clone := *building
	s.buildings[building.ID] = &clone
	return nil
}

func (s *InMemory) FindByID(_ context.Context, id uuid.UUID) (*models.Building, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	building, ok := s.buildings[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	clone := *building
	return &clone, nil
}

func (s *InMemory) List(_ context.Context, filter Filter) ([]*models.Building, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []*models.Building
	search := strings.ToLower(strings.TrimSpace(filter.Search))
	for _, building := range s.buildings {
		if filter.AccountID != nil && building.AccountID != *filter.AccountID {
			continue
		}
		if filter.OwnerID != nil && building.OwnerID != *filter.OwnerID {
			continue
		}
		if filter.Category != "" && building.Category != filter.Category {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(building.Name), search) {
			continue
		}
		clone := *building
		matched = append(matched, &clone)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].Name < matched[j].Name })

	total := len(matched)
	matched = paginate(matched, filter.Limit, filter.Offset)
	return matched, total, nil
}

func (s *InMemory) CountByOwner(_ context.Context, ownerID uuid.UUID) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, building := range s.buildings {
		if building.OwnerID == ownerID {
			n++
		}
	}
	return n, nil
}

func (s *InMemory) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.buildings[id]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.buildings, id)
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
