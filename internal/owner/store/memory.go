package store

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"rentora/internal/owner/models"
	"rentora/pkg/platform/sentinel"
)

// InMemory keeps owners in a map for tests and database-free runs.
type InMemory struct {
	mu     sync.RWMutex
	owners map[uuid.UUID]*models.Owner
}

func NewInMemory() *InMemory {
	return &InMemory{owners: make(map[uuid.UUID]*models.Owner)}
}

func (s *InMemory) Create(_ context.Context, owner *models.Owner) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.owners[owner.ID]; ok {
		return sentinel.ErrConflict
	}
	clone := *owner
	s.owners[owner.ID] = &clone
	return nil
}

func (s *InMemory) Update(_ context.Context, owner *models.Owner) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.owners[owner.ID]; !ok {
		return sentinel.ErrNotFound
	}
	clone := *owner
	s.owners[owner.ID] = &clone
	return nil
}

func (s *InMemory) FindByID(_ context.Context, id uuid.UUID) (*models.Owner, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	owner, ok := s.owners[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	clone := *owner
	return &clone, nil
}

func (s *InMemory) List(_ context.Context, filter Filter) ([]*models.Owner, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []*models.Owner
	search := strings.ToLower(strings.TrimSpace(filter.Search))
	for _, owner := range s.owners {
		if filter.AccountID != nil && owner.AccountID != *filter.AccountID {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(owner.Name), search) {
			continue
		}
		clone := *owner
		matched = append(matched, &clone)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].Name < matched[j].Name })

	total := len(matched)
	matched = paginate(matched, filter.Limit, filter.Offset)
	return matched, total, nil
}

func (s *InMemory) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.owners[id]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.owners, id)
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
