package memory

import (
	"context"
	"sync"

	"planora/contexts/event-planning/event-catalog-service/application"
	domainerrors "planora/contexts/event-planning/event-catalog-service/domain/errors"
	"planora/contexts/event-planning/event-catalog-service/ports"
)

var _ ports.Repository = (*Store)(nil)

type Store struct {
	mu    sync.RWMutex
	items map[string]ports.EventTypeRecord
}

// NewStore starts with the default reference catalog so a fresh in-memory
// deployment is browsable without an explicit seed call.
func NewStore() *Store {
	s := &Store{items: make(map[string]ports.EventTypeRecord)}
	for _, item := range application.DefaultEventTypes() {
		s.items[item.ID] = item
	}
	return s
}

func NewEmptyStore() *Store {
	return &Store{items: make(map[string]ports.EventTypeRecord)}
}

func (s *Store) Replace(_ context.Context, items []ports.EventTypeRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make(map[string]ports.EventTypeRecord, len(items))
	for _, item := range items {
		if _, dup := next[item.ID]; dup {
			return domainerrors.ErrDuplicateEventType
		}
		next[item.ID] = item
	}
	s.items = next
	return nil
}

func (s *Store) List(_ context.Context) ([]ports.EventTypeRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]ports.EventTypeRecord, 0, len(s.items))
	for _, item := range s.items {
		items = append(items, item)
	}
	return items, nil
}

func (s *Store) Get(_ context.Context, id string) (ports.EventTypeRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[id]
	if !ok {
		return ports.EventTypeRecord{}, domainerrors.ErrEventTypeNotFound
	}
	return item, nil
}
