package memory

import (
	"context"
	"sync"
	"time"

	domainerrors "planora/contexts/identity-access/auth-service/domain/errors"
	"planora/contexts/identity-access/auth-service/ports"

	"github.com/google/uuid"
)

var (
	_ ports.UserRepository = (*Store)(nil)
	_ ports.Clock          = (*Store)(nil)
	_ ports.IDGenerator    = (*Store)(nil)
)

type Store struct {
	mu           sync.RWMutex
	usersByEmail map[string]ports.UserRecord
}

func NewStore() *Store {
	return &Store{usersByEmail: make(map[string]ports.UserRecord)}
}

func (s *Store) CreateUser(_ context.Context, user ports.UserRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.usersByEmail[user.Email]; exists {
		return domainerrors.ErrEmailTaken
	}
	s.usersByEmail[user.Email] = user
	return nil
}

func (s *Store) GetUserByEmail(_ context.Context, email string) (ports.UserRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.usersByEmail[email]
	if !ok {
		return ports.UserRecord{}, domainerrors.ErrUserNotFound
	}
	return user, nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
