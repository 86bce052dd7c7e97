// Package memory holds process-local implementations of the store ports,
// used in development mode and tests.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/wellpath/wellness/internal/core/domain"
)

// UserStore is an in-memory user table with a unique, case-sensitive
// email index, matching the Mongo store.
type UserStore struct {
	mu      sync.RWMutex
	byID    map[string]*domain.User
	byEmail map[string]string // email -> id
}

func NewUserStore() *UserStore {
	return &UserStore{
		byID:    make(map[string]*domain.User),
		byEmail: make(map[string]string),
	}
}

func (s *UserStore) InsertUser(_ context.Context, user *domain.User) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[user.ID]; exists {
		return nil, domain.ErrUserExists
	}
	if _, exists := s.byEmail[user.Email]; exists {
		return nil, domain.ErrUserExists
	}

	stored := cloneUser(user)
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now().UTC()
		stored.UpdatedAt = stored.CreatedAt
	}
	s.byID[stored.ID] = stored
	s.byEmail[stored.Email] = stored.ID
	return cloneUser(stored), nil
}

func (s *UserStore) UpdateUser(_ context.Context, id string, upd domain.UserUpdate) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	upd.Apply(u)
	u.UpdatedAt = time.Now().UTC()
	return cloneUser(u), nil
}

func (s *UserStore) GetUserByEmail(_ context.Context, email string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(s.byID[id]), nil
}

func cloneUser(u *domain.User) *domain.User {
	c := *u
	c.HealthGoals = append([]string(nil), u.HealthGoals...)
	return &c
}
