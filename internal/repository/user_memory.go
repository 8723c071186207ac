package repository

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/najah-dev/campus-events/internal/model"
)

// MemoryUserStore keeps the user directory in process memory. It backs
// tests and database-less demo deployments.
type MemoryUserStore struct {
	mu    sync.RWMutex
	users map[string]model.User // keyed by lowercased email
}

// NewMemoryUserStore constructs an empty MemoryUserStore.
func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{users: make(map[string]model.User)}
}

// Create appends a new user, rejecting case-insensitive email duplicates.
func (s *MemoryUserStore) Create(ctx context.Context, u *model.User) error {
	key := strings.ToLower(u.Email)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[key]; exists {
		return ErrDuplicateEmail
	}
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	s.users[key] = *u
	return nil
}

// GetByEmail returns the user matching the email case-insensitively, or
// ErrNotFound.
func (s *MemoryUserStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[strings.ToLower(email)]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}
