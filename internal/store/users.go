package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"studybuddy-backend/internal/models"
)

// ErrNotFound is returned when no user matches the lookup key.
var ErrNotFound = errors.New("user not found")

// Users is the keyed user store. The default implementation keeps records in
// process memory; a Postgres-backed one can be swapped in without touching
// the services above it.
type Users interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// MemoryStore holds users in memory, keyed by email. Safe for concurrent use.
type MemoryStore struct {
	mu      sync.RWMutex
	byEmail map[string]*models.User
	byID    map[uuid.UUID]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byEmail: make(map[string]*models.User),
		byID:    make(map[uuid.UUID]string),
	}
}

func (s *MemoryStore) Create(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user.ID = uuid.New()
	user.CreatedAt = time.Now()

	record := *user
	s.byEmail[user.Email] = &record
	s.byID[user.ID] = user.Email
	return nil
}

func (s *MemoryStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.byEmail[email]
	if !ok {
		return nil, ErrNotFound
	}
	user := *record
	return &user, nil
}

func (s *MemoryStore) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	email, ok := s.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	user := *s.byEmail[email]
	return &user, nil
}
