package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/n1ck0n/front6/internal/models"
)

// MemoryUserRepository is an in-memory credential store guarded by a mutex.
// The duplicate check and the insert happen under the same lock, so
// concurrent registrations of one login cannot both pass.
type MemoryUserRepository struct {
	mu      sync.RWMutex
	byLogin map[string]models.User
}

// NewMemoryUserRepository creates an empty in-memory credential store.
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{byLogin: make(map[string]models.User)}
}

// FindByLogin looks up a user by exact login match.
// Returns ErrUserNotFound if no such user exists.
func (r *MemoryUserRepository) FindByLogin(_ context.Context, login string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byLogin[login]
	if !ok {
		return nil, ErrUserNotFound
	}
	return &u, nil
}

// CreateUser inserts a new user record with a generated ID.
// Returns ErrDuplicateLogin if the login is already taken.
func (r *MemoryUserRepository) CreateUser(_ context.Context, login, passwordHash string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byLogin[login]; ok {
		return nil, ErrDuplicateLogin
	}
	u := models.User{
		ID:           uuid.NewString(),
		Login:        login,
		PasswordHash: passwordHash,
	}
	r.byLogin[login] = u
	return &u, nil
}
