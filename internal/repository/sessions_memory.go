package repository

import (
	"context"
	"sync"

	"github.com/n1ck0n/front6/internal/models"
)

// MemorySessionRepository is an in-memory session store guarded by a mutex.
type MemorySessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]models.Session
}

// NewMemorySessionRepository creates an empty in-memory session store.
func NewMemorySessionRepository() *MemorySessionRepository {
	return &MemorySessionRepository{sessions: make(map[string]models.Session)}
}

// Save persists the session under its token.
func (r *MemorySessionRepository) Save(_ context.Context, s models.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.ID] = s
	return nil
}

// Find returns the session stored under the given token.
// Returns ErrSessionNotFound if no such session exists.
func (r *MemorySessionRepository) Find(_ context.Context, id string) (*models.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return &s, nil
}

// Delete removes the session. Deleting a missing session is not an error.
func (r *MemorySessionRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
	return nil
}
