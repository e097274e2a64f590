package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/n1ck0n/front6/internal/models"
	"github.com/n1ck0n/front6/internal/repository"
)

// tokenBytes is the entropy of a session token: 32 bytes = 256 bits.
const tokenBytes = 32

// SessionRepository defines the persistence operations required by the
// session manager.
type SessionRepository interface {
	// Save persists the session under its token.
	Save(ctx context.Context, s models.Session) error
	// Find returns the session for the token, or repository.ErrSessionNotFound.
	Find(ctx context.Context, id string) (*models.Session, error)
	// Delete removes the session; deleting a missing session is not an error.
	Delete(ctx context.Context, id string) error
}

// SessionManager owns the session lifecycle: issuing, validating, and
// destroying tokens bound to a user ID. It never touches transport;
// copying the token to and from a cookie is the handler's job.
type SessionManager struct {
	repo SessionRepository
}

// NewSessionManager constructs a SessionManager using the provided repository.
func NewSessionManager(repo SessionRepository) *SessionManager {
	return &SessionManager{repo: repo}
}

// Create issues a fresh unguessable token bound to userID and returns it.
func (m *SessionManager) Create(ctx context.Context, userID string) (string, error) {
	token, err := newToken()
	if err != nil {
		return "", err
	}
	if err := m.repo.Save(ctx, models.Session{ID: token, UserID: userID}); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}
	return token, nil
}

// Validate returns the user ID bound to the token.
// Unknown or empty tokens yield ErrInvalidSession.
func (m *SessionManager) Validate(ctx context.Context, sessionID string) (string, error) {
	if sessionID == "" {
		return "", ErrInvalidSession
	}
	s, err := m.repo.Find(ctx, sessionID)
	if errors.Is(err, repository.ErrSessionNotFound) {
		return "", ErrInvalidSession
	}
	if err != nil {
		return "", fmt.Errorf("lookup session: %w", err)
	}
	return s.UserID, nil
}

// Destroy removes the session. Destroying an unknown token succeeds,
// so repeated logout calls are harmless.
func (m *SessionManager) Destroy(ctx context.Context, sessionID string) error {
	if err := m.repo.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("destroy session: %w", err)
	}
	return nil
}

// newToken generates a cryptographically random session token.
func newToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
