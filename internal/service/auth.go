// Package service provides the business logic for registration, login,
// session management, and the TTL data cache, delegating persistence to
// repository interfaces.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/n1ck0n/front6/internal/models"
	"github.com/n1ck0n/front6/internal/repository"
)

// UserRepository defines the credential-store operations required by the
// authentication service.
type UserRepository interface {
	// FindByLogin returns the user with the given login,
	// or repository.ErrUserNotFound.
	FindByLogin(ctx context.Context, login string) (*models.User, error)
	// CreateUser inserts a new user record, or returns
	// repository.ErrDuplicateLogin if the login is taken.
	CreateUser(ctx context.Context, login, passwordHash string) (*models.User, error)
}

// PasswordHasher defines the hashing operations required by the
// authentication service.
type PasswordHasher interface {
	// Hash produces a salted one-way digest of the password.
	Hash(plaintext string) (string, error)
	// Verify reports whether the password matches the digest.
	Verify(plaintext, digest string) bool
}

// SessionIssuer is the slice of the session manager the authentication
// service needs: issuing a session on successful login.
type SessionIssuer interface {
	Create(ctx context.Context, userID string) (string, error)
}

// AuthService orchestrates registration and login over the credential
// store, the password hasher, and the session manager.
type AuthService struct {
	users    UserRepository
	hasher   PasswordHasher
	sessions SessionIssuer
}

// NewAuthService constructs an AuthService from its collaborators.
func NewAuthService(users UserRepository, hasher PasswordHasher, sessions SessionIssuer) *AuthService {
	return &AuthService{users: users, hasher: hasher, sessions: sessions}
}

// Register creates a new user with the given credentials.
// It returns ErrInvalidInput for missing fields and ErrDuplicateLogin for
// an already-registered login. The returned user carries the password hash
// for internal use; it must never reach a client.
func (s *AuthService) Register(ctx context.Context, login, password string) (*models.User, error) {
	if login == "" || password == "" {
		return nil, ErrInvalidInput
	}

	// Pre-check for the common case; the storage layer still enforces
	// uniqueness, so concurrent registrations cannot slip through here.
	_, err := s.users.FindByLogin(ctx, login)
	if err == nil {
		return nil, ErrDuplicateLogin
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, fmt.Errorf("check login: %w", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.CreateUser(ctx, login, hash)
	if errors.Is(err, repository.ErrDuplicateLogin) {
		return nil, ErrDuplicateLogin
	}
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Login verifies the credentials and issues a session for the user.
// Unknown logins and wrong passwords both return ErrInvalidCredentials
// so the response cannot be used to enumerate users.
func (s *AuthService) Login(ctx context.Context, login, password string) (string, error) {
	user, err := s.users.FindByLogin(ctx, login)
	if errors.Is(err, repository.ErrUserNotFound) {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", fmt.Errorf("find user: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	token, err := s.sessions.Create(ctx, user.ID)
	if err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}
	return token, nil
}
