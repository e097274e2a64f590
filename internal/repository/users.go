// Package repository provides persistence implementations for the
// credential store, session store, and cache slot.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/n1ck0n/front6/internal/models"
)

// pgUniqueViolation is the PostgreSQL error code for unique_violation.
const pgUniqueViolation = "23505"

// PostgresUserRepository implements the credential store against a
// PostgreSQL database. Login uniqueness is enforced by the UNIQUE
// constraint on users.login, so concurrent registrations of the same
// login cannot both succeed.
type PostgresUserRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresUserRepository creates a new PostgresUserRepository with the
// given database connection.
func NewPostgresUserRepository(db *sql.DB) *PostgresUserRepository {
	return &PostgresUserRepository{DB: db}
}

// FindByLogin looks up a user by exact login match.
// Returns ErrUserNotFound if no such user exists.
func (r *PostgresUserRepository) FindByLogin(ctx context.Context, login string) (*models.User, error) {
	var u models.User
	err := r.DB.QueryRowContext(
		ctx,
		`SELECT id, login, password_hash FROM users WHERE login = $1`,
		login,
	).Scan(&u.ID, &u.Login, &u.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user by login: %w", err)
	}
	return &u, nil
}

// CreateUser inserts a new user record with a generated ID.
// Returns ErrDuplicateLogin if the login is already taken; the UNIQUE
// constraint makes the check-then-insert race impossible at this layer.
func (r *PostgresUserRepository) CreateUser(ctx context.Context, login, passwordHash string) (*models.User, error) {
	u := models.User{
		ID:           uuid.NewString(),
		Login:        login,
		PasswordHash: passwordHash,
	}
	_, err := r.DB.ExecContext(
		ctx,
		`INSERT INTO users (id, login, password_hash) VALUES ($1, $2, $3)`,
		u.ID, u.Login, u.PasswordHash,
	)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
		return nil, ErrDuplicateLogin
	}
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return &u, nil
}
