package repository

import "errors"

var (
	// ErrUserNotFound is returned when no user exists for the given login.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateLogin is returned when a user with the login already exists.
	ErrDuplicateLogin = errors.New("login already taken")
	// ErrSessionNotFound is returned when no session exists for the given token.
	ErrSessionNotFound = errors.New("session not found")
	// ErrSlotEmpty is returned when the cache slot holds no entry.
	ErrSlotEmpty = errors.New("cache slot empty")
)
