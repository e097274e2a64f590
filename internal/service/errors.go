package service

import "errors"

var (
	// ErrInvalidInput is returned when login or password is missing.
	ErrInvalidInput = errors.New("login and password are required")
	// ErrDuplicateLogin is returned when the login is already registered.
	ErrDuplicateLogin = errors.New("user already exists")
	// ErrInvalidCredentials is returned for unknown logins and wrong
	// passwords alike, so callers cannot tell which one failed.
	ErrInvalidCredentials = errors.New("invalid login or password")
	// ErrInvalidSession is returned when a session token is unknown or empty.
	ErrInvalidSession = errors.New("invalid session")
)
