// Package models defines the core data structures for users, sessions,
// and the cached data payload.
package models

import "time"

// User represents an application user with credentials.
type User struct {
	// ID is the unique identifier for the user.
	ID string
	// Login is the login name chosen by the user.
	Login string
	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash string
}

// Session binds an opaque client-held token to an authenticated user.
type Session struct {
	// ID is the session token presented by the client.
	ID string `json:"id"`
	// UserID references the user the session was issued for.
	UserID string `json:"user_id"`
}

// Payload is the generated content served by the data endpoint.
type Payload struct {
	// Random is a freshly generated number in [0, 1000).
	Random int `json:"random"`
	// Date is the generation time in RFC 3339 format.
	Date string `json:"date"`
}

// CacheEntry is the persisted form of a cached payload.
type CacheEntry struct {
	// Timestamp is the instant the payload was generated.
	Timestamp time.Time `json:"timestamp"`
	// Data is the cached payload.
	Data Payload `json:"data"`
}

// Fresh reports whether the entry is younger than ttl at the given instant.
func (e CacheEntry) Fresh(now time.Time, ttl time.Duration) bool {
	return now.Sub(e.Timestamp) < ttl
}
