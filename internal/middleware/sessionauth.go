// Package middleware provides HTTP middlewares for session authentication
// and request logging.
package middleware

import (
	"context"
	"net/http"
)

type ctxKey string

const userKey ctxKey = "user"

// SessionCookie is the name of the cookie carrying the session token.
const SessionCookie = "session_id"

// SessionValidator resolves a session token to a user ID.
type SessionValidator interface {
	// Validate returns the user ID bound to the token, or an error for
	// unknown or empty tokens.
	Validate(ctx context.Context, sessionID string) (string, error)
}

// SessionAuth is a middleware that guards protected routes.
//
// It reads the session cookie, validates the token, and stores the bound
// user ID in the request context. Requests without a valid session are
// redirected to the entry point instead of receiving an error page.
func SessionAuth(sessions SessionValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookie)
			if err != nil {
				http.Redirect(w, r, "/", http.StatusFound)
				return
			}
			userID, err := sessions.Validate(r.Context(), cookie.Value)
			if err != nil {
				http.Redirect(w, r, "/", http.StatusFound)
				return
			}
			ctx := context.WithValue(r.Context(), userKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserIDFromContext extracts the authenticated user ID from the request
// context. Returns an empty string if not found.
func GetUserIDFromContext(ctx context.Context) string {
	val := ctx.Value(userKey)
	if s, ok := val.(string); ok {
		return s
	}
	return ""
}
