// Package http provides HTTP handlers for registration, login, logout,
// the protected profile, and the cached data endpoint.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/n1ck0n/front6/internal/middleware"
	"github.com/n1ck0n/front6/internal/models"
	"github.com/n1ck0n/front6/internal/service"
)

// AuthService defines the authentication operations required by the
// HTTP handlers.
type AuthService interface {
	// Register creates a new user, or fails with service.ErrInvalidInput
	// or service.ErrDuplicateLogin.
	Register(ctx context.Context, login, password string) (*models.User, error)
	// Login verifies credentials and returns a session token, or fails
	// with service.ErrInvalidCredentials.
	Login(ctx context.Context, login, password string) (string, error)
}

// SessionDestroyer is the slice of the session manager the logout
// handler needs.
type SessionDestroyer interface {
	Destroy(ctx context.Context, sessionID string) error
}

// AuthHandler handles HTTP requests for registration, login, and logout.
type AuthHandler struct {
	AuthService AuthService
	Sessions    SessionDestroyer
	Log         *zap.Logger
}

// credentialsRequest is the JSON payload for registration and login.
type credentialsRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// Register handles POST /register.
// It expects a JSON body with "login" and "password" and responds with
// 400 for missing fields, 409 for a duplicate login, and 500 for
// internal failures (which are logged, never echoed).
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "login and password are required")
		return
	}

	_, err := h.AuthService.Register(r.Context(), req.Login, req.Password)
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, "login and password are required")
	case errors.Is(err, service.ErrDuplicateLogin):
		writeError(w, http.StatusConflict, "user already exists")
	case err != nil:
		h.Log.Error("registration failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "server error")
	default:
		writeMessage(w, http.StatusOK, "registration successful")
	}
}

// Login handles POST /login.
// On success it sets the session cookie and responds 200. Unknown logins
// and wrong passwords get the same 401 body, so the endpoint cannot be
// used to enumerate users.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusUnauthorized, "Invalid login or password")
		return
	}

	token, err := h.AuthService.Login(r.Context(), req.Login, req.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		writeError(w, http.StatusUnauthorized, "Invalid login or password")
		return
	}
	if err != nil {
		h.Log.Error("login failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}

	setSessionCookie(w, token)
	writeMessage(w, http.StatusOK, "login successful")
}

// Logout handles POST /logout.
// It destroys the presented session, clears the cookie, and responds 200.
// A missing or unknown session still logs out successfully.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(middleware.SessionCookie); err == nil {
		if err := h.Sessions.Destroy(r.Context(), cookie.Value); err != nil {
			h.Log.Error("logout failed", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "server error")
			return
		}
	}

	clearSessionCookie(w)
	writeMessage(w, http.StatusOK, "logged out")
}

// setSessionCookie issues the session cookie: HTTP-only and same-site
// restricted, so scripts cannot read it and cross-site requests do not
// carry it.
func setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// clearSessionCookie removes the session cookie from the client.
func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
