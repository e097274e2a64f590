package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/n1ck0n/front6/internal/middleware"
)

// NewRouter constructs the HTTP handler serving the service API.
//
// Routes:
//
//	POST /register  → authHandler.Register
//	POST /login     → authHandler.Login (sets the session cookie)
//	POST /logout    → authHandler.Logout (clears the session cookie)
//	GET  /profile   → profileHandler.Get (guarded by SessionAuth)
//	GET  /data      → dataHandler.Get (no authentication involved)
//
// Requests with bodies must carry Content-Type: application/json.
// SessionAuth redirects unauthenticated profile requests to "/".
func NewRouter(
	authHandler *AuthHandler,
	profileHandler *ProfileHandler,
	dataHandler *DataHandler,
	sessions middleware.SessionValidator,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Only allow requests with Content-Type: application/json
	r.Use(chiMiddleware.AllowContentType("application/json"))

	// Log each request and its metadata
	r.Use(middleware.WithRequestLogging(logger))

	r.Post("/register", authHandler.Register)
	r.Post("/login", authHandler.Login)
	r.Post("/logout", authHandler.Logout)
	r.Get("/data", dataHandler.Get)

	// Protected group: requires a valid session cookie
	r.Group(func(r chi.Router) {
		r.Use(middleware.SessionAuth(sessions))
		r.Get("/profile", profileHandler.Get)
	})

	return r
}
