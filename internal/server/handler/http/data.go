package http

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/n1ck0n/front6/internal/middleware"
	"github.com/n1ck0n/front6/internal/models"
	"github.com/n1ck0n/front6/internal/service"
)

// DataCache defines the cache operation required by the data handler.
type DataCache interface {
	// Get returns the cached payload and whether it was served from cache.
	Get(ctx context.Context, generate service.Generator) (models.Payload, bool, error)
}

// DataHandler serves the TTL-cached generated data.
type DataHandler struct {
	Cache DataCache
	Log   *zap.Logger
}

// Get handles GET /data.
// It serves the cached payload while fresh and regenerates it otherwise,
// reporting which happened via the "cached" field.
func (h *DataHandler) Get(w http.ResponseWriter, r *http.Request) {
	payload, cached, err := h.Cache.Get(r.Context(), service.NewPayload)
	if err != nil {
		h.Log.Error("data generation failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"data":   payload,
		"cached": cached,
	})
}

// ProfileHandler serves the session-protected profile resource.
type ProfileHandler struct{}

// Get handles GET /profile.
// The session middleware has already validated the request; the handler
// only reads the authenticated user ID from the context.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserIDFromContext(r.Context())

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{
		"message": "profile",
		"user_id": userID,
	})
}
