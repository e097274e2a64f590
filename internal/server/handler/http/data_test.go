package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/n1ck0n/front6/internal/models"
	"github.com/n1ck0n/front6/internal/service"
)

// fakeCache implements DataCache for testing.
type fakeCache struct {
	payload models.Payload
	cached  bool
	err     error
}

func (f *fakeCache) Get(ctx context.Context, generate service.Generator) (models.Payload, bool, error) {
	return f.payload, f.cached, f.err
}

func TestDataHandler_Get(t *testing.T) {
	tests := []struct {
		name       string
		cache      *fakeCache
		wantCached bool
	}{
		{
			name:       "fresh payload",
			cache:      &fakeCache{payload: models.Payload{Random: 42, Date: "2026-08-30T12:00:00Z"}, cached: false},
			wantCached: false,
		},
		{
			name:       "cached payload",
			cache:      &fakeCache{payload: models.Payload{Random: 42, Date: "2026-08-30T12:00:00Z"}, cached: true},
			wantCached: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest("GET", "/data", nil)
			h := &DataHandler{Cache: tt.cache, Log: zap.NewNop()}
			h.Get(rec, req)

			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d; want 200", rec.Code)
			}

			var body struct {
				Data   models.Payload `json:"data"`
				Cached bool           `json:"cached"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("response is not JSON: %v", err)
			}
			if body.Cached != tt.wantCached {
				t.Errorf("cached = %v; want %v", body.Cached, tt.wantCached)
			}
			if body.Data.Random != 42 {
				t.Errorf("data.random = %d; want 42", body.Data.Random)
			}
		})
	}
}

func TestDataHandler_Get_GeneratorError(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/data", nil)
	h := &DataHandler{Cache: &fakeCache{err: errors.New("entropy exhausted")}, Log: zap.NewNop()}
	h.Get(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d; want 500", rec.Code)
	}
}
