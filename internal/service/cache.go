package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"github.com/n1ck0n/front6/internal/models"
	"github.com/n1ck0n/front6/internal/repository"
)

// DefaultCacheTTL is how long a cached payload stays fresh.
const DefaultCacheTTL = 60 * time.Second

// CacheSlot is the single-slot persistence the cache runs on.
// There is exactly one cached object, so the slot is unkeyed.
type CacheSlot interface {
	// Load returns the stored blob, or repository.ErrSlotEmpty.
	Load(ctx context.Context) ([]byte, error)
	// Store overwrites the slot with the given blob.
	Store(ctx context.Context, data []byte) error
}

// Generator produces a fresh payload when the cache misses.
type Generator func() (models.Payload, error)

// DataCache serves a payload from the slot while it is fresh and
// regenerates it once the TTL has elapsed.
//
// Two requests arriving just after expiry may both regenerate; the last
// write wins. That wastes one generation but never corrupts the slot.
type DataCache struct {
	slot CacheSlot
	ttl  time.Duration
	now  func() time.Time
	log  *zap.Logger
}

// NewDataCache constructs a DataCache over the given slot.
// A non-positive ttl falls back to DefaultCacheTTL.
func NewDataCache(slot CacheSlot, ttl time.Duration, log *zap.Logger) *DataCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &DataCache{slot: slot, ttl: ttl, now: time.Now, log: log}
}

// Get returns the cached payload and true while the entry is fresh.
// An absent, unreadable, corrupt, or stale entry triggers the generator;
// the new payload is written back and returned with false.
//
// Slot failures never surface to the caller: a failed read is a miss and
// a failed write degrades to an uncached response. Only a generator
// failure is an error.
func (c *DataCache) Get(ctx context.Context, generate Generator) (models.Payload, bool, error) {
	now := c.now()

	if entry, ok := c.load(ctx); ok && entry.Fresh(now, c.ttl) {
		return entry.Data, true, nil
	}

	payload, err := generate()
	if err != nil {
		return models.Payload{}, false, fmt.Errorf("generate payload: %w", err)
	}

	blob, err := json.Marshal(models.CacheEntry{Timestamp: now, Data: payload})
	if err != nil {
		return models.Payload{}, false, fmt.Errorf("marshal cache entry: %w", err)
	}
	if err := c.slot.Store(ctx, blob); err != nil {
		c.log.Warn("cache write failed, serving uncached", zap.Error(err))
	}
	return payload, false, nil
}

// load reads and decodes the slot. Any failure is treated as a miss.
func (c *DataCache) load(ctx context.Context) (models.CacheEntry, bool) {
	blob, err := c.slot.Load(ctx)
	if errors.Is(err, repository.ErrSlotEmpty) {
		return models.CacheEntry{}, false
	}
	if err != nil {
		c.log.Debug("cache read failed, treating as miss", zap.Error(err))
		return models.CacheEntry{}, false
	}
	var entry models.CacheEntry
	if err := json.Unmarshal(blob, &entry); err != nil {
		c.log.Debug("cache entry corrupt, treating as miss", zap.Error(err))
		return models.CacheEntry{}, false
	}
	return entry, true
}

// NewPayload is the default generator: a random number and the current
// time in RFC 3339 format.
func NewPayload() (models.Payload, error) {
	return models.Payload{
		Random: rand.IntN(1000),
		Date:   time.Now().UTC().Format(time.RFC3339),
	}, nil
}
