package repository

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/redis/go-redis/v9"
)

// cacheSlotKey is the fixed Redis key for the single cache slot.
const cacheSlotKey = "cache:data"

// FileCacheSlot persists the single cache entry as one file on disk,
// so the cached payload survives process restarts.
type FileCacheSlot struct {
	path string
}

// NewFileCacheSlot creates a file-backed cache slot at the given path.
func NewFileCacheSlot(path string) *FileCacheSlot {
	return &FileCacheSlot{path: path}
}

// Load reads the stored blob. Returns ErrSlotEmpty if the file does not exist.
func (s *FileCacheSlot) Load(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrSlotEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("read cache file: %w", err)
	}
	return data, nil
}

// Store overwrites the slot with the given blob.
func (s *FileCacheSlot) Store(_ context.Context, data []byte) error {
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write cache file: %w", err)
	}
	return nil
}

// RedisCacheSlot persists the single cache entry under one fixed Redis key.
type RedisCacheSlot struct {
	client *redis.Client
}

// NewRedisCacheSlot creates a Redis-backed cache slot using the provided client.
func NewRedisCacheSlot(client *redis.Client) *RedisCacheSlot {
	return &RedisCacheSlot{client: client}
}

// Load reads the stored blob. Returns ErrSlotEmpty if the key is absent.
func (s *RedisCacheSlot) Load(ctx context.Context) ([]byte, error) {
	val, err := s.client.Get(ctx, cacheSlotKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSlotEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("read cache slot: %w", err)
	}
	return val, nil
}

// Store overwrites the slot with the given blob.
func (s *RedisCacheSlot) Store(ctx context.Context, data []byte) error {
	if err := s.client.Set(ctx, cacheSlotKey, data, 0).Err(); err != nil {
		return fmt.Errorf("write cache slot: %w", err)
	}
	return nil
}
