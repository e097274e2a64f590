package service

import (
	"context"
	"errors"
	"testing"

	"github.com/n1ck0n/front6/internal/repository"
)

func TestSessionManager_CreateValidateDestroy(t *testing.T) {
	mgr := NewSessionManager(repository.NewMemorySessionRepository())
	ctx := context.Background()

	token, err := mgr.Create(ctx, "user-1")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if token == "" {
		t.Fatal("Create returned an empty token")
	}

	userID, err := mgr.Validate(ctx, token)
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if userID != "user-1" {
		t.Errorf("Validate = %q; want %q", userID, "user-1")
	}

	if err := mgr.Destroy(ctx, token); err != nil {
		t.Fatalf("Destroy returned error: %v", err)
	}
	if _, err := mgr.Validate(ctx, token); !errors.Is(err, ErrInvalidSession) {
		t.Errorf("Validate after Destroy error = %v; want ErrInvalidSession", err)
	}
}

func TestSessionManager_TokensAreUnique(t *testing.T) {
	mgr := NewSessionManager(repository.NewMemorySessionRepository())
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := mgr.Create(ctx, "user-1")
		if err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
		if seen[token] {
			t.Fatalf("duplicate token issued: %q", token)
		}
		seen[token] = true
	}
}

func TestSessionManager_ValidateEmptyToken(t *testing.T) {
	mgr := NewSessionManager(repository.NewMemorySessionRepository())

	if _, err := mgr.Validate(context.Background(), ""); !errors.Is(err, ErrInvalidSession) {
		t.Errorf("Validate(\"\") error = %v; want ErrInvalidSession", err)
	}
}

func TestSessionManager_DestroyIdempotent(t *testing.T) {
	mgr := NewSessionManager(repository.NewMemorySessionRepository())
	ctx := context.Background()

	if err := mgr.Destroy(ctx, "never-issued"); err != nil {
		t.Errorf("Destroy of unknown token returned error: %v", err)
	}

	token, err := mgr.Create(ctx, "user-1")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if err := mgr.Destroy(ctx, token); err != nil {
		t.Fatalf("first Destroy returned error: %v", err)
	}
	if err := mgr.Destroy(ctx, token); err != nil {
		t.Errorf("second Destroy returned error: %v", err)
	}
}
