package repository

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
)

func TestMemoryUserRepository_CreateAndFind(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	created, err := repo.CreateUser(ctx, "alice", "hash-1")
	if err != nil {
		t.Fatalf("CreateUser returned error: %v", err)
	}
	if created.ID == "" {
		t.Error("expected a generated user ID")
	}

	found, err := repo.FindByLogin(ctx, "alice")
	if err != nil {
		t.Fatalf("FindByLogin returned error: %v", err)
	}
	if found.ID != created.ID || found.PasswordHash != "hash-1" {
		t.Errorf("found %+v; want the created record", found)
	}

	if _, err := repo.FindByLogin(ctx, "missing"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("FindByLogin(missing) error = %v; want ErrUserNotFound", err)
	}
}

func TestMemoryUserRepository_DuplicateLogin(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	if _, err := repo.CreateUser(ctx, "alice", "hash-1"); err != nil {
		t.Fatalf("first CreateUser returned error: %v", err)
	}
	if _, err := repo.CreateUser(ctx, "alice", "hash-2"); !errors.Is(err, ErrDuplicateLogin) {
		t.Errorf("second CreateUser error = %v; want ErrDuplicateLogin", err)
	}
}

// Concurrent registrations of one login must produce exactly one record.
func TestMemoryUserRepository_ConcurrentSameLogin(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	const workers = 16
	var created atomic.Int32
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			if _, err := repo.CreateUser(ctx, "race", "hash"); err == nil {
				created.Add(1)
			}
		}()
	}
	wg.Wait()

	if got := created.Load(); got != 1 {
		t.Errorf("%d registrations succeeded for one login; want exactly 1", got)
	}
}
