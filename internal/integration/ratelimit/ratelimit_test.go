package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/lifetracker/backend/internal/application/adapter"
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

func TestMemoryStore(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	store := NewMemoryStore(clock)
	runStoreContract(t, store, func(d time.Duration) { clock.now = clock.now.Add(d) })

	// Cleanup drops expired keys only
	ctx := context.Background()
	if err := store.Reset(ctx, "10.0.0.2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, _, _ = store.Increment(ctx, "old", time.Second)
	_, _, _ = store.Increment(ctx, "fresh", time.Hour)
	clock.now = clock.now.Add(2 * time.Second)
	if err := store.Cleanup(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.Len() != 1 {
		t.Errorf("expected 1 live key, got %d", store.Len())
	}
}

func TestRedisStore(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	clock := &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	store := NewRedisStore(client, clock)
	runStoreContract(t, store, func(d time.Duration) {
		clock.now = clock.now.Add(d)
		mr.FastForward(d)
	})

	if !mr.Exists(keyPrefix + "10.0.0.2") {
		t.Error("expected the key to be namespaced")
	}
}

// runStoreContract exercises the behaviour every attempt store shares.
func runStoreContract(t *testing.T, store adapter.AttemptStore, advance func(time.Duration)) {
	t.Helper()
	ctx := context.Background()

	count, _, err := store.Get(ctx, "10.0.0.1")
	if err != nil || count != 0 {
		t.Fatalf("expected empty counter, got %d (%v)", count, err)
	}

	var resetAt time.Time
	for want := 1; want <= 3; want++ {
		count, resetAt, err = store.Increment(ctx, "10.0.0.1", time.Minute)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if count != want {
			t.Errorf("expected count %d, got %d", want, count)
		}
	}

	advance(20 * time.Second)
	count, gotReset, err := store.Get(ctx, "10.0.0.1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 3 {
		t.Errorf("expected count 3, got %d", count)
	}
	if !gotReset.Equal(resetAt) {
		t.Errorf("expected window to reset at %s, got %s", resetAt, gotReset)
	}

	// Another key is independent
	if _, _, err := store.Increment(ctx, "10.0.0.2", time.Minute); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The window expires
	advance(41 * time.Second)
	count, _, err = store.Get(ctx, "10.0.0.1")
	if err != nil || count != 0 {
		t.Errorf("expected expired counter, got %d (%v)", count, err)
	}

	count, _, err = store.Increment(ctx, "10.0.0.1", time.Minute)
	if err != nil || count != 1 {
		t.Errorf("expected a fresh window, got %d (%v)", count, err)
	}

	if err := store.Reset(ctx, "10.0.0.1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	count, _, err = store.Get(ctx, "10.0.0.1")
	if err != nil || count != 0 {
		t.Errorf("expected reset counter, got %d (%v)", count, err)
	}
}
