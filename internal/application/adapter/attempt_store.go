package adapter

import (
	"context"
	"time"
)

// AttemptStore counts failed login attempts per client inside a fixed window.
type AttemptStore interface {
	// Increment records one failed attempt for key and returns the new count
	// and when the window resets.
	Increment(ctx context.Context, key string, window time.Duration) (int, time.Time, error)

	// Get returns the current count for key and when its window resets.
	// An expired or unknown key yields a zero count.
	Get(ctx context.Context, key string) (int, time.Time, error)

	// Reset clears the counter for key.
	Reset(ctx context.Context, key string) error

	// Cleanup drops expired counters.
	Cleanup(ctx context.Context) error
}
