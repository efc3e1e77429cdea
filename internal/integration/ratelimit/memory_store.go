// Package ratelimit stores failed login attempts per client.
package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/lifetracker/backend/internal/application/adapter"
)

// attemptEntry tracks the failed attempts of a single key.
type attemptEntry struct {
	attempts  int
	resetTime time.Time
}

// MemoryStore keeps attempt counters in process memory.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]*attemptEntry
	clock   adapter.Clock
}

// NewMemoryStore creates a new in-memory attempt store.
func NewMemoryStore(clock adapter.Clock) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]*attemptEntry),
		clock:   clock,
	}
}

// Increment records one failed attempt. The window starts at the first failure.
func (s *MemoryStore) Increment(_ context.Context, key string, window time.Duration) (int, time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()

	entry, exists := s.entries[key]
	if !exists || !now.Before(entry.resetTime) {
		// First failure or the window has expired
		entry = &attemptEntry{resetTime: now.Add(window)}
		s.entries[key] = entry
	}
	entry.attempts++

	return entry.attempts, entry.resetTime, nil
}

// Get returns the live counter for key.
func (s *MemoryStore) Get(_ context.Context, key string) (int, time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, exists := s.entries[key]
	if !exists || !s.clock.Now().Before(entry.resetTime) {
		return 0, time.Time{}, nil
	}
	return entry.attempts, entry.resetTime, nil
}

// Reset clears the counter for key.
func (s *MemoryStore) Reset(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return nil
}

// Cleanup removes expired entries.
func (s *MemoryStore) Cleanup(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	for key, entry := range s.entries {
		if !now.Before(entry.resetTime) {
			delete(s.entries, key)
		}
	}
	return nil
}

// Len returns the number of tracked keys.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
