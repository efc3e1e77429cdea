package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/lifetracker/backend/internal/application/adapter"
)

const keyPrefix = "lifetracker:login_attempts:"

// RedisStore keeps attempt counters in Redis so they survive restarts and
// are shared between instances. Keys expire with their window.
type RedisStore struct {
	client redis.UniversalClient
	clock  adapter.Clock
}

// NewRedisStore creates a new Redis backed attempt store.
func NewRedisStore(client redis.UniversalClient, clock adapter.Clock) *RedisStore {
	return &RedisStore{
		client: client,
		clock:  clock,
	}
}

// Increment records one failed attempt. The window starts at the first failure.
func (s *RedisStore) Increment(ctx context.Context, key string, window time.Duration) (int, time.Time, error) {
	redisKey := keyPrefix + key

	count, err := s.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("failed to increment attempts: %w", err)
	}
	if count == 1 {
		if err := s.client.PExpire(ctx, redisKey, window).Err(); err != nil {
			return 0, time.Time{}, fmt.Errorf("failed to set attempts expiry: %w", err)
		}
		return 1, s.clock.Now().Add(window), nil
	}

	ttl, err := s.client.PTTL(ctx, redisKey).Result()
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("failed to read attempts expiry: %w", err)
	}
	if ttl < 0 {
		// Expiry lost between calls; restart the window
		if err := s.client.PExpire(ctx, redisKey, window).Err(); err != nil {
			return 0, time.Time{}, fmt.Errorf("failed to set attempts expiry: %w", err)
		}
		ttl = window
	}

	return int(count), s.clock.Now().Add(ttl), nil
}

// Get returns the live counter for key.
func (s *RedisStore) Get(ctx context.Context, key string) (int, time.Time, error) {
	redisKey := keyPrefix + key

	count, err := s.client.Get(ctx, redisKey).Int()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, time.Time{}, nil
		}
		return 0, time.Time{}, fmt.Errorf("failed to read attempts: %w", err)
	}

	ttl, err := s.client.PTTL(ctx, redisKey).Result()
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("failed to read attempts expiry: %w", err)
	}
	if ttl < 0 {
		ttl = 0
	}

	return count, s.clock.Now().Add(ttl), nil
}

// Reset clears the counter for key.
func (s *RedisStore) Reset(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, keyPrefix+key).Err(); err != nil {
		return fmt.Errorf("failed to reset attempts: %w", err)
	}
	return nil
}

// Cleanup is a no-op: Redis expires the keys itself.
func (s *RedisStore) Cleanup(_ context.Context) error {
	return nil
}
