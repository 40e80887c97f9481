package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// AttemptStore tracks failed login attempts per key within a rolling window.
type AttemptStore interface {
	// RecordFailure bumps the failure counter and returns the new total.
	RecordFailure(ctx context.Context, key string, window time.Duration) (int64, error)
	Failures(ctx context.Context, key string) (int64, error)
	Reset(ctx context.Context, key string) error
}

// LoginThrottle rejects login attempts once an email/IP pair accumulates too
// many recent failures.
type LoginThrottle struct {
	store       AttemptStore
	maxFailures int64
	window      time.Duration
}

// NewLoginThrottle builds a throttle with the configured limits.
func NewLoginThrottle(store AttemptStore, maxFailures int, window time.Duration) *LoginThrottle {
	if maxFailures <= 0 {
		maxFailures = 5
	}
	if window <= 0 {
		window = 5 * time.Minute
	}
	return &LoginThrottle{store: store, maxFailures: int64(maxFailures), window: window}
}

// Allow reports whether a login attempt for the key may proceed. Store
// errors fail open: an unreachable counter must not lock everyone out.
func (t *LoginThrottle) Allow(ctx context.Context, email, ip string) bool {
	if t == nil || t.store == nil {
		return true
	}
	count, err := t.store.Failures(ctx, throttleKey(email, ip))
	if err != nil {
		return true
	}
	return count < t.maxFailures
}

// RecordFailure notes one failed attempt.
func (t *LoginThrottle) RecordFailure(ctx context.Context, email, ip string) {
	if t == nil || t.store == nil {
		return
	}
	_, _ = t.store.RecordFailure(ctx, throttleKey(email, ip), t.window)
}

// RecordSuccess clears the failure counter.
func (t *LoginThrottle) RecordSuccess(ctx context.Context, email, ip string) {
	if t == nil || t.store == nil {
		return
	}
	_ = t.store.Reset(ctx, throttleKey(email, ip))
}

func throttleKey(email, ip string) string {
	return fmt.Sprintf("login_failures:%s:%s", strings.ToLower(email), ip)
}

// redisAttemptStore backs AttemptStore with Redis counters.
type redisAttemptStore struct {
	client *redis.Client
}

// NewRedisAttemptStore wraps a redis client as an AttemptStore.
func NewRedisAttemptStore(client *redis.Client) AttemptStore {
	return &redisAttemptStore{client: client}
}

func (s *redisAttemptStore) RecordFailure(ctx context.Context, key string, window time.Duration) (int64, error) {
	count, err := s.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if count == 1 {
		_ = s.client.Expire(ctx, key, window).Err()
	}
	return count, nil
}

func (s *redisAttemptStore) Failures(ctx context.Context, key string) (int64, error) {
	count, err := s.client.Get(ctx, key).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (s *redisAttemptStore) Reset(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}
