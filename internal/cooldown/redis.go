package cooldown

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/popeskul/crm-comms/internal/apperrors"
)

// RedisLimiter stores cooldowns as expiring keys. The key's TTL is the
// remaining window, so expiry needs no sweeping.
type RedisLimiter struct {
	client *redis.Client
	now    func() time.Time
}

func NewRedisLimiter(client *redis.Client) *RedisLimiter {
	return &RedisLimiter{client: client, now: time.Now}
}

func (l *RedisLimiter) Enforce(ctx context.Context, key string, window time.Duration) error {
	if window <= 0 {
		return nil
	}

	ok, err := l.client.SetNX(ctx, key, strconv.FormatInt(l.now().UnixMilli(), 10), window).Result()
	if err != nil {
		return fmt.Errorf("failed to set cooldown: %w", err)
	}
	if ok {
		return nil
	}

	remaining, err := l.Remaining(ctx, key)
	if err != nil {
		return err
	}
	if remaining <= 0 {
		// Expired between SETNX and PTTL; keep the caller out for this
		// attempt rather than racing a second SETNX.
		remaining = time.Millisecond
	}
	return &apperrors.CooldownActiveError{Key: key, RetryAfter: remaining}
}

func (l *RedisLimiter) Remaining(ctx context.Context, key string) (time.Duration, error) {
	ttl, err := l.client.PTTL(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to read cooldown ttl: %w", err)
	}
	// -2 means no key, -1 means no expiry; neither should block.
	if ttl < 0 {
		return 0, nil
	}
	return ttl, nil
}
