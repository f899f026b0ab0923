package cooldown

import (
	"context"
	"sync"
	"time"

	"github.com/popeskul/crm-comms/internal/apperrors"
)

// MemoryLimiter keeps cooldowns in process. It is only correct for a
// single instance and loses state on restart.
type MemoryLimiter struct {
	mu      sync.Mutex
	expires map[string]time.Time
	now     func() time.Time
}

func NewMemoryLimiter() *MemoryLimiter {
	return NewMemoryLimiterWithClock(time.Now)
}

func NewMemoryLimiterWithClock(now func() time.Time) *MemoryLimiter {
	return &MemoryLimiter{expires: make(map[string]time.Time), now: now}
}

func (l *MemoryLimiter) Enforce(_ context.Context, key string, window time.Duration) error {
	if window <= 0 {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if exp, ok := l.expires[key]; ok && now.Before(exp) {
		return &apperrors.CooldownActiveError{Key: key, RetryAfter: exp.Sub(now)}
	}
	l.expires[key] = now.Add(window)
	return nil
}

func (l *MemoryLimiter) Remaining(_ context.Context, key string) (time.Duration, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	exp, ok := l.expires[key]
	if !ok {
		return 0, nil
	}
	if d := exp.Sub(l.now()); d > 0 {
		return d, nil
	}
	return 0, nil
}

// Prune drops expired keys and returns how many were removed.
func (l *MemoryLimiter) Prune(_ context.Context) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	removed := 0
	for k, exp := range l.expires {
		if !now.Before(exp) {
			delete(l.expires, k)
			removed++
		}
	}
	return removed, nil
}
