// Package cooldown enforces per-key send cooldowns.
package cooldown

import (
	"context"
	"time"
)

// Limiter admits at most one action per key per window. Enforce is
// atomic: of two concurrent callers on an expired or unset key exactly
// one succeeds; the other gets *apperrors.CooldownActiveError.
type Limiter interface {
	Enforce(ctx context.Context, key string, window time.Duration) error
	// Remaining reports how long key stays locked, zero when it is free.
	Remaining(ctx context.Context, key string) (time.Duration, error)
}

// Key builds the cooldown key for a send. The window is shared by all
// automated content to a contact on one channel, whatever the template.
func Key(prefix, contactID, channel string) string {
	return prefix + contactID + ":" + channel
}
