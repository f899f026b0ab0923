package cooldown_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/popeskul/crm-comms/internal/apperrors"
	"github.com/popeskul/crm-comms/internal/cooldown"
)

func setupRedis(t *testing.T) (*redis.Client, func()) {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)

	endpoint, err := container.Endpoint(ctx, "")
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: endpoint})
	require.NoError(t, client.Ping(ctx).Err())

	return client, func() {
		_ = client.Close()
		_ = container.Terminate(ctx)
	}
}

func TestRedisLimiter(t *testing.T) {
	client, cleanup := setupRedis(t)
	defer cleanup()

	ctx := context.Background()
	l := cooldown.NewRedisLimiter(client)

	t.Run("second send within window is rejected", func(t *testing.T) {
		require.NoError(t, l.Enforce(ctx, "cd:a", time.Minute))

		err := l.Enforce(ctx, "cd:a", time.Minute)
		var cdErr *apperrors.CooldownActiveError
		require.True(t, errors.As(err, &cdErr))
		assert.Greater(t, cdErr.RetryAfter, time.Duration(0))
		assert.LessOrEqual(t, cdErr.RetryAfter, time.Minute)

		remaining, err := l.Remaining(ctx, "cd:a")
		require.NoError(t, err)
		assert.Greater(t, remaining, time.Duration(0))
	})

	t.Run("key frees after the window", func(t *testing.T) {
		require.NoError(t, l.Enforce(ctx, "cd:b", 100*time.Millisecond))
		time.Sleep(250 * time.Millisecond)
		assert.NoError(t, l.Enforce(ctx, "cd:b", time.Minute))
	})

	t.Run("unknown key has no remaining time", func(t *testing.T) {
		remaining, err := l.Remaining(ctx, "cd:none")
		require.NoError(t, err)
		assert.Zero(t, remaining)
	})

	t.Run("concurrent callers admit one", func(t *testing.T) {
		var ok int32
		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if l.Enforce(ctx, "cd:race", time.Minute) == nil {
					atomic.AddInt32(&ok, 1)
				}
			}()
		}
		wg.Wait()
		assert.Equal(t, int32(1), ok)
	})
}

func TestRedisLimiter_Disconnected(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "localhost:9999"})
	defer client.Close()

	err := cooldown.NewRedisLimiter(client).Enforce(context.Background(), "k", time.Minute)
	require.Error(t, err)
	assert.False(t, errors.Is(err, apperrors.ErrCooldownActive))
}
