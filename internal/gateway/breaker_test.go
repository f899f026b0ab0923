package gateway_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/popeskul/crm-comms/internal/config"
	"github.com/popeskul/crm-comms/internal/gateway"
	"github.com/popeskul/crm-comms/internal/models"
)

func breakerConfig() config.CircuitBreakerConfig {
	return config.CircuitBreakerConfig{
		MaxRequests:      1,
		Interval:         60,
		Timeout:          60,
		FailureRatio:     0.5,
		ConsecutiveFails: 3,
	}
}

func TestBreaker_Execute(t *testing.T) {
	tests := []struct {
		name      string
		failWith  error
		wantState string
	}{
		{
			name:      "transport errors trip",
			failWith:  errors.New("connection refused"),
			wantState: gateway.StateOpen,
		},
		{
			name:      "provider 5xx trips",
			failWith:  &gateway.StatusError{Code: 503},
			wantState: gateway.StateOpen,
		},
		{
			name:      "provider throttling trips",
			failWith:  &gateway.StatusError{Code: 429},
			wantState: gateway.StateOpen,
		},
		{
			name:      "rejected recipient does not trip",
			failWith:  &gateway.StatusError{Code: 400},
			wantState: gateway.StateClosed,
		},
		{
			name:      "caller cancellation does not trip",
			failWith:  context.Canceled,
			wantState: gateway.StateClosed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := gateway.NewBreaker(models.ChannelSMS, breakerConfig(), zap.NewNop())

			for i := 0; i < 4; i++ {
				err := b.Execute(context.Background(), func(context.Context) error { return tt.failWith })
				require.Error(t, err)
			}
			assert.Equal(t, tt.wantState, b.State())

			calls := 0
			err := b.Execute(context.Background(), func(context.Context) error {
				calls++
				return nil
			})
			if tt.wantState == gateway.StateOpen {
				assert.ErrorIs(t, err, gateway.ErrCircuitOpen)
				assert.Contains(t, err.Error(), "sms")
				assert.Zero(t, calls)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, 1, calls)
		})
	}
}

func TestBreaker_Execute_CancelledBeforeCall(t *testing.T) {
	b := gateway.NewBreaker(models.ChannelEmail, breakerConfig(), zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := b.Execute(ctx, func(context.Context) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)

	requests, failures := b.Counts()
	assert.Zero(t, requests)
	assert.Zero(t, failures)
}

func TestBreaker_RecoversThroughHalfOpen(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	cfg := breakerConfig()
	cfg.Timeout = 1
	b := gateway.NewBreaker(models.ChannelVoice, cfg, zap.New(core))

	for i := 0; i < 3; i++ {
		_ = b.Execute(context.Background(), func(context.Context) error { return errors.New("down") })
	}
	require.Equal(t, gateway.StateOpen, b.State())

	time.Sleep(1100 * time.Millisecond)
	assert.Equal(t, gateway.StateHalfOpen, b.State())

	require.NoError(t, b.Execute(context.Background(), func(context.Context) error { return nil }))
	assert.Equal(t, gateway.StateClosed, b.State())

	changes := logs.FilterMessage("Gateway breaker state changed").All()
	require.Len(t, changes, 3)
	assert.Equal(t, zapcore.WarnLevel, changes[0].Level)
	for _, entry := range changes {
		assert.Equal(t, "voice", entry.ContextMap()["channel"])
	}
	assert.Equal(t, "closed", changes[2].ContextMap()["to"])
}

func TestBreaker_Counts(t *testing.T) {
	cfg := breakerConfig()
	cfg.ConsecutiveFails = 10
	b := gateway.NewBreaker(models.ChannelSMS, cfg, zap.NewNop())

	outcomes := []error{nil, errors.New("timeout"), &gateway.StatusError{Code: 404}, nil, &gateway.StatusError{Code: 500}}
	for _, outcome := range outcomes {
		_ = b.Execute(context.Background(), func(context.Context) error { return outcome })
	}

	requests, failures := b.Counts()
	assert.Equal(t, uint32(5), requests)
	assert.Equal(t, uint32(2), failures)
}
