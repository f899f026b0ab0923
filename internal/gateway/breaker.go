package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"github.com/popeskul/crm-comms/internal/config"
	"github.com/popeskul/crm-comms/internal/metrics"
	"github.com/popeskul/crm-comms/internal/models"
)

// Breaker states as reported on the health endpoint.
const (
	StateClosed   = "closed"
	StateHalfOpen = "half-open"
	StateOpen     = "open"
)

// ErrCircuitOpen is returned without contacting the provider while the
// channel's breaker is open or its half-open trial quota is used up.
var ErrCircuitOpen = errors.New("gateway unavailable: circuit open")

// StatusError is a non-2xx provider answer.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code: %d", e.Code)
}

// providerFault reports whether err says the provider itself is
// unhealthy. A 4xx rejects one request (bad number, bad address) and a
// cancelled caller says nothing about the provider, so neither counts.
func providerFault(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return false
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Code >= http.StatusInternalServerError || statusErr.Code == http.StatusTooManyRequests
	}
	return true
}

// Breaker guards the provider of one channel.
type Breaker struct {
	channel models.Channel
	cb      *gobreaker.CircuitBreaker
	logger  *zap.Logger
}

func NewBreaker(channel models.Channel, cfg config.CircuitBreakerConfig, logger *zap.Logger) *Breaker {
	b := &Breaker{channel: channel, logger: logger.With(zap.String("channel", string(channel)))}
	b.cb = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        string(channel) + "-gateway",
		MaxRequests: cfg.MaxRequests,
		Interval:    time.Duration(cfg.Interval) * time.Second,
		Timeout:     time.Duration(cfg.Timeout) * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.ConsecutiveFails {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= cfg.FailureRatio
		},
		OnStateChange: b.onStateChange,
		IsSuccessful: func(err error) bool {
			return !providerFault(err)
		},
	})
	metrics.GatewayBreakerState.WithLabelValues(string(channel)).Set(stateValue(gobreaker.StateClosed))
	return b
}

// Execute runs fn unless the breaker rejects the call up front.
func (b *Breaker) Execute(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := b.cb.Execute(func() (any, error) {
		return nil, fn(ctx)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		metrics.GatewayBreakerRejections.WithLabelValues(string(b.channel)).Inc()
		return fmt.Errorf("%s: %w", b.channel, ErrCircuitOpen)
	}
	return err
}

func (b *Breaker) State() string {
	switch b.cb.State() {
	case gobreaker.StateHalfOpen:
		return StateHalfOpen
	case gobreaker.StateOpen:
		return StateOpen
	default:
		return StateClosed
	}
}

// Counts returns the calls and provider faults in the current interval.
func (b *Breaker) Counts() (requests, failures uint32) {
	counts := b.cb.Counts()
	return counts.Requests, counts.TotalFailures
}

func (b *Breaker) onStateChange(_ string, from, to gobreaker.State) {
	metrics.GatewayBreakerState.WithLabelValues(string(b.channel)).Set(stateValue(to))

	log := b.logger.Info
	if to == gobreaker.StateOpen {
		log = b.logger.Warn
	}
	log("Gateway breaker state changed",
		zap.String("from", from.String()),
		zap.String("to", to.String()))
}

func stateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}
