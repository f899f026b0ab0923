package apperrors_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/popeskul/crm-comms/internal/apperrors"
)

func TestErrors_Is(t *testing.T) {
	cause := errors.New("connection refused")

	tests := []struct {
		name   string
		err    error
		target error
	}{
		{name: "validation", err: apperrors.Validation("body is required"), target: apperrors.ErrValidation},
		{name: "not found", err: apperrors.NotFound("thread", "t1"), target: apperrors.ErrNotFound},
		{name: "conflict", err: apperrors.Conflict("outbox item", "o1", "sent"), target: apperrors.ErrConflict},
		{name: "opt out", err: apperrors.OptOut("c1"), target: apperrors.ErrOptOut},
		{name: "empty template", err: apperrors.EmptyTemplate("tpl"), target: apperrors.ErrEmptyTemplate},
		{name: "cooldown", err: &apperrors.CooldownActiveError{Key: "c1:sms", RetryAfter: time.Second}, target: apperrors.ErrCooldownActive},
		{name: "gateway", err: &apperrors.GatewaySendError{Channel: "sms", Err: cause}, target: apperrors.ErrGatewaySend},
		{name: "wrapped gateway", err: fmt.Errorf("approve: %w", &apperrors.GatewaySendError{Channel: "sms", Err: cause}), target: apperrors.ErrGatewaySend},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.target)
		})
	}
}

func TestGatewaySendError_Unwrap(t *testing.T) {
	cause := errors.New("timeout")
	err := &apperrors.GatewaySendError{Channel: "email", Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "email gateway send failed: timeout", err.Error())
}

func TestCooldownActiveError_As(t *testing.T) {
	err := fmt.Errorf("send: %w", &apperrors.CooldownActiveError{Key: "c1:sms", RetryAfter: 30 * time.Second})

	var cooldownErr *apperrors.CooldownActiveError
	assert.True(t, errors.As(err, &cooldownErr))
	assert.Equal(t, 30*time.Second, cooldownErr.RetryAfter)
	assert.NotErrorIs(t, err, apperrors.ErrConflict)
}
