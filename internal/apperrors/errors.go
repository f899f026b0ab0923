// Package apperrors defines the caller-facing error taxonomy shared by
// services and the HTTP layer.
package apperrors

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrValidation     = errors.New("validation failed")
	ErrNotFound       = errors.New("not found")
	ErrCooldownActive = errors.New("cooldown active")
	ErrOptOut         = errors.New("contact opted out")
	ErrConflict       = errors.New("status conflict")
	ErrGatewaySend    = errors.New("gateway send failed")
	ErrEmptyTemplate  = errors.New("template has no content")
)

// Validation wraps ErrValidation with a formatted detail.
func Validation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// NotFound wraps ErrNotFound for the named entity.
func NotFound(entity, id string) error {
	return fmt.Errorf("%w: %s %s", ErrNotFound, entity, id)
}

// Conflict wraps ErrConflict for a failed status guard.
func Conflict(entity, id, status string) error {
	return fmt.Errorf("%w: %s %s is %s", ErrConflict, entity, id, status)
}

// OptOut wraps ErrOptOut for the contact.
func OptOut(contactID string) error {
	return fmt.Errorf("%w: contact %s", ErrOptOut, contactID)
}

// EmptyTemplate wraps ErrEmptyTemplate for the template.
func EmptyTemplate(templateID string) error {
	return fmt.Errorf("%w: template %s", ErrEmptyTemplate, templateID)
}

// CooldownActiveError is returned when a send hits an unexpired cooldown.
type CooldownActiveError struct {
	Key        string
	RetryAfter time.Duration
}

func (e *CooldownActiveError) Error() string {
	return fmt.Sprintf("cooldown active for %s, retry after %s", e.Key, e.RetryAfter)
}

// Is matches ErrCooldownActive.
func (e *CooldownActiveError) Is(target error) bool {
	return target == ErrCooldownActive
}

// GatewaySendError wraps a channel gateway failure.
type GatewaySendError struct {
	Channel string
	Err     error
}

func (e *GatewaySendError) Error() string {
	return fmt.Sprintf("%s gateway send failed: %v", e.Channel, e.Err)
}

func (e *GatewaySendError) Unwrap() error {
	return e.Err
}

// Is matches ErrGatewaySend.
func (e *GatewaySendError) Is(target error) bool {
	return target == ErrGatewaySend
}
