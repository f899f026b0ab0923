// Package events publishes status events for other services to consume.
package events

import (
	"context"
	"time"
)

//go:generate mockgen -source=events.go -destination=mocks/mock_events.go -package=mocks

// Event types.
const (
	TypeCallStatus     = "call.status"
	TypeDeliveryStatus = "message.delivery_status"
	TypeSLABreached    = "sla.breached"
)

// Event is the JSON envelope every backend publishes.
type Event struct {
	Type       string            `json:"type"`
	OccurredAt time.Time         `json:"occurred_at"`
	Attributes map[string]string `json:"attributes"`
}

// Publisher delivers events. Publish failures are reported to the caller
// but never retried here.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// New builds an event with the current time.
func New(eventType string, attrs map[string]string) Event {
	return Event{Type: eventType, OccurredAt: time.Now().UTC(), Attributes: attrs}
}

// NopPublisher drops events.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }

func (NopPublisher) Close() error { return nil }
