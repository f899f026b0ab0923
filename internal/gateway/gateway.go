// Package gateway is the boundary to the external SMS, email and voice
// providers.
package gateway

import (
	"context"

	"github.com/popeskul/crm-comms/internal/models"
)

//go:generate mockgen -source=gateway.go -destination=mocks/mock_gateway.go -package=mocks

// Content is what a gateway transmits. Subject is only used by email.
type Content struct {
	Subject *string
	Body    string
}

// Result carries the provider's id for the message or call.
type Result struct {
	ProviderMessageID string
}

// Gateway sends content over one channel.
type Gateway interface {
	Channel() models.Channel
	Send(ctx context.Context, to string, content Content) (*Result, error)
}

// Sender routes a send to the gateway for its channel.
type Sender interface {
	Send(ctx context.Context, channel models.Channel, to string, content Content) (*Result, error)
	// States reports each gateway's circuit breaker state by channel.
	States() map[models.Channel]string
}
