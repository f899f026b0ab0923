package gateway

import (
	"context"
	"fmt"

	"github.com/popeskul/crm-comms/internal/apperrors"
	"github.com/popeskul/crm-comms/internal/models"
)

// Registry is the channel -> gateway lookup table.
type Registry struct {
	gateways map[models.Channel]Gateway
}

func NewRegistry(gateways ...Gateway) *Registry {
	r := &Registry{gateways: make(map[models.Channel]Gateway, len(gateways))}
	for _, g := range gateways {
		r.gateways[g.Channel()] = g
	}
	return r
}

// Send dispatches to the channel's gateway. Every failure, including a
// missing gateway, comes back as *apperrors.GatewaySendError.
func (r *Registry) Send(ctx context.Context, channel models.Channel, to string, content Content) (*Result, error) {
	g, ok := r.gateways[channel]
	if !ok {
		return nil, &apperrors.GatewaySendError{Channel: string(channel), Err: fmt.Errorf("no gateway configured")}
	}

	res, err := g.Send(ctx, to, content)
	if err != nil {
		return nil, &apperrors.GatewaySendError{Channel: string(channel), Err: err}
	}
	return res, nil
}

type stateReporter interface {
	State() string
}

func (r *Registry) States() map[models.Channel]string {
	states := make(map[models.Channel]string, len(r.gateways))
	for ch, g := range r.gateways {
		if sr, ok := g.(stateReporter); ok {
			states[ch] = sr.State()
		}
	}
	return states
}
