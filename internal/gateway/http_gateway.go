package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/popeskul/crm-comms/internal/config"
	"github.com/popeskul/crm-comms/internal/metrics"
	"github.com/popeskul/crm-comms/internal/models"
)

const authHeader = "x-ins-auth-key"

// payloadFunc builds the provider request body for one channel.
type payloadFunc func(from, to string, content Content) any

type smsRequest struct {
	To   string `json:"to"`
	From string `json:"from,omitempty"`
	Body string `json:"body"`
}

type emailRequest struct {
	To      string `json:"to"`
	From    string `json:"from,omitempty"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

type voiceRequest struct {
	To      string `json:"to"`
	From    string `json:"from,omitempty"`
	Message string `json:"message"`
}

type providerResponse struct {
	Message   string `json:"message"`
	MessageID string `json:"messageId"`
	CallID    string `json:"callId"`
}

// HTTPGateway posts JSON to a provider endpoint through a circuit breaker.
type HTTPGateway struct {
	channel    models.Channel
	cfg        config.GatewayConfig
	payload    payloadFunc
	httpClient *http.Client
	breaker    *Breaker
	logger     *zap.Logger
}

func NewSMSGateway(cfg config.GatewayConfig, logger *zap.Logger) *HTTPGateway {
	return newHTTPGateway(models.ChannelSMS, cfg, logger, func(from, to string, c Content) any {
		return smsRequest{To: to, From: from, Body: c.Body}
	})
}

func NewEmailGateway(cfg config.GatewayConfig, logger *zap.Logger) *HTTPGateway {
	return newHTTPGateway(models.ChannelEmail, cfg, logger, func(from, to string, c Content) any {
		req := emailRequest{To: to, From: from, Body: c.Body}
		if c.Subject != nil {
			req.Subject = *c.Subject
		}
		return req
	})
}

func NewVoiceGateway(cfg config.GatewayConfig, logger *zap.Logger) *HTTPGateway {
	return newHTTPGateway(models.ChannelVoice, cfg, logger, func(from, to string, c Content) any {
		return voiceRequest{To: to, From: from, Message: c.Body}
	})
}

func newHTTPGateway(channel models.Channel, cfg config.GatewayConfig, logger *zap.Logger, payload payloadFunc) *HTTPGateway {
	return &HTTPGateway{
		channel: channel,
		cfg:     cfg,
		payload: payload,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
		breaker: NewBreaker(channel, cfg.CircuitBreaker, logger),
		logger:  logger.With(zap.String("channel", string(channel))),
	}
}

func (g *HTTPGateway) Channel() models.Channel {
	return g.channel
}

// State returns the circuit breaker state.
func (g *HTTPGateway) State() string {
	return g.breaker.State()
}

// Send posts content to the provider. Any non-2xx answer is an error.
func (g *HTTPGateway) Send(ctx context.Context, to string, content Content) (*Result, error) {
	start := time.Now()
	var result *Result

	err := g.breaker.Execute(ctx, func(ctx context.Context) error {
		jsonData, err := json.Marshal(g.payload(g.cfg.From, to, content))
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.URL, bytes.NewBuffer(jsonData))
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}

		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(authHeader, g.cfg.AuthKey)

		resp, err := g.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("failed to send request: %w", err)
		}
		defer func() {
			if err := resp.Body.Close(); err != nil {
				g.logger.Warn("Failed to close response body", zap.Error(err))
			}
		}()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return &StatusError{Code: resp.StatusCode}
		}

		var providerResp providerResponse
		if err := json.NewDecoder(resp.Body).Decode(&providerResp); err != nil {
			g.logger.Warn("Provider response not decodable", zap.Int("status", resp.StatusCode), zap.Error(err))
		}

		id := providerResp.MessageID
		if id == "" {
			id = providerResp.CallID
		}
		if id == "" {
			// Accepted without an id; keep a local one so the message
			// row is still addressable.
			id = "local-" + uuid.New().String()
		}
		result = &Result{ProviderMessageID: id}
		return nil
	})

	metrics.GatewayLatency.WithLabelValues(string(g.channel)).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.GatewaySends.WithLabelValues(string(g.channel), "error").Inc()
		requests, failures := g.breaker.Counts()
		g.logger.Error("Gateway send failed",
			zap.Error(err),
			zap.String("circuitBreakerState", g.breaker.State()),
			zap.Uint32("totalRequests", requests),
			zap.Uint32("totalFailures", failures))
		return nil, err
	}

	metrics.GatewaySends.WithLabelValues(string(g.channel), "ok").Inc()
	g.logger.Info("Gateway send succeeded", zap.String("providerMessageID", result.ProviderMessageID))
	return result, nil
}
