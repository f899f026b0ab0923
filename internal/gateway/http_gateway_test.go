package gateway_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/popeskul/crm-comms/internal/config"
	"github.com/popeskul/crm-comms/internal/gateway"
	"github.com/popeskul/crm-comms/internal/models"
)

func gatewayConfig(url string) config.GatewayConfig {
	return config.GatewayConfig{
		URL:     url,
		AuthKey: "secret",
		From:    "+15550000",
		Timeout: 5,
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxRequests:      3,
			Interval:         60,
			Timeout:          60,
			FailureRatio:     0.5,
			ConsecutiveFails: 3,
		},
	}
}

func TestHTTPGateway_Send(t *testing.T) {
	subject := "Hello"

	tests := []struct {
		name       string
		newGateway func(config.GatewayConfig, *zap.Logger) *gateway.HTTPGateway
		content    gateway.Content
		response   string
		status     int
		wantID     string
		wantErr    string
		checkBody  func(t *testing.T, body map[string]any)
	}{
		{
			name:       "sms",
			newGateway: gateway.NewSMSGateway,
			content:    gateway.Content{Body: "hi"},
			response:   `{"message":"Accepted","messageId":"sms-1"}`,
			status:     http.StatusAccepted,
			wantID:     "sms-1",
			checkBody: func(t *testing.T, body map[string]any) {
				assert.Equal(t, "+15551234", body["to"])
				assert.Equal(t, "+15550000", body["from"])
				assert.Equal(t, "hi", body["body"])
			},
		},
		{
			name:       "email carries subject",
			newGateway: gateway.NewEmailGateway,
			content:    gateway.Content{Subject: &subject, Body: "<p>hi</p>"},
			response:   `{"messageId":"em-1"}`,
			status:     http.StatusOK,
			wantID:     "em-1",
			checkBody: func(t *testing.T, body map[string]any) {
				assert.Equal(t, "Hello", body["subject"])
				assert.Equal(t, "<p>hi</p>", body["body"])
			},
		},
		{
			name:       "voice returns call id",
			newGateway: gateway.NewVoiceGateway,
			content:    gateway.Content{Body: "your appointment"},
			response:   `{"callId":"call-9"}`,
			status:     http.StatusOK,
			wantID:     "call-9",
			checkBody: func(t *testing.T, body map[string]any) {
				assert.Equal(t, "your appointment", body["message"])
			},
		},
		{
			name:       "accepted without id gets a local id",
			newGateway: gateway.NewSMSGateway,
			content:    gateway.Content{Body: "hi"},
			response:   `not json`,
			status:     http.StatusOK,
			wantID:     "local-",
		},
		{
			name:       "provider error",
			newGateway: gateway.NewSMSGateway,
			content:    gateway.Content{Body: "hi"},
			response:   `{"error":"bad"}`,
			status:     http.StatusInternalServerError,
			wantErr:    "unexpected status code: 500",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "secret", r.Header.Get("x-ins-auth-key"))
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

				var body map[string]any
				require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				if tt.checkBody != nil {
					tt.checkBody(t, body)
				}

				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.response))
			}))
			defer server.Close()

			g := tt.newGateway(gatewayConfig(server.URL), zap.NewNop())
			res, err := g.Send(context.Background(), "+15551234", tt.content)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(res.ProviderMessageID, tt.wantID), res.ProviderMessageID)
		})
	}
}

func TestHTTPGateway_CircuitOpens(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	g := gateway.NewSMSGateway(gatewayConfig(server.URL), zap.NewNop())
	assert.Equal(t, models.ChannelSMS, g.Channel())

	for i := 0; i < 5; i++ {
		_, _ = g.Send(context.Background(), "+1", gateway.Content{Body: "x"})
	}

	assert.Equal(t, gateway.StateOpen, g.State())
	assert.Equal(t, 3, calls)

	_, err := g.Send(context.Background(), "+1", gateway.Content{Body: "x"})
	assert.ErrorIs(t, err, gateway.ErrCircuitOpen)
}

func TestHTTPGateway_RejectedRecipientsKeepCircuitClosed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer server.Close()

	g := gateway.NewSMSGateway(gatewayConfig(server.URL), zap.NewNop())
	for i := 0; i < 5; i++ {
		_, err := g.Send(context.Background(), "+1", gateway.Content{Body: "x"})

		var statusErr *gateway.StatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, http.StatusUnprocessableEntity, statusErr.Code)
	}
	assert.Equal(t, gateway.StateClosed, g.State())
}
