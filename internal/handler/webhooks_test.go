package handler_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/popeskul/crm-comms/internal/api"
	"github.com/popeskul/crm-comms/internal/models"
	"github.com/popeskul/crm-comms/internal/service"
)

func TestWebhooksAlwaysAcknowledge(t *testing.T) {
	tests := []struct {
		name  string
		path  string
		body  any
		setup func(m *serviceMocks)
	}{
		{
			name: "inbound sms",
			path: "/webhooks/sms/inbound",
			body: api.InboundSmsWebhook{From: "+15550001", To: "+15559999", Body: "STOP", MessageId: strPtr("pm1")},
			setup: func(m *serviceMocks) {
				m.webhook.EXPECT().HandleInboundSMS(gomock.Any(), service.InboundSMS{
					From: "+15550001", To: "+15559999", Body: "STOP", ProviderMessageID: strPtr("pm1"),
				}).Return(nil)
			},
		},
		{
			name: "inbound sms from unknown number",
			path: "/webhooks/sms/inbound",
			body: api.InboundSmsWebhook{From: "+10000000", Body: "hi"},
			setup: func(m *serviceMocks) {
				m.webhook.EXPECT().HandleInboundSMS(gomock.Any(), gomock.Any()).Return(errors.New("contact not found"))
			},
		},
		{
			name: "delivery status",
			path: "/webhooks/delivery-status",
			body: api.DeliveryStatusWebhook{MessageId: "pm1", Status: "delivered"},
			setup: func(m *serviceMocks) {
				m.webhook.EXPECT().HandleDeliveryStatus(gomock.Any(), "pm1", models.DeliveryStatusDelivered).Return(nil)
			},
		},
		{
			name: "voice status",
			path: "/webhooks/voice/status",
			body: api.VoiceStatusWebhook{CallId: "call1", Status: "completed"},
			setup: func(m *serviceMocks) {
				m.webhook.EXPECT().HandleVoiceStatus(gomock.Any(), "call1", "completed").Return(nil)
			},
		},
		{
			name:  "malformed payload",
			path:  "/webhooks/voice/status",
			body:  "{oops",
			setup: func(m *serviceMocks) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, m := newTestServer(t)
			tt.setup(m)

			w := doRequest(t, srv, http.MethodPost, tt.path, tt.body)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.True(t, decodeBody[api.AckResponse](t, w).Received)
		})
	}
}
