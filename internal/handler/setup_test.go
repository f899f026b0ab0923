package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/popeskul/crm-comms/internal/api"
	"github.com/popeskul/crm-comms/internal/handler"
	"github.com/popeskul/crm-comms/internal/service"
	servicemocks "github.com/popeskul/crm-comms/internal/service/mocks"
)

type serviceMocks struct {
	thread   *servicemocks.MockThreadService
	template *servicemocks.MockTemplateService
	outbox   *servicemocks.MockOutboxService
	sla      *servicemocks.MockSLAService
	reminder *servicemocks.MockReminderService
	webhook  *servicemocks.MockWebhookService
	worker   *servicemocks.MockWorkerService
	health   *servicemocks.MockHealthService
}

// newTestServer returns the generated router wired to mocked services.
func newTestServer(t *testing.T) (http.Handler, *serviceMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &serviceMocks{
		thread:   servicemocks.NewMockThreadService(ctrl),
		template: servicemocks.NewMockTemplateService(ctrl),
		outbox:   servicemocks.NewMockOutboxService(ctrl),
		sla:      servicemocks.NewMockSLAService(ctrl),
		reminder: servicemocks.NewMockReminderService(ctrl),
		webhook:  servicemocks.NewMockWebhookService(ctrl),
		worker:   servicemocks.NewMockWorkerService(ctrl),
		health:   servicemocks.NewMockHealthService(ctrl),
	}

	svc := &service.Service{
		Thread:   m.thread,
		Template: m.template,
		Outbox:   m.outbox,
		SLA:      m.sla,
		Reminder: m.reminder,
		Webhook:  m.webhook,
		Worker:   m.worker,
		Health:   m.health,
	}

	return api.Handler(handler.NewHandler(svc, zap.NewNop())), m
}

func doRequest(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func strPtr(s string) *string {
	return &s
}
