package handler_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/popeskul/crm-comms/internal/api"
	"github.com/popeskul/crm-comms/internal/apperrors"
	"github.com/popeskul/crm-comms/internal/middleware"
	"github.com/popeskul/crm-comms/internal/models"
	"github.com/popeskul/crm-comms/internal/scheduler"
	"github.com/popeskul/crm-comms/internal/service"
)

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "validation", err: apperrors.Validation("channel is required"), wantStatus: http.StatusBadRequest, wantCode: "VALIDATION_ERROR"},
		{name: "not found", err: apperrors.NotFound("thread", "t1"), wantStatus: http.StatusNotFound, wantCode: "NOT_FOUND"},
		{name: "conflict", err: apperrors.Conflict("outbox item", "o1", "sent"), wantStatus: http.StatusConflict, wantCode: "STATUS_CONFLICT"},
		{name: "opt out", err: apperrors.OptOut("c1"), wantStatus: http.StatusUnprocessableEntity, wantCode: "CONTACT_OPTED_OUT"},
		{name: "empty template", err: apperrors.EmptyTemplate("tpl1"), wantStatus: http.StatusUnprocessableEntity, wantCode: "EMPTY_TEMPLATE"},
		{
			name:       "gateway",
			err:        &apperrors.GatewaySendError{Channel: "sms", Err: errors.New("503")},
			wantStatus: http.StatusBadGateway,
			wantCode:   "GATEWAY_SEND_FAILED",
		},
		{name: "unexpected", err: errors.New("db exploded"), wantStatus: http.StatusInternalServerError, wantCode: middleware.ErrorCodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, m := newTestServer(t)
			m.thread.EXPECT().GetThread(gomock.Any(), "t1").Return(nil, tt.err)

			w := doRequest(t, srv, http.MethodGet, "/threads/t1", nil)

			assert.Equal(t, tt.wantStatus, w.Code)
			resp := decodeBody[api.ErrorResponse](t, w)
			assert.Equal(t, tt.wantCode, resp.Error)
			assert.NotNil(t, resp.Timestamp)
			if tt.wantStatus == http.StatusInternalServerError {
				assert.Equal(t, "Failed to get thread", resp.Message, "internal details stay in the log")
			}
		})
	}
}

func TestCooldownSetsRetryAfter(t *testing.T) {
	srv, m := newTestServer(t)
	m.outbox.EXPECT().SendMessage(gomock.Any(), gomock.Any()).
		Return(nil, &apperrors.CooldownActiveError{Key: "cooldown:c1:sms", RetryAfter: 1500 * time.Millisecond})

	w := doRequest(t, srv, http.MethodPost, "/messages/send", api.SendMessageRequest{
		ContactId:  "c1",
		Channel:    "sms",
		TemplateId: strPtr("tpl"),
		Origin:     strPtr("automation"),
	})

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "2", w.Header().Get("Retry-After"))
	assert.Equal(t, "COOLDOWN_ACTIVE", decodeBody[api.ErrorResponse](t, w).Error)
}

func TestInvalidJSONBody(t *testing.T) {
	srv, _ := newTestServer(t)

	w := doRequest(t, srv, http.MethodPost, "/threads", "{not json")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_REQUEST", decodeBody[api.ErrorResponse](t, w).Error)
}

func TestInvalidQueryParam(t *testing.T) {
	srv, _ := newTestServer(t)

	w := doRequest(t, srv, http.MethodGet, "/threads?limit=lots", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthCheck(t *testing.T) {
	tests := []struct {
		name       string
		status     api.HealthResponseStatus
		wantStatus int
	}{
		{name: "healthy", status: api.Healthy, wantStatus: http.StatusOK},
		{name: "degraded", status: api.Degraded, wantStatus: http.StatusOK},
		{name: "unhealthy", status: api.Unhealthy, wantStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, m := newTestServer(t)
			m.health.EXPECT().GetHealth(gomock.Any()).Return(&service.HealthStatus{
				Status:         tt.status,
				WorkerStatus:   api.Running,
				DatabaseStatus: api.Connected,
				RedisStatus:    api.Connected,
				Gateways:       map[string]string{"sms": "closed"},
			})

			w := doRequest(t, srv, http.MethodGet, "/health", nil)

			assert.Equal(t, tt.wantStatus, w.Code)
			resp := decodeBody[api.HealthResponse](t, w)
			assert.Equal(t, tt.status, resp.Status)
			assert.Equal(t, "closed", resp.Gateways["sms"])
		})
	}
}

func TestWorkerEndpoints(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		setup      func(m *serviceMocks)
		wantStatus int
	}{
		{
			name:       "start",
			path:       "/worker/start",
			setup:      func(m *serviceMocks) { m.worker.EXPECT().Start().Return(nil) },
			wantStatus: http.StatusOK,
		},
		{
			name:       "start twice",
			path:       "/worker/start",
			setup:      func(m *serviceMocks) { m.worker.EXPECT().Start().Return(scheduler.ErrSchedulerAlreadyRunning) },
			wantStatus: http.StatusConflict,
		},
		{
			name:       "stop when idle",
			path:       "/worker/stop",
			setup:      func(m *serviceMocks) { m.worker.EXPECT().Stop().Return(scheduler.ErrSchedulerNotRunning) },
			wantStatus: http.StatusConflict,
		},
		{
			name:       "stop failure",
			path:       "/worker/stop",
			setup:      func(m *serviceMocks) { m.worker.EXPECT().Stop().Return(fmt.Errorf("boom")) },
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, m := newTestServer(t)
			tt.setup(m)

			w := doRequest(t, srv, http.MethodPost, tt.path, nil)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestThreadEndpoints(t *testing.T) {
	thread := &models.Thread{ID: "t1", ContactID: "c1", Channel: models.ChannelSMS}

	t.Run("list applies paging defaults", func(t *testing.T) {
		srv, m := newTestServer(t)
		m.thread.EXPECT().ListThreads(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, f models.ThreadFilter) ([]*models.Thread, error) {
				assert.Equal(t, "c1", f.ContactID)
				assert.True(t, f.UnreadOnly)
				assert.Equal(t, 100, f.Limit)
				assert.Equal(t, 0, f.Offset)
				return []*models.Thread{thread}, nil
			})

		w := doRequest(t, srv, http.MethodGet, "/threads?contact_id=c1&unread_only=true&limit=500", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decodeBody[api.ThreadListResponse](t, w).Threads, 1)
	})

	t.Run("create", func(t *testing.T) {
		srv, m := newTestServer(t)
		m.thread.EXPECT().GetOrCreateThread(gomock.Any(), "c1", models.ChannelSMS).Return(thread, nil)

		w := doRequest(t, srv, http.MethodPost, "/threads", api.CreateThreadRequest{ContactId: "c1", Channel: "sms"})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "t1", decodeBody[models.Thread](t, w).ID)
	})

	t.Run("append", func(t *testing.T) {
		srv, m := newTestServer(t)
		m.thread.EXPECT().AppendMessage(gomock.Any(), service.AppendMessageInput{
			ThreadID:  "t1",
			Direction: models.DirectionInbound,
			Body:      "hi",
		}).Return(&models.Message{ID: "m1", ThreadID: "t1", Seq: 1}, nil)

		w := doRequest(t, srv, http.MethodPost, "/threads/t1/messages", api.AppendMessageRequest{Direction: "inbound", Body: "hi"})

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, int64(1), decodeBody[models.Message](t, w).Seq)
	})

	t.Run("messages page backwards", func(t *testing.T) {
		srv, m := newTestServer(t)
		m.thread.EXPECT().ListMessages(gomock.Any(), "t1", 20, int64(41)).Return([]*models.Message{}, nil)

		w := doRequest(t, srv, http.MethodGet, "/threads/t1/messages?limit=20&before_seq=41", nil)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("snooze", func(t *testing.T) {
		srv, m := newTestServer(t)
		m.thread.EXPECT().Snooze(gomock.Any(), "t1", 30).Return(thread, nil)

		w := doRequest(t, srv, http.MethodPost, "/threads/t1/snooze", api.SnoozeRequest{Minutes: 30})

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("mute and read", func(t *testing.T) {
		srv, m := newTestServer(t)
		m.thread.EXPECT().ToggleMute(gomock.Any(), "t1").Return(thread, nil)
		m.thread.EXPECT().MarkRead(gomock.Any(), "t1").Return(thread, nil)

		assert.Equal(t, http.StatusOK, doRequest(t, srv, http.MethodPost, "/threads/t1/mute", nil).Code)
		assert.Equal(t, http.StatusOK, doRequest(t, srv, http.MethodPost, "/threads/t1/read", nil).Code)
	})
}
