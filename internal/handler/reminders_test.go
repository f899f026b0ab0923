package handler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/popeskul/crm-comms/internal/api"
	"github.com/popeskul/crm-comms/internal/apperrors"
	"github.com/popeskul/crm-comms/internal/models"
	"github.com/popeskul/crm-comms/internal/service"
)

func TestReminderEndpoints(t *testing.T) {
	t.Run("schedule", func(t *testing.T) {
		srv, m := newTestServer(t)
		m.reminder.EXPECT().Schedule(gomock.Any(), service.ScheduleReminderInput{
			TargetType: "appointment",
			TargetID:   "a1",
			ContactID:  "c1",
			Channel:    models.ChannelSMS,
			TemplateID: "tpl1",
			DelayHours: 24,
			Vars:       models.Vars{"time": "10:00"},
		}).Return(&models.ReminderQueueItem{ID: "r1", Status: models.ReminderStatusPending}, nil)

		w := doRequest(t, srv, http.MethodPost, "/reminders", api.ScheduleReminderRequest{
			TargetType: "appointment",
			TargetId:   "a1",
			ContactId:  "c1",
			Channel:    "sms",
			TemplateId: "tpl1",
			DelayHours: 24,
			Vars:       map[string]any{"time": "10:00"},
		})

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("list filters", func(t *testing.T) {
		srv, m := newTestServer(t)
		m.reminder.EXPECT().List(gomock.Any(), models.ReminderFilter{
			Status:     models.ReminderStatusPending,
			TargetType: "appointment",
			Limit:      50,
		}).Return(nil, nil)

		w := doRequest(t, srv, http.MethodGet, "/reminders?status=pending&target_type=appointment", nil)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("cancel sent reminder", func(t *testing.T) {
		srv, m := newTestServer(t)
		m.reminder.EXPECT().Cancel(gomock.Any(), "r1").Return(nil, apperrors.Conflict("reminder", "r1", "sent"))

		assert.Equal(t, http.StatusConflict, doRequest(t, srv, http.MethodPost, "/reminders/r1/cancel", nil).Code)
	})

	t.Run("dispatch", func(t *testing.T) {
		srv, m := newTestServer(t)
		m.reminder.EXPECT().DispatchDue(gomock.Any(), gomock.Any()).
			Return(&service.DispatchSummary{Claimed: 3, Sent: 2, Failed: 1}, nil)

		w := doRequest(t, srv, http.MethodPost, "/reminders/dispatch", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, api.DispatchResponse{Claimed: 3, Sent: 2, Failed: 1}, decodeBody[api.DispatchResponse](t, w))
	})
}
