package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/render"

	"github.com/popeskul/crm-comms/internal/api"
	"github.com/popeskul/crm-comms/internal/models"
	"github.com/popeskul/crm-comms/internal/service"
)

// ListReminders implements api.ServerInterface.
func (h *Handler) ListReminders(w http.ResponseWriter, r *http.Request, params api.ListRemindersParams) {
	reminders, err := h.service.Reminder.List(r.Context(), models.ReminderFilter{
		Status:     models.ReminderStatus(valueOr(params.Status, "")),
		TargetType: valueOr(params.TargetType, ""),
		TargetID:   valueOr(params.TargetId, ""),
		Limit:      pageLimit(params.Limit),
		Offset:     pageOffset(params.Offset),
	})
	if err != nil {
		h.handleServiceError(w, r, err, "list reminders")
		return
	}

	render.JSON(w, r, api.ReminderListResponse{Reminders: reminders})
}

// ScheduleReminder implements api.ServerInterface.
func (h *Handler) ScheduleReminder(w http.ResponseWriter, r *http.Request) {
	var req api.ScheduleReminderRequest
	if !h.decode(w, r, &req, false) {
		return
	}

	item, err := h.service.Reminder.Schedule(r.Context(), service.ScheduleReminderInput{
		TargetType: req.TargetType,
		TargetID:   req.TargetId,
		ContactID:  req.ContactId,
		Channel:    models.Channel(req.Channel),
		TemplateID: req.TemplateId,
		Locale:     valueOr(req.Locale, ""),
		DelayHours: req.DelayHours,
		Vars:       req.Vars,
	})
	if err != nil {
		h.handleServiceError(w, r, err, "schedule reminder")
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, item)
}

// CancelReminder implements api.ServerInterface.
func (h *Handler) CancelReminder(w http.ResponseWriter, r *http.Request, id string) {
	item, err := h.service.Reminder.Cancel(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, r, err, "cancel reminder")
		return
	}

	render.JSON(w, r, item)
}

// DispatchReminders implements api.ServerInterface.
func (h *Handler) DispatchReminders(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.Reminder.DispatchDue(r.Context(), time.Now())
	if err != nil {
		h.handleServiceError(w, r, err, "dispatch reminders")
		return
	}

	render.JSON(w, r, api.DispatchResponse{
		Claimed: summary.Claimed,
		Sent:    summary.Sent,
		Failed:  summary.Failed,
		Skipped: summary.Skipped,
	})
}
