package handler

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/popeskul/crm-comms/internal/api"
	"github.com/popeskul/crm-comms/internal/models"
	"github.com/popeskul/crm-comms/internal/service"
)

// ListThreads implements api.ServerInterface.
func (h *Handler) ListThreads(w http.ResponseWriter, r *http.Request, params api.ListThreadsParams) {
	filter := models.ThreadFilter{
		ContactID:      valueOr(params.ContactId, ""),
		Channel:        models.Channel(valueOr(params.Channel, "")),
		Status:         models.ThreadStatus(valueOr(params.Status, "")),
		UnreadOnly:     valueOr(params.UnreadOnly, false),
		IncludeSnoozed: valueOr(params.IncludeSnoozed, false),
		Limit:          pageLimit(params.Limit),
		Offset:         pageOffset(params.Offset),
	}

	threads, err := h.service.Thread.ListThreads(r.Context(), filter)
	if err != nil {
		h.handleServiceError(w, r, err, "list threads")
		return
	}

	render.JSON(w, r, api.ThreadListResponse{Threads: threads})
}

// CreateThread implements api.ServerInterface.
func (h *Handler) CreateThread(w http.ResponseWriter, r *http.Request) {
	var req api.CreateThreadRequest
	if !h.decode(w, r, &req, false) {
		return
	}

	thread, err := h.service.Thread.GetOrCreateThread(r.Context(), req.ContactId, models.Channel(req.Channel))
	if err != nil {
		h.handleServiceError(w, r, err, "get or create thread")
		return
	}

	render.JSON(w, r, thread)
}

// GetThread implements api.ServerInterface.
func (h *Handler) GetThread(w http.ResponseWriter, r *http.Request, id string) {
	thread, err := h.service.Thread.GetThread(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, r, err, "get thread")
		return
	}

	render.JSON(w, r, thread)
}

// ListThreadMessages implements api.ServerInterface.
func (h *Handler) ListThreadMessages(w http.ResponseWriter, r *http.Request, id string, params api.ListMessagesParams) {
	messages, err := h.service.Thread.ListMessages(r.Context(), id, pageLimit(params.Limit), valueOr(params.BeforeSeq, 0))
	if err != nil {
		h.handleServiceError(w, r, err, "list messages")
		return
	}

	render.JSON(w, r, api.MessageListResponse{Messages: messages})
}

// AppendThreadMessage implements api.ServerInterface.
func (h *Handler) AppendThreadMessage(w http.ResponseWriter, r *http.Request, id string) {
	var req api.AppendMessageRequest
	if !h.decode(w, r, &req, false) {
		return
	}

	msg, err := h.service.Thread.AppendMessage(r.Context(), service.AppendMessageInput{
		ThreadID:  id,
		Direction: models.Direction(req.Direction),
		Body:      req.Body,
		Meta: models.MessageMeta{
			Subject:           req.Subject,
			ProviderMessageID: req.ProviderMessageId,
		},
	})
	if err != nil {
		h.handleServiceError(w, r, err, "append message")
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, msg)
}

// SnoozeThread implements api.ServerInterface.
func (h *Handler) SnoozeThread(w http.ResponseWriter, r *http.Request, id string) {
	var req api.SnoozeRequest
	if !h.decode(w, r, &req, false) {
		return
	}

	thread, err := h.service.Thread.Snooze(r.Context(), id, req.Minutes)
	if err != nil {
		h.handleServiceError(w, r, err, "snooze thread")
		return
	}

	render.JSON(w, r, thread)
}

// ToggleThreadMute implements api.ServerInterface.
func (h *Handler) ToggleThreadMute(w http.ResponseWriter, r *http.Request, id string) {
	thread, err := h.service.Thread.ToggleMute(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, r, err, "toggle mute")
		return
	}

	render.JSON(w, r, thread)
}

// MarkThreadRead implements api.ServerInterface.
func (h *Handler) MarkThreadRead(w http.ResponseWriter, r *http.Request, id string) {
	thread, err := h.service.Thread.MarkRead(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, r, err, "mark thread read")
		return
	}

	render.JSON(w, r, thread)
}

// GetThreadSla implements api.ServerInterface.
func (h *Handler) GetThreadSla(w http.ResponseWriter, r *http.Request, id string) {
	slas, err := h.service.SLA.GetThreadSLA(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, r, err, "get thread sla")
		return
	}

	render.JSON(w, r, api.ThreadSlaResponse{Slas: slas})
}
