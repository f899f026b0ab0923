package handler

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/popeskul/crm-comms/internal/api"
	"github.com/popeskul/crm-comms/internal/models"
	"github.com/popeskul/crm-comms/internal/service"
)

// SendMessage implements api.ServerInterface. Content parked for review
// answers 202.
func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req api.SendMessageRequest
	if !h.decode(w, r, &req, false) {
		return
	}

	result, err := h.service.Outbox.SendMessage(r.Context(), service.SendMessageInput{
		Channel:    models.Channel(req.Channel),
		ContactID:  req.ContactId,
		Origin:     models.Origin(valueOr(req.Origin, string(models.OriginManual))),
		TemplateID: valueOr(req.TemplateId, ""),
		Locale:     valueOr(req.Locale, ""),
		Vars:       req.Vars,
		Subject:    req.Subject,
		Body:       valueOr(req.Body, ""),
	})
	if err != nil {
		h.handleServiceError(w, r, err, "send message")
		return
	}

	if result.Queued {
		render.Status(r, http.StatusAccepted)
	}
	render.JSON(w, r, api.SendMessageResponse{
		Queued:            result.Queued,
		OutboxId:          nonEmpty(result.OutboxID),
		Sent:              result.Sent,
		ProviderMessageId: nonEmpty(result.ProviderMessageID),
		MessageId:         nonEmpty(result.MessageID),
	})
}

// ListOutbox implements api.ServerInterface.
func (h *Handler) ListOutbox(w http.ResponseWriter, r *http.Request, params api.ListOutboxParams) {
	items, err := h.service.Outbox.ListPending(r.Context(), pageLimit(params.Limit), pageOffset(params.Offset))
	if err != nil {
		h.handleServiceError(w, r, err, "list outbox")
		return
	}

	render.JSON(w, r, api.OutboxListResponse{Items: items})
}

// GetOutboxItem implements api.ServerInterface.
func (h *Handler) GetOutboxItem(w http.ResponseWriter, r *http.Request, id string) {
	item, err := h.service.Outbox.Get(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, r, err, "get outbox item")
		return
	}

	render.JSON(w, r, item)
}

// ApproveOutboxItem implements api.ServerInterface.
func (h *Handler) ApproveOutboxItem(w http.ResponseWriter, r *http.Request, id string) {
	var req api.ApproveRequest
	if !h.decode(w, r, &req, false) {
		return
	}

	item, err := h.service.Outbox.Approve(r.Context(), id, req.ReviewerId)
	if err != nil {
		h.handleServiceError(w, r, err, "approve outbox item")
		return
	}

	render.JSON(w, r, item)
}

// RejectOutboxItem implements api.ServerInterface.
func (h *Handler) RejectOutboxItem(w http.ResponseWriter, r *http.Request, id string) {
	var req api.RejectRequest
	if !h.decode(w, r, &req, false) {
		return
	}

	item, err := h.service.Outbox.Reject(r.Context(), id, req.ReviewerId, req.Reason)
	if err != nil {
		h.handleServiceError(w, r, err, "reject outbox item")
		return
	}

	render.JSON(w, r, item)
}
