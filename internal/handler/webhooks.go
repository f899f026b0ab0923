package handler

import (
	"net/http"

	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/popeskul/crm-comms/internal/api"
	"github.com/popeskul/crm-comms/internal/middleware"
	"github.com/popeskul/crm-comms/internal/models"
	"github.com/popeskul/crm-comms/internal/service"
)

// Provider callbacks are always acknowledged with 200. Processing
// failures are logged only, otherwise the provider keeps retrying.

// InboundSmsWebhook implements api.ServerInterface.
func (h *Handler) InboundSmsWebhook(w http.ResponseWriter, r *http.Request) {
	var req api.InboundSmsWebhook
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		h.ack(w, r, "inbound sms", err)
		return
	}

	err := h.service.Webhook.HandleInboundSMS(r.Context(), service.InboundSMS{
		From:              req.From,
		To:                req.To,
		Body:              req.Body,
		ProviderMessageID: req.MessageId,
	})
	h.ack(w, r, "inbound sms", err)
}

// DeliveryStatusWebhook implements api.ServerInterface.
func (h *Handler) DeliveryStatusWebhook(w http.ResponseWriter, r *http.Request) {
	var req api.DeliveryStatusWebhook
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		h.ack(w, r, "delivery status", err)
		return
	}

	err := h.service.Webhook.HandleDeliveryStatus(r.Context(), req.MessageId, models.DeliveryStatus(req.Status))
	h.ack(w, r, "delivery status", err)
}

// VoiceStatusWebhook implements api.ServerInterface.
func (h *Handler) VoiceStatusWebhook(w http.ResponseWriter, r *http.Request) {
	var req api.VoiceStatusWebhook
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		h.ack(w, r, "voice status", err)
		return
	}

	err := h.service.Webhook.HandleVoiceStatus(r.Context(), req.CallId, req.Status)
	h.ack(w, r, "voice status", err)
}

func (h *Handler) ack(w http.ResponseWriter, r *http.Request, kind string, err error) {
	if err != nil {
		h.logger.Warn("Webhook processing failed",
			middleware.RequestIDField(r.Context()),
			zap.String("webhook", kind),
			zap.Error(err))
	}

	render.JSON(w, r, api.AckResponse{Received: true})
}
