package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/render"

	"github.com/popeskul/crm-comms/internal/api"
)

// ListSlaPolicies implements api.ServerInterface.
func (h *Handler) ListSlaPolicies(w http.ResponseWriter, r *http.Request) {
	policies, err := h.service.SLA.ListPolicies(r.Context())
	if err != nil {
		h.handleServiceError(w, r, err, "list sla policies")
		return
	}

	render.JSON(w, r, api.PolicyListResponse{Policies: policies})
}

// CreateSlaPolicy implements api.ServerInterface.
func (h *Handler) CreateSlaPolicy(w http.ResponseWriter, r *http.Request) {
	var req api.CreatePolicyRequest
	if !h.decode(w, r, &req, false) {
		return
	}

	policy, err := h.service.SLA.CreatePolicy(r.Context(), req.Name, req.TargetMinutes)
	if err != nil {
		h.handleServiceError(w, r, err, "create sla policy")
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, policy)
}

// TriggerSlaInbound implements api.ServerInterface.
func (h *Handler) TriggerSlaInbound(w http.ResponseWriter, r *http.Request, id string) {
	var req api.SlaHookRequest
	if !h.decode(w, r, &req, true) {
		return
	}

	slas, err := h.service.SLA.OnInboundMessage(r.Context(), id, valueOr(req.At, time.Now()))
	if err != nil {
		h.handleServiceError(w, r, err, "run inbound sla hook")
		return
	}

	render.JSON(w, r, api.ThreadSlaResponse{Slas: slas})
}

// TriggerSlaOutbound implements api.ServerInterface.
func (h *Handler) TriggerSlaOutbound(w http.ResponseWriter, r *http.Request, id string) {
	var req api.SlaHookRequest
	if !h.decode(w, r, &req, true) {
		return
	}

	n, err := h.service.SLA.OnOutboundMessage(r.Context(), id, valueOr(req.At, time.Now()))
	if err != nil {
		h.handleServiceError(w, r, err, "run outbound sla hook")
		return
	}

	render.JSON(w, r, api.SlaCountResponse{Updated: n})
}

// SweepSlaBreaches implements api.ServerInterface.
func (h *Handler) SweepSlaBreaches(w http.ResponseWriter, r *http.Request) {
	n, err := h.service.SLA.SweepBreaches(r.Context(), time.Now())
	if err != nil {
		h.handleServiceError(w, r, err, "sweep sla breaches")
		return
	}

	render.JSON(w, r, api.SlaCountResponse{Updated: n})
}
