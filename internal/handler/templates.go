package handler

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/popeskul/crm-comms/internal/api"
	"github.com/popeskul/crm-comms/internal/models"
	"github.com/popeskul/crm-comms/internal/service"
)

// ListTemplates implements api.ServerInterface.
func (h *Handler) ListTemplates(w http.ResponseWriter, r *http.Request, params api.ListTemplatesParams) {
	templates, err := h.service.Template.List(r.Context(), valueOr(params.IncludeInactive, false))
	if err != nil {
		h.handleServiceError(w, r, err, "list templates")
		return
	}

	render.JSON(w, r, api.TemplateListResponse{Templates: templates})
}

// CreateTemplate implements api.ServerInterface.
func (h *Handler) CreateTemplate(w http.ResponseWriter, r *http.Request) {
	var req api.CreateTemplateRequest
	if !h.decode(w, r, &req, false) {
		return
	}

	tpl, err := h.service.Template.Create(r.Context(), service.CreateTemplateInput{
		Name:    req.Name,
		Channel: models.Channel(req.Channel),
		Kind:    models.TemplateKind(req.Kind),
		Subject: req.Subject,
		Body:    req.Body,
	})
	if err != nil {
		h.handleServiceError(w, r, err, "create template")
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, tpl)
}

// GetTemplate implements api.ServerInterface.
func (h *Handler) GetTemplate(w http.ResponseWriter, r *http.Request, id string) {
	tpl, err := h.service.Template.Get(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, r, err, "get template")
		return
	}

	render.JSON(w, r, tpl)
}

// UpdateTemplate implements api.ServerInterface.
func (h *Handler) UpdateTemplate(w http.ResponseWriter, r *http.Request, id string) {
	var req api.UpdateTemplateRequest
	if !h.decode(w, r, &req, false) {
		return
	}

	input := service.UpdateTemplateInput{
		Name:     req.Name,
		IsActive: req.IsActive,
		Subject:  req.Subject,
		Body:     req.Body,
	}
	if req.Kind != nil {
		kind := models.TemplateKind(*req.Kind)
		input.Kind = &kind
	}

	tpl, err := h.service.Template.Update(r.Context(), id, input)
	if err != nil {
		h.handleServiceError(w, r, err, "update template")
		return
	}

	render.JSON(w, r, tpl)
}

// DeleteTemplate implements api.ServerInterface.
func (h *Handler) DeleteTemplate(w http.ResponseWriter, r *http.Request, id string) {
	if err := h.service.Template.Delete(r.Context(), id); err != nil {
		h.handleServiceError(w, r, err, "delete template")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListTemplateVersions implements api.ServerInterface.
func (h *Handler) ListTemplateVersions(w http.ResponseWriter, r *http.Request, id string) {
	versions, err := h.service.Template.ListVersions(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, r, err, "list template versions")
		return
	}

	render.JSON(w, r, api.VersionListResponse{Versions: versions})
}

// CreateTemplateVersion implements api.ServerInterface.
func (h *Handler) CreateTemplateVersion(w http.ResponseWriter, r *http.Request, id string) {
	var req api.CreateVersionRequest
	if !h.decode(w, r, &req, false) {
		return
	}

	version, err := h.service.Template.CreateVersion(r.Context(), id, service.CreateVersionInput{
		Locale:  req.Locale,
		Subject: req.Subject,
		Body:    req.Body,
	})
	if err != nil {
		h.handleServiceError(w, r, err, "create template version")
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, version)
}

// ApproveTemplateVersion implements api.ServerInterface.
func (h *Handler) ApproveTemplateVersion(w http.ResponseWriter, r *http.Request, id string) {
	version, err := h.service.Template.ApproveVersion(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, r, err, "approve template version")
		return
	}

	render.JSON(w, r, version)
}

// RenderTemplate implements api.ServerInterface.
func (h *Handler) RenderTemplate(w http.ResponseWriter, r *http.Request, id string) {
	var req api.RenderRequest
	if !h.decode(w, r, &req, true) {
		return
	}

	rendered, err := h.service.Template.Render(r.Context(), service.RenderInput{
		TemplateID: id,
		Locale:     valueOr(req.Locale, ""),
		ContactID:  valueOr(req.ContactId, ""),
		Vars:       req.Vars,
	})
	if err != nil {
		h.handleServiceError(w, r, err, "render template")
		return
	}

	render.JSON(w, r, rendered)
}
