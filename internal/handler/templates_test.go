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

func TestTemplateEndpoints(t *testing.T) {
	tpl := &models.Template{ID: "tpl1", Name: "welcome", Channel: models.ChannelSMS, Kind: models.TemplateKindAutomation, IsActive: true}

	t.Run("create", func(t *testing.T) {
		srv, m := newTestServer(t)
		m.template.EXPECT().Create(gomock.Any(), service.CreateTemplateInput{
			Name:    "welcome",
			Channel: models.ChannelSMS,
			Kind:    models.TemplateKindAutomation,
			Body:    strPtr("Hi {{first_name}}"),
		}).Return(tpl, nil)

		w := doRequest(t, srv, http.MethodPost, "/templates", api.CreateTemplateRequest{
			Name:    "welcome",
			Channel: "sms",
			Kind:    "automation",
			Body:    strPtr("Hi {{first_name}}"),
		})

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "tpl1", decodeBody[models.Template](t, w).ID)
	})

	t.Run("list includes inactive on request", func(t *testing.T) {
		srv, m := newTestServer(t)
		m.template.EXPECT().List(gomock.Any(), true).Return([]*models.Template{tpl}, nil)

		w := doRequest(t, srv, http.MethodGet, "/templates?include_inactive=true", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decodeBody[api.TemplateListResponse](t, w).Templates, 1)
	})

	t.Run("update deactivates", func(t *testing.T) {
		srv, m := newTestServer(t)
		inactive := false
		m.template.EXPECT().Update(gomock.Any(), "tpl1", service.UpdateTemplateInput{IsActive: &inactive}).Return(tpl, nil)

		w := doRequest(t, srv, http.MethodPut, "/templates/tpl1", api.UpdateTemplateRequest{IsActive: &inactive})

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("delete", func(t *testing.T) {
		srv, m := newTestServer(t)
		m.template.EXPECT().Delete(gomock.Any(), "tpl1").Return(nil)

		w := doRequest(t, srv, http.MethodDelete, "/templates/tpl1", nil)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("create version", func(t *testing.T) {
		srv, m := newTestServer(t)
		m.template.EXPECT().CreateVersion(gomock.Any(), "tpl1", service.CreateVersionInput{Locale: "fr", Body: "Salut"}).
			Return(&models.TemplateVersion{ID: "v1", TemplateID: "tpl1", Locale: "fr", Version: 1, Status: models.VersionStatusDraft}, nil)

		w := doRequest(t, srv, http.MethodPost, "/templates/tpl1/versions", api.CreateVersionRequest{Locale: "fr", Body: "Salut"})

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 1, decodeBody[models.TemplateVersion](t, w).Version)
	})

	t.Run("approve version", func(t *testing.T) {
		srv, m := newTestServer(t)
		m.template.EXPECT().ApproveVersion(gomock.Any(), "v1").
			Return(&models.TemplateVersion{ID: "v1", Status: models.VersionStatusApproved}, nil)

		w := doRequest(t, srv, http.MethodPost, "/template-versions/v1/approve", nil)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("render with empty body", func(t *testing.T) {
		srv, m := newTestServer(t)
		m.template.EXPECT().Render(gomock.Any(), service.RenderInput{TemplateID: "tpl1"}).
			Return(&models.RenderedContent{TemplateID: "tpl1", Channel: models.ChannelSMS, Body: "Hi ", Locale: "en"}, nil)

		w := doRequest(t, srv, http.MethodPost, "/templates/tpl1/render", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "en", decodeBody[models.RenderedContent](t, w).Locale)
	})

	t.Run("render with nothing to render", func(t *testing.T) {
		srv, m := newTestServer(t)
		m.template.EXPECT().Render(gomock.Any(), service.RenderInput{TemplateID: "tpl1", Locale: "de", ContactID: "c1"}).
			Return(nil, apperrors.EmptyTemplate("tpl1"))

		w := doRequest(t, srv, http.MethodPost, "/templates/tpl1/render", api.RenderRequest{Locale: strPtr("de"), ContactId: strPtr("c1")})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}
