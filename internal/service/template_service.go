package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/popeskul/crm-comms/internal/apperrors"
	"github.com/popeskul/crm-comms/internal/models"
	"github.com/popeskul/crm-comms/internal/repository"
	"github.com/popeskul/crm-comms/internal/templating"
)

type templateService struct {
	repo          repository.Repository
	engine        *templating.Engine
	defaultLocale string
	logger        *zap.Logger
}

func NewTemplateService(
	repo repository.Repository,
	engine *templating.Engine,
	defaultLocale string,
	logger *zap.Logger,
) TemplateService {
	return &templateService{
		repo:          repo,
		engine:        engine,
		defaultLocale: defaultLocale,
		logger:        logger,
	}
}

func (s *templateService) Create(ctx context.Context, input CreateTemplateInput) (*models.Template, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, apperrors.Validation("name is required")
	}
	if !input.Channel.Valid() {
		return nil, apperrors.Validation("unsupported channel %q", input.Channel)
	}
	kind := input.Kind
	if kind == "" {
		kind = models.TemplateKindManual
	}
	if err := validateKind(kind); err != nil {
		return nil, err
	}
	if err := s.validateText(input.Subject, input.Body); err != nil {
		return nil, err
	}

	tpl := &models.Template{
		Name:     input.Name,
		Channel:  input.Channel,
		Kind:     kind,
		IsActive: true,
		Subject:  input.Subject,
		Body:     input.Body,
	}
	if err := s.repo.Template().Create(ctx, tpl); err != nil {
		return nil, err
	}

	s.logger.Info("Template created", zap.String("template_id", tpl.ID), zap.String("name", tpl.Name))
	return tpl, nil
}

func (s *templateService) Get(ctx context.Context, id string) (*models.Template, error) {
	return s.repo.Template().GetByID(ctx, id)
}

func (s *templateService) List(ctx context.Context, includeInactive bool) ([]*models.Template, error) {
	return s.repo.Template().List(ctx, includeInactive)
}

func (s *templateService) Update(ctx context.Context, id string, input UpdateTemplateInput) (*models.Template, error) {
	tpl, err := s.repo.Template().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			return nil, apperrors.Validation("name must not be empty")
		}
		tpl.Name = *input.Name
	}
	if input.Kind != nil {
		if err := validateKind(*input.Kind); err != nil {
			return nil, err
		}
		tpl.Kind = *input.Kind
	}
	if input.IsActive != nil {
		tpl.IsActive = *input.IsActive
	}
	if input.Subject != nil {
		tpl.Subject = input.Subject
	}
	if input.Body != nil {
		tpl.Body = input.Body
	}
	if err := s.validateText(tpl.Subject, tpl.Body); err != nil {
		return nil, err
	}

	if err := s.repo.Template().Update(ctx, tpl); err != nil {
		return nil, err
	}
	return tpl, nil
}

// Delete deactivates the template. Versions and past sends keep
// referencing it.
func (s *templateService) Delete(ctx context.Context, id string) error {
	return s.repo.Template().Deactivate(ctx, id)
}

func (s *templateService) CreateVersion(ctx context.Context, templateID string, input CreateVersionInput) (*models.TemplateVersion, error) {
	if strings.TrimSpace(input.Body) == "" {
		return nil, apperrors.Validation("body is required")
	}
	locale := normalizeLocale(input.Locale)
	if locale == "" {
		locale = s.defaultLocale
	}
	if err := s.validateText(input.Subject, &input.Body); err != nil {
		return nil, err
	}

	version := &models.TemplateVersion{
		TemplateID: templateID,
		Locale:     locale,
		Subject:    input.Subject,
		Body:       input.Body,
	}
	if err := s.repo.Template().CreateVersion(ctx, version); err != nil {
		return nil, err
	}

	s.logger.Info("Template version created",
		zap.String("template_id", templateID),
		zap.String("locale", locale),
		zap.Int("version", version.Version))
	return version, nil
}

func (s *templateService) ListVersions(ctx context.Context, templateID string) ([]*models.TemplateVersion, error) {
	if _, err := s.repo.Template().GetByID(ctx, templateID); err != nil {
		return nil, err
	}
	return s.repo.Template().ListVersions(ctx, templateID)
}

// ApproveVersion freezes a draft. Approving twice is a conflict.
func (s *templateService) ApproveVersion(ctx context.Context, versionID string) (*models.TemplateVersion, error) {
	return s.repo.Template().ApproveVersion(ctx, versionID, time.Now())
}

// Render resolves content for the template and merges variables into
// it. Resolution order: approved version in the requested locale,
// approved version in the default locale, most recent version of any
// locale or status, then the legacy fields on the template itself.
func (s *templateService) Render(ctx context.Context, input RenderInput) (*models.RenderedContent, error) {
	if input.TemplateID == "" {
		return nil, apperrors.Validation("template_id is required")
	}

	tpl, err := s.repo.Template().GetByID(ctx, input.TemplateID)
	if err != nil {
		return nil, err
	}

	vars := models.Vars{}
	if input.ContactID != "" {
		contact, err := s.repo.Contact().GetByID(ctx, input.ContactID)
		if err != nil {
			return nil, err
		}
		vars = contactVars(contact)
	}
	vars = vars.Merge(input.Vars)

	content, err := s.resolve(ctx, tpl, normalizeLocale(input.Locale))
	if err != nil {
		return nil, err
	}

	body, err := s.engine.Render(tpl.ID, content.Body, vars)
	if err != nil {
		return nil, fmt.Errorf("failed to render template %s: %w", tpl.ID, err)
	}
	content.Body = body

	if content.Subject != nil {
		subject, err := s.engine.Render(tpl.ID+".subject", *content.Subject, vars)
		if err != nil {
			return nil, fmt.Errorf("failed to render template %s subject: %w", tpl.ID, err)
		}
		content.Subject = &subject
	}

	return content, nil
}

func (s *templateService) resolve(ctx context.Context, tpl *models.Template, locale string) (*models.RenderedContent, error) {
	templates := s.repo.Template()

	candidates := []func() (*models.TemplateVersion, error){
		func() (*models.TemplateVersion, error) {
			if locale == "" {
				return nil, nil
			}
			return templates.FindApprovedVersion(ctx, tpl.ID, locale)
		},
		func() (*models.TemplateVersion, error) {
			if locale == s.defaultLocale {
				return nil, nil
			}
			return templates.FindApprovedVersion(ctx, tpl.ID, s.defaultLocale)
		},
		func() (*models.TemplateVersion, error) {
			return templates.FindLatestVersion(ctx, tpl.ID)
		},
	}

	for _, find := range candidates {
		version, err := find()
		if err != nil {
			return nil, err
		}
		if version != nil {
			versionID := version.ID
			return &models.RenderedContent{
				TemplateID: tpl.ID,
				Channel:    tpl.Channel,
				Subject:    version.Subject,
				Body:       version.Body,
				VersionID:  &versionID,
				Locale:     version.Locale,
			}, nil
		}
	}

	if tpl.Body != nil && strings.TrimSpace(*tpl.Body) != "" {
		return &models.RenderedContent{
			TemplateID: tpl.ID,
			Channel:    tpl.Channel,
			Subject:    tpl.Subject,
			Body:       *tpl.Body,
			Locale:     s.defaultLocale,
		}, nil
	}

	return nil, apperrors.EmptyTemplate(tpl.ID)
}

func (s *templateService) validateText(subject, body *string) error {
	for _, text := range []*string{subject, body} {
		if text == nil {
			continue
		}
		if err := s.engine.Validate(*text); err != nil {
			return apperrors.Validation("invalid template syntax: %v", err)
		}
	}
	return nil
}

func validateKind(kind models.TemplateKind) error {
	if kind != models.TemplateKindManual && kind != models.TemplateKindAutomation {
		return apperrors.Validation("kind must be manual or automation")
	}
	return nil
}

func normalizeLocale(locale string) string {
	return strings.ToLower(strings.TrimSpace(locale))
}

// contactVars are the base merge variables derived from a contact.
func contactVars(c *models.Contact) models.Vars {
	vars := models.Vars{
		"first_name": c.FirstName,
		"last_name":  c.LastName,
		"full_name":  c.FullName(),
		"phone":      "",
		"email":      "",
	}
	if c.Phone != nil {
		vars["phone"] = *c.Phone
	}
	if c.Email != nil {
		vars["email"] = *c.Email
	}
	return vars
}
