package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/popeskul/crm-comms/internal/apperrors"
	"github.com/popeskul/crm-comms/internal/models"
)

const templateColumns = `id, name, channel, kind, is_active, subject, body, created_at, updated_at`

const versionColumns = `id, template_id, locale, version, status, subject, body, approved_at, created_at`

type templateRepository struct {
	db *sqlx.DB
}

func NewTemplateRepository(db *sqlx.DB) TemplateRepository {
	return &templateRepository{db: db}
}

// Create inserts a template, assigning its id when empty.
func (r *templateRepository) Create(ctx context.Context, tpl *models.Template) error {
	if tpl.ID == "" {
		tpl.ID = newID()
	}

	query := `
		INSERT INTO templates (id, name, channel, kind, is_active, subject, body, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	row := r.db.QueryRowxContext(ctx, query, tpl.ID, tpl.Name, tpl.Channel, tpl.Kind, tpl.IsActive, tpl.Subject, tpl.Body)
	if err := row.Scan(&tpl.CreatedAt, &tpl.UpdatedAt); err != nil {
		return fmt.Errorf("failed to create template: %w", err)
	}
	return nil
}

// GetByID retrieves a template regardless of its active flag.
func (r *templateRepository) GetByID(ctx context.Context, id string) (*models.Template, error) {
	var tpl models.Template
	err := r.db.GetContext(ctx, &tpl, `SELECT `+templateColumns+` FROM templates WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("template", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get template: %w", err)
	}
	return &tpl, nil
}

// List returns templates by name.
func (r *templateRepository) List(ctx context.Context, includeInactive bool) ([]*models.Template, error) {
	query := `SELECT ` + templateColumns + ` FROM templates WHERE ($1 OR is_active) ORDER BY name ASC`

	var templates []*models.Template
	if err := r.db.SelectContext(ctx, &templates, query, includeInactive); err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	return templates, nil
}

// Update overwrites the mutable template fields.
func (r *templateRepository) Update(ctx context.Context, tpl *models.Template) error {
	query := `
		UPDATE templates
		SET name = $2, channel = $3, kind = $4, is_active = $5, subject = $6, body = $7, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`
	err := r.db.QueryRowxContext(ctx, query, tpl.ID, tpl.Name, tpl.Channel, tpl.Kind, tpl.IsActive, tpl.Subject, tpl.Body).
		Scan(&tpl.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return apperrors.NotFound("template", tpl.ID)
	}
	if err != nil {
		return fmt.Errorf("failed to update template: %w", err)
	}
	return nil
}

// Deactivate soft-deletes a template.
func (r *templateRepository) Deactivate(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE templates SET is_active = FALSE, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate template: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to deactivate template: %w", err)
	}
	if n == 0 {
		return apperrors.NotFound("template", id)
	}
	return nil
}

// CreateVersion inserts a draft with the next version number for its
// (template, locale). The template row is locked so concurrent editors
// cannot allocate the same number.
func (r *templateRepository) CreateVersion(ctx context.Context, v *models.TemplateVersion) error {
	if v.ID == "" {
		v.ID = newID()
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var lockedID string
	err = tx.GetContext(ctx, &lockedID, `SELECT id FROM templates WHERE id = $1 FOR UPDATE`, v.TemplateID)
	if errors.Is(err, sql.ErrNoRows) {
		return apperrors.NotFound("template", v.TemplateID)
	}
	if err != nil {
		return fmt.Errorf("failed to lock template: %w", err)
	}

	query := `
		INSERT INTO template_versions (id, template_id, locale, version, status, subject, body, created_at)
		SELECT $1, $2, $3, COALESCE(MAX(version), 0) + 1, $4, $5, $6, NOW()
		FROM template_versions
		WHERE template_id = $2 AND locale = $3
		RETURNING version, status, created_at
	`
	err = tx.QueryRowxContext(ctx, query, v.ID, v.TemplateID, v.Locale, models.VersionStatusDraft, v.Subject, v.Body).
		Scan(&v.Version, &v.Status, &v.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create template version: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit template version: %w", err)
	}
	return nil
}

// GetVersion retrieves a template version by id.
func (r *templateRepository) GetVersion(ctx context.Context, id string) (*models.TemplateVersion, error) {
	var v models.TemplateVersion
	err := r.db.GetContext(ctx, &v, `SELECT `+versionColumns+` FROM template_versions WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("template version", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get template version: %w", err)
	}
	return &v, nil
}

// ListVersions returns every version of a template, newest first per locale.
func (r *templateRepository) ListVersions(ctx context.Context, templateID string) ([]*models.TemplateVersion, error) {
	query := `SELECT ` + versionColumns + ` FROM template_versions
		WHERE template_id = $1
		ORDER BY locale ASC, version DESC`

	var versions []*models.TemplateVersion
	if err := r.db.SelectContext(ctx, &versions, query, templateID); err != nil {
		return nil, fmt.Errorf("failed to list template versions: %w", err)
	}
	return versions, nil
}

// ApproveVersion moves a draft to approved. Approved versions are
// immutable, so approving one again is a conflict.
func (r *templateRepository) ApproveVersion(ctx context.Context, id string, at time.Time) (*models.TemplateVersion, error) {
	query := `
		UPDATE template_versions SET status = $2, approved_at = $3
		WHERE id = $1 AND status = $4
		RETURNING ` + versionColumns

	var v models.TemplateVersion
	err := r.db.GetContext(ctx, &v, query, id, models.VersionStatusApproved, at, models.VersionStatusDraft)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, statusGuardMiss(ctx, r.db, "template_versions", "template version", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to approve template version: %w", err)
	}
	return &v, nil
}

// FindApprovedVersion returns the highest approved version for locale.
func (r *templateRepository) FindApprovedVersion(ctx context.Context, templateID, locale string) (*models.TemplateVersion, error) {
	query := `SELECT ` + versionColumns + ` FROM template_versions
		WHERE template_id = $1 AND locale = $2 AND status = $3
		ORDER BY version DESC
		LIMIT 1`

	return r.findVersion(ctx, query, templateID, locale, models.VersionStatusApproved)
}

// FindLatestVersion returns the most recently approved-or-created
// version in any locale and status.
func (r *templateRepository) FindLatestVersion(ctx context.Context, templateID string) (*models.TemplateVersion, error) {
	query := `SELECT ` + versionColumns + ` FROM template_versions
		WHERE template_id = $1
		ORDER BY COALESCE(approved_at, created_at) DESC, version DESC
		LIMIT 1`

	return r.findVersion(ctx, query, templateID)
}

func (r *templateRepository) findVersion(ctx context.Context, query string, args ...any) (*models.TemplateVersion, error) {
	var v models.TemplateVersion
	err := r.db.GetContext(ctx, &v, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find template version: %w", err)
	}
	return &v, nil
}
