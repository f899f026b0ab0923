package models

import "time"

type TemplateKind string

const (
	TemplateKindManual     TemplateKind = "manual"
	TemplateKindAutomation TemplateKind = "automation"
)

// Template is a named reusable content definition. Subject and Body are
// the legacy unversioned content kept for templates created before
// versioning existed.
type Template struct {
	ID        string       `db:"id" json:"id"`
	Name      string       `db:"name" json:"name"`
	Channel   Channel      `db:"channel" json:"channel"`
	Kind      TemplateKind `db:"kind" json:"kind"`
	IsActive  bool         `db:"is_active" json:"is_active"`
	Subject   *string      `db:"subject" json:"subject,omitempty"`
	Body      *string      `db:"body" json:"body,omitempty"`
	CreatedAt time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt time.Time    `db:"updated_at" json:"updated_at"`
}

type VersionStatus string

const (
	VersionStatusDraft    VersionStatus = "draft"
	VersionStatusApproved VersionStatus = "approved"
)

// TemplateVersion is localized, versioned template content. Approved
// versions are immutable.
type TemplateVersion struct {
	ID         string        `db:"id" json:"id"`
	TemplateID string        `db:"template_id" json:"template_id"`
	Locale     string        `db:"locale" json:"locale"`
	Version    int           `db:"version" json:"version"`
	Status     VersionStatus `db:"status" json:"status"`
	Subject    *string       `db:"subject" json:"subject,omitempty"`
	Body       string        `db:"body" json:"body"`
	ApprovedAt *time.Time    `db:"approved_at" json:"approved_at,omitempty"`
	CreatedAt  time.Time     `db:"created_at" json:"created_at"`
}

// RenderedContent is the output of template resolution.
type RenderedContent struct {
	TemplateID string  `json:"template_id"`
	Channel    Channel `json:"channel"`
	Subject    *string `json:"subject,omitempty"`
	Body       string  `json:"body"`
	VersionID  *string `json:"version_id,omitempty"`
	Locale     string  `json:"locale"`
}
