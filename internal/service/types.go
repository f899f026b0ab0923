package service

import (
	"github.com/popeskul/crm-comms/internal/api"
	"github.com/popeskul/crm-comms/internal/models"
)

// AppendMessageInput describes a message logged directly on a thread.
type AppendMessageInput struct {
	ThreadID  string
	Direction models.Direction
	Body      string
	Meta      models.MessageMeta
}

type CreateTemplateInput struct {
	Name    string
	Channel models.Channel
	Kind    models.TemplateKind
	Subject *string
	Body    *string
}

// UpdateTemplateInput patches a template. Nil fields are left unchanged.
type UpdateTemplateInput struct {
	Name     *string
	Kind     *models.TemplateKind
	IsActive *bool
	Subject  *string
	Body     *string
}

type CreateVersionInput struct {
	Locale  string
	Subject *string
	Body    string
}

// RenderInput selects a template and the variables to merge. ContactID
// is optional; when set the contact's fields become base variables.
type RenderInput struct {
	TemplateID string
	Locale     string
	ContactID  string
	Vars       models.Vars
}

// SendRequest is resolved content addressed to a contact.
type SendRequest struct {
	Channel   models.Channel
	ContactID string
	Origin    models.Origin
	Subject   *string
	Body      string
	// Template provenance, recorded on outbox items and cooldown keys.
	TemplateID *string
	VersionID  *string
	Locale     string
	Vars       models.Vars
}

// SendMessageInput is a send request that may still need rendering.
// Either TemplateID or Body must be set.
type SendMessageInput struct {
	Channel    models.Channel
	ContactID  string
	Origin     models.Origin
	TemplateID string
	Locale     string
	Vars       models.Vars
	Subject    *string
	Body       string
}

// SendResult reports whether content was parked for QA or sent.
type SendResult struct {
	Queued            bool
	OutboxID          string
	Sent              bool
	ProviderMessageID string
	MessageID         string
}

type ScheduleReminderInput struct {
	TargetType string
	TargetID   string
	ContactID  string
	Channel    models.Channel
	TemplateID string
	Locale     string
	DelayHours float64
	Vars       models.Vars
}

// DispatchSummary counts the outcome of one reminder dispatch run.
type DispatchSummary struct {
	Claimed int
	Sent    int
	Failed  int
	Skipped int
}

// InboundSMS is a provider inbound-message callback.
type InboundSMS struct {
	From              string
	To                string
	Body              string
	ProviderMessageID *string
}

type HealthStatus struct {
	Status         api.HealthResponseStatus `json:"status"`
	WorkerStatus   api.ComponentStatus      `json:"worker_status"`
	DatabaseStatus api.ComponentStatus      `json:"database_status"`
	RedisStatus    api.ComponentStatus      `json:"redis_status"`
	Gateways       map[string]string        `json:"gateways,omitempty"`
}
