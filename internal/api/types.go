// Package api defines the HTTP transport: request and response bodies,
// query parameters and the ServerInterface the handler implements.
package api

import (
	"time"

	"github.com/popeskul/crm-comms/internal/models"
)

type HealthResponseStatus string

const (
	Healthy   HealthResponseStatus = "healthy"
	Degraded  HealthResponseStatus = "degraded"
	Unhealthy HealthResponseStatus = "unhealthy"
)

type ComponentStatus string

const (
	Connected    ComponentStatus = "connected"
	Disconnected ComponentStatus = "disconnected"
	Running      ComponentStatus = "running"
	Stopped      ComponentStatus = "stopped"
)

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Error     string     `json:"error"`
	Message   string     `json:"message"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

type HealthResponse struct {
	Status         HealthResponseStatus `json:"status"`
	Timestamp      time.Time            `json:"timestamp"`
	DatabaseStatus *ComponentStatus     `json:"database_status,omitempty"`
	RedisStatus    *ComponentStatus     `json:"redis_status,omitempty"`
	WorkerStatus   *ComponentStatus     `json:"worker_status,omitempty"`
	Gateways       map[string]string    `json:"gateways,omitempty"`
}

type WorkerResponseStatus string

const (
	WorkerResponseStatusStarted WorkerResponseStatus = "started"
	WorkerResponseStatusStopped WorkerResponseStatus = "stopped"
)

type WorkerResponse struct {
	Status  WorkerResponseStatus `json:"status"`
	Message string               `json:"message"`
}

// Threads

type ListThreadsParams struct {
	ContactId      *string `form:"contact_id,omitempty" json:"contact_id,omitempty"`
	Channel        *string `form:"channel,omitempty" json:"channel,omitempty"`
	Status         *string `form:"status,omitempty" json:"status,omitempty"`
	UnreadOnly     *bool   `form:"unread_only,omitempty" json:"unread_only,omitempty"`
	IncludeSnoozed *bool   `form:"include_snoozed,omitempty" json:"include_snoozed,omitempty"`
	Limit          *int    `form:"limit,omitempty" json:"limit,omitempty"`
	Offset         *int    `form:"offset,omitempty" json:"offset,omitempty"`
}

type ThreadListResponse struct {
	Threads []*models.Thread `json:"threads"`
}

type CreateThreadRequest struct {
	ContactId string `json:"contact_id"`
	Channel   string `json:"channel"`
}

type ListMessagesParams struct {
	Limit     *int   `form:"limit,omitempty" json:"limit,omitempty"`
	BeforeSeq *int64 `form:"before_seq,omitempty" json:"before_seq,omitempty"`
}

type MessageListResponse struct {
	Messages []*models.Message `json:"messages"`
}

type AppendMessageRequest struct {
	Direction         string  `json:"direction"`
	Body              string  `json:"body"`
	Subject           *string `json:"subject,omitempty"`
	ProviderMessageId *string `json:"provider_message_id,omitempty"`
}

type SnoozeRequest struct {
	Minutes int `json:"minutes"`
}

type ThreadSlaResponse struct {
	Slas []*models.ThreadSla `json:"slas"`
}

// Sending

type SendMessageRequest struct {
	ContactId  string         `json:"contact_id"`
	Channel    string         `json:"channel"`
	TemplateId *string        `json:"template_id,omitempty"`
	Locale     *string        `json:"locale,omitempty"`
	Vars       map[string]any `json:"vars,omitempty"`
	Subject    *string        `json:"subject,omitempty"`
	Body       *string        `json:"body,omitempty"`
	Origin     *string        `json:"origin,omitempty"`
}

type SendMessageResponse struct {
	Queued            bool    `json:"queued"`
	OutboxId          *string `json:"outbox_id,omitempty"`
	Sent              bool    `json:"sent"`
	ProviderMessageId *string `json:"provider_message_id,omitempty"`
	MessageId         *string `json:"message_id,omitempty"`
}

// Templates

type ListTemplatesParams struct {
	IncludeInactive *bool `form:"include_inactive,omitempty" json:"include_inactive,omitempty"`
}

type TemplateListResponse struct {
	Templates []*models.Template `json:"templates"`
}

type CreateTemplateRequest struct {
	Name    string  `json:"name"`
	Channel string  `json:"channel"`
	Kind    string  `json:"kind"`
	Subject *string `json:"subject,omitempty"`
	Body    *string `json:"body,omitempty"`
}

type UpdateTemplateRequest struct {
	Name     *string `json:"name,omitempty"`
	Kind     *string `json:"kind,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
	Subject  *string `json:"subject,omitempty"`
	Body     *string `json:"body,omitempty"`
}

type CreateVersionRequest struct {
	Locale  string  `json:"locale"`
	Subject *string `json:"subject,omitempty"`
	Body    string  `json:"body"`
}

type VersionListResponse struct {
	Versions []*models.TemplateVersion `json:"versions"`
}

type RenderRequest struct {
	Locale    *string        `json:"locale,omitempty"`
	ContactId *string        `json:"contact_id,omitempty"`
	Vars      map[string]any `json:"vars,omitempty"`
}

// Outbox

type ListOutboxParams struct {
	Limit  *int `form:"limit,omitempty" json:"limit,omitempty"`
	Offset *int `form:"offset,omitempty" json:"offset,omitempty"`
}

type OutboxListResponse struct {
	Items []*models.OutboxItem `json:"items"`
}

type ApproveRequest struct {
	ReviewerId string `json:"reviewer_id"`
}

type RejectRequest struct {
	ReviewerId string `json:"reviewer_id"`
	Reason     string `json:"reason"`
}

// SLA

type PolicyListResponse struct {
	Policies []*models.SlaPolicy `json:"policies"`
}

type CreatePolicyRequest struct {
	Name          string `json:"name"`
	TargetMinutes int    `json:"target_minutes"`
}

type SlaHookRequest struct {
	At *time.Time `json:"at,omitempty"`
}

type SlaCountResponse struct {
	Updated int64 `json:"updated"`
}

// Reminders

type ListRemindersParams struct {
	Status     *string `form:"status,omitempty" json:"status,omitempty"`
	TargetType *string `form:"target_type,omitempty" json:"target_type,omitempty"`
	TargetId   *string `form:"target_id,omitempty" json:"target_id,omitempty"`
	Limit      *int    `form:"limit,omitempty" json:"limit,omitempty"`
	Offset     *int    `form:"offset,omitempty" json:"offset,omitempty"`
}

type ReminderListResponse struct {
	Reminders []*models.ReminderQueueItem `json:"reminders"`
}

type ScheduleReminderRequest struct {
	TargetType string         `json:"target_type"`
	TargetId   string         `json:"target_id"`
	ContactId  string         `json:"contact_id"`
	Channel    string         `json:"channel"`
	TemplateId string         `json:"template_id"`
	Locale     *string        `json:"locale,omitempty"`
	DelayHours float64        `json:"delay_hours"`
	Vars       map[string]any `json:"vars,omitempty"`
}

type DispatchResponse struct {
	Claimed int `json:"claimed"`
	Sent    int `json:"sent"`
	Failed  int `json:"failed"`
	Skipped int `json:"skipped"`
}

// Webhooks

type InboundSmsWebhook struct {
	From      string  `json:"from"`
	To        string  `json:"to"`
	Body      string  `json:"body"`
	MessageId *string `json:"messageId,omitempty"`
}

type DeliveryStatusWebhook struct {
	MessageId string `json:"messageId"`
	Status    string `json:"status"`
}

type VoiceStatusWebhook struct {
	CallId string `json:"callId"`
	Status string `json:"status"`
}

type AckResponse struct {
	Received bool `json:"received"`
}
