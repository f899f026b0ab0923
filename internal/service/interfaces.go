package service

import (
	"context"
	"time"

	"github.com/popeskul/crm-comms/internal/models"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_service.go -package=mocks

// ThreadService owns conversations and their message history.
type ThreadService interface {
	GetOrCreateThread(ctx context.Context, contactID string, channel models.Channel) (*models.Thread, error)
	GetThread(ctx context.Context, id string) (*models.Thread, error)
	ListThreads(ctx context.Context, filter models.ThreadFilter) ([]*models.Thread, error)
	AppendMessage(ctx context.Context, input AppendMessageInput) (*models.Message, error)
	ListMessages(ctx context.Context, threadID string, limit int, beforeSeq int64) ([]*models.Message, error)
	Snooze(ctx context.Context, id string, minutes int) (*models.Thread, error)
	ToggleMute(ctx context.Context, id string) (*models.Thread, error)
	MarkRead(ctx context.Context, id string) (*models.Thread, error)
}

// TemplateService manages templates, their versions and rendering.
type TemplateService interface {
	Create(ctx context.Context, input CreateTemplateInput) (*models.Template, error)
	Get(ctx context.Context, id string) (*models.Template, error)
	List(ctx context.Context, includeInactive bool) ([]*models.Template, error)
	Update(ctx context.Context, id string, input UpdateTemplateInput) (*models.Template, error)
	Delete(ctx context.Context, id string) error
	CreateVersion(ctx context.Context, templateID string, input CreateVersionInput) (*models.TemplateVersion, error)
	ListVersions(ctx context.Context, templateID string) ([]*models.TemplateVersion, error)
	ApproveVersion(ctx context.Context, versionID string) (*models.TemplateVersion, error)
	Render(ctx context.Context, input RenderInput) (*models.RenderedContent, error)
}

// OutboxService routes outbound content through the QA gate or straight
// to the channel gateway.
type OutboxService interface {
	EnqueueOrSend(ctx context.Context, req SendRequest) (*SendResult, error)
	SendMessage(ctx context.Context, input SendMessageInput) (*SendResult, error)
	Approve(ctx context.Context, id, reviewerID string) (*models.OutboxItem, error)
	Reject(ctx context.Context, id, reviewerID, reason string) (*models.OutboxItem, error)
	ListPending(ctx context.Context, limit, offset int) ([]*models.OutboxItem, error)
	Get(ctx context.Context, id string) (*models.OutboxItem, error)
}

// SLAService times how quickly inbound messages receive a reply.
type SLAService interface {
	ListPolicies(ctx context.Context) ([]*models.SlaPolicy, error)
	CreatePolicy(ctx context.Context, name string, targetMinutes int) (*models.SlaPolicy, error)
	OnInboundMessage(ctx context.Context, threadID string, at time.Time) ([]*models.ThreadSla, error)
	OnOutboundMessage(ctx context.Context, threadID string, at time.Time) (int64, error)
	SweepBreaches(ctx context.Context, now time.Time) (int64, error)
	GetThreadSLA(ctx context.Context, threadID string) ([]*models.ThreadSla, error)
}

// ReminderService schedules automated sends tied to business objects.
type ReminderService interface {
	Schedule(ctx context.Context, input ScheduleReminderInput) (*models.ReminderQueueItem, error)
	Cancel(ctx context.Context, id string) (*models.ReminderQueueItem, error)
	List(ctx context.Context, filter models.ReminderFilter) ([]*models.ReminderQueueItem, error)
	DispatchDue(ctx context.Context, now time.Time) (*DispatchSummary, error)
}

// WebhookService ingests provider callbacks.
type WebhookService interface {
	HandleInboundSMS(ctx context.Context, in InboundSMS) error
	HandleDeliveryStatus(ctx context.Context, providerMessageID string, status models.DeliveryStatus) error
	HandleVoiceStatus(ctx context.Context, providerCallID, status string) error
}

// WorkerService runs the periodic SLA sweep and reminder dispatch.
type WorkerService interface {
	Start() error
	Stop() error
	IsRunning() bool
}

type HealthService interface {
	GetHealth(ctx context.Context) *HealthStatus
}
