package repository

import (
	"context"
	"time"

	"github.com/popeskul/crm-comms/internal/models"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_repository.go -package=mocks

// Repository interface defines all repository operations.
type Repository interface {
	// Ping checks database connectivity
	Ping(ctx context.Context) error

	Contact() ContactRepository
	Thread() ThreadRepository
	Message() MessageRepository
	Template() TemplateRepository
	Outbox() OutboxRepository
	SLA() SLARepository
	Reminder() ReminderRepository
	Call() CallRepository
}

// ContactRepository reads the externally owned contact records.
type ContactRepository interface {
	GetByID(ctx context.Context, id string) (*models.Contact, error)
	GetByPhone(ctx context.Context, phone string) (*models.Contact, error)
	// SetSMSOptOutByPhone applies the flag to every contact sharing the
	// number and returns how many changed.
	SetSMSOptOutByPhone(ctx context.Context, phone string, optOut bool) (int64, error)
}

// ThreadRepository owns conversation identity. GetOrCreate is atomic per
// (contact, channel).
type ThreadRepository interface {
	GetOrCreate(ctx context.Context, contactID string, channel models.Channel) (*models.Thread, error)
	GetByID(ctx context.Context, id string) (*models.Thread, error)
	List(ctx context.Context, filter models.ThreadFilter) ([]*models.Thread, error)
	Snooze(ctx context.Context, id string, until time.Time) (*models.Thread, error)
	ToggleMute(ctx context.Context, id string) (*models.Thread, error)
	MarkRead(ctx context.Context, id string) (*models.Thread, error)
}

// AppendMessageParams describes a message to append to a thread.
type AppendMessageParams struct {
	ThreadID  string
	Direction models.Direction
	Channel   models.Channel
	Body      string
	Meta      models.MessageMeta
}

// MessageRepository stores thread history.
type MessageRepository interface {
	Append(ctx context.Context, params AppendMessageParams) (*models.Message, error)
	ListByThread(ctx context.Context, threadID string, limit int, beforeSeq int64) ([]*models.Message, error)
	UpdateDeliveryStatus(ctx context.Context, providerMessageID string, status models.DeliveryStatus) error
}

// TemplateRepository stores templates and their versions. The Find*
// lookups return (nil, nil) when nothing matches.
type TemplateRepository interface {
	Create(ctx context.Context, tpl *models.Template) error
	GetByID(ctx context.Context, id string) (*models.Template, error)
	List(ctx context.Context, includeInactive bool) ([]*models.Template, error)
	Update(ctx context.Context, tpl *models.Template) error
	Deactivate(ctx context.Context, id string) error
	CreateVersion(ctx context.Context, version *models.TemplateVersion) error
	GetVersion(ctx context.Context, id string) (*models.TemplateVersion, error)
	ListVersions(ctx context.Context, templateID string) ([]*models.TemplateVersion, error)
	ApproveVersion(ctx context.Context, id string, at time.Time) (*models.TemplateVersion, error)
	FindApprovedVersion(ctx context.Context, templateID, locale string) (*models.TemplateVersion, error)
	FindLatestVersion(ctx context.Context, templateID string) (*models.TemplateVersion, error)
}

// OutboxRepository stores QA items. Every transition is a conditional
// update on status.
type OutboxRepository interface {
	Create(ctx context.Context, item *models.OutboxItem) error
	GetByID(ctx context.Context, id string) (*models.OutboxItem, error)
	ListPending(ctx context.Context, limit, offset int) ([]*models.OutboxItem, error)
	Claim(ctx context.Context, id, reviewerID string, at time.Time) (*models.OutboxItem, error)
	MarkSent(ctx context.Context, id, providerMessageID string, at time.Time) (*models.OutboxItem, error)
	MarkFailed(ctx context.Context, id, errMsg string) (*models.OutboxItem, error)
	Reject(ctx context.Context, id, reviewerID, reason string, at time.Time) (*models.OutboxItem, error)
}

// SLARepository stores policies and per-thread SLA instances.
type SLARepository interface {
	CreatePolicy(ctx context.Context, policy *models.SlaPolicy) error
	ListPolicies(ctx context.Context, activeOnly bool) ([]*models.SlaPolicy, error)
	UpsertOpen(ctx context.Context, threadID, policyID string, startedAt, dueAt time.Time) (*models.ThreadSla, error)
	MarkMet(ctx context.Context, threadID string, at time.Time) (int64, error)
	MarkBreached(ctx context.Context, now time.Time) (int64, error)
	ListByThread(ctx context.Context, threadID string) ([]*models.ThreadSla, error)
}

// ReminderRepository stores scheduled automations.
type ReminderRepository interface {
	Create(ctx context.Context, item *models.ReminderQueueItem) (*models.ReminderQueueItem, error)
	GetByID(ctx context.Context, id string) (*models.ReminderQueueItem, error)
	List(ctx context.Context, filter models.ReminderFilter) ([]*models.ReminderQueueItem, error)
	Cancel(ctx context.Context, id string) (*models.ReminderQueueItem, error)
	ListDue(ctx context.Context, now time.Time, limit int) ([]*models.ReminderQueueItem, error)
	ClaimForDispatch(ctx context.Context, id string, at time.Time) (bool, error)
	MarkFailed(ctx context.Context, id, errMsg string) error
}

// CallRepository tracks voice calls.
type CallRepository interface {
	Create(ctx context.Context, call *models.CallLog) error
	UpdateStatus(ctx context.Context, providerCallID, status string) (*models.CallLog, error)
}
