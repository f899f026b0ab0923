package models

import "time"

type ReminderStatus string

const (
	ReminderStatusPending  ReminderStatus = "pending"
	ReminderStatusSent     ReminderStatus = "sent"
	ReminderStatusCanceled ReminderStatus = "canceled"
	ReminderStatusFailed   ReminderStatus = "failed"
)

// ReminderQueueItem is a scheduled automated communication tied to a
// business object such as an application missing documents.
type ReminderQueueItem struct {
	ID           string         `db:"id" json:"id"`
	TargetType   string         `db:"target_type" json:"target_type"`
	TargetID     string         `db:"target_id" json:"target_id"`
	ContactID    string         `db:"contact_id" json:"contact_id"`
	Channel      Channel        `db:"channel" json:"channel"`
	TemplateID   string         `db:"template_id" json:"template_id"`
	Locale       string         `db:"locale" json:"locale"`
	Vars         Vars           `db:"vars" json:"vars"`
	ScheduledFor time.Time      `db:"scheduled_for" json:"scheduled_for"`
	Status       ReminderStatus `db:"status" json:"status"`
	DispatchedAt *time.Time     `db:"dispatched_at" json:"dispatched_at,omitempty"`
	Error        *string        `db:"error" json:"error,omitempty"`
	CreatedAt    time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at" json:"updated_at"`
}

// ReminderFilter narrows ListReminders.
type ReminderFilter struct {
	Status     ReminderStatus
	TargetType string
	TargetID   string
	Limit      int
	Offset     int
}
