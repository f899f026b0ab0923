package models

import "time"

type OutboxStatus string

// pending -> sending -> sent | failed, pending -> rejected. sending is
// the claim taken by an approver before the gateway call.
const (
	OutboxStatusPending  OutboxStatus = "pending"
	OutboxStatusSending  OutboxStatus = "sending"
	OutboxStatusSent     OutboxStatus = "sent"
	OutboxStatusRejected OutboxStatus = "rejected"
	OutboxStatusFailed   OutboxStatus = "failed"
)

// Terminal reports whether no further transition is allowed.
func (s OutboxStatus) Terminal() bool {
	return s == OutboxStatusSent || s == OutboxStatusRejected || s == OutboxStatusFailed
}

// Origin tells manual staff sends from automated ones.
type Origin string

const (
	OriginManual     Origin = "manual"
	OriginAutomation Origin = "automation"
)

// OutboxItem is outbound content parked for QA review.
type OutboxItem struct {
	ID                string       `db:"id" json:"id"`
	Channel           Channel      `db:"channel" json:"channel"`
	ContactID         string       `db:"contact_id" json:"contact_id"`
	ToAddress         string       `db:"to_address" json:"to_address"`
	Subject           *string      `db:"subject" json:"subject,omitempty"`
	Body              string       `db:"body" json:"body"`
	TemplateID        *string      `db:"template_id" json:"template_id,omitempty"`
	VersionID         *string      `db:"version_id" json:"version_id,omitempty"`
	Locale            string       `db:"locale" json:"locale"`
	MergeVars         Vars         `db:"merge_vars" json:"merge_vars"`
	Status            OutboxStatus `db:"status" json:"status"`
	ReviewerUserID    *string      `db:"reviewer_user_id" json:"reviewer_user_id,omitempty"`
	ReviewedAt        *time.Time   `db:"reviewed_at" json:"reviewed_at,omitempty"`
	SentAt            *time.Time   `db:"sent_at" json:"sent_at,omitempty"`
	ProviderMessageID *string      `db:"provider_message_id" json:"provider_message_id,omitempty"`
	Error             *string      `db:"error" json:"error,omitempty"`
	CreatedAt         time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time    `db:"updated_at" json:"updated_at"`
}
