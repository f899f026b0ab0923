package models

import "time"

type ThreadStatus string

const (
	ThreadStatusOpen   ThreadStatus = "open"
	ThreadStatusClosed ThreadStatus = "closed"
)

// Thread is one conversation for a (contact, channel) pair.
type Thread struct {
	ID             string       `db:"id" json:"id"`
	ContactID      string       `db:"contact_id" json:"contact_id"`
	Channel        Channel      `db:"channel" json:"channel"`
	LastInboundAt  *time.Time   `db:"last_inbound_at" json:"last_inbound_at,omitempty"`
	LastOutboundAt *time.Time   `db:"last_outbound_at" json:"last_outbound_at,omitempty"`
	UnreadCount    int          `db:"unread_count" json:"unread_count"`
	Status         ThreadStatus `db:"status" json:"status"`
	SnoozeUntil    *time.Time   `db:"snooze_until" json:"snooze_until,omitempty"`
	Muted          bool         `db:"muted" json:"muted"`
	NextSeq        int64        `db:"next_seq" json:"-"`
	CreatedAt      time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time    `db:"updated_at" json:"updated_at"`
}

// ThreadFilter narrows ListThreads. Zero values mean "any".
type ThreadFilter struct {
	ContactID      string
	Channel        Channel
	Status         ThreadStatus
	UnreadOnly     bool
	IncludeSnoozed bool
	Now            time.Time
	Limit          int
	Offset         int
}
