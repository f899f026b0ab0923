package models

import "time"

// CallLog tracks an outbound voice call by the provider's call id.
type CallLog struct {
	ID             string    `db:"id" json:"id"`
	ContactID      string    `db:"contact_id" json:"contact_id"`
	ThreadID       *string   `db:"thread_id" json:"thread_id,omitempty"`
	ProviderCallID string    `db:"provider_call_id" json:"provider_call_id"`
	Status         string    `db:"status" json:"status"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}
