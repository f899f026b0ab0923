package models

import "time"

// SlaPolicy is a named response-time target.
type SlaPolicy struct {
	ID            string    `db:"id" json:"id"`
	Name          string    `db:"name" json:"name"`
	TargetMinutes int       `db:"target_minutes" json:"target_minutes"`
	Active        bool      `db:"active" json:"active"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

// Target returns the policy target as a duration.
func (p *SlaPolicy) Target() time.Duration {
	return time.Duration(p.TargetMinutes) * time.Minute
}

type SlaStatus string

const (
	SlaStatusOpen     SlaStatus = "open"
	SlaStatusMet      SlaStatus = "met"
	SlaStatusBreached SlaStatus = "breached"
)

// ThreadSla is one policy instance applied to a thread. StartedAt is
// the triggering inbound message time.
type ThreadSla struct {
	ID         string     `db:"id" json:"id"`
	ThreadID   string     `db:"thread_id" json:"thread_id"`
	PolicyID   string     `db:"policy_id" json:"policy_id"`
	StartedAt  time.Time  `db:"started_at" json:"started_at"`
	DueAt      time.Time  `db:"due_at" json:"due_at"`
	Status     SlaStatus  `db:"status" json:"status"`
	MetAt      *time.Time `db:"met_at" json:"met_at,omitempty"`
	BreachedAt *time.Time `db:"breached_at" json:"breached_at,omitempty"`
	CreatedAt  time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at" json:"updated_at"`
}
