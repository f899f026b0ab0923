package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/popeskul/crm-comms/internal/models"
)

const policyColumns = `id, name, target_minutes, active, created_at`

const threadSlaColumns = `id, thread_id, policy_id, started_at, due_at, status, met_at, breached_at, created_at, updated_at`

type slaRepository struct {
	db *sqlx.DB
}

func NewSLARepository(db *sqlx.DB) SLARepository {
	return &slaRepository{db: db}
}

// CreatePolicy inserts an SLA policy.
func (r *slaRepository) CreatePolicy(ctx context.Context, p *models.SlaPolicy) error {
	if p.ID == "" {
		p.ID = newID()
	}

	query := `INSERT INTO sla_policies (id, name, target_minutes, active, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING created_at`
	if err := r.db.QueryRowxContext(ctx, query, p.ID, p.Name, p.TargetMinutes, p.Active).Scan(&p.CreatedAt); err != nil {
		return fmt.Errorf("failed to create sla policy: %w", err)
	}
	return nil
}

// ListPolicies returns policies by ascending target.
func (r *slaRepository) ListPolicies(ctx context.Context, activeOnly bool) ([]*models.SlaPolicy, error) {
	query := `SELECT ` + policyColumns + ` FROM sla_policies
		WHERE (NOT $1 OR active)
		ORDER BY target_minutes ASC, name ASC`

	var policies []*models.SlaPolicy
	if err := r.db.SelectContext(ctx, &policies, query, activeOnly); err != nil {
		return nil, fmt.Errorf("failed to list sla policies: %w", err)
	}
	return policies, nil
}

// UpsertOpen opens an SLA for (thread, policy) or refreshes the one
// already open.
func (r *slaRepository) UpsertOpen(ctx context.Context, threadID, policyID string, startedAt, dueAt time.Time) (*models.ThreadSla, error) {
	query := `
		INSERT INTO thread_slas (id, thread_id, policy_id, started_at, due_at, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, 'open', NOW(), NOW())
		ON CONFLICT (thread_id, policy_id) WHERE status = 'open'
		DO UPDATE SET started_at = EXCLUDED.started_at, due_at = EXCLUDED.due_at, updated_at = NOW()
		RETURNING ` + threadSlaColumns

	var sla models.ThreadSla
	if err := r.db.GetContext(ctx, &sla, query, newID(), threadID, policyID, startedAt, dueAt); err != nil {
		return nil, fmt.Errorf("failed to upsert thread sla: %w", err)
	}
	return &sla, nil
}

// MarkMet closes every open SLA on the thread that started before at.
// due_at is left as the historical target.
func (r *slaRepository) MarkMet(ctx context.Context, threadID string, at time.Time) (int64, error) {
	query := `UPDATE thread_slas SET status = 'met', met_at = $2, updated_at = NOW()
		WHERE thread_id = $1 AND status = 'open' AND started_at < $2`

	res, err := r.db.ExecContext(ctx, query, threadID, at)
	if err != nil {
		return 0, fmt.Errorf("failed to mark thread sla met: %w", err)
	}
	return res.RowsAffected()
}

// MarkBreached flips every open SLA whose due time has passed.
func (r *slaRepository) MarkBreached(ctx context.Context, now time.Time) (int64, error) {
	query := `UPDATE thread_slas SET status = 'breached', breached_at = $1, updated_at = NOW()
		WHERE status = 'open' AND due_at < $1`

	res, err := r.db.ExecContext(ctx, query, now)
	if err != nil {
		return 0, fmt.Errorf("failed to mark thread slas breached: %w", err)
	}
	return res.RowsAffected()
}

// ListByThread returns the thread's SLA history, newest first.
func (r *slaRepository) ListByThread(ctx context.Context, threadID string) ([]*models.ThreadSla, error) {
	query := `SELECT ` + threadSlaColumns + ` FROM thread_slas
		WHERE thread_id = $1
		ORDER BY started_at DESC, created_at DESC`

	var slas []*models.ThreadSla
	if err := r.db.SelectContext(ctx, &slas, query, threadID); err != nil {
		return nil, fmt.Errorf("failed to list thread slas: %w", err)
	}
	return slas, nil
}
