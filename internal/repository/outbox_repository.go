package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/popeskul/crm-comms/internal/apperrors"
	"github.com/popeskul/crm-comms/internal/models"
)

const outboxColumns = `id, channel, contact_id, to_address, subject, body, template_id, version_id, locale, merge_vars,
	status, reviewer_user_id, reviewed_at, sent_at, provider_message_id, error, created_at, updated_at`

const defaultOutboxLimit = 50

type outboxRepository struct {
	db *sqlx.DB
}

func NewOutboxRepository(db *sqlx.DB) OutboxRepository {
	return &outboxRepository{db: db}
}

// Create inserts a pending item.
func (r *outboxRepository) Create(ctx context.Context, item *models.OutboxItem) error {
	if item.ID == "" {
		item.ID = newID()
	}
	item.Status = models.OutboxStatusPending

	query := `
		INSERT INTO outbox_items (id, channel, contact_id, to_address, subject, body, template_id, version_id,
			locale, merge_vars, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRowxContext(ctx, query,
		item.ID, item.Channel, item.ContactID, item.ToAddress, item.Subject, item.Body,
		item.TemplateID, item.VersionID, item.Locale, item.MergeVars, item.Status,
	).Scan(&item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create outbox item: %w", err)
	}
	return nil
}

// GetByID retrieves an outbox item.
func (r *outboxRepository) GetByID(ctx context.Context, id string) (*models.OutboxItem, error) {
	var item models.OutboxItem
	err := r.db.GetContext(ctx, &item, `SELECT `+outboxColumns+` FROM outbox_items WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("outbox item", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get outbox item: %w", err)
	}
	return &item, nil
}

// ListPending returns items awaiting review, oldest first.
func (r *outboxRepository) ListPending(ctx context.Context, limit, offset int) ([]*models.OutboxItem, error) {
	if limit <= 0 {
		limit = defaultOutboxLimit
	}

	query := `SELECT ` + outboxColumns + ` FROM outbox_items
		WHERE status = $1
		ORDER BY created_at ASC, id ASC
		LIMIT $2 OFFSET $3`

	var items []*models.OutboxItem
	if err := r.db.SelectContext(ctx, &items, query, models.OutboxStatusPending, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to list pending outbox items: %w", err)
	}
	return items, nil
}

// Claim is the approval compare-and-swap: pending -> sending, recording
// the reviewer. Exactly one concurrent approver wins.
func (r *outboxRepository) Claim(ctx context.Context, id, reviewerID string, at time.Time) (*models.OutboxItem, error) {
	return r.transition(ctx, id, models.OutboxStatusPending,
		`status = 'sending', reviewer_user_id = $3, reviewed_at = $4`, reviewerID, at)
}

// MarkSent finishes a claimed item.
func (r *outboxRepository) MarkSent(ctx context.Context, id, providerMessageID string, at time.Time) (*models.OutboxItem, error) {
	return r.transition(ctx, id, models.OutboxStatusSending,
		`status = 'sent', provider_message_id = $3, sent_at = $4`, providerMessageID, at)
}

// MarkFailed finishes a claimed item with the gateway error.
func (r *outboxRepository) MarkFailed(ctx context.Context, id, errMsg string) (*models.OutboxItem, error) {
	return r.transition(ctx, id, models.OutboxStatusSending, `status = 'failed', error = $3`, errMsg)
}

// Reject moves a pending item to rejected with the reviewer's reason.
func (r *outboxRepository) Reject(ctx context.Context, id, reviewerID, reason string, at time.Time) (*models.OutboxItem, error) {
	return r.transition(ctx, id, models.OutboxStatusPending,
		`status = 'rejected', reviewer_user_id = $3, error = $4, reviewed_at = $5`, reviewerID, reason, at)
}

// transition applies set only when the row is currently in from. $1 is
// the id and $2 the expected status; set's own placeholders start at $3.
func (r *outboxRepository) transition(ctx context.Context, id string, from models.OutboxStatus, set string, args ...any) (*models.OutboxItem, error) {
	query := `UPDATE outbox_items SET ` + set + `, updated_at = NOW()
		WHERE id = $1 AND status = $2
		RETURNING ` + outboxColumns

	var item models.OutboxItem
	err := r.db.GetContext(ctx, &item, query, append([]any{id, from}, args...)...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, statusGuardMiss(ctx, r.db, "outbox_items", "outbox item", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update outbox item: %w", err)
	}
	return &item, nil
}
