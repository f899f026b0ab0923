package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/popeskul/crm-comms/internal/apperrors"
	"github.com/popeskul/crm-comms/internal/models"
)

const messageColumns = `id, thread_id, seq, direction, channel, body, subject, provider_message_id, delivery_status, created_at`

const defaultMessageLimit = 100

type messageRepository struct {
	db *sqlx.DB
}

func NewMessageRepository(db *sqlx.DB) MessageRepository {
	return &messageRepository{
		db: db,
	}
}

// Append inserts a message at the end of its thread. The thread row is
// updated first, which locks it for the transaction and hands out the
// next sequence number together with the activity timestamps.
func (r *messageRepository) Append(ctx context.Context, p AppendMessageParams) (*models.Message, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	bumpQuery := `
		UPDATE threads
		SET next_seq = next_seq + 1,
		    last_inbound_at = CASE WHEN $2 = 'inbound' THEN NOW() ELSE last_inbound_at END,
		    last_outbound_at = CASE WHEN $2 = 'outbound' THEN NOW() ELSE last_outbound_at END,
		    unread_count = CASE WHEN $2 = 'inbound' THEN unread_count + 1 ELSE unread_count END,
		    updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING next_seq
	`

	var seq int64
	err = tx.GetContext(ctx, &seq, bumpQuery, p.ThreadID, string(p.Direction))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("thread", p.ThreadID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to advance thread sequence: %w", err)
	}

	status := p.Meta.DeliveryStatus
	if status == "" {
		if p.Direction == models.DirectionInbound {
			status = models.DeliveryStatusReceived
		} else {
			status = models.DeliveryStatusQueued
		}
	}

	insertQuery := `
		INSERT INTO messages (id, thread_id, seq, direction, channel, body, subject, provider_message_id, delivery_status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		RETURNING ` + messageColumns

	var msg models.Message
	err = tx.GetContext(ctx, &msg, insertQuery,
		newID(), p.ThreadID, seq, p.Direction, p.Channel, p.Body, p.Meta.Subject, p.Meta.ProviderMessageID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to insert message: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit message: %w", err)
	}
	return &msg, nil
}

// ListByThread returns up to limit messages in ascending thread order.
// When beforeSeq is positive only messages before it are considered, so
// callers can page backwards through history.
func (r *messageRepository) ListByThread(ctx context.Context, threadID string, limit int, beforeSeq int64) ([]*models.Message, error) {
	if limit <= 0 {
		limit = defaultMessageLimit
	}

	query := `
		SELECT ` + messageColumns + ` FROM (
			SELECT ` + messageColumns + ` FROM messages
			WHERE thread_id = $1 AND ($2 <= 0 OR seq < $2)
			ORDER BY seq DESC
			LIMIT $3
		) page
		ORDER BY seq ASC
	`

	var messages []*models.Message
	if err := r.db.SelectContext(ctx, &messages, query, threadID, beforeSeq, limit); err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return messages, nil
}

// UpdateDeliveryStatus applies a provider delivery callback.
func (r *messageRepository) UpdateDeliveryStatus(ctx context.Context, providerMessageID string, status models.DeliveryStatus) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE messages SET delivery_status = $2 WHERE provider_message_id = $1`, providerMessageID, status)
	if err != nil {
		return fmt.Errorf("failed to update delivery status: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update delivery status: %w", err)
	}
	if n == 0 {
		return apperrors.NotFound("message with provider id", providerMessageID)
	}
	return nil
}
