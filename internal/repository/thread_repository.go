package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/popeskul/crm-comms/internal/apperrors"
	"github.com/popeskul/crm-comms/internal/models"
)

const threadColumns = `id, contact_id, channel, last_inbound_at, last_outbound_at, unread_count,
	status, snooze_until, muted, next_seq, created_at, updated_at`

const defaultThreadLimit = 50

type threadRepository struct {
	db *sqlx.DB
}

func NewThreadRepository(db *sqlx.DB) ThreadRepository {
	return &threadRepository{db: db}
}

// GetOrCreate returns the live thread for (contactID, channel), creating
// it on first use. The upsert against the partial unique index makes
// concurrent first calls converge on one row.
func (r *threadRepository) GetOrCreate(ctx context.Context, contactID string, channel models.Channel) (*models.Thread, error) {
	query := `
		INSERT INTO threads (id, contact_id, channel, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (contact_id, channel) WHERE deleted_at IS NULL
		DO UPDATE SET contact_id = EXCLUDED.contact_id
		RETURNING ` + threadColumns

	var thread models.Thread
	if err := r.db.GetContext(ctx, &thread, query, newID(), contactID, channel, models.ThreadStatusOpen); err != nil {
		return nil, fmt.Errorf("failed to get or create thread: %w", err)
	}
	return &thread, nil
}

// GetByID retrieves a live thread.
func (r *threadRepository) GetByID(ctx context.Context, id string) (*models.Thread, error) {
	query := `SELECT ` + threadColumns + ` FROM threads WHERE id = $1 AND deleted_at IS NULL`

	var thread models.Thread
	err := r.db.GetContext(ctx, &thread, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("thread", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get thread: %w", err)
	}
	return &thread, nil
}

// List returns threads ordered by last inbound activity, never-contacted
// threads last.
func (r *threadRepository) List(ctx context.Context, filter models.ThreadFilter) ([]*models.Thread, error) {
	conds := []string{"deleted_at IS NULL"}
	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.ContactID != "" {
		conds = append(conds, "contact_id = "+arg(filter.ContactID))
	}
	if filter.Channel != "" {
		conds = append(conds, "channel = "+arg(filter.Channel))
	}
	if filter.Status != "" {
		conds = append(conds, "status = "+arg(filter.Status))
	}
	if filter.UnreadOnly {
		conds = append(conds, "unread_count > 0")
	}
	if !filter.IncludeSnoozed {
		now := filter.Now
		if now.IsZero() {
			now = time.Now()
		}
		conds = append(conds, "(snooze_until IS NULL OR snooze_until <= "+arg(now)+")")
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultThreadLimit
	}

	query := `SELECT ` + threadColumns + ` FROM threads
		WHERE ` + strings.Join(conds, " AND ") + `
		ORDER BY last_inbound_at DESC NULLS LAST, created_at DESC
		LIMIT ` + arg(limit) + ` OFFSET ` + arg(filter.Offset)

	var threads []*models.Thread
	if err := r.db.SelectContext(ctx, &threads, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list threads: %w", err)
	}
	return threads, nil
}

// Snooze sets snooze_until.
func (r *threadRepository) Snooze(ctx context.Context, id string, until time.Time) (*models.Thread, error) {
	return r.update(ctx, id, `snooze_until = $2`, until)
}

// ToggleMute flips the muted flag.
func (r *threadRepository) ToggleMute(ctx context.Context, id string) (*models.Thread, error) {
	return r.update(ctx, id, `muted = NOT muted`)
}

// MarkRead resets the unread counter.
func (r *threadRepository) MarkRead(ctx context.Context, id string) (*models.Thread, error) {
	return r.update(ctx, id, `unread_count = 0`)
}

func (r *threadRepository) update(ctx context.Context, id, set string, args ...any) (*models.Thread, error) {
	query := `UPDATE threads SET ` + set + `, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING ` + threadColumns

	var thread models.Thread
	err := r.db.GetContext(ctx, &thread, query, append([]any{id}, args...)...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("thread", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update thread: %w", err)
	}
	return &thread, nil
}
