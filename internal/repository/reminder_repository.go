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

const reminderColumns = `id, target_type, target_id, contact_id, channel, template_id, locale, vars, scheduled_for,
	status, dispatched_at, error, created_at, updated_at`

const defaultReminderLimit = 100

type reminderRepository struct {
	db *sqlx.DB
}

func NewReminderRepository(db *sqlx.DB) ReminderRepository {
	return &reminderRepository{db: db}
}

// Create schedules a reminder. When a pending reminder already exists for
// the same (target, channel, template) it is returned instead.
func (r *reminderRepository) Create(ctx context.Context, item *models.ReminderQueueItem) (*models.ReminderQueueItem, error) {
	if item.ID == "" {
		item.ID = newID()
	}

	insert := `
		INSERT INTO reminder_queue (id, target_type, target_id, contact_id, channel, template_id, locale, vars,
			scheduled_for, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, 'pending', NOW(), NOW())
		ON CONFLICT (target_type, target_id, channel, template_id) WHERE status = 'pending' DO NOTHING
		RETURNING ` + reminderColumns

	existing := `SELECT ` + reminderColumns + ` FROM reminder_queue
		WHERE target_type = $1 AND target_id = $2 AND channel = $3 AND template_id = $4 AND status = 'pending'`

	// The pending row can be dispatched between the two statements, so
	// retry once before giving up.
	for attempt := 0; attempt < 2; attempt++ {
		var created models.ReminderQueueItem
		err := r.db.GetContext(ctx, &created, insert,
			item.ID, item.TargetType, item.TargetID, item.ContactID, item.Channel, item.TemplateID,
			item.Locale, item.Vars, item.ScheduledFor,
		)
		if err == nil {
			return &created, nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("failed to create reminder: %w", err)
		}

		var found models.ReminderQueueItem
		err = r.db.GetContext(ctx, &found, existing, item.TargetType, item.TargetID, item.Channel, item.TemplateID)
		if err == nil {
			return &found, nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("failed to load pending reminder: %w", err)
		}
	}

	return nil, fmt.Errorf("failed to create reminder: pending slot contended")
}

// GetByID retrieves a reminder.
func (r *reminderRepository) GetByID(ctx context.Context, id string) (*models.ReminderQueueItem, error) {
	var item models.ReminderQueueItem
	err := r.db.GetContext(ctx, &item, `SELECT `+reminderColumns+` FROM reminder_queue WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("reminder", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get reminder: %w", err)
	}
	return &item, nil
}

// List returns reminders ordered by schedule time.
func (r *reminderRepository) List(ctx context.Context, filter models.ReminderFilter) ([]*models.ReminderQueueItem, error) {
	var (
		where []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Status != "" {
		where = append(where, "status = "+arg(filter.Status))
	}
	if filter.TargetType != "" {
		where = append(where, "target_type = "+arg(filter.TargetType))
	}
	if filter.TargetID != "" {
		where = append(where, "target_id = "+arg(filter.TargetID))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultReminderLimit
	}

	query := `SELECT ` + reminderColumns + ` FROM reminder_queue`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY scheduled_for ASC, id ASC LIMIT ` + arg(limit) + ` OFFSET ` + arg(filter.Offset)

	var items []*models.ReminderQueueItem
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list reminders: %w", err)
	}
	return items, nil
}

// Cancel moves a pending reminder to canceled.
func (r *reminderRepository) Cancel(ctx context.Context, id string) (*models.ReminderQueueItem, error) {
	query := `UPDATE reminder_queue SET status = 'canceled', updated_at = NOW()
		WHERE id = $1 AND status = 'pending'
		RETURNING ` + reminderColumns

	var item models.ReminderQueueItem
	err := r.db.GetContext(ctx, &item, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, statusGuardMiss(ctx, r.db, "reminder_queue", "reminder", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to cancel reminder: %w", err)
	}
	return &item, nil
}

// ListDue returns pending reminders scheduled at or before now.
func (r *reminderRepository) ListDue(ctx context.Context, now time.Time, limit int) ([]*models.ReminderQueueItem, error) {
	if limit <= 0 {
		limit = defaultReminderLimit
	}

	query := `SELECT ` + reminderColumns + ` FROM reminder_queue
		WHERE status = 'pending' AND scheduled_for <= $1
		ORDER BY scheduled_for ASC, id ASC
		LIMIT $2`

	var items []*models.ReminderQueueItem
	if err := r.db.SelectContext(ctx, &items, query, now, limit); err != nil {
		return nil, fmt.Errorf("failed to list due reminders: %w", err)
	}
	return items, nil
}

// ClaimForDispatch flips a pending reminder to sent. It reports false when
// another dispatcher, or a cancel, got there first.
func (r *reminderRepository) ClaimForDispatch(ctx context.Context, id string, at time.Time) (bool, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE reminder_queue SET status = 'sent', dispatched_at = $2, updated_at = NOW()
		WHERE id = $1 AND status = 'pending'`, id, at)
	if err != nil {
		return false, fmt.Errorf("failed to claim reminder: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to claim reminder: %w", err)
	}
	return n == 1, nil
}

// MarkFailed records a dispatch failure on a claimed reminder.
func (r *reminderRepository) MarkFailed(ctx context.Context, id, errMsg string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE reminder_queue SET status = 'failed', error = $2, updated_at = NOW()
		WHERE id = $1 AND status = 'sent'`, id, errMsg)
	if err != nil {
		return fmt.Errorf("failed to mark reminder failed: %w", err)
	}
	return nil
}
