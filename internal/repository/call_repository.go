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

const callColumns = `id, contact_id, thread_id, provider_call_id, status, created_at, updated_at`

type callRepository struct {
	db *sqlx.DB
}

func NewCallRepository(db *sqlx.DB) CallRepository {
	return &callRepository{db: db}
}

// Create records a placed call.
func (r *callRepository) Create(ctx context.Context, call *models.CallLog) error {
	if call.ID == "" {
		call.ID = newID()
	}

	query := `INSERT INTO call_logs (id, contact_id, thread_id, provider_call_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING created_at, updated_at`
	err := r.db.QueryRowxContext(ctx, query, call.ID, call.ContactID, call.ThreadID, call.ProviderCallID, call.Status).
		Scan(&call.CreatedAt, &call.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create call log: %w", err)
	}
	return nil
}

// UpdateStatus applies a provider status callback.
func (r *callRepository) UpdateStatus(ctx context.Context, providerCallID, status string) (*models.CallLog, error) {
	query := `UPDATE call_logs SET status = $2, updated_at = NOW()
		WHERE provider_call_id = $1
		RETURNING ` + callColumns

	var call models.CallLog
	err := r.db.GetContext(ctx, &call, query, providerCallID, status)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("call", providerCallID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update call status: %w", err)
	}
	return &call, nil
}
