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

const contactColumns = `id, first_name, last_name, phone, email, sms_opt_out, created_at, updated_at`

type contactRepository struct {
	db *sqlx.DB
}

func NewContactRepository(db *sqlx.DB) ContactRepository {
	return &contactRepository{db: db}
}

// GetByID retrieves a contact by id.
func (r *contactRepository) GetByID(ctx context.Context, id string) (*models.Contact, error) {
	var contact models.Contact
	err := r.db.GetContext(ctx, &contact, `SELECT `+contactColumns+` FROM contacts WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("contact", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}
	return &contact, nil
}

// GetByPhone retrieves the oldest contact with the given phone number.
func (r *contactRepository) GetByPhone(ctx context.Context, phone string) (*models.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts WHERE phone = $1 ORDER BY created_at ASC LIMIT 1`

	var contact models.Contact
	err := r.db.GetContext(ctx, &contact, query, phone)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("contact with phone", phone)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get contact by phone: %w", err)
	}
	return &contact, nil
}

// SetSMSOptOutByPhone updates the opt-out flag on every contact with the
// given phone number. Contacts already in the requested state are not
// touched.
func (r *contactRepository) SetSMSOptOutByPhone(ctx context.Context, phone string, optOut bool) (int64, error) {
	query := `UPDATE contacts SET sms_opt_out = $2, updated_at = NOW()
		WHERE phone = $1 AND sms_opt_out <> $2`

	res, err := r.db.ExecContext(ctx, query, phone, optOut)
	if err != nil {
		return 0, fmt.Errorf("failed to update sms opt-out: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to update sms opt-out: %w", err)
	}
	return n, nil
}
