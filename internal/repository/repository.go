// Package repository provides PostgreSQL-backed stores for every entity.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/popeskul/crm-comms/internal/apperrors"
)

// repositoryImpl is the concrete implementation of Repository interface.
type repositoryImpl struct {
	db       *sqlx.DB
	contact  ContactRepository
	thread   ThreadRepository
	message  MessageRepository
	template TemplateRepository
	outbox   OutboxRepository
	sla      SLARepository
	reminder ReminderRepository
	call     CallRepository
}

// NewRepository creates a new repository instance.
func NewRepository(db *sqlx.DB) Repository {
	return &repositoryImpl{
		db:       db,
		contact:  NewContactRepository(db),
		thread:   NewThreadRepository(db),
		message:  NewMessageRepository(db),
		template: NewTemplateRepository(db),
		outbox:   NewOutboxRepository(db),
		sla:      NewSLARepository(db),
		reminder: NewReminderRepository(db),
		call:     NewCallRepository(db),
	}
}

func (r *repositoryImpl) Contact() ContactRepository   { return r.contact }
func (r *repositoryImpl) Thread() ThreadRepository     { return r.thread }
func (r *repositoryImpl) Message() MessageRepository   { return r.message }
func (r *repositoryImpl) Template() TemplateRepository { return r.template }
func (r *repositoryImpl) Outbox() OutboxRepository     { return r.outbox }
func (r *repositoryImpl) SLA() SLARepository           { return r.sla }
func (r *repositoryImpl) Reminder() ReminderRepository { return r.reminder }
func (r *repositoryImpl) Call() CallRepository         { return r.call }

// Ping checks if the database connection is healthy.
func (r *repositoryImpl) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	return r.db.PingContext(ctx)
}

func newID() string {
	return uuid.New().String()
}

// statusGuardMiss explains why a conditional update on status matched no
// row: the row is missing, or its status did not allow the transition.
func statusGuardMiss(ctx context.Context, db sqlx.QueryerContext, table, entity, id string) error {
	var status string
	err := sqlx.GetContext(ctx, db, &status, fmt.Sprintf(`SELECT status FROM %s WHERE id = $1`, table), id)
	if errors.Is(err, sql.ErrNoRows) {
		return apperrors.NotFound(entity, id)
	}
	if err != nil {
		return fmt.Errorf("failed to read %s status: %w", entity, err)
	}
	return apperrors.Conflict(entity, id, status)
}
