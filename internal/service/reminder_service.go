package service

import (
	"context"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/popeskul/crm-comms/internal/apperrors"
	"github.com/popeskul/crm-comms/internal/metrics"
	"github.com/popeskul/crm-comms/internal/models"
	"github.com/popeskul/crm-comms/internal/repository"
)

type reminderService struct {
	repo          repository.Repository
	outbox        OutboxService
	batchSize     int
	defaultLocale string
	logger        *zap.Logger
}

func NewReminderService(
	repo repository.Repository,
	outbox OutboxService,
	batchSize int,
	defaultLocale string,
	logger *zap.Logger,
) ReminderService {
	return &reminderService{
		repo:          repo,
		outbox:        outbox,
		batchSize:     batchSize,
		defaultLocale: defaultLocale,
		logger:        logger,
	}
}

// Schedule queues an automated send delayHours from now. A pending
// reminder for the same target, channel and template is returned
// instead of scheduling a second one.
func (s *reminderService) Schedule(ctx context.Context, input ScheduleReminderInput) (*models.ReminderQueueItem, error) {
	switch {
	case input.TargetType == "" || input.TargetID == "":
		return nil, apperrors.Validation("target_type and target_id are required")
	case input.ContactID == "":
		return nil, apperrors.Validation("contact_id is required")
	case input.TemplateID == "":
		return nil, apperrors.Validation("template_id is required")
	case !input.Channel.Valid():
		return nil, apperrors.Validation("unsupported channel %q", input.Channel)
	case input.DelayHours < 0 || math.IsNaN(input.DelayHours) || math.IsInf(input.DelayHours, 0):
		return nil, apperrors.Validation("delay_hours must be a non-negative number")
	}

	if _, err := s.repo.Contact().GetByID(ctx, input.ContactID); err != nil {
		return nil, err
	}
	tpl, err := s.repo.Template().GetByID(ctx, input.TemplateID)
	if err != nil {
		return nil, err
	}
	if tpl.Channel != input.Channel {
		return nil, apperrors.Validation("template %s is for channel %s, not %s", tpl.ID, tpl.Channel, input.Channel)
	}

	locale := normalizeLocale(input.Locale)
	if locale == "" {
		locale = s.defaultLocale
	}
	vars := input.Vars
	if vars == nil {
		vars = models.Vars{}
	}

	delay := time.Duration(input.DelayHours * float64(time.Hour))
	item, err := s.repo.Reminder().Create(ctx, &models.ReminderQueueItem{
		TargetType:   input.TargetType,
		TargetID:     input.TargetID,
		ContactID:    input.ContactID,
		Channel:      input.Channel,
		TemplateID:   input.TemplateID,
		Locale:       locale,
		Vars:         vars,
		ScheduledFor: time.Now().Add(delay),
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Reminder scheduled",
		zap.String("reminder_id", item.ID),
		zap.String("target_type", item.TargetType),
		zap.String("target_id", item.TargetID),
		zap.Time("scheduled_for", item.ScheduledFor))
	return item, nil
}

// Cancel stops a reminder that has not been dispatched yet.
func (s *reminderService) Cancel(ctx context.Context, id string) (*models.ReminderQueueItem, error) {
	return s.repo.Reminder().Cancel(ctx, id)
}

func (s *reminderService) List(ctx context.Context, filter models.ReminderFilter) ([]*models.ReminderQueueItem, error) {
	if filter.Limit < 0 || filter.Offset < 0 {
		return nil, apperrors.Validation("limit and offset must not be negative")
	}
	return s.repo.Reminder().List(ctx, filter)
}

// DispatchDue routes every due reminder through the outbox. Each item is
// claimed with a status check first, so a cancel that landed after the
// select is honored and a claimed item is never sent twice.
func (s *reminderService) DispatchDue(ctx context.Context, now time.Time) (*DispatchSummary, error) {
	due, err := s.repo.Reminder().ListDue(ctx, now, s.batchSize)
	if err != nil {
		return nil, err
	}

	summary := &DispatchSummary{}
	for _, item := range due {
		if ctx.Err() != nil {
			return summary, ctx.Err()
		}

		claimed, err := s.repo.Reminder().ClaimForDispatch(ctx, item.ID, now)
		if err != nil {
			s.logger.Error("Failed to claim reminder", zap.String("reminder_id", item.ID), zap.Error(err))
			summary.Failed++
			continue
		}
		if !claimed {
			summary.Skipped++
			metrics.ReminderDispatches.WithLabelValues("skipped").Inc()
			continue
		}
		summary.Claimed++

		_, err = s.outbox.SendMessage(ctx, SendMessageInput{
			Channel:    item.Channel,
			ContactID:  item.ContactID,
			Origin:     models.OriginAutomation,
			TemplateID: item.TemplateID,
			Locale:     item.Locale,
			Vars:       item.Vars,
		})
		if err != nil {
			settleCtx, cancel := settleContext(ctx)
			markErr := s.repo.Reminder().MarkFailed(settleCtx, item.ID, err.Error())
			cancel()
			if markErr != nil {
				s.logger.Error("Failed to mark reminder failed", zap.String("reminder_id", item.ID), zap.Error(markErr))
			}
			summary.Failed++
			metrics.ReminderDispatches.WithLabelValues("failed").Inc()
			s.logger.Warn("Reminder dispatch failed", zap.String("reminder_id", item.ID), zap.Error(err))
			continue
		}

		summary.Sent++
		metrics.ReminderDispatches.WithLabelValues("sent").Inc()
	}

	if len(due) > 0 {
		s.logger.Info("Reminder dispatch finished",
			zap.Int("due", len(due)),
			zap.Int("sent", summary.Sent),
			zap.Int("failed", summary.Failed),
			zap.Int("skipped", summary.Skipped))
	}
	return summary, nil
}
