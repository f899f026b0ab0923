package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/popeskul/crm-comms/internal/apperrors"
	"github.com/popeskul/crm-comms/internal/models"
	"github.com/popeskul/crm-comms/internal/repository"
)

const maxMessagePage = 200

type threadService struct {
	repo   repository.Repository
	sla    SLAService
	logger *zap.Logger
}

func NewThreadService(repo repository.Repository, sla SLAService, logger *zap.Logger) ThreadService {
	return &threadService{
		repo:   repo,
		sla:    sla,
		logger: logger,
	}
}

// GetOrCreateThread returns the conversation for (contactID, channel).
func (s *threadService) GetOrCreateThread(ctx context.Context, contactID string, channel models.Channel) (*models.Thread, error) {
	if contactID == "" {
		return nil, apperrors.Validation("contact_id is required")
	}
	if !channel.Valid() {
		return nil, apperrors.Validation("unsupported channel %q", channel)
	}

	if _, err := s.repo.Contact().GetByID(ctx, contactID); err != nil {
		return nil, err
	}

	thread, err := s.repo.Thread().GetOrCreate(ctx, contactID, channel)
	if err != nil {
		s.logger.Error("Failed to get or create thread",
			zap.String("contact_id", contactID),
			zap.String("channel", string(channel)),
			zap.Error(err))
		return nil, err
	}
	return thread, nil
}

func (s *threadService) GetThread(ctx context.Context, id string) (*models.Thread, error) {
	return s.repo.Thread().GetByID(ctx, id)
}

// ListThreads returns threads by most recent inbound activity. Snoozed
// threads are hidden unless the filter asks for them.
func (s *threadService) ListThreads(ctx context.Context, filter models.ThreadFilter) ([]*models.Thread, error) {
	if filter.Channel != "" && !filter.Channel.Valid() {
		return nil, apperrors.Validation("unsupported channel %q", filter.Channel)
	}
	if filter.Limit < 0 || filter.Offset < 0 {
		return nil, apperrors.Validation("limit and offset must not be negative")
	}
	if filter.Now.IsZero() {
		filter.Now = time.Now()
	}
	return s.repo.Thread().List(ctx, filter)
}

// AppendMessage logs a message on an existing thread using the thread's
// channel. Inbound messages open SLAs and outbound ones satisfy them,
// the same as gateway traffic.
func (s *threadService) AppendMessage(ctx context.Context, input AppendMessageInput) (*models.Message, error) {
	if !input.Direction.Valid() {
		return nil, apperrors.Validation("direction must be inbound or outbound")
	}
	if strings.TrimSpace(input.Body) == "" {
		return nil, apperrors.Validation("body is required")
	}

	thread, err := s.repo.Thread().GetByID(ctx, input.ThreadID)
	if err != nil {
		return nil, err
	}

	msg, err := s.repo.Message().Append(ctx, repository.AppendMessageParams{
		ThreadID:  thread.ID,
		Direction: input.Direction,
		Channel:   thread.Channel,
		Body:      input.Body,
		Meta:      input.Meta,
	})
	if err != nil {
		return nil, err
	}

	// The message is stored; SLA bookkeeping failures are logged only.
	if input.Direction == models.DirectionInbound {
		_, err = s.sla.OnInboundMessage(ctx, thread.ID, msg.CreatedAt)
	} else {
		_, err = s.sla.OnOutboundMessage(ctx, thread.ID, msg.CreatedAt)
	}
	if err != nil {
		s.logger.Error("Failed to update thread SLA",
			zap.String("thread_id", thread.ID),
			zap.String("direction", string(input.Direction)),
			zap.Error(err))
	}
	return msg, nil
}

// ListMessages pages backwards through history; beforeSeq 0 starts at
// the newest message. The page is returned in ascending order.
func (s *threadService) ListMessages(ctx context.Context, threadID string, limit int, beforeSeq int64) ([]*models.Message, error) {
	if limit < 0 || beforeSeq < 0 {
		return nil, apperrors.Validation("limit and before_seq must not be negative")
	}
	if limit > maxMessagePage {
		limit = maxMessagePage
	}

	if _, err := s.repo.Thread().GetByID(ctx, threadID); err != nil {
		return nil, err
	}
	return s.repo.Message().ListByThread(ctx, threadID, limit, beforeSeq)
}

func (s *threadService) Snooze(ctx context.Context, id string, minutes int) (*models.Thread, error) {
	if minutes <= 0 {
		return nil, apperrors.Validation("minutes must be positive")
	}
	until := time.Now().Add(time.Duration(minutes) * time.Minute)
	return s.repo.Thread().Snooze(ctx, id, until)
}

func (s *threadService) ToggleMute(ctx context.Context, id string) (*models.Thread, error) {
	return s.repo.Thread().ToggleMute(ctx, id)
}

func (s *threadService) MarkRead(ctx context.Context, id string) (*models.Thread, error) {
	return s.repo.Thread().MarkRead(ctx, id)
}
