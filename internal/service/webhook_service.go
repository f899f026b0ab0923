package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/popeskul/crm-comms/internal/apperrors"
	"github.com/popeskul/crm-comms/internal/events"
	"github.com/popeskul/crm-comms/internal/metrics"
	"github.com/popeskul/crm-comms/internal/models"
	"github.com/popeskul/crm-comms/internal/repository"
)

type webhookService struct {
	repo          repository.Repository
	sla           SLAService
	publisher     events.Publisher
	stopKeywords  map[string]struct{}
	startKeywords map[string]struct{}
	logger        *zap.Logger
}

func NewWebhookService(
	repo repository.Repository,
	sla SLAService,
	publisher events.Publisher,
	stopKeywords, startKeywords []string,
	logger *zap.Logger,
) WebhookService {
	return &webhookService{
		repo:          repo,
		sla:           sla,
		publisher:     publisher,
		stopKeywords:  keywordSet(stopKeywords),
		startKeywords: keywordSet(startKeywords),
		logger:        logger,
	}
}

// HandleInboundSMS files an inbound text on the sender's SMS thread,
// applies opt-out keywords and starts the SLA clock.
func (s *webhookService) HandleInboundSMS(ctx context.Context, in InboundSMS) error {
	if strings.TrimSpace(in.From) == "" {
		return apperrors.Validation("from is required")
	}

	contact, err := s.repo.Contact().GetByPhone(ctx, in.From)
	if err != nil {
		return err
	}

	thread, err := s.repo.Thread().GetOrCreate(ctx, contact.ID, models.ChannelSMS)
	if err != nil {
		return err
	}

	msg, err := s.repo.Message().Append(ctx, repository.AppendMessageParams{
		ThreadID:  thread.ID,
		Direction: models.DirectionInbound,
		Channel:   models.ChannelSMS,
		Body:      in.Body,
		Meta: models.MessageMeta{
			ProviderMessageID: in.ProviderMessageID,
			DeliveryStatus:    models.DeliveryStatusReceived,
		},
	})
	if err != nil {
		return err
	}
	metrics.InboundMessages.WithLabelValues(string(models.ChannelSMS)).Inc()

	if err := s.applyKeywords(ctx, in.From, in.Body); err != nil {
		return err
	}

	if _, err := s.sla.OnInboundMessage(ctx, thread.ID, msg.CreatedAt); err != nil {
		return fmt.Errorf("failed to start sla: %w", err)
	}
	return nil
}

// applyKeywords sets the opt-out flag for the sending number. The flag
// follows the phone, so every contact sharing it is updated.
func (s *webhookService) applyKeywords(ctx context.Context, phone, body string) error {
	word := strings.ToUpper(strings.TrimSpace(body))

	var optOut bool
	switch {
	case has(s.stopKeywords, word):
		optOut = true
	case has(s.startKeywords, word):
		optOut = false
	default:
		return nil
	}

	changed, err := s.repo.Contact().SetSMSOptOutByPhone(ctx, phone, optOut)
	if err != nil {
		return err
	}
	if changed > 0 {
		s.logger.Info("SMS opt-out changed by keyword",
			zap.String("phone", phone),
			zap.String("keyword", word),
			zap.Bool("opt_out", optOut),
			zap.Int64("contacts", changed))
	}
	return nil
}

func (s *webhookService) HandleDeliveryStatus(ctx context.Context, providerMessageID string, status models.DeliveryStatus) error {
	if providerMessageID == "" {
		return apperrors.Validation("message id is required")
	}
	if !validDeliveryStatus(status) {
		return apperrors.Validation("unknown delivery status %q", status)
	}

	if err := s.repo.Message().UpdateDeliveryStatus(ctx, providerMessageID, status); err != nil {
		return err
	}

	s.publish(ctx, events.New(events.TypeDeliveryStatus, map[string]string{
		"provider_message_id": providerMessageID,
		"status":              string(status),
	}))
	return nil
}

// HandleVoiceStatus updates the call log and announces the new status.
func (s *webhookService) HandleVoiceStatus(ctx context.Context, providerCallID, status string) error {
	status = strings.ToLower(strings.TrimSpace(status))
	if providerCallID == "" || status == "" {
		return apperrors.Validation("call id and status are required")
	}

	call, err := s.repo.Call().UpdateStatus(ctx, providerCallID, status)
	if err != nil {
		return err
	}

	s.publish(ctx, events.New(events.TypeCallStatus, map[string]string{
		"call_id":          call.ID,
		"provider_call_id": call.ProviderCallID,
		"contact_id":       call.ContactID,
		"status":           call.Status,
	}))
	return nil
}

func (s *webhookService) publish(ctx context.Context, event events.Event) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("Failed to publish event", zap.String("type", event.Type), zap.Error(err))
	}
}

func validDeliveryStatus(status models.DeliveryStatus) bool {
	switch status {
	case models.DeliveryStatusQueued, models.DeliveryStatusSent, models.DeliveryStatusDelivered,
		models.DeliveryStatusUndelivered, models.DeliveryStatusFailed:
		return true
	}
	return false
}

func keywordSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[strings.ToUpper(strings.TrimSpace(w))] = struct{}{}
	}
	return set
}

func has(set map[string]struct{}, word string) bool {
	_, ok := set[word]
	return ok
}
