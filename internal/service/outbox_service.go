package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/popeskul/crm-comms/internal/apperrors"
	"github.com/popeskul/crm-comms/internal/config"
	"github.com/popeskul/crm-comms/internal/cooldown"
	"github.com/popeskul/crm-comms/internal/gateway"
	"github.com/popeskul/crm-comms/internal/metrics"
	"github.com/popeskul/crm-comms/internal/models"
	"github.com/popeskul/crm-comms/internal/repository"
)

const (
	callStatusInitiated = "initiated"

	// settleTimeout bounds the writes that follow a gateway send.
	settleTimeout = 10 * time.Second
)

// settleContext detaches state writes from the caller's cancellation.
// Once an item is claimed it must reach a terminal status even if the
// request that claimed it is gone.
func settleContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), settleTimeout)
}

type outboxService struct {
	cfg       *config.Config
	repo      repository.Repository
	templates TemplateService
	sla       SLAService
	sender    gateway.Sender
	limiter   cooldown.Limiter
	logger    *zap.Logger
}

func NewOutboxService(
	cfg *config.Config,
	repo repository.Repository,
	templates TemplateService,
	sla SLAService,
	sender gateway.Sender,
	limiter cooldown.Limiter,
	logger *zap.Logger,
) OutboxService {
	return &outboxService{
		cfg:       cfg,
		repo:      repo,
		templates: templates,
		sla:       sla,
		sender:    sender,
		limiter:   limiter,
		logger:    logger,
	}
}

// EnqueueOrSend applies the opt-out and cooldown rules for automated
// content, then parks it for QA when the channel requires review or
// sends it through the channel gateway.
func (s *outboxService) EnqueueOrSend(ctx context.Context, req SendRequest) (*SendResult, error) {
	if req.Origin == "" {
		req.Origin = models.OriginManual
	}
	if err := validateSendRequest(req); err != nil {
		return nil, err
	}

	contact, err := s.repo.Contact().GetByID(ctx, req.ContactID)
	if err != nil {
		return nil, err
	}
	to := contact.Address(req.Channel)
	if to == "" {
		return nil, apperrors.Validation("contact %s has no %s address", contact.ID, req.Channel)
	}

	automated := req.Origin == models.OriginAutomation
	if automated && req.Channel == models.ChannelSMS && contact.SMSOptOut {
		metrics.OptOutRejections.Inc()
		return nil, apperrors.OptOut(contact.ID)
	}

	if automated {
		key := cooldown.Key(s.cfg.Cooldown.KeyPrefix, contact.ID, string(req.Channel))
		if err := s.limiter.Enforce(ctx, key, s.cfg.Cooldown.Window()); err != nil {
			if errors.Is(err, apperrors.ErrCooldownActive) {
				metrics.CooldownRejections.WithLabelValues(string(req.Channel)).Inc()
			}
			return nil, err
		}
	}

	if automated && s.cfg.Outbox.RequiresQA(string(req.Channel)) {
		item := &models.OutboxItem{
			Channel:    req.Channel,
			ContactID:  contact.ID,
			ToAddress:  to,
			Subject:    req.Subject,
			Body:       req.Body,
			TemplateID: req.TemplateID,
			VersionID:  req.VersionID,
			Locale:     req.Locale,
			MergeVars:  req.Vars,
		}
		if err := s.repo.Outbox().Create(ctx, item); err != nil {
			return nil, err
		}
		metrics.OutboxTransitions.WithLabelValues(string(models.OutboxStatusPending)).Inc()

		s.logger.Info("Outbound content queued for review",
			zap.String("outbox_id", item.ID),
			zap.String("channel", string(req.Channel)),
			zap.String("contact_id", contact.ID))
		return &SendResult{Queued: true, OutboxID: item.ID}, nil
	}

	res, err := s.sender.Send(ctx, req.Channel, to, gateway.Content{Subject: req.Subject, Body: req.Body})
	if err != nil {
		s.logger.Error("Direct send failed",
			zap.String("channel", string(req.Channel)),
			zap.String("contact_id", contact.ID),
			zap.Error(err))
		return nil, err
	}
	metrics.DirectSends.WithLabelValues(string(req.Channel)).Inc()

	settleCtx, cancel := settleContext(ctx)
	defer cancel()

	result := &SendResult{Sent: true, ProviderMessageID: res.ProviderMessageID}
	if msg := s.recordOutbound(settleCtx, contact.ID, req.Channel, req.Subject, req.Body, res.ProviderMessageID); msg != nil {
		result.MessageID = msg.ID
	}
	return result, nil
}

// SendMessage renders the template when one is named and routes the
// result through EnqueueOrSend.
func (s *outboxService) SendMessage(ctx context.Context, input SendMessageInput) (*SendResult, error) {
	req := SendRequest{
		Channel:   input.Channel,
		ContactID: input.ContactID,
		Origin:    input.Origin,
		Subject:   input.Subject,
		Body:      input.Body,
		Locale:    input.Locale,
		Vars:      input.Vars,
	}

	if input.TemplateID != "" {
		rendered, err := s.templates.Render(ctx, RenderInput{
			TemplateID: input.TemplateID,
			Locale:     input.Locale,
			ContactID:  input.ContactID,
			Vars:       input.Vars,
		})
		if err != nil {
			return nil, err
		}
		if rendered.Channel != input.Channel {
			return nil, apperrors.Validation("template %s is for channel %s, not %s",
				input.TemplateID, rendered.Channel, input.Channel)
		}

		templateID := input.TemplateID
		req.TemplateID = &templateID
		req.VersionID = rendered.VersionID
		req.Locale = rendered.Locale
		req.Body = rendered.Body
		if req.Subject == nil {
			req.Subject = rendered.Subject
		}
	}

	return s.EnqueueOrSend(ctx, req)
}

// Approve claims a pending item and sends it. The claim is a
// compare-and-swap on status, so concurrent approvers produce one send.
// A gateway failure marks the item failed and is returned to the caller.
func (s *outboxService) Approve(ctx context.Context, id, reviewerID string) (*models.OutboxItem, error) {
	if reviewerID == "" {
		return nil, apperrors.Validation("reviewer_id is required")
	}

	item, err := s.repo.Outbox().Claim(ctx, id, reviewerID, time.Now())
	if err != nil {
		return nil, err
	}
	metrics.OutboxTransitions.WithLabelValues(string(models.OutboxStatusSending)).Inc()

	res, sendErr := s.sender.Send(ctx, item.Channel, item.ToAddress, gateway.Content{Subject: item.Subject, Body: item.Body})

	settleCtx, cancel := settleContext(ctx)
	defer cancel()

	if sendErr != nil {
		if _, err := s.repo.Outbox().MarkFailed(settleCtx, id, sendErr.Error()); err != nil {
			s.logger.Error("Failed to mark outbox item failed", zap.String("outbox_id", id), zap.Error(err))
		}
		metrics.OutboxTransitions.WithLabelValues(string(models.OutboxStatusFailed)).Inc()

		s.logger.Warn("Approved outbox item failed to send",
			zap.String("outbox_id", id),
			zap.String("reviewer_id", reviewerID),
			zap.Error(sendErr))
		return nil, sendErr
	}

	sent, err := s.repo.Outbox().MarkSent(settleCtx, id, res.ProviderMessageID, time.Now())
	if err != nil {
		return nil, err
	}
	metrics.OutboxTransitions.WithLabelValues(string(models.OutboxStatusSent)).Inc()

	s.recordOutbound(settleCtx, sent.ContactID, sent.Channel, sent.Subject, sent.Body, res.ProviderMessageID)

	s.logger.Info("Outbox item approved and sent",
		zap.String("outbox_id", id),
		zap.String("reviewer_id", reviewerID),
		zap.String("provider_message_id", res.ProviderMessageID))
	return sent, nil
}

func (s *outboxService) Reject(ctx context.Context, id, reviewerID, reason string) (*models.OutboxItem, error) {
	if reviewerID == "" {
		return nil, apperrors.Validation("reviewer_id is required")
	}

	item, err := s.repo.Outbox().Reject(ctx, id, reviewerID, strings.TrimSpace(reason), time.Now())
	if err != nil {
		return nil, err
	}
	metrics.OutboxTransitions.WithLabelValues(string(models.OutboxStatusRejected)).Inc()

	s.logger.Info("Outbox item rejected", zap.String("outbox_id", id), zap.String("reviewer_id", reviewerID))
	return item, nil
}

func (s *outboxService) ListPending(ctx context.Context, limit, offset int) ([]*models.OutboxItem, error) {
	if limit < 0 || offset < 0 {
		return nil, apperrors.Validation("limit and offset must not be negative")
	}
	return s.repo.Outbox().ListPending(ctx, limit, offset)
}

func (s *outboxService) Get(ctx context.Context, id string) (*models.OutboxItem, error) {
	return s.repo.Outbox().GetByID(ctx, id)
}

// recordOutbound appends the sent content to the contact's thread and
// closes open SLAs on it. The send already happened, so failures here
// are logged rather than returned.
func (s *outboxService) recordOutbound(
	ctx context.Context,
	contactID string,
	channel models.Channel,
	subject *string,
	body, providerMessageID string,
) *models.Message {
	logger := s.logger.With(
		zap.String("contact_id", contactID),
		zap.String("channel", string(channel)),
		zap.String("provider_message_id", providerMessageID))

	thread, err := s.repo.Thread().GetOrCreate(ctx, contactID, channel)
	if err != nil {
		logger.Error("Failed to resolve thread for outbound message", zap.Error(err))
		return nil
	}

	providerID := providerMessageID
	msg, err := s.repo.Message().Append(ctx, repository.AppendMessageParams{
		ThreadID:  thread.ID,
		Direction: models.DirectionOutbound,
		Channel:   channel,
		Body:      body,
		Meta: models.MessageMeta{
			Subject:           subject,
			ProviderMessageID: &providerID,
			DeliveryStatus:    models.DeliveryStatusSent,
		},
	})
	if err != nil {
		logger.Error("Failed to record outbound message", zap.Error(err))
		return nil
	}

	if _, err := s.sla.OnOutboundMessage(ctx, thread.ID, msg.CreatedAt); err != nil {
		logger.Error("Failed to update SLA on outbound message", zap.Error(err))
	}

	if channel == models.ChannelVoice {
		call := &models.CallLog{
			ContactID:      contactID,
			ThreadID:       &thread.ID,
			ProviderCallID: providerMessageID,
			Status:         callStatusInitiated,
		}
		if err := s.repo.Call().Create(ctx, call); err != nil {
			logger.Error("Failed to create call log", zap.Error(err))
		}
	}

	return msg
}

func validateSendRequest(req SendRequest) error {
	if !req.Channel.Valid() {
		return apperrors.Validation("unsupported channel %q", req.Channel)
	}
	if req.ContactID == "" {
		return apperrors.Validation("contact_id is required")
	}
	if req.Origin != models.OriginManual && req.Origin != models.OriginAutomation {
		return apperrors.Validation("origin must be manual or automation")
	}
	if strings.TrimSpace(req.Body) == "" {
		return apperrors.Validation("body is required")
	}
	return nil
}
