package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/popeskul/crm-comms/internal/apperrors"
	"github.com/popeskul/crm-comms/internal/events"
	"github.com/popeskul/crm-comms/internal/metrics"
	"github.com/popeskul/crm-comms/internal/models"
	"github.com/popeskul/crm-comms/internal/repository"
)

type slaService struct {
	repo      repository.Repository
	publisher events.Publisher
	logger    *zap.Logger
}

func NewSLAService(repo repository.Repository, publisher events.Publisher, logger *zap.Logger) SLAService {
	return &slaService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
	}
}

// ListPolicies returns active policies by ascending target.
func (s *slaService) ListPolicies(ctx context.Context) ([]*models.SlaPolicy, error) {
	return s.repo.SLA().ListPolicies(ctx, true)
}

func (s *slaService) CreatePolicy(ctx context.Context, name string, targetMinutes int) (*models.SlaPolicy, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperrors.Validation("name is required")
	}
	if targetMinutes <= 0 {
		return nil, apperrors.Validation("target_minutes must be positive")
	}

	policy := &models.SlaPolicy{Name: name, TargetMinutes: targetMinutes, Active: true}
	if err := s.repo.SLA().CreatePolicy(ctx, policy); err != nil {
		return nil, err
	}
	return policy, nil
}

// OnInboundMessage opens, or restarts, one SLA per active policy with
// the clock starting at the inbound message time.
func (s *slaService) OnInboundMessage(ctx context.Context, threadID string, at time.Time) ([]*models.ThreadSla, error) {
	if _, err := s.repo.Thread().GetByID(ctx, threadID); err != nil {
		return nil, err
	}

	policies, err := s.repo.SLA().ListPolicies(ctx, true)
	if err != nil {
		return nil, err
	}

	slas := make([]*models.ThreadSla, 0, len(policies))
	for _, p := range policies {
		sla, err := s.repo.SLA().UpsertOpen(ctx, threadID, p.ID, at, at.Add(p.Target()))
		if err != nil {
			return nil, fmt.Errorf("failed to open sla for policy %s: %w", p.ID, err)
		}
		slas = append(slas, sla)
	}
	return slas, nil
}

// OnOutboundMessage marks every open SLA on the thread as met, provided
// the reply came after the inbound message that started it.
func (s *slaService) OnOutboundMessage(ctx context.Context, threadID string, at time.Time) (int64, error) {
	if _, err := s.repo.Thread().GetByID(ctx, threadID); err != nil {
		return 0, err
	}
	return s.repo.SLA().MarkMet(ctx, threadID, at)
}

// SweepBreaches flips every open SLA past its due time to breached.
func (s *slaService) SweepBreaches(ctx context.Context, now time.Time) (int64, error) {
	n, err := s.repo.SLA().MarkBreached(ctx, now)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, nil
	}

	metrics.SLABreaches.Add(float64(n))
	s.logger.Warn("SLA breaches recorded", zap.Int64("count", n))

	event := events.New(events.TypeSLABreached, map[string]string{
		"count": strconv.FormatInt(n, 10),
		"at":    now.UTC().Format(time.RFC3339),
	})
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("Failed to publish sla breach event", zap.Error(err))
	}
	return n, nil
}

// GetThreadSLA returns every SLA instance of the thread, newest first.
func (s *slaService) GetThreadSLA(ctx context.Context, threadID string) ([]*models.ThreadSla, error) {
	if _, err := s.repo.Thread().GetByID(ctx, threadID); err != nil {
		return nil, err
	}
	return s.repo.SLA().ListByThread(ctx, threadID)
}
