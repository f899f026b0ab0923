package service

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/popeskul/crm-comms/internal/api"
	"github.com/popeskul/crm-comms/internal/gateway"
	"github.com/popeskul/crm-comms/internal/repository"
)

type healthService struct {
	repo        repository.Repository
	redisClient *redis.Client
	worker      WorkerService
	sender      gateway.Sender
}

// NewHealthService builds the health reporter. redisClient may be nil
// when no Redis-backed component is configured.
func NewHealthService(
	repo repository.Repository,
	redisClient *redis.Client,
	worker WorkerService,
	sender gateway.Sender,
) HealthService {
	return &healthService{
		repo:        repo,
		redisClient: redisClient,
		worker:      worker,
		sender:      sender,
	}
}

func (s *healthService) GetHealth(ctx context.Context) *HealthStatus {
	status := &HealthStatus{
		Status:   api.Healthy,
		Gateways: map[string]string{},
	}

	if s.worker.IsRunning() {
		status.WorkerStatus = api.Running
	} else {
		status.WorkerStatus = api.Stopped
	}

	status.DatabaseStatus = s.checkDatabaseHealth(ctx)
	status.RedisStatus = s.checkRedisHealth(ctx)

	for channel, state := range s.sender.States() {
		status.Gateways[string(channel)] = state
	}

	// Determine overall health
	if status.DatabaseStatus != api.Connected || status.RedisStatus != api.Connected {
		status.Status = api.Unhealthy
		return status
	}

	// An open breaker on any channel degrades the service
	for _, state := range status.Gateways {
		if state == gateway.StateOpen {
			status.Status = api.Degraded
			break
		}
	}

	return status
}

func (s *healthService) checkDatabaseHealth(ctx context.Context) api.ComponentStatus {
	if err := s.repo.Ping(ctx); err != nil {
		return api.Disconnected
	}
	return api.Connected
}

func (s *healthService) checkRedisHealth(ctx context.Context) api.ComponentStatus {
	if s.redisClient == nil {
		return api.Connected
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := s.redisClient.Ping(ctx).Err(); err != nil {
		return api.Disconnected
	}
	return api.Connected
}
