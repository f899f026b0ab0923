// Package service implements the communication engines: threads,
// template resolution, the outbound QA gate, SLA tracking, reminders,
// provider webhooks and the background worker.
package service

import (
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/popeskul/crm-comms/internal/config"
	"github.com/popeskul/crm-comms/internal/cooldown"
	"github.com/popeskul/crm-comms/internal/events"
	"github.com/popeskul/crm-comms/internal/gateway"
	"github.com/popeskul/crm-comms/internal/repository"
	"github.com/popeskul/crm-comms/internal/templating"
)

type Service struct {
	Thread   ThreadService
	Template TemplateService
	Outbox   OutboxService
	SLA      SLAService
	Reminder ReminderService
	Webhook  WebhookService
	Worker   WorkerService
	Health   HealthService
}

// Dependencies are the collaborators built by the process entrypoint.
type Dependencies struct {
	Repo        repository.Repository
	RedisClient *redis.Client
	Sender      gateway.Sender
	Limiter     cooldown.Limiter
	Publisher   events.Publisher
}

func NewService(cfg *config.Config, deps Dependencies, logger *zap.Logger) *Service {
	engine := templating.NewEngine()

	slaService := NewSLAService(deps.Repo, deps.Publisher, logger)
	threadService := NewThreadService(deps.Repo, slaService, logger)
	templateService := NewTemplateService(deps.Repo, engine, cfg.Templates.DefaultLocale, logger)
	outboxService := NewOutboxService(cfg, deps.Repo, templateService, slaService, deps.Sender, deps.Limiter, logger)
	reminderService := NewReminderService(deps.Repo, outboxService, cfg.Reminders.BatchSize, cfg.Templates.DefaultLocale, logger)
	webhookService := NewWebhookService(deps.Repo, slaService, deps.Publisher,
		cfg.OptOut.StopKeywords, cfg.OptOut.StartKeywords, logger)
	workerService := NewWorkerService(cfg, slaService, reminderService, deps.Limiter, logger)
	healthService := NewHealthService(deps.Repo, deps.RedisClient, workerService, deps.Sender)

	return &Service{
		Thread:   threadService,
		Template: templateService,
		Outbox:   outboxService,
		SLA:      slaService,
		Reminder: reminderService,
		Webhook:  webhookService,
		Worker:   workerService,
		Health:   healthService,
	}
}
