package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/popeskul/crm-comms/internal/config"
	"github.com/popeskul/crm-comms/internal/cooldown"
	"github.com/popeskul/crm-comms/internal/scheduler"
)

// pruner is implemented by cooldown backends that hold expired keys in
// process memory.
type pruner interface {
	Prune(ctx context.Context) (int, error)
}

type workerService struct {
	scheduler *scheduler.Scheduler
	sla       SLAService
	reminders ReminderService
	logger    *zap.Logger
}

// NewWorkerService builds the background worker. limiter may be nil;
// when it can prune, a cleanup job runs on the sweep interval.
func NewWorkerService(
	cfg *config.Config,
	sla SLAService,
	reminders ReminderService,
	limiter cooldown.Limiter,
	logger *zap.Logger,
) WorkerService {
	svc := &workerService{
		sla:       sla,
		reminders: reminders,
		logger:    logger,
	}

	sweepInterval := seconds(cfg.SLA.SweepIntervalSeconds)
	jobs := []scheduler.Job{
		{Name: "sla-sweep", Interval: sweepInterval, Run: svc.sweepSLA},
		{Name: "reminder-dispatch", Interval: seconds(cfg.Reminders.DispatchIntervalSeconds), Run: svc.dispatchReminders},
	}
	if p, ok := limiter.(pruner); ok {
		jobs = append(jobs, scheduler.Job{Name: "cooldown-prune", Interval: sweepInterval, Run: pruneJob(p, logger)})
	}

	svc.scheduler = scheduler.NewScheduler(logger, jobs...)
	return svc
}

func (s *workerService) Start() error {
	return s.scheduler.Start(context.Background())
}

func (s *workerService) Stop() error {
	return s.scheduler.Stop()
}

func (s *workerService) IsRunning() bool {
	return s.scheduler.IsRunning()
}

func (s *workerService) sweepSLA(ctx context.Context) error {
	_, err := s.sla.SweepBreaches(ctx, time.Now())
	return err
}

func (s *workerService) dispatchReminders(ctx context.Context) error {
	_, err := s.reminders.DispatchDue(ctx, time.Now())
	return err
}

func pruneJob(p pruner, logger *zap.Logger) func(context.Context) error {
	return func(ctx context.Context) error {
		n, err := p.Prune(ctx)
		if err != nil {
			return err
		}
		if n > 0 {
			logger.Debug("Pruned expired cooldown keys", zap.Int("count", n))
		}
		return nil
	}
}

func seconds(n int) time.Duration {
	if n <= 0 {
		return time.Minute
	}
	return time.Duration(n) * time.Second
}
