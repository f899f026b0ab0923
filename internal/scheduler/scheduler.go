package scheduler

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Job is one periodic task. Run gets a context bounded by Interval and
// canceled when the scheduler stops.
type Job struct {
	Name     string
	Interval time.Duration
	Run      func(context.Context) error
}

// Scheduler runs each job on its own ticker.
type Scheduler struct {
	logger    *zap.Logger
	jobs      []Job
	cancel    context.CancelFunc
	doneCh    chan struct{}
	isRunning bool
	mu        sync.RWMutex
}

// NewScheduler creates a new scheduler instance.
func NewScheduler(logger *zap.Logger, jobs ...Job) *Scheduler {
	return &Scheduler{
		logger: logger,
		jobs:   jobs,
	}
}

// Start launches every job. Each job runs once immediately.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return ErrSchedulerAlreadyRunning
	}

	runCtx, cancel := context.WithCancel(ctx)
	doneCh := make(chan struct{})
	s.cancel = cancel
	s.doneCh = doneCh
	s.isRunning = true

	var wg sync.WaitGroup
	for _, job := range s.jobs {
		wg.Add(1)
		go func(job Job) {
			defer wg.Done()
			s.run(runCtx, job)
		}(job)
	}

	// A canceled parent context stops the jobs without Stop being called.
	go func() {
		wg.Wait()
		cancel()
		close(doneCh)

		s.mu.Lock()
		if s.doneCh == doneCh {
			s.isRunning = false
		}
		s.mu.Unlock()
	}()

	s.logger.Info("Scheduler started", zap.Int("jobs", len(s.jobs)))
	return nil
}

// Stop cancels all jobs and waits for in-flight runs to return.
func (s *Scheduler) Stop() error {
	s.mu.Lock()
	if !s.isRunning {
		s.mu.Unlock()
		return ErrSchedulerNotRunning
	}
	cancel, doneCh := s.cancel, s.doneCh
	s.isRunning = false
	s.mu.Unlock()

	cancel()
	<-doneCh

	s.logger.Info("Scheduler stopped")
	return nil
}

// IsRunning returns whether the scheduler is currently running.
func (s *Scheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// run executes the loop for one job
func (s *Scheduler) run(ctx context.Context, job Job) {
	logger := s.logger.With(zap.String("job", job.Name))

	s.executeJob(ctx, logger, job)

	ticker := time.NewTicker(job.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Job loop stopped")
			return
		case <-ticker.C:
			s.executeJob(ctx, logger, job)
		}
	}
}

// executeJob runs the job with error handling
func (s *Scheduler) executeJob(ctx context.Context, logger *zap.Logger, job Job) {
	taskCtx, cancel := context.WithTimeout(ctx, job.Interval)
	defer cancel()

	start := time.Now()
	if err := job.Run(taskCtx); err != nil {
		logger.Error("Job execution failed", zap.Error(err), zap.Duration("duration", time.Since(start)))
		return
	}
	logger.Debug("Job execution completed", zap.Duration("duration", time.Since(start)))
}
