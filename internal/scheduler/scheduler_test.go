package scheduler_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/popeskul/crm-comms/internal/scheduler"
)

func noopJob(name string, interval time.Duration) scheduler.Job {
	return scheduler.Job{Name: name, Interval: interval, Run: func(ctx context.Context) error { return nil }}
}

func TestScheduler_Start(t *testing.T) {
	tests := []struct {
		name           string
		setupScheduler func() *scheduler.Scheduler
		expectedError  error
	}{
		{
			name: "success",
			setupScheduler: func() *scheduler.Scheduler {
				return scheduler.NewScheduler(zap.NewNop(), noopJob("a", 100*time.Millisecond))
			},
			expectedError: nil,
		},
		{
			name: "already running",
			setupScheduler: func() *scheduler.Scheduler {
				s := scheduler.NewScheduler(zap.NewNop(), noopJob("a", 100*time.Millisecond))
				err := s.Start(context.Background())
				assert.NoError(t, err)
				return s
			},
			expectedError: scheduler.ErrSchedulerAlreadyRunning,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.setupScheduler()
			defer func() {
				if s.IsRunning() {
					_ = s.Stop()
				}
			}()

			err := s.Start(context.Background())
			assert.Equal(t, tt.expectedError, err)
		})
	}
}

func TestScheduler_Stop(t *testing.T) {
	tests := []struct {
		name           string
		setupScheduler func() *scheduler.Scheduler
		expectedError  error
	}{
		{
			name: "success",
			setupScheduler: func() *scheduler.Scheduler {
				s := scheduler.NewScheduler(zap.NewNop(), noopJob("a", 100*time.Millisecond))
				err := s.Start(context.Background())
				assert.NoError(t, err)
				return s
			},
			expectedError: nil,
		},
		{
			name: "not running",
			setupScheduler: func() *scheduler.Scheduler {
				return scheduler.NewScheduler(zap.NewNop(), noopJob("a", 100*time.Millisecond))
			},
			expectedError: scheduler.ErrSchedulerNotRunning,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.setupScheduler()
			err := s.Stop()
			assert.Equal(t, tt.expectedError, err)
			assert.False(t, s.IsRunning())
		})
	}
}

func TestScheduler_Restart(t *testing.T) {
	s := scheduler.NewScheduler(zap.NewNop(), noopJob("a", 50*time.Millisecond))

	for i := 0; i < 3; i++ {
		assert.NoError(t, s.Start(context.Background()))
		assert.True(t, s.IsRunning())
		assert.NoError(t, s.Stop())
		assert.False(t, s.IsRunning())
	}
}

func TestScheduler_JobExecution(t *testing.T) {
	tests := []struct {
		name         string
		taskErr      error
		interval     time.Duration
		testDuration time.Duration
		minCalls     int32
		maxCalls     int32
	}{
		{
			name:         "job executes multiple times",
			interval:     50 * time.Millisecond,
			testDuration: 260 * time.Millisecond,
			minCalls:     4,
			maxCalls:     7,
		},
		{
			name:         "job errors do not stop the loop",
			taskErr:      errors.New("task error"),
			interval:     50 * time.Millisecond,
			testDuration: 160 * time.Millisecond,
			minCalls:     3,
			maxCalls:     5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls int32
			job := scheduler.Job{
				Name:     "counter",
				Interval: tt.interval,
				Run: func(ctx context.Context) error {
					atomic.AddInt32(&calls, 1)
					return tt.taskErr
				},
			}

			s := scheduler.NewScheduler(zap.NewNop(), job)
			assert.NoError(t, s.Start(context.Background()))
			time.Sleep(tt.testDuration)
			assert.NoError(t, s.Stop())

			got := atomic.LoadInt32(&calls)
			assert.GreaterOrEqual(t, got, tt.minCalls)
			assert.LessOrEqual(t, got, tt.maxCalls)
		})
	}
}

func TestScheduler_IndependentJobs(t *testing.T) {
	var fast, slow int32
	s := scheduler.NewScheduler(zap.NewNop(),
		scheduler.Job{Name: "fast", Interval: 20 * time.Millisecond, Run: func(ctx context.Context) error {
			atomic.AddInt32(&fast, 1)
			return nil
		}},
		scheduler.Job{Name: "slow", Interval: time.Hour, Run: func(ctx context.Context) error {
			atomic.AddInt32(&slow, 1)
			return nil
		}},
	)

	assert.NoError(t, s.Start(context.Background()))
	time.Sleep(150 * time.Millisecond)
	assert.NoError(t, s.Stop())

	assert.GreaterOrEqual(t, atomic.LoadInt32(&fast), int32(4))
	assert.Equal(t, int32(1), atomic.LoadInt32(&slow))
}

func TestScheduler_StopCancelsRunningJob(t *testing.T) {
	started := make(chan struct{})
	var once sync.Once
	s := scheduler.NewScheduler(zap.NewNop(), scheduler.Job{
		Name:     "blocking",
		Interval: time.Hour,
		Run: func(ctx context.Context) error {
			once.Do(func() { close(started) })
			<-ctx.Done()
			return ctx.Err()
		},
	})

	assert.NoError(t, s.Start(context.Background()))
	<-started

	done := make(chan struct{})
	go func() {
		_ = s.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop did not return")
	}
}

func TestScheduler_ContextCancellation(t *testing.T) {
	var calls int32
	ctx, cancel := context.WithCancel(context.Background())
	s := scheduler.NewScheduler(zap.NewNop(), scheduler.Job{
		Name:     "counter",
		Interval: 50 * time.Millisecond,
		Run: func(ctx context.Context) error {
			atomic.AddInt32(&calls, 1)
			return nil
		},
	})

	assert.NoError(t, s.Start(ctx))
	assert.True(t, s.IsRunning())

	time.Sleep(120 * time.Millisecond)
	callsBeforeCancel := atomic.LoadInt32(&calls)
	assert.GreaterOrEqual(t, callsBeforeCancel, int32(2))

	cancel()
	time.Sleep(100 * time.Millisecond)
	assert.False(t, s.IsRunning())
	assert.LessOrEqual(t, atomic.LoadInt32(&calls)-callsBeforeCancel, int32(1))
	assert.Equal(t, scheduler.ErrSchedulerNotRunning, s.Stop())
}

func TestScheduler_ConcurrentAccess(t *testing.T) {
	s := scheduler.NewScheduler(zap.NewNop(), noopJob("a", 50*time.Millisecond))

	done := make(chan bool)
	errs := make(chan error, 10)

	for i := 0; i < 5; i++ {
		go func() {
			if err := s.Start(context.Background()); err != nil && err != scheduler.ErrSchedulerAlreadyRunning {
				errs <- err
			}
			done <- true
		}()
	}

	for i := 0; i < 5; i++ {
		<-done
	}

	assert.True(t, s.IsRunning())
	assert.Len(t, errs, 0)

	err := s.Stop()
	assert.NoError(t, err)
}
