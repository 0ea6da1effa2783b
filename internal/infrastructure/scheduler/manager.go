// Package scheduler provides unified scheduler management using gocron v2.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/reminderly/reminderly/internal/domain/jobrun"
	"github.com/reminderly/reminderly/internal/shared/biztime"
	apperrors "github.com/reminderly/reminderly/internal/shared/errors"
	"github.com/reminderly/reminderly/internal/shared/logger"
)

// JobRunner starts one scheduled run of a batch job.
type JobRunner interface {
	RunScheduled(ctx context.Context, jobType jobrun.JobType) error
}

// ReminderSchedule holds the cron expressions, evaluated in the business timezone.
type ReminderSchedule struct {
	RecurringCron string
	DispatchCron  string
	// RunTimeout caps a single scheduled invocation.
	RunTimeout time.Duration
}

// SchedulerManager owns the gocron scheduler for the batch jobs.
type SchedulerManager struct {
	scheduler gocron.Scheduler
	logger    logger.Interface

	ctx    context.Context
	cancel context.CancelFunc

	// Track whether the scheduler has been started
	started   bool
	startedMu sync.RWMutex
}

// NewSchedulerManager creates a new SchedulerManager instance.
// Cron expressions are interpreted in the business timezone.
func NewSchedulerManager(log logger.Interface) (*SchedulerManager, error) {
	scheduler, err := gocron.NewScheduler(
		gocron.WithLocation(biztime.Location()),
	)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &SchedulerManager{
		scheduler: scheduler,
		logger:    log,
		ctx:       ctx,
		cancel:    cancel,
	}, nil
}

// ========================================
// Reminder Jobs (cron-based)
// ========================================

// RegisterReminderJobs registers the two daily batch jobs:
// - Recurring advance, default 07:00
// - Reminder dispatch, default 08:00, after spawns for today exist
func (m *SchedulerManager) RegisterReminderJobs(runner JobRunner, schedule ReminderSchedule) error {
	if schedule.RunTimeout <= 0 {
		schedule.RunTimeout = 30 * time.Minute
	}

	jobs := []struct {
		name    string
		cron    string
		jobType jobrun.JobType
	}{
		{"recurring-advance", schedule.RecurringCron, jobrun.JobTypeProcessRecurring},
		{"reminder-dispatch", schedule.DispatchCron, jobrun.JobTypeProcessReminders},
	}

	for _, j := range jobs {
		jobType := j.jobType
		_, err := m.scheduler.NewJob(
			gocron.CronJob(j.cron, false),
			gocron.NewTask(func() {
				ctx, cancel := context.WithTimeout(m.ctx, schedule.RunTimeout)
				defer cancel()
				m.runJob(ctx, runner, jobType)
			}),
			gocron.WithSingletonMode(gocron.LimitModeReschedule),
			gocron.WithTags("reminder", jobType.String()),
			gocron.WithName(j.name),
		)
		if err != nil {
			return fmt.Errorf("failed to register %s job: %w", j.name, err)
		}
	}

	m.logger.Infow("registered reminder jobs",
		"recurring_cron", schedule.RecurringCron,
		"dispatch_cron", schedule.DispatchCron,
		"timezone", biztime.Location().String(),
	)
	return nil
}

func (m *SchedulerManager) runJob(ctx context.Context, runner JobRunner, jobType jobrun.JobType) {
	m.logger.Debugw("scheduled job triggered", "job_type", jobType)

	startTime := biztime.NowUTC()
	if err := runner.RunScheduled(ctx, jobType); err != nil {
		// Don't log error if context was cancelled (graceful shutdown)
		if m.ctx.Err() != nil {
			return
		}
		if apperrors.IsConflictError(err) {
			m.logger.Warnw("scheduled job skipped, already running", "job_type", jobType)
			return
		}
		m.logger.Errorw("scheduled job failed",
			"job_type", jobType,
			"error", err,
			"duration", time.Since(startTime),
		)
		return
	}

	m.logger.Debugw("scheduled job finished",
		"job_type", jobType,
		"duration", time.Since(startTime),
	)
}

// Start starts the scheduler.
func (m *SchedulerManager) Start() {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if m.started {
		return
	}

	m.scheduler.Start()
	m.started = true
	m.logger.Infow("scheduler manager started", "job_count", len(m.scheduler.Jobs()))
}

// Stop gracefully stops the scheduler.
// In-flight jobs see their context cancelled and are waited for.
func (m *SchedulerManager) Stop() error {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if !m.started {
		return nil
	}

	m.logger.Infow("stopping scheduler manager")

	m.cancel()
	err := m.scheduler.Shutdown()
	m.started = false

	if err != nil {
		m.logger.Errorw("scheduler manager shutdown with error", "error", err)
		return err
	}

	m.logger.Infow("scheduler manager stopped")
	return nil
}

// IsStarted returns whether the scheduler is running.
func (m *SchedulerManager) IsStarted() bool {
	m.startedMu.RLock()
	defer m.startedMu.RUnlock()
	return m.started
}

// Jobs returns all registered jobs for inspection.
func (m *SchedulerManager) Jobs() []gocron.Job {
	return m.scheduler.Jobs()
}
