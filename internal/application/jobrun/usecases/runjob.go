package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/reminderly/reminderly/internal/application/jobrun/dto"
	"github.com/reminderly/reminderly/internal/domain/jobrun"
	"github.com/reminderly/reminderly/internal/shared/biztime"
	apperrors "github.com/reminderly/reminderly/internal/shared/errors"
	"github.com/reminderly/reminderly/internal/shared/logger"
)

type JobMetrics interface {
	JobStarted(jobType string) func()
}

type RunSettings struct {
	// RunTimeout bounds one job and ages out abandoned started rows.
	RunTimeout time.Duration
	// LockTTL is how long the run lock survives a crashed holder.
	LockTTL time.Duration
}

type RunJobCommand struct {
	JobType jobrun.JobType
	Trigger jobrun.Trigger
	Today   *time.Time
}

// RunJobUseCase executes a batch job under the run lock and records a job run row.
type RunJobUseCase struct {
	repo     jobrun.Repository
	lock     jobrun.RunLock
	jobs     Jobs
	settings RunSettings
	clock    biztime.Clock
	metrics  JobMetrics
	logger   logger.Interface
}

func NewRunJobUseCase(
	repo jobrun.Repository,
	lock jobrun.RunLock,
	jobs Jobs,
	settings RunSettings,
	clock biztime.Clock,
	metrics JobMetrics,
	logger logger.Interface,
) *RunJobUseCase {
	if settings.RunTimeout <= 0 {
		settings.RunTimeout = 30 * time.Minute
	}
	if settings.LockTTL <= 0 {
		settings.LockTTL = settings.RunTimeout + 5*time.Minute
	}
	return &RunJobUseCase{
		repo:     repo,
		lock:     lock,
		jobs:     jobs,
		settings: settings,
		clock:    clock,
		metrics:  metrics,
		logger:   logger,
	}
}

// Execute returns the finished run. When the job itself fails the run is
// still returned, together with the job error.
func (uc *RunJobUseCase) Execute(ctx context.Context, cmd RunJobCommand) (*dto.JobRunResponse, error) {
	job, ok := uc.jobs[cmd.JobType]
	if !ok {
		return nil, apperrors.NewValidationError(fmt.Sprintf("unknown job type %q", cmd.JobType))
	}
	if !cmd.Trigger.IsValid() {
		return nil, apperrors.NewValidationError("invalid trigger")
	}

	release, acquired, err := uc.lock.TryAcquire(ctx, cmd.JobType, uc.settings.LockTTL)
	if err != nil {
		uc.logger.Errorw("failed to acquire run lock", "job_type", cmd.JobType, "error", err)
		return nil, fmt.Errorf("failed to acquire run lock: %w", err)
	}
	if !acquired {
		return nil, apperrors.NewConflictError(jobrun.ErrJobAlreadyRunning.Error(), cmd.JobType.String())
	}
	defer release()

	now := uc.clock.Now()
	active, err := uc.repo.ListActive(ctx, cmd.JobType, now.Add(-uc.settings.RunTimeout))
	if err != nil {
		return nil, fmt.Errorf("failed to check active runs: %w", err)
	}
	if len(active) > 0 {
		uc.logger.Warnw("job run rejected, another run is active",
			"job_type", cmd.JobType,
			"active_run_id", active[0].ID(),
		)
		return nil, apperrors.NewConflictError(jobrun.ErrJobAlreadyRunning.Error(), active[0].ID())
	}

	run, err := jobrun.NewJobRun(uuid.NewString(), cmd.JobType, cmd.Trigger, now)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, run); err != nil {
		return nil, fmt.Errorf("failed to create job run: %w", err)
	}

	uc.logger.Infow("job run started", "run_id", run.ID(), "job_type", cmd.JobType, "trigger", cmd.Trigger)
	if uc.metrics != nil {
		done := uc.metrics.JobStarted(cmd.JobType.String())
		defer done()
	}

	jobCtx, cancel := context.WithTimeout(ctx, uc.settings.RunTimeout)
	result, jobErr := job(jobCtx, cmd.Today)
	cancel()

	finishedAt := uc.clock.Now()
	if jobErr != nil {
		err = run.Fail(jobErr.Error(), result, finishedAt)
	} else {
		err = run.Complete(result, finishedAt)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to finish job run: %w", err)
	}

	// the caller's context may already be gone; the bookkeeping still has to land
	if err := uc.repo.Update(context.WithoutCancel(ctx), run); err != nil {
		uc.logger.Errorw("failed to record job run", "run_id", run.ID(), "error", err)
		return nil, fmt.Errorf("failed to record job run: %w", err)
	}

	if jobErr != nil {
		uc.logger.Errorw("job run failed", "run_id", run.ID(), "job_type", cmd.JobType, "error", jobErr)
		return dto.ToJobRunResponse(run), jobErr
	}
	uc.logger.Infow("job run completed", "run_id", run.ID(), "job_type", cmd.JobType, "duration_ms", run.DurationMs())
	return dto.ToJobRunResponse(run), nil
}

// RunScheduled starts a run on behalf of the cron scheduler.
func (uc *RunJobUseCase) RunScheduled(ctx context.Context, jobType jobrun.JobType) error {
	_, err := uc.Execute(ctx, RunJobCommand{JobType: jobType, Trigger: jobrun.TriggerScheduled})
	return err
}
