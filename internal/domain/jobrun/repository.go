package jobrun

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, run *JobRun) error
	Update(ctx context.Context, run *JobRun) error
	GetByID(ctx context.Context, id string) (*JobRun, error)
	// ListActive returns started runs of jobType executed at or after since.
	ListActive(ctx context.Context, jobType JobType, since time.Time) ([]*JobRun, error)
	// List returns the most recent runs, newest first, optionally filtered by type.
	List(ctx context.Context, jobType *JobType, limit int) ([]*JobRun, error)
}

// RunLock provides cross-process mutual exclusion for batch jobs.
type RunLock interface {
	// TryAcquire returns a release func and true when the lock was taken.
	TryAcquire(ctx context.Context, jobType JobType, ttl time.Duration) (release func(), ok bool, err error)
}
