package jobrun

import (
	"encoding/json"
	"fmt"
	"time"
)

type JobType string

const (
	JobTypeProcessReminders JobType = "process_reminders"
	JobTypeProcessRecurring JobType = "process_recurring"
)

func (t JobType) String() string {
	return string(t)
}

func (t JobType) IsValid() bool {
	return t == JobTypeProcessReminders || t == JobTypeProcessRecurring
}

type Trigger string

const (
	TriggerScheduled Trigger = "scheduled"
	TriggerManual    Trigger = "manual"
)

func (t Trigger) IsValid() bool {
	return t == TriggerScheduled || t == TriggerManual
}

type Status string

const (
	StatusStarted   Status = "started"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

func (s Status) IsValid() bool {
	return s == StatusStarted || s == StatusCompleted || s == StatusFailed
}

// JobRun is the bookkeeping row for one batch execution.
type JobRun struct {
	id          string
	jobType     JobType
	trigger     Trigger
	status      Status
	executedAt  time.Time
	completedAt *time.Time
	durationMs  int64
	result      json.RawMessage
	errorMsg    string
}

func NewJobRun(id string, jobType JobType, trigger Trigger, executedAt time.Time) (*JobRun, error) {
	if id == "" {
		return nil, fmt.Errorf("job run ID is required")
	}
	if !jobType.IsValid() {
		return nil, fmt.Errorf("invalid job type")
	}
	if !trigger.IsValid() {
		return nil, fmt.Errorf("invalid trigger")
	}
	return &JobRun{
		id:         id,
		jobType:    jobType,
		trigger:    trigger,
		status:     StatusStarted,
		executedAt: executedAt,
	}, nil
}

func ReconstructJobRun(
	id string,
	jobType JobType,
	trigger Trigger,
	status Status,
	executedAt time.Time,
	completedAt *time.Time,
	durationMs int64,
	result json.RawMessage,
	errorMsg string,
) (*JobRun, error) {
	if id == "" {
		return nil, fmt.Errorf("job run ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid job run status")
	}
	return &JobRun{
		id:          id,
		jobType:     jobType,
		trigger:     trigger,
		status:      status,
		executedAt:  executedAt,
		completedAt: completedAt,
		durationMs:  durationMs,
		result:      result,
		errorMsg:    errorMsg,
	}, nil
}

func (r *JobRun) ID() string {
	return r.id
}

func (r *JobRun) JobType() JobType {
	return r.jobType
}

func (r *JobRun) Trigger() Trigger {
	return r.trigger
}

func (r *JobRun) Status() Status {
	return r.status
}

func (r *JobRun) ExecutedAt() time.Time {
	return r.executedAt
}

func (r *JobRun) CompletedAt() *time.Time {
	return r.completedAt
}

func (r *JobRun) DurationMs() int64 {
	return r.durationMs
}

// Result is the JSON encoded batch summary, nil until the run finishes.
func (r *JobRun) Result() json.RawMessage {
	return r.result
}

func (r *JobRun) ErrorMessage() string {
	return r.errorMsg
}

// IsStale reports whether a started run is older than timeout and no longer blocks new runs.
func (r *JobRun) IsStale(now time.Time, timeout time.Duration) bool {
	return r.status == StatusStarted && now.Sub(r.executedAt) > timeout
}

func (r *JobRun) Complete(result any, at time.Time) error {
	return r.finish(StatusCompleted, result, "", at)
}

func (r *JobRun) Fail(errMsg string, result any, at time.Time) error {
	return r.finish(StatusFailed, result, errMsg, at)
}

func (r *JobRun) finish(status Status, result any, errMsg string, at time.Time) error {
	if r.status != StatusStarted {
		return fmt.Errorf("job run %s already finished as %s", r.id, r.status)
	}
	if result != nil {
		data, err := json.Marshal(result)
		if err != nil {
			return fmt.Errorf("failed to encode job result: %w", err)
		}
		r.result = data
	}
	r.status = status
	r.errorMsg = errMsg
	r.completedAt = &at
	r.durationMs = at.Sub(r.executedAt).Milliseconds()
	return nil
}
