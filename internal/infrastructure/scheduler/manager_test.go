package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reminderly/reminderly/internal/domain/jobrun"
	apperrors "github.com/reminderly/reminderly/internal/shared/errors"
	"github.com/reminderly/reminderly/internal/shared/logger"
)

type fakeRunner struct {
	mu    sync.Mutex
	calls []jobrun.JobType
	err   error
	done  chan jobrun.JobType
}

func (f *fakeRunner) RunScheduled(_ context.Context, jobType jobrun.JobType) error {
	f.mu.Lock()
	f.calls = append(f.calls, jobType)
	f.mu.Unlock()
	if f.done != nil {
		f.done <- jobType
	}
	return f.err
}

var testSchedule = ReminderSchedule{
	RecurringCron: "0 7 * * *",
	DispatchCron:  "0 8 * * *",
	RunTimeout:    time.Minute,
}

func TestRegisterReminderJobs(t *testing.T) {
	m, err := NewSchedulerManager(logger.NewNopLogger())
	require.NoError(t, err)

	require.NoError(t, m.RegisterReminderJobs(&fakeRunner{}, testSchedule))

	names := map[string][]string{}
	for _, j := range m.Jobs() {
		names[j.Name()] = j.Tags()
	}
	assert.Contains(t, names, "recurring-advance")
	assert.Contains(t, names, "reminder-dispatch")
	assert.Contains(t, names["reminder-dispatch"], "process_reminders")
}

func TestRegisterReminderJobs_InvalidCron(t *testing.T) {
	m, err := NewSchedulerManager(logger.NewNopLogger())
	require.NoError(t, err)

	bad := testSchedule
	bad.DispatchCron = "every morning"
	assert.Error(t, m.RegisterReminderJobs(&fakeRunner{}, bad))
}

func TestScheduledJobInvokesRunner(t *testing.T) {
	m, err := NewSchedulerManager(logger.NewNopLogger())
	require.NoError(t, err)

	runner := &fakeRunner{done: make(chan jobrun.JobType, 1)}
	require.NoError(t, m.RegisterReminderJobs(runner, testSchedule))

	m.Start()
	defer func() { _ = m.Stop() }()
	assert.True(t, m.IsStarted())

	for _, j := range m.Jobs() {
		if j.Name() == "reminder-dispatch" {
			require.NoError(t, j.RunNow())
		}
	}

	select {
	case got := <-runner.done:
		assert.Equal(t, jobrun.JobTypeProcessReminders, got)
	case <-time.After(5 * time.Second):
		t.Fatal("scheduled job did not run")
	}
}

func TestRunJob_ToleratesErrors(t *testing.T) {
	m, err := NewSchedulerManager(logger.NewNopLogger())
	require.NoError(t, err)

	for _, runErr := range []error{
		apperrors.NewConflictError("job is already running"),
		errors.New("database down"),
	} {
		runner := &fakeRunner{err: runErr}
		m.runJob(context.Background(), runner, jobrun.JobTypeProcessRecurring)
		assert.Equal(t, []jobrun.JobType{jobrun.JobTypeProcessRecurring}, runner.calls)
	}
}
