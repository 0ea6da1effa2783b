package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecorder(t *testing.T) {
	r := NewRecorder()

	before := testutil.ToFloat64(DispatchTotal.WithLabelValues("sent"))
	r.DispatchOutcome("sent")
	assert.Equal(t, before+1, testutil.ToFloat64(DispatchTotal.WithLabelValues("sent")))

	done := r.JobStarted("process_reminders")
	assert.Equal(t, float64(1), testutil.ToFloat64(JobRunning.WithLabelValues("process_reminders")))
	done()
	assert.Equal(t, float64(0), testutil.ToFloat64(JobRunning.WithLabelValues("process_reminders")))

	beforeFail := testutil.ToFloat64(EmailSendTotal.WithLabelValues("log", "failure"))
	r.EmailSent("log", false, 20*time.Millisecond)
	assert.Equal(t, beforeFail+1, testutil.ToFloat64(EmailSendTotal.WithLabelValues("log", "failure")))

	beforeSpawn := testutil.ToFloat64(RecurringSpawnedTotal)
	r.RecurringSpawned(3)
	assert.Equal(t, beforeSpawn+3, testutil.ToFloat64(RecurringSpawnedTotal))
}
