package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	DispatchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reminderly_dispatch_total",
			Help: "Reminder dispatch outcomes by status",
		},
		[]string{"status"},
	)

	EmailSendTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reminderly_email_send_total",
			Help: "Email send attempts by provider and result",
		},
		[]string{"provider", "result"},
	)

	EmailSendDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "reminderly_email_send_duration_seconds",
			Help:    "Duration of email send calls in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"provider"},
	)

	RecurringSpawnedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "reminderly_recurring_spawned_total",
			Help: "Reminder instances created from recurring definitions",
		},
	)

	JobRunning = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "reminderly_job_running",
			Help: "Batch jobs currently running by job type",
		},
		[]string{"job_type"},
	)
)

// Recorder adapts the package collectors to the narrow interfaces use cases depend on.
type Recorder struct{}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (Recorder) DispatchOutcome(status string) {
	DispatchTotal.WithLabelValues(status).Inc()
}

func (Recorder) RecurringSpawned(count int) {
	RecurringSpawnedTotal.Add(float64(count))
}

// JobStarted marks jobType as running and returns the func that clears it.
func (Recorder) JobStarted(jobType string) func() {
	g := JobRunning.WithLabelValues(jobType)
	g.Inc()
	return g.Dec
}

func (Recorder) EmailSent(provider string, success bool, elapsed time.Duration) {
	result := "success"
	if !success {
		result = "failure"
	}
	EmailSendTotal.WithLabelValues(provider, result).Inc()
	EmailSendDuration.WithLabelValues(provider).Observe(elapsed.Seconds())
}
