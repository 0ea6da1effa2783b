package usecases

import (
	"context"
	"sync"
	"time"

	"github.com/reminderly/reminderly/internal/domain/jobrun"
)

type mockJobRunRepository struct {
	mu   sync.Mutex
	runs map[string]*jobrun.JobRun

	ListActiveFunc func(ctx context.Context, jobType jobrun.JobType, since time.Time) ([]*jobrun.JobRun, error)
	ListFunc       func(ctx context.Context, jobType *jobrun.JobType, limit int) ([]*jobrun.JobRun, error)
}

func newMockJobRunRepository() *mockJobRunRepository {
	return &mockJobRunRepository{runs: make(map[string]*jobrun.JobRun)}
}

func (m *mockJobRunRepository) Create(ctx context.Context, run *jobrun.JobRun) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.runs[run.ID()] = run
	return nil
}

func (m *mockJobRunRepository) Update(ctx context.Context, run *jobrun.JobRun) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.runs[run.ID()] = run
	return nil
}

func (m *mockJobRunRepository) GetByID(ctx context.Context, id string) (*jobrun.JobRun, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	run, ok := m.runs[id]
	if !ok {
		return nil, jobrun.ErrJobRunNotFound
	}
	return run, nil
}

func (m *mockJobRunRepository) ListActive(ctx context.Context, jobType jobrun.JobType, since time.Time) ([]*jobrun.JobRun, error) {
	if m.ListActiveFunc != nil {
		return m.ListActiveFunc(ctx, jobType, since)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*jobrun.JobRun
	for _, r := range m.runs {
		if r.JobType() == jobType && r.Status() == jobrun.StatusStarted && !r.ExecutedAt().Before(since) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *mockJobRunRepository) List(ctx context.Context, jobType *jobrun.JobType, limit int) ([]*jobrun.JobRun, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, jobType, limit)
	}
	return nil, nil
}

type mockRunLock struct {
	mu       sync.Mutex
	held     map[jobrun.JobType]bool
	released int
}

func newMockRunLock() *mockRunLock {
	return &mockRunLock{held: make(map[jobrun.JobType]bool)}
}

func (m *mockRunLock) TryAcquire(ctx context.Context, jobType jobrun.JobType, ttl time.Duration) (func(), bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.held[jobType] {
		return nil, false, nil
	}
	m.held[jobType] = true
	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.held, jobType)
		m.released++
	}, true, nil
}

type mockJobMetrics struct {
	started  []string
	finished int
}

func (m *mockJobMetrics) JobStarted(jobType string) func() {
	m.started = append(m.started, jobType)
	return func() { m.finished++ }
}
