package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jobrundto "github.com/reminderly/reminderly/internal/application/jobrun/dto"
	jobrunusecases "github.com/reminderly/reminderly/internal/application/jobrun/usecases"
	"github.com/reminderly/reminderly/internal/domain/jobrun"
	"github.com/reminderly/reminderly/internal/interfaces/http/handlers/testutil"
	"github.com/reminderly/reminderly/internal/shared/errors"
	"github.com/reminderly/reminderly/internal/shared/logger"
)

func newCronHandler() (*CronHandler, *mockRunJob, *mockListRuns) {
	run := &mockRunJob{}
	list := &mockListRuns{}
	return NewCronHandler(run, list, logger.NewNopLogger()), run, list
}

// =====================================================================
// Triggers
// =====================================================================

func TestCronHandler_ProcessReminders(t *testing.T) {
	t.Run("date from body", func(t *testing.T) {
		h, run, _ := newCronHandler()
		var got jobrunusecases.RunJobCommand
		run.fn = func(_ context.Context, cmd jobrunusecases.RunJobCommand) (*jobrundto.JobRunResponse, error) {
			got = cmd
			return &jobrundto.JobRunResponse{ID: "r1", JobType: cmd.JobType.String(), Status: "completed"}, nil
		}

		c, w := testutil.NewTestContext(http.MethodPost, "/api/cron/process-reminders", map[string]string{"date": "2025-03-10"})
		h.ProcessReminders(c)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, jobrun.JobTypeProcessReminders, got.JobType)
		assert.Equal(t, jobrun.TriggerManual, got.Trigger)
		require.NotNil(t, got.Today)
		assert.Equal(t, "2025-03-10", got.Today.Format("2006-01-02"))
	})

	t.Run("date from query", func(t *testing.T) {
		h, run, _ := newCronHandler()
		var got jobrunusecases.RunJobCommand
		run.fn = func(_ context.Context, cmd jobrunusecases.RunJobCommand) (*jobrundto.JobRunResponse, error) {
			got = cmd
			return &jobrundto.JobRunResponse{ID: "r2"}, nil
		}

		c, w := testutil.NewTestContext(http.MethodPost, "/api/cron/process-reminders", nil)
		testutil.SetQueryParams(c, map[string]string{"date": "2025-12-31"})
		h.ProcessReminders(c)

		require.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, got.Today)
		assert.Equal(t, "2025-12-31", got.Today.Format("2006-01-02"))
	})

	t.Run("no date uses the clock", func(t *testing.T) {
		h, run, _ := newCronHandler()
		var got jobrunusecases.RunJobCommand
		run.fn = func(_ context.Context, cmd jobrunusecases.RunJobCommand) (*jobrundto.JobRunResponse, error) {
			got = cmd
			return &jobrundto.JobRunResponse{ID: "r3"}, nil
		}

		c, w := testutil.NewTestContext(http.MethodPost, "/api/cron/process-reminders", nil)
		h.ProcessReminders(c)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Nil(t, got.Today)
	})

	t.Run("malformed date", func(t *testing.T) {
		h, run, _ := newCronHandler()
		called := false
		run.fn = func(_ context.Context, _ jobrunusecases.RunJobCommand) (*jobrundto.JobRunResponse, error) {
			called = true
			return nil, nil
		}

		c, w := testutil.NewTestContext(http.MethodPost, "/api/cron/process-reminders", map[string]string{"date": "10/03/2025"})
		h.ProcessReminders(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, called)

		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		assert.Equal(t, string(errors.ErrorTypeBadRequest), resp.Error.Type)
	})

	t.Run("overlapping run", func(t *testing.T) {
		h, run, _ := newCronHandler()
		run.fn = func(_ context.Context, _ jobrunusecases.RunJobCommand) (*jobrundto.JobRunResponse, error) {
			return nil, errors.NewConflictError("job already running")
		}

		c, w := testutil.NewTestContext(http.MethodPost, "/api/cron/process-reminders", nil)
		h.ProcessReminders(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("recorded failure carries the run", func(t *testing.T) {
		h, run, _ := newCronHandler()
		run.fn = func(_ context.Context, _ jobrunusecases.RunJobCommand) (*jobrundto.JobRunResponse, error) {
			return &jobrundto.JobRunResponse{ID: "r4", Status: "failed", Error: "database unavailable"},
				errors.NewInternalError("job failed")
		}

		c, w := testutil.NewTestContext(http.MethodPost, "/api/cron/process-reminders", nil)
		h.ProcessReminders(c)

		require.Equal(t, http.StatusInternalServerError, w.Code)
		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		assert.False(t, resp.Success)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "database unavailable", resp.Error.Details)

		var data jobrundto.JobRunResponse
		require.NoError(t, json.Unmarshal(resp.Data, &data))
		assert.Equal(t, "r4", data.ID)
	})
}

func TestCronHandler_ProcessRecurring(t *testing.T) {
	h, run, _ := newCronHandler()
	var got jobrunusecases.RunJobCommand
	run.fn = func(_ context.Context, cmd jobrunusecases.RunJobCommand) (*jobrundto.JobRunResponse, error) {
		got = cmd
		return &jobrundto.JobRunResponse{ID: "r5"}, nil
	}

	c, w := testutil.NewTestContext(http.MethodPost, "/api/cron/process-recurring", nil)
	h.ProcessRecurring(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, jobrun.JobTypeProcessRecurring, got.JobType)
}

// =====================================================================
// Logs / Health
// =====================================================================

func TestCronHandler_ListLogs(t *testing.T) {
	tests := []struct {
		name       string
		query      map[string]string
		wantStatus int
		wantLimit  int
		wantType   string
	}{
		{name: "defaults", query: map[string]string{}, wantStatus: http.StatusOK},
		{name: "limit and type", query: map[string]string{"limit": "5", "type": "process_recurring"}, wantStatus: http.StatusOK, wantLimit: 5, wantType: "process_recurring"},
		{name: "zero limit", query: map[string]string{"limit": "0"}, wantStatus: http.StatusBadRequest},
		{name: "text limit", query: map[string]string{"limit": "ten"}, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _, list := newCronHandler()
			var got jobrunusecases.ListRunsQuery
			list.fn = func(_ context.Context, q jobrunusecases.ListRunsQuery) ([]*jobrundto.JobRunResponse, error) {
				got = q
				return []*jobrundto.JobRunResponse{}, nil
			}

			c, w := testutil.NewTestContext(http.MethodGet, "/api/cron/logs", nil)
			testutil.SetQueryParams(c, tt.query)
			h.ListLogs(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.wantLimit, got.Limit)
				assert.Equal(t, tt.wantType, got.JobType)
			}
		})
	}
}

func TestHealthHandler(t *testing.T) {
	h := NewHealthHandler("v1.0.0")
	c, w := testutil.NewTestContext(http.MethodGet, "/health", nil)
	h.Health(c)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "v1.0.0", body["version"])
}
