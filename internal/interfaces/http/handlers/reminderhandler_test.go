package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	reminderdto "github.com/reminderly/reminderly/internal/application/reminder/dto"
	reminderusecases "github.com/reminderly/reminderly/internal/application/reminder/usecases"
	"github.com/reminderly/reminderly/internal/interfaces/http/handlers/testutil"
	"github.com/reminderly/reminderly/internal/shared/errors"
	"github.com/reminderly/reminderly/internal/shared/logger"
)

type reminderMocks struct {
	create     *mockCreateReminder
	get        *mockGetReminder
	list       *mockListReminders
	update     *mockUpdateReminder
	del        *mockDeleteReminder
	complete   *mockCompleteReminder
	send       *mockSendReminderNow
	bulkCreate *mockBulkCreateReminders
	bulkSend   *mockBulkSendReminders
}

func newReminderHandler() (*ReminderHandler, *reminderMocks) {
	m := &reminderMocks{
		create:     &mockCreateReminder{},
		get:        &mockGetReminder{},
		list:       &mockListReminders{},
		update:     &mockUpdateReminder{},
		del:        &mockDeleteReminder{},
		complete:   &mockCompleteReminder{},
		send:       &mockSendReminderNow{},
		bulkCreate: &mockBulkCreateReminders{},
		bulkSend:   &mockBulkSendReminders{},
	}
	h := NewReminderHandler(
		m.create, m.get, m.list, m.update, m.del, m.complete, m.send, m.bulkCreate, m.bulkSend,
		logger.NewNopLogger(),
	)
	return h, m
}

// =====================================================================
// Create / List
// =====================================================================

func TestReminderHandler_CreateReminder(t *testing.T) {
	h, m := newReminderHandler()
	var got reminderusecases.CreateReminderCommand
	m.create.fn = func(_ context.Context, cmd reminderusecases.CreateReminderCommand) (*reminderdto.ReminderResponse, error) {
		got = cmd
		return &reminderdto.ReminderResponse{ID: 3, DueDate: cmd.DueDate, Priority: "high"}, nil
	}

	c, w := testutil.NewTestContext(http.MethodPost, "/api/reminders", map[string]any{
		"employee_id":      1,
		"reminder_type_id": 2,
		"due_date":         "2025-03-01",
		"priority":         "high",
	})
	h.CreateReminder(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, uint(1), got.EmployeeID)
	assert.Equal(t, uint(2), got.ReminderTypeID)
	assert.Equal(t, "high", got.Priority)
}

func TestReminderHandler_CreateReminder_RejectsUnknownPriority(t *testing.T) {
	h, _ := newReminderHandler()

	c, w := testutil.NewTestContext(http.MethodPost, "/api/reminders", map[string]any{
		"employee_id":      1,
		"reminder_type_id": 2,
		"due_date":         "2025-03-01",
		"priority":         "urgent",
	})
	h.CreateReminder(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReminderHandler_ListReminders(t *testing.T) {
	t.Run("filters are forwarded", func(t *testing.T) {
		h, m := newReminderHandler()
		var got reminderusecases.ListRemindersQuery
		m.list.fn = func(_ context.Context, q reminderusecases.ListRemindersQuery) ([]*reminderdto.ReminderResponse, int64, error) {
			got = q
			return []*reminderdto.ReminderResponse{}, 0, nil
		}

		c, w := testutil.NewTestContext(http.MethodGet, "/api/reminders", nil)
		testutil.SetQueryParams(c, map[string]string{
			"employee_id": "5",
			"status":      "pending",
			"due_from":    "2025-01-01",
			"due_to":      "2025-01-31",
		})
		h.ListReminders(c)

		require.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, got.EmployeeID)
		assert.Equal(t, uint(5), *got.EmployeeID)
		assert.Nil(t, got.ReminderTypeID)
		assert.Equal(t, "pending", got.Status)
		assert.Equal(t, "2025-01-01", got.DueFrom)
		assert.Equal(t, "2025-01-31", got.DueTo)
	})

	t.Run("non-numeric employee_id", func(t *testing.T) {
		h, _ := newReminderHandler()
		c, w := testutil.NewTestContext(http.MethodGet, "/api/reminders", nil)
		testutil.SetQueryParams(c, map[string]string{"employee_id": "x"})
		h.ListReminders(c)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// =====================================================================
// Complete
// =====================================================================

func TestReminderHandler_CompleteReminder(t *testing.T) {
	tests := []struct {
		name       string
		body       any
		err        error
		wantStatus int
		wantBy     string
	}{
		{name: "without body", wantStatus: http.StatusOK},
		{name: "with body", body: map[string]string{"completed_by": "hr@example.com", "notes": "done"}, wantStatus: http.StatusOK, wantBy: "hr@example.com"},
		{name: "missing reminder", err: errors.NewNotFoundError("reminder not found"), wantStatus: http.StatusNotFound},
		{name: "already completed", err: errors.NewConflictError("reminder already completed"), wantStatus: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newReminderHandler()
			var got reminderusecases.CompleteReminderCommand
			m.complete.fn = func(_ context.Context, cmd reminderusecases.CompleteReminderCommand) (*reminderdto.ReminderResponse, error) {
				got = cmd
				if tt.err != nil {
					return nil, tt.err
				}
				return &reminderdto.ReminderResponse{ID: cmd.ReminderID, Status: reminderdto.StatusCompleted}, nil
			}

			c, w := testutil.NewTestContext(http.MethodPost, "/api/reminders/11/complete", tt.body)
			testutil.SetURLParam(c, "id", "11")
			h.CompleteReminder(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, uint(11), got.ReminderID)
			assert.Equal(t, tt.wantBy, got.CompletedBy)
		})
	}
}

// =====================================================================
// Send / Logs
// =====================================================================

func TestReminderHandler_SendReminder(t *testing.T) {
	h, m := newReminderHandler()
	days := 3
	m.send.fn = func(_ context.Context, id uint) (*reminderdto.DispatchEntry, error) {
		return &reminderdto.DispatchEntry{ReminderID: id, DaysBefore: &days, Status: "sent"}, nil
	}

	c, w := testutil.NewTestContext(http.MethodPost, "/api/reminders/8/send", nil)
	testutil.SetURLParam(c, "id", "8")
	h.SendReminder(c)

	require.Equal(t, http.StatusOK, w.Code)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	var entry reminderdto.DispatchEntry
	require.NoError(t, json.Unmarshal(resp.Data, &entry))
	assert.Equal(t, uint(8), entry.ReminderID)
	assert.Equal(t, "sent", entry.Status)
}

func TestReminderHandler_ListDispatchLogs(t *testing.T) {
	h, m := newReminderHandler()
	m.get.logsFn = func(_ context.Context, id uint) ([]*reminderdto.DispatchLogResponse, error) {
		return []*reminderdto.DispatchLogResponse{{ID: 1, ReminderID: id, DaysBefore: 7, Status: "sent"}}, nil
	}

	c, w := testutil.NewTestContext(http.MethodGet, "/api/reminders/2/logs", nil)
	testutil.SetURLParam(c, "id", "2")
	h.ListDispatchLogs(c)

	require.Equal(t, http.StatusOK, w.Code)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	var logs []reminderdto.DispatchLogResponse
	require.NoError(t, json.Unmarshal(resp.Data, &logs))
	require.Len(t, logs, 1)
	assert.Equal(t, 7, logs[0].DaysBefore)
}

// =====================================================================
// Update
// =====================================================================

func TestReminderHandler_UpdateReminder(t *testing.T) {
	h, m := newReminderHandler()
	var got reminderusecases.UpdateReminderCommand
	m.update.fn = func(_ context.Context, cmd reminderusecases.UpdateReminderCommand) (*reminderdto.ReminderResponse, error) {
		got = cmd
		return &reminderdto.ReminderResponse{ID: cmd.ID, DueDate: *cmd.DueDate}, nil
	}

	c, w := testutil.NewTestContext(http.MethodPatch, "/api/reminders/4", map[string]any{
		"due_date": "2025-06-01",
	})
	testutil.SetURLParam(c, "id", "4")
	h.UpdateReminder(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(4), got.ID)
	require.NotNil(t, got.DueDate)
	assert.Equal(t, "2025-06-01", *got.DueDate)
	assert.Nil(t, got.Notes, "absent fields stay nil")
	assert.Nil(t, got.Priority)
}

func TestReminderHandler_UpdateReminder_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       map[string]any
		err        error
		wantStatus int
	}{
		{name: "unknown priority", body: map[string]any{"priority": "urgent"}, wantStatus: http.StatusBadRequest},
		{name: "missing reminder", body: map[string]any{"notes": "x"}, err: errors.NewNotFoundError("reminder not found"), wantStatus: http.StatusNotFound},
		{name: "date taken by recurring instance", body: map[string]any{"due_date": "2025-06-01"}, err: errors.NewConflictError("taken"), wantStatus: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newReminderHandler()
			called := false
			m.update.fn = func(_ context.Context, _ reminderusecases.UpdateReminderCommand) (*reminderdto.ReminderResponse, error) {
				called = true
				return nil, tt.err
			}

			c, w := testutil.NewTestContext(http.MethodPatch, "/api/reminders/4", tt.body)
			testutil.SetURLParam(c, "id", "4")
			h.UpdateReminder(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.err != nil, called)
		})
	}
}

// =====================================================================
// Bulk operations
// =====================================================================

func TestReminderHandler_BulkCreateReminders(t *testing.T) {
	h, m := newReminderHandler()
	var got reminderusecases.BulkCreateRemindersCommand
	m.bulkCreate.fn = func(_ context.Context, cmd reminderusecases.BulkCreateRemindersCommand) ([]*reminderdto.ReminderResponse, error) {
		got = cmd
		return []*reminderdto.ReminderResponse{{ID: 1}, {ID: 2}}, nil
	}

	c, w := testutil.NewTestContext(http.MethodPost, "/api/reminders/bulk", map[string]any{
		"employee_id": 7,
		"reminders": []map[string]any{
			{"reminder_type_id": 1, "due_date": "2025-05-01", "notes": "annual"},
			{"reminder_type_id": 2, "due_date": "2025-06-30", "priority": "high"},
		},
	})
	h.BulkCreateReminders(c)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, uint(7), got.EmployeeID)
	require.Len(t, got.Items, 2)
	assert.Equal(t, "annual", got.Items[0].Notes)
	assert.Equal(t, "high", got.Items[1].Priority)
}

func TestReminderHandler_BulkCreateReminders_Validation(t *testing.T) {
	tests := []struct {
		name string
		body map[string]any
	}{
		{name: "no reminders", body: map[string]any{"employee_id": 7, "reminders": []map[string]any{}}},
		{name: "missing employee", body: map[string]any{"reminders": []map[string]any{{"reminder_type_id": 1, "due_date": "2025-05-01"}}}},
		{name: "item without due date", body: map[string]any{"employee_id": 7, "reminders": []map[string]any{{"reminder_type_id": 1}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newReminderHandler()
			called := false
			m.bulkCreate.fn = func(_ context.Context, _ reminderusecases.BulkCreateRemindersCommand) ([]*reminderdto.ReminderResponse, error) {
				called = true
				return nil, nil
			}

			c, w := testutil.NewTestContext(http.MethodPost, "/api/reminders/bulk", tt.body)
			h.BulkCreateReminders(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.False(t, called)
		})
	}
}

func TestReminderHandler_BulkSendReminders(t *testing.T) {
	h, m := newReminderHandler()
	var got []uint
	m.bulkSend.fn = func(_ context.Context, ids []uint) (*reminderdto.BulkSendResult, error) {
		got = ids
		return &reminderdto.BulkSendResult{
			Sent:    1,
			Failed:  1,
			SentIDs: []uint{3},
			Items: []reminderdto.BulkSendItem{
				{ReminderID: 3, Status: reminderdto.EntryStatusSent},
				{ReminderID: 4, Status: reminderdto.EntryStatusFailed, Error: "reminder not found"},
			},
		}, nil
	}

	c, w := testutil.NewTestContext(http.MethodPost, "/api/reminders/bulk/send", map[string]any{
		"reminder_ids": []uint{3, 4},
	})
	h.BulkSendReminders(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []uint{3, 4}, got)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	var result reminderdto.BulkSendResult
	require.NoError(t, json.Unmarshal(resp.Data, &result))
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, "reminder not found", result.Items[1].Error)

	t.Run("empty id list", func(t *testing.T) {
		h, _ := newReminderHandler()
		c, w := testutil.NewTestContext(http.MethodPost, "/api/reminders/bulk/send", map[string]any{"reminder_ids": []uint{}})
		h.BulkSendReminders(c)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
