package handlers

import (
	"context"
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

// =====================================================================
// Reminder types
// =====================================================================

func TestReminderTypeHandler_Create(t *testing.T) {
	svc := &mockReminderTypeService{}
	h := NewReminderTypeHandler(svc, logger.NewNopLogger())

	var got reminderusecases.CreateReminderTypeCommand
	svc.createFn = func(_ context.Context, cmd reminderusecases.CreateReminderTypeCommand) (*reminderdto.ReminderTypeResponse, error) {
		got = cmd
		return &reminderdto.ReminderTypeResponse{ID: 1, Name: cmd.Name, Intervals: cmd.Intervals}, nil
	}

	c, w := testutil.NewTestContext(http.MethodPost, "/api/reminder-types", map[string]any{
		"name":      "Visa Expiry",
		"intervals": []int{60, 30, 7},
		"template": map[string]string{
			"subject": "Visa for {{employee_name}}",
			"body":    "Expires {{due_date}}",
			"format":  "markdown",
		},
		"recipient_policy": map[string]any{
			"notify_employee":   true,
			"additional_emails": []string{"legal@example.com"},
		},
	})
	h.CreateReminderType(c)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Visa Expiry", got.Name)
	assert.Equal(t, []int{60, 30, 7}, got.Intervals)
	require.NotNil(t, got.Template)
	assert.Equal(t, "markdown", got.Template.Format)
	require.NotNil(t, got.Policy)
	assert.True(t, got.Policy.NotifyEmployee)
	assert.Equal(t, []string{"legal@example.com"}, got.Policy.AdditionalEmails)
}

func TestReminderTypeHandler_Create_Validation(t *testing.T) {
	tests := []struct {
		name string
		body map[string]any
	}{
		{name: "missing name", body: map[string]any{"intervals": []int{7}}},
		{name: "negative interval", body: map[string]any{"name": "X", "intervals": []int{-1}}},
		{name: "bad additional email", body: map[string]any{"name": "X", "recipient_policy": map[string]any{"additional_emails": []string{"nope"}}}},
		{name: "unknown template format", body: map[string]any{"name": "X", "template": map[string]string{"subject": "s", "body": "b", "format": "pdf"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockReminderTypeService{}
			called := false
			svc.createFn = func(_ context.Context, _ reminderusecases.CreateReminderTypeCommand) (*reminderdto.ReminderTypeResponse, error) {
				called = true
				return nil, nil
			}
			h := NewReminderTypeHandler(svc, logger.NewNopLogger())

			c, w := testutil.NewTestContext(http.MethodPost, "/api/reminder-types", tt.body)
			h.CreateReminderType(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.False(t, called)
		})
	}
}

func TestReminderTypeHandler_Update_Partial(t *testing.T) {
	svc := &mockReminderTypeService{}
	h := NewReminderTypeHandler(svc, logger.NewNopLogger())

	var got reminderusecases.UpdateReminderTypeCommand
	svc.updateFn = func(_ context.Context, cmd reminderusecases.UpdateReminderTypeCommand) (*reminderdto.ReminderTypeResponse, error) {
		got = cmd
		return &reminderdto.ReminderTypeResponse{ID: cmd.ID}, nil
	}

	c, w := testutil.NewTestContext(http.MethodPatch, "/api/reminder-types/9", map[string]any{"enabled": false})
	testutil.SetURLParam(c, "id", "9")
	h.UpdateReminderType(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(9), got.ID)
	require.NotNil(t, got.Enabled)
	assert.False(t, *got.Enabled)
	assert.Nil(t, got.Name)
	assert.Nil(t, got.Template)
	assert.Nil(t, got.Policy)
}

// =====================================================================
// Recurring definitions
// =====================================================================

func TestRecurringHandler_Create(t *testing.T) {
	tests := []struct {
		name       string
		body       map[string]any
		err        error
		wantStatus int
	}{
		{
			name:       "valid",
			body:       map[string]any{"name": "Fire drill", "reminder_type_id": 2, "frequency": "monthly", "interval": 3, "next_due_date": "2025-01-31"},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "unknown frequency",
			body:       map[string]any{"name": "Fire drill", "reminder_type_id": 2, "frequency": "hourly", "interval": 1, "next_due_date": "2025-01-31"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "zero interval",
			body:       map[string]any{"name": "Fire drill", "reminder_type_id": 2, "frequency": "weekly", "interval": 0, "next_due_date": "2025-01-31"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing reminder type",
			body:       map[string]any{"name": "Fire drill", "reminder_type_id": 99, "frequency": "weekly", "interval": 1, "next_due_date": "2025-01-31"},
			err:        errors.NewNotFoundError("reminder type not found"),
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockRecurringService{}
			svc.createFn = func(_ context.Context, cmd reminderusecases.RecurringCommand) (*reminderdto.RecurringResponse, error) {
				if tt.err != nil {
					return nil, tt.err
				}
				return &reminderdto.RecurringResponse{ID: 1, Name: cmd.Name, Frequency: cmd.Frequency, Interval: cmd.Interval}, nil
			}
			h := NewRecurringHandler(svc, logger.NewNopLogger())

			c, w := testutil.NewTestContext(http.MethodPost, "/api/recurring", tt.body)
			h.CreateRecurring(c)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestRecurringHandler_Delete(t *testing.T) {
	svc := &mockRecurringService{}
	var deleted uint
	svc.deleteFn = func(_ context.Context, id uint) error {
		deleted = id
		return nil
	}
	h := NewRecurringHandler(svc, logger.NewNopLogger())

	c, _ := testutil.NewTestContext(http.MethodDelete, "/api/recurring/4", nil)
	testutil.SetURLParam(c, "id", "4")
	h.DeleteRecurring(c)

	assert.Equal(t, http.StatusNoContent, c.Writer.Status())
	assert.Equal(t, uint(4), deleted)
}
