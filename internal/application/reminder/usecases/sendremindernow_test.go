package usecases

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reminderly/reminderly/internal/application/reminder/dto"
	vo "github.com/reminderly/reminderly/internal/domain/reminder/valueobjects"
	apperrors "github.com/reminderly/reminderly/internal/shared/errors"
)

func TestSendReminderNow_IgnoresIntervalsAndKeepsSlotFree(t *testing.T) {
	f := newDispatchFixture()
	f.employees = newMockEmployeeReader(newTestEmployee(t, 1, "boss@example.com", ""))
	f.types = newMockReminderTypeRepository(newTestType(t, 10, "Review", []int{7}, newTestPolicy(t, false, true, false)))
	f.reminders = newMockReminderRepository(newTestReminder(t, 100, 1, 10, testToday.AddDate(0, 0, 7)))

	entry, err := f.sendNowUseCase().Execute(context.Background(), 100)
	require.NoError(t, err)
	assert.Equal(t, dto.EntryStatusSent, entry.Status)
	assert.Equal(t, 7, *entry.DaysBefore)

	logs, _ := f.logs.ListByReminder(context.Background(), 100)
	require.Len(t, logs, 1)
	assert.True(t, logs[0].IsManual())
	assert.Empty(t, logs[0].ClaimKey())

	// the scheduled run still owns the 7-day slot
	result, err := f.dispatchUseCase().Execute(context.Background(), DispatchRemindersCommand{})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Sent)
	assert.Len(t, f.sender.sent, 2)
}

func TestSendReminderNow_Errors(t *testing.T) {
	policy := newTestPolicy(t, false, true, false)

	tests := []struct {
		name     string
		setup    func(f *dispatchFixture)
		wantCode int
	}{
		{
			name:     "reminder not found",
			setup:    func(f *dispatchFixture) {},
			wantCode: http.StatusNotFound,
		},
		{
			name: "already completed",
			setup: func(f *dispatchFixture) {
				rem := newTestReminder(t, 100, 1, 10, testToday)
				require.NoError(t, rem.Complete("", "", testClock.Now()))
				f.reminders = newMockReminderRepository(rem)
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "no recipients",
			setup: func(f *dispatchFixture) {
				f.employees = newMockEmployeeReader(newTestEmployee(t, 1, "", ""))
				f.reminders = newMockReminderRepository(newTestReminder(t, 100, 1, 10, testToday))
			},
			wantCode: http.StatusUnprocessableEntity,
		},
		{
			name: "management delivery fails",
			setup: func(f *dispatchFixture) {
				f.reminders = newMockReminderRepository(newTestReminder(t, 100, 1, 10, testToday))
				f.sender.failFor["boss@example.com"] = errors.New("rejected")
			},
			wantCode: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newDispatchFixture()
			f.employees = newMockEmployeeReader(newTestEmployee(t, 1, "boss@example.com", ""))
			f.types = newMockReminderTypeRepository(newTestType(t, 10, "Review", []int{7}, policy))
			tt.setup(f)

			_, err := f.sendNowUseCase().Execute(context.Background(), 100)
			require.Error(t, err)
			appErr := apperrors.GetAppError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, tt.wantCode, appErr.Code)
		})
	}

	t.Run("failed manual sends are logged", func(t *testing.T) {
		f := newDispatchFixture()
		f.employees = newMockEmployeeReader(newTestEmployee(t, 1, "", ""))
		f.types = newMockReminderTypeRepository(newTestType(t, 10, "Review", []int{7}, policy))
		f.reminders = newMockReminderRepository(newTestReminder(t, 100, 1, 10, testToday))

		_, err := f.sendNowUseCase().Execute(context.Background(), 100)
		require.Error(t, err)
		failed := f.logs.byStatus(vo.DispatchStatusFailed)
		require.Len(t, failed, 1)
		assert.True(t, failed[0].IsManual())
	})
}
