package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reminderly/reminderly/internal/application/reminder/dto"
	apperrors "github.com/reminderly/reminderly/internal/shared/errors"
)

func TestCompleteReminderUseCase_Execute(t *testing.T) {
	repo := newMockReminderRepository(newTestReminder(t, 100, 1, 10, testToday))
	uc := NewCompleteReminderUseCase(repo, testClock, testNop)

	resp, err := uc.Execute(context.Background(), CompleteReminderCommand{ReminderID: 100, CompletedBy: "hr@example.com", Notes: "signed"})
	require.NoError(t, err)
	assert.Equal(t, dto.StatusCompleted, resp.Status)
	require.NotNil(t, resp.Completion)
	assert.Equal(t, "hr@example.com", resp.Completion.CompletedBy)
	assert.Equal(t, testClock.Now(), resp.Completion.CompletedAt)

	t.Run("completing twice is a conflict", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), CompleteReminderCommand{ReminderID: 100})
		assert.True(t, apperrors.IsConflictError(err))
	})

	t.Run("missing reminder", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), CompleteReminderCommand{ReminderID: 404})
		assert.True(t, apperrors.IsNotFoundError(err))
	})

	t.Run("completed reminders leave the pending list", func(t *testing.T) {
		pending, err := repo.ListPending(context.Background())
		require.NoError(t, err)
		assert.Empty(t, pending)
	})
}
