package reminder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/reminderly/reminderly/internal/domain/reminder/valueobjects"
	"github.com/reminderly/reminderly/internal/shared/biztime"
)

func TestNewRecurringDefinition(t *testing.T) {
	d, err := NewRecurringDefinition("Month-end report", 3, vo.FrequencyMonthly, 1, biztime.Date(2024, time.January, 31))

	require.NoError(t, err)
	assert.Equal(t, 31, d.AnchorDay())
	assert.True(t, d.IsEnabled())
	assert.Nil(t, d.LastProcessedAt())
}

func TestNewRecurringDefinition_InvalidInput(t *testing.T) {
	due := biztime.Date(2024, time.January, 1)

	tests := []struct {
		name      string
		frequency vo.Frequency
		interval  int
	}{
		{"zero interval", vo.FrequencyDaily, 0},
		{"negative interval", vo.FrequencyWeekly, -2},
		{"unknown frequency", vo.Frequency("hourly"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRecurringDefinition("x", 1, tt.frequency, tt.interval, due)
			assert.Error(t, err)
		})
	}
}

func TestRecurringDefinition_IsDue(t *testing.T) {
	d, err := NewRecurringDefinition("Weekly sync", 1, vo.FrequencyWeekly, 1, biztime.Date(2024, time.March, 4))
	require.NoError(t, err)

	assert.False(t, d.IsDue(biztime.Date(2024, time.March, 3)))
	assert.True(t, d.IsDue(biztime.Date(2024, time.March, 4)))
	assert.True(t, d.IsDue(biztime.Date(2024, time.March, 9)))

	d.Disable()
	assert.False(t, d.IsDue(biztime.Date(2024, time.March, 9)))
}

// TestRecurringDefinition_ScheduleNextMovesForward verifies the schedule never moves backwards.
func TestRecurringDefinition_ScheduleNextMovesForward(t *testing.T) {
	d, err := NewRecurringDefinition("Weekly sync", 1, vo.FrequencyWeekly, 1, biztime.Date(2024, time.March, 4))
	require.NoError(t, err)
	at := time.Date(2024, time.March, 4, 7, 0, 0, 0, time.UTC)

	require.NoError(t, d.ScheduleNext(biztime.Date(2024, time.March, 11), at))
	assert.Equal(t, biztime.Date(2024, time.March, 11), d.NextDueDate())
	require.NotNil(t, d.LastProcessedAt())
	assert.Equal(t, at, *d.LastProcessedAt())

	assert.Error(t, d.ScheduleNext(biztime.Date(2024, time.March, 11), at))
}

// TestRecurringDefinition_UpdateResetsAnchor verifies a new next due date becomes the anchor.
func TestRecurringDefinition_UpdateResetsAnchor(t *testing.T) {
	d, err := NewRecurringDefinition("Month-end", 1, vo.FrequencyMonthly, 1, biztime.Date(2024, time.January, 31))
	require.NoError(t, err)

	require.NoError(t, d.Update("Month-end", 1, vo.FrequencyMonthly, 2, biztime.Date(2024, time.January, 31)))
	assert.Equal(t, 31, d.AnchorDay())

	require.NoError(t, d.Update("Mid-month", 1, vo.FrequencyMonthly, 1, biztime.Date(2024, time.February, 15)))
	assert.Equal(t, 15, d.AnchorDay())
	assert.Equal(t, 1, d.Interval())
}
