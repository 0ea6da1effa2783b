package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/reminderly/reminderly/internal/domain/reminder/valueobjects"
	"github.com/reminderly/reminderly/internal/shared/biztime"
)

// TestMatchInterval_ExactOnly walks a fixed reminder toward its due date and
// checks it fires exactly on the configured lead times.
func TestMatchInterval_ExactOnly(t *testing.T) {
	intervals := []int{30, 7}
	start := biztime.Date(2024, time.March, 1)
	due := start.AddDate(0, 0, 30)

	var fired []int
	for offset := 0; offset <= 31; offset++ {
		today := start.AddDate(0, 0, offset)
		days := DaysUntilDue(due, vo.RecurrenceOneOff, today)

		matched, ok, err := MatchInterval(days, intervals)
		require.NoError(t, err)
		if ok {
			fired = append(fired, matched)
		}
	}

	assert.Equal(t, []int{30, 7}, fired)
}

func TestMatchInterval_NeighboursDoNotFire(t *testing.T) {
	for _, days := range []int{29, 31, 6, 8, -7} {
		_, ok, err := MatchInterval(days, []int{30, 7})
		require.NoError(t, err)
		assert.False(t, ok, "days=%d", days)
	}
}

func TestMatchInterval_ZeroMeansDueDay(t *testing.T) {
	matched, ok, err := MatchInterval(0, []int{14, 0})

	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 0, matched)
}

// TestMatchInterval_EmptySetIsConfigurationProblem verifies an empty set is reported, not skipped.
func TestMatchInterval_EmptySetIsConfigurationProblem(t *testing.T) {
	_, ok, err := MatchInterval(7, nil)

	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrNoIntervals)
}
