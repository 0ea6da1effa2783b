package services

import (
	"fmt"
	"time"

	vo "github.com/reminderly/reminderly/internal/domain/reminder/valueobjects"
	"github.com/reminderly/reminderly/internal/shared/biztime"
)

// NextDueDate advances current by interval units of frequency. Monthly and
// yearly steps keep anchorDay, clamped to the target month's length, so a
// Jan 31 schedule goes Feb 29 (or 28), Mar 31, Apr 30.
func NextDueDate(current time.Time, frequency vo.Frequency, interval int, anchorDay int) (time.Time, error) {
	if interval < 1 {
		return time.Time{}, fmt.Errorf("interval must be at least 1, got %d", interval)
	}
	current = biztime.TruncateDate(current)
	if anchorDay < 1 || anchorDay > 31 {
		anchorDay = current.Day()
	}

	switch frequency {
	case vo.FrequencyDaily:
		return current.AddDate(0, 0, interval), nil
	case vo.FrequencyWeekly:
		return current.AddDate(0, 0, 7*interval), nil
	case vo.FrequencyMonthly:
		return AddMonthsClamped(current, interval, anchorDay), nil
	case vo.FrequencyYearly:
		return AddMonthsClamped(current, 12*interval, anchorDay), nil
	default:
		return time.Time{}, fmt.Errorf("unsupported frequency %q", frequency)
	}
}
