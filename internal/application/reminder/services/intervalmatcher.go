package services

import "errors"

// ErrNoIntervals reports a reminder type that can never fire automatically.
var ErrNoIntervals = errors.New("reminder type has no lead-time intervals configured")

// MatchInterval returns the configured interval equal to daysUntilDue.
// Matching is exact: a reminder 29 days out does not fire for a 30 day interval.
func MatchInterval(daysUntilDue int, intervals []int) (int, bool, error) {
	if len(intervals) == 0 {
		return 0, false, ErrNoIntervals
	}
	for _, days := range intervals {
		if days == daysUntilDue {
			return days, true, nil
		}
	}
	return 0, false, nil
}
