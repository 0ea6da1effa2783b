package biztime

import (
	"fmt"
	"strings"
	"time"
)

const hoursPerDay = 24

// Clock supplies the current instant. Batch jobs take a Clock instead of
// calling time.Now so date logic stays deterministic under test.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns the current time in UTC.
func (SystemClock) Now() time.Time {
	return NowUTC()
}

// FixedClock always reports the same instant.
type FixedClock struct {
	At time.Time
}

// Now returns the fixed instant.
func (c FixedClock) Now() time.Time {
	return c.At
}

// Date builds the civil date y-m-d. Out-of-range values normalize the same
// way time.Date does, so callers must clamp days themselves when that matters.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DateOf returns the civil date the instant t falls on in the business timezone.
func DateOf(t time.Time) time.Time {
	biz := t.In(Location())
	return Date(biz.Year(), biz.Month(), biz.Day())
}

// Today returns the current civil date in the business timezone.
func Today(clock Clock) time.Time {
	return DateOf(clock.Now())
}

// TruncateDate drops the time-of-day from a value that already represents a
// civil date, keeping its year, month and day fields as written.
func TruncateDate(t time.Time) time.Time {
	return Date(t.Year(), t.Month(), t.Day())
}

// DaysBetween returns the number of whole days from "from" to "to".
// The result is negative when "to" is before "from".
func DaysBetween(from, to time.Time) int {
	diff := TruncateDate(to).Sub(TruncateDate(from))
	return int(diff.Hours() / hoursPerDay)
}

// ParseDate parses a YYYY-MM-DD string into a civil date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format %q: %w", s, err)
	}
	return t, nil
}

// FormatDate renders a civil date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return TruncateDate(t).Format(DateLayout)
}
