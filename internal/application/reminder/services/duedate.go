package services

import (
	"time"

	vo "github.com/reminderly/reminderly/internal/domain/reminder/valueobjects"
	"github.com/reminderly/reminderly/internal/shared/biztime"
)

// IsLeapYear applies the Gregorian rule.
func IsLeapYear(year int) bool {
	return year%400 == 0 || (year%4 == 0 && year%100 != 0)
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	return biztime.Date(year, month+1, 0).Day()
}

// OccurrenceInYear places the anchor's month and day in year.
// A Feb 29 anchor becomes Feb 28 in common years.
func OccurrenceInYear(anchor time.Time, year int) time.Time {
	month, day := anchor.Month(), anchor.Day()
	if month == time.February && day == 29 && !IsLeapYear(year) {
		day = 28
	}
	return biztime.Date(year, month, day)
}

// NextOccurrence returns the first yearly occurrence of anchor on or after today.
func NextOccurrence(anchor, today time.Time) time.Time {
	today = biztime.TruncateDate(today)
	candidate := OccurrenceInYear(anchor, today.Year())
	if candidate.Before(today) {
		candidate = OccurrenceInYear(anchor, today.Year()+1)
	}
	return candidate
}

// EffectiveDueDate is the date a reminder is evaluated against today.
// Annual classes roll to the next occurrence of their anchor; everything else
// keeps its fixed due date, even when that is in the past.
func EffectiveDueDate(anchor time.Time, class vo.RecurrenceClass, today time.Time) time.Time {
	if class.IsAnnual() {
		return NextOccurrence(anchor, today)
	}
	return biztime.TruncateDate(anchor)
}

// DaysUntilDue counts whole days from today to the effective due date.
// Negative only for overdue non-annual reminders.
func DaysUntilDue(anchor time.Time, class vo.RecurrenceClass, today time.Time) int {
	return biztime.DaysBetween(today, EffectiveDueDate(anchor, class, today))
}

// AnchorDate picks the stored date an annual class rolls from. Birthday and
// anniversary reminders follow the employee record when it carries the date,
// otherwise the instance's own due date.
func AnchorDate(class vo.RecurrenceClass, dueDate time.Time, birthday, workAnniversary *time.Time) time.Time {
	switch {
	case class == vo.RecurrenceBirthday && birthday != nil:
		return *birthday
	case class == vo.RecurrenceAnniversary && workAnniversary != nil:
		return *workAnniversary
	default:
		return dueDate
	}
}

// AddMonthsClamped moves date by months, landing on anchorDay or the last day
// of the target month when it is shorter.
func AddMonthsClamped(date time.Time, months int, anchorDay int) time.Time {
	total := int(date.Month()) - 1 + months
	year := date.Year() + floorDiv(total, 12)
	month := time.Month(floorMod(total, 12) + 1)

	day := anchorDay
	if last := DaysIn(year, month); day > last {
		day = last
	}
	return biztime.Date(year, month, day)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}
