package valueobjects

import (
	"fmt"
	"strings"
)

// RecurrenceClass decides how a reminder's due date is interpreted.
type RecurrenceClass string

const (
	// RecurrenceOneOff reminders have a fixed due date that never rolls forward.
	RecurrenceOneOff RecurrenceClass = "one_off"
	// RecurrenceBirthday reminders recur every year on the anchor month and day.
	RecurrenceBirthday RecurrenceClass = "birthday"
	// RecurrenceAnniversary reminders recur every year on the work anniversary.
	RecurrenceAnniversary RecurrenceClass = "anniversary"
	// RecurrencePeriodic reminders are spawned by a recurring definition and
	// otherwise behave like one-off reminders.
	RecurrencePeriodic RecurrenceClass = "periodic"
)

var validRecurrenceClasses = map[RecurrenceClass]bool{
	RecurrenceOneOff:      true,
	RecurrenceBirthday:    true,
	RecurrenceAnniversary: true,
	RecurrencePeriodic:    true,
}

func (c RecurrenceClass) String() string {
	return string(c)
}

func (c RecurrenceClass) IsValid() bool {
	return validRecurrenceClasses[c]
}

// IsAnnual reports whether the due date is an anchor that rolls to its next yearly occurrence.
func (c RecurrenceClass) IsAnnual() bool {
	return c == RecurrenceBirthday || c == RecurrenceAnniversary
}

// InferRecurrenceClass derives the class from a reminder type name when none was configured.
func InferRecurrenceClass(typeName string) RecurrenceClass {
	lower := strings.ToLower(typeName)
	switch {
	case strings.Contains(lower, "birthday"):
		return RecurrenceBirthday
	case strings.Contains(lower, "anniversary"):
		return RecurrenceAnniversary
	default:
		return RecurrenceOneOff
	}
}

// ParseRecurrenceClass parses a configured class. An empty string means "infer from name".
func ParseRecurrenceClass(s string) (RecurrenceClass, error) {
	if s == "" {
		return "", nil
	}
	c := RecurrenceClass(s)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid recurrence class %q", s)
	}
	return c, nil
}
