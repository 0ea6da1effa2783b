package valueobjects

import "fmt"

// Frequency is the unit a recurring definition advances by.
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
)

var validFrequencies = map[Frequency]bool{
	FrequencyDaily:   true,
	FrequencyWeekly:  true,
	FrequencyMonthly: true,
	FrequencyYearly:  true,
}

func (f Frequency) String() string {
	return string(f)
}

func (f Frequency) IsValid() bool {
	return validFrequencies[f]
}

// IsCalendarBased reports whether the unit depends on month lengths.
func (f Frequency) IsCalendarBased() bool {
	return f == FrequencyMonthly || f == FrequencyYearly
}

func ParseFrequency(s string) (Frequency, error) {
	f := Frequency(s)
	if !f.IsValid() {
		return "", fmt.Errorf("invalid frequency %q", s)
	}
	return f, nil
}
