package reminder

import (
	"fmt"
	"sort"
	"strings"
	"time"

	vo "github.com/reminderly/reminderly/internal/domain/reminder/valueobjects"
	"github.com/reminderly/reminderly/internal/shared/biztime"
)

const (
	MaxIntervalDays      = 3650
	maxTypeNameLength    = 100
	maxDescriptionLength = 1000
)

// ReminderType is a catalog entry shared by many reminder instances.
// Template and policy are optional at rest; dispatch treats their absence as a configuration error.
type ReminderType struct {
	id              uint
	name            string
	description     string
	enabled         bool
	recurrenceClass vo.RecurrenceClass
	intervals       []int
	template        *EmailTemplate
	policy          *RecipientPolicy
	createdAt       time.Time
	updatedAt       time.Time
}

func NewReminderType(name, description string, recurrenceClass vo.RecurrenceClass, intervals []int) (*ReminderType, error) {
	if err := validateTypeName(name); err != nil {
		return nil, err
	}
	if len(description) > maxDescriptionLength {
		return nil, fmt.Errorf("description exceeds maximum length of %d characters", maxDescriptionLength)
	}
	if recurrenceClass != "" && !recurrenceClass.IsValid() {
		return nil, fmt.Errorf("invalid recurrence class")
	}
	normalized, err := NormalizeIntervals(intervals)
	if err != nil {
		return nil, err
	}

	now := biztime.NowUTC()
	return &ReminderType{
		name:            strings.TrimSpace(name),
		description:     description,
		enabled:         true,
		recurrenceClass: recurrenceClass,
		intervals:       normalized,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

func ReconstructReminderType(
	id uint,
	name string,
	description string,
	enabled bool,
	recurrenceClass vo.RecurrenceClass,
	intervals []int,
	template *EmailTemplate,
	policy *RecipientPolicy,
	createdAt, updatedAt time.Time,
) (*ReminderType, error) {
	if id == 0 {
		return nil, fmt.Errorf("reminder type ID cannot be zero")
	}
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}

	sorted := make([]int, len(intervals))
	copy(sorted, intervals)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))

	return &ReminderType{
		id:              id,
		name:            name,
		description:     description,
		enabled:         enabled,
		recurrenceClass: recurrenceClass,
		intervals:       sorted,
		template:        template,
		policy:          policy,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}, nil
}

// NormalizeIntervals validates lead times and returns them sorted descending.
// Duplicates and values outside 0..MaxIntervalDays are rejected.
func NormalizeIntervals(intervals []int) ([]int, error) {
	seen := make(map[int]bool, len(intervals))
	out := make([]int, 0, len(intervals))
	for _, days := range intervals {
		if days < 0 || days > MaxIntervalDays {
			return nil, fmt.Errorf("interval %d must be between 0 and %d days", days, MaxIntervalDays)
		}
		if seen[days] {
			return nil, fmt.Errorf("duplicate interval %d", days)
		}
		seen[days] = true
		out = append(out, days)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	return out, nil
}

func (t *ReminderType) ID() uint {
	return t.id
}

func (t *ReminderType) Name() string {
	return t.name
}

func (t *ReminderType) Description() string {
	return t.description
}

func (t *ReminderType) IsEnabled() bool {
	return t.enabled
}

// ConfiguredRecurrenceClass is the stored class, empty when it should be inferred.
func (t *ReminderType) ConfiguredRecurrenceClass() vo.RecurrenceClass {
	return t.recurrenceClass
}

// RecurrenceClass returns the configured class or the one inferred from the name.
func (t *ReminderType) RecurrenceClass() vo.RecurrenceClass {
	if t.recurrenceClass != "" {
		return t.recurrenceClass
	}
	return vo.InferRecurrenceClass(t.name)
}

// Intervals returns a copy of the lead times, largest first.
func (t *ReminderType) Intervals() []int {
	out := make([]int, len(t.intervals))
	copy(out, t.intervals)
	return out
}

func (t *ReminderType) Template() *EmailTemplate {
	return t.template
}

func (t *ReminderType) Policy() *RecipientPolicy {
	return t.policy
}

func (t *ReminderType) CreatedAt() time.Time {
	return t.createdAt
}

func (t *ReminderType) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *ReminderType) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("reminder type ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("reminder type ID cannot be zero")
	}
	t.id = id
	return nil
}

func (t *ReminderType) Update(name, description string, recurrenceClass vo.RecurrenceClass) error {
	if err := validateTypeName(name); err != nil {
		return err
	}
	if len(description) > maxDescriptionLength {
		return fmt.Errorf("description exceeds maximum length of %d characters", maxDescriptionLength)
	}
	if recurrenceClass != "" && !recurrenceClass.IsValid() {
		return fmt.Errorf("invalid recurrence class")
	}

	t.name = strings.TrimSpace(name)
	t.description = description
	t.recurrenceClass = recurrenceClass
	t.touch()
	return nil
}

func (t *ReminderType) SetIntervals(intervals []int) error {
	normalized, err := NormalizeIntervals(intervals)
	if err != nil {
		return err
	}
	t.intervals = normalized
	t.touch()
	return nil
}

func (t *ReminderType) SetTemplate(template *EmailTemplate) {
	t.template = template
	t.touch()
}

func (t *ReminderType) SetPolicy(policy *RecipientPolicy) {
	t.policy = policy
	t.touch()
}

// Enable and Disable do not touch existing instances.
func (t *ReminderType) Enable() {
	t.enabled = true
	t.touch()
}

func (t *ReminderType) Disable() {
	t.enabled = false
	t.touch()
}

func (t *ReminderType) touch() {
	t.updatedAt = biztime.NowUTC()
}

func validateTypeName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("name is required")
	}
	if len(name) > maxTypeNameLength {
		return fmt.Errorf("name exceeds maximum length of %d characters", maxTypeNameLength)
	}
	return nil
}
