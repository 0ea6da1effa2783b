package models

import (
	"time"

	"gorm.io/datatypes"
)

type ReminderTypeModel struct {
	ID              uint           `gorm:"primaryKey"`
	Name            string         `gorm:"uniqueIndex;size:100;not null"`
	Description     string         `gorm:"size:500"`
	Enabled         bool           `gorm:"not null"`
	RecurrenceClass string         `gorm:"size:20"`
	Intervals       datatypes.JSON `gorm:"type:json"`
	TemplateSubject *string        `gorm:"size:255"`
	TemplateBody    *string        `gorm:"type:text"`
	TemplateFormat  string         `gorm:"size:20"`
	// RecipientPolicy is null when the type has no policy.
	RecipientPolicy datatypes.JSON `gorm:"type:json"`
	CreatedAt       time.Time      `gorm:"not null"`
	UpdatedAt       time.Time      `gorm:"not null"`
}

func (ReminderTypeModel) TableName() string {
	return "reminder_types"
}

// RecipientPolicyJSON is the stored shape of a recipient policy.
type RecipientPolicyJSON struct {
	NotifyEmployee   bool     `json:"notify_employee"`
	NotifyManager    bool     `json:"notify_manager"`
	NotifyHR         bool     `json:"notify_hr"`
	AdditionalEmails []string `json:"additional_emails"`
}

type ReminderModel struct {
	ID              uint      `gorm:"primaryKey"`
	EmployeeID      uint      `gorm:"not null;index;uniqueIndex:uk_recurring_spawn,priority:2"`
	ReminderTypeID  uint      `gorm:"not null;index"`
	DueDate         time.Time `gorm:"type:date;not null;index;uniqueIndex:uk_recurring_spawn,priority:3"`
	Notes           string    `gorm:"type:text"`
	Priority        string    `gorm:"size:10;not null;default:medium"`
	RecurringID     *uint     `gorm:"uniqueIndex:uk_recurring_spawn,priority:1"`
	SystemGenerated bool      `gorm:"not null;default:false"`
	CreatedAt       time.Time `gorm:"not null"`
	UpdatedAt       time.Time `gorm:"not null"`

	Completion *ReminderCompletionModel `gorm:"foreignKey:ReminderID;constraint:OnDelete:CASCADE"`
}

func (ReminderModel) TableName() string {
	return "reminders"
}

// ReminderCompletionModel is the completion marker. One row per reminder.
type ReminderCompletionModel struct {
	ID          uint      `gorm:"primaryKey"`
	ReminderID  uint      `gorm:"uniqueIndex;not null"`
	CompletedAt time.Time `gorm:"not null"`
	CompletedBy string    `gorm:"size:255"`
	Notes       string    `gorm:"type:text"`
}

func (ReminderCompletionModel) TableName() string {
	return "reminder_completions"
}

type DispatchLogModel struct {
	ID         uint   `gorm:"primaryKey"`
	ReminderID uint   `gorm:"not null;index"`
	DaysBefore int    `gorm:"not null"`
	Manual     bool   `gorm:"not null;default:false"`
	Status     string `gorm:"size:20;not null;index"`
	// ClaimKey is unique while the entry holds its (reminder, interval) slot
	// and NULL otherwise.
	ClaimKey     *string        `gorm:"uniqueIndex;size:64"`
	Recipients   datatypes.JSON `gorm:"type:json"`
	MessageID    string         `gorm:"size:255"`
	ErrorDetails string         `gorm:"type:text"`
	AttemptedAt  time.Time      `gorm:"not null"`
	CreatedAt    time.Time      `gorm:"not null"`
}

func (DispatchLogModel) TableName() string {
	return "reminder_dispatch_logs"
}

type RecurringDefinitionModel struct {
	ID              uint      `gorm:"primaryKey"`
	Name            string    `gorm:"size:200;not null"`
	ReminderTypeID  uint      `gorm:"not null;index"`
	Frequency       string    `gorm:"size:20;not null"`
	Interval        int       `gorm:"column:interval_count;not null;default:1"`
	NextDueDate     time.Time `gorm:"type:date;not null;index"`
	AnchorDay       int       `gorm:"not null"`
	Enabled         bool      `gorm:"not null"`
	LastProcessedAt *time.Time
	CreatedAt       time.Time `gorm:"not null"`
	UpdatedAt       time.Time `gorm:"not null"`
}

func (RecurringDefinitionModel) TableName() string {
	return "recurring_reminders"
}
