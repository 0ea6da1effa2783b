package dto

import "time"

type ReminderTypeResponse struct {
	ID              uint                     `json:"id"`
	Name            string                   `json:"name"`
	Description     string                   `json:"description,omitempty"`
	Enabled         bool                     `json:"enabled"`
	RecurrenceClass string                   `json:"recurrence_class"`
	ConfiguredClass string                   `json:"configured_recurrence_class,omitempty"`
	Intervals       []int                    `json:"intervals"`
	Template        *EmailTemplateResponse   `json:"template,omitempty"`
	RecipientPolicy *RecipientPolicyResponse `json:"recipient_policy,omitempty"`
	CreatedAt       time.Time                `json:"created_at"`
	UpdatedAt       time.Time                `json:"updated_at"`
}

type EmailTemplateResponse struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
	Format  string `json:"format"`
}

type RecipientPolicyResponse struct {
	NotifyEmployee   bool     `json:"notify_employee"`
	NotifyManager    bool     `json:"notify_manager"`
	NotifyHR         bool     `json:"notify_hr"`
	AdditionalEmails []string `json:"additional_emails"`
}

type ReminderResponse struct {
	ID              uint                `json:"id"`
	EmployeeID      uint                `json:"employee_id"`
	ReminderTypeID  uint                `json:"reminder_type_id"`
	DueDate         string              `json:"due_date"`
	Notes           string              `json:"notes,omitempty"`
	Priority        string              `json:"priority"`
	Status          string              `json:"status"`
	RecurringID     *uint               `json:"recurring_id,omitempty"`
	SystemGenerated bool                `json:"system_generated"`
	Completion      *CompletionResponse `json:"completion,omitempty"`
	CreatedAt       time.Time           `json:"created_at"`
}

type CompletionResponse struct {
	CompletedAt time.Time `json:"completed_at"`
	CompletedBy string    `json:"completed_by,omitempty"`
	Notes       string    `json:"notes,omitempty"`
}

type DispatchLogResponse struct {
	ID           uint                 `json:"id"`
	ReminderID   uint                 `json:"reminder_id"`
	DaysBefore   int                  `json:"days_before"`
	Manual       bool                 `json:"manual"`
	Status       string               `json:"status"`
	Recipients   []RecipientAttempted `json:"recipients"`
	MessageID    string               `json:"message_id,omitempty"`
	ErrorDetails string               `json:"error_details,omitempty"`
	AttemptedAt  time.Time            `json:"attempted_at"`
}

type RecipientAttempted struct {
	Email     string `json:"email"`
	Name      string `json:"name,omitempty"`
	Role      string `json:"role"`
	Success   bool   `json:"success"`
	MessageID string `json:"message_id,omitempty"`
	Error     string `json:"error,omitempty"`
}

type RecurringResponse struct {
	ID              uint       `json:"id"`
	Name            string     `json:"name"`
	ReminderTypeID  uint       `json:"reminder_type_id"`
	Frequency       string     `json:"frequency"`
	Interval        int        `json:"interval"`
	NextDueDate     string     `json:"next_due_date"`
	AnchorDay       int        `json:"anchor_day"`
	Enabled         bool       `json:"enabled"`
	LastProcessedAt *time.Time `json:"last_processed_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}
