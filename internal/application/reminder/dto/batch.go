package dto

import "time"

// Outcome of one reminder in a dispatch run.
const (
	EntryStatusSent    = "sent"
	EntryStatusFailed  = "failed"
	EntryStatusSkipped = "skipped"
)

// Skip reasons reported to operators.
const (
	ReasonAlreadyCompleted = "already completed"
	ReasonAlreadySent      = "already sent"
	ReasonTypeDisabled     = "reminder type disabled"
	ReasonNoRecipients     = "no recipients"
	ReasonNoManagementSent = "no management recipient accepted the email"
)

// DispatchEntry reports what happened to one reminder during a run.
type DispatchEntry struct {
	ReminderID   uint      `json:"reminder_id"`
	EmployeeID   uint      `json:"employee_id,omitempty"`
	DaysBefore   *int      `json:"days_before,omitempty"`
	DaysUntilDue *int      `json:"days_until_due,omitempty"`
	Status       string    `json:"status"`
	Reason       string    `json:"reason,omitempty"`
	Recipients   []string  `json:"recipients,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

// BatchResult summarises a dispatch run. Counts always add up to Processed.
type BatchResult struct {
	Date      string          `json:"date"`
	Processed int             `json:"processed"`
	Sent      int             `json:"sent"`
	Failed    int             `json:"failed"`
	Skipped   int             `json:"skipped"`
	Errors    []string        `json:"errors,omitempty"`
	Entries   []DispatchEntry `json:"entries"`
}

func (r *BatchResult) Add(entry DispatchEntry) {
	r.Processed++
	switch entry.Status {
	case EntryStatusSent:
		r.Sent++
	case EntryStatusFailed:
		r.Failed++
	default:
		r.Skipped++
	}
	r.Entries = append(r.Entries, entry)
}

func (r *BatchResult) AddError(msg string) {
	r.Errors = append(r.Errors, msg)
}

// RecurringResult summarises a recurring advancement run.
type RecurringResult struct {
	Date            string   `json:"date"`
	Processed       int      `json:"processed"`
	Created         int      `json:"created"`
	SkippedExisting int      `json:"skipped_existing"`
	Updated         int      `json:"updated"`
	Errors          []string `json:"errors,omitempty"`
}

// BulkSendItem is the outcome of one reminder in a bulk manual send.
type BulkSendItem struct {
	ReminderID uint           `json:"reminder_id"`
	Status     string         `json:"status"`
	Error      string         `json:"error,omitempty"`
	Entry      *DispatchEntry `json:"entry,omitempty"`
}

// BulkSendResult reports a bulk manual send. Sent and Failed add up to len(Items).
type BulkSendResult struct {
	Sent    int            `json:"sent"`
	Failed  int            `json:"failed"`
	SentIDs []uint         `json:"sent_ids"`
	Items   []BulkSendItem `json:"items"`
}

// TestEmailResult is returned by the provider check.
type TestEmailResult struct {
	Provider  string    `json:"provider"`
	To        string    `json:"to"`
	MessageID string    `json:"message_id"`
	SentAt    time.Time `json:"sent_at"`
}
