package handlers

import (
	"github.com/gin-gonic/gin"

	employeeusecases "github.com/reminderly/reminderly/internal/application/employee/usecases"
	reminderusecases "github.com/reminderly/reminderly/internal/application/reminder/usecases"
	"github.com/reminderly/reminderly/internal/shared/errors"
)

// bindJSON decodes the body and turns binding failures into validation errors,
// so they answer 400 instead of falling through as internal errors.
func bindJSON(c *gin.Context, req any) error {
	if err := c.ShouldBindJSON(req); err != nil {
		return errors.NewValidationError("invalid request body", err.Error())
	}
	return nil
}

// =====================================================================
// Employees
// =====================================================================

type EmployeeRequest struct {
	EmployeeID      string `json:"employee_id" binding:"required,max=64"`
	Name            string `json:"name" binding:"required,max=255"`
	Email           string `json:"email" binding:"required,email"`
	Position        string `json:"position" binding:"max=255"`
	Department      string `json:"department" binding:"max=255"`
	ManagerEmail    string `json:"manager_email" binding:"omitempty,email"`
	HREmail         string `json:"hr_email" binding:"omitempty,email"`
	Birthday        string `json:"birthday"`
	WorkAnniversary string `json:"work_anniversary"`
}

func (r EmployeeRequest) ToCommand() employeeusecases.EmployeeCommand {
	return employeeusecases.EmployeeCommand{
		EmployeeID:      r.EmployeeID,
		Name:            r.Name,
		Email:           r.Email,
		Position:        r.Position,
		Department:      r.Department,
		ManagerEmail:    r.ManagerEmail,
		HREmail:         r.HREmail,
		Birthday:        r.Birthday,
		WorkAnniversary: r.WorkAnniversary,
	}
}

// =====================================================================
// Reminder types
// =====================================================================

type TemplateRequest struct {
	Subject string `json:"subject" binding:"required"`
	Body    string `json:"body" binding:"required"`
	Format  string `json:"format" binding:"omitempty,oneof=html markdown"`
}

type RecipientPolicyRequest struct {
	NotifyEmployee   bool     `json:"notify_employee"`
	NotifyManager    bool     `json:"notify_manager"`
	NotifyHR         bool     `json:"notify_hr"`
	AdditionalEmails []string `json:"additional_emails" binding:"omitempty,dive,email"`
}

type CreateReminderTypeRequest struct {
	Name            string                  `json:"name" binding:"required,max=255"`
	Description     string                  `json:"description"`
	RecurrenceClass string                  `json:"recurrence_class" binding:"omitempty,oneof=one_off birthday anniversary periodic"`
	Intervals       []int                   `json:"intervals" binding:"omitempty,dive,min=0,max=3650"`
	Enabled         *bool                   `json:"enabled"`
	Template        *TemplateRequest        `json:"template"`
	RecipientPolicy *RecipientPolicyRequest `json:"recipient_policy"`
}

func (r CreateReminderTypeRequest) ToCommand() reminderusecases.CreateReminderTypeCommand {
	return reminderusecases.CreateReminderTypeCommand{
		Name:            r.Name,
		Description:     r.Description,
		RecurrenceClass: r.RecurrenceClass,
		Intervals:       r.Intervals,
		Enabled:         r.Enabled,
		Template:        r.Template.toInput(),
		Policy:          r.RecipientPolicy.toInput(),
	}
}

// UpdateReminderTypeRequest is a partial update; absent fields are left as they are.
type UpdateReminderTypeRequest struct {
	Name            *string                 `json:"name" binding:"omitempty,min=1,max=255"`
	Description     *string                 `json:"description"`
	RecurrenceClass *string                 `json:"recurrence_class" binding:"omitempty,oneof=one_off birthday anniversary periodic"`
	Intervals       []int                   `json:"intervals" binding:"omitempty,dive,min=0,max=3650"`
	Enabled         *bool                   `json:"enabled"`
	Template        *TemplateRequest        `json:"template"`
	RecipientPolicy *RecipientPolicyRequest `json:"recipient_policy"`
}

func (r UpdateReminderTypeRequest) ToCommand(id uint) reminderusecases.UpdateReminderTypeCommand {
	return reminderusecases.UpdateReminderTypeCommand{
		ID:              id,
		Name:            r.Name,
		Description:     r.Description,
		RecurrenceClass: r.RecurrenceClass,
		Intervals:       r.Intervals,
		Enabled:         r.Enabled,
		Template:        r.Template.toInput(),
		Policy:          r.RecipientPolicy.toInput(),
	}
}

func (t *TemplateRequest) toInput() *reminderusecases.TemplateInput {
	if t == nil {
		return nil
	}
	return &reminderusecases.TemplateInput{Subject: t.Subject, Body: t.Body, Format: t.Format}
}

func (p *RecipientPolicyRequest) toInput() *reminderusecases.PolicyInput {
	if p == nil {
		return nil
	}
	return &reminderusecases.PolicyInput{
		NotifyEmployee:   p.NotifyEmployee,
		NotifyManager:    p.NotifyManager,
		NotifyHR:         p.NotifyHR,
		AdditionalEmails: p.AdditionalEmails,
	}
}

// =====================================================================
// Reminders
// =====================================================================

type CreateReminderRequest struct {
	EmployeeID     uint   `json:"employee_id" binding:"required"`
	ReminderTypeID uint   `json:"reminder_type_id" binding:"required"`
	DueDate        string `json:"due_date" binding:"required"`
	Notes          string `json:"notes"`
	Priority       string `json:"priority" binding:"omitempty,oneof=low medium high"`
}

func (r CreateReminderRequest) ToCommand() reminderusecases.CreateReminderCommand {
	return reminderusecases.CreateReminderCommand{
		EmployeeID:     r.EmployeeID,
		ReminderTypeID: r.ReminderTypeID,
		DueDate:        r.DueDate,
		Notes:          r.Notes,
		Priority:       r.Priority,
	}
}

// UpdateReminderRequest is a partial update; absent fields are left as they are.
type UpdateReminderRequest struct {
	DueDate  *string `json:"due_date" binding:"omitempty,min=1"`
	Notes    *string `json:"notes" binding:"omitempty,max=2000"`
	Priority *string `json:"priority" binding:"omitempty,oneof=low medium high"`
}

func (r UpdateReminderRequest) ToCommand(id uint) reminderusecases.UpdateReminderCommand {
	return reminderusecases.UpdateReminderCommand{
		ID:       id,
		DueDate:  r.DueDate,
		Notes:    r.Notes,
		Priority: r.Priority,
	}
}

type BulkReminderItemRequest struct {
	ReminderTypeID uint   `json:"reminder_type_id" binding:"required"`
	DueDate        string `json:"due_date" binding:"required"`
	Notes          string `json:"notes"`
	Priority       string `json:"priority" binding:"omitempty,oneof=low medium high"`
}

type BulkCreateRemindersRequest struct {
	EmployeeID uint                      `json:"employee_id" binding:"required"`
	Reminders  []BulkReminderItemRequest `json:"reminders" binding:"required,min=1,max=100,dive"`
}

func (r BulkCreateRemindersRequest) ToCommand() reminderusecases.BulkCreateRemindersCommand {
	items := make([]reminderusecases.BulkReminderItem, 0, len(r.Reminders))
	for _, item := range r.Reminders {
		items = append(items, reminderusecases.BulkReminderItem{
			ReminderTypeID: item.ReminderTypeID,
			DueDate:        item.DueDate,
			Notes:          item.Notes,
			Priority:       item.Priority,
		})
	}
	return reminderusecases.BulkCreateRemindersCommand{EmployeeID: r.EmployeeID, Items: items}
}

type BulkSendRemindersRequest struct {
	ReminderIDs []uint `json:"reminder_ids" binding:"required,min=1,max=100"`
}

type CompleteReminderRequest struct {
	CompletedBy string `json:"completed_by" binding:"max=255"`
	Notes       string `json:"notes"`
}

// =====================================================================
// Recurring definitions
// =====================================================================

type RecurringRequest struct {
	Name           string `json:"name" binding:"required,max=255"`
	ReminderTypeID uint   `json:"reminder_type_id" binding:"required"`
	Frequency      string `json:"frequency" binding:"required,oneof=daily weekly monthly yearly"`
	Interval       int    `json:"interval" binding:"required,min=1"`
	NextDueDate    string `json:"next_due_date" binding:"required"`
	Enabled        *bool  `json:"enabled"`
}

func (r RecurringRequest) ToCommand() reminderusecases.RecurringCommand {
	return reminderusecases.RecurringCommand{
		Name:           r.Name,
		ReminderTypeID: r.ReminderTypeID,
		Frequency:      r.Frequency,
		Interval:       r.Interval,
		NextDueDate:    r.NextDueDate,
		Enabled:        r.Enabled,
	}
}

// =====================================================================
// Cron
// =====================================================================

type TriggerJobRequest struct {
	// Date overrides "today" (YYYY-MM-DD).
	Date string `json:"date"`
}

// =====================================================================
// Email
// =====================================================================

type TestEmailRequest struct {
	To string `json:"to" binding:"required,email"`
}
