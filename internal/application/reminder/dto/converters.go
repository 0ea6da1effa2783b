package dto

import (
	"github.com/reminderly/reminderly/internal/domain/reminder"
	"github.com/reminderly/reminderly/internal/shared/biztime"
)

const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
)

func ToReminderTypeResponse(t *reminder.ReminderType) *ReminderTypeResponse {
	if t == nil {
		return nil
	}
	resp := &ReminderTypeResponse{
		ID:              t.ID(),
		Name:            t.Name(),
		Description:     t.Description(),
		Enabled:         t.IsEnabled(),
		RecurrenceClass: t.RecurrenceClass().String(),
		ConfiguredClass: t.ConfiguredRecurrenceClass().String(),
		Intervals:       t.Intervals(),
		CreatedAt:       t.CreatedAt(),
		UpdatedAt:       t.UpdatedAt(),
	}
	if tmpl := t.Template(); tmpl != nil {
		resp.Template = &EmailTemplateResponse{
			Subject: tmpl.Subject(),
			Body:    tmpl.Body(),
			Format:  tmpl.Format().String(),
		}
	}
	if p := t.Policy(); p != nil {
		resp.RecipientPolicy = &RecipientPolicyResponse{
			NotifyEmployee:   p.NotifyEmployee(),
			NotifyManager:    p.NotifyManager(),
			NotifyHR:         p.NotifyHR(),
			AdditionalEmails: p.AdditionalEmails(),
		}
	}
	return resp
}

func ToReminderTypeResponses(types []*reminder.ReminderType) []*ReminderTypeResponse {
	out := make([]*ReminderTypeResponse, 0, len(types))
	for _, t := range types {
		out = append(out, ToReminderTypeResponse(t))
	}
	return out
}

func ToReminderResponse(r *reminder.Reminder) *ReminderResponse {
	if r == nil {
		return nil
	}
	resp := &ReminderResponse{
		ID:              r.ID(),
		EmployeeID:      r.EmployeeID(),
		ReminderTypeID:  r.ReminderTypeID(),
		DueDate:         biztime.FormatDate(r.DueDate()),
		Notes:           r.Notes(),
		Priority:        r.Priority().String(),
		Status:          StatusPending,
		RecurringID:     r.RecurringID(),
		SystemGenerated: r.IsSystemGenerated(),
		CreatedAt:       r.CreatedAt(),
	}
	if c := r.Completion(); c != nil {
		resp.Status = StatusCompleted
		resp.Completion = &CompletionResponse{
			CompletedAt: c.CompletedAt(),
			CompletedBy: c.CompletedBy(),
			Notes:       c.Notes(),
		}
	}
	return resp
}

func ToReminderResponses(reminders []*reminder.Reminder) []*ReminderResponse {
	out := make([]*ReminderResponse, 0, len(reminders))
	for _, r := range reminders {
		out = append(out, ToReminderResponse(r))
	}
	return out
}

func ToDispatchLogResponse(l *reminder.DispatchLog) *DispatchLogResponse {
	recipients := l.Recipients()
	attempted := make([]RecipientAttempted, 0, len(recipients))
	for _, r := range recipients {
		attempted = append(attempted, RecipientAttempted{
			Email:     r.Email,
			Name:      r.Name,
			Role:      r.Role.String(),
			Success:   r.Success,
			MessageID: r.MessageID,
			Error:     r.Error,
		})
	}
	return &DispatchLogResponse{
		ID:           l.ID(),
		ReminderID:   l.ReminderID(),
		DaysBefore:   l.DaysBefore(),
		Manual:       l.IsManual(),
		Status:       l.Status().String(),
		Recipients:   attempted,
		MessageID:    l.MessageID(),
		ErrorDetails: l.ErrorDetails(),
		AttemptedAt:  l.AttemptedAt(),
	}
}

func ToDispatchLogResponses(logs []*reminder.DispatchLog) []*DispatchLogResponse {
	out := make([]*DispatchLogResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, ToDispatchLogResponse(l))
	}
	return out
}

func ToRecurringResponse(d *reminder.RecurringDefinition) *RecurringResponse {
	if d == nil {
		return nil
	}
	return &RecurringResponse{
		ID:              d.ID(),
		Name:            d.Name(),
		ReminderTypeID:  d.ReminderTypeID(),
		Frequency:       d.Frequency().String(),
		Interval:        d.Interval(),
		NextDueDate:     biztime.FormatDate(d.NextDueDate()),
		AnchorDay:       d.AnchorDay(),
		Enabled:         d.IsEnabled(),
		LastProcessedAt: d.LastProcessedAt(),
		CreatedAt:       d.CreatedAt(),
	}
}

func ToRecurringResponses(defs []*reminder.RecurringDefinition) []*RecurringResponse {
	out := make([]*RecurringResponse, 0, len(defs))
	for _, d := range defs {
		out = append(out, ToRecurringResponse(d))
	}
	return out
}
