package usecases

import (
	"context"
	"time"

	"github.com/reminderly/reminderly/internal/application/reminder/services"
	"github.com/reminderly/reminderly/internal/domain/employee"
	"github.com/reminderly/reminderly/internal/domain/reminder"
	"github.com/reminderly/reminderly/internal/infrastructure/email"
	"github.com/reminderly/reminderly/internal/shared/logger"
)

// deliverer renders and sends one reminder to every resolved recipient.
// It is shared by scheduled and manual dispatch.
type deliverer struct {
	sender    EmailSender
	formatter BodyFormatter
	settings  DispatchSettings
	logger    logger.Interface
}

type delivery struct {
	attempts     []reminder.AttemptedRecipient
	messageID    string
	managementOK bool
}

func (d delivery) addresses() []string {
	out := make([]string, 0, len(d.attempts))
	for _, a := range d.attempts {
		out = append(out, a.Email)
	}
	return out
}

// evaluation is the due-date view of a reminder on a given day.
type evaluation struct {
	daysUntilDue int
	effectiveDue time.Time
}

func evaluate(rem *reminder.Reminder, rt *reminder.ReminderType, emp *employee.Employee, today time.Time) evaluation {
	class := rt.RecurrenceClass()
	anchor := services.AnchorDate(class, rem.DueDate(), emp.Birthday(), emp.WorkAnniversary())
	due := services.EffectiveDueDate(anchor, class, today)
	return evaluation{
		daysUntilDue: services.DaysUntilDue(anchor, class, today),
		effectiveDue: due,
	}
}

func contactOf(emp *employee.Employee) services.Contact {
	return services.Contact{
		Name:         emp.Name(),
		Email:        emp.Email(),
		ManagerEmail: emp.ManagerEmail(),
		HREmail:      emp.HREmail(),
	}
}

// configurationProblem returns a non-empty description when rt cannot be dispatched.
func configurationProblem(rt *reminder.ReminderType, needIntervals bool) string {
	switch {
	case rt.Template() == nil:
		return "reminder type has no email template"
	case rt.Policy() == nil:
		return "reminder type has no recipient policy"
	case needIntervals && len(rt.Intervals()) == 0:
		return services.ErrNoIntervals.Error()
	default:
		return ""
	}
}

// deliver sends one personalised copy per recipient. A failure for one
// recipient never stops the others.
func (d *deliverer) deliver(
	ctx context.Context,
	rem *reminder.Reminder,
	rt *reminder.ReminderType,
	emp *employee.Employee,
	recipients services.RecipientList,
	eval evaluation,
	daysBefore int,
) delivery {
	tmpl := rt.Template()
	vars := services.TemplateData{
		TypeName:     rt.Name(),
		EmployeeName: emp.Name(),
		Position:     emp.Position(),
		Department:   emp.Department(),
		Notes:        rem.Notes(),
		DueDate:      eval.effectiveDue,
		DaysUntilDue: eval.daysUntilDue,
		DateFormat:   d.settings.DateFormat,
	}.Variables()

	var out delivery
	for _, r := range recipients {
		attempt := reminder.AttemptedRecipient{Email: r.Email, Name: r.Name, Role: r.Role}

		bound := services.ForRecipient(vars, r.Role.Label())
		subject := services.Render(tmpl.Subject(), bound)
		body, err := d.formatter.Format(services.Render(tmpl.Body(), bound), tmpl.Format())
		if err == nil {
			var result *email.SendResult
			result, err = d.send(ctx, email.Message{
				To:       []email.Address{{Email: r.Email, Name: r.Name}},
				Subject:  subject,
				HTMLBody: body,
			})
			if err == nil && result != nil {
				attempt.MessageID = result.MessageID
			}
		}

		if err != nil {
			attempt.Error = err.Error()
			d.logger.Warnw("reminder email delivery failed",
				"reminder_id", rem.ID(),
				"days_before", daysBefore,
				"role", r.Role.String(),
				"provider", d.sender.Provider(),
				"error", err,
			)
		} else {
			attempt.Success = true
			if r.Role.IsManagement() {
				if !out.managementOK {
					out.messageID = attempt.MessageID
				}
				out.managementOK = true
			}
		}
		out.attempts = append(out.attempts, attempt)
	}
	return out
}

func (d *deliverer) send(ctx context.Context, msg email.Message) (*email.SendResult, error) {
	sendCtx, cancel := context.WithTimeout(ctx, d.settings.SendTimeout)
	defer cancel()
	return d.sender.Send(sendCtx, msg)
}
