package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"github.com/reminderly/reminderly/internal/domain/reminder"
	vo "github.com/reminderly/reminderly/internal/domain/reminder/valueobjects"
	"github.com/reminderly/reminderly/internal/infrastructure/persistence/models"
)

// ReminderMapper converts the reminder aggregate family between domain and persistence.
type ReminderMapper interface {
	TypeToModel(t *reminder.ReminderType) (*models.ReminderTypeModel, error)
	TypeToDomain(model *models.ReminderTypeModel) (*reminder.ReminderType, error)

	ReminderToModel(r *reminder.Reminder) *models.ReminderModel
	ReminderToDomain(model *models.ReminderModel) (*reminder.Reminder, error)
	CompletionToModel(r *reminder.Reminder) *models.ReminderCompletionModel

	LogToModel(l *reminder.DispatchLog) (*models.DispatchLogModel, error)
	LogToDomain(model *models.DispatchLogModel) (*reminder.DispatchLog, error)

	RecurringToModel(d *reminder.RecurringDefinition) *models.RecurringDefinitionModel
	RecurringToDomain(model *models.RecurringDefinitionModel) (*reminder.RecurringDefinition, error)
}

type ReminderMapperImpl struct{}

func NewReminderMapper() ReminderMapper {
	return &ReminderMapperImpl{}
}

func (m *ReminderMapperImpl) TypeToModel(t *reminder.ReminderType) (*models.ReminderTypeModel, error) {
	intervals, err := json.Marshal(t.Intervals())
	if err != nil {
		return nil, fmt.Errorf("failed to encode intervals: %w", err)
	}

	model := &models.ReminderTypeModel{
		ID:              t.ID(),
		Name:            t.Name(),
		Description:     t.Description(),
		Enabled:         t.IsEnabled(),
		RecurrenceClass: t.ConfiguredRecurrenceClass().String(),
		Intervals:       datatypes.JSON(intervals),
		CreatedAt:       t.CreatedAt(),
		UpdatedAt:       t.UpdatedAt(),
	}

	if tpl := t.Template(); tpl != nil {
		subject, body := tpl.Subject(), tpl.Body()
		model.TemplateSubject = &subject
		model.TemplateBody = &body
		model.TemplateFormat = tpl.Format().String()
	}

	if p := t.Policy(); p != nil {
		policy, err := json.Marshal(models.RecipientPolicyJSON{
			NotifyEmployee:   p.NotifyEmployee(),
			NotifyManager:    p.NotifyManager(),
			NotifyHR:         p.NotifyHR(),
			AdditionalEmails: p.AdditionalEmails(),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to encode recipient policy: %w", err)
		}
		model.RecipientPolicy = datatypes.JSON(policy)
	}

	return model, nil
}

func (m *ReminderMapperImpl) TypeToDomain(model *models.ReminderTypeModel) (*reminder.ReminderType, error) {
	if model == nil {
		return nil, nil
	}

	var intervals []int
	if len(model.Intervals) > 0 {
		if err := json.Unmarshal(model.Intervals, &intervals); err != nil {
			return nil, fmt.Errorf("failed to decode intervals of reminder type %d: %w", model.ID, err)
		}
	}

	var tpl *reminder.EmailTemplate
	if model.TemplateSubject != nil {
		body := ""
		if model.TemplateBody != nil {
			body = *model.TemplateBody
		}
		var err error
		tpl, err = reminder.NewEmailTemplate(*model.TemplateSubject, body, vo.TemplateFormat(model.TemplateFormat))
		if err != nil {
			return nil, fmt.Errorf("invalid template on reminder type %d: %w", model.ID, err)
		}
	}

	var policy *reminder.RecipientPolicy
	if len(model.RecipientPolicy) > 0 && string(model.RecipientPolicy) != "null" {
		var p models.RecipientPolicyJSON
		if err := json.Unmarshal(model.RecipientPolicy, &p); err != nil {
			return nil, fmt.Errorf("failed to decode recipient policy of reminder type %d: %w", model.ID, err)
		}
		var err error
		policy, err = reminder.NewRecipientPolicy(p.NotifyEmployee, p.NotifyManager, p.NotifyHR, p.AdditionalEmails)
		if err != nil {
			return nil, fmt.Errorf("invalid recipient policy on reminder type %d: %w", model.ID, err)
		}
	}

	return reminder.ReconstructReminderType(
		model.ID,
		model.Name,
		model.Description,
		model.Enabled,
		vo.RecurrenceClass(model.RecurrenceClass),
		intervals,
		tpl,
		policy,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *ReminderMapperImpl) ReminderToModel(r *reminder.Reminder) *models.ReminderModel {
	return &models.ReminderModel{
		ID:              r.ID(),
		EmployeeID:      r.EmployeeID(),
		ReminderTypeID:  r.ReminderTypeID(),
		DueDate:         r.DueDate(),
		Notes:           r.Notes(),
		Priority:        r.Priority().String(),
		RecurringID:     r.RecurringID(),
		SystemGenerated: r.IsSystemGenerated(),
		CreatedAt:       r.CreatedAt(),
		UpdatedAt:       r.UpdatedAt(),
	}
}

func (m *ReminderMapperImpl) ReminderToDomain(model *models.ReminderModel) (*reminder.Reminder, error) {
	if model == nil {
		return nil, nil
	}

	var completion *reminder.Completion
	if model.Completion != nil {
		completion = reminder.NewCompletion(model.Completion.CompletedBy, model.Completion.Notes, model.Completion.CompletedAt)
	}

	return reminder.ReconstructReminder(
		model.ID,
		model.EmployeeID,
		model.ReminderTypeID,
		model.DueDate,
		model.Notes,
		vo.Priority(model.Priority),
		model.RecurringID,
		model.SystemGenerated,
		completion,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *ReminderMapperImpl) CompletionToModel(r *reminder.Reminder) *models.ReminderCompletionModel {
	c := r.Completion()
	if c == nil {
		return nil
	}
	return &models.ReminderCompletionModel{
		ReminderID:  r.ID(),
		CompletedAt: c.CompletedAt(),
		CompletedBy: c.CompletedBy(),
		Notes:       c.Notes(),
	}
}

func (m *ReminderMapperImpl) LogToModel(l *reminder.DispatchLog) (*models.DispatchLogModel, error) {
	recipients, err := json.Marshal(l.Recipients())
	if err != nil {
		return nil, fmt.Errorf("failed to encode recipients: %w", err)
	}

	model := &models.DispatchLogModel{
		ID:           l.ID(),
		ReminderID:   l.ReminderID(),
		DaysBefore:   l.DaysBefore(),
		Manual:       l.IsManual(),
		Status:       l.Status().String(),
		Recipients:   datatypes.JSON(recipients),
		MessageID:    l.MessageID(),
		ErrorDetails: l.ErrorDetails(),
		AttemptedAt:  l.AttemptedAt(),
		CreatedAt:    l.CreatedAt(),
	}
	if key := l.ClaimKey(); key != "" {
		model.ClaimKey = &key
	}
	return model, nil
}

func (m *ReminderMapperImpl) LogToDomain(model *models.DispatchLogModel) (*reminder.DispatchLog, error) {
	if model == nil {
		return nil, nil
	}

	var recipients []reminder.AttemptedRecipient
	if len(model.Recipients) > 0 {
		if err := json.Unmarshal(model.Recipients, &recipients); err != nil {
			return nil, fmt.Errorf("failed to decode recipients of dispatch log %d: %w", model.ID, err)
		}
	}

	return reminder.ReconstructDispatchLog(
		model.ID,
		model.ReminderID,
		model.DaysBefore,
		model.Manual,
		vo.DispatchStatus(model.Status),
		recipients,
		model.MessageID,
		model.ErrorDetails,
		model.AttemptedAt,
		model.CreatedAt,
	)
}

func (m *ReminderMapperImpl) RecurringToModel(d *reminder.RecurringDefinition) *models.RecurringDefinitionModel {
	return &models.RecurringDefinitionModel{
		ID:              d.ID(),
		Name:            d.Name(),
		ReminderTypeID:  d.ReminderTypeID(),
		Frequency:       d.Frequency().String(),
		Interval:        d.Interval(),
		NextDueDate:     d.NextDueDate(),
		AnchorDay:       d.AnchorDay(),
		Enabled:         d.IsEnabled(),
		LastProcessedAt: d.LastProcessedAt(),
		CreatedAt:       d.CreatedAt(),
		UpdatedAt:       d.UpdatedAt(),
	}
}

func (m *ReminderMapperImpl) RecurringToDomain(model *models.RecurringDefinitionModel) (*reminder.RecurringDefinition, error) {
	if model == nil {
		return nil, nil
	}
	return reminder.ReconstructRecurringDefinition(
		model.ID,
		model.Name,
		model.ReminderTypeID,
		vo.Frequency(model.Frequency),
		model.Interval,
		model.NextDueDate,
		model.AnchorDay,
		model.Enabled,
		model.LastProcessedAt,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
