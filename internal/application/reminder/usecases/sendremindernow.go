package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/reminderly/reminderly/internal/application/reminder/dto"
	"github.com/reminderly/reminderly/internal/application/reminder/services"
	"github.com/reminderly/reminderly/internal/domain/employee"
	"github.com/reminderly/reminderly/internal/domain/reminder"
	"github.com/reminderly/reminderly/internal/shared/biztime"
	apperrors "github.com/reminderly/reminderly/internal/shared/errors"
	"github.com/reminderly/reminderly/internal/shared/logger"
)

// SendReminderNowUseCase dispatches one reminder immediately, ignoring lead
// times. Manual sends are logged but never occupy the scheduled slot.
type SendReminderNowUseCase struct {
	reminderRepo reminder.ReminderRepository
	typeRepo     reminder.ReminderTypeRepository
	logRepo      reminder.DispatchLogRepository
	employees    EmployeeReader
	deliverer    *deliverer
	clock        biztime.Clock
	logger       logger.Interface
}

func NewSendReminderNowUseCase(
	reminderRepo reminder.ReminderRepository,
	typeRepo reminder.ReminderTypeRepository,
	logRepo reminder.DispatchLogRepository,
	employees EmployeeReader,
	sender EmailSender,
	formatter BodyFormatter,
	settings DispatchSettings,
	clock biztime.Clock,
	logger logger.Interface,
) *SendReminderNowUseCase {
	return &SendReminderNowUseCase{
		reminderRepo: reminderRepo,
		typeRepo:     typeRepo,
		logRepo:      logRepo,
		employees:    employees,
		deliverer: &deliverer{
			sender:    sender,
			formatter: formatter,
			settings:  settings.withDefaults(),
			logger:    logger,
		},
		clock:  clock,
		logger: logger,
	}
}

func (uc *SendReminderNowUseCase) Execute(ctx context.Context, reminderID uint) (*dto.DispatchEntry, error) {
	uc.logger.Infow("executing send reminder now use case", "reminder_id", reminderID)

	rem, err := uc.reminderRepo.GetByID(ctx, reminderID)
	if err != nil {
		if errors.Is(err, reminder.ErrReminderNotFound) {
			return nil, apperrors.NewNotFoundError("reminder not found")
		}
		return nil, fmt.Errorf("failed to get reminder: %w", err)
	}
	if rem.IsCompleted() {
		return nil, apperrors.NewConflictError("reminder already completed")
	}

	rt, err := uc.typeRepo.GetByID(ctx, rem.ReminderTypeID())
	if err != nil {
		if errors.Is(err, reminder.ErrReminderTypeNotFound) {
			return nil, apperrors.NewConfigurationError(rem.ID(), "reminder type not found")
		}
		return nil, fmt.Errorf("failed to get reminder type: %w", err)
	}
	if problem := configurationProblem(rt, false); problem != "" {
		return nil, apperrors.NewConfigurationError(rem.ID(), problem)
	}

	emp, err := uc.employees.GetByID(ctx, rem.EmployeeID())
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return nil, apperrors.NewConfigurationError(rem.ID(), "employee not found")
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	now := uc.clock.Now()
	eval := evaluate(rem, rt, emp, biztime.Today(uc.clock))
	entry := &dto.DispatchEntry{
		ReminderID:   rem.ID(),
		EmployeeID:   rem.EmployeeID(),
		DaysBefore:   intPtr(eval.daysUntilDue),
		DaysUntilDue: intPtr(eval.daysUntilDue),
		Timestamp:    now,
	}

	recipients := services.ResolveRecipients(rt.Policy(), contactOf(emp))
	if len(recipients) == 0 {
		failed, err := reminder.NewFailedDispatch(rem.ID(), eval.daysUntilDue, true, dto.ReasonNoRecipients, now)
		if err != nil {
			return nil, err
		}
		if err := uc.logRepo.Create(ctx, failed); err != nil {
			return nil, fmt.Errorf("failed to save dispatch log: %w", err)
		}
		return nil, apperrors.NewRecipientResolutionError(rem.ID(), dto.ReasonNoRecipients)
	}

	out := uc.deliverer.deliver(ctx, rem, rt, emp, recipients, eval, eval.daysUntilDue)
	entry.Recipients = out.addresses()

	log, err := reminder.NewDispatchClaim(rem.ID(), eval.daysUntilDue, true, now)
	if err != nil {
		return nil, err
	}
	if out.managementOK {
		err = log.MarkSent(out.attempts, out.messageID)
		entry.Status = dto.EntryStatusSent
	} else {
		err = log.MarkFailed(out.attempts, dto.ReasonNoManagementSent)
		entry.Status = dto.EntryStatusFailed
		entry.Reason = dto.ReasonNoManagementSent
	}
	if err != nil {
		return nil, err
	}
	if err := uc.logRepo.Create(ctx, log); err != nil {
		return nil, fmt.Errorf("failed to save dispatch log: %w", err)
	}

	if !out.managementOK {
		uc.logger.Warnw("manual reminder send failed", "reminder_id", rem.ID())
		return entry, apperrors.NewDeliveryError(rem.ID(), dto.ReasonNoManagementSent, nil)
	}
	uc.logger.Infow("manual reminder sent", "reminder_id", rem.ID(), "recipients", len(out.attempts))
	return entry, nil
}
