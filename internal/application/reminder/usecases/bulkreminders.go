package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/reminderly/reminderly/internal/application/reminder/dto"
	"github.com/reminderly/reminderly/internal/domain/employee"
	"github.com/reminderly/reminderly/internal/domain/reminder"
	vo "github.com/reminderly/reminderly/internal/domain/reminder/valueobjects"
	"github.com/reminderly/reminderly/internal/shared/biztime"
	"github.com/reminderly/reminderly/internal/shared/constants"
	apperrors "github.com/reminderly/reminderly/internal/shared/errors"
	"github.com/reminderly/reminderly/internal/shared/logger"
)

type BulkReminderItem struct {
	ReminderTypeID uint
	DueDate        string
	Notes          string
	Priority       string
}

type BulkCreateRemindersCommand struct {
	EmployeeID uint
	Items      []BulkReminderItem
}

// BulkCreateRemindersUseCase adds several reminders for one employee. Either
// every item is stored or none is.
type BulkCreateRemindersUseCase struct {
	reminderRepo reminder.ReminderRepository
	typeRepo     reminder.ReminderTypeRepository
	employees    EmployeeReader
	tx           Transactor
	logger       logger.Interface
}

func NewBulkCreateRemindersUseCase(
	reminderRepo reminder.ReminderRepository,
	typeRepo reminder.ReminderTypeRepository,
	employees EmployeeReader,
	tx Transactor,
	logger logger.Interface,
) *BulkCreateRemindersUseCase {
	return &BulkCreateRemindersUseCase{
		reminderRepo: reminderRepo,
		typeRepo:     typeRepo,
		employees:    employees,
		tx:           tx,
		logger:       logger,
	}
}

func (uc *BulkCreateRemindersUseCase) Execute(ctx context.Context, cmd BulkCreateRemindersCommand) ([]*dto.ReminderResponse, error) {
	uc.logger.Infow("executing bulk create reminders use case", "employee_id", cmd.EmployeeID, "items", len(cmd.Items))

	if len(cmd.Items) == 0 {
		return nil, apperrors.NewValidationError("at least one reminder is required")
	}
	if len(cmd.Items) > constants.MaxBulkReminders {
		return nil, apperrors.NewValidationError(fmt.Sprintf("at most %d reminders per request", constants.MaxBulkReminders))
	}

	if _, err := uc.employees.GetByID(ctx, cmd.EmployeeID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return nil, apperrors.NewNotFoundError("employee not found")
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	knownTypes := make(map[uint]bool)
	reminders := make([]*reminder.Reminder, 0, len(cmd.Items))
	for i, item := range cmd.Items {
		if !knownTypes[item.ReminderTypeID] {
			if _, err := uc.typeRepo.GetByID(ctx, item.ReminderTypeID); err != nil {
				if errors.Is(err, reminder.ErrReminderTypeNotFound) {
					return nil, apperrors.NewNotFoundError(fmt.Sprintf("item %d: reminder type not found", i))
				}
				return nil, fmt.Errorf("failed to get reminder type: %w", err)
			}
			knownTypes[item.ReminderTypeID] = true
		}

		due, err := biztime.ParseDate(item.DueDate)
		if err != nil {
			return nil, apperrors.NewValidationError(fmt.Sprintf("item %d: invalid due date, expected YYYY-MM-DD", i))
		}
		priority, err := vo.ParsePriority(item.Priority)
		if err != nil {
			return nil, apperrors.NewValidationError(fmt.Sprintf("item %d: %s", i, err))
		}
		rem, err := reminder.NewReminder(cmd.EmployeeID, item.ReminderTypeID, due, item.Notes, priority)
		if err != nil {
			return nil, apperrors.NewValidationError(fmt.Sprintf("item %d: %s", i, err))
		}
		reminders = append(reminders, rem)
	}

	err := uc.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		for _, rem := range reminders {
			if err := uc.reminderRepo.Create(ctx, rem); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to persist bulk reminders", "employee_id", cmd.EmployeeID, "error", err)
		return nil, fmt.Errorf("failed to save reminders: %w", err)
	}

	uc.logger.Infow("bulk reminders created", "employee_id", cmd.EmployeeID, "count", len(reminders))
	return dto.ToReminderResponses(reminders), nil
}

// BulkSendRemindersUseCase sends several reminders manually, one after the
// other. A failing reminder does not stop the rest.
type BulkSendRemindersUseCase struct {
	sendNow *SendReminderNowUseCase
	logger  logger.Interface
}

func NewBulkSendRemindersUseCase(sendNow *SendReminderNowUseCase, logger logger.Interface) *BulkSendRemindersUseCase {
	return &BulkSendRemindersUseCase{sendNow: sendNow, logger: logger}
}

func (uc *BulkSendRemindersUseCase) Execute(ctx context.Context, reminderIDs []uint) (*dto.BulkSendResult, error) {
	if len(reminderIDs) == 0 {
		return nil, apperrors.NewValidationError("at least one reminder id is required")
	}
	if len(reminderIDs) > constants.MaxBulkReminders {
		return nil, apperrors.NewValidationError(fmt.Sprintf("at most %d reminders per request", constants.MaxBulkReminders))
	}

	result := &dto.BulkSendResult{SentIDs: []uint{}, Items: make([]dto.BulkSendItem, 0, len(reminderIDs))}
	seen := make(map[uint]bool, len(reminderIDs))
	for _, id := range reminderIDs {
		if seen[id] {
			continue
		}
		seen[id] = true

		item := dto.BulkSendItem{ReminderID: id}
		if err := ctx.Err(); err != nil {
			item.Status = dto.EntryStatusFailed
			item.Error = "request cancelled"
			result.Failed++
			result.Items = append(result.Items, item)
			continue
		}

		entry, err := uc.sendNow.Execute(ctx, id)
		item.Entry = entry
		if err != nil {
			item.Status = dto.EntryStatusFailed
			item.Error = publicMessage(err)
			result.Failed++
		} else {
			item.Status = dto.EntryStatusSent
			result.Sent++
			result.SentIDs = append(result.SentIDs, id)
		}
		result.Items = append(result.Items, item)
	}

	uc.logger.Infow("bulk reminder send finished", "sent", result.Sent, "failed", result.Failed)
	return result, nil
}

// publicMessage hides internal error details from API callers.
func publicMessage(err error) string {
	if appErr := apperrors.GetAppError(err); appErr != nil {
		return appErr.Message
	}
	return constants.ErrMsgInternalServerError
}
