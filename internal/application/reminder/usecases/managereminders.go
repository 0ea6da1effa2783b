package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/reminderly/reminderly/internal/application/reminder/dto"
	"github.com/reminderly/reminderly/internal/domain/employee"
	"github.com/reminderly/reminderly/internal/domain/reminder"
	vo "github.com/reminderly/reminderly/internal/domain/reminder/valueobjects"
	"github.com/reminderly/reminderly/internal/shared/biztime"
	"github.com/reminderly/reminderly/internal/shared/constants"
	apperrors "github.com/reminderly/reminderly/internal/shared/errors"
	"github.com/reminderly/reminderly/internal/shared/logger"
)

type CreateReminderCommand struct {
	EmployeeID     uint
	ReminderTypeID uint
	DueDate        string
	Notes          string
	Priority       string
}

type CreateReminderUseCase struct {
	reminderRepo reminder.ReminderRepository
	typeRepo     reminder.ReminderTypeRepository
	employees    EmployeeReader
	logger       logger.Interface
}

func NewCreateReminderUseCase(
	reminderRepo reminder.ReminderRepository,
	typeRepo reminder.ReminderTypeRepository,
	employees EmployeeReader,
	logger logger.Interface,
) *CreateReminderUseCase {
	return &CreateReminderUseCase{
		reminderRepo: reminderRepo,
		typeRepo:     typeRepo,
		employees:    employees,
		logger:       logger,
	}
}

func (uc *CreateReminderUseCase) Execute(ctx context.Context, cmd CreateReminderCommand) (*dto.ReminderResponse, error) {
	uc.logger.Infow("executing create reminder use case", "employee_id", cmd.EmployeeID, "reminder_type_id", cmd.ReminderTypeID)

	due, err := biztime.ParseDate(cmd.DueDate)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid due date, expected YYYY-MM-DD")
	}
	priority, err := vo.ParsePriority(cmd.Priority)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if _, err := uc.employees.GetByID(ctx, cmd.EmployeeID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return nil, apperrors.NewNotFoundError("employee not found")
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}
	if _, err := uc.typeRepo.GetByID(ctx, cmd.ReminderTypeID); err != nil {
		if errors.Is(err, reminder.ErrReminderTypeNotFound) {
			return nil, apperrors.NewNotFoundError("reminder type not found")
		}
		return nil, fmt.Errorf("failed to get reminder type: %w", err)
	}

	rem, err := reminder.NewReminder(cmd.EmployeeID, cmd.ReminderTypeID, due, cmd.Notes, priority)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if err := uc.reminderRepo.Create(ctx, rem); err != nil {
		uc.logger.Errorw("failed to persist reminder", "error", err)
		return nil, fmt.Errorf("failed to save reminder: %w", err)
	}

	uc.logger.Infow("reminder created successfully", "id", rem.ID())
	return dto.ToReminderResponse(rem), nil
}

type GetReminderUseCase struct {
	reminderRepo reminder.ReminderRepository
	logRepo      reminder.DispatchLogRepository
}

func NewGetReminderUseCase(reminderRepo reminder.ReminderRepository, logRepo reminder.DispatchLogRepository) *GetReminderUseCase {
	return &GetReminderUseCase{reminderRepo: reminderRepo, logRepo: logRepo}
}

func (uc *GetReminderUseCase) Execute(ctx context.Context, id uint) (*dto.ReminderResponse, error) {
	rem, err := uc.reminderRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reminder.ErrReminderNotFound) {
			return nil, apperrors.NewNotFoundError("reminder not found")
		}
		return nil, fmt.Errorf("failed to get reminder: %w", err)
	}
	return dto.ToReminderResponse(rem), nil
}

// ListLogs returns every dispatch attempt for a reminder, newest first.
func (uc *GetReminderUseCase) ListLogs(ctx context.Context, id uint) ([]*dto.DispatchLogResponse, error) {
	if _, err := uc.Execute(ctx, id); err != nil {
		return nil, err
	}
	logs, err := uc.logRepo.ListByReminder(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list dispatch logs: %w", err)
	}
	return dto.ToDispatchLogResponses(logs), nil
}

type ListRemindersQuery struct {
	Page           int
	PageSize       int
	EmployeeID     *uint
	ReminderTypeID *uint
	Status         string
	DueFrom        string
	DueTo          string
}

type ListRemindersUseCase struct {
	reminderRepo reminder.ReminderRepository
	logger       logger.Interface
}

func NewListRemindersUseCase(reminderRepo reminder.ReminderRepository, logger logger.Interface) *ListRemindersUseCase {
	return &ListRemindersUseCase{reminderRepo: reminderRepo, logger: logger}
}

func (uc *ListRemindersUseCase) Execute(ctx context.Context, q ListRemindersQuery) ([]*dto.ReminderResponse, int64, error) {
	filter := reminder.ListFilter{
		Page:           q.Page,
		PageSize:       q.PageSize,
		EmployeeID:     q.EmployeeID,
		ReminderTypeID: q.ReminderTypeID,
	}
	if filter.Page < 1 {
		filter.Page = constants.DefaultPage
	}
	if filter.PageSize < 1 || filter.PageSize > constants.MaxPageSize {
		filter.PageSize = constants.DefaultPageSize
	}

	switch q.Status {
	case "":
	case dto.StatusPending:
		filter.Completed = boolPtr(false)
	case dto.StatusCompleted:
		filter.Completed = boolPtr(true)
	default:
		return nil, 0, apperrors.NewValidationError("status must be pending or completed")
	}

	var err error
	if filter.DueFrom, err = optionalDate(q.DueFrom); err != nil {
		return nil, 0, apperrors.NewValidationError("invalid due_from, expected YYYY-MM-DD")
	}
	if filter.DueTo, err = optionalDate(q.DueTo); err != nil {
		return nil, 0, apperrors.NewValidationError("invalid due_to, expected YYYY-MM-DD")
	}

	reminders, total, err := uc.reminderRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list reminders", "error", err)
		return nil, 0, fmt.Errorf("failed to list reminders: %w", err)
	}
	return dto.ToReminderResponses(reminders), total, nil
}

// UpdateReminderCommand is a partial update; nil fields are left as they are.
type UpdateReminderCommand struct {
	ID       uint
	DueDate  *string
	Notes    *string
	Priority *string
}

type UpdateReminderUseCase struct {
	reminderRepo reminder.ReminderRepository
	logger       logger.Interface
}

func NewUpdateReminderUseCase(reminderRepo reminder.ReminderRepository, logger logger.Interface) *UpdateReminderUseCase {
	return &UpdateReminderUseCase{reminderRepo: reminderRepo, logger: logger}
}

func (uc *UpdateReminderUseCase) Execute(ctx context.Context, cmd UpdateReminderCommand) (*dto.ReminderResponse, error) {
	rem, err := uc.reminderRepo.GetByID(ctx, cmd.ID)
	if err != nil {
		if errors.Is(err, reminder.ErrReminderNotFound) {
			return nil, apperrors.NewNotFoundError("reminder not found")
		}
		return nil, fmt.Errorf("failed to get reminder: %w", err)
	}

	if cmd.DueDate != nil {
		due, err := biztime.ParseDate(*cmd.DueDate)
		if err != nil {
			return nil, apperrors.NewValidationError("invalid due date, expected YYYY-MM-DD")
		}
		if err := rem.Reschedule(due); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
	}
	if cmd.Notes != nil {
		if err := rem.SetNotes(*cmd.Notes); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
	}
	if cmd.Priority != nil {
		priority, err := vo.ParsePriority(*cmd.Priority)
		if err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
		if err := rem.SetPriority(priority); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
	}

	if err := uc.reminderRepo.Update(ctx, rem); err != nil {
		switch {
		case errors.Is(err, reminder.ErrReminderNotFound):
			return nil, apperrors.NewNotFoundError("reminder not found")
		case errors.Is(err, reminder.ErrDuplicateSpawn):
			return nil, apperrors.NewConflictError(err.Error())
		}
		uc.logger.Errorw("failed to update reminder", "id", cmd.ID, "error", err)
		return nil, fmt.Errorf("failed to update reminder: %w", err)
	}

	uc.logger.Infow("reminder updated", "id", rem.ID(), "due_date", biztime.FormatDate(rem.DueDate()))
	return dto.ToReminderResponse(rem), nil
}

type DeleteReminderUseCase struct {
	reminderRepo reminder.ReminderRepository
	logger       logger.Interface
}

func NewDeleteReminderUseCase(reminderRepo reminder.ReminderRepository, logger logger.Interface) *DeleteReminderUseCase {
	return &DeleteReminderUseCase{reminderRepo: reminderRepo, logger: logger}
}

func (uc *DeleteReminderUseCase) Execute(ctx context.Context, id uint) error {
	if err := uc.reminderRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, reminder.ErrReminderNotFound) {
			return apperrors.NewNotFoundError("reminder not found")
		}
		return fmt.Errorf("failed to delete reminder: %w", err)
	}
	uc.logger.Infow("reminder deleted", "id", id)
	return nil
}

func optionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	d, err := biztime.ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func boolPtr(v bool) *bool {
	return &v
}
