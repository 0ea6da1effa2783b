package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/reminderly/reminderly/internal/application/reminder/dto"
	"github.com/reminderly/reminderly/internal/domain/reminder"
	vo "github.com/reminderly/reminderly/internal/domain/reminder/valueobjects"
	"github.com/reminderly/reminderly/internal/shared/biztime"
	apperrors "github.com/reminderly/reminderly/internal/shared/errors"
	"github.com/reminderly/reminderly/internal/shared/logger"
)

type RecurringCommand struct {
	Name           string
	ReminderTypeID uint
	Frequency      string
	Interval       int
	NextDueDate    string
	Enabled        *bool
}

type ManageRecurringUseCase struct {
	recurringRepo reminder.RecurringDefinitionRepository
	typeRepo      reminder.ReminderTypeRepository
	logger        logger.Interface
}

func NewManageRecurringUseCase(
	recurringRepo reminder.RecurringDefinitionRepository,
	typeRepo reminder.ReminderTypeRepository,
	logger logger.Interface,
) *ManageRecurringUseCase {
	return &ManageRecurringUseCase{
		recurringRepo: recurringRepo,
		typeRepo:      typeRepo,
		logger:        logger,
	}
}

func (uc *ManageRecurringUseCase) Create(ctx context.Context, cmd RecurringCommand) (*dto.RecurringResponse, error) {
	freq, due, err := uc.validate(ctx, cmd)
	if err != nil {
		return nil, err
	}

	def, err := reminder.NewRecurringDefinition(cmd.Name, cmd.ReminderTypeID, freq, cmd.Interval, due)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if cmd.Enabled != nil && !*cmd.Enabled {
		def.Disable()
	}

	if err := uc.recurringRepo.Create(ctx, def); err != nil {
		uc.logger.Errorw("failed to persist recurring definition", "error", err)
		return nil, fmt.Errorf("failed to save recurring definition: %w", err)
	}
	uc.logger.Infow("recurring definition created", "id", def.ID(), "frequency", freq, "interval", cmd.Interval)
	return dto.ToRecurringResponse(def), nil
}

func (uc *ManageRecurringUseCase) Update(ctx context.Context, id uint, cmd RecurringCommand) (*dto.RecurringResponse, error) {
	def, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	freq, due, err := uc.validate(ctx, cmd)
	if err != nil {
		return nil, err
	}

	if err := def.Update(cmd.Name, cmd.ReminderTypeID, freq, cmd.Interval, due); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if cmd.Enabled != nil {
		if *cmd.Enabled {
			def.Enable()
		} else {
			def.Disable()
		}
	}

	if err := uc.recurringRepo.Update(ctx, def); err != nil {
		return nil, fmt.Errorf("failed to update recurring definition: %w", err)
	}
	uc.logger.Infow("recurring definition updated", "id", def.ID())
	return dto.ToRecurringResponse(def), nil
}

func (uc *ManageRecurringUseCase) Get(ctx context.Context, id uint) (*dto.RecurringResponse, error) {
	def, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.ToRecurringResponse(def), nil
}

func (uc *ManageRecurringUseCase) List(ctx context.Context) ([]*dto.RecurringResponse, error) {
	defs, err := uc.recurringRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list recurring definitions: %w", err)
	}
	return dto.ToRecurringResponses(defs), nil
}

func (uc *ManageRecurringUseCase) Delete(ctx context.Context, id uint) error {
	if err := uc.recurringRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, reminder.ErrRecurringNotFound) {
			return apperrors.NewNotFoundError("recurring definition not found")
		}
		return fmt.Errorf("failed to delete recurring definition: %w", err)
	}
	uc.logger.Infow("recurring definition deleted", "id", id)
	return nil
}

func (uc *ManageRecurringUseCase) validate(ctx context.Context, cmd RecurringCommand) (vo.Frequency, time.Time, error) {
	freq, err := vo.ParseFrequency(cmd.Frequency)
	if err != nil {
		return "", time.Time{}, apperrors.NewValidationError(err.Error())
	}
	due, err := biztime.ParseDate(cmd.NextDueDate)
	if err != nil {
		return "", time.Time{}, apperrors.NewValidationError("invalid next_due_date, expected YYYY-MM-DD")
	}
	if _, err := uc.typeRepo.GetByID(ctx, cmd.ReminderTypeID); err != nil {
		if errors.Is(err, reminder.ErrReminderTypeNotFound) {
			return "", time.Time{}, apperrors.NewNotFoundError("reminder type not found")
		}
		return "", time.Time{}, fmt.Errorf("failed to get reminder type: %w", err)
	}
	return freq, due, nil
}

func (uc *ManageRecurringUseCase) load(ctx context.Context, id uint) (*reminder.RecurringDefinition, error) {
	def, err := uc.recurringRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reminder.ErrRecurringNotFound) {
			return nil, apperrors.NewNotFoundError("recurring definition not found")
		}
		return nil, fmt.Errorf("failed to get recurring definition: %w", err)
	}
	return def, nil
}
