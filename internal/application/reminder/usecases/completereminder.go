package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/reminderly/reminderly/internal/application/reminder/dto"
	"github.com/reminderly/reminderly/internal/domain/reminder"
	"github.com/reminderly/reminderly/internal/shared/biztime"
	apperrors "github.com/reminderly/reminderly/internal/shared/errors"
	"github.com/reminderly/reminderly/internal/shared/logger"
)

type CompleteReminderCommand struct {
	ReminderID  uint
	CompletedBy string
	Notes       string
}

type CompleteReminderUseCase struct {
	reminderRepo reminder.ReminderRepository
	clock        biztime.Clock
	logger       logger.Interface
}

func NewCompleteReminderUseCase(reminderRepo reminder.ReminderRepository, clock biztime.Clock, logger logger.Interface) *CompleteReminderUseCase {
	return &CompleteReminderUseCase{
		reminderRepo: reminderRepo,
		clock:        clock,
		logger:       logger,
	}
}

func (uc *CompleteReminderUseCase) Execute(ctx context.Context, cmd CompleteReminderCommand) (*dto.ReminderResponse, error) {
	rem, err := uc.reminderRepo.GetByID(ctx, cmd.ReminderID)
	if err != nil {
		if errors.Is(err, reminder.ErrReminderNotFound) {
			return nil, apperrors.NewNotFoundError("reminder not found")
		}
		return nil, fmt.Errorf("failed to get reminder: %w", err)
	}

	if err := rem.Complete(cmd.CompletedBy, cmd.Notes, uc.clock.Now()); err != nil {
		if errors.Is(err, reminder.ErrAlreadyCompleted) {
			return nil, apperrors.NewConflictError("reminder already completed")
		}
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.reminderRepo.SaveCompletion(ctx, rem); err != nil {
		if errors.Is(err, reminder.ErrAlreadyCompleted) {
			return nil, apperrors.NewConflictError("reminder already completed")
		}
		uc.logger.Errorw("failed to save completion", "reminder_id", rem.ID(), "error", err)
		return nil, fmt.Errorf("failed to save completion: %w", err)
	}

	uc.logger.Infow("reminder completed", "reminder_id", rem.ID(), "completed_by", cmd.CompletedBy)
	return dto.ToReminderResponse(rem), nil
}
