package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/reminderly/reminderly/internal/application/reminder/dto"
	"github.com/reminderly/reminderly/internal/domain/reminder"
	vo "github.com/reminderly/reminderly/internal/domain/reminder/valueobjects"
	apperrors "github.com/reminderly/reminderly/internal/shared/errors"
	"github.com/reminderly/reminderly/internal/shared/logger"
)

type TemplateInput struct {
	Subject string
	Body    string
	Format  string
}

type PolicyInput struct {
	NotifyEmployee   bool
	NotifyManager    bool
	NotifyHR         bool
	AdditionalEmails []string
}

type CreateReminderTypeCommand struct {
	Name            string
	Description     string
	RecurrenceClass string
	Intervals       []int
	Enabled         *bool
	Template        *TemplateInput
	Policy          *PolicyInput
}

// UpdateReminderTypeCommand replaces only the sections that are set.
type UpdateReminderTypeCommand struct {
	ID              uint
	Name            *string
	Description     *string
	RecurrenceClass *string
	Intervals       []int
	Enabled         *bool
	Template        *TemplateInput
	Policy          *PolicyInput
}

type ManageReminderTypesUseCase struct {
	typeRepo     reminder.ReminderTypeRepository
	reminderRepo reminder.ReminderRepository
	logger       logger.Interface
}

func NewManageReminderTypesUseCase(
	typeRepo reminder.ReminderTypeRepository,
	reminderRepo reminder.ReminderRepository,
	logger logger.Interface,
) *ManageReminderTypesUseCase {
	return &ManageReminderTypesUseCase{
		typeRepo:     typeRepo,
		reminderRepo: reminderRepo,
		logger:       logger,
	}
}

func (uc *ManageReminderTypesUseCase) Create(ctx context.Context, cmd CreateReminderTypeCommand) (*dto.ReminderTypeResponse, error) {
	uc.logger.Infow("executing create reminder type use case", "name", cmd.Name)

	class, err := vo.ParseRecurrenceClass(cmd.RecurrenceClass)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	rt, err := reminder.NewReminderType(cmd.Name, cmd.Description, class, cmd.Intervals)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if err := applySections(rt, cmd.Template, cmd.Policy); err != nil {
		return nil, err
	}
	if cmd.Enabled != nil && !*cmd.Enabled {
		rt.Disable()
	}

	existing, err := uc.typeRepo.GetByName(ctx, rt.Name())
	if err != nil && !errors.Is(err, reminder.ErrReminderTypeNotFound) {
		return nil, fmt.Errorf("failed to check reminder type name: %w", err)
	}
	if existing != nil {
		return nil, apperrors.NewConflictError("reminder type name already exists")
	}

	if err := uc.typeRepo.Create(ctx, rt); err != nil {
		if errors.Is(err, reminder.ErrReminderTypeNameExists) {
			return nil, apperrors.NewConflictError("reminder type name already exists")
		}
		uc.logger.Errorw("failed to persist reminder type", "error", err)
		return nil, fmt.Errorf("failed to save reminder type: %w", err)
	}

	uc.logger.Infow("reminder type created successfully", "id", rt.ID(), "name", rt.Name())
	return dto.ToReminderTypeResponse(rt), nil
}

func (uc *ManageReminderTypesUseCase) Update(ctx context.Context, cmd UpdateReminderTypeCommand) (*dto.ReminderTypeResponse, error) {
	rt, err := uc.load(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}

	if cmd.Name != nil || cmd.Description != nil || cmd.RecurrenceClass != nil {
		name, desc, class := rt.Name(), rt.Description(), rt.ConfiguredRecurrenceClass()
		if cmd.Name != nil {
			name = *cmd.Name
		}
		if cmd.Description != nil {
			desc = *cmd.Description
		}
		if cmd.RecurrenceClass != nil {
			if class, err = vo.ParseRecurrenceClass(*cmd.RecurrenceClass); err != nil {
				return nil, apperrors.NewValidationError(err.Error())
			}
		}
		if err := rt.Update(name, desc, class); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
	}
	if cmd.Intervals != nil {
		if err := rt.SetIntervals(cmd.Intervals); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
	}
	if err := applySections(rt, cmd.Template, cmd.Policy); err != nil {
		return nil, err
	}
	if cmd.Enabled != nil {
		if *cmd.Enabled {
			rt.Enable()
		} else {
			rt.Disable()
		}
	}

	if err := uc.typeRepo.Update(ctx, rt); err != nil {
		if errors.Is(err, reminder.ErrReminderTypeNameExists) {
			return nil, apperrors.NewConflictError("reminder type name already exists")
		}
		return nil, fmt.Errorf("failed to update reminder type: %w", err)
	}

	uc.logger.Infow("reminder type updated", "id", rt.ID())
	return dto.ToReminderTypeResponse(rt), nil
}

func (uc *ManageReminderTypesUseCase) Get(ctx context.Context, id uint) (*dto.ReminderTypeResponse, error) {
	rt, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.ToReminderTypeResponse(rt), nil
}

func (uc *ManageReminderTypesUseCase) List(ctx context.Context) ([]*dto.ReminderTypeResponse, error) {
	types, err := uc.typeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list reminder types: %w", err)
	}
	return dto.ToReminderTypeResponses(types), nil
}

// Delete refuses to remove a type that reminders still reference.
func (uc *ManageReminderTypesUseCase) Delete(ctx context.Context, id uint) error {
	if _, err := uc.load(ctx, id); err != nil {
		return err
	}

	count, err := uc.reminderRepo.CountByReminderType(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to count reminders: %w", err)
	}
	if count > 0 {
		return apperrors.NewConflictError(reminder.ErrReminderTypeInUse.Error(), fmt.Sprintf("%d reminders", count))
	}

	if err := uc.typeRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, reminder.ErrReminderTypeInUse) {
			return apperrors.NewConflictError(err.Error())
		}
		return fmt.Errorf("failed to delete reminder type: %w", err)
	}
	uc.logger.Infow("reminder type deleted", "id", id)
	return nil
}

func (uc *ManageReminderTypesUseCase) load(ctx context.Context, id uint) (*reminder.ReminderType, error) {
	rt, err := uc.typeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reminder.ErrReminderTypeNotFound) {
			return nil, apperrors.NewNotFoundError("reminder type not found")
		}
		return nil, fmt.Errorf("failed to get reminder type: %w", err)
	}
	return rt, nil
}

func applySections(rt *reminder.ReminderType, tpl *TemplateInput, policy *PolicyInput) error {
	if tpl != nil {
		format, err := vo.ParseTemplateFormat(tpl.Format)
		if err != nil {
			return apperrors.NewValidationError(err.Error())
		}
		t, err := reminder.NewEmailTemplate(tpl.Subject, tpl.Body, format)
		if err != nil {
			return apperrors.NewValidationError("invalid template", err.Error())
		}
		rt.SetTemplate(t)
	}
	if policy != nil {
		p, err := reminder.NewRecipientPolicy(policy.NotifyEmployee, policy.NotifyManager, policy.NotifyHR, policy.AdditionalEmails)
		if err != nil {
			return apperrors.NewValidationError("invalid recipient policy", err.Error())
		}
		rt.SetPolicy(p)
	}
	return nil
}
