package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hashicorp/go-multierror"

	"github.com/reminderly/reminderly/internal/application/reminder/dto"
	"github.com/reminderly/reminderly/internal/application/reminder/services"
	"github.com/reminderly/reminderly/internal/domain/employee"
	"github.com/reminderly/reminderly/internal/domain/reminder"
	"github.com/reminderly/reminderly/internal/shared/biztime"
	apperrors "github.com/reminderly/reminderly/internal/shared/errors"
	"github.com/reminderly/reminderly/internal/shared/logger"
)

const generatedNotesPrefix = "Auto-generated from recurring reminder: "

type AdvanceRecurringCommand struct {
	Today *time.Time
}

// AdvanceRecurringUseCase spawns one reminder per employee for every due
// recurring definition and rolls the definition forward by one cycle.
// A definition that is several cycles behind catches up over successive runs.
type AdvanceRecurringUseCase struct {
	recurringRepo reminder.RecurringDefinitionRepository
	reminderRepo  reminder.ReminderRepository
	typeRepo      reminder.ReminderTypeRepository
	employees     EmployeeReader
	clock         biztime.Clock
	metrics       RecurringMetrics
	logger        logger.Interface
}

func NewAdvanceRecurringUseCase(
	recurringRepo reminder.RecurringDefinitionRepository,
	reminderRepo reminder.ReminderRepository,
	typeRepo reminder.ReminderTypeRepository,
	employees EmployeeReader,
	clock biztime.Clock,
	metrics RecurringMetrics,
	logger logger.Interface,
) *AdvanceRecurringUseCase {
	return &AdvanceRecurringUseCase{
		recurringRepo: recurringRepo,
		reminderRepo:  reminderRepo,
		typeRepo:      typeRepo,
		employees:     employees,
		clock:         clock,
		metrics:       metrics,
		logger:        logger,
	}
}

func (uc *AdvanceRecurringUseCase) Execute(ctx context.Context, cmd AdvanceRecurringCommand) (*dto.RecurringResult, error) {
	today := biztime.Today(uc.clock)
	if cmd.Today != nil {
		today = biztime.TruncateDate(*cmd.Today)
	}
	result := &dto.RecurringResult{Date: biztime.FormatDate(today)}
	start := time.Now()

	uc.logger.Infow("recurring advancement started", "date", result.Date)

	defs, err := uc.recurringRepo.ListDue(ctx, today)
	if err != nil {
		return result, apperrors.NewDataStoreError("failed to list due recurring definitions", err)
	}
	if len(defs) == 0 {
		uc.logger.Infow("no recurring definitions due", "date", result.Date)
		return result, nil
	}

	staff, err := uc.employees.ListAll(ctx)
	if err != nil {
		return result, apperrors.NewDataStoreError("failed to list employees", err)
	}

	for _, def := range defs {
		if err := ctx.Err(); err != nil {
			return result, apperrors.NewDataStoreError("recurring run interrupted", err)
		}
		result.Processed++
		if err := uc.advance(ctx, def, staff, result); err != nil {
			result.Errors = append(result.Errors, err.Error())
		}
	}

	if uc.metrics != nil {
		uc.metrics.RecurringSpawned(result.Created)
	}
	uc.logger.Infow("recurring advancement finished",
		"date", result.Date,
		"processed", result.Processed,
		"created", result.Created,
		"skipped_existing", result.SkippedExisting,
		"updated", result.Updated,
		"errors", len(result.Errors),
		"duration", time.Since(start),
	)
	return result, nil
}

// advance handles one definition. Spawn failures are appended to the result
// but never keep the schedule from moving.
func (uc *AdvanceRecurringUseCase) advance(ctx context.Context, def *reminder.RecurringDefinition, staff []*employee.Employee, result *dto.RecurringResult) error {
	if _, err := uc.typeRepo.GetByID(ctx, def.ReminderTypeID()); err != nil {
		if errors.Is(err, reminder.ErrReminderTypeNotFound) {
			return fmt.Errorf("recurring %d: reminder type %d not found", def.ID(), def.ReminderTypeID())
		}
		return fmt.Errorf("recurring %d: failed to get reminder type: %w", def.ID(), err)
	}

	previous := def.NextDueDate()
	notes := generatedNotesPrefix + def.Name()

	var spawnErrs *multierror.Error
	for _, emp := range staff {
		rem, err := reminder.NewGeneratedReminder(def.ID(), emp.ID(), def.ReminderTypeID(), previous, notes)
		if err != nil {
			spawnErrs = multierror.Append(spawnErrs, fmt.Errorf("employee %d: %w", emp.ID(), err))
			continue
		}
		created, err := uc.reminderRepo.CreateGenerated(ctx, rem)
		if err != nil {
			spawnErrs = multierror.Append(spawnErrs, fmt.Errorf("employee %d: %w", emp.ID(), err))
			continue
		}
		if created {
			result.Created++
		} else {
			result.SkippedExisting++
		}
	}
	if spawnErrs != nil {
		uc.logger.Warnw("some recurring instances could not be created",
			"recurring_id", def.ID(),
			"failures", spawnErrs.Len(),
			"error", spawnErrs.ErrorOrNil(),
		)
		for _, e := range spawnErrs.Errors {
			result.Errors = append(result.Errors, fmt.Sprintf("recurring %d: %v", def.ID(), e))
		}
	}

	next, err := services.NextDueDate(previous, def.Frequency(), def.Interval(), def.AnchorDay())
	if err != nil {
		return fmt.Errorf("recurring %d: %w", def.ID(), err)
	}
	if err := def.ScheduleNext(next, uc.clock.Now()); err != nil {
		return fmt.Errorf("recurring %d: %w", def.ID(), err)
	}

	updated, err := uc.recurringRepo.AdvanceSchedule(ctx, def, previous)
	if err != nil {
		return fmt.Errorf("recurring %d: failed to advance schedule: %w", def.ID(), err)
	}
	if !updated {
		uc.logger.Infow("recurring definition already advanced by another run", "recurring_id", def.ID())
		return nil
	}
	result.Updated++

	uc.logger.Infow("recurring definition advanced",
		"recurring_id", def.ID(),
		"from", biztime.FormatDate(previous),
		"to", biztime.FormatDate(next),
	)
	return nil
}
