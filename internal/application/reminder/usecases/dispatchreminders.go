package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/reminderly/reminderly/internal/application/reminder/dto"
	"github.com/reminderly/reminderly/internal/application/reminder/services"
	"github.com/reminderly/reminderly/internal/domain/employee"
	"github.com/reminderly/reminderly/internal/domain/reminder"
	"github.com/reminderly/reminderly/internal/shared/biztime"
	apperrors "github.com/reminderly/reminderly/internal/shared/errors"
	"github.com/reminderly/reminderly/internal/shared/logger"
)

type DispatchRemindersCommand struct {
	// Today overrides the clock, for manual re-runs of a past day.
	Today *time.Time
}

// DispatchRemindersUseCase evaluates every pending reminder once and sends the
// ones whose lead time matches today. Each (reminder, interval) slot is sent
// successfully at most once.
type DispatchRemindersUseCase struct {
	reminderRepo reminder.ReminderRepository
	typeRepo     reminder.ReminderTypeRepository
	logRepo      reminder.DispatchLogRepository
	employees    EmployeeReader
	deliverer    *deliverer
	clock        biztime.Clock
	metrics      DispatchMetrics
	logger       logger.Interface
}

func NewDispatchRemindersUseCase(
	reminderRepo reminder.ReminderRepository,
	typeRepo reminder.ReminderTypeRepository,
	logRepo reminder.DispatchLogRepository,
	employees EmployeeReader,
	sender EmailSender,
	formatter BodyFormatter,
	settings DispatchSettings,
	clock biztime.Clock,
	metrics DispatchMetrics,
	logger logger.Interface,
) *DispatchRemindersUseCase {
	return &DispatchRemindersUseCase{
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
		clock:   clock,
		metrics: metrics,
		logger:  logger,
	}
}

// batchContext holds the data loaded once per run.
type batchContext struct {
	today     time.Time
	types     map[uint]*reminder.ReminderType
	employees map[uint]*employee.Employee
}

// Execute runs one dispatch pass. Only data store failures are returned as
// errors; everything else is reported in the result.
func (uc *DispatchRemindersUseCase) Execute(ctx context.Context, cmd DispatchRemindersCommand) (*dto.BatchResult, error) {
	today := biztime.Today(uc.clock)
	if cmd.Today != nil {
		today = biztime.TruncateDate(*cmd.Today)
	}
	result := &dto.BatchResult{Date: biztime.FormatDate(today), Entries: []dto.DispatchEntry{}}
	start := time.Now()

	uc.logger.Infow("starting reminder dispatch", "date", result.Date)

	bc, pending, err := uc.load(ctx, today)
	if err != nil {
		uc.logger.Errorw("failed to load reminders for dispatch", "error", err)
		return result, err
	}

	for _, rem := range pending {
		if err := ctx.Err(); err != nil {
			return result, apperrors.NewDataStoreError("dispatch run interrupted", err)
		}
		entry, err := uc.process(ctx, bc, rem)
		if err != nil && apperrors.IsDataStoreError(err) {
			uc.logger.Errorw("aborting dispatch run", "reminder_id", rem.ID(), "error", err)
			return result, err
		}
		if err != nil {
			result.AddError(err.Error())
		}
		result.Add(entry)
		if uc.metrics != nil {
			uc.metrics.DispatchOutcome(entry.Status)
		}
	}

	uc.logger.Infow("reminder dispatch finished",
		"date", result.Date,
		"processed", result.Processed,
		"sent", result.Sent,
		"failed", result.Failed,
		"skipped", result.Skipped,
		"errors", len(result.Errors),
		"duration", time.Since(start),
	)
	return result, nil
}

func (uc *DispatchRemindersUseCase) load(ctx context.Context, today time.Time) (*batchContext, []*reminder.Reminder, error) {
	pending, err := uc.reminderRepo.ListPending(ctx)
	if err != nil {
		return nil, nil, apperrors.NewDataStoreError("failed to list pending reminders", err)
	}

	typeIDs := make([]uint, 0)
	employeeIDs := make([]uint, 0)
	seenType := make(map[uint]bool)
	seenEmployee := make(map[uint]bool)
	for _, rem := range pending {
		if !seenType[rem.ReminderTypeID()] {
			seenType[rem.ReminderTypeID()] = true
			typeIDs = append(typeIDs, rem.ReminderTypeID())
		}
		if !seenEmployee[rem.EmployeeID()] {
			seenEmployee[rem.EmployeeID()] = true
			employeeIDs = append(employeeIDs, rem.EmployeeID())
		}
	}

	bc := &batchContext{today: today}
	if len(pending) == 0 {
		return bc, pending, nil
	}

	if bc.types, err = uc.typeRepo.GetByIDs(ctx, typeIDs); err != nil {
		return nil, nil, apperrors.NewDataStoreError("failed to load reminder types", err)
	}
	if bc.employees, err = uc.employees.GetByIDs(ctx, employeeIDs); err != nil {
		return nil, nil, apperrors.NewDataStoreError("failed to load employees", err)
	}
	return bc, pending, nil
}

// process walks one reminder through the dispatch state machine. A returned
// data store error aborts the run; any other error is recorded against the entry.
func (uc *DispatchRemindersUseCase) process(ctx context.Context, bc *batchContext, rem *reminder.Reminder) (dto.DispatchEntry, error) {
	entry := dto.DispatchEntry{ReminderID: rem.ID(), EmployeeID: rem.EmployeeID(), Timestamp: uc.clock.Now()}

	if rem.IsCompleted() {
		return skipped(entry, dto.ReasonAlreadyCompleted), nil
	}

	rt, ok := bc.types[rem.ReminderTypeID()]
	if !ok {
		return uc.configFailure(entry, rem, "reminder type not found")
	}
	if !rt.IsEnabled() {
		return skipped(entry, dto.ReasonTypeDisabled), nil
	}
	if problem := configurationProblem(rt, true); problem != "" {
		return uc.configFailure(entry, rem, problem)
	}

	emp, ok := bc.employees[rem.EmployeeID()]
	if !ok {
		return uc.configFailure(entry, rem, "employee not found")
	}

	eval := evaluate(rem, rt, emp, bc.today)
	entry.DaysUntilDue = intPtr(eval.daysUntilDue)

	daysBefore, fire, err := services.MatchInterval(eval.daysUntilDue, rt.Intervals())
	if err != nil {
		return uc.configFailure(entry, rem, err.Error())
	}
	if !fire {
		return skipped(entry, fmt.Sprintf("no interval matches %d days until due", eval.daysUntilDue)), nil
	}
	entry.DaysBefore = intPtr(daysBefore)

	claim, err := reminder.NewDispatchClaim(rem.ID(), daysBefore, false, entry.Timestamp)
	if err != nil {
		return entry, apperrors.NewDataStoreError("failed to build dispatch claim", err)
	}
	if err := uc.logRepo.Claim(ctx, claim); err != nil {
		if errors.Is(err, reminder.ErrDispatchAlreadyClaimed) {
			return skipped(entry, dto.ReasonAlreadySent), nil
		}
		return entry, apperrors.NewDataStoreError("failed to claim dispatch slot", err)
	}

	recipients := services.ResolveRecipients(rt.Policy(), contactOf(emp))
	if len(recipients) == 0 {
		rerr := apperrors.NewRecipientResolutionError(rem.ID(), dto.ReasonNoRecipients)
		if err := claim.MarkFailed(nil, dto.ReasonNoRecipients); err != nil {
			return entry, apperrors.NewDataStoreError("failed to finalize dispatch log", err)
		}
		if err := uc.logRepo.Finalize(context.WithoutCancel(ctx), claim); err != nil {
			return entry, apperrors.NewDataStoreError("failed to finalize dispatch log", err)
		}
		entry.Status = dto.EntryStatusFailed
		entry.Reason = dto.ReasonNoRecipients
		uc.logger.Warnw("reminder has no recipients", "reminder_id", rem.ID(), "days_before", daysBefore)
		return entry, rerr
	}

	out := uc.deliverer.deliver(ctx, rem, rt, emp, recipients, eval, daysBefore)
	entry.Recipients = out.addresses()

	if out.managementOK {
		err = claim.MarkSent(out.attempts, out.messageID)
		entry.Status = dto.EntryStatusSent
	} else {
		err = claim.MarkFailed(out.attempts, dto.ReasonNoManagementSent)
		entry.Status = dto.EntryStatusFailed
		entry.Reason = dto.ReasonNoManagementSent
	}
	if err != nil {
		return entry, apperrors.NewDataStoreError("failed to finalize dispatch log", err)
	}
	// the claim is finalized even when the run was cancelled mid-send
	if err := uc.logRepo.Finalize(context.WithoutCancel(ctx), claim); err != nil {
		return entry, apperrors.NewDataStoreError("failed to finalize dispatch log", err)
	}

	if entry.Status == dto.EntryStatusFailed {
		return entry, apperrors.NewDeliveryError(rem.ID(), dto.ReasonNoManagementSent, nil)
	}
	uc.logger.Infow("reminder dispatched",
		"reminder_id", rem.ID(),
		"days_before", daysBefore,
		"recipients", len(out.attempts),
	)
	return entry, nil
}

// configFailure records a configuration problem. No dispatch log is written.
func (uc *DispatchRemindersUseCase) configFailure(entry dto.DispatchEntry, rem *reminder.Reminder, problem string) (dto.DispatchEntry, error) {
	entry.Status = dto.EntryStatusFailed
	entry.Reason = problem
	uc.logger.Warnw("reminder cannot be dispatched", "reminder_id", rem.ID(), "reason", problem)
	return entry, apperrors.NewConfigurationError(rem.ID(), problem)
}

func skipped(entry dto.DispatchEntry, reason string) dto.DispatchEntry {
	entry.Status = dto.EntryStatusSkipped
	entry.Reason = reason
	return entry
}

func intPtr(v int) *int {
	return &v
}
