package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/reminderly/reminderly/internal/domain/reminder"
	vo "github.com/reminderly/reminderly/internal/domain/reminder/valueobjects"
	"github.com/reminderly/reminderly/internal/infrastructure/persistence/mappers"
	"github.com/reminderly/reminderly/internal/infrastructure/persistence/models"
	"github.com/reminderly/reminderly/internal/shared/constants"
	db "github.com/reminderly/reminderly/internal/shared/db"
	apperrors "github.com/reminderly/reminderly/internal/shared/errors"
)

// DispatchLogRepository stores dispatch attempts. The unique claim_key column
// is what makes scheduled sends at-most-once per (reminder, interval).
type DispatchLogRepository struct {
	db       *gorm.DB
	mapper   mappers.ReminderMapper
	claimTTL time.Duration
}

func NewDispatchLogRepository(db *gorm.DB) *DispatchLogRepository {
	return &DispatchLogRepository{
		db:       db,
		mapper:   mappers.NewReminderMapper(),
		claimTTL: constants.DefaultDispatchClaimTTL,
	}
}

// WithClaimTTL sets how long a pending claim may stay unfinalized before a
// later claim on the same slot may take it over. It must not be shorter than
// the longest dispatch run.
func (r *DispatchLogRepository) WithClaimTTL(ttl time.Duration) *DispatchLogRepository {
	if ttl > 0 {
		r.claimTTL = ttl
	}
	return r
}

func (r *DispatchLogRepository) Claim(ctx context.Context, l *reminder.DispatchLog) error {
	model, err := r.mapper.LogToModel(l)
	if err != nil {
		return err
	}
	if model.ClaimKey == nil {
		return fmt.Errorf("dispatch log for reminder %d holds no claim key", l.ReminderID())
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := r.expireStaleClaim(tx, *model.ClaimKey, l.AttemptedAt().Add(-r.claimTTL)); err != nil {
		return err
	}
	if err := tx.Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return reminder.ErrDispatchAlreadyClaimed
		}
		return fmt.Errorf("failed to claim dispatch slot: %w", err)
	}

	return l.SetID(model.ID)
}

// expireStaleClaim fails a pending entry on the slot that was claimed before
// cutoff and never finalized, so the slot can be claimed again.
func (r *DispatchLogRepository) expireStaleClaim(tx *gorm.DB, claimKey string, cutoff time.Time) error {
	result := tx.Model(&models.DispatchLogModel{}).
		Where("claim_key = ? AND status = ? AND attempted_at < ?", claimKey, vo.DispatchStatusPending.String(), cutoff).
		Updates(map[string]any{
			"status":        vo.DispatchStatusFailed.String(),
			"claim_key":     nil,
			"error_details": reminder.ReasonClaimExpired,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to expire stale dispatch claim: %w", result.Error)
	}
	return nil
}

func (r *DispatchLogRepository) Create(ctx context.Context, l *reminder.DispatchLog) error {
	model, err := r.mapper.LogToModel(l)
	if err != nil {
		return err
	}
	model.ClaimKey = nil

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create dispatch log: %w", err)
	}

	return l.SetID(model.ID)
}

// Finalize writes the terminal status. A failed entry gives its claim back so
// the next run may retry the slot.
func (r *DispatchLogRepository) Finalize(ctx context.Context, l *reminder.DispatchLog) error {
	model, err := r.mapper.LogToModel(l)
	if err != nil {
		return err
	}

	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Model(&models.DispatchLogModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]any{
			"status":        model.Status,
			"claim_key":     model.ClaimKey,
			"recipients":    model.Recipients,
			"message_id":    model.MessageID,
			"error_details": model.ErrorDetails,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to finalize dispatch log: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("dispatch log %d not found", model.ID)
	}
	return nil
}

func (r *DispatchLogRepository) HasSuccessfulDispatch(ctx context.Context, reminderID uint, daysBefore int) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Model(&models.DispatchLogModel{}).
		Where("reminder_id = ? AND days_before = ? AND status = ? AND manual = ?",
			reminderID, daysBefore, vo.DispatchStatusSent.String(), false).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check dispatch history: %w", err)
	}
	return count > 0, nil
}

func (r *DispatchLogRepository) ListByReminder(ctx context.Context, reminderID uint) ([]*reminder.DispatchLog, error) {
	var rows []models.DispatchLogModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("reminder_id = ?", reminderID).
		Order("attempted_at DESC, id DESC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list dispatch logs: %w", err)
	}

	list := make([]*reminder.DispatchLog, 0, len(rows))
	for i := range rows {
		l, err := r.mapper.LogToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		list = append(list, l)
	}
	return list, nil
}
