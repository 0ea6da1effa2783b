package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/reminderly/reminderly/internal/domain/jobrun"
	"github.com/reminderly/reminderly/internal/infrastructure/persistence/mappers"
	"github.com/reminderly/reminderly/internal/infrastructure/persistence/models"
	db "github.com/reminderly/reminderly/internal/shared/db"
)

type JobRunRepository struct {
	db     *gorm.DB
	mapper mappers.JobRunMapper
}

func NewJobRunRepository(db *gorm.DB) *JobRunRepository {
	return &JobRunRepository{
		db:     db,
		mapper: mappers.NewJobRunMapper(),
	}
}

func (r *JobRunRepository) Create(ctx context.Context, run *jobrun.JobRun) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(r.mapper.ToModel(run)).Error; err != nil {
		return fmt.Errorf("failed to create job run: %w", err)
	}
	return nil
}

func (r *JobRunRepository) Update(ctx context.Context, run *jobrun.JobRun) error {
	model := r.mapper.ToModel(run)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.JobRunModel{}).
		Where("id = ?", model.ID).
		Select("status", "completed_at", "duration_ms", "result", "error_message").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update job run: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return jobrun.ErrJobRunNotFound
	}
	return nil
}

func (r *JobRunRepository) GetByID(ctx context.Context, id string) (*jobrun.JobRun, error) {
	var model models.JobRunModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, jobrun.ErrJobRunNotFound
		}
		return nil, fmt.Errorf("failed to get job run: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *JobRunRepository) ListActive(ctx context.Context, jobType jobrun.JobType, since time.Time) ([]*jobrun.JobRun, error) {
	var rows []models.JobRunModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.
		Where("job_type = ? AND status = ? AND executed_at >= ?", jobType.String(), string(jobrun.StatusStarted), since).
		Order("executed_at DESC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list active job runs: %w", err)
	}
	return r.toDomainList(rows)
}

func (r *JobRunRepository) List(ctx context.Context, jobType *jobrun.JobType, limit int) ([]*jobrun.JobRun, error) {
	var rows []models.JobRunModel
	query := db.GetTxFromContext(ctx, r.db).Model(&models.JobRunModel{})
	if jobType != nil {
		query = query.Where("job_type = ?", jobType.String())
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Order("executed_at DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list job runs: %w", err)
	}
	return r.toDomainList(rows)
}

func (r *JobRunRepository) toDomainList(rows []models.JobRunModel) ([]*jobrun.JobRun, error) {
	list := make([]*jobrun.JobRun, 0, len(rows))
	for i := range rows {
		run, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		list = append(list, run)
	}
	return list, nil
}
