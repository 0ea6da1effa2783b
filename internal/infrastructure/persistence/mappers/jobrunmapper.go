package mappers

import (
	"encoding/json"

	"gorm.io/datatypes"

	"github.com/reminderly/reminderly/internal/domain/jobrun"
	"github.com/reminderly/reminderly/internal/infrastructure/persistence/models"
)

type JobRunMapper interface {
	ToModel(r *jobrun.JobRun) *models.JobRunModel
	ToDomain(model *models.JobRunModel) (*jobrun.JobRun, error)
}

type JobRunMapperImpl struct{}

func NewJobRunMapper() JobRunMapper {
	return &JobRunMapperImpl{}
}

func (m *JobRunMapperImpl) ToModel(r *jobrun.JobRun) *models.JobRunModel {
	model := &models.JobRunModel{
		ID:           r.ID(),
		JobType:      r.JobType().String(),
		Trigger:      string(r.Trigger()),
		Status:       string(r.Status()),
		ExecutedAt:   r.ExecutedAt(),
		CompletedAt:  r.CompletedAt(),
		DurationMs:   r.DurationMs(),
		ErrorMessage: r.ErrorMessage(),
	}
	if len(r.Result()) > 0 {
		model.Result = datatypes.JSON(r.Result())
	}
	return model
}

func (m *JobRunMapperImpl) ToDomain(model *models.JobRunModel) (*jobrun.JobRun, error) {
	if model == nil {
		return nil, nil
	}
	var result json.RawMessage
	if len(model.Result) > 0 {
		result = json.RawMessage(model.Result)
	}
	return jobrun.ReconstructJobRun(
		model.ID,
		jobrun.JobType(model.JobType),
		jobrun.Trigger(model.Trigger),
		jobrun.Status(model.Status),
		model.ExecutedAt,
		model.CompletedAt,
		model.DurationMs,
		result,
		model.ErrorMessage,
	)
}
