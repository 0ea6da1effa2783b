package usecases

import (
	"context"
	"fmt"

	"github.com/reminderly/reminderly/internal/application/jobrun/dto"
	"github.com/reminderly/reminderly/internal/domain/jobrun"
	"github.com/reminderly/reminderly/internal/shared/constants"
	apperrors "github.com/reminderly/reminderly/internal/shared/errors"
)

type ListRunsQuery struct {
	Limit   int
	JobType string
}

type ListRunsUseCase struct {
	repo jobrun.Repository
}

func NewListRunsUseCase(repo jobrun.Repository) *ListRunsUseCase {
	return &ListRunsUseCase{repo: repo}
}

func (uc *ListRunsUseCase) Execute(ctx context.Context, q ListRunsQuery) ([]*dto.JobRunResponse, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = constants.DefaultJobRunLimit
	}
	if limit > constants.MaxJobRunLimit {
		limit = constants.MaxJobRunLimit
	}

	var filter *jobrun.JobType
	if q.JobType != "" {
		jt := jobrun.JobType(q.JobType)
		if !jt.IsValid() {
			return nil, apperrors.NewValidationError("type must be process_reminders or process_recurring")
		}
		filter = &jt
	}

	runs, err := uc.repo.List(ctx, filter, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list job runs: %w", err)
	}
	return dto.ToJobRunResponses(runs), nil
}
