package dto

import (
	"encoding/json"
	"time"

	"github.com/reminderly/reminderly/internal/domain/jobrun"
)

type JobRunResponse struct {
	ID          string          `json:"id"`
	JobType     string          `json:"job_type"`
	Trigger     string          `json:"trigger"`
	Status      string          `json:"status"`
	ExecutedAt  time.Time       `json:"executed_at"`
	CompletedAt *time.Time      `json:"completed_at,omitempty"`
	DurationMs  int64           `json:"duration_ms"`
	Result      json.RawMessage `json:"result,omitempty"`
	Error       string          `json:"error,omitempty"`
}

func ToJobRunResponse(r *jobrun.JobRun) *JobRunResponse {
	if r == nil {
		return nil
	}
	return &JobRunResponse{
		ID:          r.ID(),
		JobType:     r.JobType().String(),
		Trigger:     string(r.Trigger()),
		Status:      string(r.Status()),
		ExecutedAt:  r.ExecutedAt(),
		CompletedAt: r.CompletedAt(),
		DurationMs:  r.DurationMs(),
		Result:      r.Result(),
		Error:       r.ErrorMessage(),
	}
}

func ToJobRunResponses(runs []*jobrun.JobRun) []*JobRunResponse {
	out := make([]*JobRunResponse, 0, len(runs))
	for _, r := range runs {
		out = append(out, ToJobRunResponse(r))
	}
	return out
}
