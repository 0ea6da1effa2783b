package models

import (
	"time"

	"gorm.io/datatypes"
)

type JobRunModel struct {
	ID           string    `gorm:"primaryKey;size:36"`
	JobType      string    `gorm:"size:32;not null;index:idx_job_runs_type_status,priority:1"`
	Trigger      string    `gorm:"column:trigger_source;size:16;not null"`
	Status       string    `gorm:"size:16;not null;index:idx_job_runs_type_status,priority:2"`
	ExecutedAt   time.Time `gorm:"not null;index"`
	CompletedAt  *time.Time
	DurationMs   int64          `gorm:"not null;default:0"`
	Result       datatypes.JSON `gorm:"type:json"`
	ErrorMessage string         `gorm:"type:text"`
}

func (JobRunModel) TableName() string {
	return "job_runs"
}
