package models

import "time"

type EmployeeModel struct {
	ID              uint       `gorm:"primaryKey"`
	EmployeeNumber  string     `gorm:"column:employee_id;uniqueIndex;size:50;not null"`
	Name            string     `gorm:"size:100;not null"`
	Email           string     `gorm:"size:255;not null"`
	Position        string     `gorm:"size:100"`
	Department      string     `gorm:"size:100;index"`
	ManagerEmail    string     `gorm:"size:255"`
	HREmail         string     `gorm:"column:hr_email;size:255"`
	Birthday        *time.Time `gorm:"type:date"`
	WorkAnniversary *time.Time `gorm:"type:date"`
	CreatedAt       time.Time  `gorm:"not null"`
	UpdatedAt       time.Time  `gorm:"not null"`
}

func (EmployeeModel) TableName() string {
	return "employees"
}
