package dto

import (
	"time"

	"github.com/reminderly/reminderly/internal/domain/employee"
	"github.com/reminderly/reminderly/internal/shared/biztime"
)

type EmployeeResponse struct {
	ID              uint      `json:"id"`
	EmployeeID      string    `json:"employee_id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Position        string    `json:"position,omitempty"`
	Department      string    `json:"department,omitempty"`
	ManagerEmail    string    `json:"manager_email,omitempty"`
	HREmail         string    `json:"hr_email,omitempty"`
	Birthday        *string   `json:"birthday,omitempty"`
	WorkAnniversary *string   `json:"work_anniversary,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func ToEmployeeResponse(e *employee.Employee) *EmployeeResponse {
	if e == nil {
		return nil
	}
	return &EmployeeResponse{
		ID:              e.ID(),
		EmployeeID:      e.EmployeeNumber(),
		Name:            e.Name(),
		Email:           e.Email(),
		Position:        e.Position(),
		Department:      e.Department(),
		ManagerEmail:    e.ManagerEmail(),
		HREmail:         e.HREmail(),
		Birthday:        formatOptional(e.Birthday()),
		WorkAnniversary: formatOptional(e.WorkAnniversary()),
		CreatedAt:       e.CreatedAt(),
		UpdatedAt:       e.UpdatedAt(),
	}
}

func ToEmployeeResponses(emps []*employee.Employee) []*EmployeeResponse {
	out := make([]*EmployeeResponse, 0, len(emps))
	for _, e := range emps {
		out = append(out, ToEmployeeResponse(e))
	}
	return out
}

func formatOptional(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := biztime.FormatDate(*t)
	return &s
}
