package usecases

import (
	"context"
	"time"

	"github.com/reminderly/reminderly/internal/domain/employee"
	vo "github.com/reminderly/reminderly/internal/domain/reminder/valueobjects"
	"github.com/reminderly/reminderly/internal/infrastructure/email"
)

// EmailSender delivers one rendered message.
type EmailSender interface {
	Send(ctx context.Context, msg email.Message) (*email.SendResult, error)
	Provider() string
}

// BodyFormatter converts a rendered template body to HTML.
type BodyFormatter interface {
	Format(body string, format vo.TemplateFormat) (string, error)
}

// EmployeeReader is the employee lookup the reminder use cases need.
type EmployeeReader interface {
	GetByID(ctx context.Context, id uint) (*employee.Employee, error)
	GetByIDs(ctx context.Context, ids []uint) (map[uint]*employee.Employee, error)
	ListAll(ctx context.Context) ([]*employee.Employee, error)
}

// Transactor runs fn inside one database transaction.
type Transactor interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type DispatchMetrics interface {
	DispatchOutcome(status string)
}

type RecurringMetrics interface {
	RecurringSpawned(count int)
}

// DispatchSettings are read from configuration once at startup.
type DispatchSettings struct {
	// DateFormat is the Go layout used for {date} and {dueDate}.
	DateFormat string
	// SendTimeout bounds every individual email send.
	SendTimeout time.Duration
}

func (s DispatchSettings) withDefaults() DispatchSettings {
	if s.DateFormat == "" {
		s.DateFormat = "January 2, 2006"
	}
	if s.SendTimeout <= 0 {
		s.SendTimeout = 15 * time.Second
	}
	return s
}
