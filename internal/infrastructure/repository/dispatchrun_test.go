package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reminderly/reminderly/internal/application/reminder/dto"
	reminderusecases "github.com/reminderly/reminderly/internal/application/reminder/usecases"
	"github.com/reminderly/reminderly/internal/domain/reminder"
	vo "github.com/reminderly/reminderly/internal/domain/reminder/valueobjects"
	"github.com/reminderly/reminderly/internal/infrastructure/email"
	"github.com/reminderly/reminderly/internal/shared/biztime"
	"github.com/reminderly/reminderly/internal/shared/logger"
)

// cancellingSender cancels the surrounding run on its first send, the way a
// run timeout or a scheduler shutdown would.
type cancellingSender struct {
	cancel context.CancelFunc
	calls  int
}

func (s *cancellingSender) Send(ctx context.Context, msg email.Message) (*email.SendResult, error) {
	s.calls++
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
		return nil, context.Canceled
	}
	return &email.SendResult{MessageID: "msg-ok"}, nil
}

func (s *cancellingSender) Provider() string {
	return "test"
}

type identityFormatter struct{}

func (identityFormatter) Format(body string, _ vo.TemplateFormat) (string, error) {
	return body, nil
}

func TestDispatchRun_InterruptedSendIsRetriedNextRun(t *testing.T) {
	f := newReminderFixture(t)
	ctx := context.Background()
	today := date(2024, time.March, 1)
	clock := biztime.FixedClock{At: today.Add(8 * time.Hour)}

	emp := seedEmployee(t, f.employees, "E-001", "Ada Lovelace")
	require.NoError(t, emp.UpdateContacts("boss@example.com", ""))
	require.NoError(t, f.employees.Update(ctx, emp))

	rt := seedReminderType(t, f.types, "Contract End", []int{7})
	tpl, err := reminder.NewEmailTemplate("{type} for {employee}", "Dear {recipient}", vo.TemplateFormatHTML)
	require.NoError(t, err)
	policy, err := reminder.NewRecipientPolicy(false, true, false, nil)
	require.NoError(t, err)
	rt.SetTemplate(tpl)
	rt.SetPolicy(policy)
	require.NoError(t, f.types.Update(ctx, rt))

	rem := seedReminder(t, f.reminders, emp.ID(), rt.ID(), today.AddDate(0, 0, 7))

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	sender := &cancellingSender{cancel: cancel}
	uc := reminderusecases.NewDispatchRemindersUseCase(
		f.reminders, f.types, f.logs, f.employees, sender, identityFormatter{},
		reminderusecases.DispatchSettings{DateFormat: "2006-01-02", SendTimeout: time.Second},
		clock, nil, logger.NewNopLogger(),
	)

	first, err := uc.Execute(runCtx, reminderusecases.DispatchRemindersCommand{})
	require.NoError(t, err)
	assert.Equal(t, 1, first.Failed)

	logs, err := f.logs.ListByReminder(ctx, rem.ID())
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, vo.DispatchStatusFailed, logs[0].Status(), "the claim is released although the run was cancelled")

	second, err := uc.Execute(ctx, reminderusecases.DispatchRemindersCommand{})
	require.NoError(t, err)
	assert.Equal(t, 1, second.Sent)
	require.Len(t, second.Entries, 1)
	assert.Equal(t, dto.EntryStatusSent, second.Entries[0].Status)
	assert.Equal(t, 2, sender.calls)

	sent, err := f.logs.HasSuccessfulDispatch(ctx, rem.ID(), 7)
	require.NoError(t, err)
	assert.True(t, sent)
}
