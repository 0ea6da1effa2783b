package http

import (
	employeeusecases "github.com/reminderly/reminderly/internal/application/employee/usecases"
	jobrunusecases "github.com/reminderly/reminderly/internal/application/jobrun/usecases"
	reminderusecases "github.com/reminderly/reminderly/internal/application/reminder/usecases"
)

// useCases holds every use case the handlers and the scheduler call.
type useCases struct {
	manageEmployees     *employeeusecases.ManageEmployeesUseCase
	manageReminderTypes *reminderusecases.ManageReminderTypesUseCase
	createReminder      *reminderusecases.CreateReminderUseCase
	getReminder         *reminderusecases.GetReminderUseCase
	listReminders       *reminderusecases.ListRemindersUseCase
	updateReminder      *reminderusecases.UpdateReminderUseCase
	deleteReminder      *reminderusecases.DeleteReminderUseCase
	bulkCreateReminders *reminderusecases.BulkCreateRemindersUseCase
	bulkSendReminders   *reminderusecases.BulkSendRemindersUseCase
	sendTestEmail       *reminderusecases.SendTestEmailUseCase
	completeReminder    *reminderusecases.CompleteReminderUseCase
	sendReminderNow     *reminderusecases.SendReminderNowUseCase
	manageRecurring     *reminderusecases.ManageRecurringUseCase
	dispatchReminders   *reminderusecases.DispatchRemindersUseCase
	advanceRecurring    *reminderusecases.AdvanceRecurringUseCase
	runJob              *jobrunusecases.RunJobUseCase
	listRuns            *jobrunusecases.ListRunsUseCase
}

func (c *Container) initUseCases() {
	r := c.repos
	s := c.svcs

	settings := reminderusecases.DispatchSettings{
		DateFormat:  c.cfg.Reminder.DateFormat,
		SendTimeout: c.cfg.Email.SendTimeout,
	}
	dispatchLog := c.log.Named("dispatch")

	ucs := &useCases{
		manageEmployees:     employeeusecases.NewManageEmployeesUseCase(r.employeeRepo, c.log),
		manageReminderTypes: reminderusecases.NewManageReminderTypesUseCase(r.reminderTypeRepo, r.reminderRepo, c.log),
		createReminder:      reminderusecases.NewCreateReminderUseCase(r.reminderRepo, r.reminderTypeRepo, r.employeeRepo, c.log),
		getReminder:         reminderusecases.NewGetReminderUseCase(r.reminderRepo, r.dispatchLogRepo),
		listReminders:       reminderusecases.NewListRemindersUseCase(r.reminderRepo, c.log),
		updateReminder:      reminderusecases.NewUpdateReminderUseCase(r.reminderRepo, c.log),
		deleteReminder:      reminderusecases.NewDeleteReminderUseCase(r.reminderRepo, c.log),
		bulkCreateReminders: reminderusecases.NewBulkCreateRemindersUseCase(r.reminderRepo, r.reminderTypeRepo, r.employeeRepo, s.txManager, c.log),
		sendTestEmail:       reminderusecases.NewSendTestEmailUseCase(s.sender, c.clock, c.log.Named("email")),
		completeReminder:    reminderusecases.NewCompleteReminderUseCase(r.reminderRepo, c.clock, c.log),
		manageRecurring:     reminderusecases.NewManageRecurringUseCase(r.recurringRepo, r.reminderTypeRepo, c.log),
		sendReminderNow: reminderusecases.NewSendReminderNowUseCase(
			r.reminderRepo, r.reminderTypeRepo, r.dispatchLogRepo, r.employeeRepo,
			s.sender, s.formatter, settings, c.clock, dispatchLog,
		),
		dispatchReminders: reminderusecases.NewDispatchRemindersUseCase(
			r.reminderRepo, r.reminderTypeRepo, r.dispatchLogRepo, r.employeeRepo,
			s.sender, s.formatter, settings, c.clock, s.recorder, dispatchLog,
		),
		advanceRecurring: reminderusecases.NewAdvanceRecurringUseCase(
			r.recurringRepo, r.reminderRepo, r.reminderTypeRepo, r.employeeRepo,
			c.clock, s.recorder, c.log.Named("recurring"),
		),
		listRuns: jobrunusecases.NewListRunsUseCase(r.jobRunRepo),
	}

	ucs.bulkSendReminders = reminderusecases.NewBulkSendRemindersUseCase(ucs.sendReminderNow, dispatchLog)

	ucs.runJob = jobrunusecases.NewRunJobUseCase(
		r.jobRunRepo,
		s.runLock,
		jobrunusecases.NewJobs(ucs.dispatchReminders, ucs.advanceRecurring),
		jobrunusecases.RunSettings{
			RunTimeout: c.cfg.Scheduler.RunTimeout,
			LockTTL:    c.cfg.Reminder.LockTTL,
		},
		c.clock,
		s.recorder,
		c.log.Named("jobrun"),
	)

	c.ucs = ucs
}
