package http

import (
	"time"

	"github.com/reminderly/reminderly/internal/interfaces/http/handlers"
	"github.com/reminderly/reminderly/internal/interfaces/http/middleware"
	"github.com/reminderly/reminderly/internal/shared/version"
)

type handlerSet struct {
	employee     *handlers.EmployeeHandler
	reminderType *handlers.ReminderTypeHandler
	reminder     *handlers.ReminderHandler
	recurring    *handlers.RecurringHandler
	cron         *handlers.CronHandler
	email        *handlers.EmailHandler
	health       *handlers.HealthHandler
}

func (c *Container) initHandlers() {
	u := c.ucs
	hlog := c.log.Named("http")

	c.hdlrs = &handlerSet{
		employee:     handlers.NewEmployeeHandler(u.manageEmployees, hlog),
		reminderType: handlers.NewReminderTypeHandler(u.manageReminderTypes, hlog),
		reminder: handlers.NewReminderHandler(
			u.createReminder,
			u.getReminder,
			u.listReminders,
			u.updateReminder,
			u.deleteReminder,
			u.completeReminder,
			u.sendReminderNow,
			u.bulkCreateReminders,
			u.bulkSendReminders,
			hlog,
		),
		recurring: handlers.NewRecurringHandler(u.manageRecurring, hlog),
		cron:      handlers.NewCronHandler(u.runJob, u.listRuns, hlog),
		email:     handlers.NewEmailHandler(u.sendTestEmail, hlog),
		health:    handlers.NewHealthHandler(version.Current()),
	}

	c.tokenMiddleware = middleware.NewAPITokenMiddleware(c.cfg.Server.APIToken, hlog)
	if c.redis != nil && c.cfg.Server.TriggerRateLimit > 0 {
		c.triggerLimiter = middleware.NewRateLimiter(c.redis, "cron", c.cfg.Server.TriggerRateLimit, time.Minute, hlog)
	}
}
