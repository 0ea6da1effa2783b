package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/reminderly/reminderly/internal/interfaces/http/handlers"
)

type ReminderRouteConfig struct {
	ReminderTypeHandler *handlers.ReminderTypeHandler
	ReminderHandler     *handlers.ReminderHandler
	RecurringHandler    *handlers.RecurringHandler
}

func SetupReminderRoutes(api *gin.RouterGroup, config *ReminderRouteConfig) {
	types := api.Group("/reminder-types")
	{
		types.POST("", config.ReminderTypeHandler.CreateReminderType)
		types.GET("", config.ReminderTypeHandler.ListReminderTypes)
		types.GET("/:id", config.ReminderTypeHandler.GetReminderType)
		types.PATCH("/:id", config.ReminderTypeHandler.UpdateReminderType)
		types.DELETE("/:id", config.ReminderTypeHandler.DeleteReminderType)
	}

	reminders := api.Group("/reminders")
	{
		reminders.POST("", config.ReminderHandler.CreateReminder)
		reminders.GET("", config.ReminderHandler.ListReminders)
		reminders.POST("/bulk", config.ReminderHandler.BulkCreateReminders)
		reminders.POST("/bulk/send", config.ReminderHandler.BulkSendReminders)

		// Action endpoints before the generic /:id routes
		reminders.POST("/:id/complete", config.ReminderHandler.CompleteReminder)
		reminders.POST("/:id/send", config.ReminderHandler.SendReminder)
		reminders.GET("/:id/logs", config.ReminderHandler.ListDispatchLogs)

		reminders.GET("/:id", config.ReminderHandler.GetReminder)
		reminders.PATCH("/:id", config.ReminderHandler.UpdateReminder)
		reminders.DELETE("/:id", config.ReminderHandler.DeleteReminder)
	}

	recurring := api.Group("/recurring")
	{
		recurring.POST("", config.RecurringHandler.CreateRecurring)
		recurring.GET("", config.RecurringHandler.ListRecurring)
		recurring.GET("/:id", config.RecurringHandler.GetRecurring)
		recurring.PUT("/:id", config.RecurringHandler.UpdateRecurring)
		recurring.DELETE("/:id", config.RecurringHandler.DeleteRecurring)
	}
}
