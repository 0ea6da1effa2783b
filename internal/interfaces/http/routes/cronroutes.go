package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/reminderly/reminderly/internal/interfaces/http/handlers"
	"github.com/reminderly/reminderly/internal/interfaces/http/middleware"
)

type CronRouteConfig struct {
	CronHandler     *handlers.CronHandler
	TokenMiddleware *middleware.APITokenMiddleware
	// TriggerLimiter is optional.
	TriggerLimiter *middleware.RateLimiter
}

func SetupCronRoutes(api *gin.RouterGroup, config *CronRouteConfig) {
	cron := api.Group("/cron")
	cron.Use(config.TokenMiddleware.RequireToken())
	{
		cron.POST("/process-reminders", limited(config.TriggerLimiter, config.CronHandler.ProcessReminders)...)
		cron.POST("/process-recurring", limited(config.TriggerLimiter, config.CronHandler.ProcessRecurring)...)
		cron.GET("/logs", config.CronHandler.ListLogs)
	}
}

func limited(limiter *middleware.RateLimiter, h gin.HandlerFunc) []gin.HandlerFunc {
	if limiter == nil {
		return []gin.HandlerFunc{h}
	}
	return []gin.HandlerFunc{limiter.Limit(), h}
}
