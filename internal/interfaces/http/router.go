package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/reminderly/reminderly/internal/interfaces/http/middleware"
	"github.com/reminderly/reminderly/internal/interfaces/http/routes"
	"github.com/reminderly/reminderly/internal/shared/constants"
)

// SetupRoutes installs the middleware chain and registers every route.
func (c *Container) SetupRoutes() {
	c.engine.Use(middleware.Recovery(c.log))
	c.engine.Use(middleware.RequestLogger(c.log.Named("http")))
	c.engine.Use(middleware.SecurityHeaders())
	if len(c.cfg.Server.AllowedOrigins) > 0 {
		c.engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))
	}

	c.engine.GET("/health", c.hdlrs.health.Health)
	c.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := c.engine.Group("/api")

	routes.SetupEmployeeRoutes(api, &routes.EmployeeRouteConfig{
		EmployeeHandler: c.hdlrs.employee,
	})

	routes.SetupReminderRoutes(api, &routes.ReminderRouteConfig{
		ReminderTypeHandler: c.hdlrs.reminderType,
		ReminderHandler:     c.hdlrs.reminder,
		RecurringHandler:    c.hdlrs.recurring,
	})

	routes.SetupCronRoutes(api, &routes.CronRouteConfig{
		CronHandler:     c.hdlrs.cron,
		TokenMiddleware: c.tokenMiddleware,
		TriggerLimiter:  c.triggerLimiter,
	})

	routes.SetupEmailRoutes(api, &routes.EmailRouteConfig{
		EmailHandler:    c.hdlrs.email,
		TokenMiddleware: c.tokenMiddleware,
		Limiter:         c.triggerLimiter,
	})
}

func ginMode(mode string) string {
	switch mode {
	case gin.ReleaseMode, constants.EnvProduction:
		return gin.ReleaseMode
	case gin.TestMode:
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}
