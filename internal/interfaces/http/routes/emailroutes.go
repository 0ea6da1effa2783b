package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/reminderly/reminderly/internal/interfaces/http/handlers"
	"github.com/reminderly/reminderly/internal/interfaces/http/middleware"
)

type EmailRouteConfig struct {
	EmailHandler    *handlers.EmailHandler
	TokenMiddleware *middleware.APITokenMiddleware
	// Limiter is optional.
	Limiter *middleware.RateLimiter
}

func SetupEmailRoutes(api *gin.RouterGroup, config *EmailRouteConfig) {
	email := api.Group("/email")
	email.Use(config.TokenMiddleware.RequireToken())
	{
		email.POST("/test", limited(config.Limiter, config.EmailHandler.SendTestEmail)...)
	}
}
