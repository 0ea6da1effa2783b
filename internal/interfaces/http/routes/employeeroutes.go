package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/reminderly/reminderly/internal/interfaces/http/handlers"
)

type EmployeeRouteConfig struct {
	EmployeeHandler *handlers.EmployeeHandler
}

func SetupEmployeeRoutes(api *gin.RouterGroup, config *EmployeeRouteConfig) {
	employees := api.Group("/employees")
	{
		employees.POST("", config.EmployeeHandler.CreateEmployee)
		employees.GET("", config.EmployeeHandler.ListEmployees)
		employees.GET("/:id", config.EmployeeHandler.GetEmployee)
		employees.PUT("/:id", config.EmployeeHandler.UpdateEmployee)
		employees.DELETE("/:id", config.EmployeeHandler.DeleteEmployee)
	}
}
