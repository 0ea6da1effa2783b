package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	employeeusecases "github.com/reminderly/reminderly/internal/application/employee/usecases"
	"github.com/reminderly/reminderly/internal/shared/logger"
	"github.com/reminderly/reminderly/internal/shared/utils"
)

type EmployeeHandler struct {
	service employeeService
	logger  logger.Interface
}

func NewEmployeeHandler(service employeeService, logger logger.Interface) *EmployeeHandler {
	return &EmployeeHandler{service: service, logger: logger}
}

// CreateEmployee handles POST /api/employees
func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var req EmployeeRequest
	if err := bindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for create employee", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.Create(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Employee created successfully")
}

// GetEmployee handles GET /api/employees/:id
func (h *EmployeeHandler) GetEmployee(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "employee")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListEmployees handles GET /api/employees
// Query: page, page_size, department, search
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	p := utils.ParsePagination(c)

	items, total, err := h.service.List(c.Request.Context(), employeeusecases.ListEmployeesQuery{
		Page:       p.Page,
		PageSize:   p.PageSize,
		Department: c.Query("department"),
		Search:     c.Query("search"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, items, total, p.Page, p.PageSize)
}

// UpdateEmployee handles PUT /api/employees/:id
func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "employee")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req EmployeeRequest
	if err := bindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for update employee", "id", id, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.Update(c.Request.Context(), id, req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Employee updated successfully", result)
}

// DeleteEmployee handles DELETE /api/employees/:id
func (h *EmployeeHandler) DeleteEmployee(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "employee")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
