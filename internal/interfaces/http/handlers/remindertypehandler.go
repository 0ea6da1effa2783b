package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reminderly/reminderly/internal/shared/logger"
	"github.com/reminderly/reminderly/internal/shared/utils"
)

type ReminderTypeHandler struct {
	service reminderTypeService
	logger  logger.Interface
}

func NewReminderTypeHandler(service reminderTypeService, logger logger.Interface) *ReminderTypeHandler {
	return &ReminderTypeHandler{service: service, logger: logger}
}

// CreateReminderType handles POST /api/reminder-types
func (h *ReminderTypeHandler) CreateReminderType(c *gin.Context) {
	var req CreateReminderTypeRequest
	if err := bindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for create reminder type", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.Create(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Reminder type created successfully")
}

// GetReminderType handles GET /api/reminder-types/:id
func (h *ReminderTypeHandler) GetReminderType(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "reminder type")
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

// ListReminderTypes handles GET /api/reminder-types
func (h *ReminderTypeHandler) ListReminderTypes(c *gin.Context) {
	result, err := h.service.List(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateReminderType handles PATCH /api/reminder-types/:id
func (h *ReminderTypeHandler) UpdateReminderType(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "reminder type")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateReminderTypeRequest
	if err := bindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for update reminder type", "id", id, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.Update(c.Request.Context(), req.ToCommand(id))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Reminder type updated successfully", result)
}

// DeleteReminderType handles DELETE /api/reminder-types/:id
// Types still referenced by reminders answer 409.
func (h *ReminderTypeHandler) DeleteReminderType(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "reminder type")
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
