package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reminderly/reminderly/internal/shared/logger"
	"github.com/reminderly/reminderly/internal/shared/utils"
)

type RecurringHandler struct {
	service recurringService
	logger  logger.Interface
}

func NewRecurringHandler(service recurringService, logger logger.Interface) *RecurringHandler {
	return &RecurringHandler{service: service, logger: logger}
}

// CreateRecurring handles POST /api/recurring
func (h *RecurringHandler) CreateRecurring(c *gin.Context) {
	var req RecurringRequest
	if err := bindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for create recurring definition", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.Create(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Recurring definition created successfully")
}

func (h *RecurringHandler) GetRecurring(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "recurring definition")
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

func (h *RecurringHandler) ListRecurring(c *gin.Context) {
	result, err := h.service.List(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateRecurring handles PUT /api/recurring/:id
func (h *RecurringHandler) UpdateRecurring(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "recurring definition")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req RecurringRequest
	if err := bindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.Update(c.Request.Context(), id, req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Recurring definition updated successfully", result)
}

func (h *RecurringHandler) DeleteRecurring(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "recurring definition")
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
