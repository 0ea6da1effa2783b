package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	reminderusecases "github.com/reminderly/reminderly/internal/application/reminder/usecases"
	"github.com/reminderly/reminderly/internal/shared/logger"
	"github.com/reminderly/reminderly/internal/shared/utils"
)

type ReminderHandler struct {
	createUC     CreateReminderExecutor
	getUC        GetReminderExecutor
	listUC       ListRemindersExecutor
	updateUC     UpdateReminderExecutor
	deleteUC     DeleteReminderExecutor
	completeUC   CompleteReminderExecutor
	sendNowUC    SendReminderNowExecutor
	bulkCreateUC BulkCreateRemindersExecutor
	bulkSendUC   BulkSendRemindersExecutor
	logger       logger.Interface
}

func NewReminderHandler(
	createUC CreateReminderExecutor,
	getUC GetReminderExecutor,
	listUC ListRemindersExecutor,
	updateUC UpdateReminderExecutor,
	deleteUC DeleteReminderExecutor,
	completeUC CompleteReminderExecutor,
	sendNowUC SendReminderNowExecutor,
	bulkCreateUC BulkCreateRemindersExecutor,
	bulkSendUC BulkSendRemindersExecutor,
	logger logger.Interface,
) *ReminderHandler {
	return &ReminderHandler{
		createUC:     createUC,
		getUC:        getUC,
		listUC:       listUC,
		updateUC:     updateUC,
		deleteUC:     deleteUC,
		completeUC:   completeUC,
		sendNowUC:    sendNowUC,
		bulkCreateUC: bulkCreateUC,
		bulkSendUC:   bulkSendUC,
		logger:       logger,
	}
}

// CreateReminder handles POST /api/reminders
//
// @Summary Create reminder
// @Tags Reminders
// @Accept json
// @Produce json
// @Param request body CreateReminderRequest true "Reminder"
// @Success 201 {object} utils.APIResponse{data=dto.ReminderResponse}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /reminders [post]
func (h *ReminderHandler) CreateReminder(c *gin.Context) {
	var req CreateReminderRequest
	if err := bindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for create reminder", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Reminder created successfully")
}

// BulkCreateReminders handles POST /api/reminders/bulk
//
// @Summary Create several reminders for one employee
// @Description All reminders are stored in one transaction; one invalid item rejects the request.
// @Tags Reminders
// @Accept json
// @Produce json
// @Param request body BulkCreateRemindersRequest true "Employee and reminders"
// @Success 201 {object} utils.APIResponse{data=[]dto.ReminderResponse}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /reminders/bulk [post]
func (h *ReminderHandler) BulkCreateReminders(c *gin.Context) {
	var req BulkCreateRemindersRequest
	if err := bindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for bulk create reminders", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.bulkCreateUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Reminders created successfully")
}

// GetReminder handles GET /api/reminders/:id
func (h *ReminderHandler) GetReminder(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "reminder")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListReminders handles GET /api/reminders
// Query: page, page_size, employee_id, reminder_type_id, status, due_from, due_to
func (h *ReminderHandler) ListReminders(c *gin.Context) {
	p := utils.ParsePagination(c)

	employeeID, err := utils.ParseOptionalUintQuery(c, "employee_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	typeID, err := utils.ParseOptionalUintQuery(c, "reminder_type_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items, total, err := h.listUC.Execute(c.Request.Context(), reminderusecases.ListRemindersQuery{
		Page:           p.Page,
		PageSize:       p.PageSize,
		EmployeeID:     employeeID,
		ReminderTypeID: typeID,
		Status:         c.Query("status"),
		DueFrom:        c.Query("due_from"),
		DueTo:          c.Query("due_to"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, items, total, p.Page, p.PageSize)
}

// UpdateReminder handles PATCH /api/reminders/:id
//
// @Summary Update reminder
// @Description Changes due date, notes or priority. Dispatch history is kept, so intervals already sent are not sent again.
// @Tags Reminders
// @Accept json
// @Produce json
// @Param id path int true "Reminder ID"
// @Param request body UpdateReminderRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse{data=dto.ReminderResponse}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /reminders/{id} [patch]
func (h *ReminderHandler) UpdateReminder(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "reminder")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateReminderRequest
	if err := bindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for update reminder", "id", id, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), req.ToCommand(id))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Reminder updated successfully", result)
}

// DeleteReminder handles DELETE /api/reminders/:id
func (h *ReminderHandler) DeleteReminder(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "reminder")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// CompleteReminder handles POST /api/reminders/:id/complete
//
// @Summary Mark reminder completed
// @Description The body is optional. A completed reminder is never dispatched again.
// @Tags Reminders
// @Accept json
// @Produce json
// @Param id path int true "Reminder ID"
// @Param request body CompleteReminderRequest false "Completion details"
// @Success 200 {object} utils.APIResponse{data=dto.ReminderResponse}
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /reminders/{id}/complete [post]
func (h *ReminderHandler) CompleteReminder(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "reminder")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CompleteReminderRequest
	if c.Request.ContentLength > 0 {
		if err := bindJSON(c, &req); err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
	}

	result, err := h.completeUC.Execute(c.Request.Context(), reminderusecases.CompleteReminderCommand{
		ReminderID:  id,
		CompletedBy: req.CompletedBy,
		Notes:       req.Notes,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Reminder marked as completed", result)
}

// SendReminder handles POST /api/reminders/:id/send
//
// @Summary Send reminder now
// @Description Sends regardless of lead times. Manual sends are logged but do not use up a scheduled interval.
// @Tags Reminders
// @Produce json
// @Param id path int true "Reminder ID"
// @Success 200 {object} utils.APIResponse{data=dto.DispatchEntry}
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /reminders/{id}/send [post]
func (h *ReminderHandler) SendReminder(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "reminder")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.sendNowUC.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Reminder dispatched", result)
}

// BulkSendReminders handles POST /api/reminders/bulk/send
//
// @Summary Send several reminders now
// @Description Each reminder is sent on its own; failures are reported per item.
// @Tags Reminders
// @Accept json
// @Produce json
// @Param request body BulkSendRemindersRequest true "Reminder IDs"
// @Success 200 {object} utils.APIResponse{data=dto.BulkSendResult}
// @Failure 400 {object} utils.APIResponse
// @Router /reminders/bulk/send [post]
func (h *ReminderHandler) BulkSendReminders(c *gin.Context) {
	var req BulkSendRemindersRequest
	if err := bindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.logger.Infow("bulk reminder send requested", "count", len(req.ReminderIDs), "client_ip", c.ClientIP())

	result, err := h.bulkSendUC.Execute(c.Request.Context(), req.ReminderIDs)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Bulk send finished", result)
}

// ListDispatchLogs handles GET /api/reminders/:id/logs
func (h *ReminderHandler) ListDispatchLogs(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "reminder")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.ListLogs(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
