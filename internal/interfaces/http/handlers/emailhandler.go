package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reminderly/reminderly/internal/shared/logger"
	"github.com/reminderly/reminderly/internal/shared/utils"
)

// EmailHandler lets operators check the configured email provider.
type EmailHandler struct {
	testEmailUC SendTestEmailExecutor
	logger      logger.Interface
}

func NewEmailHandler(testEmailUC SendTestEmailExecutor, logger logger.Interface) *EmailHandler {
	return &EmailHandler{testEmailUC: testEmailUC, logger: logger}
}

// SendTestEmail handles POST /api/email/test
//
// @Summary Send a test email
// @Description Sends a fixed message through the configured provider.
// @Tags Email
// @Accept json
// @Produce json
// @Security ApiToken
// @Param request body TestEmailRequest true "Recipient"
// @Success 200 {object} utils.APIResponse{data=dto.TestEmailResult}
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /email/test [post]
func (h *EmailHandler) SendTestEmail(c *gin.Context) {
	var req TestEmailRequest
	if err := bindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.logger.Infow("test email requested", "client_ip", c.ClientIP())

	result, err := h.testEmailUC.Execute(c.Request.Context(), req.To)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Test email sent", result)
}
