package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	jobrunusecases "github.com/reminderly/reminderly/internal/application/jobrun/usecases"
	"github.com/reminderly/reminderly/internal/domain/jobrun"
	"github.com/reminderly/reminderly/internal/shared/biztime"
	"github.com/reminderly/reminderly/internal/shared/errors"
	"github.com/reminderly/reminderly/internal/shared/logger"
	"github.com/reminderly/reminderly/internal/shared/utils"
)

// CronHandler exposes manual triggers for the batch jobs and their run log.
type CronHandler struct {
	runJobUC   RunJobExecutor
	listRunsUC ListRunsExecutor
	logger     logger.Interface
}

func NewCronHandler(runJobUC RunJobExecutor, listRunsUC ListRunsExecutor, logger logger.Interface) *CronHandler {
	return &CronHandler{runJobUC: runJobUC, listRunsUC: listRunsUC, logger: logger}
}

// ProcessReminders handles POST /api/cron/process-reminders
//
// @Summary Run the reminder dispatch job now
// @Description Runs synchronously. The optional date (YYYY-MM-DD) replaces today; an overlapping run answers 409.
// @Tags Cron
// @Accept json
// @Produce json
// @Security ApiToken
// @Param request body TriggerJobRequest false "Date override"
// @Param date query string false "Date override (YYYY-MM-DD)"
// @Success 200 <class 'object'> utils.APIResponse{data=dto.JobRunResponse}
// @Failure 400 <class 'object'> utils.APIResponse
// @Failure 401 <class 'object'> utils.APIResponse
// @Failure 409 <class 'object'> utils.APIResponse
// @Failure 429 <class 'object'> utils.APIResponse
// @Failure 500 <class 'object'> utils.APIResponse{data=dto.JobRunResponse}
// @Router /cron/process-reminders [post]
func (h *CronHandler) ProcessReminders(c *gin.Context) {
	h.trigger(c, jobrun.JobTypeProcessReminders)
}

// ProcessRecurring handles POST /api/cron/process-recurring
//
// @Summary Run the recurring advancement job now
// @Description Runs synchronously. The optional date (YYYY-MM-DD) replaces today; an overlapping run answers 409.
// @Tags Cron
// @Accept json
// @Produce json
// @Security ApiToken
// @Param request body TriggerJobRequest false "Date override"
// @Param date query string false "Date override (YYYY-MM-DD)"
// @Success 200 <class 'object'> utils.APIResponse{data=dto.JobRunResponse}
// @Failure 400 <class 'object'> utils.APIResponse
// @Failure 401 <class 'object'> utils.APIResponse
// @Failure 409 <class 'object'> utils.APIResponse
// @Failure 429 <class 'object'> utils.APIResponse
// @Failure 500 <class 'object'> utils.APIResponse{data=dto.JobRunResponse}
// @Router /cron/process-recurring [post]
func (h *CronHandler) ProcessRecurring(c *gin.Context) {
	h.trigger(c, jobrun.JobTypeProcessRecurring)
}

// ListLogs handles GET /api/cron/logs?limit=&type=
//
// @Summary List job runs
// @Tags Cron
// @Produce json
// @Security ApiToken
// @Param limit query int false "Maximum rows, default 20"
// @Param type query string false "process_reminders or process_recurring"
// @Success 200 {object} utils.APIResponse{data=[]dto.JobRunResponse}
// @Failure 400 {object} utils.APIResponse
// @Router /cron/logs [get]
func (h *CronHandler) ListLogs(c *gin.Context) {
	q := jobrunusecases.ListRunsQuery{JobType: c.Query("type")}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			utils.ErrorResponseWithError(c, errors.NewValidationError("limit must be a positive integer", raw))
			return
		}
		q.Limit = limit
	}

	result, err := h.listRunsUC.Execute(c.Request.Context(), q)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// trigger runs the job synchronously. The date override may come from the
// JSON body or the query string; overlapping runs answer 409.
func (h *CronHandler) trigger(c *gin.Context, jobType jobrun.JobType) {
	var req TriggerJobRequest
	if c.Request.ContentLength > 0 {
		if err := bindJSON(c, &req); err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
	}
	if req.Date == "" {
		req.Date = c.Query("date")
	}

	cmd := jobrunusecases.RunJobCommand{JobType: jobType, Trigger: jobrun.TriggerManual}
	if req.Date != "" {
		today, err := biztime.ParseDate(req.Date)
		if err != nil {
			utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid date, expected YYYY-MM-DD", req.Date))
			return
		}
		cmd.Today = &today
	}

	h.logger.Infow("manual job trigger", "job_type", jobType, "date", req.Date, "client_ip", c.ClientIP())

	run, err := h.runJobUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		if run == nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		// the run was recorded but the job failed
		c.JSON(http.StatusInternalServerError, utils.APIResponse{
			Success: false,
			Data:    run,
			Error: &utils.ErrorInfo{
				Type:    string(errors.ErrorTypeInternal),
				Message: "job run failed",
				Details: run.Error,
			},
		})
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Job run completed", run)
}

// HealthHandler answers liveness checks.
type HealthHandler struct {
	startedAt time.Time
	version   string
}

func NewHealthHandler(version string) *HealthHandler {
	return &HealthHandler{startedAt: time.Now(), version: version}
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": h.version,
		"uptime":  time.Since(h.startedAt).Round(time.Second).String(),
	})
}
