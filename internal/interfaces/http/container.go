package http

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	jobrundto "github.com/reminderly/reminderly/internal/application/jobrun/dto"
	jobrunusecases "github.com/reminderly/reminderly/internal/application/jobrun/usecases"
	"github.com/reminderly/reminderly/internal/domain/jobrun"
	"github.com/reminderly/reminderly/internal/infrastructure/config"
	"github.com/reminderly/reminderly/internal/infrastructure/scheduler"
	"github.com/reminderly/reminderly/internal/interfaces/http/middleware"
	"github.com/reminderly/reminderly/internal/shared/biztime"
	"github.com/reminderly/reminderly/internal/shared/logger"
)

// Container holds the infrastructure components, repositories, use cases and
// handlers of one process. The server, worker and run commands all build one;
// only the server mounts the HTTP engine.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client
	clock  biztime.Clock

	repos *repositories
	svcs  *services
	ucs   *useCases
	hdlrs *handlerSet

	// Middlewares
	tokenMiddleware *middleware.APITokenMiddleware
	triggerLimiter  *middleware.RateLimiter

	schedulerManager *scheduler.SchedulerManager
}

// NewContainer wires every dependency. It fails when a configured backend
// (Redis, the email provider) cannot be initialised.
func NewContainer(ctx context.Context, db *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	gin.SetMode(ginMode(cfg.Server.Mode))

	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
		clock:  biztime.SystemClock{},
	}

	// Section 1: Infrastructure - Redis, Repositories, Email, Locks
	if err := c.initInfrastructure(ctx); err != nil {
		return nil, err
	}

	// Section 2: Use cases
	c.initUseCases()

	// Section 3: Handlers and middlewares
	c.initHandlers()

	return c, nil
}

// Engine returns the gin engine with every route registered.
func (c *Container) Engine() *gin.Engine {
	return c.engine
}

// RunJob executes one batch job synchronously with a manual trigger.
func (c *Container) RunJob(ctx context.Context, jobType jobrun.JobType, today *time.Time) (*jobrundto.JobRunResponse, error) {
	return c.ucs.runJob.Execute(ctx, jobrunusecases.RunJobCommand{
		JobType: jobType,
		Trigger: jobrun.TriggerManual,
		Today:   today,
	})
}

// StartScheduler registers the cron jobs and starts the scheduler.
func (c *Container) StartScheduler() error {
	if c.schedulerManager != nil {
		return nil
	}

	mgr, err := scheduler.NewSchedulerManager(c.log.Named("scheduler"))
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}
	if err := mgr.RegisterReminderJobs(c.ucs.runJob, scheduler.ReminderSchedule{
		RecurringCron: c.cfg.Scheduler.RecurringCron,
		DispatchCron:  c.cfg.Scheduler.DispatchCron,
		RunTimeout:    c.cfg.Scheduler.RunTimeout,
	}); err != nil {
		return err
	}

	mgr.Start()
	c.schedulerManager = mgr
	return nil
}

// Shutdown stops the scheduler, waiting for in-flight runs, and closes Redis.
func (c *Container) Shutdown() {
	if c.schedulerManager != nil {
		if err := c.schedulerManager.Stop(); err != nil {
			c.log.Errorw("failed to stop scheduler", "error", err)
		}
	}

	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Warnw("failed to close redis client", "error", err)
		}
	}
}
