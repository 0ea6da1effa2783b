package http

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	reminderservices "github.com/reminderly/reminderly/internal/application/reminder/services"
	"github.com/reminderly/reminderly/internal/domain/jobrun"
	"github.com/reminderly/reminderly/internal/infrastructure/config"
	"github.com/reminderly/reminderly/internal/infrastructure/email"
	"github.com/reminderly/reminderly/internal/infrastructure/lock"
	"github.com/reminderly/reminderly/internal/infrastructure/metrics"
	shareddb "github.com/reminderly/reminderly/internal/shared/db"
	"github.com/reminderly/reminderly/internal/shared/services/markdown"
)

// services holds the infrastructure services the use cases depend on.
type services struct {
	sender    email.Sender
	formatter *reminderservices.BodyFormatter
	runLock   jobrun.RunLock
	recorder  *metrics.Recorder
	txManager *shareddb.TransactionManager
}

func (c *Container) initInfrastructure(ctx context.Context) error {
	if c.cfg.Redis.Enabled {
		client, err := initRedis(ctx, c.cfg)
		if err != nil {
			return err
		}
		c.redis = client
		c.log.Infow("Redis connection established successfully", "addr", c.cfg.Redis.GetAddr())
	}

	// a claim may only be taken over once the run that made it has timed out
	c.repos = newRepositories(c.db, c.cfg.Scheduler.RunTimeout+5*time.Minute)

	md := markdown.NewMarkdownService()
	recorder := metrics.NewRecorder()

	sender, err := email.NewSender(ctx, c.cfg.Email, md, c.log.Named("email"))
	if err != nil {
		return fmt.Errorf("failed to create email sender: %w", err)
	}
	c.log.Infow("email sender configured", "provider", sender.Provider())

	// Without Redis the run lock only excludes runs inside this process;
	// the started-row check in the job run use case covers the rest.
	var runLock jobrun.RunLock
	if c.redis != nil {
		runLock = lock.NewRedisRunLock(c.redis, c.log.Named("runlock"))
	} else {
		runLock = lock.NewLocalRunLock()
	}

	c.svcs = &services{
		sender:    email.Instrument(sender, recorder),
		formatter: reminderservices.NewBodyFormatter(md),
		runLock:   runLock,
		recorder:  recorder,
		txManager: shareddb.NewTransactionManager(c.db),
	}
	return nil
}

// initRedis creates and tests the Redis client connection.
func initRedis(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		_ = redisClient.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return redisClient, nil
}
