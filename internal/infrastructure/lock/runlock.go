package lock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/reminderly/reminderly/internal/domain/jobrun"
	"github.com/reminderly/reminderly/internal/shared/logger"
)

const (
	// runLockKeyPrefix is the prefix for all batch job lock keys
	runLockKeyPrefix = "reminderly:job_lock:"
	releaseTimeout   = 3 * time.Second
)

// releaseScript deletes the key only while it still holds our token, so an
// expired lock re-taken by another instance is never removed by us.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisRunLock provides cross-instance exclusion for batch jobs.
type RedisRunLock struct {
	client *redis.Client
	logger logger.Interface
}

// NewRedisRunLock creates a new RedisRunLock instance
func NewRedisRunLock(client *redis.Client, logger logger.Interface) *RedisRunLock {
	return &RedisRunLock{client: client, logger: logger}
}

// buildKey builds the Redis key for a job lock
// Format: reminderly:job_lock:{job_type}
func (l *RedisRunLock) buildKey(jobType jobrun.JobType) string {
	return runLockKeyPrefix + jobType.String()
}

// TryAcquire takes the lock with SetNX. The TTL bounds how long a crashed
// holder can block other instances.
func (l *RedisRunLock) TryAcquire(ctx context.Context, jobType jobrun.JobType, ttl time.Duration) (func(), bool, error) {
	key := l.buildKey(jobType)
	token := uuid.NewString()

	acquired, err := l.client.SetNX(ctx, key, token, ttl).Result()
	if err != nil {
		return nil, false, fmt.Errorf("failed to acquire job lock: %w", err)
	}
	if !acquired {
		return nil, false, nil
	}

	release := func() {
		releaseCtx, cancel := context.WithTimeout(context.Background(), releaseTimeout)
		defer cancel()
		if err := releaseScript.Run(releaseCtx, l.client, []string{key}, token).Err(); err != nil {
			l.logger.Warnw("failed to release job lock", "job_type", jobType, "error", err)
		}
	}
	return release, true, nil
}

// LocalRunLock is the single-process fallback used when Redis is disabled.
type LocalRunLock struct {
	mu   sync.Mutex
	held map[jobrun.JobType]time.Time
	now  func() time.Time
}

func NewLocalRunLock() *LocalRunLock {
	return &LocalRunLock{
		held: make(map[jobrun.JobType]time.Time),
		now:  time.Now,
	}
}

func (l *LocalRunLock) TryAcquire(_ context.Context, jobType jobrun.JobType, ttl time.Duration) (func(), bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if expires, ok := l.held[jobType]; ok && now.Before(expires) {
		return nil, false, nil
	}
	expires := now.Add(ttl)
	l.held[jobType] = expires

	var once sync.Once
	release := func() {
		once.Do(func() {
			l.mu.Lock()
			defer l.mu.Unlock()
			if l.held[jobType].Equal(expires) {
				delete(l.held, jobType)
			}
		})
	}
	return release, true, nil
}
