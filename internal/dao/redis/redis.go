package redis

import (
	"context"
	"errors"
	"time"

	"github.com/ebrahimelkordy/siraj-0.0.1/pkg/errorx"

	goredis "github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// redisCache implements AsyncCacheService over a go-redis client plus
// a worker pool for asynchronous maintenance tasks.
type redisCache struct {
	client *goredis.Client
	tasks  chan func()
}

// NewRedisCache wraps client and starts workerNum background workers
// over a task queue of bufferSize.
func NewRedisCache(client *goredis.Client, workerNum, bufferSize int) AsyncCacheService {
	c := &redisCache{
		client: client,
		tasks:  make(chan func(), bufferSize),
	}
	for i := 0; i < workerNum; i++ {
		go c.worker()
	}
	zap.L().Info("cache workers started",
		zap.Int("workers", workerNum), zap.Int("buffer", bufferSize))
	return c
}

func (c *redisCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return errorx.Wrapf(err, errorx.CodeCacheError, "cache set %s", key)
	}
	return nil
}

func (c *redisCache) Get(ctx context.Context, key string) (string, error) {
	val, err := c.client.Get(ctx, key).Result()
	if errors.Is(err, goredis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", errorx.Wrapf(err, errorx.CodeCacheError, "cache get %s", key)
	}
	return val, nil
}

func (c *redisCache) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return errorx.Wrapf(err, errorx.CodeCacheError, "cache delete %s", key)
	}
	return nil
}

// DeleteByPattern scans instead of KEYS so large keyspaces do not block
// the server.
func (c *redisCache) DeleteByPattern(ctx context.Context, pattern string) error {
	iter := c.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return errorx.Wrapf(err, errorx.CodeCacheError, "cache delete pattern %s", pattern)
		}
	}
	if err := iter.Err(); err != nil {
		return errorx.Wrapf(err, errorx.CodeCacheError, "cache scan pattern %s", pattern)
	}
	return nil
}

func (c *redisCache) DeleteByPatterns(ctx context.Context, patterns []string) error {
	for _, pattern := range patterns {
		if err := c.DeleteByPattern(ctx, pattern); err != nil {
			return err
		}
	}
	return nil
}

// SubmitTask queues the action; on a full queue it degrades to running
// synchronously rather than dropping the invalidation.
func (c *redisCache) SubmitTask(action func()) {
	select {
	case c.tasks <- action:
	default:
		zap.L().Warn("cache task queue full, executing synchronously")
		action()
	}
}

// worker consumes tasks until the channel closes and restarts itself
// after a panic.
func (c *redisCache) worker() {
	defer func() {
		if r := recover(); r != nil {
			zap.L().Error("cache worker panic", zap.Any("recover", r))
			go c.worker()
		}
	}()

	for task := range c.tasks {
		if task != nil {
			task()
		}
	}
}
