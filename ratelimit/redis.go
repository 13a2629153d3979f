package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"blog-api/config"
	"blog-api/logger"
)

// RedisLimiter shares fixed-window counters across instances through Redis.
type RedisLimiter struct {
	client redis.Cmdable
	prefix string
	limit  int
	window time.Duration
}

func NewRedisLimiter(client redis.Cmdable, prefix string, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{client: client, prefix: prefix, limit: limit, window: window}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	k := fmt.Sprintf("ratelimit:%s:%s", l.prefix, key)

	n, err := l.client.Incr(ctx, k).Result()
	if err != nil {
		return false, err
	}
	// first hit opens the window
	if n == 1 {
		if err := l.client.Expire(ctx, k, l.window).Err(); err != nil {
			return false, err
		}
	}
	return n <= int64(l.limit), nil
}

// NewRedisClient connects to Redis when cfg.Addr is set. It returns nil and no
// error when Redis is not configured.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	if cfg.Addr == "" {
		return nil, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// verify connection
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		logger.ErrorWithFields("Redis connection failed", logger.Fields{"address": cfg.Addr, "error": err.Error()})
		return nil, err
	}

	logger.InfoWithFields("Redis connection successful", logger.Fields{"address": cfg.Addr})
	return rdb, nil
}
