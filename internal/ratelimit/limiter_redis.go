package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type redisLimiter struct {
	client redis.Cmdable
	cfg    Config
	now    func() time.Time
}

// NewRedisLimiter counts requests in Redis with an INCR and EXPIRE pipeline
// per window key, so every server instance shares the same counters.
func NewRedisLimiter(client redis.Cmdable, cfg Config) Limiter {
	if cfg.Limit <= 0 {
		return Unlimited()
	}
	return &redisLimiter{client: client, cfg: cfg, now: time.Now}
}

func (l *redisLimiter) Allow(ctx context.Context, key string) (Result, error) {
	start := windowStart(l.now(), l.cfg.Window)
	windowKey := fmt.Sprintf("%s:%s:%d", l.cfg.KeyPrefix, key, start.Unix())

	pipe := l.client.Pipeline()
	incr := pipe.Incr(ctx, windowKey)
	pipe.Expire(ctx, windowKey, l.cfg.Window)
	if _, err := pipe.Exec(ctx); err != nil {
		return Result{}, fmt.Errorf("rate limit pipeline: %w", err)
	}

	return result(l.cfg, int(incr.Val()), start), nil
}
