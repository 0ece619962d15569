// Package cache provides the Redis client and cache-aside helpers used by repositories and services.
package cache

import (
	"context"
	"errors"
	"strings"
	"time"

	"devconnector/internal/observability"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/attribute"
)

// instrumentHook counts failed commands and traces each one. redis.Nil is a
// cache miss, not a failure.
type instrumentHook struct{}

func failed(err error) bool {
	return err != nil && !errors.Is(err, redis.Nil)
}

func (instrumentHook) DialHook(next redis.DialHook) redis.DialHook {
	return next
}

func (instrumentHook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		ctx, span := observability.StartClientSpan(ctx, "redis."+cmd.Name(),
			attribute.String("db.system", "redis"))
		err := next(ctx, cmd)
		if failed(err) {
			observability.RedisErrors.WithLabelValues(cmd.Name()).Inc()
			observability.EndSpan(span, err)
			return err
		}
		span.End()
		return err
	}
}

func (instrumentHook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		err := next(ctx, cmds)
		if failed(err) {
			observability.RedisErrors.WithLabelValues("pipeline").Inc()
		}
		return err
	}
}

// NewClient connects to Redis at addr, which may be host:port or a redis:// URL.
// It returns nil when Redis is unreachable; callers then run without a cache.
func NewClient(addr string) *redis.Client {
	var opts *redis.Options
	if strings.Contains(addr, "://") {
		parsed, err := redis.ParseURL(addr)
		if err != nil {
			observability.Logger.Warn("invalid REDIS_URL, continuing without cache", "addr", addr, "error", err)
			return nil
		}
		opts = parsed
	} else {
		opts = &redis.Options{Addr: addr}
	}

	client := redis.NewClient(opts)
	client.AddHook(instrumentHook{})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		observability.Logger.Warn("redis unavailable, continuing without cache", "error", err)
		_ = client.Close()
		return nil
	}
	observability.Logger.Info("redis connected")
	return client
}
