package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"weekend-booking/internal/infra/ratelimit"
	"weekend-booking/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const rateLimitKeyPrefix = "weekend-booking:ratelimit"

var RateLimitModule = fx.Module("ratelimit",
	fx.Provide(
		NewRedisClient,
		NewLimiter,
	),
)

// NewRedisClient returns nil when REDIS_ADDR is unset; the limiter then
// falls back to the in-process implementation.
func NewRedisClient(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) *redis.Client {
	rc := cfg.RateLimit
	if rc.RedisAddr == "" {
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     rc.RedisAddr,
		Password: rc.RedisPassword,
		DB:       rc.RedisDB,
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
			defer cancel()
			if err := rdb.Ping(pingCtx).Err(); err != nil {
				// the limiter decides per request whether to fail open
				logger.Warn("redis unreachable at startup", "addr", rc.RedisAddr, "error", err)
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return rdb.Close()
		},
	})
	return rdb
}

func NewLimiter(cfg config.Config, rdb *redis.Client) ratelimit.Limiter {
	return ratelimit.New(cfg.RateLimit, rdb, rateLimitKeyPrefix)
}
