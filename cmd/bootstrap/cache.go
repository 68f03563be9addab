package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"groombook/internal/infra/cache"
	"groombook/internal/pkg/config"
	"groombook/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewRedisClient,
		NewRosterCache,
	),
)

// NewRedisClient returns nil when REDIS_ADDR is unset. An unreachable redis
// is logged and tolerated; the roster then always comes from the database.
func NewRedisClient(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) *redis.Client {
	client := cache.NewRedisClient(cfg.Redis)
	if client == nil {
		logger.Info("roster cache disabled")
		return nil
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
			defer cancel()
			if err := client.Ping(pingCtx).Err(); err != nil {
				logger.Warn("redis unreachable, roster cache will miss", "addr", cfg.Redis.Addr, "error", err.Error())
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	return client
}

func NewRosterCache(client *redis.Client, cfg config.Config) queries.RosterCache {
	if client == nil {
		return nil
	}
	return cache.NewRosterCache(client, cfg.Redis.RosterCacheTTL)
}
