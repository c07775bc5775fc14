package bootstrap

import (
	"context"
	"log/slog"

	"storefront-checkout/internal/infra/cache"
	"storefront-checkout/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedis,
	),
)

// NewRedis returns nil when REDIS_ADDR is unset; the coupon cache is optional
// and consumers must treat a nil client as "cache disabled".
func NewRedis(lc fx.Lifecycle, cfg config.Config) (*redis.Client, error) {
	if cfg.Redis.Addr == "" {
		slog.Info("Redisアドレス未設定のためクーポンキャッシュを無効化します")
		return nil, nil
	}

	client, cleanup, err := cache.Connect(cfg.Redis)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return client, nil
}
