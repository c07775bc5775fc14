package components

import (
	"storefront-checkout/internal/infra/cache"
	"storefront-checkout/internal/infra/db"
	"storefront-checkout/internal/infra/readstore"
	"storefront-checkout/internal/infra/uow"
	"storefront-checkout/internal/pkg/config"
	"storefront-checkout/internal/usecase/queries"
	"storefront-checkout/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		NewPreviewReads,
		fx.Annotate(
			readstore.NewOrderReadStore,
			fx.As(new(queries.OrderViewRepo)),
		),
		fx.Annotate(
			readstore.NewCustomerReadStore,
			fx.As(new(queries.CustomerReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

// NewPreviewReads is the read path handed to the preview side. When Redis is
// configured, coupon terms are served through the cache wrapper; commit always
// goes through tx.Reads() and never sees cached data.
func NewPreviewReads(u shared.UnitOfWork, rdb *redis.Client, cfg config.Config) shared.CommandReads {
	reads := u.CommandReads()
	if rdb == nil {
		return reads
	}
	return cache.NewCachedCommandReads(reads, rdb, cfg.Redis.CouponTTL)
}
