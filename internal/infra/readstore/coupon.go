package readstore

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"storefront-checkout/internal/infra"
	"storefront-checkout/internal/infra/db"
	"storefront-checkout/internal/pkg/pgconv"
	"storefront-checkout/internal/usecase/shared"
)

type CouponReadStore struct {
	db db.DBTX
}

func NewCouponReadStore(dbtx db.DBTX) *CouponReadStore {
	return &CouponReadStore{db: dbtx}
}

const findCouponByCodeQuery = `
SELECT id, code, discount_type, discount_value, min_amount_cents,
       max_discount_cents, starts_at, ends_at, status, stackable,
       usage_limit, used_count, max_usage_per_user
FROM coupons
WHERE code = $1
`

const countCouponUsageQuery = `
SELECT count(*)
FROM coupon_usage
WHERE coupon_id = $1 AND customer_id = $2
`

func (r *CouponReadStore) FindByCode(ctx context.Context, code string) (*shared.CouponSnapshot, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))

	var (
		c             shared.CouponSnapshot
		discountValue pgtype.Numeric
		maxDiscount   pgtype.Int8
		startsAt      pgtype.Timestamptz
		endsAt        pgtype.Timestamptz
		usageLimit    pgtype.Int4
	)
	err := r.db.QueryRow(ctx, findCouponByCodeQuery, normalized).Scan(
		&c.ID,
		&c.Code,
		&c.DiscountType,
		&discountValue,
		&c.MinAmountCents,
		&maxDiscount,
		&startsAt,
		&endsAt,
		&c.Status,
		&c.Stackable,
		&usageLimit,
		&c.UsedCount,
		&c.MaxUsagePerUser,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon by code", err)
	}

	if c.DiscountValue, err = pgconv.Float64FromNumeric(discountValue); err != nil {
		return nil, infra.WrapRepoErr("invalid coupon discount value", err)
	}
	c.MaxDiscountCents = pgconv.Int64PtrFromPgtype(maxDiscount)
	c.StartsAt = pgconv.TimePtrFromPgtype(startsAt)
	c.EndsAt = pgconv.TimePtrFromPgtype(endsAt)
	c.UsageLimit = pgconv.Int32PtrFromPgtype(usageLimit)

	return &c, nil
}

func (r *CouponReadStore) CountUsageByCustomer(ctx context.Context, couponID, customerID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, countCouponUsageQuery, couponID, customerID).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count coupon usage", err)
	}
	return count, nil
}
