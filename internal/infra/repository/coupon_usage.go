package repository

import (
	"context"

	"github.com/google/uuid"

	"storefront-checkout/internal/infra"
	"storefront-checkout/internal/infra/db"
	"storefront-checkout/internal/infra/readstore"
	"storefront-checkout/internal/pkg/pgconv"
	"storefront-checkout/internal/usecase/shared"
)

type CouponUsageRepository struct{}

func NewCouponUsageRepository() *CouponUsageRepository {
	return &CouponUsageRepository{}
}

// The global cap check and the increment are one statement: the UPDATE takes
// the coupon row lock, so concurrent commits serialize here and each one sees
// the counter already moved by the previous winner. Matching zero rows means
// the cap is exhausted. Never SELECT the counter first.
const incrementCouponUsageQuery = `
UPDATE coupons
SET used_count = used_count + 1,
    updated_at = now()
WHERE id = $1
  AND (usage_limit IS NULL OR used_count < usage_limit)
RETURNING used_count, max_usage_per_user
`

const couponExistsQuery = `
SELECT EXISTS (SELECT 1 FROM coupons WHERE id = $1)
`

const insertCouponUsageQuery = `
INSERT INTO coupon_usage (coupon_id, customer_id, order_id, discount_applied_cents)
VALUES ($1, $2, $3, $4)
`

func (r *CouponUsageRepository) TryRecordUsage(
	ctx context.Context,
	dbtx db.DBTX,
	couponID, customerID, orderID uuid.UUID,
	discountAppliedCents int64,
) (shared.CouponUsageResult, error) {
	var (
		newUsedCount    int32
		maxUsagePerUser int32
	)
	err := dbtx.QueryRow(ctx, incrementCouponUsageQuery, couponID).Scan(&newUsedCount, &maxUsagePerUser)
	if err != nil {
		if pgconv.IsNoRows(err) {
			exists, existsErr := r.couponExists(ctx, dbtx, couponID)
			if existsErr != nil {
				return shared.CouponUsageResult{}, existsErr
			}
			if !exists {
				return shared.CouponUsageResult{}, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
			}
			return shared.CouponUsageResult{Limit: shared.UsageLimitGlobal}, nil
		}
		return shared.CouponUsageResult{}, wrapPgErr("failed to increment coupon usage", err)
	}

	// The per-user count is read while holding the coupon row lock acquired
	// above, so two commits by the same customer cannot both pass this check.
	userUsage, err := readstore.NewCouponReadStore(dbtx).CountUsageByCustomer(ctx, couponID, customerID)
	if err != nil {
		return shared.CouponUsageResult{}, err
	}
	if userUsage >= int64(maxUsagePerUser) {
		return shared.CouponUsageResult{NewUsedCount: newUsedCount, Limit: shared.UsageLimitPerUser}, nil
	}

	_, err = dbtx.Exec(ctx, insertCouponUsageQuery, couponID, customerID, orderID, discountAppliedCents)
	if err != nil {
		return shared.CouponUsageResult{}, wrapPgErr("failed to record coupon usage", err)
	}

	return shared.CouponUsageResult{NewUsedCount: newUsedCount, Limit: shared.UsageLimitNone}, nil
}

func (r *CouponUsageRepository) couponExists(ctx context.Context, dbtx db.DBTX, couponID uuid.UUID) (bool, error) {
	var exists bool
	if err := dbtx.QueryRow(ctx, couponExistsQuery, couponID).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check coupon existence", err)
	}
	return exists, nil
}
