package readstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"storefront-checkout/internal/infra"
	"storefront-checkout/internal/infra/db"
	"storefront-checkout/internal/pkg/pgconv"
	"storefront-checkout/internal/usecase/shared"
)

type OfferReadStore struct {
	db db.DBTX
}

func NewOfferReadStore(dbtx db.DBTX) *OfferReadStore {
	return &OfferReadStore{db: dbtx}
}

// Status and window are filtered in SQL to keep the candidate set small; the
// evaluator re-checks both, so a row that slips through a clock skew between
// the database and the app is still handled correctly.
const findApplicableOffersQuery = `
SELECT id, name, discount_type, discount_value, min_purchase_cents,
       max_discount_cents, priority, starts_at, ends_at, status, stackable,
       product_ids, category_ids
FROM offers
WHERE status = 'active'
  AND starts_at <= now()
  AND ends_at > now()
  AND (product_ids && $1::uuid[] OR category_ids && $2::uuid[])
ORDER BY priority DESC, id
`

func (r *OfferReadStore) FindApplicable(ctx context.Context, productIDs, categoryIDs []uuid.UUID) ([]shared.OfferSnapshot, error) {
	rows, err := r.db.Query(ctx, findApplicableOffersQuery, productIDs, categoryIDs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list applicable offers", err)
	}
	defer rows.Close()

	var offers []shared.OfferSnapshot
	for rows.Next() {
		var (
			o             shared.OfferSnapshot
			discountValue pgtype.Numeric
			maxDiscount   pgtype.Int8
		)
		if err := rows.Scan(
			&o.ID,
			&o.Name,
			&o.DiscountType,
			&discountValue,
			&o.MinPurchaseCents,
			&maxDiscount,
			&o.Priority,
			&o.StartsAt,
			&o.EndsAt,
			&o.Status,
			&o.Stackable,
			&o.ProductIDs,
			&o.CategoryIDs,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan offer", err)
		}
		if o.DiscountValue, err = pgconv.Float64FromNumeric(discountValue); err != nil {
			return nil, infra.WrapRepoErr("invalid offer discount value", err)
		}
		o.MaxDiscountCents = pgconv.Int64PtrFromPgtype(maxDiscount)
		offers = append(offers, o)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read offers", err)
	}

	return offers, nil
}
