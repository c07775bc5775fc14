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

type CartReadStore struct {
	db db.DBTX
}

func NewCartReadStore(dbtx db.DBTX) *CartReadStore {
	return &CartReadStore{db: dbtx}
}

const findCartByCustomerQuery = `
SELECT id, customer_id
FROM carts
WHERE customer_id = $1
`

const findCartItemsQuery = `
SELECT id, product_id, variant_id, category_id, name,
       unit_price_cents, compare_at_unit_price_cents, quantity
FROM cart_items
WHERE cart_id = $1
ORDER BY created_at, id
`

func (r *CartReadStore) FindByCustomerID(ctx context.Context, customerID uuid.UUID) (*shared.CartSnapshot, error) {
	var cart shared.CartSnapshot
	err := r.db.QueryRow(ctx, findCartByCustomerQuery, customerID).Scan(&cart.ID, &cart.CustomerID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("cart not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find cart", err)
	}

	rows, err := r.db.Query(ctx, findCartItemsQuery, cart.ID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list cart items", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			item      shared.CartItemSnapshot
			compareAt pgtype.Int8
		)
		if err := rows.Scan(
			&item.ID,
			&item.ProductID,
			&item.VariantID,
			&item.CategoryID,
			&item.Name,
			&item.UnitPriceCents,
			&compareAt,
			&item.Quantity,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan cart item", err)
		}
		item.CompareAtUnitPriceCents = pgconv.Int64PtrFromPgtype(compareAt)
		cart.Items = append(cart.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read cart items", err)
	}

	return &cart, nil
}
