package repository

import (
	"context"

	"github.com/google/uuid"

	"storefront-checkout/internal/infra/db"
)

type CartRepository struct{}

func NewCartRepository() *CartRepository {
	return &CartRepository{}
}

const clearCartItemsQuery = `
DELETE FROM cart_items WHERE cart_id = $1
`

const touchCartQuery = `
UPDATE carts SET updated_at = now() WHERE id = $1
`

// Clear empties the cart but keeps the cart row; the next add-to-cart reuses it.
func (r *CartRepository) Clear(ctx context.Context, dbtx db.DBTX, cartID uuid.UUID) error {
	if _, err := dbtx.Exec(ctx, clearCartItemsQuery, cartID); err != nil {
		return wrapPgErr("failed to clear cart items", err)
	}
	if _, err := dbtx.Exec(ctx, touchCartQuery, cartID); err != nil {
		return wrapPgErr("failed to touch cart", err)
	}
	return nil
}
