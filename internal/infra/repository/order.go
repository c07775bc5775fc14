package repository

import (
	"context"

	"github.com/google/uuid"

	"storefront-checkout/internal/domain/order"
	"storefront-checkout/internal/infra/db"
	"storefront-checkout/internal/pkg/pgconv"
)

type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

const insertOrderQuery = `
INSERT INTO orders (
    id, customer_id, source, status, payment_method, shipping_address_id,
    subtotal_cents, product_discount_cents, offer_discount_cents,
    coupon_discount_cents, shipping_cents, tax_cents, total_cents,
    coupon_code, coupon_type, coupon_value, coupon_discount_applied_cents
) VALUES (
    $1, $2, $3, $4, $5, $6,
    $7, $8, $9, $10, $11, $12, $13,
    $14, $15, $16, $17
)
RETURNING id
`

const insertOrderItemQuery = `
INSERT INTO order_items (
    order_id, product_id, variant_id, name, unit_price_cents, quantity,
    offer_discount_per_unit_cents, offer_discount_cents, applied_offer_id,
    line_total_cents
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
`

// Create persists the order header with its embedded pricing snapshot and
// every line in the same transaction the caller provides.
func (r *OrderRepository) Create(ctx context.Context, dbtx db.DBTX, o *order.Order) (uuid.UUID, error) {
	snap := o.Snapshot()

	var (
		couponCode      *string
		couponType      *string
		couponValue     *float64
		discountApplied *int64
	)
	if snap.Coupon != nil {
		code := snap.Coupon.Code.String()
		kind := string(snap.Coupon.Type)
		value := snap.Coupon.DiscountValue
		applied := snap.Coupon.DiscountApplied
		couponCode = &code
		couponType = &kind
		couponValue = &value
		discountApplied = &applied
	}

	var orderID uuid.UUID
	err := dbtx.QueryRow(ctx, insertOrderQuery,
		o.ID(),
		o.CustomerID(),
		string(o.Source()),
		o.Status().String(),
		string(o.PaymentMethod()),
		o.ShippingAddressID(),
		snap.Subtotal,
		snap.ProductDiscount,
		snap.OfferDiscount,
		snap.CouponDiscount,
		snap.ShippingCharge,
		snap.Tax,
		snap.Total,
		couponCode,
		couponType,
		couponValue,
		pgconv.Int64PtrToPgtype(discountApplied),
	).Scan(&orderID)
	if err != nil {
		return uuid.Nil, wrapPgErr("failed to create order", err)
	}

	for _, line := range o.Lines() {
		_, err := dbtx.Exec(ctx, insertOrderItemQuery,
			orderID,
			line.ProductID,
			line.VariantID,
			line.Name,
			line.OriginalUnitPrice,
			line.Quantity,
			line.OfferDiscountPerUnit,
			line.OfferDiscountAmount,
			pgconv.UUIDPtrToPgtype(line.AppliedOfferID),
			line.LineFinalAmount,
		)
		if err != nil {
			return uuid.Nil, wrapPgErr("failed to create order item", err)
		}
	}

	return orderID, nil
}
