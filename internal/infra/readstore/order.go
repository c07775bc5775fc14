package readstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"storefront-checkout/internal/infra"
	"storefront-checkout/internal/infra/db"
	"storefront-checkout/internal/pkg/pgconv"
	"storefront-checkout/internal/usecase/queries"
)

type OrderReadStore struct {
	db db.DBTX
}

func NewOrderReadStore(dbtx db.DBTX) *OrderReadStore {
	return &OrderReadStore{db: dbtx}
}

const findOrderByIDQuery = `
SELECT id, customer_id, source, status, payment_method, shipping_address_id,
       subtotal_cents, product_discount_cents, offer_discount_cents,
       coupon_discount_cents, shipping_cents, tax_cents, total_cents,
       coupon_code, coupon_type, coupon_value, coupon_discount_applied_cents,
       created_at
FROM orders
WHERE id = $1
`

const findOrderItemsQuery = `
SELECT product_id, variant_id, name, unit_price_cents, quantity,
       offer_discount_cents, applied_offer_id, line_total_cents
FROM order_items
WHERE order_id = $1
ORDER BY created_at, id
`

const listOrdersByCustomerQuery = `
SELECT o.id, o.source, o.status, o.payment_method, o.total_cents,
       (SELECT count(*) FROM order_items oi WHERE oi.order_id = o.id)::int AS item_count,
       o.created_at
FROM orders o
WHERE o.customer_id = $1
ORDER BY o.created_at DESC
LIMIT $2
`

func (r *OrderReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.OrderView, error) {
	var (
		view            queries.OrderView
		couponCode      pgtype.Text
		couponType      pgtype.Text
		couponValue     pgtype.Numeric
		discountApplied pgtype.Int8
	)

	err := r.db.QueryRow(ctx, findOrderByIDQuery, id).Scan(
		&view.ID,
		&view.CustomerID,
		&view.Source,
		&view.Status,
		&view.PaymentMethod,
		&view.ShippingAddressID,
		&view.Subtotal,
		&view.ProductDiscount,
		&view.OfferDiscount,
		&view.CouponDiscount,
		&view.ShippingCharge,
		&view.Tax,
		&view.Total,
		&couponCode,
		&couponType,
		&couponValue,
		&discountApplied,
		&view.CreatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order", err)
	}

	code := pgconv.StringPtrFromPgtype(couponCode)
	kind := pgconv.StringPtrFromPgtype(couponType)
	value, err := pgconv.Float64PtrFromNumeric(couponValue)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid order coupon value", err)
	}
	applied := pgconv.Int64PtrFromPgtype(discountApplied)
	if code != nil && kind != nil && value != nil && applied != nil {
		view.CouponSnapshot = &queries.CouponSnapshotView{
			Code:            *code,
			Type:            *kind,
			DiscountValue:   *value,
			DiscountApplied: *applied,
		}
	}

	rows, err := r.db.Query(ctx, findOrderItemsQuery, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list order items", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			line    queries.OrderLineView
			offerID pgtype.UUID
		)
		if err := rows.Scan(
			&line.ProductID,
			&line.VariantID,
			&line.Name,
			&line.UnitPrice,
			&line.Quantity,
			&line.OfferDiscount,
			&offerID,
			&line.LineTotal,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order item", err)
		}
		line.AppliedOfferID = pgconv.UUIDPtrFromPgtype(offerID)
		view.Lines = append(view.Lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read order items", err)
	}

	return &view, nil
}

func (r *OrderReadStore) FindByCustomerID(ctx context.Context, customerID uuid.UUID, limit int32) ([]*queries.OrderListItem, error) {
	rows, err := r.db.Query(ctx, listOrdersByCustomerQuery, customerID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders", err)
	}
	defer rows.Close()

	var items []*queries.OrderListItem
	for rows.Next() {
		var item queries.OrderListItem
		if err := rows.Scan(
			&item.ID,
			&item.Source,
			&item.Status,
			&item.PaymentMethod,
			&item.Total,
			&item.ItemCount,
			&item.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order list item", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read orders", err)
	}

	return items, nil
}
