package order

import (
	"github.com/google/uuid"

	"storefront-checkout/internal/domain/pricing"
)

// Order embeds the pricing snapshot computed at commit time. The snapshot is
// the audit record: later changes to offers, coupons, or prices never touch it.
type Order struct {
	id                uuid.UUID
	customerID        uuid.UUID
	source            Source
	status            Status
	shippingAddressID uuid.UUID
	paymentMethod     PaymentMethod
	snapshot          pricing.PricingSnapshot
	lines             []pricing.DiscountedLineItem
}

func NewOrder(
	customerID uuid.UUID,
	source Source,
	shippingAddressID uuid.UUID,
	paymentMethod PaymentMethod,
	snapshot pricing.PricingSnapshot,
	lines []pricing.DiscountedLineItem,
) (*Order, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyOrder
	}

	return &Order{
		id:                uuid.New(),
		customerID:        customerID,
		source:            source,
		status:            StatusPlaced,
		shippingAddressID: shippingAddressID,
		paymentMethod:     paymentMethod,
		snapshot:          snapshot,
		lines:             lines,
	}, nil
}

func (o *Order) ID() uuid.UUID                         { return o.id }
func (o *Order) CustomerID() uuid.UUID                 { return o.customerID }
func (o *Order) Source() Source                        { return o.source }
func (o *Order) Status() Status                        { return o.status }
func (o *Order) ShippingAddressID() uuid.UUID          { return o.shippingAddressID }
func (o *Order) PaymentMethod() PaymentMethod          { return o.paymentMethod }
func (o *Order) Snapshot() pricing.PricingSnapshot     { return o.snapshot }
func (o *Order) Lines() []pricing.DiscountedLineItem   { return o.lines }
