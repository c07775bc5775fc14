package pricing

import (
	"storefront-checkout/internal/domain/coupon"
	"storefront-checkout/internal/domain/offer"
	"storefront-checkout/internal/pkg/clock"
)

// Calculator aggregates per-line offer evaluations and a single cart-level
// coupon into a pricing snapshot. It is deterministic for identical inputs:
// the clock is its only external read, and only for window checks.
type Calculator struct {
	clock clock.Clock
}

func NewCalculator(clk clock.Clock) *Calculator {
	return &Calculator{clock: clk}
}

type Inputs struct {
	Items []LineItem
	// Offers are candidates for every line; the evaluator filters per item.
	Offers []*offer.Offer
	// Coupon is optional. UserUsageCount is the caller's prior redemption
	// count for this coupon, read through the usage ledger.
	Coupon         *coupon.Coupon
	UserUsageCount int64
	// ShippingCharge and Tax are already-computed opaque values.
	ShippingCharge Money
	Tax            Money
}

type Result struct {
	Snapshot PricingSnapshot
	Lines    []DiscountedLineItem
	// CouponRejection is set when a coupon was supplied but not admitted.
	// The snapshot is then computed without the coupon; the caller decides
	// whether that is a hard failure.
	CouponRejection *coupon.Rejection
}

// CalculateFinalPricing runs the full aggregation: subtotal, best offer per
// line, stacking check, coupon validation, and snapshot construction.
func (c *Calculator) CalculateFinalPricing(in Inputs) (*Result, error) {
	now := c.clock.Now()

	var (
		subtotal        Money
		productDiscount Money
		offerDiscount   Money
		hasNonStackable bool
	)

	lines := make([]DiscountedLineItem, 0, len(in.Items))
	for _, item := range in.Items {
		subtotal += item.LineTotal()
		productDiscount += item.MarkdownTotal()

		eval := offer.BestOffer(item.UnitPrice, item.ProductID, item.CategoryID, in.Offers, now)

		line := DiscountedLineItem{
			ProductID:         item.ProductID,
			VariantID:         item.VariantID,
			Name:              item.Name,
			OriginalUnitPrice: item.UnitPrice,
			Quantity:          item.Quantity,
		}
		if eval.Offer != nil {
			id := eval.Offer.ID()
			line.AppliedOfferID = &id
			line.OfferDiscountPerUnit = eval.DiscountPerUnitCents
			line.OfferDiscountAmount = eval.DiscountPerUnitCents * Money(item.Quantity)
			offerDiscount += line.OfferDiscountAmount
			if !eval.Offer.Stackable() {
				hasNonStackable = true
			}
		}
		line.LineFinalAmount = item.LineTotal() - line.OfferDiscountAmount
		lines = append(lines, line)
	}

	subtotalAfterOffers := subtotal - offerDiscount
	if subtotalAfterOffers < 0 {
		subtotalAfterOffers = 0
	}

	var (
		couponDiscount Money
		couponSnap     *CouponSnapshot
		rejection      *coupon.Rejection
	)
	if in.Coupon != nil {
		discount, rej := coupon.Validate(in.Coupon, subtotalAfterOffers, in.UserUsageCount, hasNonStackable, now)
		if rej != nil {
			rejection = rej
		} else {
			couponDiscount = discount
			couponSnap = &CouponSnapshot{
				Code:            in.Coupon.Code(),
				Type:            in.Coupon.Type(),
				DiscountValue:   in.Coupon.DiscountValue(),
				DiscountApplied: discount,
			}
		}
	}

	snapshot, err := NewPricingSnapshot(subtotal, productDiscount, offerDiscount, couponDiscount, in.ShippingCharge, in.Tax, couponSnap)
	if err != nil {
		return nil, err
	}

	return &Result{
		Snapshot:        snapshot,
		Lines:           lines,
		CouponRejection: rejection,
	}, nil
}
