package pricing

import (
	"errors"

	"storefront-checkout/internal/domain/coupon"
)

var (
	ErrNegativeComponent = errors.New("pricing snapshot component cannot be negative")
	ErrTotalMismatch     = errors.New("pricing snapshot total does not match its components")
)

// CouponSnapshot freezes the coupon's terms at the moment the snapshot was
// built. Later edits to the coupon never change an order that embeds this.
type CouponSnapshot struct {
	Code            coupon.Code
	Type            coupon.DiscountType
	DiscountValue   float64
	DiscountApplied Money
}

// PricingSnapshot is the engine's output: an immutable breakdown of a cart's
// monetary totals. Construct only through NewPricingSnapshot; a snapshot that
// failed validation must never circulate.
type PricingSnapshot struct {
	Subtotal        Money
	ProductDiscount Money
	OfferDiscount   Money
	CouponDiscount  Money
	ShippingCharge  Money
	Tax             Money
	Total           Money
	Coupon          *CouponSnapshot
}

// NewPricingSnapshot validates every component and the total invariant:
// total == max(0, subtotal - offerDiscount - couponDiscount) + shipping + tax.
// Any violation is a construction error, never silently repaired.
func NewPricingSnapshot(subtotal, productDiscount, offerDiscount, couponDiscount, shipping, tax Money, couponSnap *CouponSnapshot) (PricingSnapshot, error) {
	for _, v := range []Money{subtotal, productDiscount, offerDiscount, couponDiscount, shipping, tax} {
		if v < 0 {
			return PricingSnapshot{}, ErrNegativeComponent
		}
	}
	if couponSnap != nil && couponSnap.DiscountApplied < 0 {
		return PricingSnapshot{}, ErrNegativeComponent
	}

	payable := subtotal - offerDiscount - couponDiscount
	if payable < 0 {
		payable = 0
	}
	total := payable + shipping + tax

	return PricingSnapshot{
		Subtotal:        subtotal,
		ProductDiscount: productDiscount,
		OfferDiscount:   offerDiscount,
		CouponDiscount:  couponDiscount,
		ShippingCharge:  shipping,
		Tax:             tax,
		Total:           total,
		Coupon:          couponSnap,
	}, nil
}
