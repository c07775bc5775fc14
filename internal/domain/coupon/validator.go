package coupon

import "time"

type RejectionReason string

const (
	ReasonStackingConflict  RejectionReason = "stacking_conflict"
	ReasonNotActive         RejectionReason = "not_active"
	ReasonMinAmountNotMet   RejectionReason = "min_amount_not_met"
	ReasonUsageLimitReached RejectionReason = "usage_limit_reached"
	ReasonUserLimitReached  RejectionReason = "user_limit_reached"
)

// Rejection explains why a coupon was not admitted. It implements error so
// callers that treat a rejected coupon as a hard failure can propagate it.
type Rejection struct {
	Reason  RejectionReason
	Message string
}

func (r *Rejection) Error() string {
	return "coupon rejected: " + r.Message
}

func reject(reason RejectionReason, message string) *Rejection {
	return &Rejection{Reason: reason, Message: message}
}

// Validate decides admissibility for a coupon against the post-offer subtotal
// and computes its discount. Rules are checked in order and the first failure
// wins. The returned discount is already clamped to maxDiscount.
func Validate(c *Coupon, subtotalAfterOffersCents int64, userUsageCount int64, cartHasNonStackableOffers bool, now time.Time) (int64, *Rejection) {
	if cartHasNonStackableOffers && !c.Stackable() {
		return 0, reject(ReasonStackingConflict, "cannot combine with active offers")
	}
	if !c.IsActiveAt(now) {
		return 0, reject(ReasonNotActive, "coupon is expired or inactive")
	}
	if subtotalAfterOffersCents < c.MinAmountCents() {
		return 0, reject(ReasonMinAmountNotMet, "minimum purchase not met")
	}
	if limit := c.UsageLimit(); limit != nil && c.UsedCount() >= *limit {
		return 0, reject(ReasonUsageLimitReached, "usage limit reached")
	}
	if userUsageCount >= int64(c.MaxUsagePerUser()) {
		return 0, reject(ReasonUserLimitReached, "per-user limit reached")
	}

	discount := c.DiscountFor(subtotalAfterOffersCents)
	if maxDiscount := c.MaxDiscountCents(); maxDiscount != nil && discount > *maxDiscount {
		discount = *maxDiscount
	}
	return discount, nil
}
