package offer

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// Evaluation is the outcome of picking the best offer for one line item.
// A zero Evaluation (no offer) is valid: the line simply gets no discount.
type Evaluation struct {
	DiscountPerUnitCents int64
	Offer                *Offer
}

// BestOffer selects the single best applicable offer for a line item.
// Candidates are filtered to offers that are active now, whose minimum
// purchase is satisfied by the unit price, and that target the product or
// its category. The winner is ordered by priority first, then by the larger
// computed discount for this item; candidate order never matters.
func BestOffer(unitPriceCents int64, productID, categoryID uuid.UUID, candidates []*Offer, now time.Time) Evaluation {
	type scored struct {
		offer    *Offer
		discount int64
	}

	applicable := make([]scored, 0, len(candidates))
	for _, o := range candidates {
		if o == nil || !o.IsActiveAt(now) {
			continue
		}
		if unitPriceCents < o.MinPurchaseCents() {
			continue
		}
		if !o.AppliesTo(productID, categoryID) {
			continue
		}
		applicable = append(applicable, scored{offer: o, discount: o.DiscountFor(unitPriceCents)})
	}

	if len(applicable) == 0 {
		return Evaluation{}
	}

	sort.SliceStable(applicable, func(i, j int) bool {
		if applicable[i].offer.Priority() != applicable[j].offer.Priority() {
			return applicable[i].offer.Priority() > applicable[j].offer.Priority()
		}
		return applicable[i].discount > applicable[j].discount
	})

	best := applicable[0]
	return Evaluation{
		DiscountPerUnitCents: best.discount,
		Offer:                best.offer,
	}
}
