package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"storefront-checkout/internal/domain/order"
	"storefront-checkout/internal/domain/pricing"
	"storefront-checkout/internal/pkg/clock"
	"storefront-checkout/internal/usecase"
	"storefront-checkout/internal/usecase/shared"
)

// Read models (DTO for read side)
type PricedLineView struct {
	ProductID      uuid.UUID  `json:"productId"`
	VariantID      uuid.UUID  `json:"variantId"`
	Name           string     `json:"name"`
	UnitPrice      int64      `json:"unitPrice"`
	Quantity       int32      `json:"quantity"`
	OfferDiscount  int64      `json:"offerDiscount"`
	AppliedOfferID *uuid.UUID `json:"appliedOfferId,omitempty"`
	LineTotal      int64      `json:"lineTotal"`
}

type CouponSnapshotView struct {
	Code            string  `json:"code"`
	Type            string  `json:"type"`
	DiscountValue   float64 `json:"discountValue"`
	DiscountApplied int64   `json:"discountApplied"`
}

type CheckoutPreviewView struct {
	Source          string              `json:"source"`
	Lines           []PricedLineView    `json:"lines"`
	Subtotal        int64               `json:"subtotal"`
	ProductDiscount int64               `json:"productDiscount"`
	OfferDiscount   int64               `json:"offerDiscount"`
	CouponDiscount  int64               `json:"couponDiscount"`
	ShippingCharge  int64               `json:"shippingCharge"`
	Tax             int64               `json:"tax"`
	Total           int64               `json:"total"`
	CouponSnapshot  *CouponSnapshotView `json:"couponSnapshot,omitempty"`
	PricedAt        time.Time           `json:"pricedAt"`
}

type CheckoutQueries interface {
	Preview(ctx context.Context, customerID uuid.UUID, source order.Source, couponCode *string) (*CheckoutPreviewView, error)
}

type checkoutQueriesImpl struct {
	pricer *usecase.CartPricer
	reads  shared.CommandReads
	clock  clock.Clock
}

// NewCheckoutQueries builds the preview side. The reads are typically the
// cache-fronted wrapper; preview tolerates slightly stale coupon terms
// because commit re-reads everything fresh.
func NewCheckoutQueries(pricer *usecase.CartPricer, reads shared.CommandReads, clk clock.Clock) CheckoutQueries {
	return &checkoutQueriesImpl{pricer: pricer, reads: reads, clock: clk}
}

func (q *checkoutQueriesImpl) Preview(ctx context.Context, customerID uuid.UUID, source order.Source, couponCode *string) (*CheckoutPreviewView, error) {
	priced, err := q.pricer.Price(ctx, q.reads, usecase.PriceCartInput{
		CustomerID: customerID,
		Source:     source,
		CouponCode: couponCode,
	})
	if err != nil {
		return nil, err
	}

	view := NewCheckoutPreviewView(string(source), priced.Result)
	view.PricedAt = q.clock.Now()
	return view, nil
}

// NewCheckoutPreviewView flattens a pricing result into the read model shared
// by preview responses and commit read-after-write views.
func NewCheckoutPreviewView(source string, result *pricing.Result) *CheckoutPreviewView {
	lines := make([]PricedLineView, 0, len(result.Lines))
	for _, l := range result.Lines {
		lines = append(lines, PricedLineView{
			ProductID:      l.ProductID,
			VariantID:      l.VariantID,
			Name:           l.Name,
			UnitPrice:      l.OriginalUnitPrice,
			Quantity:       l.Quantity,
			OfferDiscount:  l.OfferDiscountAmount,
			AppliedOfferID: l.AppliedOfferID,
			LineTotal:      l.LineFinalAmount,
		})
	}

	snap := result.Snapshot
	view := &CheckoutPreviewView{
		Source:          source,
		Lines:           lines,
		Subtotal:        snap.Subtotal,
		ProductDiscount: snap.ProductDiscount,
		OfferDiscount:   snap.OfferDiscount,
		CouponDiscount:  snap.CouponDiscount,
		ShippingCharge:  snap.ShippingCharge,
		Tax:             snap.Tax,
		Total:           snap.Total,
	}
	if snap.Coupon != nil {
		view.CouponSnapshot = &CouponSnapshotView{
			Code:            snap.Coupon.Code.String(),
			Type:            string(snap.Coupon.Type),
			DiscountValue:   snap.Coupon.DiscountValue,
			DiscountApplied: snap.Coupon.DiscountApplied,
		}
	}
	return view
}
