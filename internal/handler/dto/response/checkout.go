package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"storefront-checkout/internal/usecase/queries"
)

type PricedLineResponse struct {
	ProductID      uuid.UUID  `json:"productId"`
	VariantID      uuid.UUID  `json:"variantId"`
	Name           string     `json:"name"`
	UnitPrice      int64      `json:"unitPrice"`
	Quantity       int32      `json:"quantity"`
	OfferDiscount  int64      `json:"offerDiscount"`
	AppliedOfferID *uuid.UUID `json:"appliedOfferId,omitempty"`
	LineTotal      int64      `json:"lineTotal"`
}

type CouponSnapshotResponse struct {
	Code            string  `json:"code"`
	Type            string  `json:"type"`
	DiscountValue   float64 `json:"discountValue"`
	DiscountApplied int64   `json:"discountApplied"`
}

type CheckoutPreviewResponse struct {
	Source          string                  `json:"source"`
	Lines           []PricedLineResponse    `json:"lines"`
	Subtotal        int64                   `json:"subtotal"`
	ProductDiscount int64                   `json:"productDiscount"`
	OfferDiscount   int64                   `json:"offerDiscount"`
	CouponDiscount  int64                   `json:"couponDiscount"`
	ShippingCharge  int64                   `json:"shippingCharge"`
	Tax             int64                   `json:"tax"`
	Total           int64                   `json:"total"`
	CouponSnapshot  *CouponSnapshotResponse `json:"couponSnapshot,omitempty"`
	PricedAt        time.Time               `json:"pricedAt"`
}

func FromCheckoutPreviewView(view *queries.CheckoutPreviewView) (*CheckoutPreviewResponse, error) {
	var resp CheckoutPreviewResponse
	if err := copier.Copy(&resp, view); err != nil {
		return nil, err
	}
	return &resp, nil
}
