package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"storefront-checkout/internal/usecase/queries"
)

type OrderResponse struct {
	ID                uuid.UUID               `json:"id"`
	CustomerID        uuid.UUID               `json:"customerId"`
	Source            string                  `json:"source"`
	Status            string                  `json:"status"`
	PaymentMethod     string                  `json:"paymentMethod"`
	ShippingAddressID uuid.UUID               `json:"shippingAddressId"`
	Lines             []PricedLineResponse    `json:"lines"`
	Subtotal          int64                   `json:"subtotal"`
	ProductDiscount   int64                   `json:"productDiscount"`
	OfferDiscount     int64                   `json:"offerDiscount"`
	CouponDiscount    int64                   `json:"couponDiscount"`
	ShippingCharge    int64                   `json:"shippingCharge"`
	Tax               int64                   `json:"tax"`
	Total             int64                   `json:"total"`
	CouponSnapshot    *CouponSnapshotResponse `json:"couponSnapshot,omitempty"`
	CreatedAt         time.Time               `json:"createdAt"`
}

type OrderListResponse struct {
	ID            uuid.UUID `json:"id"`
	Source        string    `json:"source"`
	Status        string    `json:"status"`
	PaymentMethod string    `json:"paymentMethod"`
	Total         int64     `json:"total"`
	ItemCount     int32     `json:"itemCount"`
	CreatedAt     time.Time `json:"createdAt"`
}

func FromOrderView(view *queries.OrderView) (*OrderResponse, error) {
	var resp OrderResponse
	if err := copier.Copy(&resp, view); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromOrderListItem(item *queries.OrderListItem) (*OrderListResponse, error) {
	var resp OrderListResponse
	if err := copier.Copy(&resp, item); err != nil {
		return nil, err
	}
	return &resp, nil
}
