package request

import (
	"strings"

	"github.com/google/uuid"

	"storefront-checkout/internal/domain/order"
)

type PreviewCheckoutRequest struct {
	Source     string  `json:"source" binding:"required"`
	CouponCode *string `json:"couponCode,omitempty"`
}

func (r PreviewCheckoutRequest) GetCouponCode() *string {
	return normalizeCouponCode(r.CouponCode)
}

func (r PreviewCheckoutRequest) ToDomain() (order.Source, error) {
	return order.ParseSource(r.Source)
}

type CommitCheckoutRequest struct {
	Source            string    `json:"source" binding:"required"`
	ShippingAddressID uuid.UUID `json:"shippingAddressId" binding:"required"`
	PaymentMethod     string    `json:"paymentMethod" binding:"required"`
	CouponCode        *string   `json:"couponCode,omitempty"`
}

// CommitCheckoutData is the parsed request the command layer consumes.
type CommitCheckoutData struct {
	Source            order.Source
	ShippingAddressID uuid.UUID
	PaymentMethod     order.PaymentMethod
	CouponCode        *string
}

func (r CommitCheckoutRequest) ToDomain() (CommitCheckoutData, error) {
	source, err := order.ParseSource(r.Source)
	if err != nil {
		return CommitCheckoutData{}, err
	}

	paymentMethod, err := order.ParsePaymentMethod(r.PaymentMethod)
	if err != nil {
		return CommitCheckoutData{}, err
	}

	return CommitCheckoutData{
		Source:            source,
		ShippingAddressID: r.ShippingAddressID,
		PaymentMethod:     paymentMethod,
		CouponCode:        normalizeCouponCode(r.CouponCode),
	}, nil
}

func normalizeCouponCode(code *string) *string {
	if code == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*code)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
