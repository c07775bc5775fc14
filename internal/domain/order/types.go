package order

import "errors"

var (
	ErrInvalidSource        = errors.New("invalid checkout source")
	ErrUnsupportedSource    = errors.New("unsupported checkout source")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrEmptyOrder           = errors.New("order must have at least one line item")
)

// Source identifies where a checkout originated. Only CART is implemented;
// BUY_NOW parses but is rejected before any pricing work happens.
type Source string

const (
	SourceCart   Source = "CART"
	SourceBuyNow Source = "BUY_NOW"
)

func ParseSource(s string) (Source, error) {
	switch Source(s) {
	case SourceCart, SourceBuyNow:
		return Source(s), nil
	default:
		return "", ErrInvalidSource
	}
}

type PaymentMethod string

const (
	PaymentCard           PaymentMethod = "card"
	PaymentCashOnDelivery PaymentMethod = "cod"
)

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(s) {
	case PaymentCard, PaymentCashOnDelivery:
		return PaymentMethod(s), nil
	default:
		return "", ErrInvalidPaymentMethod
	}
}

type Status string

const (
	StatusPlaced   Status = "placed"
	StatusCanceled Status = "canceled"
)

func (s Status) String() string {
	return string(s)
}
