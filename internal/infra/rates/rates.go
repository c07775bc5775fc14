package rates

import (
	"storefront-checkout/internal/domain/pricing"
	"storefront-checkout/internal/pkg/config"
	"storefront-checkout/internal/usecase"
	"storefront-checkout/internal/usecase/shared"
)

// FlatShipping charges the same configured rate for every cart. Stands in
// for a carrier integration; the pricing engine only sees the number.
type FlatShipping struct {
	cents pricing.Money
}

func NewFlatShipping(cfg config.CheckoutConfig) usecase.ShippingCalculator {
	return &FlatShipping{cents: cfg.FlatShippingCents}
}

func (s *FlatShipping) ShippingFor(_ *shared.CartSnapshot) pricing.Money {
	return s.cents
}

// BasisPointTax applies a single configured rate in basis points to the
// payable amount including shipping. Truncates toward zero like every other
// money computation in the engine.
type BasisPointTax struct {
	bps int64
}

func NewBasisPointTax(cfg config.CheckoutConfig) usecase.TaxCalculator {
	return &BasisPointTax{bps: cfg.TaxRateBps}
}

func (t *BasisPointTax) TaxOn(base pricing.Money) pricing.Money {
	if base <= 0 {
		return 0
	}
	return base * t.bps / 10000
}
