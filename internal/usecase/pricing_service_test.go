//go:build unit

package usecase_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"storefront-checkout/internal/domain/order"
	"storefront-checkout/internal/domain/pricing"
	"storefront-checkout/internal/infra/rates"
	"storefront-checkout/internal/pkg/clock"
	"storefront-checkout/internal/pkg/config"
	"storefront-checkout/internal/usecase"
	"storefront-checkout/tests/common/builder"
	sharedmock "storefront-checkout/tests/mock/shared"
)

func newTestPricer() *usecase.CartPricer {
	cfg := config.CheckoutConfig{FlatShippingCents: 500, TaxRateBps: 1000}
	clk := clock.NewFixedClock(time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC))
	return usecase.NewCartPricer(rates.NewFlatShipping(cfg), rates.NewBasisPointTax(cfg), clk)
}

func TestCartPricer(t *testing.T) {
	ctrl := gomock.NewController(t)
	pricer := newTestPricer()

	customerID := uuid.New()
	input := usecase.PriceCartInput{CustomerID: customerID, Source: order.SourceCart}

	t.Run("prices the cart with flat shipping and basis-point tax", func(t *testing.T) {
		cart := builder.NewCartBuilder().
			WithCustomerID(customerID).
			WithItems(builder.NewCartItemBuilder().WithUnitPriceCents(2000).WithQuantity(2)).
			BuildSnapshot()

		reads := sharedmock.NewMockCommandReads(ctrl)
		reads.EXPECT().CartByCustomer(gomock.Any(), customerID).Return(cart, nil).Times(1)
		reads.EXPECT().ApplicableOffers(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).Times(1)

		priced, err := pricer.Price(t.Context(), reads, input)
		require.NoError(t, err)

		snap := priced.Result.Snapshot
		assert.Equal(t, pricing.Money(4000), snap.Subtotal)
		assert.Equal(t, pricing.Money(500), snap.ShippingCharge)
		assert.Equal(t, pricing.Money(450), snap.Tax)
		assert.Equal(t, pricing.Money(4950), snap.Total)
		assert.Equal(t, cart.ID, priced.Cart.ID)
	})

	t.Run("applies a percentage coupon before shipping and tax", func(t *testing.T) {
		cart := builder.NewCartBuilder().
			WithCustomerID(customerID).
			WithItems(builder.NewCartItemBuilder().WithUnitPriceCents(2000).WithQuantity(2)).
			BuildSnapshot()
		couponSnap := builder.NewCouponBuilder().BuildSnapshot()

		reads := sharedmock.NewMockCommandReads(ctrl)
		reads.EXPECT().CartByCustomer(gomock.Any(), customerID).Return(cart, nil).Times(1)
		reads.EXPECT().ApplicableOffers(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).Times(1)
		reads.EXPECT().CouponByCode(gomock.Any(), "WELCOME10").Return(couponSnap, nil).Times(1)
		reads.EXPECT().CouponUsageCount(gomock.Any(), couponSnap.ID, customerID).Return(int64(0), nil).Times(1)

		code := "WELCOME10"
		withCoupon := input
		withCoupon.CouponCode = &code

		priced, err := pricer.Price(t.Context(), reads, withCoupon)
		require.NoError(t, err)

		snap := priced.Result.Snapshot
		assert.Equal(t, pricing.Money(400), snap.CouponDiscount)
		assert.Equal(t, pricing.Money(410), snap.Tax)
		assert.Equal(t, pricing.Money(4510), snap.Total)
		require.NotNil(t, priced.Coupon)
	})

	t.Run("an empty cart never reaches the calculator", func(t *testing.T) {
		cart := builder.NewCartBuilder().WithCustomerID(customerID).WithItems().BuildSnapshot()

		reads := sharedmock.NewMockCommandReads(ctrl)
		reads.EXPECT().CartByCustomer(gomock.Any(), customerID).Return(cart, nil).Times(1)

		_, err := pricer.Price(t.Context(), reads, input)
		assert.ErrorIs(t, err, usecase.ErrCartEmpty)
	})

	t.Run("rejects sources other than the cart", func(t *testing.T) {
		reads := sharedmock.NewMockCommandReads(ctrl)

		_, err := pricer.Price(t.Context(), reads, usecase.PriceCartInput{
			CustomerID: customerID,
			Source:     order.Source("SUBSCRIPTION"),
		})
		assert.ErrorIs(t, err, usecase.ErrUnsupportedSource)
	})
}
