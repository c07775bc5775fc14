package usecase

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"storefront-checkout/internal/domain/coupon"
	"storefront-checkout/internal/domain/offer"
	"storefront-checkout/internal/domain/order"
	"storefront-checkout/internal/domain/pricing"
	"storefront-checkout/internal/infra"
	"storefront-checkout/internal/pkg/clock"
	"storefront-checkout/internal/pkg/errs"
	"storefront-checkout/internal/usecase/shared"
)

var (
	ErrCartEmpty         = errs.New("cart is empty")
	ErrUnsupportedSource = errs.New("unsupported checkout source")
	ErrCouponNotFound    = errs.New("coupon not found")
	ErrInvalidCoupon     = errs.New("invalid coupon")
	ErrCouponRejected    = errs.New("coupon rejected")
	ErrPricingFailed     = errs.New("pricing computation failed")
)

// ShippingCalculator quotes the shipping charge for a cart. The pricing
// engine treats the result as opaque.
type ShippingCalculator interface {
	ShippingFor(cart *shared.CartSnapshot) pricing.Money
}

// TaxCalculator quotes tax on the payable amount including shipping.
type TaxCalculator interface {
	TaxOn(base pricing.Money) pricing.Money
}

type PriceCartInput struct {
	CustomerID uuid.UUID
	Source     order.Source
	CouponCode *string
}

type PricedCart struct {
	Cart   *shared.CartSnapshot
	Result *pricing.Result
	Coupon *coupon.Coupon
}

// CartPricer runs one full pricing pass: cart read, offer evaluation, coupon
// validation, shipping and tax, snapshot construction. Preview and commit
// share it so the two paths can never disagree on a price; they differ only
// in which reads they hand in (commit passes transaction-bound reads).
type CartPricer struct {
	calculator *pricing.Calculator
	shipping   ShippingCalculator
	tax        TaxCalculator
	clock      clock.Clock
}

func NewCartPricer(shipping ShippingCalculator, tax TaxCalculator, clk clock.Clock) *CartPricer {
	return &CartPricer{
		calculator: pricing.NewCalculator(clk),
		shipping:   shipping,
		tax:        tax,
		clock:      clk,
	}
}

// Price reads the cart through the given reads and computes the final
// snapshot. It performs no writes. A supplied but inadmissible coupon is a
// hard failure marked ErrCouponRejected.
func (p *CartPricer) Price(ctx context.Context, reads shared.CommandReads, in PriceCartInput) (*PricedCart, error) {
	if in.Source != order.SourceCart {
		return nil, ErrUnsupportedSource
	}

	cart, err := reads.CartByCustomer(ctx, in.CustomerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCartEmpty
		}
		return nil, errs.Mark(err, ErrPricingFailed)
	}
	if len(cart.Items) == 0 {
		return nil, ErrCartEmpty
	}

	items, productIDs, categoryIDs, err := buildLineItems(cart)
	if err != nil {
		return nil, errs.Mark(err, ErrPricingFailed)
	}

	offers, err := p.loadOffers(ctx, reads, productIDs, categoryIDs)
	if err != nil {
		return nil, errs.Mark(err, ErrPricingFailed)
	}

	couponEntity, userUsage, err := p.loadCoupon(ctx, reads, in.CouponCode, in.CustomerID)
	if err != nil {
		return nil, err
	}

	inputs := pricing.Inputs{
		Items:          items,
		Offers:         offers,
		Coupon:         couponEntity,
		UserUsageCount: userUsage,
	}

	// First pass without shipping and tax to learn the payable base; the
	// coupon decision depends only on the post-offer subtotal, so both
	// passes validate identically.
	base, err := p.calculator.CalculateFinalPricing(inputs)
	if err != nil {
		return nil, errs.Mark(err, ErrPricingFailed)
	}
	if base.CouponRejection != nil {
		return nil, errs.Mark(base.CouponRejection, ErrCouponRejected)
	}

	inputs.ShippingCharge = p.shipping.ShippingFor(cart)
	inputs.Tax = p.tax.TaxOn(base.Snapshot.Total + inputs.ShippingCharge)

	result, err := p.calculator.CalculateFinalPricing(inputs)
	if err != nil {
		return nil, errs.Mark(err, ErrPricingFailed)
	}

	return &PricedCart{
		Cart:   cart,
		Result: result,
		Coupon: couponEntity,
	}, nil
}

func (p *CartPricer) loadOffers(ctx context.Context, reads shared.CommandReads, productIDs, categoryIDs []uuid.UUID) ([]*offer.Offer, error) {
	rows, err := reads.ApplicableOffers(ctx, productIDs, categoryIDs)
	if err != nil {
		return nil, err
	}

	offers := make([]*offer.Offer, 0, len(rows))
	for _, row := range rows {
		entity, err := offer.NewOffer(
			row.ID,
			row.Name,
			offer.DiscountType(row.DiscountType),
			row.DiscountValue,
			row.MinPurchaseCents,
			row.MaxDiscountCents,
			row.Priority,
			row.StartsAt,
			row.EndsAt,
			offer.Status(row.Status),
			row.Stackable,
			row.ProductIDs,
			row.CategoryIDs,
		)
		if err != nil {
			// A malformed offer row must not block checkout
			slog.Warn("skipping malformed offer", "offer_id", row.ID, "error", err.Error())
			continue
		}
		offers = append(offers, entity)
	}
	return offers, nil
}

func (p *CartPricer) loadCoupon(ctx context.Context, reads shared.CommandReads, code *string, customerID uuid.UUID) (*coupon.Coupon, int64, error) {
	if code == nil || *code == "" {
		return nil, 0, nil
	}

	row, err := reads.CouponByCode(ctx, *code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, 0, ErrCouponNotFound
		}
		return nil, 0, errs.Mark(err, ErrPricingFailed)
	}

	entity, err := coupon.NewCoupon(
		row.ID,
		row.Code,
		coupon.DiscountType(row.DiscountType),
		row.DiscountValue,
		row.MinAmountCents,
		row.MaxDiscountCents,
		row.StartsAt,
		row.EndsAt,
		coupon.Status(row.Status),
		row.Stackable,
		row.UsageLimit,
		row.UsedCount,
		row.MaxUsagePerUser,
	)
	if err != nil {
		return nil, 0, errs.Mark(err, ErrInvalidCoupon)
	}

	usage, err := reads.CouponUsageCount(ctx, row.ID, customerID)
	if err != nil {
		return nil, 0, errs.Mark(err, ErrPricingFailed)
	}

	return entity, usage, nil
}

func buildLineItems(cart *shared.CartSnapshot) ([]pricing.LineItem, []uuid.UUID, []uuid.UUID, error) {
	items := make([]pricing.LineItem, 0, len(cart.Items))
	productIDs := make([]uuid.UUID, 0, len(cart.Items))
	categoryIDs := make([]uuid.UUID, 0, len(cart.Items))

	for _, row := range cart.Items {
		item, err := pricing.NewLineItem(
			row.ProductID,
			row.VariantID,
			row.CategoryID,
			row.Name,
			row.UnitPriceCents,
			row.CompareAtUnitPriceCents,
			row.Quantity,
		)
		if err != nil {
			return nil, nil, nil, err
		}
		items = append(items, item)
		productIDs = append(productIDs, row.ProductID)
		categoryIDs = append(categoryIDs, row.CategoryID)
	}
	return items, productIDs, categoryIDs, nil
}
