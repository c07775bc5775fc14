//go:build unit || e2e

package builder

import (
	"time"

	domcoupon "storefront-checkout/internal/domain/coupon"
	"storefront-checkout/internal/usecase/shared"

	"github.com/google/uuid"
)

type CouponBuilder struct {
	ID               uuid.UUID
	Code             string
	DiscountType     string
	DiscountValue    float64
	MinAmountCents   int64
	MaxDiscountCents *int64
	StartsAt         *time.Time
	EndsAt           *time.Time
	Status           string
	Stackable        bool
	UsageLimit       *int32
	UsedCount        int32
	MaxUsagePerUser  int32
}

func NewCouponBuilder() *CouponBuilder {
	return &CouponBuilder{
		ID:              uuid.New(),
		Code:            "WELCOME10",
		DiscountType:    "percentage",
		DiscountValue:   10,
		MinAmountCents:  0,
		Status:          "active",
		Stackable:       true,
		UsedCount:       0,
		MaxUsagePerUser: 1,
	}
}

func (c *CouponBuilder) With(mutate func(*CouponBuilder)) *CouponBuilder {
	mutate(c)
	return c
}

// Build methods
func (c *CouponBuilder) BuildDomain() (*domcoupon.Coupon, error) {
	return domcoupon.NewCoupon(
		c.ID,
		c.Code,
		domcoupon.DiscountType(c.DiscountType),
		c.DiscountValue,
		c.MinAmountCents,
		c.MaxDiscountCents,
		c.StartsAt,
		c.EndsAt,
		domcoupon.Status(c.Status),
		c.Stackable,
		c.UsageLimit,
		c.UsedCount,
		c.MaxUsagePerUser,
	)
}

func (c *CouponBuilder) BuildSnapshot() *shared.CouponSnapshot {
	return &shared.CouponSnapshot{
		ID:               c.ID,
		Code:             c.Code,
		DiscountType:     c.DiscountType,
		DiscountValue:    c.DiscountValue,
		MinAmountCents:   c.MinAmountCents,
		MaxDiscountCents: c.MaxDiscountCents,
		StartsAt:         c.StartsAt,
		EndsAt:           c.EndsAt,
		Status:           c.Status,
		Stackable:        c.Stackable,
		UsageLimit:       c.UsageLimit,
		UsedCount:        c.UsedCount,
		MaxUsagePerUser:  c.MaxUsagePerUser,
	}
}

// Fluent builder methods
func (c *CouponBuilder) WithCode(code string) *CouponBuilder {
	c.Code = code
	return c
}

func (c *CouponBuilder) WithDiscountType(discountType string) *CouponBuilder {
	c.DiscountType = discountType
	return c
}

func (c *CouponBuilder) WithDiscountValue(value float64) *CouponBuilder {
	c.DiscountValue = value
	return c
}

func (c *CouponBuilder) WithMinAmountCents(cents int64) *CouponBuilder {
	c.MinAmountCents = cents
	return c
}

func (c *CouponBuilder) WithMaxDiscountCents(cents int64) *CouponBuilder {
	c.MaxDiscountCents = &cents
	return c
}

func (c *CouponBuilder) WithWindow(startsAt, endsAt time.Time) *CouponBuilder {
	c.StartsAt = &startsAt
	c.EndsAt = &endsAt
	return c
}

func (c *CouponBuilder) WithStatus(status string) *CouponBuilder {
	c.Status = status
	return c
}

func (c *CouponBuilder) WithStackable(stackable bool) *CouponBuilder {
	c.Stackable = stackable
	return c
}

func (c *CouponBuilder) WithUsageLimit(limit int32) *CouponBuilder {
	c.UsageLimit = &limit
	return c
}

func (c *CouponBuilder) WithUsedCount(count int32) *CouponBuilder {
	c.UsedCount = count
	return c
}

func (c *CouponBuilder) WithMaxUsagePerUser(limit int32) *CouponBuilder {
	c.MaxUsagePerUser = limit
	return c
}

func (c *CouponBuilder) AsFixed(cents int64) *CouponBuilder {
	c.DiscountType = "fixed"
	c.DiscountValue = float64(cents)
	return c
}
