package coupon

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidDiscountType    = errors.New("invalid coupon discount type")
	ErrInvalidDiscountValue   = errors.New("coupon discount value must be positive")
	ErrInvalidDiscountPercent = errors.New("percentage coupon must be between 0 and 100")
	ErrInvalidUserLimit       = errors.New("max usage per user must be at least 1")
)

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

func (t DiscountType) IsValid() bool {
	switch t {
	case DiscountPercentage, DiscountFixed:
		return true
	default:
		return false
	}
}

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusExpired  Status = "expired"
)

// Coupon is an immutable read of the coupon's terms plus the usage counters
// at the time of the read. UsedCount only ever moves through the usage
// ledger; nothing in this package mutates it.
type Coupon struct {
	id               uuid.UUID
	code             Code
	discountType     DiscountType
	discountValue    float64
	minAmountCents   int64
	maxDiscountCents *int64
	startsAt         *time.Time
	endsAt           *time.Time
	status           Status
	stackable        bool
	usageLimit       *int32
	usedCount        int32
	maxUsagePerUser  int32
}

func NewCoupon(
	id uuid.UUID,
	code string,
	discountType DiscountType,
	discountValue float64,
	minAmountCents int64,
	maxDiscountCents *int64,
	startsAt, endsAt *time.Time,
	status Status,
	stackable bool,
	usageLimit *int32,
	usedCount int32,
	maxUsagePerUser int32,
) (*Coupon, error) {
	couponCode, err := NewCode(code)
	if err != nil {
		return nil, err
	}
	if !discountType.IsValid() {
		return nil, ErrInvalidDiscountType
	}
	if discountValue <= 0 {
		return nil, ErrInvalidDiscountValue
	}
	if discountType == DiscountPercentage && discountValue > 100 {
		return nil, ErrInvalidDiscountPercent
	}
	if maxUsagePerUser < 1 {
		return nil, ErrInvalidUserLimit
	}

	return &Coupon{
		id:               id,
		code:             couponCode,
		discountType:     discountType,
		discountValue:    discountValue,
		minAmountCents:   minAmountCents,
		maxDiscountCents: maxDiscountCents,
		startsAt:         startsAt,
		endsAt:           endsAt,
		status:           status,
		stackable:        stackable,
		usageLimit:       usageLimit,
		usedCount:        usedCount,
		maxUsagePerUser:  maxUsagePerUser,
	}, nil
}

// IsActiveAt mirrors the offer rule: status must be active and now must fall
// inside the half-open window. Nil bounds are open-ended.
func (c *Coupon) IsActiveAt(t time.Time) bool {
	if c.status != StatusActive {
		return false
	}
	if c.startsAt != nil && t.Before(*c.startsAt) {
		return false
	}
	if c.endsAt != nil && !t.Before(*c.endsAt) {
		return false
	}
	return true
}

// DiscountFor computes the raw discount on the given base amount, before the
// maxDiscount clamp. A fixed discount never exceeds the base.
func (c *Coupon) DiscountFor(baseCents int64) int64 {
	switch c.discountType {
	case DiscountPercentage:
		return int64(float64(baseCents) * c.discountValue / 100.0)
	case DiscountFixed:
		discount := int64(c.discountValue)
		if discount > baseCents {
			return baseCents
		}
		return discount
	default:
		return 0
	}
}

func (c *Coupon) ID() uuid.UUID             { return c.id }
func (c *Coupon) Code() Code                { return c.code }
func (c *Coupon) Type() DiscountType        { return c.discountType }
func (c *Coupon) DiscountValue() float64    { return c.discountValue }
func (c *Coupon) MinAmountCents() int64     { return c.minAmountCents }
func (c *Coupon) MaxDiscountCents() *int64  { return c.maxDiscountCents }
func (c *Coupon) StartsAt() *time.Time      { return c.startsAt }
func (c *Coupon) EndsAt() *time.Time        { return c.endsAt }
func (c *Coupon) Status() Status            { return c.status }
func (c *Coupon) Stackable() bool           { return c.stackable }
func (c *Coupon) UsageLimit() *int32        { return c.usageLimit }
func (c *Coupon) UsedCount() int32          { return c.usedCount }
func (c *Coupon) MaxUsagePerUser() int32    { return c.maxUsagePerUser }
