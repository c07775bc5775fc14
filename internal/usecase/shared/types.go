package shared

import (
	"time"

	"github.com/google/uuid"
)

// Minimal snapshots for command read operations. These are flat rows; the
// usecases rebuild domain values from them before any pricing math runs.

type CartItemSnapshot struct {
	ID                      uuid.UUID
	ProductID               uuid.UUID
	VariantID               uuid.UUID
	CategoryID              uuid.UUID
	Name                    string
	UnitPriceCents          int64
	CompareAtUnitPriceCents *int64
	Quantity                int32
}

type CartSnapshot struct {
	ID         uuid.UUID
	CustomerID uuid.UUID
	Items      []CartItemSnapshot
}

type OfferSnapshot struct {
	ID               uuid.UUID
	Name             string
	DiscountType     string
	DiscountValue    float64
	MinPurchaseCents int64
	MaxDiscountCents *int64
	Priority         int32
	StartsAt         time.Time
	EndsAt           time.Time
	Status           string
	Stackable        bool
	ProductIDs       []uuid.UUID
	CategoryIDs      []uuid.UUID
}

type CouponSnapshot struct {
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

type AddressSnapshot struct {
	ID         uuid.UUID
	CustomerID uuid.UUID
}

type CustomerSnapshot struct {
	ID       uuid.UUID
	Email    string
	Role     string
	IsActive bool
}
