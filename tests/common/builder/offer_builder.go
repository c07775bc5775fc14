//go:build unit || e2e

package builder

import (
	"time"

	domoffer "storefront-checkout/internal/domain/offer"
	"storefront-checkout/internal/usecase/shared"

	"github.com/google/uuid"
)

type OfferBuilder struct {
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

func NewOfferBuilder() *OfferBuilder {
	now := time.Now()
	return &OfferBuilder{
		ID:               uuid.New(),
		Name:             "Spring Sale",
		DiscountType:     "percentage",
		DiscountValue:    10,
		MinPurchaseCents: 0,
		Priority:         1,
		StartsAt:         now.Add(-time.Hour),
		EndsAt:           now.Add(24 * time.Hour),
		Status:           "active",
		Stackable:        true,
	}
}

func (o *OfferBuilder) With(mutate func(*OfferBuilder)) *OfferBuilder {
	mutate(o)
	return o
}

// Build methods
func (o *OfferBuilder) BuildDomain() (*domoffer.Offer, error) {
	return domoffer.NewOffer(
		o.ID,
		o.Name,
		domoffer.DiscountType(o.DiscountType),
		o.DiscountValue,
		o.MinPurchaseCents,
		o.MaxDiscountCents,
		o.Priority,
		o.StartsAt,
		o.EndsAt,
		domoffer.Status(o.Status),
		o.Stackable,
		o.ProductIDs,
		o.CategoryIDs,
	)
}

func (o *OfferBuilder) BuildSnapshot() shared.OfferSnapshot {
	return shared.OfferSnapshot{
		ID:               o.ID,
		Name:             o.Name,
		DiscountType:     o.DiscountType,
		DiscountValue:    o.DiscountValue,
		MinPurchaseCents: o.MinPurchaseCents,
		MaxDiscountCents: o.MaxDiscountCents,
		Priority:         o.Priority,
		StartsAt:         o.StartsAt,
		EndsAt:           o.EndsAt,
		Status:           o.Status,
		Stackable:        o.Stackable,
		ProductIDs:       o.ProductIDs,
		CategoryIDs:      o.CategoryIDs,
	}
}

// Fluent builder methods
func (o *OfferBuilder) WithDiscountType(discountType string) *OfferBuilder {
	o.DiscountType = discountType
	return o
}

func (o *OfferBuilder) WithDiscountValue(value float64) *OfferBuilder {
	o.DiscountValue = value
	return o
}

func (o *OfferBuilder) WithMinPurchaseCents(cents int64) *OfferBuilder {
	o.MinPurchaseCents = cents
	return o
}

func (o *OfferBuilder) WithPriority(priority int32) *OfferBuilder {
	o.Priority = priority
	return o
}

func (o *OfferBuilder) WithWindow(startsAt, endsAt time.Time) *OfferBuilder {
	o.StartsAt = startsAt
	o.EndsAt = endsAt
	return o
}

func (o *OfferBuilder) WithStatus(status string) *OfferBuilder {
	o.Status = status
	return o
}

func (o *OfferBuilder) WithStackable(stackable bool) *OfferBuilder {
	o.Stackable = stackable
	return o
}

func (o *OfferBuilder) WithProductIDs(ids ...uuid.UUID) *OfferBuilder {
	o.ProductIDs = ids
	return o
}

func (o *OfferBuilder) WithCategoryIDs(ids ...uuid.UUID) *OfferBuilder {
	o.CategoryIDs = ids
	return o
}

func (o *OfferBuilder) AsFixed(cents int64) *OfferBuilder {
	o.DiscountType = "fixed"
	o.DiscountValue = float64(cents)
	return o
}
