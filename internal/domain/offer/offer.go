package offer

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidDiscountType    = errors.New("invalid offer discount type")
	ErrInvalidDiscountValue   = errors.New("offer discount value must be positive")
	ErrInvalidDiscountPercent = errors.New("percentage offer must be between 0 and 100")
	ErrInvalidWindow          = errors.New("offer window end must be after start")
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

// Offer is an immutable merchandising discount. Every "update" in the admin
// workflow produces a new record; this value is only ever read here.
type Offer struct {
	id               uuid.UUID
	name             string
	discountType     DiscountType
	discountValue    float64
	minPurchaseCents int64
	maxDiscountCents *int64
	priority         int32
	startsAt         time.Time
	endsAt           time.Time
	status           Status
	stackable        bool
	productIDs       map[uuid.UUID]struct{}
	categoryIDs      map[uuid.UUID]struct{}
}

func NewOffer(
	id uuid.UUID,
	name string,
	discountType DiscountType,
	discountValue float64,
	minPurchaseCents int64,
	maxDiscountCents *int64,
	priority int32,
	startsAt, endsAt time.Time,
	status Status,
	stackable bool,
	productIDs, categoryIDs []uuid.UUID,
) (*Offer, error) {
	if !discountType.IsValid() {
		return nil, ErrInvalidDiscountType
	}
	if discountValue <= 0 {
		return nil, ErrInvalidDiscountValue
	}
	if discountType == DiscountPercentage && discountValue > 100 {
		return nil, ErrInvalidDiscountPercent
	}
	if !endsAt.After(startsAt) {
		return nil, ErrInvalidWindow
	}

	products := make(map[uuid.UUID]struct{}, len(productIDs))
	for _, pid := range productIDs {
		products[pid] = struct{}{}
	}
	categories := make(map[uuid.UUID]struct{}, len(categoryIDs))
	for _, cid := range categoryIDs {
		categories[cid] = struct{}{}
	}

	return &Offer{
		id:               id,
		name:             name,
		discountType:     discountType,
		discountValue:    discountValue,
		minPurchaseCents: minPurchaseCents,
		maxDiscountCents: maxDiscountCents,
		priority:         priority,
		startsAt:         startsAt,
		endsAt:           endsAt,
		status:           status,
		stackable:        stackable,
		productIDs:       products,
		categoryIDs:      categories,
	}, nil
}

// IsActiveAt enforces expiry lazily: an offer whose window has passed is
// treated as expired even if the background sweep has not flipped its status.
// The window is half-open: [startsAt, endsAt).
func (o *Offer) IsActiveAt(t time.Time) bool {
	if o.status != StatusActive {
		return false
	}
	if t.Before(o.startsAt) {
		return false
	}
	if !t.Before(o.endsAt) {
		return false
	}
	return true
}

func (o *Offer) AppliesTo(productID, categoryID uuid.UUID) bool {
	if _, ok := o.productIDs[productID]; ok {
		return true
	}
	_, ok := o.categoryIDs[categoryID]
	return ok
}

// DiscountFor computes the per-unit discount for the given unit price.
// A fixed discount can never exceed the unit price; maxDiscount does not
// apply at the line level (it caps coupons, not offers).
func (o *Offer) DiscountFor(unitPriceCents int64) int64 {
	switch o.discountType {
	case DiscountPercentage:
		return int64(float64(unitPriceCents) * o.discountValue / 100.0)
	case DiscountFixed:
		discount := int64(o.discountValue)
		if discount > unitPriceCents {
			return unitPriceCents
		}
		return discount
	default:
		return 0
	}
}

func (o *Offer) ID() uuid.UUID             { return o.id }
func (o *Offer) Name() string              { return o.name }
func (o *Offer) Type() DiscountType        { return o.discountType }
func (o *Offer) DiscountValue() float64    { return o.discountValue }
func (o *Offer) MinPurchaseCents() int64   { return o.minPurchaseCents }
func (o *Offer) MaxDiscountCents() *int64  { return o.maxDiscountCents }
func (o *Offer) Priority() int32           { return o.priority }
func (o *Offer) StartsAt() time.Time       { return o.startsAt }
func (o *Offer) EndsAt() time.Time         { return o.endsAt }
func (o *Offer) Status() Status            { return o.status }
func (o *Offer) Stackable() bool           { return o.stackable }
