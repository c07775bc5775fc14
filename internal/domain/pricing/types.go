package pricing

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrNegativeUnitPrice = errors.New("unit price cannot be negative")
	ErrInvalidQuantity   = errors.New("quantity must be positive")
)

// Money is a monetary value in minor units (cents).
type Money = int64

// LineItem is a priced cart line as read from the cart collaborator.
// The engine never mutates it.
type LineItem struct {
	ProductID          uuid.UUID
	VariantID          uuid.UUID
	CategoryID         uuid.UUID
	Name               string
	UnitPrice          Money
	CompareAtUnitPrice *Money
	Quantity           int32
}

func NewLineItem(productID, variantID, categoryID uuid.UUID, name string, unitPrice Money, compareAt *Money, quantity int32) (LineItem, error) {
	if unitPrice < 0 {
		return LineItem{}, ErrNegativeUnitPrice
	}
	if quantity <= 0 {
		return LineItem{}, ErrInvalidQuantity
	}
	return LineItem{
		ProductID:          productID,
		VariantID:          variantID,
		CategoryID:         categoryID,
		Name:               name,
		UnitPrice:          unitPrice,
		CompareAtUnitPrice: compareAt,
		Quantity:           quantity,
	}, nil
}

// LineTotal is the undiscounted extended price for the line.
func (li LineItem) LineTotal() Money {
	return li.UnitPrice * Money(li.Quantity)
}

// MarkdownTotal is the catalog markdown (compare-at minus sale price)
// carried for reporting; it never enters the payable total.
func (li LineItem) MarkdownTotal() Money {
	if li.CompareAtUnitPrice == nil || *li.CompareAtUnitPrice <= li.UnitPrice {
		return 0
	}
	return (*li.CompareAtUnitPrice - li.UnitPrice) * Money(li.Quantity)
}

// DiscountedLineItem is the per-line evaluation result. Derived, never persisted
// as-is; the order writer flattens it into order_items.
type DiscountedLineItem struct {
	ProductID            uuid.UUID
	VariantID            uuid.UUID
	Name                 string
	OriginalUnitPrice    Money
	Quantity             int32
	OfferDiscountPerUnit Money
	OfferDiscountAmount  Money
	AppliedOfferID       *uuid.UUID
	LineFinalAmount      Money
}
