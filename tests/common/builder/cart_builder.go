//go:build unit || e2e

package builder

import (
	"storefront-checkout/internal/domain/pricing"
	"storefront-checkout/internal/usecase/shared"

	"github.com/google/uuid"
)

type CartItemBuilder struct {
	ProductID               uuid.UUID
	VariantID               uuid.UUID
	CategoryID              uuid.UUID
	Name                    string
	UnitPriceCents          int64
	CompareAtUnitPriceCents *int64
	Quantity                int32
}

func NewCartItemBuilder() *CartItemBuilder {
	return &CartItemBuilder{
		ProductID:      uuid.New(),
		VariantID:      uuid.New(),
		CategoryID:     uuid.New(),
		Name:           "Test Product",
		UnitPriceCents: 1000,
		Quantity:       1,
	}
}

func (i *CartItemBuilder) BuildLineItem() (pricing.LineItem, error) {
	return pricing.NewLineItem(i.ProductID, i.VariantID, i.CategoryID, i.Name, i.UnitPriceCents, i.CompareAtUnitPriceCents, i.Quantity)
}

func (i *CartItemBuilder) BuildSnapshot() shared.CartItemSnapshot {
	return shared.CartItemSnapshot{
		ID:                      uuid.New(),
		ProductID:               i.ProductID,
		VariantID:               i.VariantID,
		CategoryID:              i.CategoryID,
		Name:                    i.Name,
		UnitPriceCents:          i.UnitPriceCents,
		CompareAtUnitPriceCents: i.CompareAtUnitPriceCents,
		Quantity:                i.Quantity,
	}
}

func (i *CartItemBuilder) WithProductID(id uuid.UUID) *CartItemBuilder {
	i.ProductID = id
	return i
}

func (i *CartItemBuilder) WithCategoryID(id uuid.UUID) *CartItemBuilder {
	i.CategoryID = id
	return i
}

func (i *CartItemBuilder) WithUnitPriceCents(cents int64) *CartItemBuilder {
	i.UnitPriceCents = cents
	return i
}

func (i *CartItemBuilder) WithCompareAtUnitPriceCents(cents int64) *CartItemBuilder {
	i.CompareAtUnitPriceCents = &cents
	return i
}

func (i *CartItemBuilder) WithQuantity(quantity int32) *CartItemBuilder {
	i.Quantity = quantity
	return i
}

type CartBuilder struct {
	ID         uuid.UUID
	CustomerID uuid.UUID
	Items      []*CartItemBuilder
}

func NewCartBuilder() *CartBuilder {
	return &CartBuilder{
		ID:         uuid.New(),
		CustomerID: uuid.New(),
		Items:      []*CartItemBuilder{NewCartItemBuilder()},
	}
}

func (c *CartBuilder) With(mutate func(*CartBuilder)) *CartBuilder {
	mutate(c)
	return c
}

func (c *CartBuilder) WithCustomerID(id uuid.UUID) *CartBuilder {
	c.CustomerID = id
	return c
}

func (c *CartBuilder) WithItems(items ...*CartItemBuilder) *CartBuilder {
	c.Items = items
	return c
}

func (c *CartBuilder) BuildSnapshot() *shared.CartSnapshot {
	items := make([]shared.CartItemSnapshot, 0, len(c.Items))
	for _, item := range c.Items {
		items = append(items, item.BuildSnapshot())
	}
	return &shared.CartSnapshot{
		ID:         c.ID,
		CustomerID: c.CustomerID,
		Items:      items,
	}
}
