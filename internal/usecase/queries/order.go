package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"storefront-checkout/internal/infra"
	"storefront-checkout/internal/pkg/errs"
)

var ErrOrderNotFound = errs.New("order not found")

type OrderLineView struct {
	ProductID      uuid.UUID  `json:"productId"`
	VariantID      uuid.UUID  `json:"variantId"`
	Name           string     `json:"name"`
	UnitPrice      int64      `json:"unitPrice"`
	Quantity       int32      `json:"quantity"`
	OfferDiscount  int64      `json:"offerDiscount"`
	AppliedOfferID *uuid.UUID `json:"appliedOfferId,omitempty"`
	LineTotal      int64      `json:"lineTotal"`
}

type OrderView struct {
	ID                uuid.UUID           `json:"id"`
	CustomerID        uuid.UUID           `json:"customerId"`
	Source            string              `json:"source"`
	Status            string              `json:"status"`
	PaymentMethod     string              `json:"paymentMethod"`
	ShippingAddressID uuid.UUID           `json:"shippingAddressId"`
	Lines             []OrderLineView     `json:"lines"`
	Subtotal          int64               `json:"subtotal"`
	ProductDiscount   int64               `json:"productDiscount"`
	OfferDiscount     int64               `json:"offerDiscount"`
	CouponDiscount    int64               `json:"couponDiscount"`
	ShippingCharge    int64               `json:"shippingCharge"`
	Tax               int64               `json:"tax"`
	Total             int64               `json:"total"`
	CouponSnapshot    *CouponSnapshotView `json:"couponSnapshot,omitempty"`
	CreatedAt         time.Time           `json:"createdAt"`
}

type OrderListItem struct {
	ID            uuid.UUID `json:"id"`
	Source        string    `json:"source"`
	Status        string    `json:"status"`
	PaymentMethod string    `json:"paymentMethod"`
	Total         int64     `json:"total"`
	ItemCount     int32     `json:"itemCount"`
	CreatedAt     time.Time `json:"createdAt"`
}

type OrderQueries interface {
	GetByID(ctx context.Context, actor uuid.UUID, id uuid.UUID) (*OrderView, error)
	// GetByIDSystem skips the ownership check for internal read-after-write
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*OrderView, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID, limit int) ([]*OrderListItem, error)
}

type OrderViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*OrderView, error)
	FindByCustomerID(ctx context.Context, customerID uuid.UUID, limit int32) ([]*OrderListItem, error)
}

type orderQueriesImpl struct {
	repo OrderViewRepo
}

func NewOrderQueries(repo OrderViewRepo) OrderQueries {
	return &orderQueriesImpl{repo: repo}
}

// GetByID enforces ownership: a customer can only read their own orders, and
// an order that belongs to someone else looks exactly like a missing one.
func (q *orderQueriesImpl) GetByID(ctx context.Context, actor uuid.UUID, id uuid.UUID) (*OrderView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	if view.CustomerID != actor {
		return nil, ErrOrderNotFound
	}
	return view, nil
}

func (q *orderQueriesImpl) GetByIDSystem(ctx context.Context, id uuid.UUID) (*OrderView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *orderQueriesImpl) ListByCustomer(ctx context.Context, customerID uuid.UUID, limit int) ([]*OrderListItem, error) {
	if limit <= 0 {
		limit = 50
	}
	return q.repo.FindByCustomerID(ctx, customerID, int32(limit))
}
