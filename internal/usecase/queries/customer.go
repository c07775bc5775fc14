package queries

import (
	"context"

	"github.com/google/uuid"

	"storefront-checkout/internal/infra"
	"storefront-checkout/internal/pkg/errs"
)

var (
	ErrCustomerNotFound = errs.New("customer not found")
	ErrCustomerInactive = errs.New("customer inactive")
)

type AuthorizedCustomerView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"isActive"`
}

type CustomerQueries interface {
	GetCurrentCustomer(ctx context.Context, customerID uuid.UUID) (*AuthorizedCustomerView, error)
}

type CustomerReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AuthorizedCustomerView, error)
	FindByEmail(ctx context.Context, email string) (*AuthorizedCustomerView, string, error)
}

type customerQueriesImpl struct {
	readStore CustomerReadStore
}

func NewCustomerQueries(readStore CustomerReadStore) CustomerQueries {
	return &customerQueriesImpl{
		readStore: readStore,
	}
}

func (q *customerQueriesImpl) GetCurrentCustomer(ctx context.Context, customerID uuid.UUID) (*AuthorizedCustomerView, error) {
	view, err := q.readStore.FindByID(ctx, customerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}

	if !view.IsActive {
		return nil, ErrCustomerInactive
	}

	return view, nil
}
