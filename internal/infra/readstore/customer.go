package readstore

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"storefront-checkout/internal/infra"
	"storefront-checkout/internal/infra/db"
	"storefront-checkout/internal/pkg/pgconv"
	"storefront-checkout/internal/usecase/queries"
)

type CustomerReadStore struct {
	db db.DBTX
}

func NewCustomerReadStore(dbtx db.DBTX) *CustomerReadStore {
	return &CustomerReadStore{db: dbtx}
}

const findCustomerByIDQuery = `
SELECT id, email, role, is_active
FROM customers
WHERE id = $1
`

const findCustomerByEmailQuery = `
SELECT id, email, role, is_active, password_hash
FROM customers
WHERE email = $1
`

func (r *CustomerReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedCustomerView, error) {
	var v queries.AuthorizedCustomerView
	err := r.db.QueryRow(ctx, findCustomerByIDQuery, id).Scan(&v.ID, &v.Email, &v.Role, &v.IsActive)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find customer", err)
	}
	return &v, nil
}

func (r *CustomerReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedCustomerView, string, error) {
	var (
		v            queries.AuthorizedCustomerView
		passwordHash string
	)
	err := r.db.QueryRow(ctx, findCustomerByEmailQuery, strings.ToLower(strings.TrimSpace(email))).
		Scan(&v.ID, &v.Email, &v.Role, &v.IsActive, &passwordHash)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find customer by email", err)
	}
	return &v, passwordHash, nil
}
