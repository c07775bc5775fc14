package repository

import (
	"context"

	"github.com/google/uuid"

	"storefront-checkout/internal/infra/db"
)

type CustomerRepository struct{}

func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{}
}

const updateLastLoginQuery = `
UPDATE customers SET last_login = now(), updated_at = now() WHERE id = $1
`

func (r *CustomerRepository) UpdateLastLogin(ctx context.Context, dbtx db.DBTX, customerID uuid.UUID) error {
	if _, err := dbtx.Exec(ctx, updateLastLoginQuery, customerID); err != nil {
		return wrapPgErr("failed to update last login", err)
	}
	return nil
}
