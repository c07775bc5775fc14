package readstore

import (
	"context"

	"github.com/google/uuid"

	"storefront-checkout/internal/infra"
	"storefront-checkout/internal/infra/db"
	"storefront-checkout/internal/pkg/pgconv"
	"storefront-checkout/internal/usecase/shared"
)

type AddressReadStore struct {
	db db.DBTX
}

func NewAddressReadStore(dbtx db.DBTX) *AddressReadStore {
	return &AddressReadStore{db: dbtx}
}

const findAddressByIDQuery = `
SELECT id, customer_id
FROM addresses
WHERE id = $1
`

func (r *AddressReadStore) FindByID(ctx context.Context, id uuid.UUID) (*shared.AddressSnapshot, error) {
	var a shared.AddressSnapshot
	err := r.db.QueryRow(ctx, findAddressByIDQuery, id).Scan(&a.ID, &a.CustomerID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("address not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find address", err)
	}
	return &a, nil
}
