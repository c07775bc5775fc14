package response

import (
	"github.com/google/uuid"

	"storefront-checkout/internal/usecase/queries"
)

type LoginResponse struct {
	AccessToken string                          `json:"access_token"`
	Customer    *queries.AuthorizedCustomerView `json:"customer"`
}

type RefreshResponse struct {
	AccessToken string `json:"access_token"`
}

type CustomerResponse struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"isActive"`
}
