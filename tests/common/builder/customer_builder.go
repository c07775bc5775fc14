//go:build unit || e2e

package builder

import (
	"storefront-checkout/internal/domain/customer"
	"storefront-checkout/internal/usecase/queries"

	"github.com/google/uuid"
)

type CustomerBuilder struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         string
	IsActive     bool
}

func NewCustomerBuilder() *CustomerBuilder {
	return &CustomerBuilder{
		ID:           uuid.New(),
		Email:        "test@example.com",
		PasswordHash: "hashed_password",
		Role:         "customer",
		IsActive:     true,
	}
}

func (c *CustomerBuilder) With(mutate func(*CustomerBuilder)) *CustomerBuilder {
	mutate(c)
	return c
}

// Build methods
func (c *CustomerBuilder) BuildCredentials(password string) (customer.Credentials, error) {
	return customer.NewCredentials(c.Email, password)
}

func (c *CustomerBuilder) BuildReadModel() *queries.AuthorizedCustomerView {
	return &queries.AuthorizedCustomerView{
		ID:       c.ID,
		Email:    c.Email,
		Role:     c.Role,
		IsActive: c.IsActive,
	}
}

// Fluent builder methods
func (c *CustomerBuilder) WithEmail(email string) *CustomerBuilder {
	c.Email = email
	return c
}

func (c *CustomerBuilder) WithRole(role string) *CustomerBuilder {
	c.Role = role
	return c
}

func (c *CustomerBuilder) WithIsActive(isActive bool) *CustomerBuilder {
	c.IsActive = isActive
	return c
}
