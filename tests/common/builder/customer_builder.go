//go:build unit || e2e

package builder

import (
	"groombook/internal/domain/customer"

	"github.com/google/uuid"
)

type CustomerBuilder struct {
	customer customer.Customer
}

func NewCustomerBuilder(name string) *CustomerBuilder {
	return &CustomerBuilder{customer: customer.Customer{
		ID:       uuid.New(),
		TenantID: uuid.New(),
		Name:     name,
		Phone:    "(11) 99988-7766",
	}}
}

func (b *CustomerBuilder) WithPhone(phone string) *CustomerBuilder {
	b.customer.Phone = phone
	return b
}

func (b *CustomerBuilder) WithPet(name, breed string) *CustomerBuilder {
	b.customer.Pets = append(b.customer.Pets, customer.Pet{
		ID:         uuid.New(),
		CustomerID: b.customer.ID,
		Name:       name,
		Breed:      breed,
	})
	return b
}

func (b *CustomerBuilder) Build() customer.Customer {
	return b.customer
}
