package customer

import (
	"strings"

	"github.com/google/uuid"
)

type Customer struct {
	ID           uuid.UUID
	TenantID     uuid.UUID
	Name         string
	FirstName    string
	LastName     string
	Phone        string
	Email        string
	Address      string
	AddressLine2 string
	TaxID        string
	PhotoURL     *string
	Pets         []Pet
}

type Pet struct {
	ID         uuid.UUID
	CustomerID uuid.UUID
	Name       string
	Breed      string
	WeightKg   *float64
	PhotoURL   *string
}

// DisplayName prefers the combined name and falls back to first + last.
func (c Customer) DisplayName() string {
	if n := strings.TrimSpace(c.Name); n != "" {
		return n
	}
	return strings.TrimSpace(strings.TrimSpace(c.FirstName) + " " + strings.TrimSpace(c.LastName))
}

func (c Customer) FindPet(id uuid.UUID) (Pet, bool) {
	for _, p := range c.Pets {
		if p.ID == id {
			return p, true
		}
	}
	return Pet{}, false
}

func (c Customer) OwnsPet(id uuid.UUID) bool {
	_, ok := c.FindPet(id)
	return ok
}
