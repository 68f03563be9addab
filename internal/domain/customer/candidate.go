package customer

import "github.com/google/uuid"

type CandidateKind string

const (
	KindCustomer CandidateKind = "customer"
	KindPet      CandidateKind = "pet"
)

// Selection is what choosing a candidate commits to. A pet choice always
// carries its owner as well.
type Selection struct {
	CustomerID uuid.UUID
	PetID      *uuid.UUID
}

// MatchCandidate is either a CustomerMatch or a PetMatch. The unexported
// method keeps the set closed so a type switch over both is exhaustive.
type MatchCandidate interface {
	Kind() CandidateKind
	Label() string
	Subtitle() string
	Selection() Selection
	isCandidate()
}

type CustomerMatch struct {
	Customer Customer
}

func (m CustomerMatch) Kind() CandidateKind { return KindCustomer }
func (m CustomerMatch) Label() string       { return m.Customer.DisplayName() }
func (m CustomerMatch) Subtitle() string    { return m.Customer.Phone }
func (m CustomerMatch) Selection() Selection {
	return Selection{CustomerID: m.Customer.ID}
}
func (CustomerMatch) isCandidate() {}

type PetMatch struct {
	Customer Customer
	Pet      Pet
}

func (m PetMatch) Kind() CandidateKind { return KindPet }
func (m PetMatch) Label() string       { return m.Pet.Name }

func (m PetMatch) Subtitle() string {
	owner := m.Customer.DisplayName()
	if m.Pet.Breed == "" {
		return owner
	}
	return owner + " - " + m.Pet.Breed
}

func (m PetMatch) Selection() Selection {
	petID := m.Pet.ID
	return Selection{CustomerID: m.Customer.ID, PetID: &petID}
}
func (PetMatch) isCandidate() {}
