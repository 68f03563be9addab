package response

import (
	"groombook/internal/domain/customer"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type PetSummary struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Breed    string    `json:"breed,omitempty"`
	WeightKg *float64  `json:"weight_kg,omitempty"`
	PhotoURL *string   `json:"photo_url,omitempty"`
}

type CustomerSummary struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Phone    string    `json:"phone,omitempty"`
	Email    string    `json:"email,omitempty"`
	PhotoURL *string   `json:"photo_url,omitempty"`
}

// CandidateResponse is one autocomplete entry. Pet is only set for pet
// candidates; selecting one books both customer_id and pet_id.
type CandidateResponse struct {
	Type       string          `json:"type"`
	Label      string          `json:"label"`
	Subtitle   string          `json:"subtitle,omitempty"`
	CustomerID uuid.UUID       `json:"customer_id"`
	PetID      *uuid.UUID      `json:"pet_id,omitempty"`
	Customer   CustomerSummary `json:"customer"`
	Pet        *PetSummary     `json:"pet,omitempty"`
}

type CustomerSearchResponse struct {
	Query      string               `json:"query"`
	Candidates []*CandidateResponse `json:"candidates"`
}

func FromCandidate(m customer.MatchCandidate) *CandidateResponse {
	sel := m.Selection()
	res := &CandidateResponse{
		Type:       string(m.Kind()),
		Label:      m.Label(),
		Subtitle:   m.Subtitle(),
		CustomerID: sel.CustomerID,
		PetID:      sel.PetID,
	}

	switch c := m.(type) {
	case customer.CustomerMatch:
		res.Customer = summarize(c.Customer)
	case customer.PetMatch:
		res.Customer = summarize(c.Customer)
		pet := &PetSummary{}
		_ = copier.Copy(pet, &c.Pet)
		res.Pet = pet
	}
	return res
}

func FromCandidates(query string, ms []customer.MatchCandidate) *CustomerSearchResponse {
	out := &CustomerSearchResponse{Query: query, Candidates: make([]*CandidateResponse, 0, len(ms))}
	for _, m := range ms {
		out.Candidates = append(out.Candidates, FromCandidate(m))
	}
	return out
}

func summarize(c customer.Customer) CustomerSummary {
	s := CustomerSummary{}
	_ = copier.Copy(&s, &c)
	s.Name = c.DisplayName()
	return s
}
