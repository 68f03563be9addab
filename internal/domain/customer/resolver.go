package customer

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

// Search resolves free text against a tenant roster. Customers and pets match
// independently; results keep roster order, a customer's own candidate first
// and then its matching pets. A blank query lists every customer.
func Search(query string, roster []Customer) []MatchCandidate {
	fold := cases.Fold()
	q := fold.String(strings.TrimSpace(query))

	if q == "" {
		out := make([]MatchCandidate, 0, len(roster))
		for _, c := range roster {
			out = append(out, CustomerMatch{Customer: c})
		}
		return out
	}

	qDigits := digitsOnly(q)
	var out []MatchCandidate
	for _, c := range roster {
		if contains(fold, c.DisplayName(), q) || phoneMatches(fold, c.Phone, q, qDigits) {
			out = append(out, CustomerMatch{Customer: c})
		}
		for _, p := range c.Pets {
			if contains(fold, p.Name, q) || contains(fold, p.Breed, q) {
				out = append(out, PetMatch{Customer: c, Pet: p})
			}
		}
	}
	return out
}

func contains(fold cases.Caser, field, q string) bool {
	if field == "" {
		return false
	}
	return strings.Contains(fold.String(field), q)
}

// phoneMatches also compares digit-only forms so "9988" finds "(11) 99988-7766".
func phoneMatches(fold cases.Caser, phone, q, qDigits string) bool {
	if contains(fold, phone, q) {
		return true
	}
	if qDigits == "" || strings.IndexFunc(q, unicode.IsLetter) >= 0 {
		return false
	}
	return strings.Contains(digitsOnly(phone), qDigits)
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
