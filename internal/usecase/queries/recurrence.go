package queries

import (
	"groombook/internal/domain/recurrence"
)

type RecurrencePreview struct {
	Dates    []string `json:"dates"`
	IsSeries bool     `json:"is_series"`
	Count    int      `json:"count"`
}

// RecurrenceQueries expands an intent without persisting anything so forms
// can surface validation errors while the user is still typing.
type RecurrenceQueries interface {
	Preview(intent recurrence.Intent) (*RecurrencePreview, error)
}

type recurrenceQueriesImpl struct {
	expander *recurrence.Expander
}

func NewRecurrenceQueries(expander *recurrence.Expander) RecurrenceQueries {
	return &recurrenceQueriesImpl{expander: expander}
}

func (q *recurrenceQueriesImpl) Preview(intent recurrence.Intent) (*RecurrencePreview, error) {
	occ, err := q.expander.Expand(intent)
	if err != nil {
		return nil, err
	}
	return &RecurrencePreview{
		Dates:    occ.Strings(),
		IsSeries: occ.IsSeries(),
		Count:    len(occ),
	}, nil
}
