package response

import "groombook/internal/usecase/queries"

type RecurrencePreviewResponse struct {
	Dates    []string `json:"dates"`
	Count    int      `json:"count"`
	IsSeries bool     `json:"is_series"`
}

func FromRecurrencePreview(p *queries.RecurrencePreview) *RecurrencePreviewResponse {
	return &RecurrencePreviewResponse{
		Dates:    p.Dates,
		Count:    p.Count,
		IsSeries: p.IsSeries,
	}
}
