package request

import (
	"strings"

	"groombook/internal/domain/appointment"
	"groombook/internal/domain/calendar"
	"groombook/internal/domain/recurrence"
	"groombook/internal/usecase/commands"
	"groombook/internal/usecase/queries"

	"github.com/google/uuid"
)

type RecurrenceRequest struct {
	Enabled         bool   `json:"enabled"`
	Frequency       string `json:"frequency"`
	EndMode         string `json:"end_mode"`
	OccurrenceCount int    `json:"occurrence_count"`
	UntilDate       string `json:"until_date"`
}

func (r *RecurrenceRequest) ToRule() recurrence.Rule {
	if r == nil {
		return recurrence.Rule{}
	}
	return recurrence.Rule{
		Enabled:         r.Enabled,
		Frequency:       recurrence.Frequency(strings.ToLower(strings.TrimSpace(r.Frequency))),
		EndMode:         recurrence.EndMode(strings.ToLower(strings.TrimSpace(r.EndMode))),
		OccurrenceCount: r.OccurrenceCount,
		UntilDate:       strings.TrimSpace(r.UntilDate),
	}
}

type BookAppointmentRequest struct {
	CustomerID      uuid.UUID          `json:"customer_id" binding:"required"`
	PetID           *uuid.UUID         `json:"pet_id,omitempty"`
	ServiceIDs      []uuid.UUID        `json:"service_ids" binding:"required,min=1"`
	Date            string             `json:"date" binding:"required"`
	Time            string             `json:"time" binding:"required"`
	DurationMinutes *int               `json:"duration_minutes,omitempty" binding:"omitnil,min=1"`
	Notes           *string            `json:"notes,omitempty" binding:"omitempty,max=2000"`
	Recurrence      *RecurrenceRequest `json:"recurrence,omitempty"`
}

func (r BookAppointmentRequest) ToCommand() commands.BookRequest {
	return commands.BookRequest{
		CustomerID:      r.CustomerID,
		PetID:           r.PetID,
		ServiceIDs:      r.ServiceIDs,
		StartDate:       strings.TrimSpace(r.Date),
		Time:            strings.TrimSpace(r.Time),
		Notes:           r.Notes,
		DurationMinutes: r.DurationMinutes,
		Recurrence:      r.Recurrence.ToRule(),
	}
}

type RecurrencePreviewRequest struct {
	Date       string             `json:"date" binding:"required"`
	Time       string             `json:"time" binding:"required"`
	Recurrence *RecurrenceRequest `json:"recurrence,omitempty"`
}

func (r RecurrencePreviewRequest) ToIntent() recurrence.Intent {
	return recurrence.Intent{
		StartDate: strings.TrimSpace(r.Date),
		Time:      strings.TrimSpace(r.Time),
		Rule:      r.Recurrence.ToRule(),
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ListAppointmentsQuery struct {
	Bucket      string `form:"bucket"`
	PendingOnly bool   `form:"pendingOnly"`
	From        string `form:"from"`
	To          string `form:"to"`
}

// ToParams defaults the bucket to upcoming.
func (q ListAppointmentsQuery) ToParams() (queries.ListBucketParams, error) {
	bucket := appointment.ModeUpcoming
	if strings.TrimSpace(q.Bucket) != "" {
		m, ok := appointment.ParseMode(strings.ToLower(strings.TrimSpace(q.Bucket)))
		if !ok {
			return queries.ListBucketParams{}, queries.ErrInvalidBucket
		}
		bucket = m
	}

	params := queries.ListBucketParams{Bucket: bucket, PendingOnly: q.PendingOnly}
	var err error
	if params.From, err = optionalDayKey(q.From); err != nil {
		return queries.ListBucketParams{}, err
	}
	if params.To, err = optionalDayKey(q.To); err != nil {
		return queries.ListBucketParams{}, err
	}
	return params, nil
}

func optionalDayKey(raw string) (*calendar.DayKey, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	k, err := calendar.ParseDayKey(raw)
	if err != nil {
		return nil, err
	}
	return &k, nil
}
