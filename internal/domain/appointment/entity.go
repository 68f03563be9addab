package appointment

import (
	"slices"
	"strings"
	"time"

	"groombook/internal/domain/calendar"

	"github.com/google/uuid"
)

// Appointment is one concrete dated booking. Date and Time keep the raw
// persisted values so read-side processing can degrade on malformed rows.
type Appointment struct {
	ID              uuid.UUID
	TenantID        uuid.UUID
	CustomerID      uuid.UUID
	PetID           *uuid.UUID
	ServiceIDs      []uuid.UUID
	Date            string
	Time            string
	DurationMinutes int
	Status          Status
	PaymentStatus   PaymentStatus
	Notes           *string
	SeriesID        *uuid.UUID
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type NewParams struct {
	TenantID        uuid.UUID
	CustomerID      uuid.UUID
	PetID           *uuid.UUID
	ServiceIDs      []uuid.UUID
	Date            calendar.DayKey
	Time            calendar.TimeOfDay
	DurationMinutes int
	Notes           *string
	SeriesID        *uuid.UUID
}

// New builds a freshly booked appointment: scheduled and unpaid.
func New(p NewParams) (Appointment, error) {
	if p.CustomerID == uuid.Nil {
		return Appointment{}, ErrMissingCustomer
	}
	if len(p.ServiceIDs) == 0 {
		return Appointment{}, ErrMissingServices
	}
	if p.DurationMinutes <= 0 {
		return Appointment{}, ErrInvalidDuration
	}
	if !p.Date.IsValid() {
		return Appointment{}, ErrInvalidAppointmentDay
	}

	var notes *string
	if p.Notes != nil {
		trimmed := strings.TrimSpace(*p.Notes)
		if trimmed != "" {
			notes = &trimmed
		}
	}

	return Appointment{
		ID:              uuid.New(),
		TenantID:        p.TenantID,
		CustomerID:      p.CustomerID,
		PetID:           p.PetID,
		ServiceIDs:      slices.Clone(p.ServiceIDs),
		Date:            p.Date.String(),
		Time:            p.Time.String(),
		DurationMinutes: p.DurationMinutes,
		Status:          StatusScheduled,
		PaymentStatus:   PaymentUnpaid,
		Notes:           notes,
		SeriesID:        p.SeriesID,
	}, nil
}

// TotalDuration sums the durations of the selected services.
func TotalDuration(serviceMinutes []int) int {
	total := 0
	for _, m := range serviceMinutes {
		if m > 0 {
			total += m
		}
	}
	return total
}

func (a Appointment) DayKey(loc *time.Location) (calendar.DayKey, bool) {
	return calendar.DayKeyOf(a.Date, loc)
}

func (a Appointment) TimeOfDay() (calendar.TimeOfDay, bool) {
	tod, err := calendar.ParseTimeOfDay(a.Time)
	if err != nil {
		return calendar.TimeOfDay{}, false
	}
	return tod, true
}

// DateTime combines Date and Time in loc. ok is false when either part is malformed.
func (a Appointment) DateTime(loc *time.Location) (time.Time, bool) {
	day, ok := a.DayKey(loc)
	if !ok {
		return time.Time{}, false
	}
	tod, ok := a.TimeOfDay()
	if !ok {
		return time.Time{}, false
	}
	t, err := calendar.Combine(day, tod, loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func (a Appointment) IsPaid() bool {
	return a.PaymentStatus == PaymentPaid
}

func (a Appointment) InSeries() bool {
	return a.SeriesID != nil
}
