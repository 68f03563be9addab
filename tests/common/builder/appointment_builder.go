//go:build unit || e2e

package builder

import (
	"time"

	"groombook/internal/domain/appointment"

	"github.com/google/uuid"
)

type AppointmentBuilder struct {
	ID              uuid.UUID
	TenantID        uuid.UUID
	CustomerID      uuid.UUID
	PetID           *uuid.UUID
	ServiceIDs      []uuid.UUID
	Date            string
	Time            string
	DurationMinutes int
	Status          appointment.Status
	PaymentStatus   appointment.PaymentStatus
	Notes           *string
	SeriesID        *uuid.UUID
	CreatedAt       time.Time
}

func NewAppointmentBuilder() *AppointmentBuilder {
	petID := uuid.New()
	return &AppointmentBuilder{
		ID:              uuid.New(),
		TenantID:        uuid.New(),
		CustomerID:      uuid.New(),
		PetID:           &petID,
		ServiceIDs:      []uuid.UUID{uuid.New()},
		Date:            "2025-06-10",
		Time:            "10:00",
		DurationMinutes: 60,
		Status:          appointment.StatusScheduled,
		PaymentStatus:   appointment.PaymentUnpaid,
		CreatedAt:       time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *AppointmentBuilder) With(mutate func(*AppointmentBuilder)) *AppointmentBuilder {
	mutate(b)
	return b
}

func (b *AppointmentBuilder) At(date, tod string) *AppointmentBuilder {
	b.Date = date
	b.Time = tod
	return b
}

func (b *AppointmentBuilder) WithStatus(s appointment.Status) *AppointmentBuilder {
	b.Status = s
	return b
}

func (b *AppointmentBuilder) Paid() *AppointmentBuilder {
	b.PaymentStatus = appointment.PaymentPaid
	return b
}

// BuildDomain returns the value as it would be loaded from storage.
func (b *AppointmentBuilder) BuildDomain() appointment.Appointment {
	return appointment.Appointment{
		ID:              b.ID,
		TenantID:        b.TenantID,
		CustomerID:      b.CustomerID,
		PetID:           b.PetID,
		ServiceIDs:      b.ServiceIDs,
		Date:            b.Date,
		Time:            b.Time,
		DurationMinutes: b.DurationMinutes,
		Status:          b.Status,
		PaymentStatus:   b.PaymentStatus,
		Notes:           b.Notes,
		SeriesID:        b.SeriesID,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.CreatedAt,
	}
}
