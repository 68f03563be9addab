package converter

import (
	"groombook/internal/domain/appointment"
	"groombook/internal/pkg/pgconv"

	sq "github.com/Masterminds/squirrel"
)

var AppointmentColumns = []string{
	"id",
	"tenant_id",
	"customer_id",
	"pet_id",
	"date",
	"time",
	"duration_minutes",
	"status",
	"payment_status",
	"notes",
	"series_id",
}

// AppointmentToValues follows AppointmentColumns. Date and time are cast
// server side so the raw strings never need a Go time round trip.
func AppointmentToValues(a appointment.Appointment) []any {
	return []any{
		a.ID,
		a.TenantID,
		a.CustomerID,
		pgconv.UUIDPtrToPgtype(a.PetID),
		sq.Expr("?::date", a.Date),
		sq.Expr("?::time", a.Time),
		a.DurationMinutes,
		a.Status.String(),
		a.PaymentStatus.String(),
		pgconv.StringPtrToPgtype(a.Notes),
		pgconv.UUIDPtrToPgtype(a.SeriesID),
	}
}

var AppointmentServiceColumns = []string{"appointment_id", "service_id", "position"}

func AppointmentServicesToValues(a appointment.Appointment) [][]any {
	rows := make([][]any, 0, len(a.ServiceIDs))
	for i, id := range a.ServiceIDs {
		rows = append(rows, []any{a.ID, id, i})
	}
	return rows
}
