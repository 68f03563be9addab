package response

import (
	"time"

	"groombook/internal/domain/appointment"
	"groombook/internal/usecase/commands"
	"groombook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type AppointmentResponse struct {
	ID              uuid.UUID   `json:"id"`
	CustomerID      uuid.UUID   `json:"customer_id"`
	CustomerName    string      `json:"customer_name,omitempty"`
	PetID           *uuid.UUID  `json:"pet_id,omitempty"`
	PetName         *string     `json:"pet_name,omitempty"`
	ServiceIDs      []uuid.UUID `json:"service_ids"`
	Date            string      `json:"date"`
	Time            string      `json:"time"`
	DurationMinutes int         `json:"duration_minutes"`
	Status          string      `json:"status"`
	PaymentStatus   string      `json:"payment_status"`
	Notes           *string     `json:"notes,omitempty"`
	SeriesID        *uuid.UUID  `json:"series_id,omitempty"`
	CanDelete       bool        `json:"can_delete"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

type BookAppointmentResponse struct {
	SeriesID     *uuid.UUID             `json:"series_id,omitempty"`
	Count        int                    `json:"count"`
	Appointments []*AppointmentResponse `json:"appointments"`
}

type AppointmentListResponse struct {
	Bucket       string                 `json:"bucket"`
	Appointments []*AppointmentResponse `json:"appointments"`
}

func FromAppointmentView(v *queries.AppointmentView) *AppointmentResponse {
	res := &AppointmentResponse{}
	_ = copier.Copy(res, v)
	res.CanDelete = appointment.CanDelete(v.Appointment())
	return res
}

func FromAppointmentViews(vs []*queries.AppointmentView) []*AppointmentResponse {
	out := make([]*AppointmentResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, FromAppointmentView(v))
	}
	return out
}

func FromAppointment(a *appointment.Appointment) *AppointmentResponse {
	res := &AppointmentResponse{}
	_ = copier.Copy(res, a)
	res.Status = a.Status.String()
	res.PaymentStatus = a.PaymentStatus.String()
	res.CanDelete = appointment.CanDelete(*a)
	return res
}

func FromBookResult(r *commands.BookResult) *BookAppointmentResponse {
	out := &BookAppointmentResponse{
		SeriesID:     r.SeriesID,
		Count:        len(r.Appointments),
		Appointments: make([]*AppointmentResponse, 0, len(r.Appointments)),
	}
	for i := range r.Appointments {
		out.Appointments = append(out.Appointments, FromAppointment(&r.Appointments[i]))
	}
	return out
}
