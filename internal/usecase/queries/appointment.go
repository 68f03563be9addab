package queries

import (
	"context"
	"time"

	"groombook/internal/domain/appointment"
	"groombook/internal/domain/calendar"
	"groombook/internal/infra"
	"groombook/internal/pkg/clock"
	"groombook/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrAppointmentNotFound = errs.ErrAppointmentNotFound
	ErrInvalidBucket       = errs.New("unknown appointment bucket")
	ErrInvalidDateRange    = errs.New("invalid date range")
)

// Read models (DTO for read side)
type AppointmentView struct {
	ID              uuid.UUID   `json:"id"`
	TenantID        uuid.UUID   `json:"tenant_id"`
	CustomerID      uuid.UUID   `json:"customer_id"`
	CustomerName    string      `json:"customer_name"`
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
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// Appointment rebuilds the domain value. Unknown status strings pass through
// unchanged; classification treats them like any other non-settled status.
func (v *AppointmentView) Appointment() appointment.Appointment {
	return appointment.Appointment{
		ID:              v.ID,
		TenantID:        v.TenantID,
		CustomerID:      v.CustomerID,
		PetID:           v.PetID,
		ServiceIDs:      v.ServiceIDs,
		Date:            v.Date,
		Time:            v.Time,
		DurationMinutes: v.DurationMinutes,
		Status:          appointment.Status(v.Status),
		PaymentStatus:   appointment.PaymentStatus(v.PaymentStatus),
		Notes:           v.Notes,
		SeriesID:        v.SeriesID,
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}
}

// AppointmentFilter narrows what the store loads before classification.
type AppointmentFilter struct {
	From *calendar.DayKey
	To   *calendar.DayKey
}

type ListBucketParams struct {
	Bucket      appointment.Mode
	PendingOnly bool
	From        *calendar.DayKey
	To          *calendar.DayKey
}

type AppointmentReadStore interface {
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*AppointmentView, error)
	FindByTenant(ctx context.Context, tenantID uuid.UUID, filter AppointmentFilter) ([]*AppointmentView, error)
}

type AppointmentQueries interface {
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*AppointmentView, error)
	ListBucket(ctx context.Context, tenantID uuid.UUID, params ListBucketParams) ([]*AppointmentView, error)
}

type appointmentQueriesImpl struct {
	store AppointmentReadStore
	clock clock.Clock
	loc   *time.Location
}

func NewAppointmentQueries(store AppointmentReadStore, clk clock.Clock, loc *time.Location) AppointmentQueries {
	if loc == nil {
		loc = time.UTC
	}
	return &appointmentQueriesImpl{store: store, clock: clock.In(clk, loc), loc: loc}
}

func (q *appointmentQueriesImpl) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*AppointmentView, error) {
	v, err := q.store.FindByID(ctx, tenantID, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return v, nil
}

// ListBucket loads the tenant's appointments, keeps those in the requested
// bucket and returns them in chronological order.
func (q *appointmentQueriesImpl) ListBucket(ctx context.Context, tenantID uuid.UUID, params ListBucketParams) ([]*AppointmentView, error) {
	if !params.Bucket.IsValid() {
		return nil, ErrInvalidBucket
	}
	if params.From != nil && params.To != nil && params.To.Before(*params.From) {
		return nil, ErrInvalidDateRange
	}

	views, err := q.store.FindByTenant(ctx, tenantID, AppointmentFilter{From: params.From, To: params.To})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	now := q.clock.Now()
	today := calendar.DayKeyFromTime(now)

	byID := make(map[uuid.UUID]*AppointmentView, len(views))
	items := make([]appointment.Appointment, 0, len(views))
	for _, v := range views {
		byID[v.ID] = v
		items = append(items, v.Appointment())
	}

	selected := appointment.Classify(items, params.Bucket, today, now, appointment.ClassifyOptions{
		PendingOnly: params.PendingOnly,
		Unpaid:      appointment.PastOrCompletedUnpaid(today, now, q.loc),
		Location:    q.loc,
	})
	sorted := appointment.SortAscending(selected, q.loc)

	out := make([]*AppointmentView, 0, len(sorted))
	for _, a := range sorted {
		out = append(out, byID[a.ID])
	}
	return out, nil
}
