package commands

import (
	"context"
	"log/slog"
	"slices"

	"groombook/internal/domain/appointment"
	"groombook/internal/domain/calendar"
	"groombook/internal/domain/recurrence"
	"groombook/internal/infra"
	"groombook/internal/pkg/errs"
	"groombook/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrAppointmentNotFound     = errs.ErrAppointmentNotFound
	ErrCustomerNotFound        = errs.ErrCustomerNotFound
	ErrPetNotOwned             = errs.ErrPetNotOwned
	ErrServiceNotFound         = errs.ErrServiceNotFound
	ErrDatabaseOperationFailed = errs.ErrDatabaseOperationFailed
)

type BookRequest struct {
	CustomerID uuid.UUID
	PetID      *uuid.UUID
	ServiceIDs []uuid.UUID
	StartDate  string
	Time       string
	Notes      *string
	// DurationMinutes overrides the sum of the service durations when set.
	DurationMinutes *int
	Recurrence      recurrence.Rule
}

type BookResult struct {
	SeriesID     *uuid.UUID
	Appointments []appointment.Appointment
}

type AppointmentCommands interface {
	Book(ctx context.Context, tenantID uuid.UUID, req BookRequest) (*BookResult, error)
	ChangeStatus(ctx context.Context, tenantID, id uuid.UUID, status string) (*appointment.Appointment, error)
	TogglePayment(ctx context.Context, tenantID, id uuid.UUID) (*appointment.Appointment, error)
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}

type appointmentUseCaseImpl struct {
	uow      shared.UnitOfWork
	expander *recurrence.Expander
	recorder BookingRecorder
}

func NewAppointmentUseCase(uow shared.UnitOfWork, expander *recurrence.Expander, recorder BookingRecorder) AppointmentCommands {
	return &appointmentUseCaseImpl{uow: uow, expander: expander, recorder: recorder}
}

// Book expands the request into its occurrences and stores all of them in a
// single transaction. Occurrences of one request share a series id.
func (uc *appointmentUseCaseImpl) Book(ctx context.Context, tenantID uuid.UUID, req BookRequest) (*BookResult, error) {
	occurrences, err := uc.expander.Expand(recurrence.Intent{
		StartDate: req.StartDate,
		Time:      req.Time,
		Rule:      req.Recurrence,
	})
	if err != nil {
		return nil, err
	}
	tod, err := calendar.ParseTimeOfDay(req.Time)
	if err != nil {
		return nil, err
	}

	serviceIDs := dedupeIDs(req.ServiceIDs)
	if len(serviceIDs) == 0 {
		return nil, appointment.ErrMissingServices
	}

	var seriesID *uuid.UUID
	if occurrences.IsSeries() {
		id := uuid.New()
		seriesID = &id
	}

	var created []appointment.Appointment
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		cust, derr := tx.Reads().CustomerByID(ctx, tenantID, req.CustomerID)
		if derr != nil {
			return mapNotFound(derr, ErrCustomerNotFound)
		}
		if req.PetID != nil && !cust.OwnsPet(*req.PetID) {
			return ErrPetNotOwned
		}

		durations, derr := tx.Reads().ServiceDurations(ctx, tenantID, serviceIDs)
		if derr != nil {
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		minutes := make([]int, 0, len(serviceIDs))
		for _, id := range serviceIDs {
			d, ok := durations[id]
			if !ok {
				return ErrServiceNotFound
			}
			minutes = append(minutes, d)
		}
		duration := appointment.TotalDuration(minutes)
		if req.DurationMinutes != nil {
			duration = *req.DurationMinutes
		}

		items := make([]appointment.Appointment, 0, len(occurrences))
		for _, day := range occurrences {
			a, derr := appointment.New(appointment.NewParams{
				TenantID:        tenantID,
				CustomerID:      cust.ID,
				PetID:           req.PetID,
				ServiceIDs:      serviceIDs,
				Date:            day,
				Time:            tod,
				DurationMinutes: duration,
				Notes:           req.Notes,
				SeriesID:        seriesID,
			})
			if derr != nil {
				return derr
			}
			items = append(items, a)
		}

		if derr := tx.Appointments().CreateMany(ctx, tx.DB(), items); derr != nil {
			return errs.Mark(derr, errs.ErrSeriesNotCreated)
		}
		created = items
		return nil
	})
	if err != nil {
		return nil, err
	}

	if uc.recorder != nil {
		uc.recorder.AppointmentsBooked(len(created))
	}
	attrs := []any{"tenant_id", tenantID.String(), "occurrences", len(created)}
	if seriesID != nil {
		attrs = append(attrs, "series_id", seriesID.String())
	}
	slog.Info("appointments booked", attrs...)

	return &BookResult{SeriesID: seriesID, Appointments: created}, nil
}

func (uc *appointmentUseCaseImpl) ChangeStatus(ctx context.Context, tenantID, id uuid.UUID, status string) (*appointment.Appointment, error) {
	next, err := appointment.ParseStatus(status)
	if err != nil {
		return nil, err
	}

	var updated appointment.Appointment
	changed := false
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, derr := tx.Reads().AppointmentByID(ctx, tenantID, id)
		if derr != nil {
			return mapNotFound(derr, ErrAppointmentNotFound)
		}

		updated, derr = appointment.SetStatus(*current, next)
		if derr != nil {
			return derr
		}
		if updated.Status == current.Status {
			return nil
		}
		changed = true
		return mapNotFound(tx.Appointments().UpdateStatus(ctx, tx.DB(), updated), ErrAppointmentNotFound)
	})
	if err != nil {
		return nil, err
	}

	if changed && uc.recorder != nil {
		uc.recorder.StatusChanged(updated.Status.String())
	}
	return &updated, nil
}

func (uc *appointmentUseCaseImpl) TogglePayment(ctx context.Context, tenantID, id uuid.UUID) (*appointment.Appointment, error) {
	var updated appointment.Appointment
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, derr := tx.Reads().AppointmentByID(ctx, tenantID, id)
		if derr != nil {
			return mapNotFound(derr, ErrAppointmentNotFound)
		}

		updated = appointment.TogglePayment(*current)
		return mapNotFound(tx.Appointments().UpdatePayment(ctx, tx.DB(), updated), ErrAppointmentNotFound)
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (uc *appointmentUseCaseImpl) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, derr := tx.Reads().AppointmentByID(ctx, tenantID, id)
		if derr != nil {
			return mapNotFound(derr, ErrAppointmentNotFound)
		}
		if derr := appointment.EnsureDeletable(*current); derr != nil {
			return derr
		}
		return mapNotFound(tx.Appointments().Delete(ctx, tx.DB(), tenantID, id), ErrAppointmentNotFound)
	})
}

// mapNotFound turns a repository not-found into the given use case error and
// marks anything else as a database failure.
func mapNotFound(err error, notFound error) error {
	if err == nil {
		return nil
	}
	if infra.IsKind(err, infra.KindNotFound) {
		return notFound
	}
	return errs.Mark(err, ErrDatabaseOperationFailed)
}

func dedupeIDs(ids []uuid.UUID) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id == uuid.Nil || slices.Contains(out, id) {
			continue
		}
		out = append(out, id)
	}
	return out
}
