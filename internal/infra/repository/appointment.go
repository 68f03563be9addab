package repository

import (
	"context"

	"groombook/internal/domain/appointment"
	"groombook/internal/infra"
	"groombook/internal/infra/db"
	"groombook/internal/infra/repository/converter"
	"groombook/internal/pkg/psqlbuilder"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

const (
	appointmentsTable        = "appointments"
	appointmentServicesTable = "appointment_services"
)

type AppointmentRepository struct{}

func NewAppointmentRepository() *AppointmentRepository {
	return &AppointmentRepository{}
}

// CreateMany inserts every appointment and its service links with two
// multi-row statements. Callers run it inside a transaction.
func (r *AppointmentRepository) CreateMany(ctx context.Context, tx db.DBTX, items []appointment.Appointment) error {
	if len(items) == 0 {
		return nil
	}

	ins := psqlbuilder.Insert(appointmentsTable).Columns(converter.AppointmentColumns...)
	links := psqlbuilder.Insert(appointmentServicesTable).Columns(converter.AppointmentServiceColumns...)
	linkCount := 0
	for _, a := range items {
		ins = ins.Values(converter.AppointmentToValues(a)...)
		for _, row := range converter.AppointmentServicesToValues(a) {
			links = links.Values(row...)
			linkCount++
		}
	}

	query, args, err := ins.ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build appointment insert", err)
	}
	if _, err := tx.Exec(ctx, query, args...); err != nil {
		return infra.WrapRepoErr("failed to create appointments", err)
	}

	if linkCount == 0 {
		return nil
	}
	query, args, err = links.ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build appointment services insert", err)
	}
	if _, err := tx.Exec(ctx, query, args...); err != nil {
		return infra.WrapRepoErr("failed to link appointment services", err)
	}
	return nil
}

func (r *AppointmentRepository) UpdateStatus(ctx context.Context, tx db.DBTX, a appointment.Appointment) error {
	return r.update(ctx, tx, a.TenantID, a.ID, sq.Eq{"status": a.Status.String()}, "failed to update appointment status")
}

func (r *AppointmentRepository) UpdatePayment(ctx context.Context, tx db.DBTX, a appointment.Appointment) error {
	return r.update(ctx, tx, a.TenantID, a.ID, sq.Eq{"payment_status": a.PaymentStatus.String()}, "failed to update appointment payment")
}

func (r *AppointmentRepository) update(ctx context.Context, tx db.DBTX, tenantID, id uuid.UUID, set sq.Eq, msg string) error {
	// ids go in as strings: squirrel expands array values such as uuid.UUID into IN lists
	query, args, err := psqlbuilder.Update(appointmentsTable).
		SetMap(set).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"tenant_id": tenantID.String(), "id": id.String()}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr(msg, err)
	}

	tag, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return infra.WrapRepoErr(msg, err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("appointment not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *AppointmentRepository) Delete(ctx context.Context, tx db.DBTX, tenantID, id uuid.UUID) error {
	query, args, err := psqlbuilder.Delete(appointmentsTable).
		Where(sq.Eq{"tenant_id": tenantID.String(), "id": id.String()}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build appointment delete", err)
	}

	tag, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to delete appointment", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("appointment not found", nil, infra.KindNotFound)
	}
	return nil
}
