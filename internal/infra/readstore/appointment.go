package readstore

import (
	"context"

	"groombook/internal/infra"
	"groombook/internal/infra/db"
	"groombook/internal/pkg/pgconv"
	"groombook/internal/pkg/psqlbuilder"
	"groombook/internal/usecase/queries"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// Dates and times leave the database as text so the domain sees the same
// strings that were stored.
var appointmentViewColumns = []string{
	"a.id",
	"a.tenant_id",
	"a.customer_id",
	"COALESCE(NULLIF(c.name, ''), trim(c.first_name || ' ' || c.last_name))",
	"a.pet_id",
	"p.name",
	"ARRAY(SELECT s.service_id::text FROM appointment_services s WHERE s.appointment_id = a.id ORDER BY s.position)",
	"to_char(a.date, 'YYYY-MM-DD')",
	"CASE WHEN extract(second FROM a.time) = 0 THEN to_char(a.time, 'HH24:MI') ELSE to_char(a.time, 'HH24:MI:SS') END",
	"a.duration_minutes",
	"a.status",
	"a.payment_status",
	"a.notes",
	"a.series_id",
	"a.created_at",
	"a.updated_at",
}

type AppointmentReadStore struct {
	db db.DBTX
}

func NewAppointmentReadStore(db db.DBTX) *AppointmentReadStore {
	return &AppointmentReadStore{db: db}
}

func selectAppointmentViews() sq.SelectBuilder {
	return psqlbuilder.Select(appointmentViewColumns...).
		From("appointments a").
		Join("customers c ON c.id = a.customer_id").
		LeftJoin("pets p ON p.id = a.pet_id")
}

func (r *AppointmentReadStore) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*queries.AppointmentView, error) {
	return r.findOne(ctx, tenantID, id, false)
}

// FindByIDForUpdate locks the appointment row; only meaningful inside a transaction.
func (r *AppointmentReadStore) FindByIDForUpdate(ctx context.Context, tenantID, id uuid.UUID) (*queries.AppointmentView, error) {
	return r.findOne(ctx, tenantID, id, true)
}

func (r *AppointmentReadStore) findOne(ctx context.Context, tenantID, id uuid.UUID, lock bool) (*queries.AppointmentView, error) {
	b := selectAppointmentViews().Where(sq.Eq{"a.tenant_id": tenantID.String(), "a.id": id.String()})
	if lock {
		b = b.Suffix("FOR UPDATE OF a")
	}
	query, args, err := b.ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build appointment query", err)
	}

	v, err := scanAppointmentView(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("appointment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find appointment by ID", err)
	}
	return v, nil
}

func (r *AppointmentReadStore) FindByTenant(ctx context.Context, tenantID uuid.UUID, filter queries.AppointmentFilter) ([]*queries.AppointmentView, error) {
	b := selectAppointmentViews().
		Where(sq.Eq{"a.tenant_id": tenantID.String()}).
		OrderBy("a.date", "a.time", "a.created_at", "a.id")
	if filter.From != nil {
		b = b.Where(sq.Expr("a.date >= ?::date", filter.From.String()))
	}
	if filter.To != nil {
		b = b.Where(sq.Expr("a.date <= ?::date", filter.To.String()))
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build appointment list query", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list appointments", err)
	}
	defer rows.Close()

	var out []*queries.AppointmentView
	for rows.Next() {
		v, err := scanAppointmentView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan appointment", err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate appointments", err)
	}
	return out, nil
}

func scanAppointmentView(row pgx.Row) (*queries.AppointmentView, error) {
	var (
		v          queries.AppointmentView
		petID      pgtype.UUID
		petName    pgtype.Text
		serviceIDs []string
		notes      pgtype.Text
		seriesID   pgtype.UUID
		createdAt  pgtype.Timestamptz
		updatedAt  pgtype.Timestamptz
	)
	err := row.Scan(
		&v.ID,
		&v.TenantID,
		&v.CustomerID,
		&v.CustomerName,
		&petID,
		&petName,
		&serviceIDs,
		&v.Date,
		&v.Time,
		&v.DurationMinutes,
		&v.Status,
		&v.PaymentStatus,
		&notes,
		&seriesID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	v.PetID = pgconv.UUIDPtrFromPgtype(petID)
	v.PetName = pgconv.StringPtrFromPgtype(petName)
	v.Notes = pgconv.StringPtrFromPgtype(notes)
	v.SeriesID = pgconv.UUIDPtrFromPgtype(seriesID)
	v.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	v.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)

	v.ServiceIDs, err = pgconv.UUIDsFromStrings(serviceIDs)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
