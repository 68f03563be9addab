package readstore

import (
	"context"

	"groombook/internal/domain/customer"
	"groombook/internal/infra"
	"groombook/internal/infra/db"
	"groombook/internal/pkg/pgconv"
	"groombook/internal/pkg/psqlbuilder"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// Pets are aggregated per customer in the same statement so a roster is
// always read from one snapshot.
const petsJSONColumn = `COALESCE((
	SELECT json_agg(json_build_object(
		'id', p.id,
		'name', p.name,
		'breed', p.breed,
		'weight_kg', p.weight_kg,
		'photo_url', p.photo_url
	) ORDER BY p.created_at, p.id)
	FROM pets p WHERE p.customer_id = c.id
), '[]'::json)`

var customerColumns = []string{
	"c.id",
	"c.tenant_id",
	"c.name",
	"c.first_name",
	"c.last_name",
	"c.phone",
	"c.email",
	"c.address",
	"c.address_line2",
	"c.tax_id",
	"c.photo_url",
	petsJSONColumn,
}

type petRow struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Breed    string    `json:"breed"`
	WeightKg *float64  `json:"weight_kg"`
	PhotoURL *string   `json:"photo_url"`
}

type CustomerReadStore struct {
	db db.DBTX
}

func NewCustomerReadStore(db db.DBTX) *CustomerReadStore {
	return &CustomerReadStore{db: db}
}

// FindRoster returns every customer of the tenant with their pets, in the
// order they were registered.
func (r *CustomerReadStore) FindRoster(ctx context.Context, tenantID uuid.UUID) ([]customer.Customer, error) {
	query, args, err := psqlbuilder.Select(customerColumns...).
		From("customers c").
		Where(sq.Eq{"c.tenant_id": tenantID.String()}).
		OrderBy("c.created_at", "c.id").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build roster query", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load roster", err)
	}
	defer rows.Close()

	out := []customer.Customer{}
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan customer", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate roster", err)
	}
	return out, nil
}

func (r *CustomerReadStore) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*customer.Customer, error) {
	query, args, err := psqlbuilder.Select(customerColumns...).
		From("customers c").
		Where(sq.Eq{"c.tenant_id": tenantID.String(), "c.id": id.String()}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build customer query", err)
	}

	c, err := scanCustomer(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find customer by ID", err)
	}
	return &c, nil
}

// ServiceDurations returns the duration of each requested service that
// exists for the tenant. Missing ids are simply absent from the map.
func (r *CustomerReadStore) ServiceDurations(ctx context.Context, tenantID uuid.UUID, ids []uuid.UUID) (map[uuid.UUID]int, error) {
	out := make(map[uuid.UUID]int, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	query, args, err := psqlbuilder.Select("id", "duration_minutes").
		From("services").
		Where(sq.Eq{"tenant_id": tenantID.String()}).
		Where(sq.Expr("id = ANY(?::uuid[])", pgconv.UUIDsToStrings(ids))).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build services query", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load services", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id       uuid.UUID
			duration int
		)
		if err := rows.Scan(&id, &duration); err != nil {
			return nil, infra.WrapRepoErr("failed to scan service", err)
		}
		out[id] = duration
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate services", err)
	}
	return out, nil
}

func scanCustomer(row pgx.Row) (customer.Customer, error) {
	var (
		c        customer.Customer
		photoURL pgtype.Text
		pets     []petRow
	)
	err := row.Scan(
		&c.ID,
		&c.TenantID,
		&c.Name,
		&c.FirstName,
		&c.LastName,
		&c.Phone,
		&c.Email,
		&c.Address,
		&c.AddressLine2,
		&c.TaxID,
		&photoURL,
		&pets,
	)
	if err != nil {
		return customer.Customer{}, err
	}

	c.PhotoURL = pgconv.StringPtrFromPgtype(photoURL)
	c.Pets = make([]customer.Pet, 0, len(pets))
	for _, p := range pets {
		c.Pets = append(c.Pets, customer.Pet{
			ID:         p.ID,
			CustomerID: c.ID,
			Name:       p.Name,
			Breed:      p.Breed,
			WeightKg:   p.WeightKg,
			PhotoURL:   p.PhotoURL,
		})
	}
	return c, nil
}
