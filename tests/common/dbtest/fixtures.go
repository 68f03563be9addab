//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by both *pgxpool.Pool and pgx.Tx.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func CreateTenant(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		"INSERT INTO tenants (name) VALUES ($1) RETURNING id", name).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateCustomer(t *testing.T, db DBLike, tenantID uuid.UUID, name, phone string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		"INSERT INTO customers (tenant_id, name, phone) VALUES ($1, $2, $3) RETURNING id",
		tenantID, name, phone).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreatePet(t *testing.T, db DBLike, tenantID, customerID uuid.UUID, name, breed string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		"INSERT INTO pets (tenant_id, customer_id, name, breed) VALUES ($1, $2, $3, $4) RETURNING id",
		tenantID, customerID, name, breed).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateService(t *testing.T, db DBLike, tenantID uuid.UUID, name string, minutes int) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		"INSERT INTO services (tenant_id, name, duration_minutes) VALUES ($1, $2, $3) RETURNING id",
		tenantID, name, minutes).Scan(&id)
	require.NoError(t, err)
	return id
}

// SeedReferenceData inserts the demo tenant used by tests that do not create their own.
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO tenants (id, name) VALUES
		    ('00000000-0000-0000-0000-000000000001', 'Demo Grooming')
		ON CONFLICT (id) DO NOTHING;
	`)
	return err
}

// tables lists the schema in dependency order, children first.
var tables = []string{"appointment_services", "appointments", "services", "pets", "customers", "tenants"}

// ResetDB empties every table and reseeds the demo tenant.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := pool.Exec(ctx, "TRUNCATE "+strings.Join(tables, ", ")+" RESTART IDENTITY CASCADE"); err != nil {
		return fmt.Errorf("truncate: %w", err)
	}
	return SeedReferenceData(pool)
}
