package shared

import (
	"context"

	"groombook/internal/domain/appointment"
	"groombook/internal/domain/customer"
	"groombook/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Appointments() AppointmentRepository
	Reads() CommandReads
	DB() db.DBTX
}

// CommandReads are the lookups commands need before writing. Inside a Tx the
// appointment read locks the row until commit.
type CommandReads interface {
	AppointmentByID(ctx context.Context, tenantID, id uuid.UUID) (*appointment.Appointment, error)
	CustomerByID(ctx context.Context, tenantID, id uuid.UUID) (*customer.Customer, error)
	ServiceDurations(ctx context.Context, tenantID uuid.UUID, ids []uuid.UUID) (map[uuid.UUID]int, error)
}

type AppointmentRepository interface {
	CreateMany(ctx context.Context, tx db.DBTX, items []appointment.Appointment) error
	UpdateStatus(ctx context.Context, tx db.DBTX, a appointment.Appointment) error
	UpdatePayment(ctx context.Context, tx db.DBTX, a appointment.Appointment) error
	Delete(ctx context.Context, tx db.DBTX, tenantID, id uuid.UUID) error
}
