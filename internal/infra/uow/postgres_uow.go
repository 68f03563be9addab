package uow

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"time"

	"groombook/internal/domain/appointment"
	"groombook/internal/domain/customer"
	"groombook/internal/infra/db"
	"groombook/internal/infra/readstore"
	"groombook/internal/infra/repository"
	"groombook/internal/pkg/errs"
	"groombook/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool         *pgxpool.Pool
	appointments *repository.AppointmentRepository
}

func NewPostgresUoW(pool *pgxpool.Pool) shared.UnitOfWork {
	return &PostgresUoW{
		pool:         pool,
		appointments: repository.NewAppointmentRepository(),
	}
}

// ReadCommitted plus row locks on the appointment being changed is enough:
// a series only inserts new rows, and status changes lock the row they touch.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

const (
	maxTxAttempts = 4
	retryBase     = 100 * time.Millisecond
)

// runInTx retries the whole closure on serialization failures and deadlocks.
// A series insert either lands completely or not at all, so replaying it is safe.
func (u *PostgresUoW) runInTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	var err error
	for attempt := 1; attempt <= maxTxAttempts; attempt++ {
		err = u.attempt(ctx, options, fn)
		if err == nil || !isRetryableError(err) {
			return err
		}
		if attempt == maxTxAttempts {
			break
		}

		wait := backoff(attempt)
		slog.Warn("retrying transaction", "attempt", attempt, "wait_ms", wait.Milliseconds(), "error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}

	slog.Error("transaction failed after max retries", "attempts", maxTxAttempts, "error", err.Error())
	return errs.Mark(err, errMaxRetriesExceeded)
}

// attempt runs fn in one transaction. Rollback after a successful commit is
// a no-op returning ErrTxClosed.
func (u *PostgresUoW) attempt(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) (err error) {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}
	defer func() {
		if rbErr := pgxTx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			slog.Warn("rollback failed", "error", rbErr.Error())
		}
	}()

	if err := fn(ctx, &pgTx{dbtx: pgxTx, uow: u}); err != nil {
		return err
	}
	if err := pgxTx.Commit(ctx); err != nil {
		return errs.Mark(err, errTransactionCommit)
	}
	return nil
}

// backoff doubles per attempt with up to 20% jitter.
func backoff(attempt int) time.Duration {
	wait := retryBase << (attempt - 1)
	return wait + time.Duration(rand.Int63n(int64(wait/5+1)))
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx db.DBTX
	uow  *PostgresUoW

	commandReads shared.CommandReads
}

func (t *pgTx) DB() db.DBTX {
	return t.dbtx
}

func (t *pgTx) Appointments() shared.AppointmentRepository {
	return t.uow.appointments
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{dbtx: t.dbtx}
	}
	return t.commandReads
}

type commandReads struct {
	dbtx db.DBTX

	// Lazy-initialized readstores
	appointmentStore *readstore.AppointmentReadStore
	customerStore    *readstore.CustomerReadStore
}

func (r *commandReads) customers() *readstore.CustomerReadStore {
	if r.customerStore == nil {
		r.customerStore = readstore.NewCustomerReadStore(r.dbtx)
	}
	return r.customerStore
}

func (r *commandReads) AppointmentByID(ctx context.Context, tenantID, id uuid.UUID) (*appointment.Appointment, error) {
	if r.appointmentStore == nil {
		r.appointmentStore = readstore.NewAppointmentReadStore(r.dbtx)
	}

	v, err := r.appointmentStore.FindByIDForUpdate(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	a := v.Appointment()
	return &a, nil
}

func (r *commandReads) CustomerByID(ctx context.Context, tenantID, id uuid.UUID) (*customer.Customer, error) {
	return r.customers().FindByID(ctx, tenantID, id)
}

func (r *commandReads) ServiceDurations(ctx context.Context, tenantID uuid.UUID, ids []uuid.UUID) (map[uuid.UUID]int, error) {
	return r.customers().ServiceDurations(ctx, tenantID, ids)
}
