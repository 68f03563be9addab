//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"groombook/internal/domain/appointment"
	"groombook/internal/domain/recurrence"
	"groombook/internal/infra"
	"groombook/internal/pkg/errs"
	"groombook/internal/usecase/commands"
	"groombook/internal/usecase/shared"
	"groombook/tests/common/builder"
	commandsmock "groombook/tests/mock/commands"
	dbmock "groombook/tests/mock/db"
	sharedmock "groombook/tests/mock/shared"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errDBConnectionLost = errors.New("database connection lost")

type fixture struct {
	uow      *sharedmock.MockUnitOfWork
	tx       *sharedmock.MockTx
	reads    *sharedmock.MockCommandReads
	repo     *sharedmock.MockAppointmentRepository
	db       *dbmock.MockDBTX
	recorder *commandsmock.MockBookingRecorder
	uc       commands.AppointmentCommands
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		uow:      sharedmock.NewMockUnitOfWork(ctrl),
		tx:       sharedmock.NewMockTx(ctrl),
		reads:    sharedmock.NewMockCommandReads(ctrl),
		repo:     sharedmock.NewMockAppointmentRepository(ctrl),
		db:       dbmock.NewMockDBTX(ctrl),
		recorder: commandsmock.NewMockBookingRecorder(ctrl),
	}
	f.uc = commands.NewAppointmentUseCase(f.uow, recurrence.NewExpander(366), f.recorder)

	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		}).AnyTimes()
	f.tx.EXPECT().Reads().Return(f.reads).AnyTimes()
	f.tx.EXPECT().Appointments().Return(f.repo).AnyTimes()
	f.tx.EXPECT().DB().Return(f.db).AnyTimes()
	return f
}

// =============================================================================
// Book
// =============================================================================

func TestAppointmentCommands_Book(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()
	cust := builder.NewCustomerBuilder("Ana Silva").WithPet("Bobi", "Poodle").Build()
	pet := cust.Pets[0]
	bath, trim := uuid.New(), uuid.New()

	baseRequest := func() commands.BookRequest {
		return commands.BookRequest{
			CustomerID: cust.ID,
			PetID:      &pet.ID,
			ServiceIDs: []uuid.UUID{bath, trim},
			StartDate:  "2025-01-31",
			Time:       "10:00",
		}
	}

	t.Run("success: single booking has no series id", func(t *testing.T) {
		f := newFixture(t)
		f.reads.EXPECT().CustomerByID(ctx, tenantID, cust.ID).Return(&cust, nil)
		f.reads.EXPECT().ServiceDurations(ctx, tenantID, []uuid.UUID{bath, trim}).
			Return(map[uuid.UUID]int{bath: 40, trim: 20}, nil)

		var stored []appointment.Appointment
		f.repo.EXPECT().CreateMany(ctx, f.db, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, items []appointment.Appointment) error {
				stored = items
				return nil
			})
		f.recorder.EXPECT().AppointmentsBooked(1)

		result, err := f.uc.Book(ctx, tenantID, baseRequest())

		require.NoError(t, err)
		assert.Nil(t, result.SeriesID)
		require.Len(t, result.Appointments, 1)
		require.Len(t, stored, 1)

		a := result.Appointments[0]
		assert.Equal(t, "2025-01-31", a.Date)
		assert.Equal(t, "10:00", a.Time)
		assert.Equal(t, 60, a.DurationMinutes)
		assert.Equal(t, appointment.StatusScheduled, a.Status)
		assert.Equal(t, appointment.PaymentUnpaid, a.PaymentStatus)
		assert.Equal(t, tenantID, a.TenantID)
		assert.Equal(t, &pet.ID, a.PetID)
		assert.Nil(t, a.SeriesID)
	})

	t.Run("success: monthly series shares one series id and clamps to month end", func(t *testing.T) {
		f := newFixture(t)
		f.reads.EXPECT().CustomerByID(ctx, tenantID, cust.ID).Return(&cust, nil)
		f.reads.EXPECT().ServiceDurations(ctx, tenantID, gomock.Any()).
			Return(map[uuid.UUID]int{bath: 40, trim: 20}, nil)
		f.repo.EXPECT().CreateMany(ctx, f.db, gomock.Len(3)).Return(nil)
		f.recorder.EXPECT().AppointmentsBooked(3)

		req := baseRequest()
		req.Recurrence = recurrence.Rule{
			Enabled:         true,
			Frequency:       recurrence.FrequencyMonthly,
			EndMode:         recurrence.EndAfter,
			OccurrenceCount: 3,
		}
		result, err := f.uc.Book(ctx, tenantID, req)

		require.NoError(t, err)
		require.NotNil(t, result.SeriesID)

		var dates []string
		for _, a := range result.Appointments {
			dates = append(dates, a.Date)
			require.NotNil(t, a.SeriesID)
			assert.Equal(t, *result.SeriesID, *a.SeriesID)
			assert.Equal(t, "10:00", a.Time)
		}
		if diff := cmp.Diff([]string{"2025-01-31", "2025-02-28", "2025-03-31"}, dates); diff != "" {
			t.Errorf("occurrence dates mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("success: explicit duration overrides service sum", func(t *testing.T) {
		f := newFixture(t)
		f.reads.EXPECT().CustomerByID(ctx, tenantID, cust.ID).Return(&cust, nil)
		f.reads.EXPECT().ServiceDurations(ctx, tenantID, gomock.Any()).
			Return(map[uuid.UUID]int{bath: 40, trim: 20}, nil)
		f.repo.EXPECT().CreateMany(ctx, f.db, gomock.Any()).Return(nil)
		f.recorder.EXPECT().AppointmentsBooked(1)

		req := baseRequest()
		override := 90
		req.DurationMinutes = &override
		result, err := f.uc.Book(ctx, tenantID, req)

		require.NoError(t, err)
		assert.Equal(t, 90, result.Appointments[0].DurationMinutes)
	})

	t.Run("success: duplicate service ids are stored once", func(t *testing.T) {
		f := newFixture(t)
		f.reads.EXPECT().CustomerByID(ctx, tenantID, cust.ID).Return(&cust, nil)
		f.reads.EXPECT().ServiceDurations(ctx, tenantID, []uuid.UUID{bath}).
			Return(map[uuid.UUID]int{bath: 40}, nil)
		f.repo.EXPECT().CreateMany(ctx, f.db, gomock.Any()).Return(nil)
		f.recorder.EXPECT().AppointmentsBooked(1)

		req := baseRequest()
		req.ServiceIDs = []uuid.UUID{bath, bath}
		result, err := f.uc.Book(ctx, tenantID, req)

		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{bath}, result.Appointments[0].ServiceIDs)
	})

	t.Run("error: validation fails before any transaction", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uow := sharedmock.NewMockUnitOfWork(ctrl)
		uc := commands.NewAppointmentUseCase(uow, recurrence.NewExpander(366), nil)

		req := baseRequest()
		req.Recurrence = recurrence.Rule{
			Enabled:   true,
			Frequency: recurrence.FrequencyWeekly,
			EndMode:   recurrence.EndOn,
			UntilDate: "2025-01-01",
		}
		result, err := uc.Book(ctx, tenantID, req)

		require.Error(t, err)
		assert.Nil(t, result)
		assert.True(t, recurrence.IsValidation(err))
		assert.ErrorIs(t, err, recurrence.ErrUntilBeforeStart)
	})

	t.Run("error: no services", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := commands.NewAppointmentUseCase(sharedmock.NewMockUnitOfWork(ctrl), recurrence.NewExpander(366), nil)

		req := baseRequest()
		req.ServiceIDs = nil
		_, err := uc.Book(ctx, tenantID, req)

		assert.ErrorIs(t, err, appointment.ErrMissingServices)
	})

	testCases := []struct {
		name      string
		setup     func(f *fixture)
		expectErr error
	}{
		{
			name: "error: customer not found",
			setup: func(f *fixture) {
				notFound := infra.WrapRepoErr("customer not found", errDBConnectionLost, infra.KindNotFound)
				f.reads.EXPECT().CustomerByID(ctx, tenantID, cust.ID).Return(nil, notFound)
			},
			expectErr: commands.ErrCustomerNotFound,
		},
		{
			name: "error: pet belongs to someone else",
			setup: func(f *fixture) {
				other := builder.NewCustomerBuilder("Bruno Costa").WithPet("Thor", "Border Collie").Build()
				other.ID = cust.ID
				f.reads.EXPECT().CustomerByID(ctx, tenantID, cust.ID).Return(&other, nil)
			},
			expectErr: commands.ErrPetNotOwned,
		},
		{
			name: "error: unknown service",
			setup: func(f *fixture) {
				f.reads.EXPECT().CustomerByID(ctx, tenantID, cust.ID).Return(&cust, nil)
				f.reads.EXPECT().ServiceDurations(ctx, tenantID, gomock.Any()).
					Return(map[uuid.UUID]int{bath: 40}, nil)
			},
			expectErr: commands.ErrServiceNotFound,
		},
		{
			name: "error: insert fails",
			setup: func(f *fixture) {
				f.reads.EXPECT().CustomerByID(ctx, tenantID, cust.ID).Return(&cust, nil)
				f.reads.EXPECT().ServiceDurations(ctx, tenantID, gomock.Any()).
					Return(map[uuid.UUID]int{bath: 40, trim: 20}, nil)
				f.repo.EXPECT().CreateMany(ctx, f.db, gomock.Any()).
					Return(infra.WrapRepoErr("failed to insert appointments", errDBConnectionLost))
			},
			expectErr: errs.ErrSeriesNotCreated,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			tc.setup(f)

			result, err := f.uc.Book(ctx, tenantID, baseRequest())

			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, errs.Is(err, tc.expectErr), "expected [%v] but got [%v]", tc.expectErr, err)
		})
	}
}

// =============================================================================
// ChangeStatus / TogglePayment
// =============================================================================

func TestAppointmentCommands_ChangeStatus(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()

	t.Run("success: any status may move to any other", func(t *testing.T) {
		f := newFixture(t)
		current := builder.NewAppointmentBuilder().WithStatus(appointment.StatusCompleted).BuildDomain()
		f.reads.EXPECT().AppointmentByID(ctx, tenantID, current.ID).Return(&current, nil)
		f.repo.EXPECT().UpdateStatus(ctx, f.db, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, a appointment.Appointment) error {
				assert.Equal(t, appointment.StatusScheduled, a.Status)
				return nil
			})
		f.recorder.EXPECT().StatusChanged("scheduled")

		updated, err := f.uc.ChangeStatus(ctx, tenantID, current.ID, "scheduled")

		require.NoError(t, err)
		assert.Equal(t, appointment.StatusScheduled, updated.Status)
	})

	t.Run("success: same status is a no-op", func(t *testing.T) {
		f := newFixture(t)
		current := builder.NewAppointmentBuilder().WithStatus(appointment.StatusPending).BuildDomain()
		f.reads.EXPECT().AppointmentByID(ctx, tenantID, current.ID).Return(&current, nil)

		updated, err := f.uc.ChangeStatus(ctx, tenantID, current.ID, "pending")

		require.NoError(t, err)
		assert.Equal(t, appointment.StatusPending, updated.Status)
	})

	t.Run("error: unknown status", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.uc.ChangeStatus(ctx, tenantID, uuid.New(), "archived")

		assert.ErrorIs(t, err, appointment.ErrInvalidStatus)
	})

	t.Run("error: appointment not found", func(t *testing.T) {
		f := newFixture(t)
		id := uuid.New()
		f.reads.EXPECT().AppointmentByID(ctx, tenantID, id).
			Return(nil, infra.WrapRepoErr("appointment not found", errDBConnectionLost, infra.KindNotFound))

		_, err := f.uc.ChangeStatus(ctx, tenantID, id, "confirmed")

		assert.ErrorIs(t, err, commands.ErrAppointmentNotFound)
	})

	t.Run("error: database failure is marked", func(t *testing.T) {
		f := newFixture(t)
		id := uuid.New()
		f.reads.EXPECT().AppointmentByID(ctx, tenantID, id).
			Return(nil, infra.WrapRepoErr("failed to find appointment by ID", errDBConnectionLost))

		_, err := f.uc.ChangeStatus(ctx, tenantID, id, "confirmed")

		require.Error(t, err)
		assert.True(t, errs.Is(err, commands.ErrDatabaseOperationFailed))
	})
}

func TestAppointmentCommands_TogglePayment(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()

	t.Run("success: unpaid becomes paid regardless of status", func(t *testing.T) {
		f := newFixture(t)
		current := builder.NewAppointmentBuilder().WithStatus(appointment.StatusCancelled).BuildDomain()
		f.reads.EXPECT().AppointmentByID(ctx, tenantID, current.ID).Return(&current, nil)
		f.repo.EXPECT().UpdatePayment(ctx, f.db, gomock.Any()).Return(nil)

		updated, err := f.uc.TogglePayment(ctx, tenantID, current.ID)

		require.NoError(t, err)
		assert.Equal(t, appointment.PaymentPaid, updated.PaymentStatus)
		assert.Equal(t, appointment.StatusCancelled, updated.Status)
	})

	t.Run("success: paid becomes unpaid", func(t *testing.T) {
		f := newFixture(t)
		current := builder.NewAppointmentBuilder().Paid().BuildDomain()
		f.reads.EXPECT().AppointmentByID(ctx, tenantID, current.ID).Return(&current, nil)
		f.repo.EXPECT().UpdatePayment(ctx, f.db, gomock.Any()).Return(nil)

		updated, err := f.uc.TogglePayment(ctx, tenantID, current.ID)

		require.NoError(t, err)
		assert.Equal(t, appointment.PaymentUnpaid, updated.PaymentStatus)
	})

	t.Run("error: row vanished before update", func(t *testing.T) {
		f := newFixture(t)
		current := builder.NewAppointmentBuilder().BuildDomain()
		f.reads.EXPECT().AppointmentByID(ctx, tenantID, current.ID).Return(&current, nil)
		f.repo.EXPECT().UpdatePayment(ctx, f.db, gomock.Any()).
			Return(infra.WrapRepoErr("appointment not found", errDBConnectionLost, infra.KindNotFound))

		_, err := f.uc.TogglePayment(ctx, tenantID, current.ID)

		assert.ErrorIs(t, err, commands.ErrAppointmentNotFound)
	})
}

// =============================================================================
// Delete
// =============================================================================

func TestAppointmentCommands_Delete(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()

	for _, status := range appointment.AllStatuses {
		t.Run(string(status), func(t *testing.T) {
			f := newFixture(t)
			current := builder.NewAppointmentBuilder().WithStatus(status).BuildDomain()
			f.reads.EXPECT().AppointmentByID(ctx, tenantID, current.ID).Return(&current, nil)
			if status == appointment.StatusCancelled {
				f.repo.EXPECT().Delete(ctx, f.db, tenantID, current.ID).Return(nil)
			}

			err := f.uc.Delete(ctx, tenantID, current.ID)

			if status == appointment.StatusCancelled {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, appointment.ErrInvalidState)
			}
		})
	}

	t.Run("error: not found", func(t *testing.T) {
		f := newFixture(t)
		id := uuid.New()
		f.reads.EXPECT().AppointmentByID(ctx, tenantID, id).
			Return(nil, infra.WrapRepoErr("appointment not found", errDBConnectionLost, infra.KindNotFound))

		err := f.uc.Delete(ctx, tenantID, id)

		assert.ErrorIs(t, err, commands.ErrAppointmentNotFound)
	})
}
