package components

import (
	"groombook/internal/domain/recurrence"
	"groombook/internal/pkg/clock"
	"groombook/internal/pkg/config"
	"groombook/internal/pkg/metrics"
	"groombook/internal/usecase"
	"groombook/internal/usecase/commands"
	"groombook/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) *recurrence.Expander {
		return recurrence.NewExpander(cfg.Booking.MaxOccurrences)
	},
	func(m *metrics.Metrics) commands.BookingRecorder {
		return m
	},
	func(m *metrics.Metrics) queries.CacheRecorder {
		return m
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAppointmentUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAppointmentQueries,
		queries.NewRecurrenceQueries,
		queries.NewCustomerQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
