package components

import (
	"groombook/internal/handler"
	"groombook/internal/handler/api"
	"groombook/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAppointmentHandler,
		api.NewCustomerHandler,
		api.NewRecurrenceHandler,
		middleware.NewAuthMiddleware,
		func(a *api.AppointmentHandler, c *api.CustomerHandler, r *api.RecurrenceHandler) handler.Handlers {
			return handler.Handlers{Appointments: a, Customers: c, Recurrence: r}
		},
	),
	fx.Invoke(handler.NewRouter),
)
