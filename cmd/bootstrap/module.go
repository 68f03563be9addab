package bootstrap

import (
	"groombook/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	CacheModule,
	ObservabilityModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
