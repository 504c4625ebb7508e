package bootstrap

import (
	"cleansched/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	GatewayModule,
	MQModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
