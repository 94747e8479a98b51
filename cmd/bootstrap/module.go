package bootstrap

import (
	"travel-core/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	CacheModule,
	components.AdapterModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
