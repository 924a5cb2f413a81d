package bootstrap

import (
	"hotelhub/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	SanityModule,
	StripeModule,
	JWTModule,
	components.ContentModule,
	components.UseCaseModule,
	components.HandlerModule,
)
