package bootstrap

import (
	"slot-booking-web/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	SlotAPIModule,
	components.UseCaseModule,
	components.HandlerModule,
)
