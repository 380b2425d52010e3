package components

import (
	"slot-booking-web/internal/handler"
	"slot-booking-web/internal/handler/api"
	"slot-booking-web/internal/handler/web"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		web.NewFlasher,
		web.NewSlotPageHandler,
		web.NewAdminPageHandler,
		api.NewSlotFeedHandler,
	),
	fx.Invoke(handler.NewRouter),
)
