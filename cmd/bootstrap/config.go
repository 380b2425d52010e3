package bootstrap

import (
	"time"

	"slot-booking-web/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewDisplayLocation,
	),
)

// NewDisplayLocation is the zone slot times are rendered and entered in.
func NewDisplayLocation(cfg config.Config) (*time.Location, error) {
	return cfg.UI.Location()
}
