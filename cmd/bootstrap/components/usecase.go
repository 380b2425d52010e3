package components

import (
	"context"
	"log/slog"
	"time"

	"slot-booking-web/internal/pkg/clock"
	"slot-booking-web/internal/pkg/config"
	"slot-booking-web/internal/usecase/commands"
	"slot-booking-web/internal/usecase/queries"
	"slot-booking-web/internal/usecase/slotform"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
	usecaseFormsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		fx.Annotate(
			NewSlotCache,
			fx.As(new(queries.SlotQueries)),
			fx.As(new(commands.QueryInvalidator)),
		),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewSlotCommands,
	),
)

var usecaseFormsModule = fx.Module("usecase/forms",
	fx.Provide(
		NewSlotFormController,
	),
)

func NewSlotCache(lc fx.Lifecycle, fetcher queries.SlotFetcher, clk clock.Clock, logger *slog.Logger) *queries.SlotCache {
	cache := queries.NewSlotCache(fetcher, clk, logger)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cache.Stop()
			return nil
		},
	})

	return cache
}

func NewSlotFormController(cmds commands.SlotCommands, clk clock.Clock, loc *time.Location, cfg config.Config) (*slotform.Controller, error) {
	return slotform.NewController(cmds, clk, loc, cfg.UI.FormNoticeDuration)
}
