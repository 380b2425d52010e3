package bootstrap

import (
	"context"
	"log/slog"

	"slot-booking-web/internal/infra/slotapi"
	"slot-booking-web/internal/pkg/config"
	"slot-booking-web/internal/usecase/commands"
	"slot-booking-web/internal/usecase/queries"

	"go.uber.org/fx"
)

var SlotAPIModule = fx.Module("slotapi",
	fx.Provide(
		fx.Annotate(
			NewSlotAPIClient,
			fx.As(fx.Self()),
			fx.As(new(queries.SlotFetcher)),
			fx.As(new(commands.SlotWriter)),
		),
	),
)

func NewSlotAPIClient(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) *slotapi.Client {
	client := slotapi.NewClient(cfg.SlotAPI, logger)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			client.Close()
			return nil
		},
	})

	return client
}
