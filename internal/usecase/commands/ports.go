package commands

import (
	"context"

	"slot-booking-web/internal/domain/slot"
	"slot-booking-web/internal/usecase/queries"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/ports_mock.go -package=commandsmock

type SlotWriter interface {
	CreateSlot(ctx context.Context, draft slot.Draft) (*slot.Slot, error)
	BookSlot(ctx context.Context, id string) ([]byte, error)
	CancelBooking(ctx context.Context, id string) ([]byte, error)
}

type QueryInvalidator interface {
	InvalidateQueries(ctx context.Context, keys ...queries.QueryKey) error
}

type SlotCommands interface {
	BookSlot(ctx context.Context, id string) Result
	CancelBooking(ctx context.Context, id string) Result
	CreateSlot(ctx context.Context, draft slot.Draft) Result
	Phase(kind Kind, slotID string) Phase
}
