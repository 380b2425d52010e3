//go:build unit || e2e

package builder

import (
	"time"

	"slot-booking-web/internal/domain/slot"
	"slot-booking-web/tests/common/fakeapi"

	"github.com/google/uuid"
)

type SlotBuilder struct {
	ID              string
	StartTime       time.Time
	MaxBookings     int
	CurrentBookings int
}

func NewSlotBuilder() *SlotBuilder {
	return &SlotBuilder{
		ID:              uuid.NewString(),
		StartTime:       time.Date(2099, 1, 1, 10, 0, 0, 0, time.UTC),
		MaxBookings:     5,
		CurrentBookings: 0,
	}
}

func (b *SlotBuilder) With(mutate func(*SlotBuilder)) *SlotBuilder {
	mutate(b)
	return b
}

func (b *SlotBuilder) Full() *SlotBuilder {
	b.CurrentBookings = b.MaxBookings
	return b
}

// Build methods

func (b *SlotBuilder) Build() slot.Slot {
	return slot.Slot{
		ID:              b.ID,
		StartTime:       b.StartTime,
		MaxBookings:     b.MaxBookings,
		CurrentBookings: b.CurrentBookings,
		IsBooked:        b.CurrentBookings >= b.MaxBookings,
	}
}

func (b *SlotBuilder) BuildRemote() fakeapi.Slot {
	return fakeapi.Slot{
		ID:              b.ID,
		StartTime:       b.StartTime,
		MaxBookings:     b.MaxBookings,
		CurrentBookings: b.CurrentBookings,
		IsBooked:        b.CurrentBookings >= b.MaxBookings,
	}
}
