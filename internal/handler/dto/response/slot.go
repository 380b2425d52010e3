package response

import (
	"time"

	"slot-booking-web/internal/domain/slot"
)

type SlotResponse struct {
	ID              string    `json:"id"`
	StartTime       time.Time `json:"startTime"`
	MaxBookings     int       `json:"maxBookings"`
	CurrentBookings int       `json:"currentBookings"`
	IsBooked        bool      `json:"isBooked"`
	Status          string    `json:"status"`
}

type SlotListResponse struct {
	Data  []SlotResponse `json:"data"`
	Stale bool           `json:"stale"`
}

func FromSlot(s slot.Slot) SlotResponse {
	return SlotResponse{
		ID:              s.ID,
		StartTime:       s.StartTime.UTC(),
		MaxBookings:     s.MaxBookings,
		CurrentBookings: s.CurrentBookings,
		IsBooked:        s.IsBooked,
		Status:          s.StatusLabel(),
	}
}

func FromSlots(slots []slot.Slot, stale bool) SlotListResponse {
	data := make([]SlotResponse, len(slots))
	for i, s := range slots {
		data[i] = FromSlot(s)
	}
	return SlotListResponse{Data: data, Stale: stale}
}
