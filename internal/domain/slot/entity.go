package slot

import (
	"strings"
	"time"
)

const (
	StatusAvailable   = "Available"
	StatusFullyBooked = "Fully Booked"
)

// Slot mirrors the remote service's record. Counts and IsBooked are server
// maintained and trusted as-is.
type Slot struct {
	ID              string
	StartTime       time.Time
	MaxBookings     int
	CurrentBookings int
	IsBooked        bool
}

func (s Slot) StatusLabel() string {
	if s.IsBooked {
		return StatusFullyBooked
	}
	return StatusAvailable
}

// A full slot only offers cancellation; any other slot only offers booking.
func (s Slot) CanBook() bool   { return !s.IsBooked }
func (s Slot) CanCancel() bool { return s.IsBooked }

func (s Slot) RemainingCapacity() int {
	if r := s.MaxBookings - s.CurrentBookings; r > 0 {
		return r
	}
	return 0
}

// ValidateID rejects ids that cannot address a slot. The id is otherwise opaque.
func ValidateID(id string) error {
	if strings.TrimSpace(id) == "" || strings.ContainsAny(id, "/?#") {
		return ErrInvalidID
	}
	return nil
}
