package slot

import (
	"errors"
	"time"
)

var (
	ErrInvalidID          = errors.New("invalid slot id")
	ErrStartTimeNotFuture = errors.New("start time must be in the future")
	ErrInvalidCapacity    = errors.New("max bookings must be at least 1")
)

const DateGroupLayout = "Monday, January 2, 2006"

// Draft is the creation payload for a new slot.
type Draft struct {
	startTime   time.Time
	maxBookings int
}

func NewDraft(startTime time.Time, maxBookings int, now time.Time) (Draft, error) {
	if !startTime.After(now) {
		return Draft{}, ErrStartTimeNotFuture
	}
	if maxBookings < 1 {
		return Draft{}, ErrInvalidCapacity
	}
	return Draft{startTime: startTime, maxBookings: maxBookings}, nil
}

func (d Draft) StartTime() time.Time { return d.startTime }
func (d Draft) MaxBookings() int     { return d.maxBookings }

type DateGroup struct {
	Label string
	Slots []Slot
}

// GroupByDate buckets slots by calendar date in loc. Groups and the slots
// inside them keep the order in which they first appear.
func GroupByDate(slots []Slot, loc *time.Location) []DateGroup {
	if loc == nil {
		loc = time.UTC
	}
	groups := make([]DateGroup, 0)
	index := make(map[string]int)
	for _, s := range slots {
		label := s.StartTime.In(loc).Format(DateGroupLayout)
		i, ok := index[label]
		if !ok {
			i = len(groups)
			index[label] = i
			groups = append(groups, DateGroup{Label: label})
		}
		groups[i].Slots = append(groups[i].Slots, s)
	}
	return groups
}
