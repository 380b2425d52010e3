package slotapi

import (
	"strings"
	"time"

	"slot-booking-web/internal/domain/slot"
	"slot-booking-web/internal/pkg/notice"

	"github.com/goccy/go-json"
)

// Server messages end up in a notification cookie, so they are capped well
// below the browser's cookie size limit.
const maxMessageRunes = 512

// The slot service may emit timestamps without a zone; those are read as UTC.
var apiTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.9999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

type apiTime struct {
	time.Time
}

func (t *apiTime) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	raw = strings.TrimSpace(raw)
	var lastErr error
	for _, layout := range apiTimeLayouts {
		parsed, err := time.Parse(layout, raw)
		if err == nil {
			t.Time = parsed
			return nil
		}
		lastErr = err
	}
	return lastErr
}

type slotDTO struct {
	ID              string  `json:"id"`
	StartTime       apiTime `json:"startTime"`
	MaxBookings     int     `json:"maxBookings"`
	CurrentBookings int     `json:"currentBookings"`
	IsBooked        bool    `json:"isBooked"`
}

type slotListEnvelope struct {
	Data []slotDTO `json:"data"`
}

type createSlotRequest struct {
	StartTime   string `json:"startTime"`
	MaxBookings int    `json:"maxBookings"`
}

type errorBody struct {
	Message string `json:"message"`
}

func (d slotDTO) toDomain() slot.Slot {
	return slot.Slot{
		ID:              d.ID,
		StartTime:       d.StartTime.Time,
		MaxBookings:     d.MaxBookings,
		CurrentBookings: d.CurrentBookings,
		IsBooked:        d.IsBooked,
	}
}

func toDomainList(dtos []slotDTO) []slot.Slot {
	slots := make([]slot.Slot, len(dtos))
	for i, d := range dtos {
		slots[i] = d.toDomain()
	}
	return slots
}

func newCreateSlotRequest(d slot.Draft) createSlotRequest {
	return createSlotRequest{
		StartTime:   d.StartTime().UTC().Format("2006-01-02T15:04:05.000Z07:00"),
		MaxBookings: d.MaxBookings(),
	}
}

func extractMessage(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		return ""
	}
	return notice.TruncateText(strings.TrimSpace(eb.Message), maxMessageRunes)
}
