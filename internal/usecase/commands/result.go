package commands

import (
	"slot-booking-web/internal/domain/slot"
	"slot-booking-web/internal/pkg/errs"
	"slot-booking-web/internal/pkg/notice"
)

type Kind string

const (
	KindBook   Kind = "book"
	KindCancel Kind = "cancel"
	KindCreate Kind = "create"
)

type Phase int

const (
	PhaseIdle Phase = iota
	PhasePending
)

func (p Phase) String() string {
	if p == PhasePending {
		return "pending"
	}
	return "idle"
}

const MsgAlreadyPending = "Request already in progress."

type messages struct {
	success  string
	fallback string
}

var kindMessages = map[Kind]messages{
	KindBook:   {success: "Slot booked successfully!", fallback: "Booking failed."},
	KindCancel: {success: "Booking cancelled.", fallback: "Cancel failed."},
	KindCreate: {success: "Slot created!", fallback: "Failed to create slot."},
}

// Result is the outcome of one mutation. The caller decides how to surface it.
type Result struct {
	Kind   Kind
	SlotID string
	Slot   *slot.Slot // set by a successful create
	Err    error
}

func (r Result) OK() bool { return r.Err == nil }

// Notice carries the service's message for a rejected request. Network
// failures and responses without a message use the kind's fallback text.
func (r Result) Notice() notice.Notice {
	m := kindMessages[r.Kind]
	switch {
	case r.Err == nil:
		return notice.Success(m.success)
	case errs.Is(r.Err, errs.ErrMutationPending):
		return notice.Info(MsgAlreadyPending)
	case errs.Is(r.Err, errs.ErrSlotServiceNetwork):
		return notice.Error(m.fallback)
	case errs.Is(r.Err, errs.ErrSlotServiceRequest):
		if msg := errs.ServiceMessage(r.Err); msg != "" {
			return notice.Error(msg)
		}
	}
	return notice.Error(m.fallback)
}
