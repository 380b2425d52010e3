package commands

import (
	"context"
	"log/slog"
	"sync"

	"slot-booking-web/internal/domain/slot"
	"slot-booking-web/internal/pkg/errs"
	"slot-booking-web/internal/usecase/queries"
)

// control identifies the UI element that triggered a mutation. Create has a
// single control, so its target is empty.
type control struct {
	kind   Kind
	target string
}

type slotCommandsImpl struct {
	writer      SlotWriter
	invalidator QueryInvalidator
	logger      *slog.Logger

	mu      sync.Mutex
	pending map[control]struct{}
}

func NewSlotCommands(writer SlotWriter, invalidator QueryInvalidator, logger *slog.Logger) SlotCommands {
	return &slotCommandsImpl{
		writer:      writer,
		invalidator: invalidator,
		logger:      logger,
		pending:     make(map[control]struct{}),
	}
}

func (s *slotCommandsImpl) BookSlot(ctx context.Context, id string) Result {
	return s.run(ctx, control{kind: KindBook, target: id}, func(ctx context.Context) (*slot.Slot, error) {
		if err := slot.ValidateID(id); err != nil {
			return nil, err
		}
		_, err := s.writer.BookSlot(ctx, id)
		return nil, err
	})
}

func (s *slotCommandsImpl) CancelBooking(ctx context.Context, id string) Result {
	return s.run(ctx, control{kind: KindCancel, target: id}, func(ctx context.Context) (*slot.Slot, error) {
		if err := slot.ValidateID(id); err != nil {
			return nil, err
		}
		_, err := s.writer.CancelBooking(ctx, id)
		return nil, err
	})
}

func (s *slotCommandsImpl) CreateSlot(ctx context.Context, draft slot.Draft) Result {
	return s.run(ctx, control{kind: KindCreate}, func(ctx context.Context) (*slot.Slot, error) {
		return s.writer.CreateSlot(ctx, draft)
	})
}

func (s *slotCommandsImpl) Phase(kind Kind, slotID string) Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.pending[control{kind: kind, target: slotID}]; ok {
		return PhasePending
	}
	return PhaseIdle
}

// run drives idle -> pending -> idle. A success invalidates the slot queries
// and waits for the refetch so the next read sees the new state.
func (s *slotCommandsImpl) run(ctx context.Context, ctl control, mutate func(context.Context) (*slot.Slot, error)) Result {
	res := Result{Kind: ctl.kind, SlotID: ctl.target}

	if !s.begin(ctl) {
		res.Err = errs.ErrMutationPending
		return res
	}
	defer s.end(ctl)

	created, err := mutate(ctx)
	if err != nil {
		s.logger.Warn("Slot mutation failed",
			"kind", string(ctl.kind),
			"slot_id", ctl.target,
			"error", err,
		)
		res.Err = err
		return res
	}
	res.Slot = created

	if err := s.invalidator.InvalidateQueries(ctx, queries.KeyAllSlots); err != nil {
		// the mutation itself succeeded; the refetch finishes in the background
		s.logger.Warn("Slot queries did not refresh before the request ended",
			"kind", string(ctl.kind),
			"error", err,
		)
	}
	return res
}

func (s *slotCommandsImpl) begin(ctl control) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.pending[ctl]; busy {
		return false
	}
	s.pending[ctl] = struct{}{}
	return true
}

func (s *slotCommandsImpl) end(ctl control) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pending, ctl)
}
