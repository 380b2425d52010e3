//go:build unit

package slot_test

import (
	"testing"
	"time"

	"slot-booking-web/internal/domain/slot"
	"slot-booking-web/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlot(t *testing.T) {
	t.Run("available slot offers booking only", func(t *testing.T) {
		s := builder.NewSlotBuilder().With(func(b *builder.SlotBuilder) { b.CurrentBookings = 2 }).Build()

		assert.Equal(t, slot.StatusAvailable, s.StatusLabel())
		assert.True(t, s.CanBook())
		assert.False(t, s.CanCancel())
		assert.Equal(t, 3, s.RemainingCapacity())
	})

	t.Run("full slot offers cancellation only", func(t *testing.T) {
		s := builder.NewSlotBuilder().Full().Build()

		assert.Equal(t, slot.StatusFullyBooked, s.StatusLabel())
		assert.False(t, s.CanBook())
		assert.True(t, s.CanCancel())
		assert.Equal(t, 0, s.RemainingCapacity())
	})

	t.Run("server flag wins over counts", func(t *testing.T) {
		s := builder.NewSlotBuilder().Build()
		s.IsBooked = true

		assert.Equal(t, slot.StatusFullyBooked, s.StatusLabel())
		assert.True(t, s.CanCancel())
	})
}

func TestValidateID(t *testing.T) {
	testCases := []struct {
		name  string
		id    string
		errIs error
	}{
		{name: "uuid", id: "0b7e8f6a-3c55-4f0e-9a0e-4c1a5f2b9d11"},
		{name: "numeric", id: "42"},
		{name: "empty", id: "", errIs: slot.ErrInvalidID},
		{name: "whitespace", id: "   ", errIs: slot.ErrInvalidID},
		{name: "path traversal", id: "../admin", errIs: slot.ErrInvalidID},
		{name: "query", id: "1?x=2", errIs: slot.ErrInvalidID},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := slot.ValidateID(tc.id)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNewDraft(t *testing.T) {
	now := time.Date(2030, 5, 1, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name        string
		startTime   time.Time
		maxBookings int
		errIs       error
	}{
		{name: "one minute ahead", startTime: now.Add(time.Minute), maxBookings: 1},
		{name: "exactly now", startTime: now, maxBookings: 1, errIs: slot.ErrStartTimeNotFuture},
		{name: "in the past", startTime: now.Add(-time.Hour), maxBookings: 3, errIs: slot.ErrStartTimeNotFuture},
		{name: "zero capacity", startTime: now.Add(time.Hour), maxBookings: 0, errIs: slot.ErrInvalidCapacity},
		{name: "negative capacity", startTime: now.Add(time.Hour), maxBookings: -2, errIs: slot.ErrInvalidCapacity},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			draft, err := slot.NewDraft(tc.startTime, tc.maxBookings, now)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.True(t, draft.StartTime().Equal(tc.startTime))
			assert.Equal(t, tc.maxBookings, draft.MaxBookings())
		})
	}
}

func TestGroupByDate(t *testing.T) {
	at := func(day, hour int) time.Time {
		return time.Date(2099, 1, day, hour, 0, 0, 0, time.UTC)
	}
	mk := func(id string, start time.Time) slot.Slot {
		return builder.NewSlotBuilder().With(func(b *builder.SlotBuilder) {
			b.ID = id
			b.StartTime = start
		}).Build()
	}

	t.Run("keeps first appearance order", func(t *testing.T) {
		slots := []slot.Slot{
			mk("b", at(2, 9)),
			mk("a", at(1, 10)),
			mk("c", at(2, 8)),
		}

		groups := slot.GroupByDate(slots, time.UTC)

		got := make(map[string][]string)
		var labels []string
		for _, g := range groups {
			labels = append(labels, g.Label)
			for _, s := range g.Slots {
				got[g.Label] = append(got[g.Label], s.ID)
			}
		}
		assert.Equal(t, []string{"Friday, January 2, 2099", "Thursday, January 1, 2099"}, labels)
		if diff := cmp.Diff(map[string][]string{
			"Friday, January 2, 2099":   {"b", "c"},
			"Thursday, January 1, 2099": {"a"},
		}, got); diff != "" {
			t.Errorf("grouped ids mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("groups by the display zone", func(t *testing.T) {
		tokyo := time.FixedZone("JST", 9*60*60)
		slots := []slot.Slot{mk("late", at(1, 20))}

		groups := slot.GroupByDate(slots, tokyo)

		require.Len(t, groups, 1)
		assert.Equal(t, "Friday, January 2, 2099", groups[0].Label)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, slot.GroupByDate(nil, time.UTC))
	})
}
