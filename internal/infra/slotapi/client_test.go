//go:build unit

package slotapi_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"slot-booking-web/internal/domain/slot"
	"slot-booking-web/internal/infra/slotapi"
	"slot-booking-web/internal/pkg/config"
	"slot-booking-web/internal/pkg/errs"
	"slot-booking-web/internal/pkg/requestid"
	"slot-booking-web/tests/common/builder"
	"slot-booking-web/tests/common/fakeapi"
	"slot-booking-web/tests/common/testutil"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T, baseURL string) *slotapi.Client {
	t.Helper()
	c := slotapi.NewClient(config.SlotAPIConfig{BaseURL: baseURL, Timeout: 2 * time.Second}, testutil.DiscardLogger())
	t.Cleanup(c.Close)
	return c
}

func rawServer(t *testing.T, h http.HandlerFunc) string {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return srv.URL + "/api"
}

func TestClient_ListSlots(t *testing.T) {
	ctx := context.Background()

	t.Run("all and available", func(t *testing.T) {
		api := fakeapi.Start(t)
		open := builder.NewSlotBuilder().BuildRemote()
		full := builder.NewSlotBuilder().With(func(b *builder.SlotBuilder) { b.MaxBookings = 1 }).Full().BuildRemote()
		api.Seed(open, full)
		client := newClient(t, api.BaseURL())

		all, err := client.ListAllSlots(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, open.ID, all[0].ID)
		assert.True(t, all[0].StartTime.Equal(open.StartTime))
		assert.Equal(t, 5, all[0].MaxBookings)
		assert.True(t, all[1].IsBooked)

		available, err := client.ListAvailableSlots(ctx)
		require.NoError(t, err)
		require.Len(t, available, 1)
		assert.Equal(t, open.ID, available[0].ID)

		assert.Equal(t, 1, api.Calls("GET /api/slots"))
		assert.Equal(t, 1, api.Calls("GET /api/slots/available"))
	})

	t.Run("zone-less timestamps are read as UTC", func(t *testing.T) {
		url := rawServer(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = io.WriteString(w, `{"data":[{"id":"1","startTime":"2099-01-01T10:00:00","maxBookings":2,"currentBookings":0,"isBooked":false}]}`)
		})
		slots, err := newClient(t, url).ListAllSlots(ctx)

		require.NoError(t, err)
		require.Len(t, slots, 1)
		assert.True(t, slots[0].StartTime.Equal(time.Date(2099, 1, 1, 10, 0, 0, 0, time.UTC)))
	})

	t.Run("sends accept and request id headers", func(t *testing.T) {
		api := fakeapi.Start(t)
		client := newClient(t, api.BaseURL())

		_, err := client.ListAllSlots(requestid.With(ctx, "req-123"))
		require.NoError(t, err)

		h := api.LastHeaders()
		assert.Equal(t, "application/json", h.Get("Accept"))
		assert.Equal(t, "req-123", h.Get(requestid.Header))
	})

	t.Run("generates a request id when none is propagated", func(t *testing.T) {
		api := fakeapi.Start(t)
		_, err := newClient(t, api.BaseURL()).ListAllSlots(ctx)
		require.NoError(t, err)

		assert.NotEmpty(t, api.LastHeaders().Get(requestid.Header))
	})
}

func TestClient_CreateSlot(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("posts ISO-8601 UTC start time", func(t *testing.T) {
		var got map[string]any
		url := rawServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/slots", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			w.WriteHeader(http.StatusCreated)
			_, _ = io.WriteString(w, `{"id":"new","startTime":"2099-01-01T10:00:00Z","maxBookings":5,"currentBookings":0,"isBooked":false}`)
		})
		jst := time.FixedZone("JST", 9*60*60)
		draft, err := slot.NewDraft(time.Date(2099, 1, 1, 19, 0, 0, 0, jst), 5, now)
		require.NoError(t, err)

		created, err := newClient(t, url).CreateSlot(ctx, draft)

		require.NoError(t, err)
		assert.Equal(t, "new", created.ID)
		assert.Equal(t, "2099-01-01T10:00:00.000Z", got["startTime"])
		assert.EqualValues(t, 5, got["maxBookings"])
	})

	t.Run("round trip through the service", func(t *testing.T) {
		api := fakeapi.Start(t)
		draft, err := slot.NewDraft(time.Date(2099, 1, 1, 10, 0, 0, 0, time.UTC), 3, now)
		require.NoError(t, err)

		created, err := newClient(t, api.BaseURL()).CreateSlot(ctx, draft)

		require.NoError(t, err)
		require.Len(t, api.Slots(), 1)
		assert.Equal(t, api.Slots()[0].ID, created.ID)
		assert.Equal(t, 3, created.MaxBookings)
		assert.False(t, created.IsBooked)
	})
}

func TestClient_BookAndCancel(t *testing.T) {
	ctx := context.Background()

	t.Run("book then cancel", func(t *testing.T) {
		api := fakeapi.Start(t)
		remote := builder.NewSlotBuilder().With(func(b *builder.SlotBuilder) { b.MaxBookings = 1 }).BuildRemote()
		api.Seed(remote)
		client := newClient(t, api.BaseURL())

		raw, err := client.BookSlot(ctx, remote.ID)
		require.NoError(t, err)
		assert.Contains(t, string(raw), "Slot booked")
		assert.True(t, api.Slots()[0].IsBooked)

		_, err = client.CancelBooking(ctx, remote.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, api.Slots()[0].CurrentBookings)
	})

	t.Run("full slot surfaces the server message", func(t *testing.T) {
		api := fakeapi.Start(t)
		remote := builder.NewSlotBuilder().Full().BuildRemote()
		api.Seed(remote)

		_, err := newClient(t, api.BaseURL()).BookSlot(ctx, remote.ID)

		var reqErr *slotapi.RequestError
		require.ErrorAs(t, err, &reqErr)
		assert.Equal(t, http.StatusBadRequest, reqErr.StatusCode)
		assert.Equal(t, fakeapi.MsgSlotFull, reqErr.Message)
		assert.Equal(t, fakeapi.MsgSlotFull, errs.ServiceMessage(err))
		assert.ErrorIs(t, err, errs.ErrSlotServiceRequest)
	})

	t.Run("path-escapes the id", func(t *testing.T) {
		var path string
		url := rawServer(t, func(w http.ResponseWriter, r *http.Request) {
			path = r.URL.EscapedPath()
			w.WriteHeader(http.StatusOK)
		})

		_, err := newClient(t, url).CancelBooking(ctx, "a b")

		require.NoError(t, err)
		assert.Equal(t, "/api/slots/a%20b/cancel", path)
	})

	t.Run("rejects an unusable id without a request", func(t *testing.T) {
		api := fakeapi.Start(t)

		_, err := newClient(t, api.BaseURL()).BookSlot(ctx, "../slots")

		assert.ErrorIs(t, err, slot.ErrInvalidID)
		assert.Equal(t, 0, api.Calls("POST /api/slots/:id/book"))
	})
}

func TestClient_Errors(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		handler    http.HandlerFunc
		wantStatus int
		wantMsg    string
	}{
		{
			name: "error body without message",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = io.WriteString(w, `{"error":"boom"}`)
			},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name: "non-JSON error body",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
				_, _ = io.WriteString(w, "<html>bad gateway</html>")
			},
			wantStatus: http.StatusBadGateway,
		},
		{
			name: "message in error body",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusConflict)
				_, _ = io.WriteString(w, `{"message":"  Slot already exists  "}`)
			},
			wantStatus: http.StatusConflict,
			wantMsg:    "Slot already exists",
		},
		{
			name: "success status with undecodable body",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = io.WriteString(w, `not json`)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := newClient(t, rawServer(t, tc.handler)).ListAllSlots(ctx)

			var reqErr *slotapi.RequestError
			require.ErrorAs(t, err, &reqErr)
			assert.Equal(t, tc.wantStatus, reqErr.StatusCode)
			assert.Equal(t, tc.wantMsg, reqErr.Message)
		})
	}

	t.Run("long message is capped on a rune boundary", func(t *testing.T) {
		long := strings.Repeat("é", 3000)
		url := rawServer(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": long})
		})

		_, err := newClient(t, url).BookSlot(ctx, "42")

		msg := errs.ServiceMessage(err)
		assert.True(t, utf8.ValidString(msg))
		assert.Equal(t, 513, utf8.RuneCountInString(msg))
		assert.True(t, strings.HasPrefix(long, strings.TrimSuffix(msg, "…")))
	})

	t.Run("unreachable service is a network error", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL + "/api"
		srv.Close()

		_, err := newClient(t, url).ListAllSlots(ctx)

		var netErr *slotapi.NetworkError
		require.ErrorAs(t, err, &netErr)
		assert.ErrorIs(t, err, errs.ErrSlotServiceNetwork)
		assert.Empty(t, errs.ServiceMessage(err))
	})

	t.Run("timeout is a network error", func(t *testing.T) {
		release := make(chan struct{})
		url := rawServer(t, func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-release:
			case <-r.Context().Done():
			}
		})
		defer close(release)
		client := slotapi.NewClient(config.SlotAPIConfig{BaseURL: url, Timeout: 50 * time.Millisecond}, testutil.DiscardLogger())

		_, err := client.ListAllSlots(ctx)

		var netErr *slotapi.NetworkError
		assert.True(t, errors.As(err, &netErr), "got %v", err)
	})
}
