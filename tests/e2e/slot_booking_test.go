//go:build e2e

package e2e

import (
	"net/http"
	"net/url"
	"testing"

	resdto "slot-booking-web/internal/handler/dto/response"
	"slot-booking-web/tests/common/fakeapi"
	"slot-booking-web/tests/common/httptest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type SlotBookingTestSuite struct {
	SharedSuite
}

func TestSlotBookingSuite(t *testing.T) {
	suite.Run(t, new(SlotBookingTestSuite))
}

func (s *SlotBookingTestSuite) TestCreateThenBookUntilFull() {
	t := s.T()

	created := httptest.PerformForm(t, s.Router, "/admin/slots", url.Values{
		"startTime":   {"2099-01-01T10:00"},
		"maxBookings": {"5"},
	}, nil)
	admin := httptest.FollowRedirect(t, s.Router, created)
	httptest.AssertPageContains(t, admin, http.StatusOK, "Thursday, January 1, 2099", "0 / 5")

	slots := s.Remote.Slots()
	require.Len(t, slots, 1)
	id := slots[0].ID

	for i := 1; i <= 5; i++ {
		w := httptest.PerformForm(t, s.Router, "/slots/"+id+"/book", url.Values{"return_to": {"/"}}, nil)
		page := httptest.FollowRedirect(t, s.Router, w)
		httptest.AssertPageContains(t, page, http.StatusOK, "Slot booked successfully!")
	}

	w := httptest.PerformForm(t, s.Router, "/slots/"+id+"/book", url.Values{"return_to": {"/"}}, nil)
	page := httptest.FollowRedirect(t, s.Router, w)
	httptest.AssertPageContains(t, page, http.StatusOK, fakeapi.MsgSlotFull, "5 / 5", "Fully Booked")

	available := httptest.PerformRequest(t, s.Router, http.MethodGet, "/available", nil)
	httptest.AssertPageNotContains(t, available, id)

	var feed resdto.SlotListResponse
	httptest.AssertSuccessResponse(t, httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/slots", nil), http.StatusOK, &feed)
	require.Len(t, feed.Data, 1)
	assert.Equal(t, 5, feed.Data[0].CurrentBookings)
	assert.True(t, feed.Data[0].IsBooked)
	assert.Equal(t, 6, s.Remote.Calls("POST /api/slots/:id/book"))
}
