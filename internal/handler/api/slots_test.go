//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"slot-booking-web/internal/domain/slot"
	"slot-booking-web/internal/handler/api"
	resdto "slot-booking-web/internal/handler/dto/response"
	"slot-booking-web/internal/usecase/queries"
	"slot-booking-web/tests/common/builder"
	"slot-booking-web/tests/common/httptest"
	queriesmock "slot-booking-web/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SlotFeedHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockSlotQueries
	handler     *api.SlotFeedHandler
}

func (s *SlotFeedHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockSlotQueries(s.mockCtrl)
	s.handler = api.NewSlotFeedHandler(s.mockQueries)

	s.router.GET("/api/slots", s.handler.ListAll)
	s.router.GET("/api/slots/available", s.handler.ListAvailable)
}

func (s *SlotFeedHandlerTestSuite) SetupSubTest() {
	s.SetupTest()
}

func (s *SlotFeedHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSlotFeedHandlerSuite(t *testing.T) {
	suite.Run(t, new(SlotFeedHandlerTestSuite))
}

func (s *SlotFeedHandlerTestSuite) TestList() {
	open := builder.NewSlotBuilder().With(func(b *builder.SlotBuilder) { b.ID = "open" }).Build()
	full := builder.NewSlotBuilder().With(func(b *builder.SlotBuilder) { b.ID = "full" }).Full().Build()

	testCases := []struct {
		name        string
		path        string
		key         queries.QueryKey
		state       queries.QueryState
		expectCode  int
		expectBody  *resdto.SlotListResponse
		expectError string
	}{
		{
			name:       "all slots",
			path:       "/api/slots",
			key:        queries.KeyAllSlots,
			state:      queries.QueryState{Data: []slot.Slot{open, full}, HasData: true},
			expectCode: http.StatusOK,
			expectBody: &resdto.SlotListResponse{Data: []resdto.SlotResponse{resdto.FromSlot(open), resdto.FromSlot(full)}},
		},
		{
			name:       "available slots while refreshing",
			path:       "/api/slots/available",
			key:        queries.KeyAvailableSlots,
			state:      queries.QueryState{Data: []slot.Slot{open}, HasData: true, IsStale: true},
			expectCode: http.StatusOK,
			expectBody: &resdto.SlotListResponse{Data: []resdto.SlotResponse{resdto.FromSlot(open)}, Stale: true},
		},
		{
			name:       "empty collection",
			path:       "/api/slots",
			key:        queries.KeyAllSlots,
			state:      queries.QueryState{HasData: true},
			expectCode: http.StatusOK,
			expectBody: &resdto.SlotListResponse{Data: []resdto.SlotResponse{}},
		},
		{
			name:       "retained data hides a failed refetch",
			path:       "/api/slots",
			key:        queries.KeyAllSlots,
			state:      queries.QueryState{Data: []slot.Slot{full}, HasData: true, IsStale: true, Err: errors.New("down")},
			expectCode: http.StatusOK,
			expectBody: &resdto.SlotListResponse{Data: []resdto.SlotResponse{resdto.FromSlot(full)}, Stale: true},
		},
		{
			name:        "no data and failed fetch",
			path:        "/api/slots/available",
			key:         queries.KeyAvailableSlots,
			state:       queries.QueryState{Err: errors.New("down")},
			expectCode:  http.StatusBadGateway,
			expectError: "Failed to load slots",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.mockQueries.EXPECT().Query(gomock.Any(), tc.key).Return(tc.state)

			w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, tc.path, nil)

			if tc.expectError != "" {
				httptest.AssertErrorResponse(s.T(), w, tc.expectCode, tc.expectError)
				return
			}
			var got resdto.SlotListResponse
			httptest.AssertSuccessResponse(s.T(), w, tc.expectCode, &got)
			if diff := cmp.Diff(*tc.expectBody, got); diff != "" {
				s.T().Errorf("response mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
