package api

import (
	"net/http"

	resdto "slot-booking-web/internal/handler/dto/response"
	"slot-booking-web/internal/handler/httperr"
	"slot-booking-web/internal/pkg/errs"
	"slot-booking-web/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SlotFeedHandler struct {
	slotQueries queries.SlotQueries
}

func NewSlotFeedHandler(slotQueries queries.SlotQueries) *SlotFeedHandler {
	return &SlotFeedHandler{
		slotQueries: slotQueries,
	}
}

// @Summary List all slots
// @Description Cached list of every appointment slot
// @Tags slots
// @Produce json
// @Success 200 {object} resdto.SlotListResponse
// @Failure 502 {object} httperr.Response
// @Router /api/slots [get]
func (h *SlotFeedHandler) ListAll(c *gin.Context) {
	h.respond(c, queries.KeyAllSlots)
}

// @Summary List available slots
// @Description Cached list of slots that still accept bookings
// @Tags slots
// @Produce json
// @Success 200 {object} resdto.SlotListResponse
// @Failure 502 {object} httperr.Response
// @Router /api/slots/available [get]
func (h *SlotFeedHandler) ListAvailable(c *gin.Context) {
	h.respond(c, queries.KeyAvailableSlots)
}

func (h *SlotFeedHandler) respond(c *gin.Context, key queries.QueryKey) {
	state := h.slotQueries.Query(c.Request.Context(), key)
	if !state.HasData {
		err := errs.Wrap(state.Err, "load slot feed")
		if err == nil {
			err = errs.New("slot feed has no data")
		}
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Failed to load slots", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSlots(state.Data, state.IsStale))
}
