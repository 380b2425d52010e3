package web

import (
	"net/http"
	"time"

	"slot-booking-web/internal/pkg/notice"
	"slot-booking-web/internal/usecase/commands"
	"slot-booking-web/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const MsgListLoadFailed = "Failed to load slots."

type listPage struct {
	path        string
	title       string
	key         queries.QueryKey
	loadingText string
}

var (
	allSlotsPage = listPage{
		path:        pathAll,
		title:       "All Appointment Slots",
		key:         queries.KeyAllSlots,
		loadingText: "Loading...",
	}
	availableSlotsPage = listPage{
		path:        pathAvailable,
		title:       "Available Slots",
		key:         queries.KeyAvailableSlots,
		loadingText: "Loading available slots...",
	}
)

type SlotPageHandler struct {
	queries  queries.SlotQueries
	commands commands.SlotCommands
	flasher  *Flasher
	location *time.Location
}

func NewSlotPageHandler(q queries.SlotQueries, cmds commands.SlotCommands, flasher *Flasher, loc *time.Location) *SlotPageHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &SlotPageHandler{
		queries:  q,
		commands: cmds,
		flasher:  flasher,
		location: loc,
	}
}

func (h *SlotPageHandler) AllSlots(c *gin.Context) {
	h.renderList(c, allSlotsPage)
}

func (h *SlotPageHandler) AvailableSlots(c *gin.Context) {
	h.renderList(c, availableSlotsPage)
}

func (h *SlotPageHandler) BookSlot(c *gin.Context) {
	res := h.commands.BookSlot(c.Request.Context(), c.Param("id"))
	h.flasher.Redirect(c, safeReturn(c.PostForm("return_to")), []notice.Notice{res.Notice()}, nil)
}

func (h *SlotPageHandler) CancelBooking(c *gin.Context) {
	res := h.commands.CancelBooking(c.Request.Context(), c.Param("id"))
	h.flasher.Redirect(c, safeReturn(c.PostForm("return_to")), []notice.Notice{res.Notice()}, nil)
}

func (h *SlotPageHandler) renderList(c *gin.Context, p listPage) {
	flash := h.flasher.Pop(c)
	state := h.queries.Query(c.Request.Context(), p.key)

	view := listPageView{
		Title:       p.title,
		Nav:         navigation(p.path),
		Toasts:      toastViews(flash.Toasts, h.flasher.Now()),
		Loading:     state.IsLoading(),
		LoadingText: p.loadingText,
		Stale:       state.HasData && state.IsStale,
	}
	if state.IsError() && !state.HasData {
		view.Error = MsgListLoadFailed
	}

	builder := cardBuilder{
		commands: h.commands,
		location: h.location,
		selected: c.Query("selected"),
		returnTo: p.path,
	}
	view.Cards = builder.cards(state.Data)

	c.HTML(http.StatusOK, templateSlots, view)
}
