package web

import (
	"net/http"
	"time"

	"slot-booking-web/internal/domain/slot"
	"slot-booking-web/internal/pkg/notice"
	"slot-booking-web/internal/usecase/commands"
	"slot-booking-web/internal/usecase/queries"
	"slot-booking-web/internal/usecase/slotform"

	"github.com/gin-gonic/gin"
)

const MsgAdminLoadFailed = "Failed to load slots from backend."

type AdminPageHandler struct {
	queries  queries.SlotQueries
	commands commands.SlotCommands
	form     *slotform.Controller
	flasher  *Flasher
	location *time.Location
}

func NewAdminPageHandler(q queries.SlotQueries, cmds commands.SlotCommands, form *slotform.Controller, flasher *Flasher, loc *time.Location) *AdminPageHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &AdminPageHandler{
		queries:  q,
		commands: cmds,
		form:     form,
		flasher:  flasher,
		location: loc,
	}
}

func (h *AdminPageHandler) Show(c *gin.Context) {
	flash := h.flasher.Pop(c)

	state := h.form.Initial()
	if flash.FormNotice != nil {
		state.Notice = *flash.FormNotice
	}
	h.render(c, http.StatusOK, state, flash.Toasts)
}

func (h *AdminPageHandler) CreateSlot(c *gin.Context) {
	var values slotform.Values
	if err := c.ShouldBind(&values); err != nil {
		rejected := commands.Result{Kind: commands.KindCreate, Err: err}
		toast := h.flasher.Toast(rejected.Notice())
		h.render(c, http.StatusBadRequest, slotform.State{Values: h.form.Defaults()}, []notice.Notice{toast})
		return
	}

	sub := h.form.Submit(c.Request.Context(), values)
	switch {
	case sub.Result == nil:
		h.render(c, http.StatusUnprocessableEntity, sub.State, nil)
	case !sub.Result.OK():
		toast := h.flasher.Toast(sub.Result.Notice())
		h.render(c, http.StatusUnprocessableEntity, sub.State, []notice.Notice{toast})
	default:
		formNotice := sub.State.Notice
		h.flasher.Redirect(c, pathAdmin, []notice.Notice{sub.Result.Notice()}, &formNotice)
	}
}

func (h *AdminPageHandler) ClearForm(c *gin.Context) {
	h.render(c, http.StatusOK, h.form.Clear(), nil)
}

func (h *AdminPageHandler) render(c *gin.Context, status int, form slotform.State, toasts []notice.Notice) {
	now := h.flasher.Now()
	state := h.queries.Query(c.Request.Context(), queries.KeyAllSlots)

	creating := h.commands.Phase(commands.KindCreate, "") == commands.PhasePending
	view := adminPageView{
		Title:  "Admin Panel",
		Nav:    navigation(pathAdmin),
		Toasts: toastViews(toasts, now),
		Form: formView{
			Values:       form.Values,
			Errors:       form.Errors,
			MinStartTime: h.form.MinStartTime(),
			Creating:     creating,
			SubmitLabel:  pick(creating, "Creating...", "Create Slot"),
		},
		Loading: state.IsLoading(),
	}
	if form.Notice.Visible(now) {
		v := toastViews([]notice.Notice{form.Notice}, now)[0]
		view.Form.Notice = &v
	}

	if state.IsError() && !state.HasData {
		view.Error = MsgAdminLoadFailed
	}

	builder := cardBuilder{
		commands: h.commands,
		location: h.location,
		selected: c.Query("selected"),
		returnTo: pathAdmin,
	}
	for _, g := range slot.GroupByDate(state.Data, h.location) {
		view.Groups = append(view.Groups, dateGroupView{Label: g.Label, Cards: builder.cards(g.Slots)})
	}
	view.Empty = len(view.Groups) == 0 && !view.Loading

	c.HTML(status, templateAdmin, view)
}
