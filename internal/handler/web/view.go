package web

import (
	"net/http"
	"net/url"
	"time"

	"slot-booking-web/internal/domain/slot"
	"slot-booking-web/internal/pkg/notice"
	"slot-booking-web/internal/usecase/commands"
	"slot-booking-web/internal/usecase/slotform"

	"github.com/gin-gonic/gin"
)

const (
	cardDateLayout = "01/02/2006"
	cardTimeLayout = "15:04"
)

const (
	pathAll       = "/"
	pathAvailable = "/available"
	pathAdmin     = "/admin"
)

var returnPaths = map[string]bool{
	pathAll:       true,
	pathAvailable: true,
	pathAdmin:     true,
}

// safeReturn keeps redirects on the pages this server renders.
func safeReturn(raw string) string {
	if returnPaths[raw] {
		return raw
	}
	return pathAll
}

type navItem struct {
	Label  string
	Path   string
	Active bool
}

func navigation(active string) []navItem {
	items := []navItem{
		{Label: "All Slots", Path: pathAll},
		{Label: "Available Slots", Path: pathAvailable},
		{Label: "Admin", Path: pathAdmin},
	}
	for i := range items {
		items[i].Active = items[i].Path == active
	}
	return items
}

type toastView struct {
	Kind      string
	Message   string
	TTLMillis int64
}

func toastViews(toasts []notice.Notice, now time.Time) []toastView {
	views := make([]toastView, 0, len(toasts))
	for _, t := range toasts {
		if !t.Visible(now) {
			continue
		}
		views = append(views, toastView{
			Kind:      string(t.Kind),
			Message:   t.Message,
			TTLMillis: t.RemainingMillis(now),
		})
	}
	return views
}

type cardView struct {
	ID              string
	Date            string
	Time            string
	CurrentBookings int
	MaxBookings     int
	Remaining       int
	Status          string
	Booked          bool
	Selected        bool
	SelectHref      string
	ActionPath      string
	ActionLabel     string
	Pending         bool
	ReturnTo        string
}

type cardBuilder struct {
	commands commands.SlotCommands
	location *time.Location
	selected string
	returnTo string
}

func (b cardBuilder) card(s slot.Slot) cardView {
	start := s.StartTime.In(b.location)
	v := cardView{
		ID:              s.ID,
		Date:            start.Format(cardDateLayout),
		Time:            start.Format(cardTimeLayout),
		CurrentBookings: s.CurrentBookings,
		MaxBookings:     s.MaxBookings,
		Remaining:       s.RemainingCapacity(),
		Status:          s.StatusLabel(),
		Booked:          s.IsBooked,
		Selected:        b.selected != "" && b.selected == s.ID,
		SelectHref:      b.returnTo + "?selected=" + url.QueryEscape(s.ID),
		ReturnTo:        b.returnTo,
	}

	escaped := url.PathEscape(s.ID)
	if s.CanCancel() {
		v.ActionPath = "/slots/" + escaped + "/cancel"
		v.Pending = b.commands.Phase(commands.KindCancel, s.ID) == commands.PhasePending
		v.ActionLabel = pick(v.Pending, "Cancelling...", "Cancel Booking")
	} else {
		v.ActionPath = "/slots/" + escaped + "/book"
		v.Pending = b.commands.Phase(commands.KindBook, s.ID) == commands.PhasePending
		v.ActionLabel = pick(v.Pending, "Booking...", "Book Slot")
	}
	return v
}

func (b cardBuilder) cards(slots []slot.Slot) []cardView {
	views := make([]cardView, len(slots))
	for i, s := range slots {
		views[i] = b.card(s)
	}
	return views
}

type listPageView struct {
	Title       string
	Nav         []navItem
	Toasts      []toastView
	Loading     bool
	LoadingText string
	Error       string
	Stale       bool
	Cards       []cardView
}

type dateGroupView struct {
	Label string
	Cards []cardView
}

type formView struct {
	Values       slotform.Values
	Errors       slotform.FieldErrors
	MinStartTime string
	Notice       *toastView
	Creating     bool
	SubmitLabel  string
}

type adminPageView struct {
	Title   string
	Nav     []navItem
	Toasts  []toastView
	Form    formView
	Loading bool
	Error   string
	Empty   bool
	Groups  []dateGroupView
}

type errorPageView struct {
	Title   string
	Nav     []navItem
	Toasts  []toastView
	Status  int
	Message string
}

func pick(cond bool, yes, no string) string {
	if cond {
		return yes
	}
	return no
}

// ErrorPage renders the HTML error page used outside the JSON feed.
func ErrorPage(c *gin.Context, status int, message string) {
	c.HTML(status, templateError, errorPageView{
		Title:   http.StatusText(status),
		Nav:     navigation(""),
		Status:  status,
		Message: message,
	})
}
