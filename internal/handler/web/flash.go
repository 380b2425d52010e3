package web

import (
	"log/slog"
	"net/http"
	"time"

	"slot-booking-web/internal/pkg/clock"
	"slot-booking-web/internal/pkg/config"
	"slot-booking-web/internal/pkg/cookie"
	"slot-booking-web/internal/pkg/errs"
	"slot-booking-web/internal/pkg/notice"

	"github.com/gin-gonic/gin"
)

const (
	flashCookieTTL = time.Minute
	// applied when the notices do not fit the cookie as they are
	shortNoticeRunes = 160
)

// Flasher stamps notices with their display deadline and carries them over
// redirects.
type Flasher struct {
	cookieCfg config.CookieConfig
	clock     clock.Clock
	toastTTL  time.Duration
}

func NewFlasher(cfg config.Config, clk clock.Clock) *Flasher {
	return &Flasher{
		cookieCfg: cfg.Cookie,
		clock:     clk,
		toastTTL:  cfg.UI.ToastDuration,
	}
}

func (f *Flasher) Toast(n notice.Notice) notice.Notice {
	return n.Until(f.clock.Now().Add(f.toastTTL))
}

// Redirect answers a form post with 303 See Other after storing the notices.
func (f *Flasher) Redirect(c *gin.Context, location string, toasts []notice.Notice, formNotice *notice.Notice) {
	flash := cookie.Flash{FormNotice: formNotice}
	for _, t := range toasts {
		flash.Toasts = append(flash.Toasts, f.Toast(t))
	}
	err := cookie.SetFlash(c, f.cookieCfg, flash, flashCookieTTL)
	if errs.Is(err, errs.ErrFlashTooLarge) {
		err = cookie.SetFlash(c, f.cookieCfg, shorten(flash), flashCookieTTL)
	}
	if err != nil {
		slog.WarnContext(c.Request.Context(), "failed to store flash", "error", err)
	}
	c.Redirect(http.StatusSeeOther, location)
}

func shorten(flash cookie.Flash) cookie.Flash {
	short := cookie.Flash{Toasts: make([]notice.Notice, len(flash.Toasts))}
	for i, t := range flash.Toasts {
		short.Toasts[i] = t.Shorten(shortNoticeRunes)
	}
	if flash.FormNotice != nil {
		n := flash.FormNotice.Shorten(shortNoticeRunes)
		short.FormNotice = &n
	}
	return short
}

func (f *Flasher) Pop(c *gin.Context) cookie.Flash {
	return cookie.PopFlash(c, f.cookieCfg, f.clock.Now())
}

func (f *Flasher) Now() time.Time {
	return f.clock.Now()
}
