package cookie

import (
	"encoding/base64"
	"net/http"
	"time"

	"slot-booking-web/internal/pkg/config"
	"slot-booking-web/internal/pkg/errs"
	"slot-booking-web/internal/pkg/notice"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
)

const FlashCookieName = "slot_flash"

// MaxFlashValueBytes leaves room for the cookie attributes inside the 4096
// bytes browsers accept per cookie.
const MaxFlashValueBytes = 3500

// Flash carries notices across a POST/redirect/GET round trip.
type Flash struct {
	Toasts     []notice.Notice `json:"toasts,omitempty"`
	FormNotice *notice.Notice  `json:"formNotice,omitempty"`
}

func (f Flash) Empty() bool {
	return len(f.Toasts) == 0 && f.FormNotice == nil
}

// SetFlash stores flash for the next request. It refuses values a browser
// would silently drop and returns errs.ErrFlashTooLarge instead.
func SetFlash(c *gin.Context, cfg config.CookieConfig, flash Flash, ttl time.Duration) error {
	if flash.Empty() {
		return nil
	}
	raw, err := json.Marshal(flash)
	if err != nil {
		return errs.Wrap(err, "encode flash")
	}
	value := base64.RawURLEncoding.EncodeToString(raw)
	if len(value) > MaxFlashValueBytes {
		return errs.Wrapf(errs.ErrFlashTooLarge, "%d bytes", len(value))
	}

	c.SetSameSite(getSameSite(cfg.SameSite))
	c.SetCookie(
		FlashCookieName,
		value,
		int(ttl.Seconds()),
		"/",
		cfg.Domain,
		cfg.Secure,
		true, // HttpOnly
	)
	return nil
}

// PopFlash reads and clears the flash cookie. Notices that expired while the
// browser followed the redirect are dropped.
func PopFlash(c *gin.Context, cfg config.CookieConfig, now time.Time) Flash {
	value, err := c.Cookie(FlashCookieName)
	if err != nil || value == "" {
		return Flash{}
	}
	clearFlash(c, cfg)

	raw, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return Flash{}
	}
	var flash Flash
	if err := json.Unmarshal(raw, &flash); err != nil {
		return Flash{}
	}

	visible := flash.Toasts[:0]
	for _, n := range flash.Toasts {
		if n.Visible(now) {
			visible = append(visible, n)
		}
	}
	flash.Toasts = visible
	if flash.FormNotice != nil && !flash.FormNotice.Visible(now) {
		flash.FormNotice = nil
	}
	return flash
}

func clearFlash(c *gin.Context, cfg config.CookieConfig) {
	c.SetSameSite(getSameSite(cfg.SameSite))
	c.SetCookie(FlashCookieName, "", -1, "/", cfg.Domain, cfg.Secure, true)
}

func getSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "Lax":
		return http.SameSiteLaxMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
