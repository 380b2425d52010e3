package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"slot-booking-web/internal/handler/httperr"
	"slot-booking-web/internal/handler/web"
	"slot-booking-web/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const (
	apiPrefix       = "/api"
	msgInternal     = "Internal server error"
	maxLoggedFrames = 12
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		// Search backward through the error stack
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]

			if err.IsType(gin.ErrorTypePublic) {
				// Public: Meta ⇒ Return as is
				if resp, ok := err.Meta.(httperr.Response); ok {
					writeError(c, resp.Status, resp)
					return
				}
			}
		}
		if len(c.Errors) > 0 {
			slog.ErrorContext(c.Request.Context(), "unhandled request error",
				"path", c.Request.URL.Path,
				"stack", errs.ExtractStackLines(c.Errors.Last().Err, maxLoggedFrames),
			)
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		writeError(c, http.StatusInternalServerError, httperr.New(c, http.StatusInternalServerError, msgInternal))
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("recovered from panic", "error", err, "path", c.Request.URL.Path)

				writeError(c, http.StatusInternalServerError, httperr.New(c, http.StatusInternalServerError, msgInternal))
				c.Abort()
			}
		}()
		c.Next()
	}
}

// NotFound answers unknown routes in the same format as other errors.
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		writeError(c, http.StatusNotFound, httperr.New(c, http.StatusNotFound, "Page not found"))
	}
}

// writeError answers the JSON feed with JSON and every page with HTML.
func writeError(c *gin.Context, status int, resp httperr.Response) {
	if strings.HasPrefix(c.Request.URL.Path, apiPrefix) {
		c.JSON(status, resp)
		return
	}
	web.ErrorPage(c, status, resp.Error.Message)
}
