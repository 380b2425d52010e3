package httperr

import (
	"slot-booking-web/internal/pkg/requestid"

	"github.com/gin-gonic/gin"
)

// Response is the JSON error body of the slot feed. Pages render the same
// message through the error template instead.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	RequestID string `json:"requestId,omitempty"`
	Detail    any    `json:"detail,omitempty"`
}

func New(c *gin.Context, status int, msg string) Response {
	resp := Response{Status: status}
	resp.Error.Message = msg
	if c != nil && c.Request != nil {
		resp.RequestID = requestid.From(c.Request.Context())
	}
	return resp
}

// keeps the cause on the context so the error middleware can log it
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := New(c, status, msg)
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
