package middleware

import "github.com/gin-gonic/gin"

// NoStore keeps browsers from showing a slot list from before the last booking.
func NoStore() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-store")
	}
}
