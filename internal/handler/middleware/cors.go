package middleware

import (
	"log/slog"
	"slices"

	"slot-booking-web/internal/pkg/config"
	"slot-booking-web/internal/pkg/requestid"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware guards the read-only slot feed. Embedding pages may send
// and read the request id header so their calls can be traced end to end.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     withHeader(cfg.AllowHeaders, requestid.Header),
		ExposeHeaders:    withHeader(cfg.ExposeHeaders, requestid.Header),
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	slog.Info("CORS enabled for slot feed",
		"allow_origins", cfg.AllowOrigins,
		"allow_methods", cfg.AllowMethods,
	)
	return cors.New(corsCfg)
}

func withHeader(headers []string, header string) []string {
	if slices.Contains(headers, header) {
		return headers
	}
	return append(slices.Clone(headers), header)
}
