package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"slot-booking-web/internal/handler/api"
	"slot-booking-web/internal/handler/middleware"
	"slot-booking-web/internal/handler/web"
	"slot-booking-web/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Slots *web.SlotPageHandler
	Admin *web.AdminPageHandler
	Feed  *api.SlotFeedHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, slotPages *web.SlotPageHandler, adminPage *web.AdminPageHandler, feed *api.SlotFeedHandler) error {
	return Setup(engine, cfg, logger, Handlers{Slots: slotPages, Admin: adminPage, Feed: feed})
}

// Setup wires templates, middleware and routes onto engine.
func Setup(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers) error {
	tmpl, err := web.ParseTemplates()
	if err != nil {
		return err
	}
	engine.SetHTMLTemplate(tmpl)

	setupMiddleware(engine, logger)
	setupRoutes(engine, cfg, h)
	return nil
}

func setupMiddleware(engine *gin.Engine, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
	engine.NoRoute(middleware.NotFound())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	noStore := []gin.HandlerFunc{middleware.NoStore()}

	pages := engine.Group("")
	{
		addRoutes(pages, []route{
			{Method: http.MethodGet, Path: "/", Handler: h.Slots.AllSlots, Mw: noStore},
			{Method: http.MethodGet, Path: "/available", Handler: h.Slots.AvailableSlots, Mw: noStore},
			{Method: http.MethodPost, Path: "/slots/:id/book", Handler: h.Slots.BookSlot},
			{Method: http.MethodPost, Path: "/slots/:id/cancel", Handler: h.Slots.CancelBooking},
		})

		admin := pages.Group("/admin")
		addRoutes(admin, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Admin.Show, Mw: noStore},
			{Method: http.MethodPost, Path: "/slots", Handler: h.Admin.CreateSlot},
			{Method: http.MethodPost, Path: "/slots/clear", Handler: h.Admin.ClearForm},
		})
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(middleware.NewCORSMiddleware(cfg.CORS))
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/slots", Handler: h.Feed.ListAll},
			{Method: http.MethodGet, Path: "/slots/available", Handler: h.Feed.ListAvailable},
			// preflight is answered by the CORS middleware
			{Method: http.MethodOptions, Path: "/*any", Handler: func(c *gin.Context) { c.Status(http.StatusNoContent) }},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodOptions:
			g.OPTIONS(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
