package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"groombook/internal/handler/api"
	"groombook/internal/handler/middleware"
	"groombook/internal/pkg/config"
	"groombook/internal/pkg/metrics"
	"groombook/internal/pkg/ratelimit"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Appointments *api.AppointmentHandler
	Customers    *api.CustomerHandler
	Recurrence   *api.RecurrenceHandler
}

// NewRouter wires middleware and routes. m is nil when metrics are disabled.
func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware, searchLimiter *ratelimit.Limiter, m *metrics.Metrics) {
	setupMiddleware(engine, cfg, logger, m)
	setupRoutes(engine, cfg, h, authMiddleware, middleware.RateLimit(searchLimiter, m))
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger, m *metrics.Metrics) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.RequestLogger(logger))
	if m != nil {
		engine.Use(middleware.MetricsMiddleware(m))
	}
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware, searchLimit gin.HandlerFunc) {
	engine.GET("/health", healthCheck)

	if cfg.Metrics.Enabled {
		engine.GET(cfg.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		appointments := apiGroup.Group("/appointments")
		addRoutes(appointments, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Appointments.Book},
			{Method: http.MethodGet, Path: "", Handler: h.Appointments.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Appointments.Get},
			{Method: http.MethodPatch, Path: "/:id/status", Handler: h.Appointments.ChangeStatus},
			{Method: http.MethodPost, Path: "/:id/payment/toggle", Handler: h.Appointments.TogglePayment},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Appointments.Delete},
		})

		addRoutes(apiGroup.Group("/recurrence"), []route{
			{Method: http.MethodPost, Path: "/preview", Handler: h.Recurrence.Preview},
		})

		// Search runs on every keystroke; throttle it per tenant.
		addRoutes(apiGroup.Group("/customers"), []route{
			{Method: http.MethodGet, Path: "/search", Handler: h.Customers.Search, Mw: []gin.HandlerFunc{searchLimit}},
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
		"status":  "ok",
		"message": "Service is healthy",
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
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
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
