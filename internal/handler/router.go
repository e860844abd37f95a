package handler

import (
	"net/http"

	"weekend-booking/internal/handler/api"
	"weekend-booking/internal/handler/middleware"
	"weekend-booking/internal/infra/metrics"
	"weekend-booking/internal/infra/ratelimit"
	"weekend-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type RouterParams struct {
	fx.In

	Engine  *gin.Engine
	Config  config.Config
	Logger  *middleware.Logger
	Metrics *metrics.Metrics
	Limiter ratelimit.Limiter

	AuthMiddleware     *middleware.AuthMiddleware
	BookingHandler     *api.BookingHandler
	AuthHandler        *api.AuthHandler
	AppointmentHandler *api.AppointmentHandler
	DateController     *api.DateControllerHandler
}

func NewRouter(p RouterParams) {
	setupMiddleware(p)
	setupRoutes(p)
}

func setupMiddleware(p RouterParams) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	p.Engine.Use(middleware.CustomRecovery())
	p.Engine.Use(middleware.NewCORSMiddleware(p.Config.CORS))
	p.Engine.Use(p.Logger.LoggingMiddleware())
	p.Engine.Use(middleware.Metrics(p.Metrics))
	p.Engine.Use(middleware.ErrorHandler())
}

func setupRoutes(p RouterParams) {
	engine := p.Engine
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(p.Metrics.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	var limited []gin.HandlerFunc
	if p.Config.RateLimit.Enabled {
		limited = append(limited, middleware.RateLimit(p.Limiter, p.Config.RateLimit.FailOpen, p.Metrics))
	}

	apiGroup := engine.Group("/api")
	{
		bookings := apiGroup.Group("/bookings")
		addRoutes(bookings, []route{
			{Method: http.MethodGet, Path: "/availability", Handler: p.BookingHandler.GetAvailability},
			{Method: http.MethodPost, Path: "", Handler: p.BookingHandler.Create, Mw: limited},
		})

		admin := apiGroup.Group("/admin")
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/login", Handler: p.AuthHandler.Login, Mw: limited},
			})

			authRequired := admin.Group("")
			authRequired.Use(p.AuthMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: p.AuthHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: p.AuthHandler.Me},
				{Method: http.MethodGet, Path: "/dashboard/stats", Handler: p.AppointmentHandler.DashboardStats},

				{Method: http.MethodGet, Path: "/appointments", Handler: p.AppointmentHandler.List},
				{Method: http.MethodGet, Path: "/appointments/export", Handler: p.AppointmentHandler.Export},
				{Method: http.MethodGet, Path: "/appointments/:id", Handler: p.AppointmentHandler.Get},
				{Method: http.MethodPatch, Path: "/appointments/:id/status", Handler: p.AppointmentHandler.UpdateStatus},
				{Method: http.MethodDelete, Path: "/appointments/:id", Handler: p.AppointmentHandler.Delete},

				{Method: http.MethodGet, Path: "/date-controller/available-dates", Handler: p.DateController.AvailableDates},
				{Method: http.MethodGet, Path: "/date-controller/deleted-slots", Handler: p.DateController.DeletedSlots},
				{Method: http.MethodDelete, Path: "/date-controller/slot/:date/:time_slot", Handler: p.DateController.DisableSlot},
				{Method: http.MethodPost, Path: "/date-controller/restore-slot", Handler: p.DateController.RestoreSlot},
			})
		}
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
			h = chainHandlers(append(r.Mw[:len(r.Mw):len(r.Mw)], r.Handler)...)
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
