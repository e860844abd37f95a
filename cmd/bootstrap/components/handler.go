package components

import (
	"weekend-booking/internal/handler"
	"weekend-booking/internal/handler/api"
	"weekend-booking/internal/handler/middleware"
	"weekend-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		func(cfg config.Config) config.CookieConfig { return cfg.Cookie },
		api.NewBookingHandler,
		api.NewAuthHandler,
		api.NewAppointmentHandler,
		api.NewDateControllerHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
