package bootstrap

import (
	"weekend-booking/internal/domain/calendar"
	"weekend-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewWindow,
	),
)

func NewWindow(cfg config.Config) (*calendar.Window, error) {
	loc, err := cfg.Booking.Location()
	if err != nil {
		return nil, err
	}
	return calendar.NewWindow(loc, cfg.Booking.WindowDays, cfg.Booking.MaxDates)
}
