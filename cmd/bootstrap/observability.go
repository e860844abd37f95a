package bootstrap

import (
	"context"

	"weekend-booking/internal/infra/metrics"
	"weekend-booking/internal/infra/telemetry"
	"weekend-booking/internal/pkg/config"
	"weekend-booking/internal/usecase/commands"

	"go.uber.org/fx"
)

var ObservabilityModule = fx.Module("observability",
	fx.Provide(
		fx.Annotate(
			metrics.New,
			fx.As(fx.Self()),
			fx.As(new(commands.Metrics)),
		),
	),
	fx.Invoke(SetupTelemetry),
)

func SetupTelemetry(lc fx.Lifecycle, cfg config.Config) error {
	shutdown, err := telemetry.Setup(context.Background(), cfg.Telemetry)
	if err != nil {
		return err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return shutdown(ctx)
		},
	})
	return nil
}
