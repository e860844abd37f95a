package bootstrap

import (
	"context"
	"log/slog"

	"weekend-booking/internal/pkg/config"
	"weekend-booking/internal/usecase/commands"

	"go.uber.org/fx"
)

var SeedModule = fx.Module("seed",
	fx.Invoke(SeedAdmin),
)

// SeedAdmin creates the configured admin on start. An empty ADMIN_EMAIL
// skips seeding; an existing admin is left untouched.
func SeedAdmin(lc fx.Lifecycle, cfg config.Config, auth commands.AuthCommands, logger *slog.Logger) {
	if cfg.Admin.Email == "" {
		logger.Info("admin seeding skipped", "reason", "ADMIN_EMAIL not set")
		return
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			created, err := auth.EnsureAdmin(ctx, cfg.Admin.Email, cfg.Admin.Name, cfg.Admin.Password)
			if err != nil {
				return err
			}
			if created {
				logger.Info("admin account created", "email", cfg.Admin.Email)
			}
			return nil
		},
	})
}
