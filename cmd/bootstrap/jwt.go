package bootstrap

import (
	"weekend-booking/internal/pkg/config"
	"weekend-booking/internal/pkg/jwt"
	"weekend-booking/internal/pkg/password"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
		password.NewDefaultHasher,
	),
)

func NewJWTService(cfg config.Config) *jwt.Service {
	return jwt.NewService(cfg.JWT.Secret, cfg.JWT.Duration)
}
