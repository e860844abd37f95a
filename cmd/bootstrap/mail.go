package bootstrap

import (
	"weekend-booking/internal/infra/notify"
	"weekend-booking/internal/pkg/config"
	"weekend-booking/internal/usecase/commands"

	"go.uber.org/fx"
)

var MailModule = fx.Module("mail",
	fx.Provide(
		NewNotifier,
	),
)

func NewNotifier(cfg config.Config) commands.Notifier {
	return notify.New(cfg.Mail)
}
