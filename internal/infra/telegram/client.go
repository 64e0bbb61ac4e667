// Package telegram wraps the Bot API client: construction from config and
// the Messenger implementation the use cases push messages through.
package telegram

import (
	"log/slog"

	"github.com/Dim-Aks/Bot-shop/config"
	"github.com/Dim-Aks/Bot-shop/internal/errors"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/fx"
)

// ClientParams holds dependencies for the Bot API client, injected by Fx.
type ClientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewClient authorizes against the Bot API with the configured token. The
// client is shared by the polling loop and the Messenger.
func NewClient(params ClientParams) (*tgbotapi.BotAPI, error) {
	bot, err := tgbotapi.NewBotAPI(params.Config.Telegram.Token)
	if err != nil {
		return nil, errors.Wrap(err, "failed to authorize bot")
	}
	bot.Debug = params.Config.Telegram.Debug

	params.Logger.Info("bot authorized", slog.String("username", bot.Self.UserName))

	return bot, nil
}
