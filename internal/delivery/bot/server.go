// Package bot is the Telegram delivery: a long-polling server that feeds
// updates through the dispatcher.
package bot

import (
	"context"
	"log/slog"

	"github.com/Dim-Aks/Bot-shop/config"
	"github.com/Dim-Aks/Bot-shop/internal/delivery"
	"github.com/Dim-Aks/Bot-shop/internal/domain/service"
	"github.com/Dim-Aks/Bot-shop/internal/usecase"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/fx"
)

// BotParams holds dependencies for the bot server, injected by Fx.
type BotParams struct {
	fx.In
	fx.Lifecycle

	Config    *config.Config
	Logger    *slog.Logger
	Bot       *tgbotapi.BotAPI
	Users     usecase.UserUsecase
	Catalog   usecase.CatalogUsecase
	Cart      usecase.CartUsecase
	Checkout  usecase.CheckoutUsecase
	Messenger service.Messenger
}

type botServer struct {
	cfg        *config.Config
	logger     *slog.Logger
	bot        *tgbotapi.BotAPI
	dispatcher *dispatcher
}

// NewServer builds the long-polling bot server.
func NewServer(params BotParams) (delivery.Delivery, error) {
	server := &botServer{
		cfg:    params.Config,
		logger: params.Logger,
		bot:    params.Bot,
		dispatcher: &dispatcher{
			bot:       params.Bot,
			users:     params.Users,
			catalog:   params.Catalog,
			cart:      params.Cart,
			checkout:  params.Checkout,
			messenger: params.Messenger,
			channel:   params.Config.Telegram.Channel,
			logger:    params.Logger,
		},
	}

	params.Append(fx.Hook{
		OnStop: server.stop,
	})

	return server, nil
}

// Serve consumes the update stream until the client stops receiving.
func (s *botServer) Serve(ctx context.Context) error {
	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = s.cfg.Telegram.PollTimeout

	s.logger.Info("Starting bot long polling",
		slog.Int("timeout", updateConfig.Timeout))

	updates := s.bot.GetUpdatesChan(updateConfig)
	for update := range updates {
		s.dispatcher.Handle(ctx, update)
	}

	return nil
}

func (s *botServer) stop(ctx context.Context) error {
	s.logger.Info("Stopping bot long polling")
	s.bot.StopReceivingUpdates()

	return nil
}
