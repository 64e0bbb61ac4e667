package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/Dim-Aks/Bot-shop/config"
	"github.com/Dim-Aks/Bot-shop/internal/delivery"
	"github.com/Dim-Aks/Bot-shop/internal/delivery/bot"
	"github.com/Dim-Aks/Bot-shop/internal/delivery/http"
	"github.com/Dim-Aks/Bot-shop/internal/delivery/http/middleware"
	"github.com/Dim-Aks/Bot-shop/internal/delivery/http/router/handler"
	logs "github.com/Dim-Aks/Bot-shop/internal/infra/log"
	"github.com/Dim-Aks/Bot-shop/internal/infra/persistence/postgres"
	"github.com/Dim-Aks/Bot-shop/internal/infra/telegram"
	"github.com/Dim-Aks/Bot-shop/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		telegram.NewClient,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewCategoryRepository,
			postgres.NewSubCategoryRepository,
			postgres.NewProductRepository,
			postgres.NewCartRepository,
			postgres.NewMailingRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			telegram.NewMessenger,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCatalogService,
			impl.NewUserService,
			impl.NewCartService,
			impl.NewCheckoutService,
			impl.NewMailingService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewCategoryHandler,
			handler.NewSubCategoryHandler,
			handler.NewProductHandler,
			handler.NewUserHandler,
			handler.NewMailingHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				bot.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
