// Package bootstrap groups the fx options shared by every furnishop binary.
package bootstrap

import (
	"context"
	"log/slog"

	"furnishop/config"
	"furnishop/internal/infra/auth"
	"furnishop/internal/infra/idgen"
	"furnishop/internal/infra/kvstore"
	logs "furnishop/internal/infra/log"
	"furnishop/internal/infra/payment"
	"furnishop/internal/infra/persistence/kv"
	"furnishop/internal/infra/pubsub"
	"furnishop/internal/infra/qrcode"
	"furnishop/internal/infra/seed"
	"furnishop/internal/usecase"
	"furnishop/internal/usecase/impl"

	"go.uber.org/fx"
)

// Infra provides config, logging and the durable store.
func Infra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
		),
		Store(),
	)
}

// Store opens the durable store. It expects a *config.Config and a *slog.Logger.
func Store() fx.Option {
	return fx.Provide(
		context.Background,
		kvstore.New,
	)
}

// Repositories provides the kv-backed record repositories.
func Repositories() fx.Option {
	return fx.Options(
		fx.Provide(
			kv.NewCredentialRepository,
			kv.NewSessionRepository,
			kv.NewCartRepository,
			kv.NewOrderRepository,
			kv.NewCatalogRepository,
		),
	)
}

// Services provides the domain service adapters.
func Services() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			idgen.New,
			seed.NewProvider,
			payment.NewFromConfig,
			qrcode.NewQRCodeServiceFromConfig,
		),
		pubsub.Module,
	)
}

// Usecases provides the application services and rehydrates the stores on start.
func Usecases() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionService,
			impl.NewCartService,
			impl.NewOrderService,
			impl.NewCatalogService,
			impl.NewCheckoutService,
			impl.NewDashboardService,
		),
		fx.Invoke(registerInit),
	)
}

// Domain is the stores and services on top of an opened store.
func Domain() fx.Option {
	return fx.Options(
		Repositories(),
		Services(),
		Usecases(),
	)
}

// Core is everything below the delivery layer.
func Core() fx.Option {
	return fx.Options(
		Infra(),
		Domain(),
	)
}

type initParams struct {
	fx.In

	Lc      fx.Lifecycle
	Logger  *slog.Logger
	Session usecase.SessionUsecase
	Cart    usecase.CartUsecase
	Orders  usecase.OrderUsecase
	Catalog usecase.CatalogUsecase
}

type initializer interface {
	Init(ctx context.Context) error
}

func registerInit(params initParams) {
	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			for _, store := range []initializer{params.Session, params.Cart, params.Orders, params.Catalog} {
				if err := store.Init(ctx); err != nil {
					return err
				}
			}
			params.Logger.Debug("Stores rehydrated")

			return nil
		},
	})
}
