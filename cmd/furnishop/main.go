// Command furnishop serves the storefront API for a single browsing client.
// The session, cart and orders live in one store namespace shared by every
// request, so one instance serves one client. Do not put it behind a
// multi-user frontend; run one instance (or one store.namespace) per client.
package main

import (
	"context"
	"log/slog"
	"os"

	"furnishop/internal/bootstrap"
	"furnishop/internal/delivery"
	deliveryhttp "furnishop/internal/delivery/http"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		bootstrap.Core(),
		deliveryhttp.Module,
		fx.Invoke(
			startServer,
		),
	).Run()
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown so the store is closed by its OnStop hook
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
