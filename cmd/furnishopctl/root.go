package main

import (
	"context"

	"furnishop/internal/bootstrap"
	"furnishop/internal/domain/lifecycle"
	"furnishop/internal/errors"
	"furnishop/internal/usecase"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

// stores are the usecases a command can reach.
type stores struct {
	catalog   usecase.CatalogUsecase
	orders    usecase.OrderUsecase
	session   usecase.SessionUsecase
	dashboard usecase.DashboardUsecase
}

// runner opens the store, hands the usecases to fn and closes the store again.
type runner func(ctx context.Context, fn func(ctx context.Context, s *stores) error) error

func newRunner(infra fx.Option) runner {
	return func(ctx context.Context, fn func(ctx context.Context, s *stores) error) error {
		var s stores
		app := fx.New(
			infra,
			bootstrap.Store(),
			bootstrap.Domain(),
			fx.NopLogger,
			fx.Invoke(func(
				catalog usecase.CatalogUsecase,
				orders usecase.OrderUsecase,
				session usecase.SessionUsecase,
				dashboard usecase.DashboardUsecase,
			) {
				s = stores{catalog: catalog, orders: orders, session: session, dashboard: dashboard}
			}),
		)
		if err := app.Err(); err != nil {
			return errors.Wrap(err, "build application")
		}

		startCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
		defer cancel()
		if err := app.Start(startCtx); err != nil {
			return errors.Wrap(err, "open store")
		}

		runErr := fn(ctx, &s)

		stopCtx, cancelStop := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		defer cancelStop()
		if err := app.Stop(stopCtx); err != nil && runErr == nil {
			return errors.Wrap(err, "close store")
		}

		return runErr
	}
}

// newRootCmd builds the command tree. infra must provide *config.Config and *slog.Logger.
func newRootCmd(infra fx.Option) *cobra.Command {
	run := newRunner(infra)

	rootCmd := &cobra.Command{
		Use:           "furnishopctl",
		Short:         "Inspect and administer the furnishop client store",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newProductsCmd(run),
		newOrdersCmd(run),
		newUsersCmd(run),
		newStatsCmd(run),
	)

	return rootCmd
}
